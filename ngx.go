package ngx

import "unsafe"

// DefaultRelease is the nginx release the checked-in declaration surface
// under ffi/ was generated against. Regenerate with cmd/ngx-build when
// targeting a different release.
const DefaultRelease = "1.27.4"

// Allocator carves memory out of a native pool. Individual release is a
// no-op by pool discipline: memory lives until the owning pool is
// destroyed wholesale.
type Allocator interface {
	// Alloc returns size bytes aligned to the platform word size.
	Alloc(size uintptr) (unsafe.Pointer, error)
	// Calloc returns size zeroed bytes aligned to the platform word size.
	Calloc(size uintptr) (unsafe.Pointer, error)
	// AllocUnaligned returns size bytes with no alignment guarantee.
	AllocUnaligned(size uintptr) (unsafe.Pointer, error)
}

// Cleanup runs when the resource that registered it is destroyed.
type Cleanup func()
