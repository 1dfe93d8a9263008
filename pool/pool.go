package pool

import (
	"unsafe"

	"github.com/ngx-go/ngx/errors"
	"github.com/ngx-go/ngx/ffi"
	"github.com/ngx-go/ngx/ffi/call"
)

// Pool borrows a native pool. The zero value is unusable; obtain one
// with FromRaw from a pointer the native side handed over, typically
// a request or cycle pool.
type Pool struct {
	raw unsafe.Pointer
}

// FromRaw wraps a native pool pointer. The caller vouches that the
// pool outlives the wrapper's use.
func FromRaw(p unsafe.Pointer) *Pool {
	if p == nil {
		return nil
	}
	return &Pool{raw: p}
}

// Raw exposes the native pool pointer for handing back to native
// calls that take one.
func (p *Pool) Raw() unsafe.Pointer { return p.raw }

// Alloc returns size bytes aligned to the platform word size.
func (p *Pool) Alloc(size uintptr) (unsafe.Pointer, error) {
	d := call.Palloc(p.raw, size)
	if d == nil {
		return nil, errors.AllocationFailed(size)
	}
	return d, nil
}

// Calloc returns size zeroed bytes aligned to the platform word size.
func (p *Pool) Calloc(size uintptr) (unsafe.Pointer, error) {
	d := call.Pcalloc(p.raw, size)
	if d == nil {
		return nil, errors.AllocationFailed(size)
	}
	return d, nil
}

// AllocUnaligned returns size bytes with no alignment guarantee.
func (p *Pool) AllocUnaligned(size uintptr) (unsafe.Pointer, error) {
	d := call.Pnalloc(p.raw, size)
	if d == nil {
		return nil, errors.AllocationFailed(size)
	}
	return d, nil
}

// Free returns a large allocation to the pool early. Small block
// allocations are unaffected; they live until pool destruction. It
// reports whether anything was released.
func (p *Pool) Free(d unsafe.Pointer) bool {
	return call.Pfree(p.raw, d) == ffi.OK
}

// Bytes copies b into pool memory and returns the copy.
func (p *Pool) Bytes(b []byte) (unsafe.Pointer, error) {
	d, err := p.AllocUnaligned(uintptr(len(b)))
	if err != nil {
		return nil, err
	}
	copy(unsafe.Slice((*byte)(d), len(b)), b)
	return d, nil
}

// NewStr copies s into pool memory and fills out into a native string
// referencing the copy.
func (p *Pool) NewStr(out *ffi.Str, s string) error {
	if len(s) == 0 {
		out.Len, out.Data = 0, nil
		return nil
	}
	d, err := p.Bytes([]byte(s))
	if err != nil {
		return err
	}
	out.Len = uintptr(len(s))
	out.Data = d
	return nil
}

// CString copies s into pool memory with a trailing NUL and returns
// the pointer, for native calls that want a C string.
func (p *Pool) CString(s string) (unsafe.Pointer, error) {
	d, err := p.AllocUnaligned(uintptr(len(s)) + 1)
	if err != nil {
		return nil, err
	}
	buf := unsafe.Slice((*byte)(d), len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0
	return d, nil
}

// AddCleanup registers fn to run when the pool is destroyed. Handlers
// run on the worker thread in reverse registration order.
func (p *Pool) AddCleanup(fn func()) error {
	c := call.PoolCleanupAdd(p.raw, 0)
	if c == nil {
		return errors.AllocationFailed(unsafe.Sizeof(ffi.PoolCleanup{}))
	}
	call.SetCleanup(c, fn)
	return nil
}
