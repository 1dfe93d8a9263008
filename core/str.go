package core

import (
	"unsafe"

	"github.com/ngx-go/ngx/ffi"
)

// StrBytes returns a zero-copy view of a native string. The bytes
// stay valid only while the owning pool lives; copy before retaining.
func StrBytes(s *ffi.Str) []byte {
	if s == nil || s.Data == nil || s.Len == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(s.Data), s.Len)
}

// StrString copies a native string into a Go string.
func StrString(s *ffi.Str) string {
	return string(StrBytes(s))
}

// StrEmpty reports whether the native string has no bytes.
func StrEmpty(s *ffi.Str) bool {
	return s == nil || s.Len == 0 || s.Data == nil
}

// StrSet points s at the backing array of b without copying. The
// caller keeps b alive for as long as the native side may read it;
// pool-scoped copies are the job of the pool package.
func StrSet(s *ffi.Str, b []byte) {
	if len(b) == 0 {
		s.Len, s.Data = 0, nil
		return
	}
	s.Len = uintptr(len(b))
	s.Data = unsafe.Pointer(unsafe.SliceData(b))
}
