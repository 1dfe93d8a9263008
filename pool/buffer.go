package pool

import (
	"unsafe"

	"github.com/ngx-go/ngx/errors"
	"github.com/ngx-go/ngx/ffi"
	"github.com/ngx-go/ngx/ffi/call"
)

// Buffer borrows a native buffer allocated from a pool.
type Buffer struct {
	raw *ffi.Buf
}

// Raw exposes the native buffer pointer.
func (b *Buffer) Raw() unsafe.Pointer { return unsafe.Pointer(b.raw) }

// CreateBuffer allocates a temporary buffer of size bytes from the
// pool. The buffer starts empty with the full size writable.
func (p *Pool) CreateBuffer(size uintptr) (*Buffer, error) {
	raw := call.CreateTempBuf(p.raw, size)
	if raw == nil {
		return nil, errors.AllocationFailed(size)
	}
	return &Buffer{raw: (*ffi.Buf)(raw)}, nil
}

// CreateBufferFromString allocates a buffer holding a copy of s.
func (p *Pool) CreateBufferFromString(s string) (*Buffer, error) {
	b, err := p.CreateBuffer(uintptr(len(s)))
	if err != nil {
		return nil, err
	}
	n := copy(unsafe.Slice((*byte)(b.raw.Pos), len(s)), s)
	b.raw.Last = unsafe.Add(b.raw.Pos, n)
	return b, nil
}

// Bytes returns the readable span between pos and last.
func (b *Buffer) Bytes() []byte {
	n := uintptr(b.raw.Last) - uintptr(b.raw.Pos)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(b.raw.Pos), n)
}

// Len reports the readable byte count.
func (b *Buffer) Len() int {
	return int(uintptr(b.raw.Last) - uintptr(b.raw.Pos))
}

// SetLastBuf marks the buffer as the final buffer of the response.
func (b *Buffer) SetLastBuf(v bool) {
	call.SetBufLastBuf(b.Raw(), boolBit(v))
}

// SetLastInChain marks the buffer as the last of its chain link.
func (b *Buffer) SetLastInChain(v bool) {
	call.SetBufLastInChain(b.Raw(), boolBit(v))
}

// SetFlush requests that buffered output be flushed through.
func (b *Buffer) SetFlush(v bool) {
	call.SetBufFlush(b.Raw(), boolBit(v))
}

// Chain allocates a single-link chain wrapping the buffer, ready to
// hand to an output filter.
func (p *Pool) Chain(b *Buffer) (*ffi.Chain, error) {
	d, err := p.Calloc(unsafe.Sizeof(ffi.Chain{}))
	if err != nil {
		return nil, err
	}
	cl := (*ffi.Chain)(d)
	cl.Buf = unsafe.Pointer(b.raw)
	return cl, nil
}

func boolBit(v bool) uint {
	if v {
		return 1
	}
	return 0
}
