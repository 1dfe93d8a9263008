package core

import (
	"iter"
	"unsafe"

	"github.com/ngx-go/ngx/ffi"
)

// ArrayElements iterates a native array, yielding a pointer to each
// element in insertion order. The element size is the array's own;
// callers cast to the element mirror.
func ArrayElements(a *ffi.Array) iter.Seq[unsafe.Pointer] {
	return func(yield func(unsafe.Pointer) bool) {
		if a == nil || a.Elts == nil {
			return
		}
		for i := uintptr(0); i < a.Nelts; i++ {
			if !yield(unsafe.Add(a.Elts, i*a.Size)) {
				return
			}
		}
	}
}

// ListElements iterates a native list part by part, yielding a
// pointer to each element. The sequence is restartable: each range
// walks from the first part again.
func ListElements(l *ffi.List) iter.Seq[unsafe.Pointer] {
	return func(yield func(unsafe.Pointer) bool) {
		if l == nil {
			return
		}
		for part := &l.Part; part != nil; part = (*ffi.ListPart)(part.Next) {
			if part.Elts == nil {
				continue
			}
			for i := uintptr(0); i < part.Nelts; i++ {
				if !yield(unsafe.Add(part.Elts, i*l.Size)) {
					return
				}
			}
		}
	}
}

// QueueItems iterates a sentinel-headed intrusive queue, yielding
// each node. The sentinel itself is never yielded, and link pointers
// stay private to the walk.
func QueueItems(q *ffi.Queue) iter.Seq[unsafe.Pointer] {
	return func(yield func(unsafe.Pointer) bool) {
		if q == nil || q.Next == nil {
			return
		}
		for n := (*ffi.Queue)(q.Next); n != q; n = (*ffi.Queue)(n.Next) {
			if n == nil {
				return
			}
			if !yield(unsafe.Pointer(n)) {
				return
			}
		}
	}
}

// QueueData converts a queue node pointer back to its containing
// record, given the link member's offset within the record.
func QueueData(node unsafe.Pointer, offset uintptr) unsafe.Pointer {
	return unsafe.Add(node, -int(offset))
}
