package core

import (
	"testing"
	"unsafe"

	"github.com/ngx-go/ngx/ffi"
)

func nativeStr(s string) ffi.Str {
	b := []byte(s)
	if len(b) == 0 {
		return ffi.Str{}
	}
	return ffi.Str{Len: uintptr(len(b)), Data: unsafe.Pointer(unsafe.SliceData(b))}
}

func TestStrViews(t *testing.T) {
	s := nativeStr("hello")
	if got := StrString(&s); got != "hello" {
		t.Errorf("StrString() = %q, want %q", got, "hello")
	}
	if got := StrBytes(&s); string(got) != "hello" {
		t.Errorf("StrBytes() = %q, want %q", got, "hello")
	}
	if StrEmpty(&s) {
		t.Error("StrEmpty() = true for non-empty string")
	}

	empty := ffi.Str{}
	if got := StrBytes(&empty); got != nil {
		t.Errorf("StrBytes(empty) = %v, want nil", got)
	}
	if !StrEmpty(&empty) {
		t.Error("StrEmpty(empty) = false")
	}
	if !StrEmpty(nil) {
		t.Error("StrEmpty(nil) = false")
	}
	if got := StrString(nil); got != "" {
		t.Errorf("StrString(nil) = %q, want empty", got)
	}
}

func TestStrBytesZeroCopy(t *testing.T) {
	b := []byte("mutable")
	s := ffi.Str{Len: uintptr(len(b)), Data: unsafe.Pointer(unsafe.SliceData(b))}
	view := StrBytes(&s)
	b[0] = 'M'
	if view[0] != 'M' {
		t.Error("StrBytes returned a copy, want a view")
	}
}

func TestStrSet(t *testing.T) {
	var s ffi.Str
	StrSet(&s, []byte("abc"))
	if got := StrString(&s); got != "abc" {
		t.Errorf("after StrSet: %q, want %q", got, "abc")
	}
	StrSet(&s, nil)
	if s.Len != 0 || s.Data != nil {
		t.Errorf("StrSet(nil) left {%d, %p}", s.Len, s.Data)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{OK, "OK"},
		{Error, "ERROR"},
		{Again, "AGAIN"},
		{Busy, "BUSY"},
		{Done, "DONE"},
		{Declined, "DECLINED"},
		{Abort, "ABORT"},
		{Status(404), "HTTP 404"},
		{Status(-99), "status -99"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestStatusErr(t *testing.T) {
	for _, s := range []Status{OK, Again, Busy, Done, Declined, Status(200)} {
		if s.Err() {
			t.Errorf("%v.Err() = true", s)
		}
	}
	for _, s := range []Status{Error, Abort} {
		if !s.Err() {
			t.Errorf("%v.Err() = false", s)
		}
	}
}

func TestArrayElements(t *testing.T) {
	elts := []uint64{10, 20, 30, 40}
	a := ffi.Array{
		Elts:   unsafe.Pointer(unsafe.SliceData(elts)),
		Nelts:  3, // one slot still unused
		Size:   unsafe.Sizeof(uint64(0)),
		Nalloc: 4,
	}

	var got []uint64
	for p := range ArrayElements(&a) {
		got = append(got, *(*uint64)(p))
	}
	want := []uint64{10, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("got %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestArrayElementsEarlyStop(t *testing.T) {
	elts := []uint64{1, 2, 3}
	a := ffi.Array{
		Elts:  unsafe.Pointer(unsafe.SliceData(elts)),
		Nelts: 3,
		Size:  unsafe.Sizeof(uint64(0)),
	}
	n := 0
	for range ArrayElements(&a) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("visited %d elements after break, want 1", n)
	}
}

func TestArrayElementsEmpty(t *testing.T) {
	for range ArrayElements(nil) {
		t.Fatal("yielded from nil array")
	}
	for range ArrayElements(&ffi.Array{}) {
		t.Fatal("yielded from empty array")
	}
}

func TestListElements(t *testing.T) {
	// Two parts of two elements plus a final part of one, the shape
	// the native allocator produces once the first part fills up.
	p1 := []uint32{1, 2}
	p2 := []uint32{3, 4}
	p3 := []uint32{5}

	part3 := ffi.ListPart{Elts: unsafe.Pointer(unsafe.SliceData(p3)), Nelts: 1}
	part2 := ffi.ListPart{
		Elts:  unsafe.Pointer(unsafe.SliceData(p2)),
		Nelts: 2,
		Next:  unsafe.Pointer(&part3),
	}
	l := ffi.List{
		Part: ffi.ListPart{
			Elts:  unsafe.Pointer(unsafe.SliceData(p1)),
			Nelts: 2,
			Next:  unsafe.Pointer(&part2),
		},
		Size:   unsafe.Sizeof(uint32(0)),
		Nalloc: 2,
		Last:   unsafe.Pointer(&part3),
	}

	var got []uint32
	for p := range ListElements(&l) {
		got = append(got, *(*uint32)(p))
	}
	want := []uint32{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestListElementsRestartable(t *testing.T) {
	elts := []uint32{7, 8}
	l := ffi.List{
		Part: ffi.ListPart{Elts: unsafe.Pointer(unsafe.SliceData(elts)), Nelts: 2},
		Size: unsafe.Sizeof(uint32(0)),
	}
	seq := ListElements(&l)
	for range 2 {
		n := 0
		for range seq {
			n++
		}
		if n != 2 {
			t.Fatalf("walk yielded %d elements, want 2", n)
		}
	}
}

type queueRecord struct {
	value int
	link  ffi.Queue
}

func queueInsertTail(sentinel *ffi.Queue, n *ffi.Queue) {
	prev := (*ffi.Queue)(sentinel.Prev)
	n.Prev = unsafe.Pointer(prev)
	n.Next = unsafe.Pointer(sentinel)
	prev.Next = unsafe.Pointer(n)
	sentinel.Prev = unsafe.Pointer(n)
}

func TestQueueItems(t *testing.T) {
	var sentinel ffi.Queue
	sentinel.Prev = unsafe.Pointer(&sentinel)
	sentinel.Next = unsafe.Pointer(&sentinel)

	records := []*queueRecord{{value: 1}, {value: 2}, {value: 3}}
	for _, r := range records {
		queueInsertTail(&sentinel, &r.link)
	}

	off := unsafe.Offsetof(queueRecord{}.link)
	var got []int
	for node := range QueueItems(&sentinel) {
		rec := (*queueRecord)(QueueData(node, off))
		got = append(got, rec.value)
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestQueueItemsEmpty(t *testing.T) {
	var sentinel ffi.Queue
	sentinel.Prev = unsafe.Pointer(&sentinel)
	sentinel.Next = unsafe.Pointer(&sentinel)
	for range QueueItems(&sentinel) {
		t.Fatal("yielded from empty queue")
	}
	for range QueueItems(nil) {
		t.Fatal("yielded from nil queue")
	}
}
