package ffi

import (
	"testing"
	"unsafe"
)

// The mirrors are pinned to the LP64 layout the generator probed; the
// Go compiler must reproduce the same extents.
func TestMirrorSizes(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Str", unsafe.Sizeof(Str{}), 16},
		{"Buf", unsafe.Sizeof(Buf{}), 80},
		{"Chain", unsafe.Sizeof(Chain{}), 16},
		{"Array", unsafe.Sizeof(Array{}), 40},
		{"List", unsafe.Sizeof(List{}), 56},
		{"ListPart", unsafe.Sizeof(ListPart{}), 24},
		{"Queue", unsafe.Sizeof(Queue{}), 16},
		{"TableElt", unsafe.Sizeof(TableElt{}), 56},
		{"VariableValue", unsafe.Sizeof(VariableValue{}), 16},
		{"Pool", unsafe.Sizeof(Pool{}), 80},
		{"PoolCleanup", unsafe.Sizeof(PoolCleanup{}), 24},
		{"Log", unsafe.Sizeof(Log{}), 80},
		{"Module", unsafe.Sizeof(Module{}), 200},
		{"Command", unsafe.Sizeof(Command{}), 56},
		{"Conf", unsafe.Sizeof(Conf{}), 96},
		{"Cycle", unsafe.Sizeof(Cycle{}), 632},
		{"Event", unsafe.Sizeof(Event{}), 96},
		{"Shm", unsafe.Sizeof(Shm{}), 48},
		{"ShmZone", unsafe.Sizeof(ShmZone{}), 88},
		{"SlabPool", unsafe.Sizeof(SlabPool{}), 200},
		{"RbtreeNode", unsafe.Sizeof(RbtreeNode{}), 40},
		{"HTTPConfCtx", unsafe.Sizeof(HTTPConfCtx{}), 24},
		{"HTTPHeadersIn", unsafe.Sizeof(HTTPHeadersIn{}), 312},
		{"HTTPHeadersOut", unsafe.Sizeof(HTTPHeadersOut{}), 344},
		{"HTTPModule", unsafe.Sizeof(HTTPModule{}), 64},
		{"HTTPRequest", unsafe.Sizeof(HTTPRequest{}), 1288},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: size %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestMirrorOffsets(t *testing.T) {
	var r HTTPRequest
	if off := unsafe.Offsetof(r.HeadersIn); off != 104 {
		t.Errorf("HeadersIn offset %d, want 104", off)
	}
	if off := unsafe.Offsetof(r.HeadersOut); off != 416 {
		t.Errorf("HeadersOut offset %d, want 416", off)
	}
	if off := unsafe.Offsetof(r.URI); off != 824 {
		t.Errorf("URI offset %d, want 824", off)
	}

	var c Cycle
	if off := unsafe.Offsetof(c.SharedMemory); off != 432 {
		t.Errorf("Cycle.SharedMemory offset %d, want 432", off)
	}
	if off := unsafe.Offsetof(c.Hostname); off != 616 {
		t.Errorf("Cycle.Hostname offset %d, want 616", off)
	}
}
