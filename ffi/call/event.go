package call

/*
#include <ngx_config.h>
#include <ngx_core.h>
#include <ngx_event.h>

void ngx_go_event_init(ngx_event_t *ev, uintptr_t handle);
*/
import "C"

import (
	"sync"
	"unsafe"
)

var (
	eventMu  sync.Mutex
	eventSeq uintptr
	events   = map[uintptr]func(){}
)

// InitEvent wires ev to invoke fn each time it fires. The event's data
// slot is taken over for dispatch; callers own the event memory and
// must ClearEvent before the pool holding it goes away.
func InitEvent(ev unsafe.Pointer, fn func()) {
	eventMu.Lock()
	eventSeq++
	h := eventSeq
	events[h] = fn
	eventMu.Unlock()
	C.ngx_go_event_init((*C.ngx_event_t)(ev), C.uintptr_t(h))
}

// ClearEvent drops the dispatch registration for ev.
func ClearEvent(ev unsafe.Pointer) {
	h := uintptr((*C.ngx_event_t)(ev).data)
	eventMu.Lock()
	delete(events, h)
	eventMu.Unlock()
}

//export ngxGoEventFire
func ngxGoEventFire(h C.uintptr_t) {
	eventMu.Lock()
	fn := events[uintptr(h)]
	eventMu.Unlock()
	if fn != nil {
		fn()
	}
}
