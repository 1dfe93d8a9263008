package call

/*
#include <ngx_config.h>
#include <ngx_core.h>
#include <ngx_event.h>

ngx_int_t ngx_go_notify(void);
void ngx_go_post_event(ngx_event_t *ev);
*/
import "C"

import "unsafe"

var notifyWake func()

// OnNotify installs the callback invoked on the worker thread when a
// notify wakeup lands. Install once, before the first Notify.
func OnNotify(fn func()) {
	notifyWake = fn
}

// Notify schedules a wakeup of the worker event loop. This is the one
// entry point that is safe to call from any thread.
func Notify() int {
	return int(C.ngx_go_notify())
}

// PostEvent queues ev on the worker's posted-event list. Worker
// thread only.
func PostEvent(ev unsafe.Pointer) {
	C.ngx_go_post_event((*C.ngx_event_t)(ev))
}

//export ngxGoNotifyWake
func ngxGoNotifyWake() {
	if fn := notifyWake; fn != nil {
		fn()
	}
}
