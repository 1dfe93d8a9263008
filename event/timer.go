package event

import (
	"time"
	"unsafe"

	"github.com/ngx-go/ngx/ffi"
	"github.com/ngx-go/ngx/ffi/call"
	"github.com/ngx-go/ngx/pool"
)

// Timer fires a Go callback from the worker's timer tree. One shot;
// rearm with After. All methods are worker thread only.
type Timer struct {
	ev unsafe.Pointer
}

// NewTimer allocates a timer from p, dispatching fn on the worker
// thread when it expires. The timer is disarmed and unregistered when
// the pool is destroyed.
func NewTimer(p *pool.Pool, fn func()) (*Timer, error) {
	d, err := p.Calloc(unsafe.Sizeof(ffi.Event{}))
	if err != nil {
		return nil, err
	}
	t := &Timer{ev: d}
	call.InitEvent(d, fn)
	if err := p.AddCleanup(t.teardown); err != nil {
		call.ClearEvent(d)
		return nil, err
	}
	return t, nil
}

// After arms the timer to expire after d, replacing any pending
// expiry.
func (t *Timer) After(d time.Duration) {
	call.EventAddTimer(t.ev, uintptr(d.Milliseconds()))
}

// Stop disarms a pending timer. Stopping an unarmed timer is a no-op.
func (t *Timer) Stop() {
	if call.EventTimerSet(t.ev) != 0 {
		call.EventDelTimer(t.ev)
	}
}

// Post queues the timer's callback on the posted-event list, running
// it at the end of the current cycle iteration without a timeout.
func (t *Timer) Post() {
	call.PostEvent(t.ev)
}

func (t *Timer) teardown() {
	t.Stop()
	call.ClearEvent(t.ev)
}
