package event

import (
	"sync"

	"golang.org/x/sys/unix"

	"github.com/ngx-go/ngx/errors"
	"github.com/ngx-go/ngx/ffi/call"
	"github.com/ngx-go/ngx/log"
)

// Loop schedules work onto the worker event loop.
type Loop interface {
	// Post queues fn to run on the loop thread and wakes the loop.
	// Safe from any thread. Fails once the loop has shut down.
	Post(fn func()) error
	// OnLoop reports whether the caller is on the loop thread.
	OnLoop() bool
}

// WorkerLoop drives queued Go work from the native event cycle through
// the notify wakeup.
type WorkerLoop struct {
	mu     sync.Mutex
	queue  []func()
	tid    int
	closed bool
}

var (
	attachOnce sync.Once
	worker     *WorkerLoop
)

// Attach binds the calling thread as the loop thread and installs the
// notify drain. Call once from the worker's init_process hook; later
// calls return the same loop.
func Attach() *WorkerLoop {
	attachOnce.Do(func() {
		worker = &WorkerLoop{tid: unix.Gettid()}
		call.OnNotify(worker.drain)
		log.SetLoopCheck(worker.OnLoop)
	})
	return worker
}

// OnLoop reports whether the caller runs on the worker thread. Inside
// a native callback the goroutine is pinned to the calling C thread,
// so the kernel thread id is a stable identity.
func (w *WorkerLoop) OnLoop() bool {
	return unix.Gettid() == w.tid
}

// Post queues fn and wakes the loop. Safe from any thread.
func (w *WorkerLoop) Post(fn func()) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return errors.New(errors.PhaseEvent, errors.KindNotOnLoop).
			Detail("loop has shut down").
			Build()
	}
	w.queue = append(w.queue, fn)
	w.mu.Unlock()

	if rc := call.Notify(); rc != 0 {
		return errors.New(errors.PhaseEvent, errors.KindDeclined).
			Detail("notify failed with %d", rc).
			Build()
	}
	return nil
}

// Shutdown stops accepting posts and runs whatever is already queued.
// Worker thread only, from the exit_process hook.
func (w *WorkerLoop) Shutdown() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.drain()
}

// drain runs on the worker thread when a notify wakeup lands. Work
// posted while draining is picked up in the same pass.
func (w *WorkerLoop) drain() {
	for {
		w.mu.Lock()
		if len(w.queue) == 0 {
			w.mu.Unlock()
			return
		}
		batch := w.queue
		w.queue = nil
		w.mu.Unlock()

		for _, fn := range batch {
			fn()
		}
	}
}
