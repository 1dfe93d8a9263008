package async

import (
	"sync"

	"github.com/ngx-go/ngx/errors"
)

// Task is a single-assignment result delivered on the loop thread.
type Task[T any] struct {
	g *Group

	mu      sync.Mutex
	settled bool
	done    bool
	val     T
	err     error
	conts   []func(T, error)
}

// NewTask creates an unresolved task in the group. Resolve or Reject
// settle it exactly once; later calls are no-ops.
func NewTask[T any](g *Group) (*Task[T], error) {
	t := &Task[T]{g: g}
	if err := g.add(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Resolve settles the task with a value. Safe from any thread; the
// value is delivered on the loop thread. If the group was cancelled
// first, the value is discarded and awaiters see the cancellation.
func (t *Task[T]) Resolve(v T) {
	t.settle(v, nil)
}

// Reject settles the task with an error. Safe from any thread.
func (t *Task[T]) Reject(err error) {
	var zero T
	t.settle(zero, err)
}

// Await registers a continuation running on the loop thread once the
// task settles. Continuations run in registration order. Awaiting a
// settled task schedules the continuation immediately.
func (t *Task[T]) Await(fn func(T, error)) {
	t.mu.Lock()
	if !t.done {
		t.conts = append(t.conts, fn)
		t.mu.Unlock()
		return
	}
	v, err := t.val, t.err
	t.mu.Unlock()
	t.post(func() { fn(v, err) })
}

// Done reports whether the task has delivered its result.
func (t *Task[T]) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

func (t *Task[T]) cancelNow() {
	var zero T
	t.deliver(zero, errors.Cancelled("task group torn down"))
}

// settle records the first outcome and schedules delivery on the loop
// thread. The cancellation check happens at delivery time, so a result
// racing a Cancel can never land after it.
func (t *Task[T]) settle(v T, err error) {
	t.mu.Lock()
	if t.settled {
		t.mu.Unlock()
		return
	}
	t.settled = true
	t.mu.Unlock()

	t.deliver(v, err)
}

func (t *Task[T]) deliver(v T, err error) {
	t.post(func() {
		if t.g.Cancelled() {
			var zero T
			v, err = zero, errors.Cancelled("task group torn down")
		}

		t.mu.Lock()
		if t.done {
			t.mu.Unlock()
			return
		}
		t.done = true
		t.val, t.err = v, err
		conts := t.conts
		t.conts = nil
		t.mu.Unlock()

		t.g.remove(t)
		for _, fn := range conts {
			fn(v, err)
		}
	})
}

// post hands fn to the loop. A loop that has shut down can never run
// continuations again, so the outcome is dropped on the floor.
func (t *Task[T]) post(fn func()) {
	_ = t.g.s.loop.Post(fn)
}
