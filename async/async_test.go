package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ngx-go/ngx/errors"
)

// fakeLoop queues posts and runs them when the test says so, standing
// in for the worker thread.
type fakeLoop struct {
	mu    sync.Mutex
	queue []func()
}

func (l *fakeLoop) Post(fn func()) error {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	return nil
}

func (l *fakeLoop) OnLoop() bool { return true }

// run drains everything queued so far, including work posted while
// draining, and reports how many callbacks ran.
func (l *fakeLoop) run() int {
	n := 0
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return n
		}
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()
		for _, fn := range batch {
			fn()
			n++
		}
	}
}

// waitPosted blocks until at least one callback is queued.
func (l *fakeLoop) waitPosted(t *testing.T) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		l.mu.Lock()
		n := len(l.queue)
		l.mu.Unlock()
		if n > 0 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("nothing posted to the loop")
}

func TestAwaitOrdering(t *testing.T) {
	loop := &fakeLoop{}
	g := NewScheduler(loop).NewGroup()

	task, err := NewTask[int](g)
	if err != nil {
		t.Fatalf("NewTask() = %v", err)
	}

	var order []int
	task.Await(func(v int, err error) { order = append(order, 1) })
	task.Await(func(v int, err error) { order = append(order, 2) })

	task.Resolve(42)
	if len(order) != 0 {
		t.Fatal("continuation ran before the loop did")
	}
	loop.run()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("continuations ran as %v, want [1 2]", order)
	}
	if !task.Done() {
		t.Error("task not done after delivery")
	}
}

func TestAwaitAfterSettled(t *testing.T) {
	loop := &fakeLoop{}
	g := NewScheduler(loop).NewGroup()

	task, _ := NewTask[string](g)
	task.Resolve("ready")
	loop.run()

	var got string
	task.Await(func(v string, err error) { got = v })
	loop.run()
	if got != "ready" {
		t.Errorf("late Await saw %q, want %q", got, "ready")
	}
}

func TestResolveFirstWins(t *testing.T) {
	loop := &fakeLoop{}
	g := NewScheduler(loop).NewGroup()

	task, _ := NewTask[int](g)
	var got []int
	task.Await(func(v int, err error) { got = append(got, v) })

	task.Resolve(1)
	task.Resolve(2)
	task.Reject(errors.Cancelled("late"))
	loop.run()

	if len(got) != 1 || got[0] != 1 {
		t.Errorf("delivered %v, want [1]", got)
	}
}

func TestSpawnResolves(t *testing.T) {
	loop := &fakeLoop{}
	g := NewScheduler(loop).NewGroup()

	task, err := Spawn(g, func(ctx context.Context) (int, error) {
		return 7, nil
	})
	if err != nil {
		t.Fatalf("Spawn() = %v", err)
	}

	var got int
	var gotErr error
	task.Await(func(v int, err error) { got, gotErr = v, err })

	loop.waitPosted(t)
	loop.run()

	if gotErr != nil || got != 7 {
		t.Errorf("await saw (%d, %v), want (7, nil)", got, gotErr)
	}
}

func TestSpawnError(t *testing.T) {
	loop := &fakeLoop{}
	g := NewScheduler(loop).NewGroup()

	task, _ := Spawn(g, func(ctx context.Context) (int, error) {
		return 0, errors.RequestFailed(502, "upstream gone")
	})

	var gotErr error
	task.Await(func(v int, err error) { gotErr = err })
	loop.waitPosted(t)
	loop.run()

	if !errors.IsKind(gotErr, errors.KindExitStatus) {
		t.Fatalf("await saw %v, want request error", gotErr)
	}
}

func TestCancelDeliversCancelled(t *testing.T) {
	loop := &fakeLoop{}
	g := NewScheduler(loop).NewGroup()

	task, _ := NewTask[int](g)
	var calls int
	var gotErr error
	task.Await(func(v int, err error) {
		calls++
		gotErr = err
	})

	g.Cancel()
	loop.run()

	if calls != 1 {
		t.Fatalf("continuation ran %d times, want 1", calls)
	}
	if !errors.IsCancelled(gotErr) {
		t.Errorf("await saw %v, want cancelled", gotErr)
	}
	if g.Context().Err() == nil {
		t.Error("group context not cancelled")
	}
}

// A result that races teardown must never land: once the group is
// cancelled, a pending success resolves as cancelled.
func TestCancelNeverResumesSuccess(t *testing.T) {
	loop := &fakeLoop{}
	g := NewScheduler(loop).NewGroup()

	task, _ := NewTask[int](g)
	var gotErr error
	var gotVal int
	task.Await(func(v int, err error) { gotVal, gotErr = v, err })

	// Success is queued but the loop has not run it yet when the
	// group goes down.
	task.Resolve(99)
	g.Cancel()
	loop.run()

	if !errors.IsCancelled(gotErr) {
		t.Fatalf("await saw (%d, %v), want cancelled", gotVal, gotErr)
	}
	if gotVal != 0 {
		t.Errorf("cancelled task still delivered value %d", gotVal)
	}
}

func TestSpawnAfterTeardownRejected(t *testing.T) {
	loop := &fakeLoop{}
	g := NewScheduler(loop).NewGroup()
	g.Cancel()

	if _, err := Spawn(g, func(ctx context.Context) (int, error) { return 1, nil }); !errors.IsCancelled(err) {
		t.Errorf("Spawn after teardown = %v, want cancelled", err)
	}
	if _, err := NewTask[int](g); !errors.IsCancelled(err) {
		t.Errorf("NewTask after teardown = %v, want cancelled", err)
	}
}

func TestCancelIdempotent(t *testing.T) {
	loop := &fakeLoop{}
	g := NewScheduler(loop).NewGroup()

	task, _ := NewTask[int](g)
	var calls int
	task.Await(func(v int, err error) { calls++ })

	g.Cancel()
	g.Cancel()
	loop.run()

	if calls != 1 {
		t.Errorf("continuation ran %d times after double cancel, want 1", calls)
	}
}
