package async

import (
	"context"
	"sync"

	"github.com/ngx-go/ngx/errors"
)

// Loop schedules work onto the worker thread. event.WorkerLoop
// implements it; tests substitute a fake.
type Loop interface {
	Post(fn func()) error
	OnLoop() bool
}

// Scheduler marshals task completions onto one loop.
type Scheduler struct {
	loop Loop
}

// NewScheduler returns a scheduler delivering through loop.
func NewScheduler(loop Loop) *Scheduler {
	return &Scheduler{loop: loop}
}

// Loop returns the underlying loop.
func (s *Scheduler) Loop() Loop { return s.loop }

// Group is a cancellation scope for tasks, usually tied to a request
// pool through a cleanup handler calling Cancel.
type Group struct {
	s      *Scheduler
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	cancelled bool
	pending   map[settler]struct{}
}

type settler interface {
	cancelNow()
}

// NewGroup opens a cancellation scope on the scheduler.
func (s *Scheduler) NewGroup() *Group {
	ctx, cancel := context.WithCancel(context.Background())
	return &Group{
		s:       s,
		ctx:     ctx,
		cancel:  cancel,
		pending: map[settler]struct{}{},
	}
}

// Context is cancelled together with the group. Spawned work should
// watch it.
func (g *Group) Context() context.Context { return g.ctx }

// Cancelled reports whether the group has been torn down.
func (g *Group) Cancelled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cancelled
}

// Cancel tears the group down: suspended tasks are rejected with a
// cancelled error, in-flight work sees its context cancelled, and its
// eventual results are discarded. Idempotent.
func (g *Group) Cancel() {
	g.mu.Lock()
	if g.cancelled {
		g.mu.Unlock()
		return
	}
	g.cancelled = true
	pending := make([]settler, 0, len(g.pending))
	for t := range g.pending {
		pending = append(pending, t)
	}
	g.pending = nil
	g.mu.Unlock()

	g.cancel()
	for _, t := range pending {
		t.cancelNow()
	}
}

func (g *Group) add(t settler) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancelled {
		return errors.Cancelled("task registered after group teardown")
	}
	g.pending[t] = struct{}{}
	return nil
}

func (g *Group) remove(t settler) {
	g.mu.Lock()
	if g.pending != nil {
		delete(g.pending, t)
	}
	g.mu.Unlock()
}

// Spawn runs work on its own goroutine and settles the returned task
// on the loop thread. Spawning on a cancelled group fails immediately.
func Spawn[T any](g *Group, work func(ctx context.Context) (T, error)) (*Task[T], error) {
	t, err := NewTask[T](g)
	if err != nil {
		return nil, err
	}
	go func() {
		v, werr := work(g.ctx)
		if werr != nil {
			t.Reject(werr)
			return
		}
		t.Resolve(v)
	}()
	return t, nil
}
