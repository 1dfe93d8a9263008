package http

import (
	"context"
	"reflect"
	"unsafe"

	"go.uber.org/zap"

	"github.com/ngx-go/ngx/async"
	"github.com/ngx-go/ngx/core"
	"github.com/ngx-go/ngx/errors"
	"github.com/ngx-go/ngx/ffi"
	"github.com/ngx-go/ngx/ffi/call"
	"github.com/ngx-go/ngx/http/internal/reqstate"
)

// requestState is the per-request handler bookkeeping, keyed by the
// request's module context slot. Subrequests share the parent's pool
// but carry their own context slot, so each traverses the state
// machine independently.
type requestState struct {
	state  HandlerState
	result core.Status
	group  *async.Group
}

func stateFor(r *Request) (*requestState, error) {
	if st, ok := stateIfAny(r); ok {
		return st, nil
	}
	tok, err := r.token()
	if err != nil {
		return nil, err
	}
	st := &requestState{state: StateUninitialized}
	reqValues.Attach(tok, st)
	return st, nil
}

func stateIfAny(r *Request) (*requestState, bool) {
	tok := call.RequestCtx(r.Raw())
	if tok == nil {
		return nil, false
	}
	v, ok := reqValues.Lookup(uintptr(tok), reflect.TypeOf((*requestState)(nil)))
	if !ok {
		return nil, false
	}
	return v.(*requestState), true
}

// phase is the shared native phase handler.
func (f *framework) phase(rp unsafe.Pointer) int {
	hm, ok := f.mod.(HandlerModule)
	if !ok {
		return ffi.Declined
	}

	r := WrapRequest(rp)
	st, err := stateFor(r)
	if err != nil {
		return ffi.Error
	}

	switch st.state {
	case StateSuspended:
		// Woken before the continuation settled; keep the request
		// parked at this phase slot.
		return int(reqstate.SuspendStatus(hm.Phase()))
	case StateCompleted, StateDeclined, StateFailed:
		return int(st.result)
	}

	st.state = StateRunning
	status := hm.Handle(r)
	st.state = reqstate.ForStatus(status)
	st.result = status

	if st.state == StateSuspended {
		return int(reqstate.SuspendStatus(hm.Phase()))
	}
	if st.state == StateFailed {
		Logger().Debug("handler failed",
			zap.String("phase", hm.Phase().String()),
			zap.Stringer("status", status))
	}
	return int(status)
}

// suspendStatus is what a suspending handler must return, chosen by
// the registered module's phase.
func suspendStatus() core.Status {
	if fw != nil {
		if hm, ok := fw.mod.(HandlerModule); ok {
			return reqstate.SuspendStatus(hm.Phase())
		}
	}
	return core.Again
}

func requestGroup(r *Request, st *requestState) (*async.Group, error) {
	if st.group != nil {
		return st.group, nil
	}
	sched := Scheduler()
	if sched == nil {
		return nil, errors.New(errors.PhaseEvent, errors.KindNotOnLoop).
			Detail("worker loop not initialized").
			Build()
	}
	g := sched.NewGroup()
	if err := r.Pool().AddCleanup(g.Cancel); err != nil {
		g.Cancel()
		return nil, err
	}
	st.group = g
	return g, nil
}

// Async suspends a non-content phase handler on work running off the
// loop. When the work settles, done maps the outcome to the handler's
// final status and the phase engine is re-entered to deliver it. The
// handler must return the status Async returns; it follows the
// suspension convention of the module's phase.
//
// Request teardown cancels the work; a cancelled outcome never
// touches the request again.
func Async[T any](r *Request, work func(ctx context.Context) (T, error), done func(r *Request, v T, err error) core.Status) core.Status {
	st, err := stateFor(r)
	if err != nil {
		return core.Error
	}
	g, err := requestGroup(r, st)
	if err != nil {
		return core.Error
	}

	task, err := async.Spawn(g, work)
	if err != nil {
		return core.Error
	}

	raw := r.Raw()
	task.Await(func(v T, werr error) {
		if errors.IsCancelled(werr) {
			return
		}
		rr := WrapRequest(raw)
		resume(rr, done(rr, v, werr))
	})

	st.state = StateSuspended
	return suspendStatus()
}

// AsyncContent is the content phase variant: the handler returns DONE,
// transferring finalization to the continuation, and the request's
// reference count holds the request alive until Finalize runs.
func AsyncContent[T any](r *Request, work func(ctx context.Context) (T, error), done func(r *Request, v T, err error) core.Status) core.Status {
	st, err := stateFor(r)
	if err != nil {
		return core.Error
	}
	g, err := requestGroup(r, st)
	if err != nil {
		return core.Error
	}

	task, err := async.Spawn(g, work)
	if err != nil {
		return core.Error
	}

	main := r.raw.Main
	call.SetHTTPRequestCount(main, call.HTTPRequestCount(main)+1)

	raw := r.Raw()
	task.Await(func(v T, werr error) {
		if errors.IsCancelled(werr) {
			return
		}
		rr := WrapRequest(raw)
		rr.Finalize(done(rr, v, werr))
	})

	st.state = StateSuspended
	return core.Done
}

// resume records a suspended handler's outcome and drives the phase
// engine to pick it up.
func resume(r *Request, status core.Status) {
	st, ok := stateIfAny(r)
	if !ok {
		return
	}
	st.result = status
	st.state = reqstate.ForStatus(status)
	if st.state == StateSuspended {
		// A continuation cannot suspend again by returning AGAIN.
		st.state = StateFailed
		st.result = core.Error
	}
	call.RequestWakeup(r.Raw())
}
