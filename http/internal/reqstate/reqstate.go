// Package reqstate holds the per-request handler state machine and
// the phase-specific suspension conventions of the core's phase
// checkers.
package reqstate

import "github.com/ngx-go/ngx/core"

// Phase identifies a pipeline slot a handler can register into. The
// core owns the pipeline; handlers only join the open phases.
type Phase int

const (
	RewritePhase Phase = iota
	PreaccessPhase
	AccessPhase
	PrecontentPhase
	ContentPhase
	LogPhase
)

func (p Phase) String() string {
	switch p {
	case RewritePhase:
		return "rewrite"
	case PreaccessPhase:
		return "preaccess"
	case AccessPhase:
		return "access"
	case PrecontentPhase:
		return "precontent"
	case ContentPhase:
		return "content"
	case LogPhase:
		return "log"
	}
	return "unknown"
}

// HandlerState tracks one request's traversal of a handler across
// suspensions.
type HandlerState int

const (
	StateUninitialized HandlerState = iota
	StateRunning
	StateSuspended
	StateCompleted
	StateDeclined
	StateFailed
)

func (s HandlerState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateSuspended:
		return "suspended"
	case StateCompleted:
		return "completed"
	case StateDeclined:
		return "declined"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// ForStatus maps a handler's return to the state machine. Error
// statuses, native or HTTP, terminate phase processing.
func ForStatus(s core.Status) HandlerState {
	switch s {
	case core.OK, core.Done:
		return StateCompleted
	case core.Declined:
		return StateDeclined
	case core.Again:
		return StateSuspended
	default:
		if s > 0 && s < 400 {
			return StateCompleted
		}
		return StateFailed
	}
}

// SuspendStatus is what a suspended handler must hand its phase
// checker so the request parks at the current phase slot. The rewrite
// checker forwards AGAIN to request finalization and only parks on
// DONE; the generic and access checkers park on AGAIN.
func SuspendStatus(p Phase) core.Status {
	if p == RewritePhase {
		return core.Done
	}
	return core.Again
}
