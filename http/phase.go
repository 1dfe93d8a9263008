package http

import "github.com/ngx-go/ngx/http/internal/reqstate"

// Phase identifies a pipeline slot a handler can register into. The
// core owns the pipeline; handlers only join the open phases.
type Phase = reqstate.Phase

const (
	RewritePhase    = reqstate.RewritePhase
	PreaccessPhase  = reqstate.PreaccessPhase
	AccessPhase     = reqstate.AccessPhase
	PrecontentPhase = reqstate.PrecontentPhase
	ContentPhase    = reqstate.ContentPhase
	LogPhase        = reqstate.LogPhase
)

// HandlerState tracks one request's traversal of a handler across
// suspensions.
type HandlerState = reqstate.HandlerState

const (
	StateUninitialized = reqstate.StateUninitialized
	StateRunning       = reqstate.StateRunning
	StateSuspended     = reqstate.StateSuspended
	StateCompleted     = reqstate.StateCompleted
	StateDeclined      = reqstate.StateDeclined
	StateFailed        = reqstate.StateFailed
)
