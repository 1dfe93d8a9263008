package core

import (
	"strconv"

	"github.com/ngx-go/ngx/ffi"
)

// Status is a native return code.
type Status int

const (
	OK       Status = ffi.OK
	Error    Status = ffi.Error
	Again    Status = ffi.Again
	Busy     Status = ffi.Busy
	Done     Status = ffi.Done
	Declined Status = ffi.Declined
	Abort    Status = ffi.Abort
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Error:
		return "ERROR"
	case Again:
		return "AGAIN"
	case Busy:
		return "BUSY"
	case Done:
		return "DONE"
	case Declined:
		return "DECLINED"
	case Abort:
		return "ABORT"
	}
	// Positive values are HTTP response codes used as finalization
	// statuses.
	if s > 0 {
		return "HTTP " + strconv.Itoa(int(s))
	}
	return "status " + strconv.Itoa(int(s))
}

// Err reports whether the status aborts processing. AGAIN and
// DECLINED are flow control, not failures.
func (s Status) Err() bool {
	return s == Error || s == Abort
}
