package log

import (
	"unsafe"

	"github.com/ngx-go/ngx/ffi"
	"github.com/ngx-go/ngx/ffi/call"
)

// formatTail hands the message to the native formatter as a single
// NUL-terminated argument.
var formatTail = []byte("%s\x00")

// Sink wraps a native log. Worker thread only.
type Sink struct {
	raw unsafe.Pointer
}

// SinkFromRaw wraps a native log pointer.
func SinkFromRaw(p unsafe.Pointer) *Sink {
	if p == nil {
		return nil
	}
	return &Sink{raw: p}
}

// CycleSink returns the cycle-wide error log.
func CycleSink() *Sink {
	c := (*ffi.Cycle)(call.Cycle())
	if c == nil {
		return nil
	}
	return SinkFromRaw(c.Log)
}

// PoolSink returns the log attached to a native pool, typically a
// request pool for per-request logging.
func PoolSink(p unsafe.Pointer) *Sink {
	if p == nil {
		return nil
	}
	return SinkFromRaw((*ffi.Pool)(p).Log)
}

// Enabled reports whether the native log admits the severity. Debug
// output is gated by the debug connection mask, so it passes here and
// the native side makes the final call.
func (s *Sink) Enabled(level uintptr) bool {
	if s == nil || s.raw == nil {
		return false
	}
	return (*ffi.Log)(s.raw).LogLevel >= level || level >= ffi.LogDebug
}

// Write emits msg at the given severity. msg must not contain NUL
// bytes; the native formatter copies it during the call, so the bytes
// may be reused afterwards.
func (s *Sink) Write(level uintptr, msg []byte) {
	if !s.Enabled(level) {
		return
	}
	tail := make([]byte, 0, len(msg)+1)
	tail = append(tail, msg...)
	tail = append(tail, 0)
	call.LogErrorCore(level, s.raw, 0,
		unsafe.Pointer(&formatTail[0]), unsafe.Pointer(&tail[0]))
}
