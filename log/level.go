package log

import (
	"go.uber.org/zap/zapcore"

	"github.com/ngx-go/ngx/ffi"
)

// NativeLevel maps a zap level onto the native severity scale. Zap has
// no counterpart for NOTICE; it is reachable only through a Sink
// directly.
func NativeLevel(l zapcore.Level) uintptr {
	switch {
	case l <= zapcore.DebugLevel:
		return ffi.LogDebug
	case l == zapcore.InfoLevel:
		return ffi.LogInfo
	case l == zapcore.WarnLevel:
		return ffi.LogWarn
	case l == zapcore.ErrorLevel:
		return ffi.LogErr
	case l == zapcore.DPanicLevel:
		return ffi.LogCrit
	case l == zapcore.PanicLevel:
		return ffi.LogAlert
	default:
		return ffi.LogEmerg
	}
}

// ZapLevel maps a native severity back onto the zap scale. STDERR and
// EMERG through CRIT all gate as fatal-adjacent errors on the zap side.
func ZapLevel(n uintptr) zapcore.Level {
	switch n {
	case ffi.LogDebug:
		return zapcore.DebugLevel
	case ffi.LogInfo, ffi.LogNotice:
		return zapcore.InfoLevel
	case ffi.LogWarn:
		return zapcore.WarnLevel
	case ffi.LogErr:
		return zapcore.ErrorLevel
	case ffi.LogCrit:
		return zapcore.DPanicLevel
	case ffi.LogAlert:
		return zapcore.PanicLevel
	default:
		return zapcore.FatalLevel
	}
}
