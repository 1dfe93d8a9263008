package log

import (
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// loopCheck reports whether the caller is on the worker thread.
	// Until the event loop registers one, every caller is trusted;
	// master-process and startup logging happens before threads fork.
	loopCheck atomic.Pointer[func() bool]

	dropped atomic.Uint64
)

// SetLoopCheck installs the worker-thread identity check used to
// enforce the single-thread contract. The event loop installs it on
// startup.
func SetLoopCheck(fn func() bool) {
	loopCheck.Store(&fn)
}

func onLoop() bool {
	fn := loopCheck.Load()
	return fn == nil || (*fn)()
}

type nativeCore struct {
	zapcore.LevelEnabler
	enc  zapcore.Encoder
	sink *Sink
}

// NewCore returns a zapcore.Core that encodes entries through the
// sink. Timestamps and severity tags are left to the native log,
// which prefixes both.
func NewCore(sink *Sink, enab zapcore.LevelEnabler) zapcore.Core {
	cfg := zapcore.EncoderConfig{
		MessageKey:       "msg",
		NameKey:          "logger",
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	return &nativeCore{
		LevelEnabler: enab,
		enc:          zapcore.NewConsoleEncoder(cfg),
		sink:         sink,
	}
}

// New returns a zap logger writing through the sink at the given
// minimum level.
func New(sink *Sink, level zapcore.Level) *zap.Logger {
	return zap.New(NewCore(sink, level))
}

func (c *nativeCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.enc = c.enc.Clone()
	for _, f := range fields {
		f.AddTo(clone.enc)
	}
	return &clone
}

func (c *nativeCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *nativeCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if !onLoop() {
		dropped.Add(1)
		return nil
	}
	if n := dropped.Swap(0); n > 0 {
		c.sink.Write(NativeLevel(zapcore.WarnLevel),
			[]byte("dropped "+strconv.FormatUint(n, 10)+" off-thread log entries"))
	}

	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	line := buf.Bytes()
	for len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}
	c.sink.Write(NativeLevel(ent.Level), line)
	buf.Free()
	return nil
}

func (c *nativeCore) Sync() error { return nil }
