// Package diag provides the diagnostic sink used by the display and
// continuity layers. The sink is a thin wrapper around zap that turns
// into a no-op when debug mode is off, so hot paths can call it
// unconditionally.
package diag

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink accepts prefixed debug text. A zero-value or disabled Sink
// discards everything.
type Sink struct {
	sugared *zap.SugaredLogger
	prefix  string
}

// Option configures a Sink.
type Option func(*options)

type options struct {
	writer io.Writer
}

// WithWriter redirects sink output, used by tests to capture emissions.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// NewSink builds a sink with the given prefix. When debug is false the
// sink is inert and costs a nil check per call.
func NewSink(prefix string, debug bool, opts ...Option) *Sink {
	if !debug {
		return &Sink{prefix: prefix}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if o.writer == nil && isatty.IsTerminal(os.Stderr.Fd()) {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	var ws zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	if o.writer != nil {
		ws = zapcore.AddSync(o.writer)
	}

	core := zapcore.NewCore(enc, ws, zap.DebugLevel)
	return &Sink{
		sugared: zap.New(core).Sugar(),
		prefix:  prefix,
	}
}

// Enabled reports whether the sink emits anything.
func (s *Sink) Enabled() bool {
	return s != nil && s.sugared != nil
}

// Named returns a sink sharing the underlying logger with an extended prefix.
func (s *Sink) Named(name string) *Sink {
	if !s.Enabled() {
		return &Sink{prefix: name}
	}
	return &Sink{sugared: s.sugared, prefix: s.prefix + "/" + name}
}

// Debugf emits prefixed debug text. No-op when debug mode is off.
func (s *Sink) Debugf(format string, args ...interface{}) {
	if !s.Enabled() {
		return
	}
	s.sugared.With("component", s.prefix).Debugf(format, args...)
}

// Errorf emits prefixed error text. No-op when debug mode is off.
func (s *Sink) Errorf(format string, args ...interface{}) {
	if !s.Enabled() {
		return
	}
	s.sugared.With("component", s.prefix).Errorf(format, args...)
}

// With returns a sink that attaches the given key/value pairs to every
// emission.
func (s *Sink) With(kv ...interface{}) *Sink {
	if !s.Enabled() {
		return s
	}
	return &Sink{sugared: s.sugared.With(kv...), prefix: s.prefix}
}

// Sync flushes buffered output, if any.
func (s *Sink) Sync() {
	if s.Enabled() {
		_ = s.sugared.Sync()
	}
}
