/*
Package zapadapter implements tracing with Uber's zap logger.

Sub-packages of tracing implement concrete tracers. Package
zapadapter writes to a zap.SugaredLogger; key/value pairs set with P are
emitted as structured fields.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package zapadapter

import (
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Tracer is our adapter implementation which implements interface
// tracing.Trace, using a zap logger.
type Tracer struct {
	log   *zap.SugaredLogger
	level zap.AtomicLevel
}

// New creates a new Tracer instance writing to stderr.
func New() tracing.Trace {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput creates a new Tracer instance writing to w. The initial
// trace level is tracing.LevelError.
func NewWithOutput(w io.Writer) *Tracer {
	t := &Tracer{level: zap.NewAtomicLevelAt(zapcore.ErrorLevel)}
	t.setup(zapcore.AddSync(w))
	return t
}

func (t *Tracer) setup(out zapcore.WriteSyncer) {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(out), t.level)
	t.log = zap.New(core).Sugar()
}

// GetAdapter creates an adapter (i.e., factory for tracing.Trace) to
// be used to initialize (global) tracers.
func GetAdapter() tracing.Adapter {
	return New
}

// ----------------------------------------------------------------------------

// P is part of interface Trace
func (t *Tracer) P(key string, val interface{}) tracing.Trace {
	return &logentry{tracer: t, log: t.log.With(key, val)}
}

// Debugf is part of interface Trace
func (t *Tracer) Debugf(s string, args ...interface{}) {
	t.log.Debugf(s, args...)
}

// Infof is part of interface Trace
func (t *Tracer) Infof(s string, args ...interface{}) {
	t.log.Infof(s, args...)
}

// Errorf is part of interface Trace
func (t *Tracer) Errorf(s string, args ...interface{}) {
	t.log.Errorf(s, args...)
}

// SetTraceLevel is part of interface Trace
func (t *Tracer) SetTraceLevel(l tracing.TraceLevel) {
	t.level.SetLevel(zapLevel(l))
}

// GetTraceLevel is part of interface Trace
func (t *Tracer) GetTraceLevel() tracing.TraceLevel {
	switch t.level.Level() {
	case zapcore.DebugLevel:
		return tracing.LevelDebug
	case zapcore.InfoLevel:
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// SetOutput is part of interface Trace
func (t *Tracer) SetOutput(writer io.Writer) {
	t.setup(zapcore.AddSync(writer))
}

// Sync flushes buffered log entries.
func (t *Tracer) Sync() error {
	return t.log.Sync()
}

func zapLevel(l tracing.TraceLevel) zapcore.Level {
	switch l {
	case tracing.LevelDebug:
		return zapcore.DebugLevel
	case tracing.LevelInfo:
		return zapcore.InfoLevel
	}
	return zapcore.ErrorLevel
}

// ----------------------------------------------------------------------------

// logentry is a helper for tracing with fields
type logentry struct { // will have to implement tracing.Trace
	tracer *Tracer
	log    *zap.SugaredLogger
}

func (l *logentry) Debugf(s string, args ...interface{}) { l.log.Debugf(s, args...) }
func (l *logentry) Infof(s string, args ...interface{})  { l.log.Infof(s, args...) }
func (l *logentry) Errorf(s string, args ...interface{}) { l.log.Errorf(s, args...) }

func (l *logentry) P(key string, val interface{}) tracing.Trace {
	return &logentry{tracer: l.tracer, log: l.log.With(key, val)}
}

func (l *logentry) SetTraceLevel(tracing.TraceLevel)  {}
func (l *logentry) GetTraceLevel() tracing.TraceLevel { return l.tracer.GetTraceLevel() }
func (l *logentry) SetOutput(writer io.Writer)        {}
