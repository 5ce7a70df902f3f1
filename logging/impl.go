package logging

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

type debugModeKey struct{}

// WithDebugMode returns a context that forces CDebugf to log even on a
// logger whose level is above DEBUG. Used by callers that want a one-off
// verbose trace of a single search without lowering the logger's level
// globally.
func WithDebugMode(ctx context.Context) context.Context {
	return context.WithValue(ctx, debugModeKey{}, true)
}

func isDebugMode(ctx context.Context) bool {
	v, _ := ctx.Value(debugModeKey{}).(bool)
	return v
}

type impl struct {
	name  string
	level Level
	sugar *zap.SugaredLogger
}

// NewLogger returns a new logger that emits Info+ logs to stdout.
func NewLogger(name string) Logger {
	return newLogger(name, INFO)
}

// NewDebugLogger returns a new logger that emits Debug+ logs to stdout.
func NewDebugLogger(name string) Logger {
	return newLogger(name, DEBUG)
}

// NewTestLogger returns a logger that writes through the given testing.TB,
// so log output is attributed to the test that produced it.
func NewTestLogger(tb testing.TB) Logger {
	zl := zaptest.NewLogger(tb, zaptest.Level(zap.DebugLevel))
	return &impl{name: "", level: DEBUG, sugar: zl.Sugar()}
}

func newLogger(name string, level Level) Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = level.zapLevel()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stdout"}
	zl := zap.Must(cfg.Build())
	return &impl{name: name, level: level, sugar: zl.Sugar().Named(name)}
}

func (imp *impl) Debugf(template string, args ...interface{}) {
	imp.sugar.Debugf(template, args...)
}

func (imp *impl) CDebugf(ctx context.Context, template string, args ...interface{}) {
	if imp.level == DEBUG {
		imp.sugar.Debugf(template, args...)
		return
	}
	if isDebugMode(ctx) {
		// The zap core drops DEBUG entries on a logger above DEBUG, so the
		// entry is written to the core directly, bypassing its level check.
		_ = imp.sugar.Desugar().Core().Write(zapcore.Entry{
			Level:      zapcore.DebugLevel,
			Time:       time.Now(),
			LoggerName: imp.name,
			Message:    fmt.Sprintf(template, args...),
		}, nil)
	}
}

func (imp *impl) Infof(template string, args ...interface{}) {
	imp.sugar.Infof(template, args...)
}

func (imp *impl) Warnf(template string, args ...interface{}) {
	imp.sugar.Warnf(template, args...)
}

func (imp *impl) Errorf(template string, args ...interface{}) {
	imp.sugar.Errorf(template, args...)
}

func (imp *impl) With(args ...interface{}) Logger {
	return &impl{name: imp.name, level: imp.level, sugar: imp.sugar.With(args...)}
}

func (imp *impl) Sublogger(name string) Logger {
	newName := name
	if imp.name != "" {
		newName = imp.name + "." + name
	}
	return &impl{name: newName, level: imp.level, sugar: imp.sugar.Named(name)}
}
