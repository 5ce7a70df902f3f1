// Package logging wraps go.uber.org/zap with the small logger surface the
// rest of this module needs: named loggers, level-gated Printf-style
// methods, and a context-aware debug variant.
package logging

import (
	"context"

	"go.uber.org/zap"
)

// Level is a coarse logging level.
type Level int

// Logging levels, ordered least to most severe.
const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) zapLevel() zap.AtomicLevel {
	switch l {
	case DEBUG:
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case WARN:
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case ERROR:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}

// Logger is the logging interface consumed by the holonomic lifecycle
// controller. It is intentionally small: Printf-style logging plus one
// context-aware debug call that stays silent unless the logger is at DEBUG
// or the caller has opted into a debug context.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	CDebugf(ctx context.Context, template string, args ...interface{})
	With(args ...interface{}) Logger
	Sublogger(name string) Logger
}
