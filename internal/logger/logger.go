// Package logger is a ctx-first structured logging facade.
// Details attached to a context with ContextWith are added to every entry logged with that context.
package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Default is the logger used by the package level functions.
var Default = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(defaultLevel())
	return l
}

func Debug(ctx context.Context, msg string, ds ...Detail) {
	log(ctx, logrus.DebugLevel, msg, ds)
}

func Info(ctx context.Context, msg string, ds ...Detail) {
	log(ctx, logrus.InfoLevel, msg, ds)
}

func Warn(ctx context.Context, msg string, ds ...Detail) {
	log(ctx, logrus.WarnLevel, msg, ds)
}

func Error(ctx context.Context, msg string, ds ...Detail) {
	log(ctx, logrus.ErrorLevel, msg, ds)
}

func log(ctx context.Context, level logrus.Level, msg string, ds []Detail) {
	if !Default.IsLevelEnabled(level) {
		return
	}
	fields := getDetailsFromContext(ctx)
	for _, d := range ds {
		d.addTo(fields)
	}
	entry := Default.WithFields(fields)
	if ctx != nil {
		entry = entry.WithContext(ctx)
	}
	entry.Log(level, msg)
}
