package logging

import (
	"context"
	"errors"
	"inventory/internal/core/domain/logging"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

type ZapLogger struct {
	logger        *zap.Logger
	sugar         *zap.SugaredLogger
	captureErrors bool
}

// NewZapLogger creates a production logger. Errors are reported to Sentry
// as well if captureErrors is set, Sentry must be initialized by the caller.
func NewZapLogger(captureErrors bool) *ZapLogger {
	logger, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		panic("Could not create Zap logger.")
	}
	sugar := logger.Sugar()
	return &ZapLogger{logger: logger, sugar: sugar, captureErrors: captureErrors}
}

func (l *ZapLogger) Sync() {
	l.logger.Sync()
}

func (l *ZapLogger) Debug(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.sugar.Debugw(msg, prepareArgs(entries...)...)
}

func (l *ZapLogger) Info(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.sugar.Infow(msg, prepareArgs(entries...)...)
}

func (l *ZapLogger) Warning(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.sugar.Warnw(msg, prepareArgs(entries...)...)
}

func (l *ZapLogger) Error(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.sugar.Errorw(msg, prepareArgs(entries...)...)
	if l.captureErrors {
		capture(ctx, msg, entries...)
	}
}

func capture(ctx context.Context, msg string, entries ...logging.LogEntry) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		var err error
		for _, e := range entries {
			if entryErr, ok := e.Value.(error); ok && err == nil {
				err = entryErr
				continue
			}
			scope.SetExtra(e.Key, e.Value)
		}
		if err == nil {
			err = errors.New(msg)
		}
		scope.SetExtra("msg", msg)
		hub.CaptureException(err)
	})
}

func prepareArgs(entries ...logging.LogEntry) []interface{} {
	args := make([]interface{}, 0, len(entries)*2)
	for _, e := range entries {
		args = append(args, e.Key, e.Value)
	}
	return args
}
