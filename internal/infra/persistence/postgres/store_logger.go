package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"poolscout/config"
	"poolscout/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// maxLoggedSQL caps the statement text in a log line. Bulk VALUES loads
// render thousands of tuples.
const maxLoggedSQL = 2048

// storeLogger routes GORM output of one store through slog.
type storeLogger struct {
	logger        *slog.Logger
	store         string
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newStoreLogger(base *slog.Logger, store string, cfg *config.Config) logger.Interface {
	l := &storeLogger{
		logger:        base,
		store:         store,
		level:         logger.Warn,
		slowThreshold: config.DefaultSlowQuery,
	}
	if cfg != nil {
		if cfg.Env.Debug {
			l.level = logger.Info
		}
		if cfg.Env.SlowQuery > 0 {
			l.slowThreshold = cfg.Env.SlowQuery
		}
	}

	return l
}

func (l *storeLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *storeLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *storeLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *storeLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *storeLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, "GORM "+l.store+" store",
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

// Trace logs failed statements, slow statements and, at Info, every statement.
// Record-not-found is an expected outcome of lookups and is not logged.
func (l *storeLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(l.queryAttrs(sqlAndRowsFn, elapsed), slog.Any("error", err))
		l.logger.LogAttrs(ctx, slog.LevelError, "Query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(l.queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("threshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Slow query", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Query", l.queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *storeLogger) queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()
	if len(sql) > maxLoggedSQL {
		sql = sql[:maxLoggedSQL] + "..."
	}

	return []slog.Attr{
		slog.String("store", l.store),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
