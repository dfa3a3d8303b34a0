package delete_blocked_day

import (
	"context"
	"time"
)

type BlocksService interface {
	DeleteBlockedDay(ctx context.Context, date time.Time) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
