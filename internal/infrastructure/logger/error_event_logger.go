package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ErrorEvent is a persisted record of a request that failed on a store error,
// kept with enough context to trace it back: method, path, the component that
// raised it and the request body.
type ErrorEvent struct {
	ID        uint `gorm:"primaryKey"`
	RequestID string
	Method    string
	Path      string
	Component string
	Body      string
	Message   string
	Timestamp time.Time
}

type ErrorEventLogger interface {
	LogError(ctx context.Context, event ErrorEvent) error
}

type PGErrorEventLogger struct {
	db *gorm.DB
}

func NewPGErrorEventLogger(db *gorm.DB) *PGErrorEventLogger {
	return &PGErrorEventLogger{db: db}
}

func (l *PGErrorEventLogger) LogError(ctx context.Context, event ErrorEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return l.db.WithContext(ctx).Create(&event).Error
}
