package audit

import (
	"github.com/rs/zerolog"
)

// Sink receives dispatched events on the worker goroutine.
type Sink interface {
	Record(ev Event) error
}

// Logger writes events to the activity log.
type Logger struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{log: log.With().Str("component", "audit").Logger()}
}

func (l *Logger) Record(ev Event) error {
	e := l.log.Info().
		Str("action", ev.Action).
		Str("entity", ev.Entity)

	if ev.UserID != nil {
		e = e.Int64("user_id", *ev.UserID)
	}
	if ev.EntityID != nil {
		e = e.Int64("entity_id", *ev.EntityID)
	}
	if ev.Metadata != nil {
		e = e.Interface("metadata", ev.Metadata)
	}

	e.Msg("activity")
	return nil
}
