package stego

import "fmt"

// EventLevel classifies an Event for the caller's logger.
type EventLevel string

const (
	LevelDebug EventLevel = "debug"
	LevelInfo  EventLevel = "info"
	LevelWarn  EventLevel = "warn"
)

// Event is a structured record of something that happened during a call.
// The package keeps no global logger; results carry their events and the
// caller decides what to do with them.
type Event struct {
	Level   EventLevel
	Code    string
	Message string
}

// Event codes emitted by Conceal and Reveal.
const (
	EventMapGenerated       = "map_generated"
	EventCandidatesSelected = "candidates_selected"
	EventBackupCreated      = "backup_created"
	EventBackupFailed       = "backup_failed"
	EventImageWritten       = "image_written"
	EventStrategyFailed     = "strategy_failed"
	EventStrategySucceeded  = "strategy_succeeded"
)

type eventLog struct {
	events []Event
}

func (l *eventLog) add(level EventLevel, code, format string, args ...any) {
	l.events = append(l.events, Event{
		Level:   level,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}
