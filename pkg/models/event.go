package models

import (
	"fmt"
	"time"
)

// Lifecycle event types recognised on the bus.
const (
	EventTypeStart      = "start"
	EventTypeNodeStart  = "node_start"
	EventTypeNodeFinish = "node_finish"
	EventTypeToken      = "token"
	EventTypeError      = "error"
	EventTypeFinish     = "finish"

	// Kernel-internal event types carried in the per-session log.
	EventTypePlanCreated     = "plan-created"
	EventTypeStepCompleted   = "step-completed"
	EventTypePhaseTransition = "phase-transition"
	EventTypeRunTerminal     = "run-terminal"
)

// Event is a single lifecycle event. Events are append-only; Timestamp is
// set at emission by the emitting component, never by a subscriber.
type Event struct {
	Type      string         `json:"type"`
	Timestamp string         `json:"timestamp"`
	ThreadID  string         `json:"thread_id"`
	Data      map[string]any `json:"data,omitempty"`
}

// NewEvent stamps an event with the current UTC time in ISO-8601 form.
func NewEvent(eventType, threadID string, data map[string]any) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		ThreadID:  threadID,
		Data:      data,
	}
}

// ValidateTimestamp enforces strict ISO-8601 parsing at the consumer
// boundary. Producers emit RFC 3339 (with or without fractional seconds).
func (e Event) ValidateTimestamp() error {
	if _, err := time.Parse(time.RFC3339Nano, e.Timestamp); err != nil {
		return fmt.Errorf("event %q: invalid ISO-8601 timestamp %q: %w",
			e.Type, e.Timestamp, err)
	}
	return nil
}
