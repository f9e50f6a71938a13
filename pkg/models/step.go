package models

import "time"

// StepStatus is the execution state of a single plan step.
// Transitions pending → completed and pending → failed are monotonic.
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
)

// StepRecord is one capability-bound unit of work inside a plan.
type StepRecord struct {
	Capability  string         `json:"capability"`
	WorkerName  string         `json:"worker_name"`
	Status      StepStatus     `json:"status"`
	Input       map[string]any `json:"input,omitempty"`
	Output      any            `json:"output,omitempty"`
	Error       string         `json:"error,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}
