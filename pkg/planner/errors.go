package planner

import "errors"

var (
	// ErrCapabilityUnassigned indicates a goal requires a capability no
	// registered worker declares. Fatal for the run at prepare time.
	ErrCapabilityUnassigned = errors.New("no worker registered for required capability")

	// ErrNoWorkerForCapability indicates a step's worker disappeared
	// between prepare and execution. Fatal for the run.
	ErrNoWorkerForCapability = errors.New("no worker for capability")

	// ErrEmptyObjective indicates a goal without an objective.
	ErrEmptyObjective = errors.New("goal objective is required")

	// ErrNoCapabilities indicates a goal without required capabilities.
	ErrNoCapabilities = errors.New("goal requires at least one capability")
)
