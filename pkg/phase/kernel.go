// Package phase drives the PRP (Plan-Refine-Promote) review workflow: a
// fixed state machine whose transitions are gated on evidence-backed
// validator verdicts, with an opt-in deterministic replay mode.
package phase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/loom-agents/loom/pkg/models"
)

// EventSink receives lifecycle events. Implemented by the streaming
// manager; a nil sink disables emission.
type EventSink interface {
	Emit(event models.Event)
}

// Options configures a Kernel. Zero-value validator slices select the
// default validator set for each phase.
type Options struct {
	// Deterministic derives the run ID from the blueprint and replaces
	// wall-clock timestamps with a monotonic counter, so two runs on the
	// same blueprint produce byte-identical execution histories.
	Deterministic bool
	Sink          EventSink
	Logger        *slog.Logger

	StrategyValidators   []Validator
	BuildValidators      []Validator
	EvaluationValidators []Validator
}

// Kernel executes PRP runs. Safe for concurrent Run calls: all mutable
// state lives in the run.
type Kernel struct {
	opts   Options
	logger *slog.Logger
}

// NewKernel creates a kernel with the default validators for any phase the
// options leave unset.
func NewKernel(opts Options) *Kernel {
	if opts.StrategyValidators == nil {
		opts.StrategyValidators = []Validator{BlueprintAnalysis()}
	}
	if opts.BuildValidators == nil {
		opts.BuildValidators = []Validator{BuildVerification()}
	}
	if opts.EvaluationValidators == nil {
		opts.EvaluationValidators = []Validator{
			TDDGate(), ReviewGate(), BudgetGate(), ReadinessGate(),
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Kernel{opts: opts, logger: logger}
}

// RunResult is the terminal state of a PRP run together with its
// append-only execution history: one snapshot per transition, starting
// with the initial strategy-phase state.
type RunResult struct {
	State   models.PRPState
	History []models.PRPState
}

// HistoryJSON serialises the execution history. In deterministic mode the
// bytes are identical across runs on the same blueprint.
func (r *RunResult) HistoryJSON() ([]byte, error) {
	return json.Marshal(r.History)
}

// Run drives a blueprint through strategy, build, and evaluation. The
// returned error is non-nil only for fatal failures (empty blueprint,
// cancellation); validator errors are captured as evidence blockers and
// never abort the run.
func (k *Kernel) Run(ctx context.Context, blueprint string, artifacts Artifacts) (*RunResult, error) {
	blueprint = strings.TrimSpace(blueprint)
	if blueprint == "" {
		return nil, ErrBlueprintEmpty
	}

	runID := k.runID(blueprint)
	clock := k.clock(runID)
	in := Input{Blueprint: blueprint, Artifacts: artifacts}

	state := models.PRPState{
		RunID:             runID,
		Blueprint:         blueprint,
		Phase:             models.PhaseStrategy,
		ValidationResults: make(map[models.Phase]models.Verdict),
		Metadata:          make(map[string]any),
	}
	result := &RunResult{History: []models.PRPState{state.Clone()}}

	k.logger.Info("PRP run started",
		"run_id", runID, "deterministic", k.opts.Deterministic)

	for !state.Phase.Terminal() {
		if err := ctx.Err(); err != nil {
			k.recycleFatal(&state, result, clock, err)
			return result, err
		}

		verdict := k.runValidators(ctx, k.validatorsFor(state.Phase), in, &state, clock)
		state.ValidationResults[state.Phase] = verdict

		next := nextPhase(state.Phase, verdict)
		if next.Terminal() {
			state.Cerebrum = k.decide(&state, next)
		}
		k.transition(&state, result, next, clock, map[string]any{
			"passed":   verdict.Passed,
			"blockers": len(verdict.Blockers),
			"majors":   len(verdict.Majors),
		})
	}

	result.State = state.Clone()
	k.logger.Info("PRP run finished",
		"run_id", runID, "phase", state.Phase, "evidence", len(state.Evidence))
	return result, nil
}

// runID derives the run identifier. Deterministic runs hash the blueprint
// so identical blueprints share an ID.
func (k *Kernel) runID(blueprint string) string {
	if k.opts.Deterministic {
		return "prp-deterministic-" + stableHash(blueprint)
	}
	return "prp-" + uuid.NewString()
}

func (k *Kernel) clock(runID string) Clock {
	if k.opts.Deterministic {
		return newCounterClock(runID)
	}
	return &wallClock{newID: uuid.NewString}
}

func (k *Kernel) validatorsFor(p models.Phase) []Validator {
	switch p {
	case models.PhaseStrategy:
		return k.opts.StrategyValidators
	case models.PhaseBuild:
		return k.opts.BuildValidators
	case models.PhaseEvaluation:
		return k.opts.EvaluationValidators
	default:
		return nil
	}
}

// runValidators executes the phase's validators in order, appending one
// evidence record per validator. A validator error adds a blocker but does
// not stop the remaining validators.
func (k *Kernel) runValidators(ctx context.Context, validators []Validator, in Input, state *models.PRPState, clock Clock) models.Verdict {
	verdict := models.Verdict{}

	for _, v := range validators {
		report, err := v.Run(ctx, in, state)
		var content []byte
		if err != nil {
			failure := &ValidatorFailure{Validator: v.Name, Err: err}
			verdict.Blockers = append(verdict.Blockers, failure.Error())
			content, _ = json.Marshal(map[string]any{"error": err.Error()})
			k.logger.Warn("Validator failed",
				"run_id", state.RunID, "validator", v.Name, "error", err)
		} else {
			verdict.Blockers = append(verdict.Blockers, report.Blockers...)
			verdict.Majors = append(verdict.Majors, report.Majors...)
			content, _ = json.Marshal(report)
		}

		evidence := models.Evidence{
			ID:        clock.EvidenceID(),
			Type:      v.Type,
			Source:    v.Name,
			Content:   string(content),
			Timestamp: clock.Timestamp(),
			Phase:     state.Phase,
		}
		state.Evidence = append(state.Evidence, evidence)
		verdict.Evidence = append(verdict.Evidence, evidence.ID)
	}

	verdict.Passed = len(verdict.Blockers) == 0 && len(verdict.Majors) <= majorsLimit
	verdict.Timestamp = clock.Timestamp()
	return verdict
}

// nextPhase applies the transition table.
func nextPhase(current models.Phase, verdict models.Verdict) models.Phase {
	if !verdict.Passed {
		return models.PhaseRecycled
	}
	switch current {
	case models.PhaseStrategy:
		return models.PhaseBuild
	case models.PhaseBuild:
		return models.PhaseEvaluation
	default:
		return models.PhaseCompleted
	}
}

// transition advances the phase, snapshots the state into the history, and
// emits the transition event. Terminal phases also emit a terminal event.
func (k *Kernel) transition(state *models.PRPState, result *RunResult, next models.Phase, clock Clock, data map[string]any) {
	from := state.Phase
	state.Phase = next
	result.History = append(result.History, state.Clone())

	eventData := map[string]any{"from": string(from), "to": string(next)}
	for key, value := range data {
		eventData[key] = value
	}
	k.emit(models.Event{
		Type:      models.EventTypePhaseTransition,
		Timestamp: clock.Timestamp(),
		ThreadID:  state.RunID,
		Data:      eventData,
	})

	if next.Terminal() {
		terminalData := map[string]any{"phase": string(next)}
		if state.Cerebrum != nil {
			terminalData["decision"] = string(state.Cerebrum.Decision)
		}
		k.emit(models.Event{
			Type:      models.EventTypeRunTerminal,
			Timestamp: clock.Timestamp(),
			ThreadID:  state.RunID,
			Data:      terminalData,
		})
	}
}

// recycleFatal forces the run into recycled after a fatal error, preserving
// any partial evidence already gathered.
func (k *Kernel) recycleFatal(state *models.PRPState, result *RunResult, clock Clock, err error) {
	state.Metadata["error"] = err.Error()
	state.Cerebrum = &models.Decision{
		Decision:   models.DecisionRecycle,
		Reasoning:  fmt.Sprintf("fatal error during %s phase: %v", state.Phase, err),
		Confidence: 1.0,
	}
	k.transition(state, result, models.PhaseRecycled, clock, map[string]any{
		"error": err.Error(),
	})
	result.State = state.Clone()
	k.logger.Error("PRP run aborted",
		"run_id", state.RunID, "error", err)
}

// decide produces the cerebrum verdict for a terminal transition.
func (k *Kernel) decide(state *models.PRPState, next models.Phase) *models.Decision {
	if next == models.PhaseCompleted {
		return &models.Decision{
			Decision: models.DecisionPromote,
			Reasoning: fmt.Sprintf(
				"all phase gates passed with %d evidence records",
				len(state.Evidence)),
			Confidence: 0.9,
		}
	}
	verdict := state.ValidationResults[state.Phase]
	return &models.Decision{
		Decision: models.DecisionRecycle,
		Reasoning: fmt.Sprintf(
			"%s phase failed with %d blockers and %d majors",
			state.Phase, len(verdict.Blockers), len(verdict.Majors)),
		Confidence: 0.8,
	}
}

func (k *Kernel) emit(event models.Event) {
	if k.opts.Sink != nil {
		k.opts.Sink.Emit(event)
	}
}

// stableHash returns a short stable digest of the blueprint.
func stableHash(blueprint string) string {
	sum := sha256.Sum256([]byte(blueprint))
	return hex.EncodeToString(sum[:])[:16]
}
