package models

// Phase is a state of the PRP (Plan–Refine–Promote) workflow. Progression
// is monotonic: strategy → build → evaluation → completed, with recycled
// reachable from any non-terminal phase.
type Phase string

const (
	PhaseStrategy   Phase = "strategy"
	PhaseBuild      Phase = "build"
	PhaseEvaluation Phase = "evaluation"
	PhaseCompleted  Phase = "completed"
	PhaseRecycled   Phase = "recycled"
)

// Terminal reports whether no further transition is allowed from p.
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseRecycled
}

// Verdict is the aggregated outcome of the validators that ran for a phase.
type Verdict struct {
	Passed    bool     `json:"passed"`
	Blockers  []string `json:"blockers"`
	Majors    []string `json:"majors"`
	Evidence  []string `json:"evidence"`
	Timestamp string   `json:"timestamp"`
}

// DecisionOutcome is the final promote-or-recycle call on a PRP run.
type DecisionOutcome string

const (
	DecisionPromote DecisionOutcome = "promote"
	DecisionRecycle DecisionOutcome = "recycle"
)

// Decision is the cerebrum verdict attached when a run reaches a terminal
// phase. Confidence is in [0,1].
type Decision struct {
	Decision   DecisionOutcome `json:"decision"`
	Reasoning  string          `json:"reasoning"`
	Confidence float64         `json:"confidence"`
}

// PRPState is the full state of one PRP run. Snapshots of this struct are
// appended to the run's execution history on every transition.
type PRPState struct {
	RunID             string            `json:"run_id"`
	Blueprint         string            `json:"blueprint"`
	Phase             Phase             `json:"phase"`
	Evidence          []Evidence        `json:"evidence"`
	ValidationResults map[Phase]Verdict `json:"validation_results"`
	Cerebrum          *Decision         `json:"cerebrum,omitempty"`
	Metadata          map[string]any    `json:"metadata,omitempty"`
}

// Clone returns a deep-enough copy of the state for history snapshots:
// slices and maps are copied so later mutation of the live state cannot
// reach back into an appended snapshot.
func (s PRPState) Clone() PRPState {
	out := s
	out.Evidence = make([]Evidence, len(s.Evidence))
	copy(out.Evidence, s.Evidence)
	out.ValidationResults = make(map[Phase]Verdict, len(s.ValidationResults))
	for k, v := range s.ValidationResults {
		out.ValidationResults[k] = v
	}
	if s.Cerebrum != nil {
		c := *s.Cerebrum
		out.Cerebrum = &c
	}
	out.Metadata = make(map[string]any, len(s.Metadata))
	for k, v := range s.Metadata {
		out.Metadata[k] = v
	}
	return out
}
