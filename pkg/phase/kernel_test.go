package phase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-agents/loom/pkg/models"
)

func cleanArtifacts() Artifacts {
	return Artifacts{
		Tests: TestReport{
			Files:    []string{"pkg/service/service_test.go"},
			Failing:  0,
			Coverage: 91.5,
			Output:   []string{"ok  	pkg/service	0.41s	coverage: 91.5%"},
		},
		Commits: []string{
			"red: add failing rate-limit test",
			"green: implement rate limiter",
			"refactor: extract token bucket",
		},
		Review: ReviewReport{},
		Budgets: BudgetScores{
			Accessibility: 95,
			Performance:   92,
			Security:      85,
		},
	}
}

const testBlueprint = `{"service": "rate-limiter", "language": "go", "targets": ["api"]}`

func TestRunPromotes(t *testing.T) {
	k := NewKernel(Options{})

	result, err := k.Run(context.Background(), testBlueprint, cleanArtifacts())
	require.NoError(t, err)

	assert.Equal(t, models.PhaseCompleted, result.State.Phase)
	require.NotNil(t, result.State.Cerebrum)
	assert.Equal(t, models.DecisionPromote, result.State.Cerebrum.Decision)
	assert.GreaterOrEqual(t, result.State.Cerebrum.Confidence, 0.0)
	assert.LessOrEqual(t, result.State.Cerebrum.Confidence, 1.0)

	for _, p := range []models.Phase{models.PhaseStrategy, models.PhaseBuild, models.PhaseEvaluation} {
		verdict, ok := result.State.ValidationResults[p]
		require.True(t, ok, "missing verdict for %s", p)
		assert.True(t, verdict.Passed, "phase %s should pass", p)
	}

	// Strategy and build each leave one record; the four evaluation gates
	// leave four more.
	assert.Len(t, result.State.Evidence, 6)
}

func TestRunSecurityShortfallRecycles(t *testing.T) {
	k := NewKernel(Options{})

	artifacts := cleanArtifacts()
	artifacts.Budgets.Security = 70

	result, err := k.Run(context.Background(), testBlueprint, artifacts)
	require.NoError(t, err)

	assert.Equal(t, models.PhaseRecycled, result.State.Phase)
	require.NotNil(t, result.State.Cerebrum)
	assert.Equal(t, models.DecisionRecycle, result.State.Cerebrum.Decision)

	verdict := result.State.ValidationResults[models.PhaseEvaluation]
	assert.False(t, verdict.Passed)
	require.NotEmpty(t, verdict.Blockers)
	assert.Contains(t, strings.Join(verdict.Blockers, "\n"), "security")
}

func TestRunAccessibilityShortfallIsMajor(t *testing.T) {
	k := NewKernel(Options{})

	artifacts := cleanArtifacts()
	artifacts.Budgets.Accessibility = 60

	result, err := k.Run(context.Background(), testBlueprint, artifacts)
	require.NoError(t, err)

	// A single major stays under the limit; the run still promotes.
	assert.Equal(t, models.PhaseCompleted, result.State.Phase)
	verdict := result.State.ValidationResults[models.PhaseEvaluation]
	assert.True(t, verdict.Passed)
	assert.Len(t, verdict.Majors, 1)
}

func TestRunTDDGateBlocks(t *testing.T) {
	k := NewKernel(Options{})

	artifacts := cleanArtifacts()
	artifacts.Tests.Coverage = 55
	artifacts.Tests.Output = nil
	artifacts.Commits = []string{"wip", "more wip"}

	result, err := k.Run(context.Background(), testBlueprint, artifacts)
	require.NoError(t, err)

	assert.Equal(t, models.PhaseRecycled, result.State.Phase)
	verdict := result.State.ValidationResults[models.PhaseEvaluation]
	joined := strings.Join(verdict.Blockers, "\n")
	assert.Contains(t, joined, "coverage")
	assert.Contains(t, joined, "TDD evidence")
}

func TestRunFailingTestsStopAtBuild(t *testing.T) {
	k := NewKernel(Options{})

	artifacts := cleanArtifacts()
	artifacts.Tests.Failing = 2

	result, err := k.Run(context.Background(), testBlueprint, artifacts)
	require.NoError(t, err)

	assert.Equal(t, models.PhaseRecycled, result.State.Phase)
	_, ranEvaluation := result.State.ValidationResults[models.PhaseEvaluation]
	assert.False(t, ranEvaluation, "evaluation must not run after build fails")
}

func TestRunPhaseMonotonicity(t *testing.T) {
	rank := map[models.Phase]int{
		models.PhaseStrategy:   0,
		models.PhaseBuild:      1,
		models.PhaseEvaluation: 2,
		models.PhaseCompleted:  3,
		models.PhaseRecycled:   3,
	}

	for name, artifacts := range map[string]Artifacts{
		"promoting": cleanArtifacts(),
		"recycling": func() Artifacts {
			a := cleanArtifacts()
			a.Budgets.Security = 10
			return a
		}(),
	} {
		t.Run(name, func(t *testing.T) {
			k := NewKernel(Options{})
			result, err := k.Run(context.Background(), testBlueprint, artifacts)
			require.NoError(t, err)

			for i := 1; i < len(result.History); i++ {
				prev := result.History[i-1].Phase
				curr := result.History[i].Phase
				assert.Greater(t, rank[curr], rank[prev],
					"phase regressed from %s to %s", prev, curr)
			}
		})
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func() *RunResult {
		k := NewKernel(Options{Deterministic: true})
		result, err := k.Run(context.Background(), testBlueprint, cleanArtifacts())
		require.NoError(t, err)
		return result
	}

	first := run()
	second := run()

	assert.Equal(t, first.State.RunID, second.State.RunID)
	assert.True(t, strings.HasPrefix(first.State.RunID, "prp-deterministic-"))

	firstJSON, err := first.HistoryJSON()
	require.NoError(t, err)
	secondJSON, err := second.HistoryJSON()
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON, "histories must be byte-identical")
}

func TestRunDeterministicIDVariesByBlueprint(t *testing.T) {
	k := NewKernel(Options{Deterministic: true})

	a, err := k.Run(context.Background(), testBlueprint, cleanArtifacts())
	require.NoError(t, err)
	b, err := k.Run(context.Background(), `{"service": "other"}`, cleanArtifacts())
	require.NoError(t, err)

	assert.NotEqual(t, a.State.RunID, b.State.RunID)
}

func TestRunValidatorErrorBecomesBlocker(t *testing.T) {
	boom := errors.New("scanner unreachable")
	var ran []string
	k := NewKernel(Options{
		StrategyValidators: []Validator{
			{
				Name: "broken-scanner",
				Type: models.EvidenceTypeAnalysis,
				Run: func(context.Context, Input, *models.PRPState) (Report, error) {
					ran = append(ran, "broken-scanner")
					return Report{}, boom
				},
			},
			{
				Name: "healthy-check",
				Type: models.EvidenceTypeAnalysis,
				Run: func(context.Context, Input, *models.PRPState) (Report, error) {
					ran = append(ran, "healthy-check")
					return Report{}, nil
				},
			},
		},
	})

	result, err := k.Run(context.Background(), testBlueprint, cleanArtifacts())
	require.NoError(t, err, "validator errors must not abort the run")

	// Both validators ran and both left evidence despite the first failing.
	assert.Equal(t, []string{"broken-scanner", "healthy-check"}, ran)

	verdict := result.State.ValidationResults[models.PhaseStrategy]
	assert.False(t, verdict.Passed)
	require.Len(t, verdict.Evidence, 2)
	assert.Contains(t, strings.Join(verdict.Blockers, "\n"), "broken-scanner")
	assert.Equal(t, models.PhaseRecycled, result.State.Phase)
}

func TestRunEvidenceImmutability(t *testing.T) {
	k := NewKernel(Options{})

	result, err := k.Run(context.Background(), testBlueprint, cleanArtifacts())
	require.NoError(t, err)

	// The evidence visible in an earlier snapshot is unchanged by later
	// phases: compare each snapshot's records against the terminal state.
	final := result.State.Evidence
	for _, snapshot := range result.History {
		for i, record := range snapshot.Evidence {
			assert.Equal(t, final[i], record,
				"evidence %s changed after being appended", record.ID)
		}
	}
}

func TestRunCancelledContext(t *testing.T) {
	k := NewKernel(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := k.Run(ctx, testBlueprint, cleanArtifacts())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	require.NotNil(t, result)
	assert.Equal(t, models.PhaseRecycled, result.State.Phase)
	assert.Contains(t, result.State.Metadata["error"], "context canceled")
}

func TestRunEmptyBlueprint(t *testing.T) {
	k := NewKernel(Options{})

	_, err := k.Run(context.Background(), "   ", cleanArtifacts())
	assert.ErrorIs(t, err, ErrBlueprintEmpty)
}

type recordingSink struct {
	events []models.Event
}

func (s *recordingSink) Emit(event models.Event) {
	s.events = append(s.events, event)
}

func TestRunEmitsTransitionEvents(t *testing.T) {
	sink := &recordingSink{}
	k := NewKernel(Options{Sink: sink})

	result, err := k.Run(context.Background(), testBlueprint, cleanArtifacts())
	require.NoError(t, err)

	var transitions, terminals int
	for _, evt := range sink.events {
		assert.Equal(t, result.State.RunID, evt.ThreadID)
		require.NoError(t, evt.ValidateTimestamp())
		switch evt.Type {
		case models.EventTypePhaseTransition:
			transitions++
		case models.EventTypeRunTerminal:
			terminals++
		}
	}
	// strategy→build, build→evaluation, evaluation→completed.
	assert.Equal(t, 3, transitions)
	assert.Equal(t, 1, terminals)
}
