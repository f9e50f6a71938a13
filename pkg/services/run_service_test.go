package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-agents/loom/pkg/models"
	"github.com/loom-agents/loom/pkg/phase"
	"github.com/loom-agents/loom/test/util"
)

func runKernel(t *testing.T) *phase.RunResult {
	t.Helper()
	kernel := phase.NewKernel(phase.Options{Deterministic: true})
	result, err := kernel.Run(context.Background(),
		`{"service":"checkout","goal":"split payment capture"}`,
		phase.Artifacts{
			Tests: phase.TestReport{
				Files:    []string{"capture_test.go"},
				Failing:  0,
				Coverage: 92.0,
				Output:   []string{"ok  	checkout/capture	0.41s"},
			},
			Commits: []string{"red: capture splits", "green: capture splits"},
			Review:  phase.ReviewReport{},
			Budgets: phase.BudgetScores{Accessibility: 95, Performance: 90, Security: 88},
		})
	require.NoError(t, err)
	return result
}

func TestSaveAndGetRun(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	svc := NewRunService(entClient)
	ctx := context.Background()

	result := runKernel(t)
	require.NoError(t, svc.SaveResult(ctx, result, true))

	run, err := svc.GetRun(ctx, result.State.RunID)
	require.NoError(t, err)
	assert.Equal(t, string(models.PhaseCompleted), string(run.Phase))
	assert.True(t, run.Deterministic)
	require.NotNil(t, run.CompletedAt)
	assert.Len(t, run.History, len(result.History))

	evidence, err := svc.GetEvidence(ctx, result.State.RunID)
	require.NoError(t, err)
	require.Len(t, evidence, len(result.State.Evidence))
	assert.Equal(t, result.State.Evidence[0].ID, evidence[0].ID)
	assert.JSONEq(t, result.State.Evidence[0].Content, evidence[0].Content)
}

func TestGetEvidencePreservesAppendOrder(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	svc := NewRunService(entClient)
	ctx := context.Background()

	// Outside deterministic mode evidence IDs are random UUIDs, so lexical
	// ID order and append order disagree.
	ids := []string{
		"e7a1c3f0-6c0e-4f65-9a41-2d9f0c8b11aa",
		"1b2c9d74-5a3e-4c08-8f6d-00e1a2b3c4d5",
		"a9f3428c-77d1-45b2-b0e3-9c8d7e6f5a40",
		"04d8fb12-3e9a-4b67-8c21-fedcba987654",
	}
	evidence := make([]models.Evidence, len(ids))
	for i, id := range ids {
		evidence[i] = models.Evidence{
			ID:        id,
			Type:      models.EvidenceTypeValidation,
			Source:    "phase-gate",
			Content:   `{"passed":true}`,
			Timestamp: "2026-08-24T10:00:00Z",
			Phase:     models.PhaseStrategy,
		}
	}
	state := models.PRPState{
		RunID:             "prp-append-order",
		Blueprint:         `{"service":"checkout","goal":"keep evidence ordered"}`,
		Phase:             models.PhaseCompleted,
		Evidence:          evidence,
		ValidationResults: map[models.Phase]models.Verdict{},
	}
	result := &phase.RunResult{State: state, History: []models.PRPState{state}}
	require.NoError(t, svc.SaveResult(ctx, result, false))

	got, err := svc.GetEvidence(ctx, state.RunID)
	require.NoError(t, err)
	require.Len(t, got, len(ids))
	for i, ev := range got {
		assert.Equal(t, ids[i], ev.ID)
	}
}

func TestGetRunNotFound(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	svc := NewRunService(entClient)

	_, err := svc.GetRun(context.Background(), "prp-missing")
	require.ErrorIs(t, err, ErrRunNotFound)
}

func TestListRunsNewestFirst(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	svc := NewRunService(entClient)
	ctx := context.Background()

	for _, blueprint := range []string{
		`{"service":"checkout","goal":"first run of the pair"}`,
		`{"service":"checkout","goal":"second run of the pair"}`,
	} {
		kernel := phase.NewKernel(phase.Options{Deterministic: true})
		result, err := kernel.Run(ctx, blueprint, phase.Artifacts{
			Tests:   phase.TestReport{Files: []string{"a_test.go"}, Coverage: 90, Output: []string{"ok"}},
			Commits: []string{"green: pass"},
			Budgets: phase.BudgetScores{Accessibility: 95, Performance: 90, Security: 85},
		})
		require.NoError(t, err)
		require.NoError(t, svc.SaveResult(ctx, result, true))
	}

	runs, err := svc.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
}
