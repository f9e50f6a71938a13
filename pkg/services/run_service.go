// Package services provides the persistence layer between the workflow
// kernel and the database: PRP run archival and retrieval.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/loom-agents/loom/ent"
	"github.com/loom-agents/loom/ent/evidencerecord"
	"github.com/loom-agents/loom/ent/prprun"
	"github.com/loom-agents/loom/pkg/models"
	"github.com/loom-agents/loom/pkg/phase"
)

// ErrRunNotFound indicates no persisted run exists under the requested ID.
var ErrRunNotFound = errors.New("run not found")

// RunService archives completed PRP runs and serves them to the API.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// SaveResult persists a finished kernel run: one prp_runs row plus one
// evidence_records row per evidence entry, in a single transaction.
// Terminal runs get completed_at stamped at save time.
func (s *RunService) SaveResult(httpCtx context.Context, result *phase.RunResult, deterministic bool) error {
	state := result.State

	history, err := historyDocument(result.History)
	if err != nil {
		return fmt.Errorf("encode history for run %q: %w", state.RunID, err)
	}
	validations, err := toDocument(state.ValidationResults)
	if err != nil {
		return fmt.Errorf("encode validation results for run %q: %w", state.RunID, err)
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	runBuilder := tx.PRPRun.Create().
		SetID(state.RunID).
		SetBlueprint(state.Blueprint).
		SetPhase(prprun.Phase(state.Phase)).
		SetDeterministic(deterministic).
		SetValidationResults(validations).
		SetMetadata(state.Metadata).
		SetHistory(history)

	if state.Cerebrum != nil {
		cerebrum, err := toDocument(state.Cerebrum)
		if err != nil {
			return fmt.Errorf("encode cerebrum for run %q: %w", state.RunID, err)
		}
		runBuilder.SetCerebrum(cerebrum)
	}
	if state.Phase.Terminal() {
		runBuilder.SetCompletedAt(time.Now())
	}

	if err := runBuilder.Exec(ctx); err != nil {
		return fmt.Errorf("save run %q: %w", state.RunID, err)
	}

	if len(state.Evidence) > 0 {
		builders := make([]*ent.EvidenceRecordCreate, len(state.Evidence))
		for i, ev := range state.Evidence {
			builders[i] = tx.EvidenceRecord.Create().
				SetID(ev.ID).
				SetRunID(state.RunID).
				SetSeq(i).
				SetType(evidencerecord.Type(ev.Type)).
				SetSource(ev.Source).
				SetContent(ev.Content).
				SetPhase(string(ev.Phase)).
				SetTimestamp(ev.Timestamp)
		}
		if err := tx.EvidenceRecord.CreateBulk(builders...).Exec(ctx); err != nil {
			return fmt.Errorf("save evidence for run %q: %w", state.RunID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run %q: %w", state.RunID, err)
	}
	return nil
}

// GetRun returns the persisted run, or ErrRunNotFound.
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.PRPRun, error) {
	run, err := s.client.PRPRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, fmt.Errorf("query run %q: %w", runID, err)
	}
	return run, nil
}

// GetEvidence returns the run's evidence records in emission order. The
// seq column carries the position within the run's evidence list; IDs are
// random outside deterministic mode and carry no ordering.
func (s *RunService) GetEvidence(ctx context.Context, runID string) ([]models.Evidence, error) {
	rows, err := s.client.EvidenceRecord.Query().
		Where(evidencerecord.RunID(runID)).
		Order(ent.Asc(evidencerecord.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query evidence for run %q: %w", runID, err)
	}

	out := make([]models.Evidence, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Evidence{
			ID:        row.ID,
			Type:      models.EvidenceType(row.Type),
			Source:    row.Source,
			Content:   row.Content,
			Timestamp: row.Timestamp,
			Phase:     models.Phase(row.Phase),
		})
	}
	return out, nil
}

// ListRuns returns recent runs, newest first.
func (s *RunService) ListRuns(ctx context.Context, limit int) ([]*ent.PRPRun, error) {
	if limit <= 0 {
		limit = 50
	}
	runs, err := s.client.PRPRun.Query().
		Order(ent.Desc(prprun.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// historyDocument converts state snapshots to the JSONB history shape.
func historyDocument(history []models.PRPState) ([]interface{}, error) {
	raw, err := json.Marshal(history)
	if err != nil {
		return nil, err
	}
	var doc []interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// toDocument converts any JSON-marshalable value to a generic document.
func toDocument(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
