package models

import "time"

// Document is a context document retrieved from the RAG substrate.
type Document struct {
	ID       string         `json:"id"`
	Content  string         `json:"content"`
	Score    float64        `json:"score,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SessionState is the persisted state of a workflow session, keyed by
// session ID. Step records are upserted per capability: re-running a
// capability overwrites its record and bumps LastUpdated.
type SessionState struct {
	Steps       []StepRecord `json:"steps"`
	Facts       []string     `json:"facts"`
	LastUpdated time.Time    `json:"last_updated"`
	Reasoning   *Reasoning   `json:"reasoning,omitempty"`
}

// NewSessionState returns a fresh, empty session state.
func NewSessionState() *SessionState {
	return &SessionState{
		Steps:       []StepRecord{},
		Facts:       []string{},
		LastUpdated: time.Now(),
	}
}

// FindStep returns a pointer to the step record for the given capability,
// or nil when no record exists yet.
func (s *SessionState) FindStep(capability string) *StepRecord {
	for i := range s.Steps {
		if s.Steps[i].Capability == capability {
			return &s.Steps[i]
		}
	}
	return nil
}

// UpsertStep overwrites the record for rec.Capability, or appends it when
// first seen, and bumps LastUpdated.
func (s *SessionState) UpsertStep(rec StepRecord) {
	if existing := s.FindStep(rec.Capability); existing != nil {
		*existing = rec
	} else {
		s.Steps = append(s.Steps, rec)
	}
	s.LastUpdated = time.Now()
}
