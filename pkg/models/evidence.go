package models

// EvidenceType classifies what a validator attested to.
type EvidenceType string

const (
	EvidenceTypeTest       EvidenceType = "test"
	EvidenceTypeAnalysis   EvidenceType = "analysis"
	EvidenceTypeValidation EvidenceType = "validation"
)

// Evidence is an immutable record of a validator outcome. Content is a JSON
// string so the record can be persisted and replayed byte-for-byte. Once
// appended to a run, an Evidence value is never mutated.
type Evidence struct {
	ID        string       `json:"id"`
	Type      EvidenceType `json:"type"`
	Source    string       `json:"source"`
	Content   string       `json:"content"`
	Timestamp string       `json:"timestamp"`
	Phase     Phase        `json:"phase"`
}
