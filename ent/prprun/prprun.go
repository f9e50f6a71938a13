// Code generated by ent, DO NOT EDIT.

package prprun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the prprun type in the database.
	Label = "prp_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldBlueprint holds the string denoting the blueprint field in the database.
	FieldBlueprint = "blueprint"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldDeterministic holds the string denoting the deterministic field in the database.
	FieldDeterministic = "deterministic"
	// FieldValidationResults holds the string denoting the validation_results field in the database.
	FieldValidationResults = "validation_results"
	// FieldCerebrum holds the string denoting the cerebrum field in the database.
	FieldCerebrum = "cerebrum"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldHistory holds the string denoting the history field in the database.
	FieldHistory = "history"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeEvidence holds the string denoting the evidence edge name in mutations.
	EdgeEvidence = "evidence"
	// EvidenceRecordFieldID holds the string denoting the ID field of the EvidenceRecord.
	EvidenceRecordFieldID = "evidence_id"
	// Table holds the table name of the prprun in the database.
	Table = "prp_runs"
	// EvidenceTable is the table that holds the evidence relation/edge.
	EvidenceTable = "evidence_records"
	// EvidenceInverseTable is the table name for the EvidenceRecord entity.
	// It exists in this package in order to avoid circular dependency with the "evidencerecord" package.
	EvidenceInverseTable = "evidence_records"
	// EvidenceColumn is the table column denoting the evidence relation/edge.
	EvidenceColumn = "run_id"
)

// Columns holds all SQL columns for prprun fields.
var Columns = []string{
	FieldID,
	FieldBlueprint,
	FieldPhase,
	FieldDeterministic,
	FieldValidationResults,
	FieldCerebrum,
	FieldMetadata,
	FieldHistory,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDeterministic holds the default value on creation for the "deterministic" field.
	DefaultDeterministic bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Phase defines the type for the "phase" enum field.
type Phase string

// Phase values.
const (
	PhaseStrategy   Phase = "strategy"
	PhaseBuild      Phase = "build"
	PhaseEvaluation Phase = "evaluation"
	PhaseCompleted  Phase = "completed"
	PhaseRecycled   Phase = "recycled"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseStrategy, PhaseBuild, PhaseEvaluation, PhaseCompleted, PhaseRecycled:
		return nil
	default:
		return fmt.Errorf("prprun: invalid enum value for phase field: %q", ph)
	}
}

// OrderOption defines the ordering options for the PRPRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBlueprint orders the results by the blueprint field.
func ByBlueprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlueprint, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByDeterministic orders the results by the deterministic field.
func ByDeterministic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeterministic, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByEvidenceCount orders the results by evidence count.
func ByEvidenceCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvidenceStep(), opts...)
	}
}

// ByEvidence orders the results by evidence terms.
func ByEvidence(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvidenceStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEvidenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvidenceInverseTable, EvidenceRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
	)
}
