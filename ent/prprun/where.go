// Code generated by ent, DO NOT EDIT.

package prprun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loom-agents/loom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldContainsFold(FieldID, id))
}

// Blueprint applies equality check predicate on the "blueprint" field. It's identical to BlueprintEQ.
func Blueprint(v string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldEQ(FieldBlueprint, v))
}

// Deterministic applies equality check predicate on the "deterministic" field. It's identical to DeterministicEQ.
func Deterministic(v bool) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldEQ(FieldDeterministic, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldEQ(FieldCompletedAt, v))
}

// BlueprintEQ applies the EQ predicate on the "blueprint" field.
func BlueprintEQ(v string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldEQ(FieldBlueprint, v))
}

// BlueprintNEQ applies the NEQ predicate on the "blueprint" field.
func BlueprintNEQ(v string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNEQ(FieldBlueprint, v))
}

// BlueprintIn applies the In predicate on the "blueprint" field.
func BlueprintIn(vs ...string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldIn(FieldBlueprint, vs...))
}

// BlueprintNotIn applies the NotIn predicate on the "blueprint" field.
func BlueprintNotIn(vs ...string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNotIn(FieldBlueprint, vs...))
}

// BlueprintGT applies the GT predicate on the "blueprint" field.
func BlueprintGT(v string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldGT(FieldBlueprint, v))
}

// BlueprintGTE applies the GTE predicate on the "blueprint" field.
func BlueprintGTE(v string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldGTE(FieldBlueprint, v))
}

// BlueprintLT applies the LT predicate on the "blueprint" field.
func BlueprintLT(v string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldLT(FieldBlueprint, v))
}

// BlueprintLTE applies the LTE predicate on the "blueprint" field.
func BlueprintLTE(v string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldLTE(FieldBlueprint, v))
}

// BlueprintContains applies the Contains predicate on the "blueprint" field.
func BlueprintContains(v string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldContains(FieldBlueprint, v))
}

// BlueprintHasPrefix applies the HasPrefix predicate on the "blueprint" field.
func BlueprintHasPrefix(v string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldHasPrefix(FieldBlueprint, v))
}

// BlueprintHasSuffix applies the HasSuffix predicate on the "blueprint" field.
func BlueprintHasSuffix(v string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldHasSuffix(FieldBlueprint, v))
}

// BlueprintEqualFold applies the EqualFold predicate on the "blueprint" field.
func BlueprintEqualFold(v string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldEqualFold(FieldBlueprint, v))
}

// BlueprintContainsFold applies the ContainsFold predicate on the "blueprint" field.
func BlueprintContainsFold(v string) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldContainsFold(FieldBlueprint, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNotIn(FieldPhase, vs...))
}

// DeterministicEQ applies the EQ predicate on the "deterministic" field.
func DeterministicEQ(v bool) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldEQ(FieldDeterministic, v))
}

// DeterministicNEQ applies the NEQ predicate on the "deterministic" field.
func DeterministicNEQ(v bool) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNEQ(FieldDeterministic, v))
}

// ValidationResultsIsNil applies the IsNil predicate on the "validation_results" field.
func ValidationResultsIsNil() predicate.PRPRun {
	return predicate.PRPRun(sql.FieldIsNull(FieldValidationResults))
}

// ValidationResultsNotNil applies the NotNil predicate on the "validation_results" field.
func ValidationResultsNotNil() predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNotNull(FieldValidationResults))
}

// CerebrumIsNil applies the IsNil predicate on the "cerebrum" field.
func CerebrumIsNil() predicate.PRPRun {
	return predicate.PRPRun(sql.FieldIsNull(FieldCerebrum))
}

// CerebrumNotNil applies the NotNil predicate on the "cerebrum" field.
func CerebrumNotNil() predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNotNull(FieldCerebrum))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.PRPRun {
	return predicate.PRPRun(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PRPRun {
	return predicate.PRPRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PRPRun {
	return predicate.PRPRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PRPRun {
	return predicate.PRPRun(sql.FieldNotNull(FieldCompletedAt))
}

// HasEvidence applies the HasEdge predicate on the "evidence" edge.
func HasEvidence() predicate.PRPRun {
	return predicate.PRPRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvidenceWith applies the HasEdge predicate on the "evidence" edge with a given conditions (other predicates).
func HasEvidenceWith(preds ...predicate.EvidenceRecord) predicate.PRPRun {
	return predicate.PRPRun(func(s *sql.Selector) {
		step := newEvidenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PRPRun) predicate.PRPRun {
	return predicate.PRPRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PRPRun) predicate.PRPRun {
	return predicate.PRPRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PRPRun) predicate.PRPRun {
	return predicate.PRPRun(sql.NotPredicates(p))
}
