// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/loom-agents/loom/ent/evidencerecord"
	"github.com/loom-agents/loom/ent/predicate"
	"github.com/loom-agents/loom/ent/prprun"
)

// PRPRunUpdate is the builder for updating PRPRun entities.
type PRPRunUpdate struct {
	config
	hooks    []Hook
	mutation *PRPRunMutation
}

// Where appends a list predicates to the PRPRunUpdate builder.
func (_u *PRPRunUpdate) Where(ps ...predicate.PRPRun) *PRPRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBlueprint sets the "blueprint" field.
func (_u *PRPRunUpdate) SetBlueprint(v string) *PRPRunUpdate {
	_u.mutation.SetBlueprint(v)
	return _u
}

// SetNillableBlueprint sets the "blueprint" field if the given value is not nil.
func (_u *PRPRunUpdate) SetNillableBlueprint(v *string) *PRPRunUpdate {
	if v != nil {
		_u.SetBlueprint(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *PRPRunUpdate) SetPhase(v prprun.Phase) *PRPRunUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *PRPRunUpdate) SetNillablePhase(v *prprun.Phase) *PRPRunUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetDeterministic sets the "deterministic" field.
func (_u *PRPRunUpdate) SetDeterministic(v bool) *PRPRunUpdate {
	_u.mutation.SetDeterministic(v)
	return _u
}

// SetNillableDeterministic sets the "deterministic" field if the given value is not nil.
func (_u *PRPRunUpdate) SetNillableDeterministic(v *bool) *PRPRunUpdate {
	if v != nil {
		_u.SetDeterministic(*v)
	}
	return _u
}

// SetValidationResults sets the "validation_results" field.
func (_u *PRPRunUpdate) SetValidationResults(v map[string]interface{}) *PRPRunUpdate {
	_u.mutation.SetValidationResults(v)
	return _u
}

// ClearValidationResults clears the value of the "validation_results" field.
func (_u *PRPRunUpdate) ClearValidationResults() *PRPRunUpdate {
	_u.mutation.ClearValidationResults()
	return _u
}

// SetCerebrum sets the "cerebrum" field.
func (_u *PRPRunUpdate) SetCerebrum(v map[string]interface{}) *PRPRunUpdate {
	_u.mutation.SetCerebrum(v)
	return _u
}

// ClearCerebrum clears the value of the "cerebrum" field.
func (_u *PRPRunUpdate) ClearCerebrum() *PRPRunUpdate {
	_u.mutation.ClearCerebrum()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *PRPRunUpdate) SetMetadata(v map[string]interface{}) *PRPRunUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *PRPRunUpdate) ClearMetadata() *PRPRunUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetHistory sets the "history" field.
func (_u *PRPRunUpdate) SetHistory(v []interface{}) *PRPRunUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *PRPRunUpdate) AppendHistory(v []interface{}) *PRPRunUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PRPRunUpdate) SetCompletedAt(v time.Time) *PRPRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PRPRunUpdate) SetNillableCompletedAt(v *time.Time) *PRPRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PRPRunUpdate) ClearCompletedAt() *PRPRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddEvidenceIDs adds the "evidence" edge to the EvidenceRecord entity by IDs.
func (_u *PRPRunUpdate) AddEvidenceIDs(ids ...string) *PRPRunUpdate {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the EvidenceRecord entity.
func (_u *PRPRunUpdate) AddEvidence(v ...*EvidenceRecord) *PRPRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// Mutation returns the PRPRunMutation object of the builder.
func (_u *PRPRunUpdate) Mutation() *PRPRunMutation {
	return _u.mutation
}

// ClearEvidence clears all "evidence" edges to the EvidenceRecord entity.
func (_u *PRPRunUpdate) ClearEvidence() *PRPRunUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to EvidenceRecord entities by IDs.
func (_u *PRPRunUpdate) RemoveEvidenceIDs(ids ...string) *PRPRunUpdate {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to EvidenceRecord entities.
func (_u *PRPRunUpdate) RemoveEvidence(v ...*EvidenceRecord) *PRPRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PRPRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PRPRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PRPRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PRPRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PRPRunUpdate) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := prprun.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "PRPRun.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *PRPRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prprun.Table, prprun.Columns, sqlgraph.NewFieldSpec(prprun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Blueprint(); ok {
		_spec.SetField(prprun.FieldBlueprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(prprun.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Deterministic(); ok {
		_spec.SetField(prprun.FieldDeterministic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationResults(); ok {
		_spec.SetField(prprun.FieldValidationResults, field.TypeJSON, value)
	}
	if _u.mutation.ValidationResultsCleared() {
		_spec.ClearField(prprun.FieldValidationResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cerebrum(); ok {
		_spec.SetField(prprun.FieldCerebrum, field.TypeJSON, value)
	}
	if _u.mutation.CerebrumCleared() {
		_spec.ClearField(prprun.FieldCerebrum, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(prprun.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(prprun.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(prprun.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, prprun.FieldHistory, value)
		})
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(prprun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(prprun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prprun.EvidenceTable,
			Columns: []string{prprun.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencerecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prprun.EvidenceTable,
			Columns: []string{prprun.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prprun.EvidenceTable,
			Columns: []string{prprun.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prprun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PRPRunUpdateOne is the builder for updating a single PRPRun entity.
type PRPRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PRPRunMutation
}

// SetBlueprint sets the "blueprint" field.
func (_u *PRPRunUpdateOne) SetBlueprint(v string) *PRPRunUpdateOne {
	_u.mutation.SetBlueprint(v)
	return _u
}

// SetNillableBlueprint sets the "blueprint" field if the given value is not nil.
func (_u *PRPRunUpdateOne) SetNillableBlueprint(v *string) *PRPRunUpdateOne {
	if v != nil {
		_u.SetBlueprint(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *PRPRunUpdateOne) SetPhase(v prprun.Phase) *PRPRunUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *PRPRunUpdateOne) SetNillablePhase(v *prprun.Phase) *PRPRunUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetDeterministic sets the "deterministic" field.
func (_u *PRPRunUpdateOne) SetDeterministic(v bool) *PRPRunUpdateOne {
	_u.mutation.SetDeterministic(v)
	return _u
}

// SetNillableDeterministic sets the "deterministic" field if the given value is not nil.
func (_u *PRPRunUpdateOne) SetNillableDeterministic(v *bool) *PRPRunUpdateOne {
	if v != nil {
		_u.SetDeterministic(*v)
	}
	return _u
}

// SetValidationResults sets the "validation_results" field.
func (_u *PRPRunUpdateOne) SetValidationResults(v map[string]interface{}) *PRPRunUpdateOne {
	_u.mutation.SetValidationResults(v)
	return _u
}

// ClearValidationResults clears the value of the "validation_results" field.
func (_u *PRPRunUpdateOne) ClearValidationResults() *PRPRunUpdateOne {
	_u.mutation.ClearValidationResults()
	return _u
}

// SetCerebrum sets the "cerebrum" field.
func (_u *PRPRunUpdateOne) SetCerebrum(v map[string]interface{}) *PRPRunUpdateOne {
	_u.mutation.SetCerebrum(v)
	return _u
}

// ClearCerebrum clears the value of the "cerebrum" field.
func (_u *PRPRunUpdateOne) ClearCerebrum() *PRPRunUpdateOne {
	_u.mutation.ClearCerebrum()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *PRPRunUpdateOne) SetMetadata(v map[string]interface{}) *PRPRunUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *PRPRunUpdateOne) ClearMetadata() *PRPRunUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetHistory sets the "history" field.
func (_u *PRPRunUpdateOne) SetHistory(v []interface{}) *PRPRunUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *PRPRunUpdateOne) AppendHistory(v []interface{}) *PRPRunUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PRPRunUpdateOne) SetCompletedAt(v time.Time) *PRPRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PRPRunUpdateOne) SetNillableCompletedAt(v *time.Time) *PRPRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PRPRunUpdateOne) ClearCompletedAt() *PRPRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddEvidenceIDs adds the "evidence" edge to the EvidenceRecord entity by IDs.
func (_u *PRPRunUpdateOne) AddEvidenceIDs(ids ...string) *PRPRunUpdateOne {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the EvidenceRecord entity.
func (_u *PRPRunUpdateOne) AddEvidence(v ...*EvidenceRecord) *PRPRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// Mutation returns the PRPRunMutation object of the builder.
func (_u *PRPRunUpdateOne) Mutation() *PRPRunMutation {
	return _u.mutation
}

// ClearEvidence clears all "evidence" edges to the EvidenceRecord entity.
func (_u *PRPRunUpdateOne) ClearEvidence() *PRPRunUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to EvidenceRecord entities by IDs.
func (_u *PRPRunUpdateOne) RemoveEvidenceIDs(ids ...string) *PRPRunUpdateOne {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to EvidenceRecord entities.
func (_u *PRPRunUpdateOne) RemoveEvidence(v ...*EvidenceRecord) *PRPRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// Where appends a list predicates to the PRPRunUpdate builder.
func (_u *PRPRunUpdateOne) Where(ps ...predicate.PRPRun) *PRPRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PRPRunUpdateOne) Select(field string, fields ...string) *PRPRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PRPRun entity.
func (_u *PRPRunUpdateOne) Save(ctx context.Context) (*PRPRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PRPRunUpdateOne) SaveX(ctx context.Context) *PRPRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PRPRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PRPRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PRPRunUpdateOne) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := prprun.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "PRPRun.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *PRPRunUpdateOne) sqlSave(ctx context.Context) (_node *PRPRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prprun.Table, prprun.Columns, sqlgraph.NewFieldSpec(prprun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PRPRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prprun.FieldID)
		for _, f := range fields {
			if !prprun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prprun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Blueprint(); ok {
		_spec.SetField(prprun.FieldBlueprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(prprun.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Deterministic(); ok {
		_spec.SetField(prprun.FieldDeterministic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationResults(); ok {
		_spec.SetField(prprun.FieldValidationResults, field.TypeJSON, value)
	}
	if _u.mutation.ValidationResultsCleared() {
		_spec.ClearField(prprun.FieldValidationResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cerebrum(); ok {
		_spec.SetField(prprun.FieldCerebrum, field.TypeJSON, value)
	}
	if _u.mutation.CerebrumCleared() {
		_spec.ClearField(prprun.FieldCerebrum, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(prprun.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(prprun.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(prprun.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, prprun.FieldHistory, value)
		})
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(prprun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(prprun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prprun.EvidenceTable,
			Columns: []string{prprun.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencerecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prprun.EvidenceTable,
			Columns: []string{prprun.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prprun.EvidenceTable,
			Columns: []string{prprun.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PRPRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prprun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
