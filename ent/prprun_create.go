// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loom-agents/loom/ent/evidencerecord"
	"github.com/loom-agents/loom/ent/prprun"
)

// PRPRunCreate is the builder for creating a PRPRun entity.
type PRPRunCreate struct {
	config
	mutation *PRPRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBlueprint sets the "blueprint" field.
func (_c *PRPRunCreate) SetBlueprint(v string) *PRPRunCreate {
	_c.mutation.SetBlueprint(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *PRPRunCreate) SetPhase(v prprun.Phase) *PRPRunCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetDeterministic sets the "deterministic" field.
func (_c *PRPRunCreate) SetDeterministic(v bool) *PRPRunCreate {
	_c.mutation.SetDeterministic(v)
	return _c
}

// SetNillableDeterministic sets the "deterministic" field if the given value is not nil.
func (_c *PRPRunCreate) SetNillableDeterministic(v *bool) *PRPRunCreate {
	if v != nil {
		_c.SetDeterministic(*v)
	}
	return _c
}

// SetValidationResults sets the "validation_results" field.
func (_c *PRPRunCreate) SetValidationResults(v map[string]interface{}) *PRPRunCreate {
	_c.mutation.SetValidationResults(v)
	return _c
}

// SetCerebrum sets the "cerebrum" field.
func (_c *PRPRunCreate) SetCerebrum(v map[string]interface{}) *PRPRunCreate {
	_c.mutation.SetCerebrum(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *PRPRunCreate) SetMetadata(v map[string]interface{}) *PRPRunCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetHistory sets the "history" field.
func (_c *PRPRunCreate) SetHistory(v []interface{}) *PRPRunCreate {
	_c.mutation.SetHistory(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PRPRunCreate) SetCreatedAt(v time.Time) *PRPRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PRPRunCreate) SetNillableCreatedAt(v *time.Time) *PRPRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PRPRunCreate) SetCompletedAt(v time.Time) *PRPRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PRPRunCreate) SetNillableCompletedAt(v *time.Time) *PRPRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PRPRunCreate) SetID(v string) *PRPRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEvidenceIDs adds the "evidence" edge to the EvidenceRecord entity by IDs.
func (_c *PRPRunCreate) AddEvidenceIDs(ids ...string) *PRPRunCreate {
	_c.mutation.AddEvidenceIDs(ids...)
	return _c
}

// AddEvidence adds the "evidence" edges to the EvidenceRecord entity.
func (_c *PRPRunCreate) AddEvidence(v ...*EvidenceRecord) *PRPRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvidenceIDs(ids...)
}

// Mutation returns the PRPRunMutation object of the builder.
func (_c *PRPRunCreate) Mutation() *PRPRunMutation {
	return _c.mutation
}

// Save creates the PRPRun in the database.
func (_c *PRPRunCreate) Save(ctx context.Context) (*PRPRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PRPRunCreate) SaveX(ctx context.Context) *PRPRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PRPRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PRPRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PRPRunCreate) defaults() {
	if _, ok := _c.mutation.Deterministic(); !ok {
		v := prprun.DefaultDeterministic
		_c.mutation.SetDeterministic(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prprun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PRPRunCreate) check() error {
	if _, ok := _c.mutation.Blueprint(); !ok {
		return &ValidationError{Name: "blueprint", err: errors.New(`ent: missing required field "PRPRun.blueprint"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "PRPRun.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := prprun.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "PRPRun.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Deterministic(); !ok {
		return &ValidationError{Name: "deterministic", err: errors.New(`ent: missing required field "PRPRun.deterministic"`)}
	}
	if _, ok := _c.mutation.History(); !ok {
		return &ValidationError{Name: "history", err: errors.New(`ent: missing required field "PRPRun.history"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PRPRun.created_at"`)}
	}
	return nil
}

func (_c *PRPRunCreate) sqlSave(ctx context.Context) (*PRPRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PRPRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PRPRunCreate) createSpec() (*PRPRun, *sqlgraph.CreateSpec) {
	var (
		_node = &PRPRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prprun.Table, sqlgraph.NewFieldSpec(prprun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Blueprint(); ok {
		_spec.SetField(prprun.FieldBlueprint, field.TypeString, value)
		_node.Blueprint = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(prprun.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Deterministic(); ok {
		_spec.SetField(prprun.FieldDeterministic, field.TypeBool, value)
		_node.Deterministic = value
	}
	if value, ok := _c.mutation.ValidationResults(); ok {
		_spec.SetField(prprun.FieldValidationResults, field.TypeJSON, value)
		_node.ValidationResults = value
	}
	if value, ok := _c.mutation.Cerebrum(); ok {
		_spec.SetField(prprun.FieldCerebrum, field.TypeJSON, value)
		_node.Cerebrum = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(prprun.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.History(); ok {
		_spec.SetField(prprun.FieldHistory, field.TypeJSON, value)
		_node.History = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prprun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(prprun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PRPRun.Create().
//		SetBlueprint(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PRPRunUpsert) {
//			SetBlueprint(v+v).
//		}).
//		Exec(ctx)
func (_c *PRPRunCreate) OnConflict(opts ...sql.ConflictOption) *PRPRunUpsertOne {
	_c.conflict = opts
	return &PRPRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PRPRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PRPRunCreate) OnConflictColumns(columns ...string) *PRPRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PRPRunUpsertOne{
		create: _c,
	}
}

type (
	// PRPRunUpsertOne is the builder for "upsert"-ing
	//  one PRPRun node.
	PRPRunUpsertOne struct {
		create *PRPRunCreate
	}

	// PRPRunUpsert is the "OnConflict" setter.
	PRPRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetBlueprint sets the "blueprint" field.
func (u *PRPRunUpsert) SetBlueprint(v string) *PRPRunUpsert {
	u.Set(prprun.FieldBlueprint, v)
	return u
}

// UpdateBlueprint sets the "blueprint" field to the value that was provided on create.
func (u *PRPRunUpsert) UpdateBlueprint() *PRPRunUpsert {
	u.SetExcluded(prprun.FieldBlueprint)
	return u
}

// SetPhase sets the "phase" field.
func (u *PRPRunUpsert) SetPhase(v prprun.Phase) *PRPRunUpsert {
	u.Set(prprun.FieldPhase, v)
	return u
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *PRPRunUpsert) UpdatePhase() *PRPRunUpsert {
	u.SetExcluded(prprun.FieldPhase)
	return u
}

// SetDeterministic sets the "deterministic" field.
func (u *PRPRunUpsert) SetDeterministic(v bool) *PRPRunUpsert {
	u.Set(prprun.FieldDeterministic, v)
	return u
}

// UpdateDeterministic sets the "deterministic" field to the value that was provided on create.
func (u *PRPRunUpsert) UpdateDeterministic() *PRPRunUpsert {
	u.SetExcluded(prprun.FieldDeterministic)
	return u
}

// SetValidationResults sets the "validation_results" field.
func (u *PRPRunUpsert) SetValidationResults(v map[string]interface{}) *PRPRunUpsert {
	u.Set(prprun.FieldValidationResults, v)
	return u
}

// UpdateValidationResults sets the "validation_results" field to the value that was provided on create.
func (u *PRPRunUpsert) UpdateValidationResults() *PRPRunUpsert {
	u.SetExcluded(prprun.FieldValidationResults)
	return u
}

// ClearValidationResults clears the value of the "validation_results" field.
func (u *PRPRunUpsert) ClearValidationResults() *PRPRunUpsert {
	u.SetNull(prprun.FieldValidationResults)
	return u
}

// SetCerebrum sets the "cerebrum" field.
func (u *PRPRunUpsert) SetCerebrum(v map[string]interface{}) *PRPRunUpsert {
	u.Set(prprun.FieldCerebrum, v)
	return u
}

// UpdateCerebrum sets the "cerebrum" field to the value that was provided on create.
func (u *PRPRunUpsert) UpdateCerebrum() *PRPRunUpsert {
	u.SetExcluded(prprun.FieldCerebrum)
	return u
}

// ClearCerebrum clears the value of the "cerebrum" field.
func (u *PRPRunUpsert) ClearCerebrum() *PRPRunUpsert {
	u.SetNull(prprun.FieldCerebrum)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *PRPRunUpsert) SetMetadata(v map[string]interface{}) *PRPRunUpsert {
	u.Set(prprun.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *PRPRunUpsert) UpdateMetadata() *PRPRunUpsert {
	u.SetExcluded(prprun.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *PRPRunUpsert) ClearMetadata() *PRPRunUpsert {
	u.SetNull(prprun.FieldMetadata)
	return u
}

// SetHistory sets the "history" field.
func (u *PRPRunUpsert) SetHistory(v []interface{}) *PRPRunUpsert {
	u.Set(prprun.FieldHistory, v)
	return u
}

// UpdateHistory sets the "history" field to the value that was provided on create.
func (u *PRPRunUpsert) UpdateHistory() *PRPRunUpsert {
	u.SetExcluded(prprun.FieldHistory)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *PRPRunUpsert) SetCompletedAt(v time.Time) *PRPRunUpsert {
	u.Set(prprun.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PRPRunUpsert) UpdateCompletedAt() *PRPRunUpsert {
	u.SetExcluded(prprun.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PRPRunUpsert) ClearCompletedAt() *PRPRunUpsert {
	u.SetNull(prprun.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PRPRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prprun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PRPRunUpsertOne) UpdateNewValues() *PRPRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(prprun.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(prprun.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PRPRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PRPRunUpsertOne) Ignore() *PRPRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PRPRunUpsertOne) DoNothing() *PRPRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PRPRunCreate.OnConflict
// documentation for more info.
func (u *PRPRunUpsertOne) Update(set func(*PRPRunUpsert)) *PRPRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PRPRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetBlueprint sets the "blueprint" field.
func (u *PRPRunUpsertOne) SetBlueprint(v string) *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetBlueprint(v)
	})
}

// UpdateBlueprint sets the "blueprint" field to the value that was provided on create.
func (u *PRPRunUpsertOne) UpdateBlueprint() *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateBlueprint()
	})
}

// SetPhase sets the "phase" field.
func (u *PRPRunUpsertOne) SetPhase(v prprun.Phase) *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *PRPRunUpsertOne) UpdatePhase() *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdatePhase()
	})
}

// SetDeterministic sets the "deterministic" field.
func (u *PRPRunUpsertOne) SetDeterministic(v bool) *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetDeterministic(v)
	})
}

// UpdateDeterministic sets the "deterministic" field to the value that was provided on create.
func (u *PRPRunUpsertOne) UpdateDeterministic() *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateDeterministic()
	})
}

// SetValidationResults sets the "validation_results" field.
func (u *PRPRunUpsertOne) SetValidationResults(v map[string]interface{}) *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetValidationResults(v)
	})
}

// UpdateValidationResults sets the "validation_results" field to the value that was provided on create.
func (u *PRPRunUpsertOne) UpdateValidationResults() *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateValidationResults()
	})
}

// ClearValidationResults clears the value of the "validation_results" field.
func (u *PRPRunUpsertOne) ClearValidationResults() *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.ClearValidationResults()
	})
}

// SetCerebrum sets the "cerebrum" field.
func (u *PRPRunUpsertOne) SetCerebrum(v map[string]interface{}) *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetCerebrum(v)
	})
}

// UpdateCerebrum sets the "cerebrum" field to the value that was provided on create.
func (u *PRPRunUpsertOne) UpdateCerebrum() *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateCerebrum()
	})
}

// ClearCerebrum clears the value of the "cerebrum" field.
func (u *PRPRunUpsertOne) ClearCerebrum() *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.ClearCerebrum()
	})
}

// SetMetadata sets the "metadata" field.
func (u *PRPRunUpsertOne) SetMetadata(v map[string]interface{}) *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *PRPRunUpsertOne) UpdateMetadata() *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *PRPRunUpsertOne) ClearMetadata() *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.ClearMetadata()
	})
}

// SetHistory sets the "history" field.
func (u *PRPRunUpsertOne) SetHistory(v []interface{}) *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetHistory(v)
	})
}

// UpdateHistory sets the "history" field to the value that was provided on create.
func (u *PRPRunUpsertOne) UpdateHistory() *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateHistory()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PRPRunUpsertOne) SetCompletedAt(v time.Time) *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PRPRunUpsertOne) UpdateCompletedAt() *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PRPRunUpsertOne) ClearCompletedAt() *PRPRunUpsertOne {
	return u.Update(func(s *PRPRunUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *PRPRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PRPRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PRPRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PRPRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PRPRunUpsertOne.ID is not supported by MySQL driver. Use PRPRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PRPRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PRPRunCreateBulk is the builder for creating many PRPRun entities in bulk.
type PRPRunCreateBulk struct {
	config
	err      error
	builders []*PRPRunCreate
	conflict []sql.ConflictOption
}

// Save creates the PRPRun entities in the database.
func (_c *PRPRunCreateBulk) Save(ctx context.Context) ([]*PRPRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PRPRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PRPRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PRPRunCreateBulk) SaveX(ctx context.Context) []*PRPRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PRPRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PRPRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PRPRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PRPRunUpsert) {
//			SetBlueprint(v+v).
//		}).
//		Exec(ctx)
func (_c *PRPRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *PRPRunUpsertBulk {
	_c.conflict = opts
	return &PRPRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PRPRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PRPRunCreateBulk) OnConflictColumns(columns ...string) *PRPRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PRPRunUpsertBulk{
		create: _c,
	}
}

// PRPRunUpsertBulk is the builder for "upsert"-ing
// a bulk of PRPRun nodes.
type PRPRunUpsertBulk struct {
	create *PRPRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PRPRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prprun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PRPRunUpsertBulk) UpdateNewValues() *PRPRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(prprun.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(prprun.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PRPRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PRPRunUpsertBulk) Ignore() *PRPRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PRPRunUpsertBulk) DoNothing() *PRPRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PRPRunCreateBulk.OnConflict
// documentation for more info.
func (u *PRPRunUpsertBulk) Update(set func(*PRPRunUpsert)) *PRPRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PRPRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetBlueprint sets the "blueprint" field.
func (u *PRPRunUpsertBulk) SetBlueprint(v string) *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetBlueprint(v)
	})
}

// UpdateBlueprint sets the "blueprint" field to the value that was provided on create.
func (u *PRPRunUpsertBulk) UpdateBlueprint() *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateBlueprint()
	})
}

// SetPhase sets the "phase" field.
func (u *PRPRunUpsertBulk) SetPhase(v prprun.Phase) *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *PRPRunUpsertBulk) UpdatePhase() *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdatePhase()
	})
}

// SetDeterministic sets the "deterministic" field.
func (u *PRPRunUpsertBulk) SetDeterministic(v bool) *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetDeterministic(v)
	})
}

// UpdateDeterministic sets the "deterministic" field to the value that was provided on create.
func (u *PRPRunUpsertBulk) UpdateDeterministic() *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateDeterministic()
	})
}

// SetValidationResults sets the "validation_results" field.
func (u *PRPRunUpsertBulk) SetValidationResults(v map[string]interface{}) *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetValidationResults(v)
	})
}

// UpdateValidationResults sets the "validation_results" field to the value that was provided on create.
func (u *PRPRunUpsertBulk) UpdateValidationResults() *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateValidationResults()
	})
}

// ClearValidationResults clears the value of the "validation_results" field.
func (u *PRPRunUpsertBulk) ClearValidationResults() *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.ClearValidationResults()
	})
}

// SetCerebrum sets the "cerebrum" field.
func (u *PRPRunUpsertBulk) SetCerebrum(v map[string]interface{}) *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetCerebrum(v)
	})
}

// UpdateCerebrum sets the "cerebrum" field to the value that was provided on create.
func (u *PRPRunUpsertBulk) UpdateCerebrum() *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateCerebrum()
	})
}

// ClearCerebrum clears the value of the "cerebrum" field.
func (u *PRPRunUpsertBulk) ClearCerebrum() *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.ClearCerebrum()
	})
}

// SetMetadata sets the "metadata" field.
func (u *PRPRunUpsertBulk) SetMetadata(v map[string]interface{}) *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *PRPRunUpsertBulk) UpdateMetadata() *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *PRPRunUpsertBulk) ClearMetadata() *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.ClearMetadata()
	})
}

// SetHistory sets the "history" field.
func (u *PRPRunUpsertBulk) SetHistory(v []interface{}) *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetHistory(v)
	})
}

// UpdateHistory sets the "history" field to the value that was provided on create.
func (u *PRPRunUpsertBulk) UpdateHistory() *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateHistory()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PRPRunUpsertBulk) SetCompletedAt(v time.Time) *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PRPRunUpsertBulk) UpdateCompletedAt() *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PRPRunUpsertBulk) ClearCompletedAt() *PRPRunUpsertBulk {
	return u.Update(func(s *PRPRunUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *PRPRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PRPRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PRPRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PRPRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
