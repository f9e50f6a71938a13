// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loom-agents/loom/ent/evidencerecord"
	"github.com/loom-agents/loom/ent/prprun"
)

// EvidenceRecordCreate is the builder for creating a EvidenceRecord entity.
type EvidenceRecordCreate struct {
	config
	mutation *EvidenceRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *EvidenceRecordCreate) SetRunID(v string) *EvidenceRecordCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *EvidenceRecordCreate) SetSeq(v int) *EvidenceRecordCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetType sets the "type" field.
func (_c *EvidenceRecordCreate) SetType(v evidencerecord.Type) *EvidenceRecordCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *EvidenceRecordCreate) SetSource(v string) *EvidenceRecordCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *EvidenceRecordCreate) SetContent(v string) *EvidenceRecordCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *EvidenceRecordCreate) SetPhase(v string) *EvidenceRecordCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EvidenceRecordCreate) SetTimestamp(v string) *EvidenceRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EvidenceRecordCreate) SetID(v string) *EvidenceRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the PRPRun entity.
func (_c *EvidenceRecordCreate) SetRun(v *PRPRun) *EvidenceRecordCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the EvidenceRecordMutation object of the builder.
func (_c *EvidenceRecordCreate) Mutation() *EvidenceRecordMutation {
	return _c.mutation
}

// Save creates the EvidenceRecord in the database.
func (_c *EvidenceRecordCreate) Save(ctx context.Context) (*EvidenceRecord, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceRecordCreate) SaveX(ctx context.Context) *EvidenceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceRecordCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "EvidenceRecord.run_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "EvidenceRecord.seq"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "EvidenceRecord.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := evidencerecord.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "EvidenceRecord.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "EvidenceRecord.source"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "EvidenceRecord.content"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "EvidenceRecord.phase"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EvidenceRecord.timestamp"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "EvidenceRecord.run"`)}
	}
	return nil
}

func (_c *EvidenceRecordCreate) sqlSave(ctx context.Context) (*EvidenceRecord, error) {
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
			return nil, fmt.Errorf("unexpected EvidenceRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvidenceRecordCreate) createSpec() (*EvidenceRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &EvidenceRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidencerecord.Table, sqlgraph.NewFieldSpec(evidencerecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(evidencerecord.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(evidencerecord.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(evidencerecord.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(evidencerecord.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(evidencerecord.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(evidencerecord.FieldTimestamp, field.TypeString, value)
		_node.Timestamp = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evidencerecord.RunTable,
			Columns: []string{evidencerecord.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prprun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvidenceRecord.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceRecordUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceRecordCreate) OnConflict(opts ...sql.ConflictOption) *EvidenceRecordUpsertOne {
	_c.conflict = opts
	return &EvidenceRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvidenceRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceRecordCreate) OnConflictColumns(columns ...string) *EvidenceRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceRecordUpsertOne{
		create: _c,
	}
}

type (
	// EvidenceRecordUpsertOne is the builder for "upsert"-ing
	//  one EvidenceRecord node.
	EvidenceRecordUpsertOne struct {
		create *EvidenceRecordCreate
	}

	// EvidenceRecordUpsert is the "OnConflict" setter.
	EvidenceRecordUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EvidenceRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidencerecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceRecordUpsertOne) UpdateNewValues() *EvidenceRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(evidencerecord.FieldID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(evidencerecord.FieldRunID)
		}
		if _, exists := u.create.mutation.Seq(); exists {
			s.SetIgnore(evidencerecord.FieldSeq)
		}
		if _, exists := u.create.mutation.GetType(); exists {
			s.SetIgnore(evidencerecord.FieldType)
		}
		if _, exists := u.create.mutation.Source(); exists {
			s.SetIgnore(evidencerecord.FieldSource)
		}
		if _, exists := u.create.mutation.Content(); exists {
			s.SetIgnore(evidencerecord.FieldContent)
		}
		if _, exists := u.create.mutation.Phase(); exists {
			s.SetIgnore(evidencerecord.FieldPhase)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(evidencerecord.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvidenceRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvidenceRecordUpsertOne) Ignore() *EvidenceRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceRecordUpsertOne) DoNothing() *EvidenceRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceRecordCreate.OnConflict
// documentation for more info.
func (u *EvidenceRecordUpsertOne) Update(set func(*EvidenceRecordUpsert)) *EvidenceRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceRecordUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *EvidenceRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvidenceRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EvidenceRecordUpsertOne.ID is not supported by MySQL driver. Use EvidenceRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvidenceRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvidenceRecordCreateBulk is the builder for creating many EvidenceRecord entities in bulk.
type EvidenceRecordCreateBulk struct {
	config
	err      error
	builders []*EvidenceRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the EvidenceRecord entities in the database.
func (_c *EvidenceRecordCreateBulk) Save(ctx context.Context) ([]*EvidenceRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvidenceRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceRecordMutation)
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
func (_c *EvidenceRecordCreateBulk) SaveX(ctx context.Context) []*EvidenceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvidenceRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceRecordUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvidenceRecordUpsertBulk {
	_c.conflict = opts
	return &EvidenceRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvidenceRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceRecordCreateBulk) OnConflictColumns(columns ...string) *EvidenceRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceRecordUpsertBulk{
		create: _c,
	}
}

// EvidenceRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of EvidenceRecord nodes.
type EvidenceRecordUpsertBulk struct {
	create *EvidenceRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EvidenceRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidencerecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceRecordUpsertBulk) UpdateNewValues() *EvidenceRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(evidencerecord.FieldID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(evidencerecord.FieldRunID)
			}
			if _, exists := b.mutation.Seq(); exists {
				s.SetIgnore(evidencerecord.FieldSeq)
			}
			if _, exists := b.mutation.GetType(); exists {
				s.SetIgnore(evidencerecord.FieldType)
			}
			if _, exists := b.mutation.Source(); exists {
				s.SetIgnore(evidencerecord.FieldSource)
			}
			if _, exists := b.mutation.Content(); exists {
				s.SetIgnore(evidencerecord.FieldContent)
			}
			if _, exists := b.mutation.Phase(); exists {
				s.SetIgnore(evidencerecord.FieldPhase)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(evidencerecord.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvidenceRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvidenceRecordUpsertBulk) Ignore() *EvidenceRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceRecordUpsertBulk) DoNothing() *EvidenceRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceRecordCreateBulk.OnConflict
// documentation for more info.
func (u *EvidenceRecordUpsertBulk) Update(set func(*EvidenceRecordUpsert)) *EvidenceRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceRecordUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *EvidenceRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvidenceRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
