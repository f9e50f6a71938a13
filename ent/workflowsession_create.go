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
	"github.com/loom-agents/loom/ent/sessionevent"
	"github.com/loom-agents/loom/ent/workflowsession"
)

// WorkflowSessionCreate is the builder for creating a WorkflowSession entity.
type WorkflowSessionCreate struct {
	config
	mutation *WorkflowSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetState sets the "state" field.
func (_c *WorkflowSessionCreate) SetState(v map[string]interface{}) *WorkflowSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *WorkflowSessionCreate) SetLastUpdated(v time.Time) *WorkflowSessionCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *WorkflowSessionCreate) SetNillableLastUpdated(v *time.Time) *WorkflowSessionCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowSessionCreate) SetCreatedAt(v time.Time) *WorkflowSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowSessionCreate) SetNillableCreatedAt(v *time.Time) *WorkflowSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowSessionCreate) SetID(v string) *WorkflowSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_c *WorkflowSessionCreate) AddEventIDs(ids ...int) *WorkflowSessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_c *WorkflowSessionCreate) AddEvents(v ...*SessionEvent) *WorkflowSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the WorkflowSessionMutation object of the builder.
func (_c *WorkflowSessionCreate) Mutation() *WorkflowSessionMutation {
	return _c.mutation
}

// Save creates the WorkflowSession in the database.
func (_c *WorkflowSessionCreate) Save(ctx context.Context) (*WorkflowSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowSessionCreate) SaveX(ctx context.Context) *WorkflowSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowSessionCreate) defaults() {
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := workflowsession.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowSessionCreate) check() error {
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "WorkflowSession.state"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "WorkflowSession.last_updated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowSession.created_at"`)}
	}
	return nil
}

func (_c *WorkflowSessionCreate) sqlSave(ctx context.Context) (*WorkflowSession, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowSessionCreate) createSpec() (*WorkflowSession, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowsession.Table, sqlgraph.NewFieldSpec(workflowsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(workflowsession.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(workflowsession.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowsession.EventsTable,
			Columns: []string{workflowsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
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
//	client.WorkflowSession.Create().
//		SetState(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowSessionUpsert) {
//			SetState(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowSessionCreate) OnConflict(opts ...sql.ConflictOption) *WorkflowSessionUpsertOne {
	_c.conflict = opts
	return &WorkflowSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowSessionCreate) OnConflictColumns(columns ...string) *WorkflowSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowSessionUpsertOne{
		create: _c,
	}
}

type (
	// WorkflowSessionUpsertOne is the builder for "upsert"-ing
	//  one WorkflowSession node.
	WorkflowSessionUpsertOne struct {
		create *WorkflowSessionCreate
	}

	// WorkflowSessionUpsert is the "OnConflict" setter.
	WorkflowSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetState sets the "state" field.
func (u *WorkflowSessionUpsert) SetState(v map[string]interface{}) *WorkflowSessionUpsert {
	u.Set(workflowsession.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *WorkflowSessionUpsert) UpdateState() *WorkflowSessionUpsert {
	u.SetExcluded(workflowsession.FieldState)
	return u
}

// SetLastUpdated sets the "last_updated" field.
func (u *WorkflowSessionUpsert) SetLastUpdated(v time.Time) *WorkflowSessionUpsert {
	u.Set(workflowsession.FieldLastUpdated, v)
	return u
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *WorkflowSessionUpsert) UpdateLastUpdated() *WorkflowSessionUpsert {
	u.SetExcluded(workflowsession.FieldLastUpdated)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkflowSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowSessionUpsertOne) UpdateNewValues() *WorkflowSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workflowsession.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workflowsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkflowSessionUpsertOne) Ignore() *WorkflowSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowSessionUpsertOne) DoNothing() *WorkflowSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowSessionCreate.OnConflict
// documentation for more info.
func (u *WorkflowSessionUpsertOne) Update(set func(*WorkflowSessionUpsert)) *WorkflowSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *WorkflowSessionUpsertOne) SetState(v map[string]interface{}) *WorkflowSessionUpsertOne {
	return u.Update(func(s *WorkflowSessionUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *WorkflowSessionUpsertOne) UpdateState() *WorkflowSessionUpsertOne {
	return u.Update(func(s *WorkflowSessionUpsert) {
		s.UpdateState()
	})
}

// SetLastUpdated sets the "last_updated" field.
func (u *WorkflowSessionUpsertOne) SetLastUpdated(v time.Time) *WorkflowSessionUpsertOne {
	return u.Update(func(s *WorkflowSessionUpsert) {
		s.SetLastUpdated(v)
	})
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *WorkflowSessionUpsertOne) UpdateLastUpdated() *WorkflowSessionUpsertOne {
	return u.Update(func(s *WorkflowSessionUpsert) {
		s.UpdateLastUpdated()
	})
}

// Exec executes the query.
func (u *WorkflowSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkflowSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkflowSessionUpsertOne.ID is not supported by MySQL driver. Use WorkflowSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkflowSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkflowSessionCreateBulk is the builder for creating many WorkflowSession entities in bulk.
type WorkflowSessionCreateBulk struct {
	config
	err      error
	builders []*WorkflowSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkflowSession entities in the database.
func (_c *WorkflowSessionCreateBulk) Save(ctx context.Context) ([]*WorkflowSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowSessionMutation)
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
func (_c *WorkflowSessionCreateBulk) SaveX(ctx context.Context) []*WorkflowSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkflowSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowSessionUpsert) {
//			SetState(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkflowSessionUpsertBulk {
	_c.conflict = opts
	return &WorkflowSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowSessionCreateBulk) OnConflictColumns(columns ...string) *WorkflowSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowSessionUpsertBulk{
		create: _c,
	}
}

// WorkflowSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkflowSession nodes.
type WorkflowSessionUpsertBulk struct {
	create *WorkflowSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkflowSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowSessionUpsertBulk) UpdateNewValues() *WorkflowSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workflowsession.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workflowsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkflowSessionUpsertBulk) Ignore() *WorkflowSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowSessionUpsertBulk) DoNothing() *WorkflowSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowSessionCreateBulk.OnConflict
// documentation for more info.
func (u *WorkflowSessionUpsertBulk) Update(set func(*WorkflowSessionUpsert)) *WorkflowSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *WorkflowSessionUpsertBulk) SetState(v map[string]interface{}) *WorkflowSessionUpsertBulk {
	return u.Update(func(s *WorkflowSessionUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *WorkflowSessionUpsertBulk) UpdateState() *WorkflowSessionUpsertBulk {
	return u.Update(func(s *WorkflowSessionUpsert) {
		s.UpdateState()
	})
}

// SetLastUpdated sets the "last_updated" field.
func (u *WorkflowSessionUpsertBulk) SetLastUpdated(v time.Time) *WorkflowSessionUpsertBulk {
	return u.Update(func(s *WorkflowSessionUpsert) {
		s.SetLastUpdated(v)
	})
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *WorkflowSessionUpsertBulk) UpdateLastUpdated() *WorkflowSessionUpsertBulk {
	return u.Update(func(s *WorkflowSessionUpsert) {
		s.UpdateLastUpdated()
	})
}

// Exec executes the query.
func (u *WorkflowSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkflowSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
