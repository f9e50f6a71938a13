// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loom-agents/loom/ent/sessionevent"
	"github.com/loom-agents/loom/ent/workflowsession"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *SessionEventCreate) SetSessionID(v string) *SessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *SessionEventCreate) SetType(v string) *SessionEventCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetThreadID sets the "thread_id" field.
func (_c *SessionEventCreate) SetThreadID(v string) *SessionEventCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *SessionEventCreate) SetPayload(v map[string]interface{}) *SessionEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionEventCreate) SetTimestamp(v string) *SessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetSession sets the "session" edge to the WorkflowSession entity.
func (_c *SessionEventCreate) SetSession(v *WorkflowSession) *SessionEventCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the SessionEventMutation object of the builder.
func (_c *SessionEventCreate) Mutation() *SessionEventMutation {
	return _c.mutation
}

// Save creates the SessionEvent in the database.
func (_c *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "SessionEvent.type"`)}
	}
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "SessionEvent.thread_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SessionEvent.session"`)}
	}
	return nil
}

func (_c *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(sessionevent.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(sessionevent.FieldThreadID, field.TypeString, value)
		_node.ThreadID = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(sessionevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeString, value)
		_node.Timestamp = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessionevent.SessionTable,
			Columns: []string{sessionevent.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionEvent.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionEventUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionEventCreate) OnConflict(opts ...sql.ConflictOption) *SessionEventUpsertOne {
	_c.conflict = opts
	return &SessionEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionEventCreate) OnConflictColumns(columns ...string) *SessionEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionEventUpsertOne{
		create: _c,
	}
}

type (
	// SessionEventUpsertOne is the builder for "upsert"-ing
	//  one SessionEvent node.
	SessionEventUpsertOne struct {
		create *SessionEventCreate
	}

	// SessionEventUpsert is the "OnConflict" setter.
	SessionEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *SessionEventUpsert) SetSessionID(v string) *SessionEventUpsert {
	u.Set(sessionevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionEventUpsert) UpdateSessionID() *SessionEventUpsert {
	u.SetExcluded(sessionevent.FieldSessionID)
	return u
}

// SetType sets the "type" field.
func (u *SessionEventUpsert) SetType(v string) *SessionEventUpsert {
	u.Set(sessionevent.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *SessionEventUpsert) UpdateType() *SessionEventUpsert {
	u.SetExcluded(sessionevent.FieldType)
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *SessionEventUpsert) SetThreadID(v string) *SessionEventUpsert {
	u.Set(sessionevent.FieldThreadID, v)
	return u
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *SessionEventUpsert) UpdateThreadID() *SessionEventUpsert {
	u.SetExcluded(sessionevent.FieldThreadID)
	return u
}

// SetPayload sets the "payload" field.
func (u *SessionEventUpsert) SetPayload(v map[string]interface{}) *SessionEventUpsert {
	u.Set(sessionevent.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *SessionEventUpsert) UpdatePayload() *SessionEventUpsert {
	u.SetExcluded(sessionevent.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *SessionEventUpsert) ClearPayload() *SessionEventUpsert {
	u.SetNull(sessionevent.FieldPayload)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *SessionEventUpsert) SetTimestamp(v string) *SessionEventUpsert {
	u.Set(sessionevent.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *SessionEventUpsert) UpdateTimestamp() *SessionEventUpsert {
	u.SetExcluded(sessionevent.FieldTimestamp)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SessionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SessionEventUpsertOne) UpdateNewValues() *SessionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionEventUpsertOne) Ignore() *SessionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionEventUpsertOne) DoNothing() *SessionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionEventCreate.OnConflict
// documentation for more info.
func (u *SessionEventUpsertOne) Update(set func(*SessionEventUpsert)) *SessionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *SessionEventUpsertOne) SetSessionID(v string) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionEventUpsertOne) UpdateSessionID() *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetType sets the "type" field.
func (u *SessionEventUpsertOne) SetType(v string) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *SessionEventUpsertOne) UpdateType() *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateType()
	})
}

// SetThreadID sets the "thread_id" field.
func (u *SessionEventUpsertOne) SetThreadID(v string) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *SessionEventUpsertOne) UpdateThreadID() *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateThreadID()
	})
}

// SetPayload sets the "payload" field.
func (u *SessionEventUpsertOne) SetPayload(v map[string]interface{}) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *SessionEventUpsertOne) UpdatePayload() *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *SessionEventUpsertOne) ClearPayload() *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.ClearPayload()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *SessionEventUpsertOne) SetTimestamp(v string) *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *SessionEventUpsertOne) UpdateTimestamp() *SessionEventUpsertOne {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateTimestamp()
	})
}

// Exec executes the query.
func (u *SessionEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionEvent entities in the database.
func (_c *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionEventUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionEventUpsertBulk {
	_c.conflict = opts
	return &SessionEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionEventCreateBulk) OnConflictColumns(columns ...string) *SessionEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionEventUpsertBulk{
		create: _c,
	}
}

// SessionEventUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionEvent nodes.
type SessionEventUpsertBulk struct {
	create *SessionEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SessionEventUpsertBulk) UpdateNewValues() *SessionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionEventUpsertBulk) Ignore() *SessionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionEventUpsertBulk) DoNothing() *SessionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionEventCreateBulk.OnConflict
// documentation for more info.
func (u *SessionEventUpsertBulk) Update(set func(*SessionEventUpsert)) *SessionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *SessionEventUpsertBulk) SetSessionID(v string) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionEventUpsertBulk) UpdateSessionID() *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetType sets the "type" field.
func (u *SessionEventUpsertBulk) SetType(v string) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *SessionEventUpsertBulk) UpdateType() *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateType()
	})
}

// SetThreadID sets the "thread_id" field.
func (u *SessionEventUpsertBulk) SetThreadID(v string) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *SessionEventUpsertBulk) UpdateThreadID() *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateThreadID()
	})
}

// SetPayload sets the "payload" field.
func (u *SessionEventUpsertBulk) SetPayload(v map[string]interface{}) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *SessionEventUpsertBulk) UpdatePayload() *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *SessionEventUpsertBulk) ClearPayload() *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.ClearPayload()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *SessionEventUpsertBulk) SetTimestamp(v string) *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *SessionEventUpsertBulk) UpdateTimestamp() *SessionEventUpsertBulk {
	return u.Update(func(s *SessionEventUpsert) {
		s.UpdateTimestamp()
	})
}

// Exec executes the query.
func (u *SessionEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
