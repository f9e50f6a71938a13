// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loom-agents/loom/ent/predicate"
	"github.com/loom-agents/loom/ent/sessionevent"
	"github.com/loom-agents/loom/ent/workflowsession"
)

// WorkflowSessionUpdate is the builder for updating WorkflowSession entities.
type WorkflowSessionUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowSessionMutation
}

// Where appends a list predicates to the WorkflowSessionUpdate builder.
func (_u *WorkflowSessionUpdate) Where(ps ...predicate.WorkflowSession) *WorkflowSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *WorkflowSessionUpdate) SetState(v map[string]interface{}) *WorkflowSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *WorkflowSessionUpdate) SetLastUpdated(v time.Time) *WorkflowSessionUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_u *WorkflowSessionUpdate) AddEventIDs(ids ...int) *WorkflowSessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_u *WorkflowSessionUpdate) AddEvents(v ...*SessionEvent) *WorkflowSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the WorkflowSessionMutation object of the builder.
func (_u *WorkflowSessionUpdate) Mutation() *WorkflowSessionMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the SessionEvent entity.
func (_u *WorkflowSessionUpdate) ClearEvents() *WorkflowSessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to SessionEvent entities by IDs.
func (_u *WorkflowSessionUpdate) RemoveEventIDs(ids ...int) *WorkflowSessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to SessionEvent entities.
func (_u *WorkflowSessionUpdate) RemoveEvents(v ...*SessionEvent) *WorkflowSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowSessionUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := workflowsession.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

func (_u *WorkflowSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(workflowsession.Table, workflowsession.Columns, sqlgraph.NewFieldSpec(workflowsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(workflowsession.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(workflowsession.FieldLastUpdated, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowSessionUpdateOne is the builder for updating a single WorkflowSession entity.
type WorkflowSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowSessionMutation
}

// SetState sets the "state" field.
func (_u *WorkflowSessionUpdateOne) SetState(v map[string]interface{}) *WorkflowSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *WorkflowSessionUpdateOne) SetLastUpdated(v time.Time) *WorkflowSessionUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_u *WorkflowSessionUpdateOne) AddEventIDs(ids ...int) *WorkflowSessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_u *WorkflowSessionUpdateOne) AddEvents(v ...*SessionEvent) *WorkflowSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the WorkflowSessionMutation object of the builder.
func (_u *WorkflowSessionUpdateOne) Mutation() *WorkflowSessionMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the SessionEvent entity.
func (_u *WorkflowSessionUpdateOne) ClearEvents() *WorkflowSessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to SessionEvent entities by IDs.
func (_u *WorkflowSessionUpdateOne) RemoveEventIDs(ids ...int) *WorkflowSessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to SessionEvent entities.
func (_u *WorkflowSessionUpdateOne) RemoveEvents(v ...*SessionEvent) *WorkflowSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the WorkflowSessionUpdate builder.
func (_u *WorkflowSessionUpdateOne) Where(ps ...predicate.WorkflowSession) *WorkflowSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowSessionUpdateOne) Select(field string, fields ...string) *WorkflowSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowSession entity.
func (_u *WorkflowSessionUpdateOne) Save(ctx context.Context) (*WorkflowSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowSessionUpdateOne) SaveX(ctx context.Context) *WorkflowSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := workflowsession.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

func (_u *WorkflowSessionUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(workflowsession.Table, workflowsession.Columns, sqlgraph.NewFieldSpec(workflowsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowsession.FieldID)
		for _, f := range fields {
			if !workflowsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowsession.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(workflowsession.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(workflowsession.FieldLastUpdated, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
