// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loom-agents/loom/ent/evidencerecord"
	"github.com/loom-agents/loom/ent/predicate"
)

// EvidenceRecordDelete is the builder for deleting a EvidenceRecord entity.
type EvidenceRecordDelete struct {
	config
	hooks    []Hook
	mutation *EvidenceRecordMutation
}

// Where appends a list predicates to the EvidenceRecordDelete builder.
func (_d *EvidenceRecordDelete) Where(ps ...predicate.EvidenceRecord) *EvidenceRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EvidenceRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvidenceRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EvidenceRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(evidencerecord.Table, sqlgraph.NewFieldSpec(evidencerecord.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EvidenceRecordDeleteOne is the builder for deleting a single EvidenceRecord entity.
type EvidenceRecordDeleteOne struct {
	_d *EvidenceRecordDelete
}

// Where appends a list predicates to the EvidenceRecordDelete builder.
func (_d *EvidenceRecordDeleteOne) Where(ps ...predicate.EvidenceRecord) *EvidenceRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EvidenceRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{evidencerecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvidenceRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
