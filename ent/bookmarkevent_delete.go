// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/notqc/helpmate/ent/bookmarkevent"
	"github.com/notqc/helpmate/ent/predicate"
)

// BookmarkEventDelete is the builder for deleting a BookmarkEvent entity.
type BookmarkEventDelete struct {
	config
	hooks    []Hook
	mutation *BookmarkEventMutation
}

// Where appends a list predicates to the BookmarkEventDelete builder.
func (_d *BookmarkEventDelete) Where(ps ...predicate.BookmarkEvent) *BookmarkEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BookmarkEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BookmarkEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BookmarkEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(bookmarkevent.Table, sqlgraph.NewFieldSpec(bookmarkevent.FieldID, field.TypeInt))
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

// BookmarkEventDeleteOne is the builder for deleting a single BookmarkEvent entity.
type BookmarkEventDeleteOne struct {
	_d *BookmarkEventDelete
}

// Where appends a list predicates to the BookmarkEventDelete builder.
func (_d *BookmarkEventDeleteOne) Where(ps ...predicate.BookmarkEvent) *BookmarkEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BookmarkEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{bookmarkevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BookmarkEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
