// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/notqc/helpmate/ent/analysisevent"
	"github.com/notqc/helpmate/ent/predicate"
)

// AnalysisEventUpdate is the builder for updating AnalysisEvent entities.
type AnalysisEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdate) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentName sets the "document_name" field.
func (_u *AnalysisEventUpdate) SetDocumentName(v string) *AnalysisEventUpdate {
	_u.mutation.SetDocumentName(v)
	return _u
}

// SetNillableDocumentName sets the "document_name" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableDocumentName(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetDocumentName(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *AnalysisEventUpdate) SetTotalQuestions(v int) *AnalysisEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableTotalQuestions(v *int) *AnalysisEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *AnalysisEventUpdate) AddTotalQuestions(v int) *AnalysisEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AnalysisEventUpdate) SetCorrectAnswers(v int) *AnalysisEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableCorrectAnswers(v *int) *AnalysisEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AnalysisEventUpdate) AddCorrectAnswers(v int) *AnalysisEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *AnalysisEventUpdate) SetWeakTopics(v []string) *AnalysisEventUpdate {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *AnalysisEventUpdate) AppendWeakTopics(v []string) *AnalysisEventUpdate {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *AnalysisEventUpdate) ClearWeakTopics() *AnalysisEventUpdate {
	_u.mutation.ClearWeakTopics()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AnalysisEventUpdate) SetSummary(v string) *AnalysisEventUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableSummary(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdate) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnalysisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentName(); ok {
		_spec.SetField(analysisevent.FieldDocumentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(analysisevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(analysisevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(analysisevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(analysisevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(analysisevent.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisevent.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(analysisevent.FieldWeakTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(analysisevent.FieldSummary, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisEventUpdateOne is the builder for updating a single AnalysisEvent entity.
type AnalysisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// SetDocumentName sets the "document_name" field.
func (_u *AnalysisEventUpdateOne) SetDocumentName(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetDocumentName(v)
	return _u
}

// SetNillableDocumentName sets the "document_name" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableDocumentName(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetDocumentName(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *AnalysisEventUpdateOne) SetTotalQuestions(v int) *AnalysisEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableTotalQuestions(v *int) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *AnalysisEventUpdateOne) AddTotalQuestions(v int) *AnalysisEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AnalysisEventUpdateOne) SetCorrectAnswers(v int) *AnalysisEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableCorrectAnswers(v *int) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AnalysisEventUpdateOne) AddCorrectAnswers(v int) *AnalysisEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *AnalysisEventUpdateOne) SetWeakTopics(v []string) *AnalysisEventUpdateOne {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *AnalysisEventUpdateOne) AppendWeakTopics(v []string) *AnalysisEventUpdateOne {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *AnalysisEventUpdateOne) ClearWeakTopics() *AnalysisEventUpdateOne {
	_u.mutation.ClearWeakTopics()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AnalysisEventUpdateOne) SetSummary(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableSummary(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdateOne) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdateOne) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisEventUpdateOne) Select(field string, fields ...string) *AnalysisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisEvent entity.
func (_u *AnalysisEventUpdateOne) Save(ctx context.Context) (*AnalysisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) SaveX(ctx context.Context) *AnalysisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnalysisEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisevent.FieldID)
		for _, f := range fields {
			if !analysisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisevent.FieldID {
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
	if value, ok := _u.mutation.DocumentName(); ok {
		_spec.SetField(analysisevent.FieldDocumentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(analysisevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(analysisevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(analysisevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(analysisevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(analysisevent.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisevent.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(analysisevent.FieldWeakTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(analysisevent.FieldSummary, field.TypeString, value)
	}
	_node = &AnalysisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
