// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/notqc/helpmate/ent/completionevent"
	"github.com/notqc/helpmate/ent/predicate"
)

// CompletionEventUpdate is the builder for updating CompletionEvent entities.
type CompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionEventMutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdate) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CompletionEventUpdate) SetSessionID(v string) *CompletionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableSessionID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *CompletionEventUpdate) SetTopic(v string) *CompletionEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableTopic(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *CompletionEventUpdate) SetDay(v string) *CompletionEventUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableDay(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *CompletionEventUpdate) SetQuestions(v int) *CompletionEventUpdate {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableQuestions(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *CompletionEventUpdate) AddQuestions(v int) *CompletionEventUpdate {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *CompletionEventUpdate) SetAnswered(v int) *CompletionEventUpdate {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableAnswered(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *CompletionEventUpdate) AddAnswered(v int) *CompletionEventUpdate {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *CompletionEventUpdate) SetCorrect(v int) *CompletionEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableCorrect(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *CompletionEventUpdate) AddCorrect(v int) *CompletionEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdate) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := completionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := completionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := completionevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.day": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(completionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(completionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(completionevent.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(completionevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(completionevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(completionevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(completionevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(completionevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(completionevent.FieldCorrect, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionEventUpdateOne is the builder for updating a single CompletionEvent entity.
type CompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *CompletionEventUpdateOne) SetSessionID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableSessionID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *CompletionEventUpdateOne) SetTopic(v string) *CompletionEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableTopic(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *CompletionEventUpdateOne) SetDay(v string) *CompletionEventUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableDay(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *CompletionEventUpdateOne) SetQuestions(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableQuestions(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *CompletionEventUpdateOne) AddQuestions(v int) *CompletionEventUpdateOne {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *CompletionEventUpdateOne) SetAnswered(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableAnswered(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *CompletionEventUpdateOne) AddAnswered(v int) *CompletionEventUpdateOne {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *CompletionEventUpdateOne) SetCorrect(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableCorrect(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *CompletionEventUpdateOne) AddCorrect(v int) *CompletionEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdateOne) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdateOne) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionEventUpdateOne) Select(field string, fields ...string) *CompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompletionEvent entity.
func (_u *CompletionEventUpdateOne) Save(ctx context.Context) (*CompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) SaveX(ctx context.Context) *CompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := completionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := completionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := completionevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.day": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *CompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionevent.FieldID)
		for _, f := range fields {
			if !completionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(completionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(completionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(completionevent.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(completionevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(completionevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(completionevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(completionevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(completionevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(completionevent.FieldCorrect, field.TypeInt, value)
	}
	_node = &CompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
