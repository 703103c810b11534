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
	"github.com/notqc/helpmate/ent/bookmarkevent"
	"github.com/notqc/helpmate/ent/predicate"
)

// BookmarkEventUpdate is the builder for updating BookmarkEvent entities.
type BookmarkEventUpdate struct {
	config
	hooks    []Hook
	mutation *BookmarkEventMutation
}

// Where appends a list predicates to the BookmarkEventUpdate builder.
func (_u *BookmarkEventUpdate) Where(ps ...predicate.BookmarkEvent) *BookmarkEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAction sets the "action" field.
func (_u *BookmarkEventUpdate) SetAction(v string) *BookmarkEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *BookmarkEventUpdate) SetNillableAction(v *string) *BookmarkEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *BookmarkEventUpdate) SetTopic(v string) *BookmarkEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *BookmarkEventUpdate) SetNillableTopic(v *string) *BookmarkEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *BookmarkEventUpdate) SetQuestionIndex(v int) *BookmarkEventUpdate {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *BookmarkEventUpdate) SetNillableQuestionIndex(v *int) *BookmarkEventUpdate {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *BookmarkEventUpdate) AddQuestionIndex(v int) *BookmarkEventUpdate {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *BookmarkEventUpdate) SetQuestionText(v string) *BookmarkEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *BookmarkEventUpdate) SetNillableQuestionText(v *string) *BookmarkEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetChoices sets the "choices" field.
func (_u *BookmarkEventUpdate) SetChoices(v []string) *BookmarkEventUpdate {
	_u.mutation.SetChoices(v)
	return _u
}

// AppendChoices appends value to the "choices" field.
func (_u *BookmarkEventUpdate) AppendChoices(v []string) *BookmarkEventUpdate {
	_u.mutation.AppendChoices(v)
	return _u
}

// ClearChoices clears the value of the "choices" field.
func (_u *BookmarkEventUpdate) ClearChoices() *BookmarkEventUpdate {
	_u.mutation.ClearChoices()
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *BookmarkEventUpdate) SetCorrectIndex(v int) *BookmarkEventUpdate {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *BookmarkEventUpdate) SetNillableCorrectIndex(v *int) *BookmarkEventUpdate {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *BookmarkEventUpdate) AddCorrectIndex(v int) *BookmarkEventUpdate {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetExplanationSteps sets the "explanation_steps" field.
func (_u *BookmarkEventUpdate) SetExplanationSteps(v string) *BookmarkEventUpdate {
	_u.mutation.SetExplanationSteps(v)
	return _u
}

// SetNillableExplanationSteps sets the "explanation_steps" field if the given value is not nil.
func (_u *BookmarkEventUpdate) SetNillableExplanationSteps(v *string) *BookmarkEventUpdate {
	if v != nil {
		_u.SetExplanationSteps(*v)
	}
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *BookmarkEventUpdate) SetVideoURL(v string) *BookmarkEventUpdate {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *BookmarkEventUpdate) SetNillableVideoURL(v *string) *BookmarkEventUpdate {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// Mutation returns the BookmarkEventMutation object of the builder.
func (_u *BookmarkEventUpdate) Mutation() *BookmarkEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookmarkEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookmarkEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookmarkEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookmarkEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookmarkEventUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := bookmarkevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BookmarkEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := bookmarkevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "BookmarkEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := bookmarkevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "BookmarkEvent.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *BookmarkEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookmarkevent.Table, bookmarkevent.Columns, sqlgraph.NewFieldSpec(bookmarkevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(bookmarkevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(bookmarkevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(bookmarkevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(bookmarkevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(bookmarkevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Choices(); ok {
		_spec.SetField(bookmarkevent.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bookmarkevent.FieldChoices, value)
		})
	}
	if _u.mutation.ChoicesCleared() {
		_spec.ClearField(bookmarkevent.FieldChoices, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(bookmarkevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(bookmarkevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExplanationSteps(); ok {
		_spec.SetField(bookmarkevent.FieldExplanationSteps, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(bookmarkevent.FieldVideoURL, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bookmarkevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookmarkEventUpdateOne is the builder for updating a single BookmarkEvent entity.
type BookmarkEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookmarkEventMutation
}

// SetAction sets the "action" field.
func (_u *BookmarkEventUpdateOne) SetAction(v string) *BookmarkEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *BookmarkEventUpdateOne) SetNillableAction(v *string) *BookmarkEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *BookmarkEventUpdateOne) SetTopic(v string) *BookmarkEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *BookmarkEventUpdateOne) SetNillableTopic(v *string) *BookmarkEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *BookmarkEventUpdateOne) SetQuestionIndex(v int) *BookmarkEventUpdateOne {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *BookmarkEventUpdateOne) SetNillableQuestionIndex(v *int) *BookmarkEventUpdateOne {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *BookmarkEventUpdateOne) AddQuestionIndex(v int) *BookmarkEventUpdateOne {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *BookmarkEventUpdateOne) SetQuestionText(v string) *BookmarkEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *BookmarkEventUpdateOne) SetNillableQuestionText(v *string) *BookmarkEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetChoices sets the "choices" field.
func (_u *BookmarkEventUpdateOne) SetChoices(v []string) *BookmarkEventUpdateOne {
	_u.mutation.SetChoices(v)
	return _u
}

// AppendChoices appends value to the "choices" field.
func (_u *BookmarkEventUpdateOne) AppendChoices(v []string) *BookmarkEventUpdateOne {
	_u.mutation.AppendChoices(v)
	return _u
}

// ClearChoices clears the value of the "choices" field.
func (_u *BookmarkEventUpdateOne) ClearChoices() *BookmarkEventUpdateOne {
	_u.mutation.ClearChoices()
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *BookmarkEventUpdateOne) SetCorrectIndex(v int) *BookmarkEventUpdateOne {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *BookmarkEventUpdateOne) SetNillableCorrectIndex(v *int) *BookmarkEventUpdateOne {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *BookmarkEventUpdateOne) AddCorrectIndex(v int) *BookmarkEventUpdateOne {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetExplanationSteps sets the "explanation_steps" field.
func (_u *BookmarkEventUpdateOne) SetExplanationSteps(v string) *BookmarkEventUpdateOne {
	_u.mutation.SetExplanationSteps(v)
	return _u
}

// SetNillableExplanationSteps sets the "explanation_steps" field if the given value is not nil.
func (_u *BookmarkEventUpdateOne) SetNillableExplanationSteps(v *string) *BookmarkEventUpdateOne {
	if v != nil {
		_u.SetExplanationSteps(*v)
	}
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *BookmarkEventUpdateOne) SetVideoURL(v string) *BookmarkEventUpdateOne {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *BookmarkEventUpdateOne) SetNillableVideoURL(v *string) *BookmarkEventUpdateOne {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// Mutation returns the BookmarkEventMutation object of the builder.
func (_u *BookmarkEventUpdateOne) Mutation() *BookmarkEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BookmarkEventUpdate builder.
func (_u *BookmarkEventUpdateOne) Where(ps ...predicate.BookmarkEvent) *BookmarkEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookmarkEventUpdateOne) Select(field string, fields ...string) *BookmarkEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BookmarkEvent entity.
func (_u *BookmarkEventUpdateOne) Save(ctx context.Context) (*BookmarkEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookmarkEventUpdateOne) SaveX(ctx context.Context) *BookmarkEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookmarkEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookmarkEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookmarkEventUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := bookmarkevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BookmarkEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := bookmarkevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "BookmarkEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := bookmarkevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "BookmarkEvent.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *BookmarkEventUpdateOne) sqlSave(ctx context.Context) (_node *BookmarkEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookmarkevent.Table, bookmarkevent.Columns, sqlgraph.NewFieldSpec(bookmarkevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BookmarkEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bookmarkevent.FieldID)
		for _, f := range fields {
			if !bookmarkevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bookmarkevent.FieldID {
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
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(bookmarkevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(bookmarkevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(bookmarkevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(bookmarkevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(bookmarkevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Choices(); ok {
		_spec.SetField(bookmarkevent.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bookmarkevent.FieldChoices, value)
		})
	}
	if _u.mutation.ChoicesCleared() {
		_spec.ClearField(bookmarkevent.FieldChoices, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(bookmarkevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(bookmarkevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExplanationSteps(); ok {
		_spec.SetField(bookmarkevent.FieldExplanationSteps, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(bookmarkevent.FieldVideoURL, field.TypeString, value)
	}
	_node = &BookmarkEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bookmarkevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
