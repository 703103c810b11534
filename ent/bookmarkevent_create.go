// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/notqc/helpmate/ent/bookmarkevent"
)

// BookmarkEventCreate is the builder for creating a BookmarkEvent entity.
type BookmarkEventCreate struct {
	config
	mutation *BookmarkEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *BookmarkEventCreate) SetSequence(v int64) *BookmarkEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *BookmarkEventCreate) SetTimestamp(v time.Time) *BookmarkEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *BookmarkEventCreate) SetNillableTimestamp(v *time.Time) *BookmarkEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *BookmarkEventCreate) SetAction(v string) *BookmarkEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *BookmarkEventCreate) SetTopic(v string) *BookmarkEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetQuestionIndex sets the "question_index" field.
func (_c *BookmarkEventCreate) SetQuestionIndex(v int) *BookmarkEventCreate {
	_c.mutation.SetQuestionIndex(v)
	return _c
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_c *BookmarkEventCreate) SetNillableQuestionIndex(v *int) *BookmarkEventCreate {
	if v != nil {
		_c.SetQuestionIndex(*v)
	}
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *BookmarkEventCreate) SetQuestionText(v string) *BookmarkEventCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetChoices sets the "choices" field.
func (_c *BookmarkEventCreate) SetChoices(v []string) *BookmarkEventCreate {
	_c.mutation.SetChoices(v)
	return _c
}

// SetCorrectIndex sets the "correct_index" field.
func (_c *BookmarkEventCreate) SetCorrectIndex(v int) *BookmarkEventCreate {
	_c.mutation.SetCorrectIndex(v)
	return _c
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_c *BookmarkEventCreate) SetNillableCorrectIndex(v *int) *BookmarkEventCreate {
	if v != nil {
		_c.SetCorrectIndex(*v)
	}
	return _c
}

// SetExplanationSteps sets the "explanation_steps" field.
func (_c *BookmarkEventCreate) SetExplanationSteps(v string) *BookmarkEventCreate {
	_c.mutation.SetExplanationSteps(v)
	return _c
}

// SetNillableExplanationSteps sets the "explanation_steps" field if the given value is not nil.
func (_c *BookmarkEventCreate) SetNillableExplanationSteps(v *string) *BookmarkEventCreate {
	if v != nil {
		_c.SetExplanationSteps(*v)
	}
	return _c
}

// SetVideoURL sets the "video_url" field.
func (_c *BookmarkEventCreate) SetVideoURL(v string) *BookmarkEventCreate {
	_c.mutation.SetVideoURL(v)
	return _c
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_c *BookmarkEventCreate) SetNillableVideoURL(v *string) *BookmarkEventCreate {
	if v != nil {
		_c.SetVideoURL(*v)
	}
	return _c
}

// Mutation returns the BookmarkEventMutation object of the builder.
func (_c *BookmarkEventCreate) Mutation() *BookmarkEventMutation {
	return _c.mutation
}

// Save creates the BookmarkEvent in the database.
func (_c *BookmarkEventCreate) Save(ctx context.Context) (*BookmarkEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BookmarkEventCreate) SaveX(ctx context.Context) *BookmarkEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookmarkEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookmarkEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BookmarkEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := bookmarkevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionIndex(); !ok {
		v := bookmarkevent.DefaultQuestionIndex
		_c.mutation.SetQuestionIndex(v)
	}
	if _, ok := _c.mutation.CorrectIndex(); !ok {
		v := bookmarkevent.DefaultCorrectIndex
		_c.mutation.SetCorrectIndex(v)
	}
	if _, ok := _c.mutation.ExplanationSteps(); !ok {
		v := bookmarkevent.DefaultExplanationSteps
		_c.mutation.SetExplanationSteps(v)
	}
	if _, ok := _c.mutation.VideoURL(); !ok {
		v := bookmarkevent.DefaultVideoURL
		_c.mutation.SetVideoURL(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BookmarkEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "BookmarkEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BookmarkEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "BookmarkEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := bookmarkevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BookmarkEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "BookmarkEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := bookmarkevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "BookmarkEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionIndex(); !ok {
		return &ValidationError{Name: "question_index", err: errors.New(`ent: missing required field "BookmarkEvent.question_index"`)}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "BookmarkEvent.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := bookmarkevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "BookmarkEvent.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectIndex(); !ok {
		return &ValidationError{Name: "correct_index", err: errors.New(`ent: missing required field "BookmarkEvent.correct_index"`)}
	}
	if _, ok := _c.mutation.ExplanationSteps(); !ok {
		return &ValidationError{Name: "explanation_steps", err: errors.New(`ent: missing required field "BookmarkEvent.explanation_steps"`)}
	}
	if _, ok := _c.mutation.VideoURL(); !ok {
		return &ValidationError{Name: "video_url", err: errors.New(`ent: missing required field "BookmarkEvent.video_url"`)}
	}
	return nil
}

func (_c *BookmarkEventCreate) sqlSave(ctx context.Context) (*BookmarkEvent, error) {
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

func (_c *BookmarkEventCreate) createSpec() (*BookmarkEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BookmarkEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bookmarkevent.Table, sqlgraph.NewFieldSpec(bookmarkevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(bookmarkevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(bookmarkevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(bookmarkevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(bookmarkevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.QuestionIndex(); ok {
		_spec.SetField(bookmarkevent.FieldQuestionIndex, field.TypeInt, value)
		_node.QuestionIndex = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(bookmarkevent.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.Choices(); ok {
		_spec.SetField(bookmarkevent.FieldChoices, field.TypeJSON, value)
		_node.Choices = value
	}
	if value, ok := _c.mutation.CorrectIndex(); ok {
		_spec.SetField(bookmarkevent.FieldCorrectIndex, field.TypeInt, value)
		_node.CorrectIndex = value
	}
	if value, ok := _c.mutation.ExplanationSteps(); ok {
		_spec.SetField(bookmarkevent.FieldExplanationSteps, field.TypeString, value)
		_node.ExplanationSteps = value
	}
	if value, ok := _c.mutation.VideoURL(); ok {
		_spec.SetField(bookmarkevent.FieldVideoURL, field.TypeString, value)
		_node.VideoURL = value
	}
	return _node, _spec
}

// BookmarkEventCreateBulk is the builder for creating many BookmarkEvent entities in bulk.
type BookmarkEventCreateBulk struct {
	config
	err      error
	builders []*BookmarkEventCreate
}

// Save creates the BookmarkEvent entities in the database.
func (_c *BookmarkEventCreateBulk) Save(ctx context.Context) ([]*BookmarkEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BookmarkEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookmarkEventMutation)
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
func (_c *BookmarkEventCreateBulk) SaveX(ctx context.Context) []*BookmarkEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookmarkEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookmarkEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
