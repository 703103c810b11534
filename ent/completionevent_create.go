// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/notqc/helpmate/ent/completionevent"
)

// CompletionEventCreate is the builder for creating a CompletionEvent entity.
type CompletionEventCreate struct {
	config
	mutation *CompletionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CompletionEventCreate) SetSequence(v int64) *CompletionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CompletionEventCreate) SetTimestamp(v time.Time) *CompletionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableTimestamp(v *time.Time) *CompletionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *CompletionEventCreate) SetSessionID(v string) *CompletionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *CompletionEventCreate) SetTopic(v string) *CompletionEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *CompletionEventCreate) SetDay(v string) *CompletionEventCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *CompletionEventCreate) SetQuestions(v int) *CompletionEventCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetAnswered sets the "answered" field.
func (_c *CompletionEventCreate) SetAnswered(v int) *CompletionEventCreate {
	_c.mutation.SetAnswered(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *CompletionEventCreate) SetCorrect(v int) *CompletionEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_c *CompletionEventCreate) Mutation() *CompletionEventMutation {
	return _c.mutation
}

// Save creates the CompletionEvent in the database.
func (_c *CompletionEventCreate) Save(ctx context.Context) (*CompletionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompletionEventCreate) SaveX(ctx context.Context) *CompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompletionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := completionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompletionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CompletionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CompletionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CompletionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := completionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "CompletionEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := completionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "CompletionEvent.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := completionevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "CompletionEvent.questions"`)}
	}
	if _, ok := _c.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "CompletionEvent.answered"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "CompletionEvent.correct"`)}
	}
	return nil
}

func (_c *CompletionEventCreate) sqlSave(ctx context.Context) (*CompletionEvent, error) {
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

func (_c *CompletionEventCreate) createSpec() (*CompletionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CompletionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(completionevent.Table, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(completionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(completionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(completionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(completionevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(completionevent.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(completionevent.FieldQuestions, field.TypeInt, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Answered(); ok {
		_spec.SetField(completionevent.FieldAnswered, field.TypeInt, value)
		_node.Answered = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(completionevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	return _node, _spec
}

// CompletionEventCreateBulk is the builder for creating many CompletionEvent entities in bulk.
type CompletionEventCreateBulk struct {
	config
	err      error
	builders []*CompletionEventCreate
}

// Save creates the CompletionEvent entities in the database.
func (_c *CompletionEventCreateBulk) Save(ctx context.Context) ([]*CompletionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompletionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompletionEventMutation)
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
func (_c *CompletionEventCreateBulk) SaveX(ctx context.Context) []*CompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
