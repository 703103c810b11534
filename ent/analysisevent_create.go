// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/notqc/helpmate/ent/analysisevent"
)

// AnalysisEventCreate is the builder for creating a AnalysisEvent entity.
type AnalysisEventCreate struct {
	config
	mutation *AnalysisEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnalysisEventCreate) SetSequence(v int64) *AnalysisEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnalysisEventCreate) SetTimestamp(v time.Time) *AnalysisEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableTimestamp(v *time.Time) *AnalysisEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetDocumentName sets the "document_name" field.
func (_c *AnalysisEventCreate) SetDocumentName(v string) *AnalysisEventCreate {
	_c.mutation.SetDocumentName(v)
	return _c
}

// SetNillableDocumentName sets the "document_name" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableDocumentName(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetDocumentName(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *AnalysisEventCreate) SetTotalQuestions(v int) *AnalysisEventCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableTotalQuestions(v *int) *AnalysisEventCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *AnalysisEventCreate) SetCorrectAnswers(v int) *AnalysisEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableCorrectAnswers(v *int) *AnalysisEventCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetWeakTopics sets the "weak_topics" field.
func (_c *AnalysisEventCreate) SetWeakTopics(v []string) *AnalysisEventCreate {
	_c.mutation.SetWeakTopics(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *AnalysisEventCreate) SetSummary(v string) *AnalysisEventCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableSummary(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_c *AnalysisEventCreate) Mutation() *AnalysisEventMutation {
	return _c.mutation
}

// Save creates the AnalysisEvent in the database.
func (_c *AnalysisEventCreate) Save(ctx context.Context) (*AnalysisEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisEventCreate) SaveX(ctx context.Context) *AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := analysisevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DocumentName(); !ok {
		v := analysisevent.DefaultDocumentName
		_c.mutation.SetDocumentName(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := analysisevent.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := analysisevent.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.Summary(); !ok {
		v := analysisevent.DefaultSummary
		_c.mutation.SetSummary(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnalysisEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnalysisEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.DocumentName(); !ok {
		return &ValidationError{Name: "document_name", err: errors.New(`ent: missing required field "AnalysisEvent.document_name"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "AnalysisEvent.total_questions"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "AnalysisEvent.correct_answers"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "AnalysisEvent.summary"`)}
	}
	return nil
}

func (_c *AnalysisEventCreate) sqlSave(ctx context.Context) (*AnalysisEvent, error) {
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

func (_c *AnalysisEventCreate) createSpec() (*AnalysisEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisevent.Table, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(analysisevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(analysisevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.DocumentName(); ok {
		_spec.SetField(analysisevent.FieldDocumentName, field.TypeString, value)
		_node.DocumentName = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(analysisevent.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(analysisevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.WeakTopics(); ok {
		_spec.SetField(analysisevent.FieldWeakTopics, field.TypeJSON, value)
		_node.WeakTopics = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(analysisevent.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	return _node, _spec
}

// AnalysisEventCreateBulk is the builder for creating many AnalysisEvent entities in bulk.
type AnalysisEventCreateBulk struct {
	config
	err      error
	builders []*AnalysisEventCreate
}

// Save creates the AnalysisEvent entities in the database.
func (_c *AnalysisEventCreateBulk) Save(ctx context.Context) ([]*AnalysisEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisEventMutation)
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
func (_c *AnalysisEventCreateBulk) SaveX(ctx context.Context) []*AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
