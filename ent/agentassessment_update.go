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
	"github.com/hireflow/scout/ent/agentassessment"
	"github.com/hireflow/scout/ent/predicate"
)

// AgentAssessmentUpdate is the builder for updating AgentAssessment entities.
type AgentAssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentAssessmentMutation
}

// Where appends a list predicates to the AgentAssessmentUpdate builder.
func (_u *AgentAssessmentUpdate) Where(ps ...predicate.AgentAssessment) *AgentAssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentKey sets the "agent_key" field.
func (_u *AgentAssessmentUpdate) SetAgentKey(v agentassessment.AgentKey) *AgentAssessmentUpdate {
	_u.mutation.SetAgentKey(v)
	return _u
}

// SetNillableAgentKey sets the "agent_key" field if the given value is not nil.
func (_u *AgentAssessmentUpdate) SetNillableAgentKey(v *agentassessment.AgentKey) *AgentAssessmentUpdate {
	if v != nil {
		_u.SetAgentKey(*v)
	}
	return _u
}

// SetStageKey sets the "stage_key" field.
func (_u *AgentAssessmentUpdate) SetStageKey(v string) *AgentAssessmentUpdate {
	_u.mutation.SetStageKey(v)
	return _u
}

// SetNillableStageKey sets the "stage_key" field if the given value is not nil.
func (_u *AgentAssessmentUpdate) SetNillableStageKey(v *string) *AgentAssessmentUpdate {
	if v != nil {
		_u.SetStageKey(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AgentAssessmentUpdate) SetScore(v float64) *AgentAssessmentUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AgentAssessmentUpdate) SetNillableScore(v *float64) *AgentAssessmentUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AgentAssessmentUpdate) AddScore(v float64) *AgentAssessmentUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *AgentAssessmentUpdate) ClearScore() *AgentAssessmentUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentAssessmentUpdate) SetStatus(v string) *AgentAssessmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentAssessmentUpdate) SetNillableStatus(v *string) *AgentAssessmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AgentAssessmentUpdate) SetReason(v string) *AgentAssessmentUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AgentAssessmentUpdate) SetNillableReason(v *string) *AgentAssessmentUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *AgentAssessmentUpdate) ClearReason() *AgentAssessmentUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetDetails sets the "details" field.
func (_u *AgentAssessmentUpdate) SetDetails(v map[string]interface{}) *AgentAssessmentUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *AgentAssessmentUpdate) ClearDetails() *AgentAssessmentUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentAssessmentUpdate) SetUpdatedAt(v time.Time) *AgentAssessmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentAssessmentMutation object of the builder.
func (_u *AgentAssessmentUpdate) Mutation() *AgentAssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentAssessmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentAssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentAssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentAssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentAssessmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentassessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentAssessmentUpdate) check() error {
	if v, ok := _u.mutation.AgentKey(); ok {
		if err := agentassessment.AgentKeyValidator(v); err != nil {
			return &ValidationError{Name: "agent_key", err: fmt.Errorf(`ent: validator failed for field "AgentAssessment.agent_key": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentAssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentassessment.Table, agentassessment.Columns, sqlgraph.NewFieldSpec(agentassessment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentKey(); ok {
		_spec.SetField(agentassessment.FieldAgentKey, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StageKey(); ok {
		_spec.SetField(agentassessment.FieldStageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(agentassessment.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(agentassessment.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(agentassessment.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentassessment.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(agentassessment.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(agentassessment.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(agentassessment.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(agentassessment.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentassessment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentAssessmentUpdateOne is the builder for updating a single AgentAssessment entity.
type AgentAssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentAssessmentMutation
}

// SetAgentKey sets the "agent_key" field.
func (_u *AgentAssessmentUpdateOne) SetAgentKey(v agentassessment.AgentKey) *AgentAssessmentUpdateOne {
	_u.mutation.SetAgentKey(v)
	return _u
}

// SetNillableAgentKey sets the "agent_key" field if the given value is not nil.
func (_u *AgentAssessmentUpdateOne) SetNillableAgentKey(v *agentassessment.AgentKey) *AgentAssessmentUpdateOne {
	if v != nil {
		_u.SetAgentKey(*v)
	}
	return _u
}

// SetStageKey sets the "stage_key" field.
func (_u *AgentAssessmentUpdateOne) SetStageKey(v string) *AgentAssessmentUpdateOne {
	_u.mutation.SetStageKey(v)
	return _u
}

// SetNillableStageKey sets the "stage_key" field if the given value is not nil.
func (_u *AgentAssessmentUpdateOne) SetNillableStageKey(v *string) *AgentAssessmentUpdateOne {
	if v != nil {
		_u.SetStageKey(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AgentAssessmentUpdateOne) SetScore(v float64) *AgentAssessmentUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AgentAssessmentUpdateOne) SetNillableScore(v *float64) *AgentAssessmentUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AgentAssessmentUpdateOne) AddScore(v float64) *AgentAssessmentUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *AgentAssessmentUpdateOne) ClearScore() *AgentAssessmentUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentAssessmentUpdateOne) SetStatus(v string) *AgentAssessmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentAssessmentUpdateOne) SetNillableStatus(v *string) *AgentAssessmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AgentAssessmentUpdateOne) SetReason(v string) *AgentAssessmentUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AgentAssessmentUpdateOne) SetNillableReason(v *string) *AgentAssessmentUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *AgentAssessmentUpdateOne) ClearReason() *AgentAssessmentUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetDetails sets the "details" field.
func (_u *AgentAssessmentUpdateOne) SetDetails(v map[string]interface{}) *AgentAssessmentUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *AgentAssessmentUpdateOne) ClearDetails() *AgentAssessmentUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentAssessmentUpdateOne) SetUpdatedAt(v time.Time) *AgentAssessmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentAssessmentMutation object of the builder.
func (_u *AgentAssessmentUpdateOne) Mutation() *AgentAssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentAssessmentUpdate builder.
func (_u *AgentAssessmentUpdateOne) Where(ps ...predicate.AgentAssessment) *AgentAssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentAssessmentUpdateOne) Select(field string, fields ...string) *AgentAssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentAssessment entity.
func (_u *AgentAssessmentUpdateOne) Save(ctx context.Context) (*AgentAssessment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentAssessmentUpdateOne) SaveX(ctx context.Context) *AgentAssessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentAssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentAssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentAssessmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentassessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentAssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.AgentKey(); ok {
		if err := agentassessment.AgentKeyValidator(v); err != nil {
			return &ValidationError{Name: "agent_key", err: fmt.Errorf(`ent: validator failed for field "AgentAssessment.agent_key": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentAssessmentUpdateOne) sqlSave(ctx context.Context) (_node *AgentAssessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentassessment.Table, agentassessment.Columns, sqlgraph.NewFieldSpec(agentassessment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentAssessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentassessment.FieldID)
		for _, f := range fields {
			if !agentassessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentassessment.FieldID {
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
	if value, ok := _u.mutation.AgentKey(); ok {
		_spec.SetField(agentassessment.FieldAgentKey, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StageKey(); ok {
		_spec.SetField(agentassessment.FieldStageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(agentassessment.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(agentassessment.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(agentassessment.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentassessment.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(agentassessment.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(agentassessment.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(agentassessment.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(agentassessment.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentassessment.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentAssessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
