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
	"github.com/hireflow/scout/ent/candidatesignal"
	"github.com/hireflow/scout/ent/predicate"
)

// CandidateSignalUpdate is the builder for updating CandidateSignal entities.
type CandidateSignalUpdate struct {
	config
	hooks    []Hook
	mutation *CandidateSignalMutation
}

// Where appends a list predicates to the CandidateSignalUpdate builder.
func (_u *CandidateSignalUpdate) Where(ps ...predicate.CandidateSignal) *CandidateSignalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSignalType sets the "signal_type" field.
func (_u *CandidateSignalUpdate) SetSignalType(v string) *CandidateSignalUpdate {
	_u.mutation.SetSignalType(v)
	return _u
}

// SetNillableSignalType sets the "signal_type" field if the given value is not nil.
func (_u *CandidateSignalUpdate) SetNillableSignalType(v *string) *CandidateSignalUpdate {
	if v != nil {
		_u.SetSignalType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CandidateSignalUpdate) SetCategory(v string) *CandidateSignalUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CandidateSignalUpdate) SetNillableCategory(v *string) *CandidateSignalUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CandidateSignalUpdate) SetTitle(v string) *CandidateSignalUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CandidateSignalUpdate) SetNillableTitle(v *string) *CandidateSignalUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *CandidateSignalUpdate) SetDetail(v string) *CandidateSignalUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *CandidateSignalUpdate) SetNillableDetail(v *string) *CandidateSignalUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *CandidateSignalUpdate) ClearDetail() *CandidateSignalUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetImpact sets the "impact" field.
func (_u *CandidateSignalUpdate) SetImpact(v float64) *CandidateSignalUpdate {
	_u.mutation.ResetImpact()
	_u.mutation.SetImpact(v)
	return _u
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_u *CandidateSignalUpdate) SetNillableImpact(v *float64) *CandidateSignalUpdate {
	if v != nil {
		_u.SetImpact(*v)
	}
	return _u
}

// AddImpact adds value to the "impact" field.
func (_u *CandidateSignalUpdate) AddImpact(v float64) *CandidateSignalUpdate {
	_u.mutation.AddImpact(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CandidateSignalUpdate) SetConfidence(v float64) *CandidateSignalUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CandidateSignalUpdate) SetNillableConfidence(v *float64) *CandidateSignalUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CandidateSignalUpdate) AddConfidence(v float64) *CandidateSignalUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSignalMeta sets the "signal_meta" field.
func (_u *CandidateSignalUpdate) SetSignalMeta(v map[string]interface{}) *CandidateSignalUpdate {
	_u.mutation.SetSignalMeta(v)
	return _u
}

// ClearSignalMeta clears the value of the "signal_meta" field.
func (_u *CandidateSignalUpdate) ClearSignalMeta() *CandidateSignalUpdate {
	_u.mutation.ClearSignalMeta()
	return _u
}

// SetObservedAt sets the "observed_at" field.
func (_u *CandidateSignalUpdate) SetObservedAt(v time.Time) *CandidateSignalUpdate {
	_u.mutation.SetObservedAt(v)
	return _u
}

// SetNillableObservedAt sets the "observed_at" field if the given value is not nil.
func (_u *CandidateSignalUpdate) SetNillableObservedAt(v *time.Time) *CandidateSignalUpdate {
	if v != nil {
		_u.SetObservedAt(*v)
	}
	return _u
}

// Mutation returns the CandidateSignalMutation object of the builder.
func (_u *CandidateSignalUpdate) Mutation() *CandidateSignalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CandidateSignalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateSignalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CandidateSignalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateSignalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateSignalUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CandidateSignal.job"`)
	}
	return nil
}

func (_u *CandidateSignalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidatesignal.Table, candidatesignal.Columns, sqlgraph.NewFieldSpec(candidatesignal.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SignalType(); ok {
		_spec.SetField(candidatesignal.FieldSignalType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(candidatesignal.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(candidatesignal.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(candidatesignal.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(candidatesignal.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.Impact(); ok {
		_spec.SetField(candidatesignal.FieldImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImpact(); ok {
		_spec.AddField(candidatesignal.FieldImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(candidatesignal.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(candidatesignal.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SignalMeta(); ok {
		_spec.SetField(candidatesignal.FieldSignalMeta, field.TypeJSON, value)
	}
	if _u.mutation.SignalMetaCleared() {
		_spec.ClearField(candidatesignal.FieldSignalMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.ObservedAt(); ok {
		_spec.SetField(candidatesignal.FieldObservedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidatesignal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CandidateSignalUpdateOne is the builder for updating a single CandidateSignal entity.
type CandidateSignalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CandidateSignalMutation
}

// SetSignalType sets the "signal_type" field.
func (_u *CandidateSignalUpdateOne) SetSignalType(v string) *CandidateSignalUpdateOne {
	_u.mutation.SetSignalType(v)
	return _u
}

// SetNillableSignalType sets the "signal_type" field if the given value is not nil.
func (_u *CandidateSignalUpdateOne) SetNillableSignalType(v *string) *CandidateSignalUpdateOne {
	if v != nil {
		_u.SetSignalType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CandidateSignalUpdateOne) SetCategory(v string) *CandidateSignalUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CandidateSignalUpdateOne) SetNillableCategory(v *string) *CandidateSignalUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CandidateSignalUpdateOne) SetTitle(v string) *CandidateSignalUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CandidateSignalUpdateOne) SetNillableTitle(v *string) *CandidateSignalUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *CandidateSignalUpdateOne) SetDetail(v string) *CandidateSignalUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *CandidateSignalUpdateOne) SetNillableDetail(v *string) *CandidateSignalUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *CandidateSignalUpdateOne) ClearDetail() *CandidateSignalUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetImpact sets the "impact" field.
func (_u *CandidateSignalUpdateOne) SetImpact(v float64) *CandidateSignalUpdateOne {
	_u.mutation.ResetImpact()
	_u.mutation.SetImpact(v)
	return _u
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_u *CandidateSignalUpdateOne) SetNillableImpact(v *float64) *CandidateSignalUpdateOne {
	if v != nil {
		_u.SetImpact(*v)
	}
	return _u
}

// AddImpact adds value to the "impact" field.
func (_u *CandidateSignalUpdateOne) AddImpact(v float64) *CandidateSignalUpdateOne {
	_u.mutation.AddImpact(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CandidateSignalUpdateOne) SetConfidence(v float64) *CandidateSignalUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CandidateSignalUpdateOne) SetNillableConfidence(v *float64) *CandidateSignalUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CandidateSignalUpdateOne) AddConfidence(v float64) *CandidateSignalUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSignalMeta sets the "signal_meta" field.
func (_u *CandidateSignalUpdateOne) SetSignalMeta(v map[string]interface{}) *CandidateSignalUpdateOne {
	_u.mutation.SetSignalMeta(v)
	return _u
}

// ClearSignalMeta clears the value of the "signal_meta" field.
func (_u *CandidateSignalUpdateOne) ClearSignalMeta() *CandidateSignalUpdateOne {
	_u.mutation.ClearSignalMeta()
	return _u
}

// SetObservedAt sets the "observed_at" field.
func (_u *CandidateSignalUpdateOne) SetObservedAt(v time.Time) *CandidateSignalUpdateOne {
	_u.mutation.SetObservedAt(v)
	return _u
}

// SetNillableObservedAt sets the "observed_at" field if the given value is not nil.
func (_u *CandidateSignalUpdateOne) SetNillableObservedAt(v *time.Time) *CandidateSignalUpdateOne {
	if v != nil {
		_u.SetObservedAt(*v)
	}
	return _u
}

// Mutation returns the CandidateSignalMutation object of the builder.
func (_u *CandidateSignalUpdateOne) Mutation() *CandidateSignalMutation {
	return _u.mutation
}

// Where appends a list predicates to the CandidateSignalUpdate builder.
func (_u *CandidateSignalUpdateOne) Where(ps ...predicate.CandidateSignal) *CandidateSignalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CandidateSignalUpdateOne) Select(field string, fields ...string) *CandidateSignalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CandidateSignal entity.
func (_u *CandidateSignalUpdateOne) Save(ctx context.Context) (*CandidateSignal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateSignalUpdateOne) SaveX(ctx context.Context) *CandidateSignal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CandidateSignalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateSignalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateSignalUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CandidateSignal.job"`)
	}
	return nil
}

func (_u *CandidateSignalUpdateOne) sqlSave(ctx context.Context) (_node *CandidateSignal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidatesignal.Table, candidatesignal.Columns, sqlgraph.NewFieldSpec(candidatesignal.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CandidateSignal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, candidatesignal.FieldID)
		for _, f := range fields {
			if !candidatesignal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != candidatesignal.FieldID {
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
	if value, ok := _u.mutation.SignalType(); ok {
		_spec.SetField(candidatesignal.FieldSignalType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(candidatesignal.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(candidatesignal.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(candidatesignal.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(candidatesignal.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.Impact(); ok {
		_spec.SetField(candidatesignal.FieldImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImpact(); ok {
		_spec.AddField(candidatesignal.FieldImpact, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(candidatesignal.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(candidatesignal.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SignalMeta(); ok {
		_spec.SetField(candidatesignal.FieldSignalMeta, field.TypeJSON, value)
	}
	if _u.mutation.SignalMetaCleared() {
		_spec.ClearField(candidatesignal.FieldSignalMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.ObservedAt(); ok {
		_spec.SetField(candidatesignal.FieldObservedAt, field.TypeTime, value)
	}
	_node = &CandidateSignal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidatesignal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
