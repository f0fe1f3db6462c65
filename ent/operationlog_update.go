// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hireflow/scout/ent/operationlog"
	"github.com/hireflow/scout/ent/predicate"
)

// OperationLogUpdate is the builder for updating OperationLog entities.
type OperationLogUpdate struct {
	config
	hooks    []Hook
	mutation *OperationLogMutation
}

// Where appends a list predicates to the OperationLogUpdate builder.
func (_u *OperationLogUpdate) Where(ps ...predicate.OperationLog) *OperationLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOperation sets the "operation" field.
func (_u *OperationLogUpdate) SetOperation(v string) *OperationLogUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *OperationLogUpdate) SetNillableOperation(v *string) *OperationLogUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OperationLogUpdate) SetStatus(v string) *OperationLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OperationLogUpdate) SetNillableStatus(v *string) *OperationLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *OperationLogUpdate) SetEntityType(v string) *OperationLogUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *OperationLogUpdate) SetNillableEntityType(v *string) *OperationLogUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// ClearEntityType clears the value of the "entity_type" field.
func (_u *OperationLogUpdate) ClearEntityType() *OperationLogUpdate {
	_u.mutation.ClearEntityType()
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *OperationLogUpdate) SetEntityID(v string) *OperationLogUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *OperationLogUpdate) SetNillableEntityID(v *string) *OperationLogUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *OperationLogUpdate) ClearEntityID() *OperationLogUpdate {
	_u.mutation.ClearEntityID()
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *OperationLogUpdate) SetJobID(v string) *OperationLogUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *OperationLogUpdate) SetNillableJobID(v *string) *OperationLogUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *OperationLogUpdate) ClearJobID() *OperationLogUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *OperationLogUpdate) SetCandidateID(v string) *OperationLogUpdate {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *OperationLogUpdate) SetNillableCandidateID(v *string) *OperationLogUpdate {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *OperationLogUpdate) ClearCandidateID() *OperationLogUpdate {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetDetails sets the "details" field.
func (_u *OperationLogUpdate) SetDetails(v map[string]interface{}) *OperationLogUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *OperationLogUpdate) ClearDetails() *OperationLogUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the OperationLogMutation object of the builder.
func (_u *OperationLogUpdate) Mutation() *OperationLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OperationLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OperationLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OperationLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OperationLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OperationLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(operationlog.Table, operationlog.Columns, sqlgraph.NewFieldSpec(operationlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(operationlog.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(operationlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(operationlog.FieldEntityType, field.TypeString, value)
	}
	if _u.mutation.EntityTypeCleared() {
		_spec.ClearField(operationlog.FieldEntityType, field.TypeString)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(operationlog.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(operationlog.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(operationlog.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(operationlog.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateID(); ok {
		_spec.SetField(operationlog.FieldCandidateID, field.TypeString, value)
	}
	if _u.mutation.CandidateIDCleared() {
		_spec.ClearField(operationlog.FieldCandidateID, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(operationlog.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(operationlog.FieldDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{operationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OperationLogUpdateOne is the builder for updating a single OperationLog entity.
type OperationLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OperationLogMutation
}

// SetOperation sets the "operation" field.
func (_u *OperationLogUpdateOne) SetOperation(v string) *OperationLogUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *OperationLogUpdateOne) SetNillableOperation(v *string) *OperationLogUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OperationLogUpdateOne) SetStatus(v string) *OperationLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OperationLogUpdateOne) SetNillableStatus(v *string) *OperationLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *OperationLogUpdateOne) SetEntityType(v string) *OperationLogUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *OperationLogUpdateOne) SetNillableEntityType(v *string) *OperationLogUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// ClearEntityType clears the value of the "entity_type" field.
func (_u *OperationLogUpdateOne) ClearEntityType() *OperationLogUpdateOne {
	_u.mutation.ClearEntityType()
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *OperationLogUpdateOne) SetEntityID(v string) *OperationLogUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *OperationLogUpdateOne) SetNillableEntityID(v *string) *OperationLogUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *OperationLogUpdateOne) ClearEntityID() *OperationLogUpdateOne {
	_u.mutation.ClearEntityID()
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *OperationLogUpdateOne) SetJobID(v string) *OperationLogUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *OperationLogUpdateOne) SetNillableJobID(v *string) *OperationLogUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *OperationLogUpdateOne) ClearJobID() *OperationLogUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *OperationLogUpdateOne) SetCandidateID(v string) *OperationLogUpdateOne {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *OperationLogUpdateOne) SetNillableCandidateID(v *string) *OperationLogUpdateOne {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *OperationLogUpdateOne) ClearCandidateID() *OperationLogUpdateOne {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetDetails sets the "details" field.
func (_u *OperationLogUpdateOne) SetDetails(v map[string]interface{}) *OperationLogUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *OperationLogUpdateOne) ClearDetails() *OperationLogUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the OperationLogMutation object of the builder.
func (_u *OperationLogUpdateOne) Mutation() *OperationLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the OperationLogUpdate builder.
func (_u *OperationLogUpdateOne) Where(ps ...predicate.OperationLog) *OperationLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OperationLogUpdateOne) Select(field string, fields ...string) *OperationLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OperationLog entity.
func (_u *OperationLogUpdateOne) Save(ctx context.Context) (*OperationLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OperationLogUpdateOne) SaveX(ctx context.Context) *OperationLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OperationLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OperationLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OperationLogUpdateOne) sqlSave(ctx context.Context) (_node *OperationLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(operationlog.Table, operationlog.Columns, sqlgraph.NewFieldSpec(operationlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OperationLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, operationlog.FieldID)
		for _, f := range fields {
			if !operationlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != operationlog.FieldID {
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
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(operationlog.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(operationlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(operationlog.FieldEntityType, field.TypeString, value)
	}
	if _u.mutation.EntityTypeCleared() {
		_spec.ClearField(operationlog.FieldEntityType, field.TypeString)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(operationlog.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(operationlog.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(operationlog.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(operationlog.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateID(); ok {
		_spec.SetField(operationlog.FieldCandidateID, field.TypeString, value)
	}
	if _u.mutation.CandidateIDCleared() {
		_spec.ClearField(operationlog.FieldCandidateID, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(operationlog.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(operationlog.FieldDetails, field.TypeJSON)
	}
	_node = &OperationLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{operationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
