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
	"github.com/hireflow/scout/ent/outboundaction"
	"github.com/hireflow/scout/ent/predicate"
)

// OutboundActionUpdate is the builder for updating OutboundAction entities.
type OutboundActionUpdate struct {
	config
	hooks    []Hook
	mutation *OutboundActionMutation
}

// Where appends a list predicates to the OutboundActionUpdate builder.
func (_u *OutboundActionUpdate) Where(ps ...predicate.OutboundAction) *OutboundActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *OutboundActionUpdate) SetKind(v outboundaction.Kind) *OutboundActionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OutboundActionUpdate) SetNillableKind(v *outboundaction.Kind) *OutboundActionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OutboundActionUpdate) SetStatus(v outboundaction.Status) *OutboundActionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OutboundActionUpdate) SetNillableStatus(v *outboundaction.Status) *OutboundActionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *OutboundActionUpdate) SetPayload(v map[string]interface{}) *OutboundActionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *OutboundActionUpdate) ClearPayload() *OutboundActionUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *OutboundActionUpdate) SetAccountID(v string) *OutboundActionUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *OutboundActionUpdate) SetNillableAccountID(v *string) *OutboundActionUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *OutboundActionUpdate) ClearAccountID() *OutboundActionUpdate {
	_u.mutation.ClearAccountID()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *OutboundActionUpdate) SetAttempts(v int) *OutboundActionUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *OutboundActionUpdate) SetNillableAttempts(v *int) *OutboundActionUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *OutboundActionUpdate) AddAttempts(v int) *OutboundActionUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *OutboundActionUpdate) SetLastError(v string) *OutboundActionUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *OutboundActionUpdate) SetNillableLastError(v *string) *OutboundActionUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *OutboundActionUpdate) ClearLastError() *OutboundActionUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OutboundActionUpdate) SetUpdatedAt(v time.Time) *OutboundActionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OutboundActionMutation object of the builder.
func (_u *OutboundActionUpdate) Mutation() *OutboundActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutboundActionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboundActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutboundActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboundActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OutboundActionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := outboundaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboundActionUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := outboundaction.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "OutboundAction.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := outboundaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutboundAction.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutboundAction.job"`)
	}
	return nil
}

func (_u *OutboundActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboundaction.Table, outboundaction.Columns, sqlgraph.NewFieldSpec(outboundaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(outboundaction.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(outboundaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(outboundaction.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(outboundaction.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(outboundaction.FieldAccountID, field.TypeString, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(outboundaction.FieldAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(outboundaction.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(outboundaction.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(outboundaction.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(outboundaction.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(outboundaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboundaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutboundActionUpdateOne is the builder for updating a single OutboundAction entity.
type OutboundActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutboundActionMutation
}

// SetKind sets the "kind" field.
func (_u *OutboundActionUpdateOne) SetKind(v outboundaction.Kind) *OutboundActionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OutboundActionUpdateOne) SetNillableKind(v *outboundaction.Kind) *OutboundActionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OutboundActionUpdateOne) SetStatus(v outboundaction.Status) *OutboundActionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OutboundActionUpdateOne) SetNillableStatus(v *outboundaction.Status) *OutboundActionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *OutboundActionUpdateOne) SetPayload(v map[string]interface{}) *OutboundActionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *OutboundActionUpdateOne) ClearPayload() *OutboundActionUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *OutboundActionUpdateOne) SetAccountID(v string) *OutboundActionUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *OutboundActionUpdateOne) SetNillableAccountID(v *string) *OutboundActionUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *OutboundActionUpdateOne) ClearAccountID() *OutboundActionUpdateOne {
	_u.mutation.ClearAccountID()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *OutboundActionUpdateOne) SetAttempts(v int) *OutboundActionUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *OutboundActionUpdateOne) SetNillableAttempts(v *int) *OutboundActionUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *OutboundActionUpdateOne) AddAttempts(v int) *OutboundActionUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *OutboundActionUpdateOne) SetLastError(v string) *OutboundActionUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *OutboundActionUpdateOne) SetNillableLastError(v *string) *OutboundActionUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *OutboundActionUpdateOne) ClearLastError() *OutboundActionUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OutboundActionUpdateOne) SetUpdatedAt(v time.Time) *OutboundActionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OutboundActionMutation object of the builder.
func (_u *OutboundActionUpdateOne) Mutation() *OutboundActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutboundActionUpdate builder.
func (_u *OutboundActionUpdateOne) Where(ps ...predicate.OutboundAction) *OutboundActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutboundActionUpdateOne) Select(field string, fields ...string) *OutboundActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutboundAction entity.
func (_u *OutboundActionUpdateOne) Save(ctx context.Context) (*OutboundAction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboundActionUpdateOne) SaveX(ctx context.Context) *OutboundAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutboundActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboundActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OutboundActionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := outboundaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboundActionUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := outboundaction.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "OutboundAction.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := outboundaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutboundAction.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutboundAction.job"`)
	}
	return nil
}

func (_u *OutboundActionUpdateOne) sqlSave(ctx context.Context) (_node *OutboundAction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboundaction.Table, outboundaction.Columns, sqlgraph.NewFieldSpec(outboundaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutboundAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outboundaction.FieldID)
		for _, f := range fields {
			if !outboundaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outboundaction.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(outboundaction.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(outboundaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(outboundaction.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(outboundaction.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(outboundaction.FieldAccountID, field.TypeString, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(outboundaction.FieldAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(outboundaction.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(outboundaction.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(outboundaction.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(outboundaction.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(outboundaction.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &OutboundAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboundaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
