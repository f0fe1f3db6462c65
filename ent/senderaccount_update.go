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
	"github.com/hireflow/scout/ent/predicate"
	"github.com/hireflow/scout/ent/senderaccount"
)

// SenderAccountUpdate is the builder for updating SenderAccount entities.
type SenderAccountUpdate struct {
	config
	hooks    []Hook
	mutation *SenderAccountMutation
}

// Where appends a list predicates to the SenderAccountUpdate builder.
func (_u *SenderAccountUpdate) Where(ps ...predicate.SenderAccount) *SenderAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProviderAccountID sets the "provider_account_id" field.
func (_u *SenderAccountUpdate) SetProviderAccountID(v string) *SenderAccountUpdate {
	_u.mutation.SetProviderAccountID(v)
	return _u
}

// SetNillableProviderAccountID sets the "provider_account_id" field if the given value is not nil.
func (_u *SenderAccountUpdate) SetNillableProviderAccountID(v *string) *SenderAccountUpdate {
	if v != nil {
		_u.SetProviderAccountID(*v)
	}
	return _u
}

// SetProviderUserID sets the "provider_user_id" field.
func (_u *SenderAccountUpdate) SetProviderUserID(v string) *SenderAccountUpdate {
	_u.mutation.SetProviderUserID(v)
	return _u
}

// SetNillableProviderUserID sets the "provider_user_id" field if the given value is not nil.
func (_u *SenderAccountUpdate) SetNillableProviderUserID(v *string) *SenderAccountUpdate {
	if v != nil {
		_u.SetProviderUserID(*v)
	}
	return _u
}

// ClearProviderUserID clears the value of the "provider_user_id" field.
func (_u *SenderAccountUpdate) ClearProviderUserID() *SenderAccountUpdate {
	_u.mutation.ClearProviderUserID()
	return _u
}

// SetLabel sets the "label" field.
func (_u *SenderAccountUpdate) SetLabel(v string) *SenderAccountUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *SenderAccountUpdate) SetNillableLabel(v *string) *SenderAccountUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *SenderAccountUpdate) ClearLabel() *SenderAccountUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SenderAccountUpdate) SetStatus(v senderaccount.Status) *SenderAccountUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SenderAccountUpdate) SetNillableStatus(v *senderaccount.Status) *SenderAccountUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConnectedAt sets the "connected_at" field.
func (_u *SenderAccountUpdate) SetConnectedAt(v time.Time) *SenderAccountUpdate {
	_u.mutation.SetConnectedAt(v)
	return _u
}

// SetNillableConnectedAt sets the "connected_at" field if the given value is not nil.
func (_u *SenderAccountUpdate) SetNillableConnectedAt(v *time.Time) *SenderAccountUpdate {
	if v != nil {
		_u.SetConnectedAt(*v)
	}
	return _u
}

// ClearConnectedAt clears the value of the "connected_at" field.
func (_u *SenderAccountUpdate) ClearConnectedAt() *SenderAccountUpdate {
	_u.mutation.ClearConnectedAt()
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *SenderAccountUpdate) SetLastSyncedAt(v time.Time) *SenderAccountUpdate {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *SenderAccountUpdate) SetNillableLastSyncedAt(v *time.Time) *SenderAccountUpdate {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (_u *SenderAccountUpdate) ClearLastSyncedAt() *SenderAccountUpdate {
	_u.mutation.ClearLastSyncedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SenderAccountUpdate) SetUpdatedAt(v time.Time) *SenderAccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SenderAccountMutation object of the builder.
func (_u *SenderAccountUpdate) Mutation() *SenderAccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SenderAccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SenderAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SenderAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SenderAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SenderAccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := senderaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SenderAccountUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := senderaccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SenderAccount.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SenderAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(senderaccount.Table, senderaccount.Columns, sqlgraph.NewFieldSpec(senderaccount.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProviderAccountID(); ok {
		_spec.SetField(senderaccount.FieldProviderAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderUserID(); ok {
		_spec.SetField(senderaccount.FieldProviderUserID, field.TypeString, value)
	}
	if _u.mutation.ProviderUserIDCleared() {
		_spec.ClearField(senderaccount.FieldProviderUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(senderaccount.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(senderaccount.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(senderaccount.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConnectedAt(); ok {
		_spec.SetField(senderaccount.FieldConnectedAt, field.TypeTime, value)
	}
	if _u.mutation.ConnectedAtCleared() {
		_spec.ClearField(senderaccount.FieldConnectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(senderaccount.FieldLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncedAtCleared() {
		_spec.ClearField(senderaccount.FieldLastSyncedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(senderaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{senderaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SenderAccountUpdateOne is the builder for updating a single SenderAccount entity.
type SenderAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SenderAccountMutation
}

// SetProviderAccountID sets the "provider_account_id" field.
func (_u *SenderAccountUpdateOne) SetProviderAccountID(v string) *SenderAccountUpdateOne {
	_u.mutation.SetProviderAccountID(v)
	return _u
}

// SetNillableProviderAccountID sets the "provider_account_id" field if the given value is not nil.
func (_u *SenderAccountUpdateOne) SetNillableProviderAccountID(v *string) *SenderAccountUpdateOne {
	if v != nil {
		_u.SetProviderAccountID(*v)
	}
	return _u
}

// SetProviderUserID sets the "provider_user_id" field.
func (_u *SenderAccountUpdateOne) SetProviderUserID(v string) *SenderAccountUpdateOne {
	_u.mutation.SetProviderUserID(v)
	return _u
}

// SetNillableProviderUserID sets the "provider_user_id" field if the given value is not nil.
func (_u *SenderAccountUpdateOne) SetNillableProviderUserID(v *string) *SenderAccountUpdateOne {
	if v != nil {
		_u.SetProviderUserID(*v)
	}
	return _u
}

// ClearProviderUserID clears the value of the "provider_user_id" field.
func (_u *SenderAccountUpdateOne) ClearProviderUserID() *SenderAccountUpdateOne {
	_u.mutation.ClearProviderUserID()
	return _u
}

// SetLabel sets the "label" field.
func (_u *SenderAccountUpdateOne) SetLabel(v string) *SenderAccountUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *SenderAccountUpdateOne) SetNillableLabel(v *string) *SenderAccountUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *SenderAccountUpdateOne) ClearLabel() *SenderAccountUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SenderAccountUpdateOne) SetStatus(v senderaccount.Status) *SenderAccountUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SenderAccountUpdateOne) SetNillableStatus(v *senderaccount.Status) *SenderAccountUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConnectedAt sets the "connected_at" field.
func (_u *SenderAccountUpdateOne) SetConnectedAt(v time.Time) *SenderAccountUpdateOne {
	_u.mutation.SetConnectedAt(v)
	return _u
}

// SetNillableConnectedAt sets the "connected_at" field if the given value is not nil.
func (_u *SenderAccountUpdateOne) SetNillableConnectedAt(v *time.Time) *SenderAccountUpdateOne {
	if v != nil {
		_u.SetConnectedAt(*v)
	}
	return _u
}

// ClearConnectedAt clears the value of the "connected_at" field.
func (_u *SenderAccountUpdateOne) ClearConnectedAt() *SenderAccountUpdateOne {
	_u.mutation.ClearConnectedAt()
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *SenderAccountUpdateOne) SetLastSyncedAt(v time.Time) *SenderAccountUpdateOne {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *SenderAccountUpdateOne) SetNillableLastSyncedAt(v *time.Time) *SenderAccountUpdateOne {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (_u *SenderAccountUpdateOne) ClearLastSyncedAt() *SenderAccountUpdateOne {
	_u.mutation.ClearLastSyncedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SenderAccountUpdateOne) SetUpdatedAt(v time.Time) *SenderAccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SenderAccountMutation object of the builder.
func (_u *SenderAccountUpdateOne) Mutation() *SenderAccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the SenderAccountUpdate builder.
func (_u *SenderAccountUpdateOne) Where(ps ...predicate.SenderAccount) *SenderAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SenderAccountUpdateOne) Select(field string, fields ...string) *SenderAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SenderAccount entity.
func (_u *SenderAccountUpdateOne) Save(ctx context.Context) (*SenderAccount, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SenderAccountUpdateOne) SaveX(ctx context.Context) *SenderAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SenderAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SenderAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SenderAccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := senderaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SenderAccountUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := senderaccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SenderAccount.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SenderAccountUpdateOne) sqlSave(ctx context.Context) (_node *SenderAccount, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(senderaccount.Table, senderaccount.Columns, sqlgraph.NewFieldSpec(senderaccount.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SenderAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, senderaccount.FieldID)
		for _, f := range fields {
			if !senderaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != senderaccount.FieldID {
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
	if value, ok := _u.mutation.ProviderAccountID(); ok {
		_spec.SetField(senderaccount.FieldProviderAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderUserID(); ok {
		_spec.SetField(senderaccount.FieldProviderUserID, field.TypeString, value)
	}
	if _u.mutation.ProviderUserIDCleared() {
		_spec.ClearField(senderaccount.FieldProviderUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(senderaccount.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(senderaccount.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(senderaccount.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConnectedAt(); ok {
		_spec.SetField(senderaccount.FieldConnectedAt, field.TypeTime, value)
	}
	if _u.mutation.ConnectedAtCleared() {
		_spec.ClearField(senderaccount.FieldConnectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(senderaccount.FieldLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncedAtCleared() {
		_spec.ClearField(senderaccount.FieldLastSyncedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(senderaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SenderAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{senderaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
