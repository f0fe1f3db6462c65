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
	"github.com/hireflow/scout/ent/accountcounter"
	"github.com/hireflow/scout/ent/predicate"
)

// AccountCounterUpdate is the builder for updating AccountCounter entities.
type AccountCounterUpdate struct {
	config
	hooks    []Hook
	mutation *AccountCounterMutation
}

// Where appends a list predicates to the AccountCounterUpdate builder.
func (_u *AccountCounterUpdate) Where(ps ...predicate.AccountCounter) *AccountCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNewThreadsSent sets the "new_threads_sent" field.
func (_u *AccountCounterUpdate) SetNewThreadsSent(v int) *AccountCounterUpdate {
	_u.mutation.ResetNewThreadsSent()
	_u.mutation.SetNewThreadsSent(v)
	return _u
}

// SetNillableNewThreadsSent sets the "new_threads_sent" field if the given value is not nil.
func (_u *AccountCounterUpdate) SetNillableNewThreadsSent(v *int) *AccountCounterUpdate {
	if v != nil {
		_u.SetNewThreadsSent(*v)
	}
	return _u
}

// AddNewThreadsSent adds value to the "new_threads_sent" field.
func (_u *AccountCounterUpdate) AddNewThreadsSent(v int) *AccountCounterUpdate {
	_u.mutation.AddNewThreadsSent(v)
	return _u
}

// SetConnectsSent sets the "connects_sent" field.
func (_u *AccountCounterUpdate) SetConnectsSent(v int) *AccountCounterUpdate {
	_u.mutation.ResetConnectsSent()
	_u.mutation.SetConnectsSent(v)
	return _u
}

// SetNillableConnectsSent sets the "connects_sent" field if the given value is not nil.
func (_u *AccountCounterUpdate) SetNillableConnectsSent(v *int) *AccountCounterUpdate {
	if v != nil {
		_u.SetConnectsSent(*v)
	}
	return _u
}

// AddConnectsSent adds value to the "connects_sent" field.
func (_u *AccountCounterUpdate) AddConnectsSent(v int) *AccountCounterUpdate {
	_u.mutation.AddConnectsSent(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountCounterUpdate) SetUpdatedAt(v time.Time) *AccountCounterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AccountCounterMutation object of the builder.
func (_u *AccountCounterUpdate) Mutation() *AccountCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccountCounterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccountCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountCounterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := accountcounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AccountCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(accountcounter.Table, accountcounter.Columns, sqlgraph.NewFieldSpec(accountcounter.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NewThreadsSent(); ok {
		_spec.SetField(accountcounter.FieldNewThreadsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewThreadsSent(); ok {
		_spec.AddField(accountcounter.FieldNewThreadsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConnectsSent(); ok {
		_spec.SetField(accountcounter.FieldConnectsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConnectsSent(); ok {
		_spec.AddField(accountcounter.FieldConnectsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(accountcounter.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accountcounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccountCounterUpdateOne is the builder for updating a single AccountCounter entity.
type AccountCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountCounterMutation
}

// SetNewThreadsSent sets the "new_threads_sent" field.
func (_u *AccountCounterUpdateOne) SetNewThreadsSent(v int) *AccountCounterUpdateOne {
	_u.mutation.ResetNewThreadsSent()
	_u.mutation.SetNewThreadsSent(v)
	return _u
}

// SetNillableNewThreadsSent sets the "new_threads_sent" field if the given value is not nil.
func (_u *AccountCounterUpdateOne) SetNillableNewThreadsSent(v *int) *AccountCounterUpdateOne {
	if v != nil {
		_u.SetNewThreadsSent(*v)
	}
	return _u
}

// AddNewThreadsSent adds value to the "new_threads_sent" field.
func (_u *AccountCounterUpdateOne) AddNewThreadsSent(v int) *AccountCounterUpdateOne {
	_u.mutation.AddNewThreadsSent(v)
	return _u
}

// SetConnectsSent sets the "connects_sent" field.
func (_u *AccountCounterUpdateOne) SetConnectsSent(v int) *AccountCounterUpdateOne {
	_u.mutation.ResetConnectsSent()
	_u.mutation.SetConnectsSent(v)
	return _u
}

// SetNillableConnectsSent sets the "connects_sent" field if the given value is not nil.
func (_u *AccountCounterUpdateOne) SetNillableConnectsSent(v *int) *AccountCounterUpdateOne {
	if v != nil {
		_u.SetConnectsSent(*v)
	}
	return _u
}

// AddConnectsSent adds value to the "connects_sent" field.
func (_u *AccountCounterUpdateOne) AddConnectsSent(v int) *AccountCounterUpdateOne {
	_u.mutation.AddConnectsSent(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountCounterUpdateOne) SetUpdatedAt(v time.Time) *AccountCounterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AccountCounterMutation object of the builder.
func (_u *AccountCounterUpdateOne) Mutation() *AccountCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the AccountCounterUpdate builder.
func (_u *AccountCounterUpdateOne) Where(ps ...predicate.AccountCounter) *AccountCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccountCounterUpdateOne) Select(field string, fields ...string) *AccountCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AccountCounter entity.
func (_u *AccountCounterUpdateOne) Save(ctx context.Context) (*AccountCounter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountCounterUpdateOne) SaveX(ctx context.Context) *AccountCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccountCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountCounterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := accountcounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AccountCounterUpdateOne) sqlSave(ctx context.Context) (_node *AccountCounter, err error) {
	_spec := sqlgraph.NewUpdateSpec(accountcounter.Table, accountcounter.Columns, sqlgraph.NewFieldSpec(accountcounter.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AccountCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, accountcounter.FieldID)
		for _, f := range fields {
			if !accountcounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != accountcounter.FieldID {
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
	if value, ok := _u.mutation.NewThreadsSent(); ok {
		_spec.SetField(accountcounter.FieldNewThreadsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewThreadsSent(); ok {
		_spec.AddField(accountcounter.FieldNewThreadsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConnectsSent(); ok {
		_spec.SetField(accountcounter.FieldConnectsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConnectsSent(); ok {
		_spec.AddField(accountcounter.FieldConnectsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(accountcounter.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AccountCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accountcounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
