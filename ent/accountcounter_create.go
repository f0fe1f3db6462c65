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
)

// AccountCounterCreate is the builder for creating a AccountCounter entity.
type AccountCounterCreate struct {
	config
	mutation *AccountCounterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (_c *AccountCounterCreate) SetAccountID(v string) *AccountCounterCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetPeriod sets the "period" field.
func (_c *AccountCounterCreate) SetPeriod(v accountcounter.Period) *AccountCounterCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetPeriodStart sets the "period_start" field.
func (_c *AccountCounterCreate) SetPeriodStart(v time.Time) *AccountCounterCreate {
	_c.mutation.SetPeriodStart(v)
	return _c
}

// SetNewThreadsSent sets the "new_threads_sent" field.
func (_c *AccountCounterCreate) SetNewThreadsSent(v int) *AccountCounterCreate {
	_c.mutation.SetNewThreadsSent(v)
	return _c
}

// SetNillableNewThreadsSent sets the "new_threads_sent" field if the given value is not nil.
func (_c *AccountCounterCreate) SetNillableNewThreadsSent(v *int) *AccountCounterCreate {
	if v != nil {
		_c.SetNewThreadsSent(*v)
	}
	return _c
}

// SetConnectsSent sets the "connects_sent" field.
func (_c *AccountCounterCreate) SetConnectsSent(v int) *AccountCounterCreate {
	_c.mutation.SetConnectsSent(v)
	return _c
}

// SetNillableConnectsSent sets the "connects_sent" field if the given value is not nil.
func (_c *AccountCounterCreate) SetNillableConnectsSent(v *int) *AccountCounterCreate {
	if v != nil {
		_c.SetConnectsSent(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AccountCounterCreate) SetUpdatedAt(v time.Time) *AccountCounterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AccountCounterCreate) SetNillableUpdatedAt(v *time.Time) *AccountCounterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the AccountCounterMutation object of the builder.
func (_c *AccountCounterCreate) Mutation() *AccountCounterMutation {
	return _c.mutation
}

// Save creates the AccountCounter in the database.
func (_c *AccountCounterCreate) Save(ctx context.Context) (*AccountCounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AccountCounterCreate) SaveX(ctx context.Context) *AccountCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AccountCounterCreate) defaults() {
	if _, ok := _c.mutation.NewThreadsSent(); !ok {
		v := accountcounter.DefaultNewThreadsSent
		_c.mutation.SetNewThreadsSent(v)
	}
	if _, ok := _c.mutation.ConnectsSent(); !ok {
		v := accountcounter.DefaultConnectsSent
		_c.mutation.SetConnectsSent(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := accountcounter.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AccountCounterCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "AccountCounter.account_id"`)}
	}
	if _, ok := _c.mutation.Period(); !ok {
		return &ValidationError{Name: "period", err: errors.New(`ent: missing required field "AccountCounter.period"`)}
	}
	if v, ok := _c.mutation.Period(); ok {
		if err := accountcounter.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "AccountCounter.period": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PeriodStart(); !ok {
		return &ValidationError{Name: "period_start", err: errors.New(`ent: missing required field "AccountCounter.period_start"`)}
	}
	if _, ok := _c.mutation.NewThreadsSent(); !ok {
		return &ValidationError{Name: "new_threads_sent", err: errors.New(`ent: missing required field "AccountCounter.new_threads_sent"`)}
	}
	if _, ok := _c.mutation.ConnectsSent(); !ok {
		return &ValidationError{Name: "connects_sent", err: errors.New(`ent: missing required field "AccountCounter.connects_sent"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AccountCounter.updated_at"`)}
	}
	return nil
}

func (_c *AccountCounterCreate) sqlSave(ctx context.Context) (*AccountCounter, error) {
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

func (_c *AccountCounterCreate) createSpec() (*AccountCounter, *sqlgraph.CreateSpec) {
	var (
		_node = &AccountCounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(accountcounter.Table, sqlgraph.NewFieldSpec(accountcounter.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(accountcounter.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(accountcounter.FieldPeriod, field.TypeEnum, value)
		_node.Period = value
	}
	if value, ok := _c.mutation.PeriodStart(); ok {
		_spec.SetField(accountcounter.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = value
	}
	if value, ok := _c.mutation.NewThreadsSent(); ok {
		_spec.SetField(accountcounter.FieldNewThreadsSent, field.TypeInt, value)
		_node.NewThreadsSent = value
	}
	if value, ok := _c.mutation.ConnectsSent(); ok {
		_spec.SetField(accountcounter.FieldConnectsSent, field.TypeInt, value)
		_node.ConnectsSent = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(accountcounter.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AccountCounter.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AccountCounterUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *AccountCounterCreate) OnConflict(opts ...sql.ConflictOption) *AccountCounterUpsertOne {
	_c.conflict = opts
	return &AccountCounterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AccountCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AccountCounterCreate) OnConflictColumns(columns ...string) *AccountCounterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AccountCounterUpsertOne{
		create: _c,
	}
}

type (
	// AccountCounterUpsertOne is the builder for "upsert"-ing
	//  one AccountCounter node.
	AccountCounterUpsertOne struct {
		create *AccountCounterCreate
	}

	// AccountCounterUpsert is the "OnConflict" setter.
	AccountCounterUpsert struct {
		*sql.UpdateSet
	}
)

// SetNewThreadsSent sets the "new_threads_sent" field.
func (u *AccountCounterUpsert) SetNewThreadsSent(v int) *AccountCounterUpsert {
	u.Set(accountcounter.FieldNewThreadsSent, v)
	return u
}

// UpdateNewThreadsSent sets the "new_threads_sent" field to the value that was provided on create.
func (u *AccountCounterUpsert) UpdateNewThreadsSent() *AccountCounterUpsert {
	u.SetExcluded(accountcounter.FieldNewThreadsSent)
	return u
}

// AddNewThreadsSent adds v to the "new_threads_sent" field.
func (u *AccountCounterUpsert) AddNewThreadsSent(v int) *AccountCounterUpsert {
	u.Add(accountcounter.FieldNewThreadsSent, v)
	return u
}

// SetConnectsSent sets the "connects_sent" field.
func (u *AccountCounterUpsert) SetConnectsSent(v int) *AccountCounterUpsert {
	u.Set(accountcounter.FieldConnectsSent, v)
	return u
}

// UpdateConnectsSent sets the "connects_sent" field to the value that was provided on create.
func (u *AccountCounterUpsert) UpdateConnectsSent() *AccountCounterUpsert {
	u.SetExcluded(accountcounter.FieldConnectsSent)
	return u
}

// AddConnectsSent adds v to the "connects_sent" field.
func (u *AccountCounterUpsert) AddConnectsSent(v int) *AccountCounterUpsert {
	u.Add(accountcounter.FieldConnectsSent, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountCounterUpsert) SetUpdatedAt(v time.Time) *AccountCounterUpsert {
	u.Set(accountcounter.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountCounterUpsert) UpdateUpdatedAt() *AccountCounterUpsert {
	u.SetExcluded(accountcounter.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AccountCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AccountCounterUpsertOne) UpdateNewValues() *AccountCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.AccountID(); exists {
			s.SetIgnore(accountcounter.FieldAccountID)
		}
		if _, exists := u.create.mutation.Period(); exists {
			s.SetIgnore(accountcounter.FieldPeriod)
		}
		if _, exists := u.create.mutation.PeriodStart(); exists {
			s.SetIgnore(accountcounter.FieldPeriodStart)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AccountCounter.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AccountCounterUpsertOne) Ignore() *AccountCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AccountCounterUpsertOne) DoNothing() *AccountCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AccountCounterCreate.OnConflict
// documentation for more info.
func (u *AccountCounterUpsertOne) Update(set func(*AccountCounterUpsert)) *AccountCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AccountCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetNewThreadsSent sets the "new_threads_sent" field.
func (u *AccountCounterUpsertOne) SetNewThreadsSent(v int) *AccountCounterUpsertOne {
	return u.Update(func(s *AccountCounterUpsert) {
		s.SetNewThreadsSent(v)
	})
}

// AddNewThreadsSent adds v to the "new_threads_sent" field.
func (u *AccountCounterUpsertOne) AddNewThreadsSent(v int) *AccountCounterUpsertOne {
	return u.Update(func(s *AccountCounterUpsert) {
		s.AddNewThreadsSent(v)
	})
}

// UpdateNewThreadsSent sets the "new_threads_sent" field to the value that was provided on create.
func (u *AccountCounterUpsertOne) UpdateNewThreadsSent() *AccountCounterUpsertOne {
	return u.Update(func(s *AccountCounterUpsert) {
		s.UpdateNewThreadsSent()
	})
}

// SetConnectsSent sets the "connects_sent" field.
func (u *AccountCounterUpsertOne) SetConnectsSent(v int) *AccountCounterUpsertOne {
	return u.Update(func(s *AccountCounterUpsert) {
		s.SetConnectsSent(v)
	})
}

// AddConnectsSent adds v to the "connects_sent" field.
func (u *AccountCounterUpsertOne) AddConnectsSent(v int) *AccountCounterUpsertOne {
	return u.Update(func(s *AccountCounterUpsert) {
		s.AddConnectsSent(v)
	})
}

// UpdateConnectsSent sets the "connects_sent" field to the value that was provided on create.
func (u *AccountCounterUpsertOne) UpdateConnectsSent() *AccountCounterUpsertOne {
	return u.Update(func(s *AccountCounterUpsert) {
		s.UpdateConnectsSent()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountCounterUpsertOne) SetUpdatedAt(v time.Time) *AccountCounterUpsertOne {
	return u.Update(func(s *AccountCounterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountCounterUpsertOne) UpdateUpdatedAt() *AccountCounterUpsertOne {
	return u.Update(func(s *AccountCounterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AccountCounterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AccountCounterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AccountCounterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AccountCounterUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AccountCounterUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AccountCounterCreateBulk is the builder for creating many AccountCounter entities in bulk.
type AccountCounterCreateBulk struct {
	config
	err      error
	builders []*AccountCounterCreate
	conflict []sql.ConflictOption
}

// Save creates the AccountCounter entities in the database.
func (_c *AccountCounterCreateBulk) Save(ctx context.Context) ([]*AccountCounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AccountCounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccountCounterMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *AccountCounterCreateBulk) SaveX(ctx context.Context) []*AccountCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AccountCounter.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AccountCounterUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *AccountCounterCreateBulk) OnConflict(opts ...sql.ConflictOption) *AccountCounterUpsertBulk {
	_c.conflict = opts
	return &AccountCounterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AccountCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AccountCounterCreateBulk) OnConflictColumns(columns ...string) *AccountCounterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AccountCounterUpsertBulk{
		create: _c,
	}
}

// AccountCounterUpsertBulk is the builder for "upsert"-ing
// a bulk of AccountCounter nodes.
type AccountCounterUpsertBulk struct {
	create *AccountCounterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AccountCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AccountCounterUpsertBulk) UpdateNewValues() *AccountCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.AccountID(); exists {
				s.SetIgnore(accountcounter.FieldAccountID)
			}
			if _, exists := b.mutation.Period(); exists {
				s.SetIgnore(accountcounter.FieldPeriod)
			}
			if _, exists := b.mutation.PeriodStart(); exists {
				s.SetIgnore(accountcounter.FieldPeriodStart)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AccountCounter.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AccountCounterUpsertBulk) Ignore() *AccountCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AccountCounterUpsertBulk) DoNothing() *AccountCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AccountCounterCreateBulk.OnConflict
// documentation for more info.
func (u *AccountCounterUpsertBulk) Update(set func(*AccountCounterUpsert)) *AccountCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AccountCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetNewThreadsSent sets the "new_threads_sent" field.
func (u *AccountCounterUpsertBulk) SetNewThreadsSent(v int) *AccountCounterUpsertBulk {
	return u.Update(func(s *AccountCounterUpsert) {
		s.SetNewThreadsSent(v)
	})
}

// AddNewThreadsSent adds v to the "new_threads_sent" field.
func (u *AccountCounterUpsertBulk) AddNewThreadsSent(v int) *AccountCounterUpsertBulk {
	return u.Update(func(s *AccountCounterUpsert) {
		s.AddNewThreadsSent(v)
	})
}

// UpdateNewThreadsSent sets the "new_threads_sent" field to the value that was provided on create.
func (u *AccountCounterUpsertBulk) UpdateNewThreadsSent() *AccountCounterUpsertBulk {
	return u.Update(func(s *AccountCounterUpsert) {
		s.UpdateNewThreadsSent()
	})
}

// SetConnectsSent sets the "connects_sent" field.
func (u *AccountCounterUpsertBulk) SetConnectsSent(v int) *AccountCounterUpsertBulk {
	return u.Update(func(s *AccountCounterUpsert) {
		s.SetConnectsSent(v)
	})
}

// AddConnectsSent adds v to the "connects_sent" field.
func (u *AccountCounterUpsertBulk) AddConnectsSent(v int) *AccountCounterUpsertBulk {
	return u.Update(func(s *AccountCounterUpsert) {
		s.AddConnectsSent(v)
	})
}

// UpdateConnectsSent sets the "connects_sent" field to the value that was provided on create.
func (u *AccountCounterUpsertBulk) UpdateConnectsSent() *AccountCounterUpsertBulk {
	return u.Update(func(s *AccountCounterUpsert) {
		s.UpdateConnectsSent()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountCounterUpsertBulk) SetUpdatedAt(v time.Time) *AccountCounterUpsertBulk {
	return u.Update(func(s *AccountCounterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountCounterUpsertBulk) UpdateUpdatedAt() *AccountCounterUpsertBulk {
	return u.Update(func(s *AccountCounterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AccountCounterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AccountCounterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AccountCounterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AccountCounterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
