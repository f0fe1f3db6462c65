// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hireflow/scout/ent/senderaccount"
)

// SenderAccountCreate is the builder for creating a SenderAccount entity.
type SenderAccountCreate struct {
	config
	mutation *SenderAccountMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProviderAccountID sets the "provider_account_id" field.
func (_c *SenderAccountCreate) SetProviderAccountID(v string) *SenderAccountCreate {
	_c.mutation.SetProviderAccountID(v)
	return _c
}

// SetProviderUserID sets the "provider_user_id" field.
func (_c *SenderAccountCreate) SetProviderUserID(v string) *SenderAccountCreate {
	_c.mutation.SetProviderUserID(v)
	return _c
}

// SetNillableProviderUserID sets the "provider_user_id" field if the given value is not nil.
func (_c *SenderAccountCreate) SetNillableProviderUserID(v *string) *SenderAccountCreate {
	if v != nil {
		_c.SetProviderUserID(*v)
	}
	return _c
}

// SetLabel sets the "label" field.
func (_c *SenderAccountCreate) SetLabel(v string) *SenderAccountCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *SenderAccountCreate) SetNillableLabel(v *string) *SenderAccountCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SenderAccountCreate) SetStatus(v senderaccount.Status) *SenderAccountCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SenderAccountCreate) SetNillableStatus(v *senderaccount.Status) *SenderAccountCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConnectedAt sets the "connected_at" field.
func (_c *SenderAccountCreate) SetConnectedAt(v time.Time) *SenderAccountCreate {
	_c.mutation.SetConnectedAt(v)
	return _c
}

// SetNillableConnectedAt sets the "connected_at" field if the given value is not nil.
func (_c *SenderAccountCreate) SetNillableConnectedAt(v *time.Time) *SenderAccountCreate {
	if v != nil {
		_c.SetConnectedAt(*v)
	}
	return _c
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_c *SenderAccountCreate) SetLastSyncedAt(v time.Time) *SenderAccountCreate {
	_c.mutation.SetLastSyncedAt(v)
	return _c
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_c *SenderAccountCreate) SetNillableLastSyncedAt(v *time.Time) *SenderAccountCreate {
	if v != nil {
		_c.SetLastSyncedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SenderAccountCreate) SetCreatedAt(v time.Time) *SenderAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SenderAccountCreate) SetNillableCreatedAt(v *time.Time) *SenderAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SenderAccountCreate) SetUpdatedAt(v time.Time) *SenderAccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SenderAccountCreate) SetNillableUpdatedAt(v *time.Time) *SenderAccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SenderAccountCreate) SetID(v string) *SenderAccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SenderAccountMutation object of the builder.
func (_c *SenderAccountCreate) Mutation() *SenderAccountMutation {
	return _c.mutation
}

// Save creates the SenderAccount in the database.
func (_c *SenderAccountCreate) Save(ctx context.Context) (*SenderAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SenderAccountCreate) SaveX(ctx context.Context) *SenderAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SenderAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SenderAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SenderAccountCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := senderaccount.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := senderaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := senderaccount.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SenderAccountCreate) check() error {
	if _, ok := _c.mutation.ProviderAccountID(); !ok {
		return &ValidationError{Name: "provider_account_id", err: errors.New(`ent: missing required field "SenderAccount.provider_account_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SenderAccount.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := senderaccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SenderAccount.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SenderAccount.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SenderAccount.updated_at"`)}
	}
	return nil
}

func (_c *SenderAccountCreate) sqlSave(ctx context.Context) (*SenderAccount, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SenderAccount.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SenderAccountCreate) createSpec() (*SenderAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &SenderAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(senderaccount.Table, sqlgraph.NewFieldSpec(senderaccount.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProviderAccountID(); ok {
		_spec.SetField(senderaccount.FieldProviderAccountID, field.TypeString, value)
		_node.ProviderAccountID = value
	}
	if value, ok := _c.mutation.ProviderUserID(); ok {
		_spec.SetField(senderaccount.FieldProviderUserID, field.TypeString, value)
		_node.ProviderUserID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(senderaccount.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(senderaccount.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConnectedAt(); ok {
		_spec.SetField(senderaccount.FieldConnectedAt, field.TypeTime, value)
		_node.ConnectedAt = &value
	}
	if value, ok := _c.mutation.LastSyncedAt(); ok {
		_spec.SetField(senderaccount.FieldLastSyncedAt, field.TypeTime, value)
		_node.LastSyncedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(senderaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(senderaccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SenderAccount.Create().
//		SetProviderAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SenderAccountUpsert) {
//			SetProviderAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *SenderAccountCreate) OnConflict(opts ...sql.ConflictOption) *SenderAccountUpsertOne {
	_c.conflict = opts
	return &SenderAccountUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SenderAccount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SenderAccountCreate) OnConflictColumns(columns ...string) *SenderAccountUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SenderAccountUpsertOne{
		create: _c,
	}
}

type (
	// SenderAccountUpsertOne is the builder for "upsert"-ing
	//  one SenderAccount node.
	SenderAccountUpsertOne struct {
		create *SenderAccountCreate
	}

	// SenderAccountUpsert is the "OnConflict" setter.
	SenderAccountUpsert struct {
		*sql.UpdateSet
	}
)

// SetProviderAccountID sets the "provider_account_id" field.
func (u *SenderAccountUpsert) SetProviderAccountID(v string) *SenderAccountUpsert {
	u.Set(senderaccount.FieldProviderAccountID, v)
	return u
}

// UpdateProviderAccountID sets the "provider_account_id" field to the value that was provided on create.
func (u *SenderAccountUpsert) UpdateProviderAccountID() *SenderAccountUpsert {
	u.SetExcluded(senderaccount.FieldProviderAccountID)
	return u
}

// SetProviderUserID sets the "provider_user_id" field.
func (u *SenderAccountUpsert) SetProviderUserID(v string) *SenderAccountUpsert {
	u.Set(senderaccount.FieldProviderUserID, v)
	return u
}

// UpdateProviderUserID sets the "provider_user_id" field to the value that was provided on create.
func (u *SenderAccountUpsert) UpdateProviderUserID() *SenderAccountUpsert {
	u.SetExcluded(senderaccount.FieldProviderUserID)
	return u
}

// ClearProviderUserID clears the value of the "provider_user_id" field.
func (u *SenderAccountUpsert) ClearProviderUserID() *SenderAccountUpsert {
	u.SetNull(senderaccount.FieldProviderUserID)
	return u
}

// SetLabel sets the "label" field.
func (u *SenderAccountUpsert) SetLabel(v string) *SenderAccountUpsert {
	u.Set(senderaccount.FieldLabel, v)
	return u
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *SenderAccountUpsert) UpdateLabel() *SenderAccountUpsert {
	u.SetExcluded(senderaccount.FieldLabel)
	return u
}

// ClearLabel clears the value of the "label" field.
func (u *SenderAccountUpsert) ClearLabel() *SenderAccountUpsert {
	u.SetNull(senderaccount.FieldLabel)
	return u
}

// SetStatus sets the "status" field.
func (u *SenderAccountUpsert) SetStatus(v senderaccount.Status) *SenderAccountUpsert {
	u.Set(senderaccount.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SenderAccountUpsert) UpdateStatus() *SenderAccountUpsert {
	u.SetExcluded(senderaccount.FieldStatus)
	return u
}

// SetConnectedAt sets the "connected_at" field.
func (u *SenderAccountUpsert) SetConnectedAt(v time.Time) *SenderAccountUpsert {
	u.Set(senderaccount.FieldConnectedAt, v)
	return u
}

// UpdateConnectedAt sets the "connected_at" field to the value that was provided on create.
func (u *SenderAccountUpsert) UpdateConnectedAt() *SenderAccountUpsert {
	u.SetExcluded(senderaccount.FieldConnectedAt)
	return u
}

// ClearConnectedAt clears the value of the "connected_at" field.
func (u *SenderAccountUpsert) ClearConnectedAt() *SenderAccountUpsert {
	u.SetNull(senderaccount.FieldConnectedAt)
	return u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *SenderAccountUpsert) SetLastSyncedAt(v time.Time) *SenderAccountUpsert {
	u.Set(senderaccount.FieldLastSyncedAt, v)
	return u
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *SenderAccountUpsert) UpdateLastSyncedAt() *SenderAccountUpsert {
	u.SetExcluded(senderaccount.FieldLastSyncedAt)
	return u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (u *SenderAccountUpsert) ClearLastSyncedAt() *SenderAccountUpsert {
	u.SetNull(senderaccount.FieldLastSyncedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SenderAccountUpsert) SetUpdatedAt(v time.Time) *SenderAccountUpsert {
	u.Set(senderaccount.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SenderAccountUpsert) UpdateUpdatedAt() *SenderAccountUpsert {
	u.SetExcluded(senderaccount.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SenderAccount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(senderaccount.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SenderAccountUpsertOne) UpdateNewValues() *SenderAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(senderaccount.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(senderaccount.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SenderAccount.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SenderAccountUpsertOne) Ignore() *SenderAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SenderAccountUpsertOne) DoNothing() *SenderAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SenderAccountCreate.OnConflict
// documentation for more info.
func (u *SenderAccountUpsertOne) Update(set func(*SenderAccountUpsert)) *SenderAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SenderAccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetProviderAccountID sets the "provider_account_id" field.
func (u *SenderAccountUpsertOne) SetProviderAccountID(v string) *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetProviderAccountID(v)
	})
}

// UpdateProviderAccountID sets the "provider_account_id" field to the value that was provided on create.
func (u *SenderAccountUpsertOne) UpdateProviderAccountID() *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateProviderAccountID()
	})
}

// SetProviderUserID sets the "provider_user_id" field.
func (u *SenderAccountUpsertOne) SetProviderUserID(v string) *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetProviderUserID(v)
	})
}

// UpdateProviderUserID sets the "provider_user_id" field to the value that was provided on create.
func (u *SenderAccountUpsertOne) UpdateProviderUserID() *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateProviderUserID()
	})
}

// ClearProviderUserID clears the value of the "provider_user_id" field.
func (u *SenderAccountUpsertOne) ClearProviderUserID() *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.ClearProviderUserID()
	})
}

// SetLabel sets the "label" field.
func (u *SenderAccountUpsertOne) SetLabel(v string) *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *SenderAccountUpsertOne) UpdateLabel() *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateLabel()
	})
}

// ClearLabel clears the value of the "label" field.
func (u *SenderAccountUpsertOne) ClearLabel() *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.ClearLabel()
	})
}

// SetStatus sets the "status" field.
func (u *SenderAccountUpsertOne) SetStatus(v senderaccount.Status) *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SenderAccountUpsertOne) UpdateStatus() *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateStatus()
	})
}

// SetConnectedAt sets the "connected_at" field.
func (u *SenderAccountUpsertOne) SetConnectedAt(v time.Time) *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetConnectedAt(v)
	})
}

// UpdateConnectedAt sets the "connected_at" field to the value that was provided on create.
func (u *SenderAccountUpsertOne) UpdateConnectedAt() *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateConnectedAt()
	})
}

// ClearConnectedAt clears the value of the "connected_at" field.
func (u *SenderAccountUpsertOne) ClearConnectedAt() *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.ClearConnectedAt()
	})
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *SenderAccountUpsertOne) SetLastSyncedAt(v time.Time) *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetLastSyncedAt(v)
	})
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *SenderAccountUpsertOne) UpdateLastSyncedAt() *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateLastSyncedAt()
	})
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (u *SenderAccountUpsertOne) ClearLastSyncedAt() *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.ClearLastSyncedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SenderAccountUpsertOne) SetUpdatedAt(v time.Time) *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SenderAccountUpsertOne) UpdateUpdatedAt() *SenderAccountUpsertOne {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SenderAccountUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SenderAccountCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SenderAccountUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SenderAccountUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SenderAccountUpsertOne.ID is not supported by MySQL driver. Use SenderAccountUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SenderAccountUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SenderAccountCreateBulk is the builder for creating many SenderAccount entities in bulk.
type SenderAccountCreateBulk struct {
	config
	err      error
	builders []*SenderAccountCreate
	conflict []sql.ConflictOption
}

// Save creates the SenderAccount entities in the database.
func (_c *SenderAccountCreateBulk) Save(ctx context.Context) ([]*SenderAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SenderAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SenderAccountMutation)
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
func (_c *SenderAccountCreateBulk) SaveX(ctx context.Context) []*SenderAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SenderAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SenderAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SenderAccount.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SenderAccountUpsert) {
//			SetProviderAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *SenderAccountCreateBulk) OnConflict(opts ...sql.ConflictOption) *SenderAccountUpsertBulk {
	_c.conflict = opts
	return &SenderAccountUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SenderAccount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SenderAccountCreateBulk) OnConflictColumns(columns ...string) *SenderAccountUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SenderAccountUpsertBulk{
		create: _c,
	}
}

// SenderAccountUpsertBulk is the builder for "upsert"-ing
// a bulk of SenderAccount nodes.
type SenderAccountUpsertBulk struct {
	create *SenderAccountCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SenderAccount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(senderaccount.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SenderAccountUpsertBulk) UpdateNewValues() *SenderAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(senderaccount.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(senderaccount.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SenderAccount.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SenderAccountUpsertBulk) Ignore() *SenderAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SenderAccountUpsertBulk) DoNothing() *SenderAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SenderAccountCreateBulk.OnConflict
// documentation for more info.
func (u *SenderAccountUpsertBulk) Update(set func(*SenderAccountUpsert)) *SenderAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SenderAccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetProviderAccountID sets the "provider_account_id" field.
func (u *SenderAccountUpsertBulk) SetProviderAccountID(v string) *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetProviderAccountID(v)
	})
}

// UpdateProviderAccountID sets the "provider_account_id" field to the value that was provided on create.
func (u *SenderAccountUpsertBulk) UpdateProviderAccountID() *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateProviderAccountID()
	})
}

// SetProviderUserID sets the "provider_user_id" field.
func (u *SenderAccountUpsertBulk) SetProviderUserID(v string) *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetProviderUserID(v)
	})
}

// UpdateProviderUserID sets the "provider_user_id" field to the value that was provided on create.
func (u *SenderAccountUpsertBulk) UpdateProviderUserID() *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateProviderUserID()
	})
}

// ClearProviderUserID clears the value of the "provider_user_id" field.
func (u *SenderAccountUpsertBulk) ClearProviderUserID() *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.ClearProviderUserID()
	})
}

// SetLabel sets the "label" field.
func (u *SenderAccountUpsertBulk) SetLabel(v string) *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *SenderAccountUpsertBulk) UpdateLabel() *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateLabel()
	})
}

// ClearLabel clears the value of the "label" field.
func (u *SenderAccountUpsertBulk) ClearLabel() *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.ClearLabel()
	})
}

// SetStatus sets the "status" field.
func (u *SenderAccountUpsertBulk) SetStatus(v senderaccount.Status) *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SenderAccountUpsertBulk) UpdateStatus() *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateStatus()
	})
}

// SetConnectedAt sets the "connected_at" field.
func (u *SenderAccountUpsertBulk) SetConnectedAt(v time.Time) *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetConnectedAt(v)
	})
}

// UpdateConnectedAt sets the "connected_at" field to the value that was provided on create.
func (u *SenderAccountUpsertBulk) UpdateConnectedAt() *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateConnectedAt()
	})
}

// ClearConnectedAt clears the value of the "connected_at" field.
func (u *SenderAccountUpsertBulk) ClearConnectedAt() *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.ClearConnectedAt()
	})
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *SenderAccountUpsertBulk) SetLastSyncedAt(v time.Time) *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetLastSyncedAt(v)
	})
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *SenderAccountUpsertBulk) UpdateLastSyncedAt() *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateLastSyncedAt()
	})
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (u *SenderAccountUpsertBulk) ClearLastSyncedAt() *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.ClearLastSyncedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SenderAccountUpsertBulk) SetUpdatedAt(v time.Time) *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SenderAccountUpsertBulk) UpdateUpdatedAt() *SenderAccountUpsertBulk {
	return u.Update(func(s *SenderAccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SenderAccountUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SenderAccountCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SenderAccountCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SenderAccountUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
