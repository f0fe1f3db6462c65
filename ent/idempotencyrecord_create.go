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
	"github.com/hireflow/scout/ent/idempotencyrecord"
)

// IdempotencyRecordCreate is the builder for creating a IdempotencyRecord entity.
type IdempotencyRecordCreate struct {
	config
	mutation *IdempotencyRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRoute sets the "route" field.
func (_c *IdempotencyRecordCreate) SetRoute(v string) *IdempotencyRecordCreate {
	_c.mutation.SetRoute(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *IdempotencyRecordCreate) SetKey(v string) *IdempotencyRecordCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetPayloadHash sets the "payload_hash" field.
func (_c *IdempotencyRecordCreate) SetPayloadHash(v string) *IdempotencyRecordCreate {
	_c.mutation.SetPayloadHash(v)
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *IdempotencyRecordCreate) SetStatusCode(v int) *IdempotencyRecordCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *IdempotencyRecordCreate) SetResponse(v string) *IdempotencyRecordCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IdempotencyRecordCreate) SetCreatedAt(v time.Time) *IdempotencyRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IdempotencyRecordCreate) SetNillableCreatedAt(v *time.Time) *IdempotencyRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the IdempotencyRecordMutation object of the builder.
func (_c *IdempotencyRecordCreate) Mutation() *IdempotencyRecordMutation {
	return _c.mutation
}

// Save creates the IdempotencyRecord in the database.
func (_c *IdempotencyRecordCreate) Save(ctx context.Context) (*IdempotencyRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IdempotencyRecordCreate) SaveX(ctx context.Context) *IdempotencyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdempotencyRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdempotencyRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IdempotencyRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := idempotencyrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IdempotencyRecordCreate) check() error {
	if _, ok := _c.mutation.Route(); !ok {
		return &ValidationError{Name: "route", err: errors.New(`ent: missing required field "IdempotencyRecord.route"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "IdempotencyRecord.key"`)}
	}
	if _, ok := _c.mutation.PayloadHash(); !ok {
		return &ValidationError{Name: "payload_hash", err: errors.New(`ent: missing required field "IdempotencyRecord.payload_hash"`)}
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		return &ValidationError{Name: "status_code", err: errors.New(`ent: missing required field "IdempotencyRecord.status_code"`)}
	}
	if _, ok := _c.mutation.Response(); !ok {
		return &ValidationError{Name: "response", err: errors.New(`ent: missing required field "IdempotencyRecord.response"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IdempotencyRecord.created_at"`)}
	}
	return nil
}

func (_c *IdempotencyRecordCreate) sqlSave(ctx context.Context) (*IdempotencyRecord, error) {
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

func (_c *IdempotencyRecordCreate) createSpec() (*IdempotencyRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &IdempotencyRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(idempotencyrecord.Table, sqlgraph.NewFieldSpec(idempotencyrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Route(); ok {
		_spec.SetField(idempotencyrecord.FieldRoute, field.TypeString, value)
		_node.Route = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(idempotencyrecord.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.PayloadHash(); ok {
		_spec.SetField(idempotencyrecord.FieldPayloadHash, field.TypeString, value)
		_node.PayloadHash = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(idempotencyrecord.FieldStatusCode, field.TypeInt, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(idempotencyrecord.FieldResponse, field.TypeString, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(idempotencyrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IdempotencyRecord.Create().
//		SetRoute(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IdempotencyRecordUpsert) {
//			SetRoute(v+v).
//		}).
//		Exec(ctx)
func (_c *IdempotencyRecordCreate) OnConflict(opts ...sql.ConflictOption) *IdempotencyRecordUpsertOne {
	_c.conflict = opts
	return &IdempotencyRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IdempotencyRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IdempotencyRecordCreate) OnConflictColumns(columns ...string) *IdempotencyRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IdempotencyRecordUpsertOne{
		create: _c,
	}
}

type (
	// IdempotencyRecordUpsertOne is the builder for "upsert"-ing
	//  one IdempotencyRecord node.
	IdempotencyRecordUpsertOne struct {
		create *IdempotencyRecordCreate
	}

	// IdempotencyRecordUpsert is the "OnConflict" setter.
	IdempotencyRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatusCode sets the "status_code" field.
func (u *IdempotencyRecordUpsert) SetStatusCode(v int) *IdempotencyRecordUpsert {
	u.Set(idempotencyrecord.FieldStatusCode, v)
	return u
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *IdempotencyRecordUpsert) UpdateStatusCode() *IdempotencyRecordUpsert {
	u.SetExcluded(idempotencyrecord.FieldStatusCode)
	return u
}

// AddStatusCode adds v to the "status_code" field.
func (u *IdempotencyRecordUpsert) AddStatusCode(v int) *IdempotencyRecordUpsert {
	u.Add(idempotencyrecord.FieldStatusCode, v)
	return u
}

// SetResponse sets the "response" field.
func (u *IdempotencyRecordUpsert) SetResponse(v string) *IdempotencyRecordUpsert {
	u.Set(idempotencyrecord.FieldResponse, v)
	return u
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *IdempotencyRecordUpsert) UpdateResponse() *IdempotencyRecordUpsert {
	u.SetExcluded(idempotencyrecord.FieldResponse)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.IdempotencyRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *IdempotencyRecordUpsertOne) UpdateNewValues() *IdempotencyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Route(); exists {
			s.SetIgnore(idempotencyrecord.FieldRoute)
		}
		if _, exists := u.create.mutation.Key(); exists {
			s.SetIgnore(idempotencyrecord.FieldKey)
		}
		if _, exists := u.create.mutation.PayloadHash(); exists {
			s.SetIgnore(idempotencyrecord.FieldPayloadHash)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(idempotencyrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IdempotencyRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IdempotencyRecordUpsertOne) Ignore() *IdempotencyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IdempotencyRecordUpsertOne) DoNothing() *IdempotencyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IdempotencyRecordCreate.OnConflict
// documentation for more info.
func (u *IdempotencyRecordUpsertOne) Update(set func(*IdempotencyRecordUpsert)) *IdempotencyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IdempotencyRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatusCode sets the "status_code" field.
func (u *IdempotencyRecordUpsertOne) SetStatusCode(v int) *IdempotencyRecordUpsertOne {
	return u.Update(func(s *IdempotencyRecordUpsert) {
		s.SetStatusCode(v)
	})
}

// AddStatusCode adds v to the "status_code" field.
func (u *IdempotencyRecordUpsertOne) AddStatusCode(v int) *IdempotencyRecordUpsertOne {
	return u.Update(func(s *IdempotencyRecordUpsert) {
		s.AddStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *IdempotencyRecordUpsertOne) UpdateStatusCode() *IdempotencyRecordUpsertOne {
	return u.Update(func(s *IdempotencyRecordUpsert) {
		s.UpdateStatusCode()
	})
}

// SetResponse sets the "response" field.
func (u *IdempotencyRecordUpsertOne) SetResponse(v string) *IdempotencyRecordUpsertOne {
	return u.Update(func(s *IdempotencyRecordUpsert) {
		s.SetResponse(v)
	})
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *IdempotencyRecordUpsertOne) UpdateResponse() *IdempotencyRecordUpsertOne {
	return u.Update(func(s *IdempotencyRecordUpsert) {
		s.UpdateResponse()
	})
}

// Exec executes the query.
func (u *IdempotencyRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IdempotencyRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IdempotencyRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IdempotencyRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IdempotencyRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IdempotencyRecordCreateBulk is the builder for creating many IdempotencyRecord entities in bulk.
type IdempotencyRecordCreateBulk struct {
	config
	err      error
	builders []*IdempotencyRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the IdempotencyRecord entities in the database.
func (_c *IdempotencyRecordCreateBulk) Save(ctx context.Context) ([]*IdempotencyRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IdempotencyRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IdempotencyRecordMutation)
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
func (_c *IdempotencyRecordCreateBulk) SaveX(ctx context.Context) []*IdempotencyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdempotencyRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdempotencyRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IdempotencyRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IdempotencyRecordUpsert) {
//			SetRoute(v+v).
//		}).
//		Exec(ctx)
func (_c *IdempotencyRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *IdempotencyRecordUpsertBulk {
	_c.conflict = opts
	return &IdempotencyRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IdempotencyRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IdempotencyRecordCreateBulk) OnConflictColumns(columns ...string) *IdempotencyRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IdempotencyRecordUpsertBulk{
		create: _c,
	}
}

// IdempotencyRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of IdempotencyRecord nodes.
type IdempotencyRecordUpsertBulk struct {
	create *IdempotencyRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.IdempotencyRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *IdempotencyRecordUpsertBulk) UpdateNewValues() *IdempotencyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Route(); exists {
				s.SetIgnore(idempotencyrecord.FieldRoute)
			}
			if _, exists := b.mutation.Key(); exists {
				s.SetIgnore(idempotencyrecord.FieldKey)
			}
			if _, exists := b.mutation.PayloadHash(); exists {
				s.SetIgnore(idempotencyrecord.FieldPayloadHash)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(idempotencyrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IdempotencyRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IdempotencyRecordUpsertBulk) Ignore() *IdempotencyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IdempotencyRecordUpsertBulk) DoNothing() *IdempotencyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IdempotencyRecordCreateBulk.OnConflict
// documentation for more info.
func (u *IdempotencyRecordUpsertBulk) Update(set func(*IdempotencyRecordUpsert)) *IdempotencyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IdempotencyRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatusCode sets the "status_code" field.
func (u *IdempotencyRecordUpsertBulk) SetStatusCode(v int) *IdempotencyRecordUpsertBulk {
	return u.Update(func(s *IdempotencyRecordUpsert) {
		s.SetStatusCode(v)
	})
}

// AddStatusCode adds v to the "status_code" field.
func (u *IdempotencyRecordUpsertBulk) AddStatusCode(v int) *IdempotencyRecordUpsertBulk {
	return u.Update(func(s *IdempotencyRecordUpsert) {
		s.AddStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *IdempotencyRecordUpsertBulk) UpdateStatusCode() *IdempotencyRecordUpsertBulk {
	return u.Update(func(s *IdempotencyRecordUpsert) {
		s.UpdateStatusCode()
	})
}

// SetResponse sets the "response" field.
func (u *IdempotencyRecordUpsertBulk) SetResponse(v string) *IdempotencyRecordUpsertBulk {
	return u.Update(func(s *IdempotencyRecordUpsert) {
		s.SetResponse(v)
	})
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *IdempotencyRecordUpsertBulk) UpdateResponse() *IdempotencyRecordUpsertBulk {
	return u.Update(func(s *IdempotencyRecordUpsert) {
		s.UpdateResponse()
	})
}

// Exec executes the query.
func (u *IdempotencyRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IdempotencyRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IdempotencyRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IdempotencyRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
