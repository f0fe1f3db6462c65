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
	"github.com/hireflow/scout/ent/operationlog"
)

// OperationLogCreate is the builder for creating a OperationLog entity.
type OperationLogCreate struct {
	config
	mutation *OperationLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOperation sets the "operation" field.
func (_c *OperationLogCreate) SetOperation(v string) *OperationLogCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OperationLogCreate) SetStatus(v string) *OperationLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OperationLogCreate) SetNillableStatus(v *string) *OperationLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *OperationLogCreate) SetEntityType(v string) *OperationLogCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_c *OperationLogCreate) SetNillableEntityType(v *string) *OperationLogCreate {
	if v != nil {
		_c.SetEntityType(*v)
	}
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *OperationLogCreate) SetEntityID(v string) *OperationLogCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_c *OperationLogCreate) SetNillableEntityID(v *string) *OperationLogCreate {
	if v != nil {
		_c.SetEntityID(*v)
	}
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *OperationLogCreate) SetJobID(v string) *OperationLogCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *OperationLogCreate) SetNillableJobID(v *string) *OperationLogCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetCandidateID sets the "candidate_id" field.
func (_c *OperationLogCreate) SetCandidateID(v string) *OperationLogCreate {
	_c.mutation.SetCandidateID(v)
	return _c
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_c *OperationLogCreate) SetNillableCandidateID(v *string) *OperationLogCreate {
	if v != nil {
		_c.SetCandidateID(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *OperationLogCreate) SetDetails(v map[string]interface{}) *OperationLogCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OperationLogCreate) SetCreatedAt(v time.Time) *OperationLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OperationLogCreate) SetNillableCreatedAt(v *time.Time) *OperationLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the OperationLogMutation object of the builder.
func (_c *OperationLogCreate) Mutation() *OperationLogMutation {
	return _c.mutation
}

// Save creates the OperationLog in the database.
func (_c *OperationLogCreate) Save(ctx context.Context) (*OperationLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OperationLogCreate) SaveX(ctx context.Context) *OperationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OperationLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OperationLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OperationLogCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := operationlog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := operationlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OperationLogCreate) check() error {
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "OperationLog.operation"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OperationLog.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OperationLog.created_at"`)}
	}
	return nil
}

func (_c *OperationLogCreate) sqlSave(ctx context.Context) (*OperationLog, error) {
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

func (_c *OperationLogCreate) createSpec() (*OperationLog, *sqlgraph.CreateSpec) {
	var (
		_node = &OperationLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(operationlog.Table, sqlgraph.NewFieldSpec(operationlog.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(operationlog.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(operationlog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(operationlog.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(operationlog.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(operationlog.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.CandidateID(); ok {
		_spec.SetField(operationlog.FieldCandidateID, field.TypeString, value)
		_node.CandidateID = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(operationlog.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(operationlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OperationLog.Create().
//		SetOperation(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OperationLogUpsert) {
//			SetOperation(v+v).
//		}).
//		Exec(ctx)
func (_c *OperationLogCreate) OnConflict(opts ...sql.ConflictOption) *OperationLogUpsertOne {
	_c.conflict = opts
	return &OperationLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OperationLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OperationLogCreate) OnConflictColumns(columns ...string) *OperationLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OperationLogUpsertOne{
		create: _c,
	}
}

type (
	// OperationLogUpsertOne is the builder for "upsert"-ing
	//  one OperationLog node.
	OperationLogUpsertOne struct {
		create *OperationLogCreate
	}

	// OperationLogUpsert is the "OnConflict" setter.
	OperationLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetOperation sets the "operation" field.
func (u *OperationLogUpsert) SetOperation(v string) *OperationLogUpsert {
	u.Set(operationlog.FieldOperation, v)
	return u
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *OperationLogUpsert) UpdateOperation() *OperationLogUpsert {
	u.SetExcluded(operationlog.FieldOperation)
	return u
}

// SetStatus sets the "status" field.
func (u *OperationLogUpsert) SetStatus(v string) *OperationLogUpsert {
	u.Set(operationlog.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OperationLogUpsert) UpdateStatus() *OperationLogUpsert {
	u.SetExcluded(operationlog.FieldStatus)
	return u
}

// SetEntityType sets the "entity_type" field.
func (u *OperationLogUpsert) SetEntityType(v string) *OperationLogUpsert {
	u.Set(operationlog.FieldEntityType, v)
	return u
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *OperationLogUpsert) UpdateEntityType() *OperationLogUpsert {
	u.SetExcluded(operationlog.FieldEntityType)
	return u
}

// ClearEntityType clears the value of the "entity_type" field.
func (u *OperationLogUpsert) ClearEntityType() *OperationLogUpsert {
	u.SetNull(operationlog.FieldEntityType)
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *OperationLogUpsert) SetEntityID(v string) *OperationLogUpsert {
	u.Set(operationlog.FieldEntityID, v)
	return u
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *OperationLogUpsert) UpdateEntityID() *OperationLogUpsert {
	u.SetExcluded(operationlog.FieldEntityID)
	return u
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *OperationLogUpsert) ClearEntityID() *OperationLogUpsert {
	u.SetNull(operationlog.FieldEntityID)
	return u
}

// SetJobID sets the "job_id" field.
func (u *OperationLogUpsert) SetJobID(v string) *OperationLogUpsert {
	u.Set(operationlog.FieldJobID, v)
	return u
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *OperationLogUpsert) UpdateJobID() *OperationLogUpsert {
	u.SetExcluded(operationlog.FieldJobID)
	return u
}

// ClearJobID clears the value of the "job_id" field.
func (u *OperationLogUpsert) ClearJobID() *OperationLogUpsert {
	u.SetNull(operationlog.FieldJobID)
	return u
}

// SetCandidateID sets the "candidate_id" field.
func (u *OperationLogUpsert) SetCandidateID(v string) *OperationLogUpsert {
	u.Set(operationlog.FieldCandidateID, v)
	return u
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *OperationLogUpsert) UpdateCandidateID() *OperationLogUpsert {
	u.SetExcluded(operationlog.FieldCandidateID)
	return u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (u *OperationLogUpsert) ClearCandidateID() *OperationLogUpsert {
	u.SetNull(operationlog.FieldCandidateID)
	return u
}

// SetDetails sets the "details" field.
func (u *OperationLogUpsert) SetDetails(v map[string]interface{}) *OperationLogUpsert {
	u.Set(operationlog.FieldDetails, v)
	return u
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *OperationLogUpsert) UpdateDetails() *OperationLogUpsert {
	u.SetExcluded(operationlog.FieldDetails)
	return u
}

// ClearDetails clears the value of the "details" field.
func (u *OperationLogUpsert) ClearDetails() *OperationLogUpsert {
	u.SetNull(operationlog.FieldDetails)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.OperationLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OperationLogUpsertOne) UpdateNewValues() *OperationLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(operationlog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OperationLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OperationLogUpsertOne) Ignore() *OperationLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OperationLogUpsertOne) DoNothing() *OperationLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OperationLogCreate.OnConflict
// documentation for more info.
func (u *OperationLogUpsertOne) Update(set func(*OperationLogUpsert)) *OperationLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OperationLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetOperation sets the "operation" field.
func (u *OperationLogUpsertOne) SetOperation(v string) *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetOperation(v)
	})
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *OperationLogUpsertOne) UpdateOperation() *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateOperation()
	})
}

// SetStatus sets the "status" field.
func (u *OperationLogUpsertOne) SetStatus(v string) *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OperationLogUpsertOne) UpdateStatus() *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateStatus()
	})
}

// SetEntityType sets the "entity_type" field.
func (u *OperationLogUpsertOne) SetEntityType(v string) *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *OperationLogUpsertOne) UpdateEntityType() *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateEntityType()
	})
}

// ClearEntityType clears the value of the "entity_type" field.
func (u *OperationLogUpsertOne) ClearEntityType() *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.ClearEntityType()
	})
}

// SetEntityID sets the "entity_id" field.
func (u *OperationLogUpsertOne) SetEntityID(v string) *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *OperationLogUpsertOne) UpdateEntityID() *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateEntityID()
	})
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *OperationLogUpsertOne) ClearEntityID() *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.ClearEntityID()
	})
}

// SetJobID sets the "job_id" field.
func (u *OperationLogUpsertOne) SetJobID(v string) *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *OperationLogUpsertOne) UpdateJobID() *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *OperationLogUpsertOne) ClearJobID() *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.ClearJobID()
	})
}

// SetCandidateID sets the "candidate_id" field.
func (u *OperationLogUpsertOne) SetCandidateID(v string) *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetCandidateID(v)
	})
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *OperationLogUpsertOne) UpdateCandidateID() *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateCandidateID()
	})
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (u *OperationLogUpsertOne) ClearCandidateID() *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.ClearCandidateID()
	})
}

// SetDetails sets the "details" field.
func (u *OperationLogUpsertOne) SetDetails(v map[string]interface{}) *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *OperationLogUpsertOne) UpdateDetails() *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *OperationLogUpsertOne) ClearDetails() *OperationLogUpsertOne {
	return u.Update(func(s *OperationLogUpsert) {
		s.ClearDetails()
	})
}

// Exec executes the query.
func (u *OperationLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OperationLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OperationLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OperationLogUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OperationLogUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OperationLogCreateBulk is the builder for creating many OperationLog entities in bulk.
type OperationLogCreateBulk struct {
	config
	err      error
	builders []*OperationLogCreate
	conflict []sql.ConflictOption
}

// Save creates the OperationLog entities in the database.
func (_c *OperationLogCreateBulk) Save(ctx context.Context) ([]*OperationLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OperationLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OperationLogMutation)
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
func (_c *OperationLogCreateBulk) SaveX(ctx context.Context) []*OperationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OperationLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OperationLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OperationLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OperationLogUpsert) {
//			SetOperation(v+v).
//		}).
//		Exec(ctx)
func (_c *OperationLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *OperationLogUpsertBulk {
	_c.conflict = opts
	return &OperationLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OperationLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OperationLogCreateBulk) OnConflictColumns(columns ...string) *OperationLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OperationLogUpsertBulk{
		create: _c,
	}
}

// OperationLogUpsertBulk is the builder for "upsert"-ing
// a bulk of OperationLog nodes.
type OperationLogUpsertBulk struct {
	create *OperationLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OperationLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OperationLogUpsertBulk) UpdateNewValues() *OperationLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(operationlog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OperationLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OperationLogUpsertBulk) Ignore() *OperationLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OperationLogUpsertBulk) DoNothing() *OperationLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OperationLogCreateBulk.OnConflict
// documentation for more info.
func (u *OperationLogUpsertBulk) Update(set func(*OperationLogUpsert)) *OperationLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OperationLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetOperation sets the "operation" field.
func (u *OperationLogUpsertBulk) SetOperation(v string) *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetOperation(v)
	})
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *OperationLogUpsertBulk) UpdateOperation() *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateOperation()
	})
}

// SetStatus sets the "status" field.
func (u *OperationLogUpsertBulk) SetStatus(v string) *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OperationLogUpsertBulk) UpdateStatus() *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateStatus()
	})
}

// SetEntityType sets the "entity_type" field.
func (u *OperationLogUpsertBulk) SetEntityType(v string) *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *OperationLogUpsertBulk) UpdateEntityType() *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateEntityType()
	})
}

// ClearEntityType clears the value of the "entity_type" field.
func (u *OperationLogUpsertBulk) ClearEntityType() *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.ClearEntityType()
	})
}

// SetEntityID sets the "entity_id" field.
func (u *OperationLogUpsertBulk) SetEntityID(v string) *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *OperationLogUpsertBulk) UpdateEntityID() *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateEntityID()
	})
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *OperationLogUpsertBulk) ClearEntityID() *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.ClearEntityID()
	})
}

// SetJobID sets the "job_id" field.
func (u *OperationLogUpsertBulk) SetJobID(v string) *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *OperationLogUpsertBulk) UpdateJobID() *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *OperationLogUpsertBulk) ClearJobID() *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.ClearJobID()
	})
}

// SetCandidateID sets the "candidate_id" field.
func (u *OperationLogUpsertBulk) SetCandidateID(v string) *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetCandidateID(v)
	})
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *OperationLogUpsertBulk) UpdateCandidateID() *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateCandidateID()
	})
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (u *OperationLogUpsertBulk) ClearCandidateID() *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.ClearCandidateID()
	})
}

// SetDetails sets the "details" field.
func (u *OperationLogUpsertBulk) SetDetails(v map[string]interface{}) *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *OperationLogUpsertBulk) UpdateDetails() *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *OperationLogUpsertBulk) ClearDetails() *OperationLogUpsertBulk {
	return u.Update(func(s *OperationLogUpsert) {
		s.ClearDetails()
	})
}

// Exec executes the query.
func (u *OperationLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OperationLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OperationLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OperationLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
