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
	"github.com/hireflow/scout/ent/job"
	"github.com/hireflow/scout/ent/outboundaction"
)

// OutboundActionCreate is the builder for creating a OutboundAction entity.
type OutboundActionCreate struct {
	config
	mutation *OutboundActionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *OutboundActionCreate) SetJobID(v string) *OutboundActionCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetCandidateID sets the "candidate_id" field.
func (_c *OutboundActionCreate) SetCandidateID(v string) *OutboundActionCreate {
	_c.mutation.SetCandidateID(v)
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *OutboundActionCreate) SetConversationID(v string) *OutboundActionCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *OutboundActionCreate) SetKind(v outboundaction.Kind) *OutboundActionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OutboundActionCreate) SetStatus(v outboundaction.Status) *OutboundActionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OutboundActionCreate) SetNillableStatus(v *outboundaction.Status) *OutboundActionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *OutboundActionCreate) SetPayload(v map[string]interface{}) *OutboundActionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *OutboundActionCreate) SetAccountID(v string) *OutboundActionCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_c *OutboundActionCreate) SetNillableAccountID(v *string) *OutboundActionCreate {
	if v != nil {
		_c.SetAccountID(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *OutboundActionCreate) SetAttempts(v int) *OutboundActionCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *OutboundActionCreate) SetNillableAttempts(v *int) *OutboundActionCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *OutboundActionCreate) SetLastError(v string) *OutboundActionCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *OutboundActionCreate) SetNillableLastError(v *string) *OutboundActionCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OutboundActionCreate) SetCreatedAt(v time.Time) *OutboundActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OutboundActionCreate) SetNillableCreatedAt(v *time.Time) *OutboundActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OutboundActionCreate) SetUpdatedAt(v time.Time) *OutboundActionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OutboundActionCreate) SetNillableUpdatedAt(v *time.Time) *OutboundActionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OutboundActionCreate) SetID(v string) *OutboundActionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *OutboundActionCreate) SetJob(v *Job) *OutboundActionCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the OutboundActionMutation object of the builder.
func (_c *OutboundActionCreate) Mutation() *OutboundActionMutation {
	return _c.mutation
}

// Save creates the OutboundAction in the database.
func (_c *OutboundActionCreate) Save(ctx context.Context) (*OutboundAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutboundActionCreate) SaveX(ctx context.Context) *OutboundAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboundActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboundActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutboundActionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := outboundaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := outboundaction.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := outboundaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := outboundaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutboundActionCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "OutboundAction.job_id"`)}
	}
	if _, ok := _c.mutation.CandidateID(); !ok {
		return &ValidationError{Name: "candidate_id", err: errors.New(`ent: missing required field "OutboundAction.candidate_id"`)}
	}
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "OutboundAction.conversation_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "OutboundAction.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := outboundaction.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "OutboundAction.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OutboundAction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := outboundaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutboundAction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "OutboundAction.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OutboundAction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "OutboundAction.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "OutboundAction.job"`)}
	}
	return nil
}

func (_c *OutboundActionCreate) sqlSave(ctx context.Context) (*OutboundAction, error) {
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
			return nil, fmt.Errorf("unexpected OutboundAction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OutboundActionCreate) createSpec() (*OutboundAction, *sqlgraph.CreateSpec) {
	var (
		_node = &OutboundAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outboundaction.Table, sqlgraph.NewFieldSpec(outboundaction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CandidateID(); ok {
		_spec.SetField(outboundaction.FieldCandidateID, field.TypeString, value)
		_node.CandidateID = value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(outboundaction.FieldConversationID, field.TypeString, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(outboundaction.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(outboundaction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(outboundaction.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(outboundaction.FieldAccountID, field.TypeString, value)
		_node.AccountID = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(outboundaction.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(outboundaction.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(outboundaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(outboundaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outboundaction.JobTable,
			Columns: []string{outboundaction.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OutboundAction.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutboundActionUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *OutboundActionCreate) OnConflict(opts ...sql.ConflictOption) *OutboundActionUpsertOne {
	_c.conflict = opts
	return &OutboundActionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutboundAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutboundActionCreate) OnConflictColumns(columns ...string) *OutboundActionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutboundActionUpsertOne{
		create: _c,
	}
}

type (
	// OutboundActionUpsertOne is the builder for "upsert"-ing
	//  one OutboundAction node.
	OutboundActionUpsertOne struct {
		create *OutboundActionCreate
	}

	// OutboundActionUpsert is the "OnConflict" setter.
	OutboundActionUpsert struct {
		*sql.UpdateSet
	}
)

// SetKind sets the "kind" field.
func (u *OutboundActionUpsert) SetKind(v outboundaction.Kind) *OutboundActionUpsert {
	u.Set(outboundaction.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *OutboundActionUpsert) UpdateKind() *OutboundActionUpsert {
	u.SetExcluded(outboundaction.FieldKind)
	return u
}

// SetStatus sets the "status" field.
func (u *OutboundActionUpsert) SetStatus(v outboundaction.Status) *OutboundActionUpsert {
	u.Set(outboundaction.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboundActionUpsert) UpdateStatus() *OutboundActionUpsert {
	u.SetExcluded(outboundaction.FieldStatus)
	return u
}

// SetPayload sets the "payload" field.
func (u *OutboundActionUpsert) SetPayload(v map[string]interface{}) *OutboundActionUpsert {
	u.Set(outboundaction.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *OutboundActionUpsert) UpdatePayload() *OutboundActionUpsert {
	u.SetExcluded(outboundaction.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *OutboundActionUpsert) ClearPayload() *OutboundActionUpsert {
	u.SetNull(outboundaction.FieldPayload)
	return u
}

// SetAccountID sets the "account_id" field.
func (u *OutboundActionUpsert) SetAccountID(v string) *OutboundActionUpsert {
	u.Set(outboundaction.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *OutboundActionUpsert) UpdateAccountID() *OutboundActionUpsert {
	u.SetExcluded(outboundaction.FieldAccountID)
	return u
}

// ClearAccountID clears the value of the "account_id" field.
func (u *OutboundActionUpsert) ClearAccountID() *OutboundActionUpsert {
	u.SetNull(outboundaction.FieldAccountID)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *OutboundActionUpsert) SetAttempts(v int) *OutboundActionUpsert {
	u.Set(outboundaction.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *OutboundActionUpsert) UpdateAttempts() *OutboundActionUpsert {
	u.SetExcluded(outboundaction.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *OutboundActionUpsert) AddAttempts(v int) *OutboundActionUpsert {
	u.Add(outboundaction.FieldAttempts, v)
	return u
}

// SetLastError sets the "last_error" field.
func (u *OutboundActionUpsert) SetLastError(v string) *OutboundActionUpsert {
	u.Set(outboundaction.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *OutboundActionUpsert) UpdateLastError() *OutboundActionUpsert {
	u.SetExcluded(outboundaction.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *OutboundActionUpsert) ClearLastError() *OutboundActionUpsert {
	u.SetNull(outboundaction.FieldLastError)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OutboundActionUpsert) SetUpdatedAt(v time.Time) *OutboundActionUpsert {
	u.Set(outboundaction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OutboundActionUpsert) UpdateUpdatedAt() *OutboundActionUpsert {
	u.SetExcluded(outboundaction.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OutboundAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(outboundaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OutboundActionUpsertOne) UpdateNewValues() *OutboundActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(outboundaction.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(outboundaction.FieldJobID)
		}
		if _, exists := u.create.mutation.CandidateID(); exists {
			s.SetIgnore(outboundaction.FieldCandidateID)
		}
		if _, exists := u.create.mutation.ConversationID(); exists {
			s.SetIgnore(outboundaction.FieldConversationID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(outboundaction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutboundAction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OutboundActionUpsertOne) Ignore() *OutboundActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutboundActionUpsertOne) DoNothing() *OutboundActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutboundActionCreate.OnConflict
// documentation for more info.
func (u *OutboundActionUpsertOne) Update(set func(*OutboundActionUpsert)) *OutboundActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutboundActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *OutboundActionUpsertOne) SetKind(v outboundaction.Kind) *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *OutboundActionUpsertOne) UpdateKind() *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdateKind()
	})
}

// SetStatus sets the "status" field.
func (u *OutboundActionUpsertOne) SetStatus(v outboundaction.Status) *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboundActionUpsertOne) UpdateStatus() *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdateStatus()
	})
}

// SetPayload sets the "payload" field.
func (u *OutboundActionUpsertOne) SetPayload(v map[string]interface{}) *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *OutboundActionUpsertOne) UpdatePayload() *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *OutboundActionUpsertOne) ClearPayload() *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.ClearPayload()
	})
}

// SetAccountID sets the "account_id" field.
func (u *OutboundActionUpsertOne) SetAccountID(v string) *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *OutboundActionUpsertOne) UpdateAccountID() *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdateAccountID()
	})
}

// ClearAccountID clears the value of the "account_id" field.
func (u *OutboundActionUpsertOne) ClearAccountID() *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.ClearAccountID()
	})
}

// SetAttempts sets the "attempts" field.
func (u *OutboundActionUpsertOne) SetAttempts(v int) *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *OutboundActionUpsertOne) AddAttempts(v int) *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *OutboundActionUpsertOne) UpdateAttempts() *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdateAttempts()
	})
}

// SetLastError sets the "last_error" field.
func (u *OutboundActionUpsertOne) SetLastError(v string) *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *OutboundActionUpsertOne) UpdateLastError() *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *OutboundActionUpsertOne) ClearLastError() *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.ClearLastError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OutboundActionUpsertOne) SetUpdatedAt(v time.Time) *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OutboundActionUpsertOne) UpdateUpdatedAt() *OutboundActionUpsertOne {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *OutboundActionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutboundActionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutboundActionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OutboundActionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OutboundActionUpsertOne.ID is not supported by MySQL driver. Use OutboundActionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OutboundActionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OutboundActionCreateBulk is the builder for creating many OutboundAction entities in bulk.
type OutboundActionCreateBulk struct {
	config
	err      error
	builders []*OutboundActionCreate
	conflict []sql.ConflictOption
}

// Save creates the OutboundAction entities in the database.
func (_c *OutboundActionCreateBulk) Save(ctx context.Context) ([]*OutboundAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutboundAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutboundActionMutation)
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
func (_c *OutboundActionCreateBulk) SaveX(ctx context.Context) []*OutboundAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboundActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboundActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OutboundAction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutboundActionUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *OutboundActionCreateBulk) OnConflict(opts ...sql.ConflictOption) *OutboundActionUpsertBulk {
	_c.conflict = opts
	return &OutboundActionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutboundAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutboundActionCreateBulk) OnConflictColumns(columns ...string) *OutboundActionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutboundActionUpsertBulk{
		create: _c,
	}
}

// OutboundActionUpsertBulk is the builder for "upsert"-ing
// a bulk of OutboundAction nodes.
type OutboundActionUpsertBulk struct {
	create *OutboundActionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OutboundAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(outboundaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OutboundActionUpsertBulk) UpdateNewValues() *OutboundActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(outboundaction.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(outboundaction.FieldJobID)
			}
			if _, exists := b.mutation.CandidateID(); exists {
				s.SetIgnore(outboundaction.FieldCandidateID)
			}
			if _, exists := b.mutation.ConversationID(); exists {
				s.SetIgnore(outboundaction.FieldConversationID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(outboundaction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutboundAction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OutboundActionUpsertBulk) Ignore() *OutboundActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutboundActionUpsertBulk) DoNothing() *OutboundActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutboundActionCreateBulk.OnConflict
// documentation for more info.
func (u *OutboundActionUpsertBulk) Update(set func(*OutboundActionUpsert)) *OutboundActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutboundActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *OutboundActionUpsertBulk) SetKind(v outboundaction.Kind) *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *OutboundActionUpsertBulk) UpdateKind() *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdateKind()
	})
}

// SetStatus sets the "status" field.
func (u *OutboundActionUpsertBulk) SetStatus(v outboundaction.Status) *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboundActionUpsertBulk) UpdateStatus() *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdateStatus()
	})
}

// SetPayload sets the "payload" field.
func (u *OutboundActionUpsertBulk) SetPayload(v map[string]interface{}) *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *OutboundActionUpsertBulk) UpdatePayload() *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *OutboundActionUpsertBulk) ClearPayload() *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.ClearPayload()
	})
}

// SetAccountID sets the "account_id" field.
func (u *OutboundActionUpsertBulk) SetAccountID(v string) *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *OutboundActionUpsertBulk) UpdateAccountID() *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdateAccountID()
	})
}

// ClearAccountID clears the value of the "account_id" field.
func (u *OutboundActionUpsertBulk) ClearAccountID() *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.ClearAccountID()
	})
}

// SetAttempts sets the "attempts" field.
func (u *OutboundActionUpsertBulk) SetAttempts(v int) *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *OutboundActionUpsertBulk) AddAttempts(v int) *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *OutboundActionUpsertBulk) UpdateAttempts() *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdateAttempts()
	})
}

// SetLastError sets the "last_error" field.
func (u *OutboundActionUpsertBulk) SetLastError(v string) *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *OutboundActionUpsertBulk) UpdateLastError() *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *OutboundActionUpsertBulk) ClearLastError() *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.ClearLastError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OutboundActionUpsertBulk) SetUpdatedAt(v time.Time) *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OutboundActionUpsertBulk) UpdateUpdatedAt() *OutboundActionUpsertBulk {
	return u.Update(func(s *OutboundActionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *OutboundActionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OutboundActionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutboundActionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutboundActionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
