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
	"github.com/hireflow/scout/ent/agentassessment"
)

// AgentAssessmentCreate is the builder for creating a AgentAssessment entity.
type AgentAssessmentCreate struct {
	config
	mutation *AgentAssessmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *AgentAssessmentCreate) SetJobID(v string) *AgentAssessmentCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetCandidateID sets the "candidate_id" field.
func (_c *AgentAssessmentCreate) SetCandidateID(v string) *AgentAssessmentCreate {
	_c.mutation.SetCandidateID(v)
	return _c
}

// SetAgentKey sets the "agent_key" field.
func (_c *AgentAssessmentCreate) SetAgentKey(v agentassessment.AgentKey) *AgentAssessmentCreate {
	_c.mutation.SetAgentKey(v)
	return _c
}

// SetStageKey sets the "stage_key" field.
func (_c *AgentAssessmentCreate) SetStageKey(v string) *AgentAssessmentCreate {
	_c.mutation.SetStageKey(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AgentAssessmentCreate) SetScore(v float64) *AgentAssessmentCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *AgentAssessmentCreate) SetNillableScore(v *float64) *AgentAssessmentCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentAssessmentCreate) SetStatus(v string) *AgentAssessmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentAssessmentCreate) SetNillableStatus(v *string) *AgentAssessmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *AgentAssessmentCreate) SetReason(v string) *AgentAssessmentCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *AgentAssessmentCreate) SetNillableReason(v *string) *AgentAssessmentCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *AgentAssessmentCreate) SetDetails(v map[string]interface{}) *AgentAssessmentCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentAssessmentCreate) SetCreatedAt(v time.Time) *AgentAssessmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentAssessmentCreate) SetNillableCreatedAt(v *time.Time) *AgentAssessmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentAssessmentCreate) SetUpdatedAt(v time.Time) *AgentAssessmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentAssessmentCreate) SetNillableUpdatedAt(v *time.Time) *AgentAssessmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentAssessmentCreate) SetID(v string) *AgentAssessmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentAssessmentMutation object of the builder.
func (_c *AgentAssessmentCreate) Mutation() *AgentAssessmentMutation {
	return _c.mutation
}

// Save creates the AgentAssessment in the database.
func (_c *AgentAssessmentCreate) Save(ctx context.Context) (*AgentAssessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentAssessmentCreate) SaveX(ctx context.Context) *AgentAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentAssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentAssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentAssessmentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentassessment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentassessment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentassessment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentAssessmentCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "AgentAssessment.job_id"`)}
	}
	if _, ok := _c.mutation.CandidateID(); !ok {
		return &ValidationError{Name: "candidate_id", err: errors.New(`ent: missing required field "AgentAssessment.candidate_id"`)}
	}
	if _, ok := _c.mutation.AgentKey(); !ok {
		return &ValidationError{Name: "agent_key", err: errors.New(`ent: missing required field "AgentAssessment.agent_key"`)}
	}
	if v, ok := _c.mutation.AgentKey(); ok {
		if err := agentassessment.AgentKeyValidator(v); err != nil {
			return &ValidationError{Name: "agent_key", err: fmt.Errorf(`ent: validator failed for field "AgentAssessment.agent_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageKey(); !ok {
		return &ValidationError{Name: "stage_key", err: errors.New(`ent: missing required field "AgentAssessment.stage_key"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentAssessment.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentAssessment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentAssessment.updated_at"`)}
	}
	return nil
}

func (_c *AgentAssessmentCreate) sqlSave(ctx context.Context) (*AgentAssessment, error) {
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
			return nil, fmt.Errorf("unexpected AgentAssessment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentAssessmentCreate) createSpec() (*AgentAssessment, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentAssessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentassessment.Table, sqlgraph.NewFieldSpec(agentassessment.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(agentassessment.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.CandidateID(); ok {
		_spec.SetField(agentassessment.FieldCandidateID, field.TypeString, value)
		_node.CandidateID = value
	}
	if value, ok := _c.mutation.AgentKey(); ok {
		_spec.SetField(agentassessment.FieldAgentKey, field.TypeEnum, value)
		_node.AgentKey = value
	}
	if value, ok := _c.mutation.StageKey(); ok {
		_spec.SetField(agentassessment.FieldStageKey, field.TypeString, value)
		_node.StageKey = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(agentassessment.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentassessment.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(agentassessment.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(agentassessment.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentassessment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentassessment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentAssessment.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentAssessmentUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentAssessmentCreate) OnConflict(opts ...sql.ConflictOption) *AgentAssessmentUpsertOne {
	_c.conflict = opts
	return &AgentAssessmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentAssessment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentAssessmentCreate) OnConflictColumns(columns ...string) *AgentAssessmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentAssessmentUpsertOne{
		create: _c,
	}
}

type (
	// AgentAssessmentUpsertOne is the builder for "upsert"-ing
	//  one AgentAssessment node.
	AgentAssessmentUpsertOne struct {
		create *AgentAssessmentCreate
	}

	// AgentAssessmentUpsert is the "OnConflict" setter.
	AgentAssessmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentKey sets the "agent_key" field.
func (u *AgentAssessmentUpsert) SetAgentKey(v agentassessment.AgentKey) *AgentAssessmentUpsert {
	u.Set(agentassessment.FieldAgentKey, v)
	return u
}

// UpdateAgentKey sets the "agent_key" field to the value that was provided on create.
func (u *AgentAssessmentUpsert) UpdateAgentKey() *AgentAssessmentUpsert {
	u.SetExcluded(agentassessment.FieldAgentKey)
	return u
}

// SetStageKey sets the "stage_key" field.
func (u *AgentAssessmentUpsert) SetStageKey(v string) *AgentAssessmentUpsert {
	u.Set(agentassessment.FieldStageKey, v)
	return u
}

// UpdateStageKey sets the "stage_key" field to the value that was provided on create.
func (u *AgentAssessmentUpsert) UpdateStageKey() *AgentAssessmentUpsert {
	u.SetExcluded(agentassessment.FieldStageKey)
	return u
}

// SetScore sets the "score" field.
func (u *AgentAssessmentUpsert) SetScore(v float64) *AgentAssessmentUpsert {
	u.Set(agentassessment.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *AgentAssessmentUpsert) UpdateScore() *AgentAssessmentUpsert {
	u.SetExcluded(agentassessment.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *AgentAssessmentUpsert) AddScore(v float64) *AgentAssessmentUpsert {
	u.Add(agentassessment.FieldScore, v)
	return u
}

// ClearScore clears the value of the "score" field.
func (u *AgentAssessmentUpsert) ClearScore() *AgentAssessmentUpsert {
	u.SetNull(agentassessment.FieldScore)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentAssessmentUpsert) SetStatus(v string) *AgentAssessmentUpsert {
	u.Set(agentassessment.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentAssessmentUpsert) UpdateStatus() *AgentAssessmentUpsert {
	u.SetExcluded(agentassessment.FieldStatus)
	return u
}

// SetReason sets the "reason" field.
func (u *AgentAssessmentUpsert) SetReason(v string) *AgentAssessmentUpsert {
	u.Set(agentassessment.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *AgentAssessmentUpsert) UpdateReason() *AgentAssessmentUpsert {
	u.SetExcluded(agentassessment.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *AgentAssessmentUpsert) ClearReason() *AgentAssessmentUpsert {
	u.SetNull(agentassessment.FieldReason)
	return u
}

// SetDetails sets the "details" field.
func (u *AgentAssessmentUpsert) SetDetails(v map[string]interface{}) *AgentAssessmentUpsert {
	u.Set(agentassessment.FieldDetails, v)
	return u
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *AgentAssessmentUpsert) UpdateDetails() *AgentAssessmentUpsert {
	u.SetExcluded(agentassessment.FieldDetails)
	return u
}

// ClearDetails clears the value of the "details" field.
func (u *AgentAssessmentUpsert) ClearDetails() *AgentAssessmentUpsert {
	u.SetNull(agentassessment.FieldDetails)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentAssessmentUpsert) SetUpdatedAt(v time.Time) *AgentAssessmentUpsert {
	u.Set(agentassessment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentAssessmentUpsert) UpdateUpdatedAt() *AgentAssessmentUpsert {
	u.SetExcluded(agentassessment.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentAssessment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentassessment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentAssessmentUpsertOne) UpdateNewValues() *AgentAssessmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentassessment.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(agentassessment.FieldJobID)
		}
		if _, exists := u.create.mutation.CandidateID(); exists {
			s.SetIgnore(agentassessment.FieldCandidateID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentassessment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentAssessment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentAssessmentUpsertOne) Ignore() *AgentAssessmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentAssessmentUpsertOne) DoNothing() *AgentAssessmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentAssessmentCreate.OnConflict
// documentation for more info.
func (u *AgentAssessmentUpsertOne) Update(set func(*AgentAssessmentUpsert)) *AgentAssessmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentAssessmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentKey sets the "agent_key" field.
func (u *AgentAssessmentUpsertOne) SetAgentKey(v agentassessment.AgentKey) *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetAgentKey(v)
	})
}

// UpdateAgentKey sets the "agent_key" field to the value that was provided on create.
func (u *AgentAssessmentUpsertOne) UpdateAgentKey() *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateAgentKey()
	})
}

// SetStageKey sets the "stage_key" field.
func (u *AgentAssessmentUpsertOne) SetStageKey(v string) *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetStageKey(v)
	})
}

// UpdateStageKey sets the "stage_key" field to the value that was provided on create.
func (u *AgentAssessmentUpsertOne) UpdateStageKey() *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateStageKey()
	})
}

// SetScore sets the "score" field.
func (u *AgentAssessmentUpsertOne) SetScore(v float64) *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *AgentAssessmentUpsertOne) AddScore(v float64) *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *AgentAssessmentUpsertOne) UpdateScore() *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateScore()
	})
}

// ClearScore clears the value of the "score" field.
func (u *AgentAssessmentUpsertOne) ClearScore() *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.ClearScore()
	})
}

// SetStatus sets the "status" field.
func (u *AgentAssessmentUpsertOne) SetStatus(v string) *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentAssessmentUpsertOne) UpdateStatus() *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateStatus()
	})
}

// SetReason sets the "reason" field.
func (u *AgentAssessmentUpsertOne) SetReason(v string) *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *AgentAssessmentUpsertOne) UpdateReason() *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *AgentAssessmentUpsertOne) ClearReason() *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.ClearReason()
	})
}

// SetDetails sets the "details" field.
func (u *AgentAssessmentUpsertOne) SetDetails(v map[string]interface{}) *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *AgentAssessmentUpsertOne) UpdateDetails() *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *AgentAssessmentUpsertOne) ClearDetails() *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.ClearDetails()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentAssessmentUpsertOne) SetUpdatedAt(v time.Time) *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentAssessmentUpsertOne) UpdateUpdatedAt() *AgentAssessmentUpsertOne {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentAssessmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentAssessmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentAssessmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentAssessmentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentAssessmentUpsertOne.ID is not supported by MySQL driver. Use AgentAssessmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentAssessmentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentAssessmentCreateBulk is the builder for creating many AgentAssessment entities in bulk.
type AgentAssessmentCreateBulk struct {
	config
	err      error
	builders []*AgentAssessmentCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentAssessment entities in the database.
func (_c *AgentAssessmentCreateBulk) Save(ctx context.Context) ([]*AgentAssessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentAssessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentAssessmentMutation)
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
func (_c *AgentAssessmentCreateBulk) SaveX(ctx context.Context) []*AgentAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentAssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentAssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentAssessment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentAssessmentUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentAssessmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentAssessmentUpsertBulk {
	_c.conflict = opts
	return &AgentAssessmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentAssessment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentAssessmentCreateBulk) OnConflictColumns(columns ...string) *AgentAssessmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentAssessmentUpsertBulk{
		create: _c,
	}
}

// AgentAssessmentUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentAssessment nodes.
type AgentAssessmentUpsertBulk struct {
	create *AgentAssessmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentAssessment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentassessment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentAssessmentUpsertBulk) UpdateNewValues() *AgentAssessmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentassessment.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(agentassessment.FieldJobID)
			}
			if _, exists := b.mutation.CandidateID(); exists {
				s.SetIgnore(agentassessment.FieldCandidateID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentassessment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentAssessment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentAssessmentUpsertBulk) Ignore() *AgentAssessmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentAssessmentUpsertBulk) DoNothing() *AgentAssessmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentAssessmentCreateBulk.OnConflict
// documentation for more info.
func (u *AgentAssessmentUpsertBulk) Update(set func(*AgentAssessmentUpsert)) *AgentAssessmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentAssessmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentKey sets the "agent_key" field.
func (u *AgentAssessmentUpsertBulk) SetAgentKey(v agentassessment.AgentKey) *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetAgentKey(v)
	})
}

// UpdateAgentKey sets the "agent_key" field to the value that was provided on create.
func (u *AgentAssessmentUpsertBulk) UpdateAgentKey() *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateAgentKey()
	})
}

// SetStageKey sets the "stage_key" field.
func (u *AgentAssessmentUpsertBulk) SetStageKey(v string) *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetStageKey(v)
	})
}

// UpdateStageKey sets the "stage_key" field to the value that was provided on create.
func (u *AgentAssessmentUpsertBulk) UpdateStageKey() *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateStageKey()
	})
}

// SetScore sets the "score" field.
func (u *AgentAssessmentUpsertBulk) SetScore(v float64) *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *AgentAssessmentUpsertBulk) AddScore(v float64) *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *AgentAssessmentUpsertBulk) UpdateScore() *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateScore()
	})
}

// ClearScore clears the value of the "score" field.
func (u *AgentAssessmentUpsertBulk) ClearScore() *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.ClearScore()
	})
}

// SetStatus sets the "status" field.
func (u *AgentAssessmentUpsertBulk) SetStatus(v string) *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentAssessmentUpsertBulk) UpdateStatus() *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateStatus()
	})
}

// SetReason sets the "reason" field.
func (u *AgentAssessmentUpsertBulk) SetReason(v string) *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *AgentAssessmentUpsertBulk) UpdateReason() *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *AgentAssessmentUpsertBulk) ClearReason() *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.ClearReason()
	})
}

// SetDetails sets the "details" field.
func (u *AgentAssessmentUpsertBulk) SetDetails(v map[string]interface{}) *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *AgentAssessmentUpsertBulk) UpdateDetails() *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *AgentAssessmentUpsertBulk) ClearDetails() *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.ClearDetails()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentAssessmentUpsertBulk) SetUpdatedAt(v time.Time) *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentAssessmentUpsertBulk) UpdateUpdatedAt() *AgentAssessmentUpsertBulk {
	return u.Update(func(s *AgentAssessmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentAssessmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentAssessmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentAssessmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentAssessmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
