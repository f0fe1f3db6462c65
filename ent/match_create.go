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
	"github.com/hireflow/scout/ent/candidate"
	"github.com/hireflow/scout/ent/job"
	"github.com/hireflow/scout/ent/match"
)

// MatchCreate is the builder for creating a Match entity.
type MatchCreate struct {
	config
	mutation *MatchMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *MatchCreate) SetJobID(v string) *MatchCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetCandidateID sets the "candidate_id" field.
func (_c *MatchCreate) SetCandidateID(v string) *MatchCreate {
	_c.mutation.SetCandidateID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *MatchCreate) SetScore(v float64) *MatchCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *MatchCreate) SetNillableScore(v *float64) *MatchCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MatchCreate) SetStatus(v match.Status) *MatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MatchCreate) SetNillableStatus(v *match.Status) *MatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVerificationNotes sets the "verification_notes" field.
func (_c *MatchCreate) SetVerificationNotes(v map[string]interface{}) *MatchCreate {
	_c.mutation.SetVerificationNotes(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MatchCreate) SetCreatedAt(v time.Time) *MatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MatchCreate) SetNillableCreatedAt(v *time.Time) *MatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MatchCreate) SetUpdatedAt(v time.Time) *MatchCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MatchCreate) SetNillableUpdatedAt(v *time.Time) *MatchCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MatchCreate) SetID(v string) *MatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *MatchCreate) SetJob(v *Job) *MatchCreate {
	return _c.SetJobID(v.ID)
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_c *MatchCreate) SetCandidate(v *Candidate) *MatchCreate {
	return _c.SetCandidateID(v.ID)
}

// Mutation returns the MatchMutation object of the builder.
func (_c *MatchCreate) Mutation() *MatchMutation {
	return _c.mutation
}

// Save creates the Match in the database.
func (_c *MatchCreate) Save(ctx context.Context) (*Match, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatchCreate) SaveX(ctx context.Context) *Match {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MatchCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := match.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := match.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := match.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := match.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatchCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Match.job_id"`)}
	}
	if _, ok := _c.mutation.CandidateID(); !ok {
		return &ValidationError{Name: "candidate_id", err: errors.New(`ent: missing required field "Match.candidate_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Match.score"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Match.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := match.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Match.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Match.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Match.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Match.job"`)}
	}
	if len(_c.mutation.CandidateIDs()) == 0 {
		return &ValidationError{Name: "candidate", err: errors.New(`ent: missing required edge "Match.candidate"`)}
	}
	return nil
}

func (_c *MatchCreate) sqlSave(ctx context.Context) (*Match, error) {
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
			return nil, fmt.Errorf("unexpected Match.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MatchCreate) createSpec() (*Match, *sqlgraph.CreateSpec) {
	var (
		_node = &Match{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(match.Table, sqlgraph.NewFieldSpec(match.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(match.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(match.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.VerificationNotes(); ok {
		_spec.SetField(match.FieldVerificationNotes, field.TypeJSON, value)
		_node.VerificationNotes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(match.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(match.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.JobTable,
			Columns: []string{match.JobColumn},
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
	if nodes := _c.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.CandidateTable,
			Columns: []string{match.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CandidateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Match.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MatchUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *MatchCreate) OnConflict(opts ...sql.ConflictOption) *MatchUpsertOne {
	_c.conflict = opts
	return &MatchUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Match.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MatchCreate) OnConflictColumns(columns ...string) *MatchUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MatchUpsertOne{
		create: _c,
	}
}

type (
	// MatchUpsertOne is the builder for "upsert"-ing
	//  one Match node.
	MatchUpsertOne struct {
		create *MatchCreate
	}

	// MatchUpsert is the "OnConflict" setter.
	MatchUpsert struct {
		*sql.UpdateSet
	}
)

// SetScore sets the "score" field.
func (u *MatchUpsert) SetScore(v float64) *MatchUpsert {
	u.Set(match.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *MatchUpsert) UpdateScore() *MatchUpsert {
	u.SetExcluded(match.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *MatchUpsert) AddScore(v float64) *MatchUpsert {
	u.Add(match.FieldScore, v)
	return u
}

// SetStatus sets the "status" field.
func (u *MatchUpsert) SetStatus(v match.Status) *MatchUpsert {
	u.Set(match.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MatchUpsert) UpdateStatus() *MatchUpsert {
	u.SetExcluded(match.FieldStatus)
	return u
}

// SetVerificationNotes sets the "verification_notes" field.
func (u *MatchUpsert) SetVerificationNotes(v map[string]interface{}) *MatchUpsert {
	u.Set(match.FieldVerificationNotes, v)
	return u
}

// UpdateVerificationNotes sets the "verification_notes" field to the value that was provided on create.
func (u *MatchUpsert) UpdateVerificationNotes() *MatchUpsert {
	u.SetExcluded(match.FieldVerificationNotes)
	return u
}

// ClearVerificationNotes clears the value of the "verification_notes" field.
func (u *MatchUpsert) ClearVerificationNotes() *MatchUpsert {
	u.SetNull(match.FieldVerificationNotes)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MatchUpsert) SetUpdatedAt(v time.Time) *MatchUpsert {
	u.Set(match.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MatchUpsert) UpdateUpdatedAt() *MatchUpsert {
	u.SetExcluded(match.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Match.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(match.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MatchUpsertOne) UpdateNewValues() *MatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(match.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(match.FieldJobID)
		}
		if _, exists := u.create.mutation.CandidateID(); exists {
			s.SetIgnore(match.FieldCandidateID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(match.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Match.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MatchUpsertOne) Ignore() *MatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MatchUpsertOne) DoNothing() *MatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MatchCreate.OnConflict
// documentation for more info.
func (u *MatchUpsertOne) Update(set func(*MatchUpsert)) *MatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MatchUpsert{UpdateSet: update})
	}))
	return u
}

// SetScore sets the "score" field.
func (u *MatchUpsertOne) SetScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *MatchUpsertOne) AddScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateScore() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateScore()
	})
}

// SetStatus sets the "status" field.
func (u *MatchUpsertOne) SetStatus(v match.Status) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateStatus() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateStatus()
	})
}

// SetVerificationNotes sets the "verification_notes" field.
func (u *MatchUpsertOne) SetVerificationNotes(v map[string]interface{}) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetVerificationNotes(v)
	})
}

// UpdateVerificationNotes sets the "verification_notes" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateVerificationNotes() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateVerificationNotes()
	})
}

// ClearVerificationNotes clears the value of the "verification_notes" field.
func (u *MatchUpsertOne) ClearVerificationNotes() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.ClearVerificationNotes()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MatchUpsertOne) SetUpdatedAt(v time.Time) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateUpdatedAt() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MatchUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MatchCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MatchUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MatchUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MatchUpsertOne.ID is not supported by MySQL driver. Use MatchUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MatchUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MatchCreateBulk is the builder for creating many Match entities in bulk.
type MatchCreateBulk struct {
	config
	err      error
	builders []*MatchCreate
	conflict []sql.ConflictOption
}

// Save creates the Match entities in the database.
func (_c *MatchCreateBulk) Save(ctx context.Context) ([]*Match, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Match, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatchMutation)
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
func (_c *MatchCreateBulk) SaveX(ctx context.Context) []*Match {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Match.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MatchUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *MatchCreateBulk) OnConflict(opts ...sql.ConflictOption) *MatchUpsertBulk {
	_c.conflict = opts
	return &MatchUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Match.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MatchCreateBulk) OnConflictColumns(columns ...string) *MatchUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MatchUpsertBulk{
		create: _c,
	}
}

// MatchUpsertBulk is the builder for "upsert"-ing
// a bulk of Match nodes.
type MatchUpsertBulk struct {
	create *MatchCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Match.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(match.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MatchUpsertBulk) UpdateNewValues() *MatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(match.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(match.FieldJobID)
			}
			if _, exists := b.mutation.CandidateID(); exists {
				s.SetIgnore(match.FieldCandidateID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(match.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Match.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MatchUpsertBulk) Ignore() *MatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MatchUpsertBulk) DoNothing() *MatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MatchCreateBulk.OnConflict
// documentation for more info.
func (u *MatchUpsertBulk) Update(set func(*MatchUpsert)) *MatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MatchUpsert{UpdateSet: update})
	}))
	return u
}

// SetScore sets the "score" field.
func (u *MatchUpsertBulk) SetScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *MatchUpsertBulk) AddScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateScore() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateScore()
	})
}

// SetStatus sets the "status" field.
func (u *MatchUpsertBulk) SetStatus(v match.Status) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateStatus() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateStatus()
	})
}

// SetVerificationNotes sets the "verification_notes" field.
func (u *MatchUpsertBulk) SetVerificationNotes(v map[string]interface{}) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetVerificationNotes(v)
	})
}

// UpdateVerificationNotes sets the "verification_notes" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateVerificationNotes() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateVerificationNotes()
	})
}

// ClearVerificationNotes clears the value of the "verification_notes" field.
func (u *MatchUpsertBulk) ClearVerificationNotes() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.ClearVerificationNotes()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MatchUpsertBulk) SetUpdatedAt(v time.Time) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateUpdatedAt() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MatchUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MatchCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MatchCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MatchUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
