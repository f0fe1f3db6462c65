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
	"github.com/hireflow/scout/ent/job"
	"github.com/hireflow/scout/ent/jobstepprogress"
)

// JobStepProgressCreate is the builder for creating a JobStepProgress entity.
type JobStepProgressCreate struct {
	config
	mutation *JobStepProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *JobStepProgressCreate) SetJobID(v string) *JobStepProgressCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetStep sets the "step" field.
func (_c *JobStepProgressCreate) SetStep(v string) *JobStepProgressCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobStepProgressCreate) SetStatus(v jobstepprogress.Status) *JobStepProgressCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobStepProgressCreate) SetNillableStatus(v *jobstepprogress.Status) *JobStepProgressCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *JobStepProgressCreate) SetOutput(v map[string]interface{}) *JobStepProgressCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *JobStepProgressCreate) SetLastError(v string) *JobStepProgressCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *JobStepProgressCreate) SetNillableLastError(v *string) *JobStepProgressCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobStepProgressCreate) SetStartedAt(v time.Time) *JobStepProgressCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobStepProgressCreate) SetNillableStartedAt(v *time.Time) *JobStepProgressCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobStepProgressCreate) SetCompletedAt(v time.Time) *JobStepProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobStepProgressCreate) SetNillableCompletedAt(v *time.Time) *JobStepProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobStepProgressCreate) SetCreatedAt(v time.Time) *JobStepProgressCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobStepProgressCreate) SetNillableCreatedAt(v *time.Time) *JobStepProgressCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobStepProgressCreate) SetUpdatedAt(v time.Time) *JobStepProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobStepProgressCreate) SetNillableUpdatedAt(v *time.Time) *JobStepProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *JobStepProgressCreate) SetJob(v *Job) *JobStepProgressCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobStepProgressMutation object of the builder.
func (_c *JobStepProgressCreate) Mutation() *JobStepProgressMutation {
	return _c.mutation
}

// Save creates the JobStepProgress in the database.
func (_c *JobStepProgressCreate) Save(ctx context.Context) (*JobStepProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobStepProgressCreate) SaveX(ctx context.Context) *JobStepProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobStepProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobStepProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobStepProgressCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := jobstepprogress.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := jobstepprogress.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := jobstepprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobStepProgressCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobStepProgress.job_id"`)}
	}
	if _, ok := _c.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "JobStepProgress.step"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "JobStepProgress.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := jobstepprogress.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobStepProgress.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobStepProgress.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "JobStepProgress.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobStepProgress.job"`)}
	}
	return nil
}

func (_c *JobStepProgressCreate) sqlSave(ctx context.Context) (*JobStepProgress, error) {
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

func (_c *JobStepProgressCreate) createSpec() (*JobStepProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &JobStepProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobstepprogress.Table, sqlgraph.NewFieldSpec(jobstepprogress.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(jobstepprogress.FieldStep, field.TypeString, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(jobstepprogress.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(jobstepprogress.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(jobstepprogress.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(jobstepprogress.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(jobstepprogress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(jobstepprogress.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(jobstepprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobstepprogress.JobTable,
			Columns: []string{jobstepprogress.JobColumn},
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
//	client.JobStepProgress.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobStepProgressUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobStepProgressCreate) OnConflict(opts ...sql.ConflictOption) *JobStepProgressUpsertOne {
	_c.conflict = opts
	return &JobStepProgressUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.JobStepProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobStepProgressCreate) OnConflictColumns(columns ...string) *JobStepProgressUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobStepProgressUpsertOne{
		create: _c,
	}
}

type (
	// JobStepProgressUpsertOne is the builder for "upsert"-ing
	//  one JobStepProgress node.
	JobStepProgressUpsertOne struct {
		create *JobStepProgressCreate
	}

	// JobStepProgressUpsert is the "OnConflict" setter.
	JobStepProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *JobStepProgressUpsert) SetStatus(v jobstepprogress.Status) *JobStepProgressUpsert {
	u.Set(jobstepprogress.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobStepProgressUpsert) UpdateStatus() *JobStepProgressUpsert {
	u.SetExcluded(jobstepprogress.FieldStatus)
	return u
}

// SetOutput sets the "output" field.
func (u *JobStepProgressUpsert) SetOutput(v map[string]interface{}) *JobStepProgressUpsert {
	u.Set(jobstepprogress.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *JobStepProgressUpsert) UpdateOutput() *JobStepProgressUpsert {
	u.SetExcluded(jobstepprogress.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *JobStepProgressUpsert) ClearOutput() *JobStepProgressUpsert {
	u.SetNull(jobstepprogress.FieldOutput)
	return u
}

// SetLastError sets the "last_error" field.
func (u *JobStepProgressUpsert) SetLastError(v string) *JobStepProgressUpsert {
	u.Set(jobstepprogress.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *JobStepProgressUpsert) UpdateLastError() *JobStepProgressUpsert {
	u.SetExcluded(jobstepprogress.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *JobStepProgressUpsert) ClearLastError() *JobStepProgressUpsert {
	u.SetNull(jobstepprogress.FieldLastError)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *JobStepProgressUpsert) SetStartedAt(v time.Time) *JobStepProgressUpsert {
	u.Set(jobstepprogress.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobStepProgressUpsert) UpdateStartedAt() *JobStepProgressUpsert {
	u.SetExcluded(jobstepprogress.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobStepProgressUpsert) ClearStartedAt() *JobStepProgressUpsert {
	u.SetNull(jobstepprogress.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobStepProgressUpsert) SetCompletedAt(v time.Time) *JobStepProgressUpsert {
	u.Set(jobstepprogress.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobStepProgressUpsert) UpdateCompletedAt() *JobStepProgressUpsert {
	u.SetExcluded(jobstepprogress.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobStepProgressUpsert) ClearCompletedAt() *JobStepProgressUpsert {
	u.SetNull(jobstepprogress.FieldCompletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobStepProgressUpsert) SetUpdatedAt(v time.Time) *JobStepProgressUpsert {
	u.Set(jobstepprogress.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobStepProgressUpsert) UpdateUpdatedAt() *JobStepProgressUpsert {
	u.SetExcluded(jobstepprogress.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.JobStepProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *JobStepProgressUpsertOne) UpdateNewValues() *JobStepProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(jobstepprogress.FieldJobID)
		}
		if _, exists := u.create.mutation.Step(); exists {
			s.SetIgnore(jobstepprogress.FieldStep)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(jobstepprogress.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.JobStepProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobStepProgressUpsertOne) Ignore() *JobStepProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobStepProgressUpsertOne) DoNothing() *JobStepProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobStepProgressCreate.OnConflict
// documentation for more info.
func (u *JobStepProgressUpsertOne) Update(set func(*JobStepProgressUpsert)) *JobStepProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobStepProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *JobStepProgressUpsertOne) SetStatus(v jobstepprogress.Status) *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobStepProgressUpsertOne) UpdateStatus() *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.UpdateStatus()
	})
}

// SetOutput sets the "output" field.
func (u *JobStepProgressUpsertOne) SetOutput(v map[string]interface{}) *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *JobStepProgressUpsertOne) UpdateOutput() *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *JobStepProgressUpsertOne) ClearOutput() *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.ClearOutput()
	})
}

// SetLastError sets the "last_error" field.
func (u *JobStepProgressUpsertOne) SetLastError(v string) *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *JobStepProgressUpsertOne) UpdateLastError() *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *JobStepProgressUpsertOne) ClearLastError() *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.ClearLastError()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JobStepProgressUpsertOne) SetStartedAt(v time.Time) *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobStepProgressUpsertOne) UpdateStartedAt() *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobStepProgressUpsertOne) ClearStartedAt() *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobStepProgressUpsertOne) SetCompletedAt(v time.Time) *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobStepProgressUpsertOne) UpdateCompletedAt() *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobStepProgressUpsertOne) ClearCompletedAt() *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobStepProgressUpsertOne) SetUpdatedAt(v time.Time) *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobStepProgressUpsertOne) UpdateUpdatedAt() *JobStepProgressUpsertOne {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *JobStepProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobStepProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobStepProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobStepProgressUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobStepProgressUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobStepProgressCreateBulk is the builder for creating many JobStepProgress entities in bulk.
type JobStepProgressCreateBulk struct {
	config
	err      error
	builders []*JobStepProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the JobStepProgress entities in the database.
func (_c *JobStepProgressCreateBulk) Save(ctx context.Context) ([]*JobStepProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobStepProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobStepProgressMutation)
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
func (_c *JobStepProgressCreateBulk) SaveX(ctx context.Context) []*JobStepProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobStepProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobStepProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.JobStepProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobStepProgressUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobStepProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobStepProgressUpsertBulk {
	_c.conflict = opts
	return &JobStepProgressUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.JobStepProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobStepProgressCreateBulk) OnConflictColumns(columns ...string) *JobStepProgressUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobStepProgressUpsertBulk{
		create: _c,
	}
}

// JobStepProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of JobStepProgress nodes.
type JobStepProgressUpsertBulk struct {
	create *JobStepProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.JobStepProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *JobStepProgressUpsertBulk) UpdateNewValues() *JobStepProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(jobstepprogress.FieldJobID)
			}
			if _, exists := b.mutation.Step(); exists {
				s.SetIgnore(jobstepprogress.FieldStep)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(jobstepprogress.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.JobStepProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobStepProgressUpsertBulk) Ignore() *JobStepProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobStepProgressUpsertBulk) DoNothing() *JobStepProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobStepProgressCreateBulk.OnConflict
// documentation for more info.
func (u *JobStepProgressUpsertBulk) Update(set func(*JobStepProgressUpsert)) *JobStepProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobStepProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *JobStepProgressUpsertBulk) SetStatus(v jobstepprogress.Status) *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobStepProgressUpsertBulk) UpdateStatus() *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.UpdateStatus()
	})
}

// SetOutput sets the "output" field.
func (u *JobStepProgressUpsertBulk) SetOutput(v map[string]interface{}) *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *JobStepProgressUpsertBulk) UpdateOutput() *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *JobStepProgressUpsertBulk) ClearOutput() *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.ClearOutput()
	})
}

// SetLastError sets the "last_error" field.
func (u *JobStepProgressUpsertBulk) SetLastError(v string) *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *JobStepProgressUpsertBulk) UpdateLastError() *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *JobStepProgressUpsertBulk) ClearLastError() *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.ClearLastError()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JobStepProgressUpsertBulk) SetStartedAt(v time.Time) *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobStepProgressUpsertBulk) UpdateStartedAt() *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobStepProgressUpsertBulk) ClearStartedAt() *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobStepProgressUpsertBulk) SetCompletedAt(v time.Time) *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobStepProgressUpsertBulk) UpdateCompletedAt() *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobStepProgressUpsertBulk) ClearCompletedAt() *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobStepProgressUpsertBulk) SetUpdatedAt(v time.Time) *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobStepProgressUpsertBulk) UpdateUpdatedAt() *JobStepProgressUpsertBulk {
	return u.Update(func(s *JobStepProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *JobStepProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobStepProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobStepProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobStepProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
