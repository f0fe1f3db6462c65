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
	"github.com/hireflow/scout/ent/candidatesignal"
	"github.com/hireflow/scout/ent/job"
)

// CandidateSignalCreate is the builder for creating a CandidateSignal entity.
type CandidateSignalCreate struct {
	config
	mutation *CandidateSignalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *CandidateSignalCreate) SetJobID(v string) *CandidateSignalCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetCandidateID sets the "candidate_id" field.
func (_c *CandidateSignalCreate) SetCandidateID(v string) *CandidateSignalCreate {
	_c.mutation.SetCandidateID(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *CandidateSignalCreate) SetSourceType(v candidatesignal.SourceType) *CandidateSignalCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *CandidateSignalCreate) SetSourceID(v string) *CandidateSignalCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetSignalType sets the "signal_type" field.
func (_c *CandidateSignalCreate) SetSignalType(v string) *CandidateSignalCreate {
	_c.mutation.SetSignalType(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CandidateSignalCreate) SetCategory(v string) *CandidateSignalCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CandidateSignalCreate) SetTitle(v string) *CandidateSignalCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *CandidateSignalCreate) SetDetail(v string) *CandidateSignalCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *CandidateSignalCreate) SetNillableDetail(v *string) *CandidateSignalCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetImpact sets the "impact" field.
func (_c *CandidateSignalCreate) SetImpact(v float64) *CandidateSignalCreate {
	_c.mutation.SetImpact(v)
	return _c
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_c *CandidateSignalCreate) SetNillableImpact(v *float64) *CandidateSignalCreate {
	if v != nil {
		_c.SetImpact(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *CandidateSignalCreate) SetConfidence(v float64) *CandidateSignalCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *CandidateSignalCreate) SetNillableConfidence(v *float64) *CandidateSignalCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSignalMeta sets the "signal_meta" field.
func (_c *CandidateSignalCreate) SetSignalMeta(v map[string]interface{}) *CandidateSignalCreate {
	_c.mutation.SetSignalMeta(v)
	return _c
}

// SetObservedAt sets the "observed_at" field.
func (_c *CandidateSignalCreate) SetObservedAt(v time.Time) *CandidateSignalCreate {
	_c.mutation.SetObservedAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CandidateSignalCreate) SetCreatedAt(v time.Time) *CandidateSignalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CandidateSignalCreate) SetNillableCreatedAt(v *time.Time) *CandidateSignalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *CandidateSignalCreate) SetJob(v *Job) *CandidateSignalCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the CandidateSignalMutation object of the builder.
func (_c *CandidateSignalCreate) Mutation() *CandidateSignalMutation {
	return _c.mutation
}

// Save creates the CandidateSignal in the database.
func (_c *CandidateSignalCreate) Save(ctx context.Context) (*CandidateSignal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CandidateSignalCreate) SaveX(ctx context.Context) *CandidateSignal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateSignalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateSignalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CandidateSignalCreate) defaults() {
	if _, ok := _c.mutation.Impact(); !ok {
		v := candidatesignal.DefaultImpact
		_c.mutation.SetImpact(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := candidatesignal.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := candidatesignal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CandidateSignalCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "CandidateSignal.job_id"`)}
	}
	if _, ok := _c.mutation.CandidateID(); !ok {
		return &ValidationError{Name: "candidate_id", err: errors.New(`ent: missing required field "CandidateSignal.candidate_id"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "CandidateSignal.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := candidatesignal.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "CandidateSignal.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "CandidateSignal.source_id"`)}
	}
	if _, ok := _c.mutation.SignalType(); !ok {
		return &ValidationError{Name: "signal_type", err: errors.New(`ent: missing required field "CandidateSignal.signal_type"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CandidateSignal.category"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CandidateSignal.title"`)}
	}
	if _, ok := _c.mutation.Impact(); !ok {
		return &ValidationError{Name: "impact", err: errors.New(`ent: missing required field "CandidateSignal.impact"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "CandidateSignal.confidence"`)}
	}
	if _, ok := _c.mutation.ObservedAt(); !ok {
		return &ValidationError{Name: "observed_at", err: errors.New(`ent: missing required field "CandidateSignal.observed_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CandidateSignal.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "CandidateSignal.job"`)}
	}
	return nil
}

func (_c *CandidateSignalCreate) sqlSave(ctx context.Context) (*CandidateSignal, error) {
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

func (_c *CandidateSignalCreate) createSpec() (*CandidateSignal, *sqlgraph.CreateSpec) {
	var (
		_node = &CandidateSignal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(candidatesignal.Table, sqlgraph.NewFieldSpec(candidatesignal.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CandidateID(); ok {
		_spec.SetField(candidatesignal.FieldCandidateID, field.TypeString, value)
		_node.CandidateID = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(candidatesignal.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(candidatesignal.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.SignalType(); ok {
		_spec.SetField(candidatesignal.FieldSignalType, field.TypeString, value)
		_node.SignalType = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(candidatesignal.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(candidatesignal.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(candidatesignal.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.Impact(); ok {
		_spec.SetField(candidatesignal.FieldImpact, field.TypeFloat64, value)
		_node.Impact = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(candidatesignal.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SignalMeta(); ok {
		_spec.SetField(candidatesignal.FieldSignalMeta, field.TypeJSON, value)
		_node.SignalMeta = value
	}
	if value, ok := _c.mutation.ObservedAt(); ok {
		_spec.SetField(candidatesignal.FieldObservedAt, field.TypeTime, value)
		_node.ObservedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(candidatesignal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidatesignal.JobTable,
			Columns: []string{candidatesignal.JobColumn},
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
//	client.CandidateSignal.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CandidateSignalUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *CandidateSignalCreate) OnConflict(opts ...sql.ConflictOption) *CandidateSignalUpsertOne {
	_c.conflict = opts
	return &CandidateSignalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CandidateSignal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CandidateSignalCreate) OnConflictColumns(columns ...string) *CandidateSignalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CandidateSignalUpsertOne{
		create: _c,
	}
}

type (
	// CandidateSignalUpsertOne is the builder for "upsert"-ing
	//  one CandidateSignal node.
	CandidateSignalUpsertOne struct {
		create *CandidateSignalCreate
	}

	// CandidateSignalUpsert is the "OnConflict" setter.
	CandidateSignalUpsert struct {
		*sql.UpdateSet
	}
)

// SetSignalType sets the "signal_type" field.
func (u *CandidateSignalUpsert) SetSignalType(v string) *CandidateSignalUpsert {
	u.Set(candidatesignal.FieldSignalType, v)
	return u
}

// UpdateSignalType sets the "signal_type" field to the value that was provided on create.
func (u *CandidateSignalUpsert) UpdateSignalType() *CandidateSignalUpsert {
	u.SetExcluded(candidatesignal.FieldSignalType)
	return u
}

// SetCategory sets the "category" field.
func (u *CandidateSignalUpsert) SetCategory(v string) *CandidateSignalUpsert {
	u.Set(candidatesignal.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *CandidateSignalUpsert) UpdateCategory() *CandidateSignalUpsert {
	u.SetExcluded(candidatesignal.FieldCategory)
	return u
}

// SetTitle sets the "title" field.
func (u *CandidateSignalUpsert) SetTitle(v string) *CandidateSignalUpsert {
	u.Set(candidatesignal.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CandidateSignalUpsert) UpdateTitle() *CandidateSignalUpsert {
	u.SetExcluded(candidatesignal.FieldTitle)
	return u
}

// SetDetail sets the "detail" field.
func (u *CandidateSignalUpsert) SetDetail(v string) *CandidateSignalUpsert {
	u.Set(candidatesignal.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *CandidateSignalUpsert) UpdateDetail() *CandidateSignalUpsert {
	u.SetExcluded(candidatesignal.FieldDetail)
	return u
}

// ClearDetail clears the value of the "detail" field.
func (u *CandidateSignalUpsert) ClearDetail() *CandidateSignalUpsert {
	u.SetNull(candidatesignal.FieldDetail)
	return u
}

// SetImpact sets the "impact" field.
func (u *CandidateSignalUpsert) SetImpact(v float64) *CandidateSignalUpsert {
	u.Set(candidatesignal.FieldImpact, v)
	return u
}

// UpdateImpact sets the "impact" field to the value that was provided on create.
func (u *CandidateSignalUpsert) UpdateImpact() *CandidateSignalUpsert {
	u.SetExcluded(candidatesignal.FieldImpact)
	return u
}

// AddImpact adds v to the "impact" field.
func (u *CandidateSignalUpsert) AddImpact(v float64) *CandidateSignalUpsert {
	u.Add(candidatesignal.FieldImpact, v)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *CandidateSignalUpsert) SetConfidence(v float64) *CandidateSignalUpsert {
	u.Set(candidatesignal.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *CandidateSignalUpsert) UpdateConfidence() *CandidateSignalUpsert {
	u.SetExcluded(candidatesignal.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *CandidateSignalUpsert) AddConfidence(v float64) *CandidateSignalUpsert {
	u.Add(candidatesignal.FieldConfidence, v)
	return u
}

// SetSignalMeta sets the "signal_meta" field.
func (u *CandidateSignalUpsert) SetSignalMeta(v map[string]interface{}) *CandidateSignalUpsert {
	u.Set(candidatesignal.FieldSignalMeta, v)
	return u
}

// UpdateSignalMeta sets the "signal_meta" field to the value that was provided on create.
func (u *CandidateSignalUpsert) UpdateSignalMeta() *CandidateSignalUpsert {
	u.SetExcluded(candidatesignal.FieldSignalMeta)
	return u
}

// ClearSignalMeta clears the value of the "signal_meta" field.
func (u *CandidateSignalUpsert) ClearSignalMeta() *CandidateSignalUpsert {
	u.SetNull(candidatesignal.FieldSignalMeta)
	return u
}

// SetObservedAt sets the "observed_at" field.
func (u *CandidateSignalUpsert) SetObservedAt(v time.Time) *CandidateSignalUpsert {
	u.Set(candidatesignal.FieldObservedAt, v)
	return u
}

// UpdateObservedAt sets the "observed_at" field to the value that was provided on create.
func (u *CandidateSignalUpsert) UpdateObservedAt() *CandidateSignalUpsert {
	u.SetExcluded(candidatesignal.FieldObservedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CandidateSignal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CandidateSignalUpsertOne) UpdateNewValues() *CandidateSignalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(candidatesignal.FieldJobID)
		}
		if _, exists := u.create.mutation.CandidateID(); exists {
			s.SetIgnore(candidatesignal.FieldCandidateID)
		}
		if _, exists := u.create.mutation.SourceType(); exists {
			s.SetIgnore(candidatesignal.FieldSourceType)
		}
		if _, exists := u.create.mutation.SourceID(); exists {
			s.SetIgnore(candidatesignal.FieldSourceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(candidatesignal.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CandidateSignal.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CandidateSignalUpsertOne) Ignore() *CandidateSignalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CandidateSignalUpsertOne) DoNothing() *CandidateSignalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CandidateSignalCreate.OnConflict
// documentation for more info.
func (u *CandidateSignalUpsertOne) Update(set func(*CandidateSignalUpsert)) *CandidateSignalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CandidateSignalUpsert{UpdateSet: update})
	}))
	return u
}

// SetSignalType sets the "signal_type" field.
func (u *CandidateSignalUpsertOne) SetSignalType(v string) *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetSignalType(v)
	})
}

// UpdateSignalType sets the "signal_type" field to the value that was provided on create.
func (u *CandidateSignalUpsertOne) UpdateSignalType() *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateSignalType()
	})
}

// SetCategory sets the "category" field.
func (u *CandidateSignalUpsertOne) SetCategory(v string) *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *CandidateSignalUpsertOne) UpdateCategory() *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateCategory()
	})
}

// SetTitle sets the "title" field.
func (u *CandidateSignalUpsertOne) SetTitle(v string) *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CandidateSignalUpsertOne) UpdateTitle() *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateTitle()
	})
}

// SetDetail sets the "detail" field.
func (u *CandidateSignalUpsertOne) SetDetail(v string) *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *CandidateSignalUpsertOne) UpdateDetail() *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *CandidateSignalUpsertOne) ClearDetail() *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.ClearDetail()
	})
}

// SetImpact sets the "impact" field.
func (u *CandidateSignalUpsertOne) SetImpact(v float64) *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetImpact(v)
	})
}

// AddImpact adds v to the "impact" field.
func (u *CandidateSignalUpsertOne) AddImpact(v float64) *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.AddImpact(v)
	})
}

// UpdateImpact sets the "impact" field to the value that was provided on create.
func (u *CandidateSignalUpsertOne) UpdateImpact() *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateImpact()
	})
}

// SetConfidence sets the "confidence" field.
func (u *CandidateSignalUpsertOne) SetConfidence(v float64) *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *CandidateSignalUpsertOne) AddConfidence(v float64) *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *CandidateSignalUpsertOne) UpdateConfidence() *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateConfidence()
	})
}

// SetSignalMeta sets the "signal_meta" field.
func (u *CandidateSignalUpsertOne) SetSignalMeta(v map[string]interface{}) *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetSignalMeta(v)
	})
}

// UpdateSignalMeta sets the "signal_meta" field to the value that was provided on create.
func (u *CandidateSignalUpsertOne) UpdateSignalMeta() *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateSignalMeta()
	})
}

// ClearSignalMeta clears the value of the "signal_meta" field.
func (u *CandidateSignalUpsertOne) ClearSignalMeta() *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.ClearSignalMeta()
	})
}

// SetObservedAt sets the "observed_at" field.
func (u *CandidateSignalUpsertOne) SetObservedAt(v time.Time) *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetObservedAt(v)
	})
}

// UpdateObservedAt sets the "observed_at" field to the value that was provided on create.
func (u *CandidateSignalUpsertOne) UpdateObservedAt() *CandidateSignalUpsertOne {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateObservedAt()
	})
}

// Exec executes the query.
func (u *CandidateSignalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CandidateSignalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CandidateSignalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CandidateSignalUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CandidateSignalUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CandidateSignalCreateBulk is the builder for creating many CandidateSignal entities in bulk.
type CandidateSignalCreateBulk struct {
	config
	err      error
	builders []*CandidateSignalCreate
	conflict []sql.ConflictOption
}

// Save creates the CandidateSignal entities in the database.
func (_c *CandidateSignalCreateBulk) Save(ctx context.Context) ([]*CandidateSignal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CandidateSignal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CandidateSignalMutation)
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
func (_c *CandidateSignalCreateBulk) SaveX(ctx context.Context) []*CandidateSignal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateSignalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateSignalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CandidateSignal.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CandidateSignalUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *CandidateSignalCreateBulk) OnConflict(opts ...sql.ConflictOption) *CandidateSignalUpsertBulk {
	_c.conflict = opts
	return &CandidateSignalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CandidateSignal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CandidateSignalCreateBulk) OnConflictColumns(columns ...string) *CandidateSignalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CandidateSignalUpsertBulk{
		create: _c,
	}
}

// CandidateSignalUpsertBulk is the builder for "upsert"-ing
// a bulk of CandidateSignal nodes.
type CandidateSignalUpsertBulk struct {
	create *CandidateSignalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CandidateSignal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CandidateSignalUpsertBulk) UpdateNewValues() *CandidateSignalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(candidatesignal.FieldJobID)
			}
			if _, exists := b.mutation.CandidateID(); exists {
				s.SetIgnore(candidatesignal.FieldCandidateID)
			}
			if _, exists := b.mutation.SourceType(); exists {
				s.SetIgnore(candidatesignal.FieldSourceType)
			}
			if _, exists := b.mutation.SourceID(); exists {
				s.SetIgnore(candidatesignal.FieldSourceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(candidatesignal.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CandidateSignal.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CandidateSignalUpsertBulk) Ignore() *CandidateSignalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CandidateSignalUpsertBulk) DoNothing() *CandidateSignalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CandidateSignalCreateBulk.OnConflict
// documentation for more info.
func (u *CandidateSignalUpsertBulk) Update(set func(*CandidateSignalUpsert)) *CandidateSignalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CandidateSignalUpsert{UpdateSet: update})
	}))
	return u
}

// SetSignalType sets the "signal_type" field.
func (u *CandidateSignalUpsertBulk) SetSignalType(v string) *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetSignalType(v)
	})
}

// UpdateSignalType sets the "signal_type" field to the value that was provided on create.
func (u *CandidateSignalUpsertBulk) UpdateSignalType() *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateSignalType()
	})
}

// SetCategory sets the "category" field.
func (u *CandidateSignalUpsertBulk) SetCategory(v string) *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *CandidateSignalUpsertBulk) UpdateCategory() *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateCategory()
	})
}

// SetTitle sets the "title" field.
func (u *CandidateSignalUpsertBulk) SetTitle(v string) *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CandidateSignalUpsertBulk) UpdateTitle() *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateTitle()
	})
}

// SetDetail sets the "detail" field.
func (u *CandidateSignalUpsertBulk) SetDetail(v string) *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *CandidateSignalUpsertBulk) UpdateDetail() *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *CandidateSignalUpsertBulk) ClearDetail() *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.ClearDetail()
	})
}

// SetImpact sets the "impact" field.
func (u *CandidateSignalUpsertBulk) SetImpact(v float64) *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetImpact(v)
	})
}

// AddImpact adds v to the "impact" field.
func (u *CandidateSignalUpsertBulk) AddImpact(v float64) *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.AddImpact(v)
	})
}

// UpdateImpact sets the "impact" field to the value that was provided on create.
func (u *CandidateSignalUpsertBulk) UpdateImpact() *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateImpact()
	})
}

// SetConfidence sets the "confidence" field.
func (u *CandidateSignalUpsertBulk) SetConfidence(v float64) *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *CandidateSignalUpsertBulk) AddConfidence(v float64) *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *CandidateSignalUpsertBulk) UpdateConfidence() *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateConfidence()
	})
}

// SetSignalMeta sets the "signal_meta" field.
func (u *CandidateSignalUpsertBulk) SetSignalMeta(v map[string]interface{}) *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetSignalMeta(v)
	})
}

// UpdateSignalMeta sets the "signal_meta" field to the value that was provided on create.
func (u *CandidateSignalUpsertBulk) UpdateSignalMeta() *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateSignalMeta()
	})
}

// ClearSignalMeta clears the value of the "signal_meta" field.
func (u *CandidateSignalUpsertBulk) ClearSignalMeta() *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.ClearSignalMeta()
	})
}

// SetObservedAt sets the "observed_at" field.
func (u *CandidateSignalUpsertBulk) SetObservedAt(v time.Time) *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.SetObservedAt(v)
	})
}

// UpdateObservedAt sets the "observed_at" field to the value that was provided on create.
func (u *CandidateSignalUpsertBulk) UpdateObservedAt() *CandidateSignalUpsertBulk {
	return u.Update(func(s *CandidateSignalUpsert) {
		s.UpdateObservedAt()
	})
}

// Exec executes the query.
func (u *CandidateSignalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CandidateSignalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CandidateSignalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CandidateSignalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
