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
	"github.com/hireflow/scout/ent/candidatesignal"
	"github.com/hireflow/scout/ent/conversation"
	"github.com/hireflow/scout/ent/job"
	"github.com/hireflow/scout/ent/jobaccountassignment"
	"github.com/hireflow/scout/ent/jobstepprogress"
	"github.com/hireflow/scout/ent/match"
	"github.com/hireflow/scout/ent/outboundaction"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *JobCreate) SetTitle(v string) *JobCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetJdText sets the "jd_text" field.
func (_c *JobCreate) SetJdText(v string) *JobCreate {
	_c.mutation.SetJdText(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *JobCreate) SetLocation(v string) *JobCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *JobCreate) SetNillableLocation(v *string) *JobCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetPreferredLanguages sets the "preferred_languages" field.
func (_c *JobCreate) SetPreferredLanguages(v []string) *JobCreate {
	_c.mutation.SetPreferredLanguages(v)
	return _c
}

// SetSeniority sets the "seniority" field.
func (_c *JobCreate) SetSeniority(v string) *JobCreate {
	_c.mutation.SetSeniority(v)
	return _c
}

// SetNillableSeniority sets the "seniority" field if the given value is not nil.
func (_c *JobCreate) SetNillableSeniority(v *string) *JobCreate {
	if v != nil {
		_c.SetSeniority(*v)
	}
	return _c
}

// SetRoutingMode sets the "routing_mode" field.
func (_c *JobCreate) SetRoutingMode(v job.RoutingMode) *JobCreate {
	_c.mutation.SetRoutingMode(v)
	return _c
}

// SetNillableRoutingMode sets the "routing_mode" field if the given value is not nil.
func (_c *JobCreate) SetNillableRoutingMode(v *job.RoutingMode) *JobCreate {
	if v != nil {
		_c.SetRoutingMode(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_c *JobCreate) AddMatchIDs(ids ...string) *JobCreate {
	_c.mutation.AddMatchIDs(ids...)
	return _c
}

// AddMatches adds the "matches" edges to the Match entity.
func (_c *JobCreate) AddMatches(v ...*Match) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMatchIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_c *JobCreate) AddConversationIDs(ids ...string) *JobCreate {
	_c.mutation.AddConversationIDs(ids...)
	return _c
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_c *JobCreate) AddConversations(v ...*Conversation) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConversationIDs(ids...)
}

// AddOutboundActionIDs adds the "outbound_actions" edge to the OutboundAction entity by IDs.
func (_c *JobCreate) AddOutboundActionIDs(ids ...string) *JobCreate {
	_c.mutation.AddOutboundActionIDs(ids...)
	return _c
}

// AddOutboundActions adds the "outbound_actions" edges to the OutboundAction entity.
func (_c *JobCreate) AddOutboundActions(v ...*OutboundAction) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutboundActionIDs(ids...)
}

// AddStepProgresIDs adds the "step_progress" edge to the JobStepProgress entity by IDs.
func (_c *JobCreate) AddStepProgresIDs(ids ...int) *JobCreate {
	_c.mutation.AddStepProgresIDs(ids...)
	return _c
}

// AddStepProgress adds the "step_progress" edges to the JobStepProgress entity.
func (_c *JobCreate) AddStepProgress(v ...*JobStepProgress) *JobCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepProgresIDs(ids...)
}

// AddAccountAssignmentIDs adds the "account_assignments" edge to the JobAccountAssignment entity by IDs.
func (_c *JobCreate) AddAccountAssignmentIDs(ids ...int) *JobCreate {
	_c.mutation.AddAccountAssignmentIDs(ids...)
	return _c
}

// AddAccountAssignments adds the "account_assignments" edges to the JobAccountAssignment entity.
func (_c *JobCreate) AddAccountAssignments(v ...*JobAccountAssignment) *JobCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAccountAssignmentIDs(ids...)
}

// AddSignalIDs adds the "signals" edge to the CandidateSignal entity by IDs.
func (_c *JobCreate) AddSignalIDs(ids ...int) *JobCreate {
	_c.mutation.AddSignalIDs(ids...)
	return _c
}

// AddSignals adds the "signals" edges to the CandidateSignal entity.
func (_c *JobCreate) AddSignals(v ...*CandidateSignal) *JobCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSignalIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.RoutingMode(); !ok {
		v := job.DefaultRoutingMode
		_c.mutation.SetRoutingMode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Job.title"`)}
	}
	if _, ok := _c.mutation.JdText(); !ok {
		return &ValidationError{Name: "jd_text", err: errors.New(`ent: missing required field "Job.jd_text"`)}
	}
	if _, ok := _c.mutation.RoutingMode(); !ok {
		return &ValidationError{Name: "routing_mode", err: errors.New(`ent: missing required field "Job.routing_mode"`)}
	}
	if v, ok := _c.mutation.RoutingMode(); ok {
		if err := job.RoutingModeValidator(v); err != nil {
			return &ValidationError{Name: "routing_mode", err: fmt.Errorf(`ent: validator failed for field "Job.routing_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.JdText(); ok {
		_spec.SetField(job.FieldJdText, field.TypeString, value)
		_node.JdText = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(job.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.PreferredLanguages(); ok {
		_spec.SetField(job.FieldPreferredLanguages, field.TypeJSON, value)
		_node.PreferredLanguages = value
	}
	if value, ok := _c.mutation.Seniority(); ok {
		_spec.SetField(job.FieldSeniority, field.TypeString, value)
		_node.Seniority = value
	}
	if value, ok := _c.mutation.RoutingMode(); ok {
		_spec.SetField(job.FieldRoutingMode, field.TypeEnum, value)
		_node.RoutingMode = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.MatchesTable,
			Columns: []string{job.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ConversationsTable,
			Columns: []string{job.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutboundActionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.OutboundActionsTable,
			Columns: []string{job.OutboundActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboundaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepProgressIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepProgressTable,
			Columns: []string{job.StepProgressColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobstepprogress.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AccountAssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.AccountAssignmentsTable,
			Columns: []string{job.AccountAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobaccountassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SignalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.SignalsTable,
			Columns: []string{job.SignalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidatesignal.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreate) OnConflict(opts ...sql.ConflictOption) *JobUpsertOne {
	_c.conflict = opts
	return &JobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreate) OnConflictColumns(columns ...string) *JobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertOne{
		create: _c,
	}
}

type (
	// JobUpsertOne is the builder for "upsert"-ing
	//  one Job node.
	JobUpsertOne struct {
		create *JobCreate
	}

	// JobUpsert is the "OnConflict" setter.
	JobUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *JobUpsert) SetTitle(v string) *JobUpsert {
	u.Set(job.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *JobUpsert) UpdateTitle() *JobUpsert {
	u.SetExcluded(job.FieldTitle)
	return u
}

// SetJdText sets the "jd_text" field.
func (u *JobUpsert) SetJdText(v string) *JobUpsert {
	u.Set(job.FieldJdText, v)
	return u
}

// UpdateJdText sets the "jd_text" field to the value that was provided on create.
func (u *JobUpsert) UpdateJdText() *JobUpsert {
	u.SetExcluded(job.FieldJdText)
	return u
}

// SetLocation sets the "location" field.
func (u *JobUpsert) SetLocation(v string) *JobUpsert {
	u.Set(job.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *JobUpsert) UpdateLocation() *JobUpsert {
	u.SetExcluded(job.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *JobUpsert) ClearLocation() *JobUpsert {
	u.SetNull(job.FieldLocation)
	return u
}

// SetPreferredLanguages sets the "preferred_languages" field.
func (u *JobUpsert) SetPreferredLanguages(v []string) *JobUpsert {
	u.Set(job.FieldPreferredLanguages, v)
	return u
}

// UpdatePreferredLanguages sets the "preferred_languages" field to the value that was provided on create.
func (u *JobUpsert) UpdatePreferredLanguages() *JobUpsert {
	u.SetExcluded(job.FieldPreferredLanguages)
	return u
}

// ClearPreferredLanguages clears the value of the "preferred_languages" field.
func (u *JobUpsert) ClearPreferredLanguages() *JobUpsert {
	u.SetNull(job.FieldPreferredLanguages)
	return u
}

// SetSeniority sets the "seniority" field.
func (u *JobUpsert) SetSeniority(v string) *JobUpsert {
	u.Set(job.FieldSeniority, v)
	return u
}

// UpdateSeniority sets the "seniority" field to the value that was provided on create.
func (u *JobUpsert) UpdateSeniority() *JobUpsert {
	u.SetExcluded(job.FieldSeniority)
	return u
}

// ClearSeniority clears the value of the "seniority" field.
func (u *JobUpsert) ClearSeniority() *JobUpsert {
	u.SetNull(job.FieldSeniority)
	return u
}

// SetRoutingMode sets the "routing_mode" field.
func (u *JobUpsert) SetRoutingMode(v job.RoutingMode) *JobUpsert {
	u.Set(job.FieldRoutingMode, v)
	return u
}

// UpdateRoutingMode sets the "routing_mode" field to the value that was provided on create.
func (u *JobUpsert) UpdateRoutingMode() *JobUpsert {
	u.SetExcluded(job.FieldRoutingMode)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsert) SetUpdatedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateUpdatedAt() *JobUpsert {
	u.SetExcluded(job.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertOne) UpdateNewValues() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(job.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(job.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobUpsertOne) Ignore() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertOne) DoNothing() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreate.OnConflict
// documentation for more info.
func (u *JobUpsertOne) Update(set func(*JobUpsert)) *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *JobUpsertOne) SetTitle(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateTitle() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTitle()
	})
}

// SetJdText sets the "jd_text" field.
func (u *JobUpsertOne) SetJdText(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetJdText(v)
	})
}

// UpdateJdText sets the "jd_text" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateJdText() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateJdText()
	})
}

// SetLocation sets the "location" field.
func (u *JobUpsertOne) SetLocation(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLocation() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *JobUpsertOne) ClearLocation() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLocation()
	})
}

// SetPreferredLanguages sets the "preferred_languages" field.
func (u *JobUpsertOne) SetPreferredLanguages(v []string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPreferredLanguages(v)
	})
}

// UpdatePreferredLanguages sets the "preferred_languages" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePreferredLanguages() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePreferredLanguages()
	})
}

// ClearPreferredLanguages clears the value of the "preferred_languages" field.
func (u *JobUpsertOne) ClearPreferredLanguages() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearPreferredLanguages()
	})
}

// SetSeniority sets the "seniority" field.
func (u *JobUpsertOne) SetSeniority(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetSeniority(v)
	})
}

// UpdateSeniority sets the "seniority" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateSeniority() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSeniority()
	})
}

// ClearSeniority clears the value of the "seniority" field.
func (u *JobUpsertOne) ClearSeniority() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearSeniority()
	})
}

// SetRoutingMode sets the "routing_mode" field.
func (u *JobUpsertOne) SetRoutingMode(v job.RoutingMode) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetRoutingMode(v)
	})
}

// UpdateRoutingMode sets the "routing_mode" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateRoutingMode() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRoutingMode()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertOne) SetUpdatedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateUpdatedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: JobUpsertOne.ID is not supported by MySQL driver. Use JobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
	conflict []sql.ConflictOption
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobUpsertBulk {
	_c.conflict = opts
	return &JobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflictColumns(columns ...string) *JobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertBulk{
		create: _c,
	}
}

// JobUpsertBulk is the builder for "upsert"-ing
// a bulk of Job nodes.
type JobUpsertBulk struct {
	create *JobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertBulk) UpdateNewValues() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(job.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(job.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobUpsertBulk) Ignore() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertBulk) DoNothing() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreateBulk.OnConflict
// documentation for more info.
func (u *JobUpsertBulk) Update(set func(*JobUpsert)) *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *JobUpsertBulk) SetTitle(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateTitle() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTitle()
	})
}

// SetJdText sets the "jd_text" field.
func (u *JobUpsertBulk) SetJdText(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetJdText(v)
	})
}

// UpdateJdText sets the "jd_text" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateJdText() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateJdText()
	})
}

// SetLocation sets the "location" field.
func (u *JobUpsertBulk) SetLocation(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLocation() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *JobUpsertBulk) ClearLocation() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLocation()
	})
}

// SetPreferredLanguages sets the "preferred_languages" field.
func (u *JobUpsertBulk) SetPreferredLanguages(v []string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPreferredLanguages(v)
	})
}

// UpdatePreferredLanguages sets the "preferred_languages" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePreferredLanguages() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePreferredLanguages()
	})
}

// ClearPreferredLanguages clears the value of the "preferred_languages" field.
func (u *JobUpsertBulk) ClearPreferredLanguages() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearPreferredLanguages()
	})
}

// SetSeniority sets the "seniority" field.
func (u *JobUpsertBulk) SetSeniority(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetSeniority(v)
	})
}

// UpdateSeniority sets the "seniority" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateSeniority() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSeniority()
	})
}

// ClearSeniority clears the value of the "seniority" field.
func (u *JobUpsertBulk) ClearSeniority() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearSeniority()
	})
}

// SetRoutingMode sets the "routing_mode" field.
func (u *JobUpsertBulk) SetRoutingMode(v job.RoutingMode) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetRoutingMode(v)
	})
}

// UpdateRoutingMode sets the "routing_mode" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateRoutingMode() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRoutingMode()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertBulk) SetUpdatedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateUpdatedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
