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
	"github.com/hireflow/scout/ent/conversation"
	"github.com/hireflow/scout/ent/preresumeevent"
	"github.com/hireflow/scout/ent/preresumesession"
)

// PreResumeSessionCreate is the builder for creating a PreResumeSession entity.
type PreResumeSessionCreate struct {
	config
	mutation *PreResumeSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConversationID sets the "conversation_id" field.
func (_c *PreResumeSessionCreate) SetConversationID(v string) *PreResumeSessionCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_c *PreResumeSessionCreate) SetNillableConversationID(v *string) *PreResumeSessionCreate {
	if v != nil {
		_c.SetConversationID(*v)
	}
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *PreResumeSessionCreate) SetJobID(v string) *PreResumeSessionCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *PreResumeSessionCreate) SetNillableJobID(v *string) *PreResumeSessionCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetCandidateID sets the "candidate_id" field.
func (_c *PreResumeSessionCreate) SetCandidateID(v string) *PreResumeSessionCreate {
	_c.mutation.SetCandidateID(v)
	return _c
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_c *PreResumeSessionCreate) SetNillableCandidateID(v *string) *PreResumeSessionCreate {
	if v != nil {
		_c.SetCandidateID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PreResumeSessionCreate) SetStatus(v preresumesession.Status) *PreResumeSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PreResumeSessionCreate) SetNillableStatus(v *preresumesession.Status) *PreResumeSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *PreResumeSessionCreate) SetLanguage(v string) *PreResumeSessionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *PreResumeSessionCreate) SetNillableLanguage(v *string) *PreResumeSessionCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetFollowupsSent sets the "followups_sent" field.
func (_c *PreResumeSessionCreate) SetFollowupsSent(v int) *PreResumeSessionCreate {
	_c.mutation.SetFollowupsSent(v)
	return _c
}

// SetNillableFollowupsSent sets the "followups_sent" field if the given value is not nil.
func (_c *PreResumeSessionCreate) SetNillableFollowupsSent(v *int) *PreResumeSessionCreate {
	if v != nil {
		_c.SetFollowupsSent(*v)
	}
	return _c
}

// SetTurns sets the "turns" field.
func (_c *PreResumeSessionCreate) SetTurns(v int) *PreResumeSessionCreate {
	_c.mutation.SetTurns(v)
	return _c
}

// SetNillableTurns sets the "turns" field if the given value is not nil.
func (_c *PreResumeSessionCreate) SetNillableTurns(v *int) *PreResumeSessionCreate {
	if v != nil {
		_c.SetTurns(*v)
	}
	return _c
}

// SetLastIntent sets the "last_intent" field.
func (_c *PreResumeSessionCreate) SetLastIntent(v string) *PreResumeSessionCreate {
	_c.mutation.SetLastIntent(v)
	return _c
}

// SetNillableLastIntent sets the "last_intent" field if the given value is not nil.
func (_c *PreResumeSessionCreate) SetNillableLastIntent(v *string) *PreResumeSessionCreate {
	if v != nil {
		_c.SetLastIntent(*v)
	}
	return _c
}

// SetResumeLinks sets the "resume_links" field.
func (_c *PreResumeSessionCreate) SetResumeLinks(v []string) *PreResumeSessionCreate {
	_c.mutation.SetResumeLinks(v)
	return _c
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (_c *PreResumeSessionCreate) SetNextFollowupAt(v time.Time) *PreResumeSessionCreate {
	_c.mutation.SetNextFollowupAt(v)
	return _c
}

// SetNillableNextFollowupAt sets the "next_followup_at" field if the given value is not nil.
func (_c *PreResumeSessionCreate) SetNillableNextFollowupAt(v *time.Time) *PreResumeSessionCreate {
	if v != nil {
		_c.SetNextFollowupAt(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *PreResumeSessionCreate) SetState(v map[string]interface{}) *PreResumeSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *PreResumeSessionCreate) SetLastError(v string) *PreResumeSessionCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *PreResumeSessionCreate) SetNillableLastError(v *string) *PreResumeSessionCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PreResumeSessionCreate) SetCreatedAt(v time.Time) *PreResumeSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PreResumeSessionCreate) SetNillableCreatedAt(v *time.Time) *PreResumeSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PreResumeSessionCreate) SetUpdatedAt(v time.Time) *PreResumeSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PreResumeSessionCreate) SetNillableUpdatedAt(v *time.Time) *PreResumeSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PreResumeSessionCreate) SetID(v string) *PreResumeSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *PreResumeSessionCreate) SetConversation(v *Conversation) *PreResumeSessionCreate {
	return _c.SetConversationID(v.ID)
}

// AddEventIDs adds the "events" edge to the PreResumeEvent entity by IDs.
func (_c *PreResumeSessionCreate) AddEventIDs(ids ...int) *PreResumeSessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the PreResumeEvent entity.
func (_c *PreResumeSessionCreate) AddEvents(v ...*PreResumeEvent) *PreResumeSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the PreResumeSessionMutation object of the builder.
func (_c *PreResumeSessionCreate) Mutation() *PreResumeSessionMutation {
	return _c.mutation
}

// Save creates the PreResumeSession in the database.
func (_c *PreResumeSessionCreate) Save(ctx context.Context) (*PreResumeSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PreResumeSessionCreate) SaveX(ctx context.Context) *PreResumeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreResumeSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreResumeSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PreResumeSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := preresumesession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := preresumesession.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.FollowupsSent(); !ok {
		v := preresumesession.DefaultFollowupsSent
		_c.mutation.SetFollowupsSent(v)
	}
	if _, ok := _c.mutation.Turns(); !ok {
		v := preresumesession.DefaultTurns
		_c.mutation.SetTurns(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := preresumesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := preresumesession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PreResumeSessionCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PreResumeSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := preresumesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PreResumeSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "PreResumeSession.language"`)}
	}
	if _, ok := _c.mutation.FollowupsSent(); !ok {
		return &ValidationError{Name: "followups_sent", err: errors.New(`ent: missing required field "PreResumeSession.followups_sent"`)}
	}
	if _, ok := _c.mutation.Turns(); !ok {
		return &ValidationError{Name: "turns", err: errors.New(`ent: missing required field "PreResumeSession.turns"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PreResumeSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PreResumeSession.updated_at"`)}
	}
	return nil
}

func (_c *PreResumeSessionCreate) sqlSave(ctx context.Context) (*PreResumeSession, error) {
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
			return nil, fmt.Errorf("unexpected PreResumeSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PreResumeSessionCreate) createSpec() (*PreResumeSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PreResumeSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(preresumesession.Table, sqlgraph.NewFieldSpec(preresumesession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(preresumesession.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.CandidateID(); ok {
		_spec.SetField(preresumesession.FieldCandidateID, field.TypeString, value)
		_node.CandidateID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(preresumesession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(preresumesession.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.FollowupsSent(); ok {
		_spec.SetField(preresumesession.FieldFollowupsSent, field.TypeInt, value)
		_node.FollowupsSent = value
	}
	if value, ok := _c.mutation.Turns(); ok {
		_spec.SetField(preresumesession.FieldTurns, field.TypeInt, value)
		_node.Turns = value
	}
	if value, ok := _c.mutation.LastIntent(); ok {
		_spec.SetField(preresumesession.FieldLastIntent, field.TypeString, value)
		_node.LastIntent = value
	}
	if value, ok := _c.mutation.ResumeLinks(); ok {
		_spec.SetField(preresumesession.FieldResumeLinks, field.TypeJSON, value)
		_node.ResumeLinks = value
	}
	if value, ok := _c.mutation.NextFollowupAt(); ok {
		_spec.SetField(preresumesession.FieldNextFollowupAt, field.TypeTime, value)
		_node.NextFollowupAt = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(preresumesession.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(preresumesession.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(preresumesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(preresumesession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   preresumesession.ConversationTable,
			Columns: []string{preresumesession.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversationID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   preresumesession.EventsTable,
			Columns: []string{preresumesession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(preresumeevent.FieldID, field.TypeInt),
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
//	client.PreResumeSession.Create().
//		SetConversationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PreResumeSessionUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *PreResumeSessionCreate) OnConflict(opts ...sql.ConflictOption) *PreResumeSessionUpsertOne {
	_c.conflict = opts
	return &PreResumeSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PreResumeSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PreResumeSessionCreate) OnConflictColumns(columns ...string) *PreResumeSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PreResumeSessionUpsertOne{
		create: _c,
	}
}

type (
	// PreResumeSessionUpsertOne is the builder for "upsert"-ing
	//  one PreResumeSession node.
	PreResumeSessionUpsertOne struct {
		create *PreResumeSessionCreate
	}

	// PreResumeSessionUpsert is the "OnConflict" setter.
	PreResumeSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetConversationID sets the "conversation_id" field.
func (u *PreResumeSessionUpsert) SetConversationID(v string) *PreResumeSessionUpsert {
	u.Set(preresumesession.FieldConversationID, v)
	return u
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *PreResumeSessionUpsert) UpdateConversationID() *PreResumeSessionUpsert {
	u.SetExcluded(preresumesession.FieldConversationID)
	return u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *PreResumeSessionUpsert) ClearConversationID() *PreResumeSessionUpsert {
	u.SetNull(preresumesession.FieldConversationID)
	return u
}

// SetJobID sets the "job_id" field.
func (u *PreResumeSessionUpsert) SetJobID(v string) *PreResumeSessionUpsert {
	u.Set(preresumesession.FieldJobID, v)
	return u
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *PreResumeSessionUpsert) UpdateJobID() *PreResumeSessionUpsert {
	u.SetExcluded(preresumesession.FieldJobID)
	return u
}

// ClearJobID clears the value of the "job_id" field.
func (u *PreResumeSessionUpsert) ClearJobID() *PreResumeSessionUpsert {
	u.SetNull(preresumesession.FieldJobID)
	return u
}

// SetCandidateID sets the "candidate_id" field.
func (u *PreResumeSessionUpsert) SetCandidateID(v string) *PreResumeSessionUpsert {
	u.Set(preresumesession.FieldCandidateID, v)
	return u
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *PreResumeSessionUpsert) UpdateCandidateID() *PreResumeSessionUpsert {
	u.SetExcluded(preresumesession.FieldCandidateID)
	return u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (u *PreResumeSessionUpsert) ClearCandidateID() *PreResumeSessionUpsert {
	u.SetNull(preresumesession.FieldCandidateID)
	return u
}

// SetStatus sets the "status" field.
func (u *PreResumeSessionUpsert) SetStatus(v preresumesession.Status) *PreResumeSessionUpsert {
	u.Set(preresumesession.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PreResumeSessionUpsert) UpdateStatus() *PreResumeSessionUpsert {
	u.SetExcluded(preresumesession.FieldStatus)
	return u
}

// SetLanguage sets the "language" field.
func (u *PreResumeSessionUpsert) SetLanguage(v string) *PreResumeSessionUpsert {
	u.Set(preresumesession.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *PreResumeSessionUpsert) UpdateLanguage() *PreResumeSessionUpsert {
	u.SetExcluded(preresumesession.FieldLanguage)
	return u
}

// SetFollowupsSent sets the "followups_sent" field.
func (u *PreResumeSessionUpsert) SetFollowupsSent(v int) *PreResumeSessionUpsert {
	u.Set(preresumesession.FieldFollowupsSent, v)
	return u
}

// UpdateFollowupsSent sets the "followups_sent" field to the value that was provided on create.
func (u *PreResumeSessionUpsert) UpdateFollowupsSent() *PreResumeSessionUpsert {
	u.SetExcluded(preresumesession.FieldFollowupsSent)
	return u
}

// AddFollowupsSent adds v to the "followups_sent" field.
func (u *PreResumeSessionUpsert) AddFollowupsSent(v int) *PreResumeSessionUpsert {
	u.Add(preresumesession.FieldFollowupsSent, v)
	return u
}

// SetTurns sets the "turns" field.
func (u *PreResumeSessionUpsert) SetTurns(v int) *PreResumeSessionUpsert {
	u.Set(preresumesession.FieldTurns, v)
	return u
}

// UpdateTurns sets the "turns" field to the value that was provided on create.
func (u *PreResumeSessionUpsert) UpdateTurns() *PreResumeSessionUpsert {
	u.SetExcluded(preresumesession.FieldTurns)
	return u
}

// AddTurns adds v to the "turns" field.
func (u *PreResumeSessionUpsert) AddTurns(v int) *PreResumeSessionUpsert {
	u.Add(preresumesession.FieldTurns, v)
	return u
}

// SetLastIntent sets the "last_intent" field.
func (u *PreResumeSessionUpsert) SetLastIntent(v string) *PreResumeSessionUpsert {
	u.Set(preresumesession.FieldLastIntent, v)
	return u
}

// UpdateLastIntent sets the "last_intent" field to the value that was provided on create.
func (u *PreResumeSessionUpsert) UpdateLastIntent() *PreResumeSessionUpsert {
	u.SetExcluded(preresumesession.FieldLastIntent)
	return u
}

// ClearLastIntent clears the value of the "last_intent" field.
func (u *PreResumeSessionUpsert) ClearLastIntent() *PreResumeSessionUpsert {
	u.SetNull(preresumesession.FieldLastIntent)
	return u
}

// SetResumeLinks sets the "resume_links" field.
func (u *PreResumeSessionUpsert) SetResumeLinks(v []string) *PreResumeSessionUpsert {
	u.Set(preresumesession.FieldResumeLinks, v)
	return u
}

// UpdateResumeLinks sets the "resume_links" field to the value that was provided on create.
func (u *PreResumeSessionUpsert) UpdateResumeLinks() *PreResumeSessionUpsert {
	u.SetExcluded(preresumesession.FieldResumeLinks)
	return u
}

// ClearResumeLinks clears the value of the "resume_links" field.
func (u *PreResumeSessionUpsert) ClearResumeLinks() *PreResumeSessionUpsert {
	u.SetNull(preresumesession.FieldResumeLinks)
	return u
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (u *PreResumeSessionUpsert) SetNextFollowupAt(v time.Time) *PreResumeSessionUpsert {
	u.Set(preresumesession.FieldNextFollowupAt, v)
	return u
}

// UpdateNextFollowupAt sets the "next_followup_at" field to the value that was provided on create.
func (u *PreResumeSessionUpsert) UpdateNextFollowupAt() *PreResumeSessionUpsert {
	u.SetExcluded(preresumesession.FieldNextFollowupAt)
	return u
}

// ClearNextFollowupAt clears the value of the "next_followup_at" field.
func (u *PreResumeSessionUpsert) ClearNextFollowupAt() *PreResumeSessionUpsert {
	u.SetNull(preresumesession.FieldNextFollowupAt)
	return u
}

// SetState sets the "state" field.
func (u *PreResumeSessionUpsert) SetState(v map[string]interface{}) *PreResumeSessionUpsert {
	u.Set(preresumesession.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *PreResumeSessionUpsert) UpdateState() *PreResumeSessionUpsert {
	u.SetExcluded(preresumesession.FieldState)
	return u
}

// ClearState clears the value of the "state" field.
func (u *PreResumeSessionUpsert) ClearState() *PreResumeSessionUpsert {
	u.SetNull(preresumesession.FieldState)
	return u
}

// SetLastError sets the "last_error" field.
func (u *PreResumeSessionUpsert) SetLastError(v string) *PreResumeSessionUpsert {
	u.Set(preresumesession.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *PreResumeSessionUpsert) UpdateLastError() *PreResumeSessionUpsert {
	u.SetExcluded(preresumesession.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *PreResumeSessionUpsert) ClearLastError() *PreResumeSessionUpsert {
	u.SetNull(preresumesession.FieldLastError)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PreResumeSessionUpsert) SetUpdatedAt(v time.Time) *PreResumeSessionUpsert {
	u.Set(preresumesession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PreResumeSessionUpsert) UpdateUpdatedAt() *PreResumeSessionUpsert {
	u.SetExcluded(preresumesession.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PreResumeSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(preresumesession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PreResumeSessionUpsertOne) UpdateNewValues() *PreResumeSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(preresumesession.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(preresumesession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PreResumeSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PreResumeSessionUpsertOne) Ignore() *PreResumeSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PreResumeSessionUpsertOne) DoNothing() *PreResumeSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PreResumeSessionCreate.OnConflict
// documentation for more info.
func (u *PreResumeSessionUpsertOne) Update(set func(*PreResumeSessionUpsert)) *PreResumeSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PreResumeSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *PreResumeSessionUpsertOne) SetConversationID(v string) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *PreResumeSessionUpsertOne) UpdateConversationID() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateConversationID()
	})
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *PreResumeSessionUpsertOne) ClearConversationID() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearConversationID()
	})
}

// SetJobID sets the "job_id" field.
func (u *PreResumeSessionUpsertOne) SetJobID(v string) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *PreResumeSessionUpsertOne) UpdateJobID() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *PreResumeSessionUpsertOne) ClearJobID() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearJobID()
	})
}

// SetCandidateID sets the "candidate_id" field.
func (u *PreResumeSessionUpsertOne) SetCandidateID(v string) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetCandidateID(v)
	})
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *PreResumeSessionUpsertOne) UpdateCandidateID() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateCandidateID()
	})
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (u *PreResumeSessionUpsertOne) ClearCandidateID() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearCandidateID()
	})
}

// SetStatus sets the "status" field.
func (u *PreResumeSessionUpsertOne) SetStatus(v preresumesession.Status) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PreResumeSessionUpsertOne) UpdateStatus() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetLanguage sets the "language" field.
func (u *PreResumeSessionUpsertOne) SetLanguage(v string) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *PreResumeSessionUpsertOne) UpdateLanguage() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateLanguage()
	})
}

// SetFollowupsSent sets the "followups_sent" field.
func (u *PreResumeSessionUpsertOne) SetFollowupsSent(v int) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetFollowupsSent(v)
	})
}

// AddFollowupsSent adds v to the "followups_sent" field.
func (u *PreResumeSessionUpsertOne) AddFollowupsSent(v int) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.AddFollowupsSent(v)
	})
}

// UpdateFollowupsSent sets the "followups_sent" field to the value that was provided on create.
func (u *PreResumeSessionUpsertOne) UpdateFollowupsSent() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateFollowupsSent()
	})
}

// SetTurns sets the "turns" field.
func (u *PreResumeSessionUpsertOne) SetTurns(v int) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetTurns(v)
	})
}

// AddTurns adds v to the "turns" field.
func (u *PreResumeSessionUpsertOne) AddTurns(v int) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.AddTurns(v)
	})
}

// UpdateTurns sets the "turns" field to the value that was provided on create.
func (u *PreResumeSessionUpsertOne) UpdateTurns() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateTurns()
	})
}

// SetLastIntent sets the "last_intent" field.
func (u *PreResumeSessionUpsertOne) SetLastIntent(v string) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetLastIntent(v)
	})
}

// UpdateLastIntent sets the "last_intent" field to the value that was provided on create.
func (u *PreResumeSessionUpsertOne) UpdateLastIntent() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateLastIntent()
	})
}

// ClearLastIntent clears the value of the "last_intent" field.
func (u *PreResumeSessionUpsertOne) ClearLastIntent() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearLastIntent()
	})
}

// SetResumeLinks sets the "resume_links" field.
func (u *PreResumeSessionUpsertOne) SetResumeLinks(v []string) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetResumeLinks(v)
	})
}

// UpdateResumeLinks sets the "resume_links" field to the value that was provided on create.
func (u *PreResumeSessionUpsertOne) UpdateResumeLinks() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateResumeLinks()
	})
}

// ClearResumeLinks clears the value of the "resume_links" field.
func (u *PreResumeSessionUpsertOne) ClearResumeLinks() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearResumeLinks()
	})
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (u *PreResumeSessionUpsertOne) SetNextFollowupAt(v time.Time) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetNextFollowupAt(v)
	})
}

// UpdateNextFollowupAt sets the "next_followup_at" field to the value that was provided on create.
func (u *PreResumeSessionUpsertOne) UpdateNextFollowupAt() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateNextFollowupAt()
	})
}

// ClearNextFollowupAt clears the value of the "next_followup_at" field.
func (u *PreResumeSessionUpsertOne) ClearNextFollowupAt() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearNextFollowupAt()
	})
}

// SetState sets the "state" field.
func (u *PreResumeSessionUpsertOne) SetState(v map[string]interface{}) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *PreResumeSessionUpsertOne) UpdateState() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *PreResumeSessionUpsertOne) ClearState() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearState()
	})
}

// SetLastError sets the "last_error" field.
func (u *PreResumeSessionUpsertOne) SetLastError(v string) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *PreResumeSessionUpsertOne) UpdateLastError() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *PreResumeSessionUpsertOne) ClearLastError() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearLastError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PreResumeSessionUpsertOne) SetUpdatedAt(v time.Time) *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PreResumeSessionUpsertOne) UpdateUpdatedAt() *PreResumeSessionUpsertOne {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PreResumeSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PreResumeSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PreResumeSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PreResumeSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PreResumeSessionUpsertOne.ID is not supported by MySQL driver. Use PreResumeSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PreResumeSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PreResumeSessionCreateBulk is the builder for creating many PreResumeSession entities in bulk.
type PreResumeSessionCreateBulk struct {
	config
	err      error
	builders []*PreResumeSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the PreResumeSession entities in the database.
func (_c *PreResumeSessionCreateBulk) Save(ctx context.Context) ([]*PreResumeSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PreResumeSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PreResumeSessionMutation)
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
func (_c *PreResumeSessionCreateBulk) SaveX(ctx context.Context) []*PreResumeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreResumeSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreResumeSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PreResumeSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PreResumeSessionUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *PreResumeSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PreResumeSessionUpsertBulk {
	_c.conflict = opts
	return &PreResumeSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PreResumeSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PreResumeSessionCreateBulk) OnConflictColumns(columns ...string) *PreResumeSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PreResumeSessionUpsertBulk{
		create: _c,
	}
}

// PreResumeSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of PreResumeSession nodes.
type PreResumeSessionUpsertBulk struct {
	create *PreResumeSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PreResumeSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(preresumesession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PreResumeSessionUpsertBulk) UpdateNewValues() *PreResumeSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(preresumesession.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(preresumesession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PreResumeSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PreResumeSessionUpsertBulk) Ignore() *PreResumeSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PreResumeSessionUpsertBulk) DoNothing() *PreResumeSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PreResumeSessionCreateBulk.OnConflict
// documentation for more info.
func (u *PreResumeSessionUpsertBulk) Update(set func(*PreResumeSessionUpsert)) *PreResumeSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PreResumeSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *PreResumeSessionUpsertBulk) SetConversationID(v string) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *PreResumeSessionUpsertBulk) UpdateConversationID() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateConversationID()
	})
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *PreResumeSessionUpsertBulk) ClearConversationID() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearConversationID()
	})
}

// SetJobID sets the "job_id" field.
func (u *PreResumeSessionUpsertBulk) SetJobID(v string) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *PreResumeSessionUpsertBulk) UpdateJobID() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *PreResumeSessionUpsertBulk) ClearJobID() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearJobID()
	})
}

// SetCandidateID sets the "candidate_id" field.
func (u *PreResumeSessionUpsertBulk) SetCandidateID(v string) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetCandidateID(v)
	})
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *PreResumeSessionUpsertBulk) UpdateCandidateID() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateCandidateID()
	})
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (u *PreResumeSessionUpsertBulk) ClearCandidateID() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearCandidateID()
	})
}

// SetStatus sets the "status" field.
func (u *PreResumeSessionUpsertBulk) SetStatus(v preresumesession.Status) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PreResumeSessionUpsertBulk) UpdateStatus() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetLanguage sets the "language" field.
func (u *PreResumeSessionUpsertBulk) SetLanguage(v string) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *PreResumeSessionUpsertBulk) UpdateLanguage() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateLanguage()
	})
}

// SetFollowupsSent sets the "followups_sent" field.
func (u *PreResumeSessionUpsertBulk) SetFollowupsSent(v int) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetFollowupsSent(v)
	})
}

// AddFollowupsSent adds v to the "followups_sent" field.
func (u *PreResumeSessionUpsertBulk) AddFollowupsSent(v int) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.AddFollowupsSent(v)
	})
}

// UpdateFollowupsSent sets the "followups_sent" field to the value that was provided on create.
func (u *PreResumeSessionUpsertBulk) UpdateFollowupsSent() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateFollowupsSent()
	})
}

// SetTurns sets the "turns" field.
func (u *PreResumeSessionUpsertBulk) SetTurns(v int) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetTurns(v)
	})
}

// AddTurns adds v to the "turns" field.
func (u *PreResumeSessionUpsertBulk) AddTurns(v int) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.AddTurns(v)
	})
}

// UpdateTurns sets the "turns" field to the value that was provided on create.
func (u *PreResumeSessionUpsertBulk) UpdateTurns() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateTurns()
	})
}

// SetLastIntent sets the "last_intent" field.
func (u *PreResumeSessionUpsertBulk) SetLastIntent(v string) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetLastIntent(v)
	})
}

// UpdateLastIntent sets the "last_intent" field to the value that was provided on create.
func (u *PreResumeSessionUpsertBulk) UpdateLastIntent() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateLastIntent()
	})
}

// ClearLastIntent clears the value of the "last_intent" field.
func (u *PreResumeSessionUpsertBulk) ClearLastIntent() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearLastIntent()
	})
}

// SetResumeLinks sets the "resume_links" field.
func (u *PreResumeSessionUpsertBulk) SetResumeLinks(v []string) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetResumeLinks(v)
	})
}

// UpdateResumeLinks sets the "resume_links" field to the value that was provided on create.
func (u *PreResumeSessionUpsertBulk) UpdateResumeLinks() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateResumeLinks()
	})
}

// ClearResumeLinks clears the value of the "resume_links" field.
func (u *PreResumeSessionUpsertBulk) ClearResumeLinks() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearResumeLinks()
	})
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (u *PreResumeSessionUpsertBulk) SetNextFollowupAt(v time.Time) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetNextFollowupAt(v)
	})
}

// UpdateNextFollowupAt sets the "next_followup_at" field to the value that was provided on create.
func (u *PreResumeSessionUpsertBulk) UpdateNextFollowupAt() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateNextFollowupAt()
	})
}

// ClearNextFollowupAt clears the value of the "next_followup_at" field.
func (u *PreResumeSessionUpsertBulk) ClearNextFollowupAt() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearNextFollowupAt()
	})
}

// SetState sets the "state" field.
func (u *PreResumeSessionUpsertBulk) SetState(v map[string]interface{}) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *PreResumeSessionUpsertBulk) UpdateState() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *PreResumeSessionUpsertBulk) ClearState() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearState()
	})
}

// SetLastError sets the "last_error" field.
func (u *PreResumeSessionUpsertBulk) SetLastError(v string) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *PreResumeSessionUpsertBulk) UpdateLastError() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *PreResumeSessionUpsertBulk) ClearLastError() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.ClearLastError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PreResumeSessionUpsertBulk) SetUpdatedAt(v time.Time) *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PreResumeSessionUpsertBulk) UpdateUpdatedAt() *PreResumeSessionUpsertBulk {
	return u.Update(func(s *PreResumeSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PreResumeSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PreResumeSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PreResumeSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PreResumeSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
