// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hireflow/scout/ent/conversation"
	"github.com/hireflow/scout/ent/predicate"
	"github.com/hireflow/scout/ent/preresumeevent"
	"github.com/hireflow/scout/ent/preresumesession"
)

// PreResumeSessionUpdate is the builder for updating PreResumeSession entities.
type PreResumeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PreResumeSessionMutation
}

// Where appends a list predicates to the PreResumeSessionUpdate builder.
func (_u *PreResumeSessionUpdate) Where(ps ...predicate.PreResumeSession) *PreResumeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *PreResumeSessionUpdate) SetConversationID(v string) *PreResumeSessionUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *PreResumeSessionUpdate) SetNillableConversationID(v *string) *PreResumeSessionUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *PreResumeSessionUpdate) ClearConversationID() *PreResumeSessionUpdate {
	_u.mutation.ClearConversationID()
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *PreResumeSessionUpdate) SetJobID(v string) *PreResumeSessionUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *PreResumeSessionUpdate) SetNillableJobID(v *string) *PreResumeSessionUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *PreResumeSessionUpdate) ClearJobID() *PreResumeSessionUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *PreResumeSessionUpdate) SetCandidateID(v string) *PreResumeSessionUpdate {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *PreResumeSessionUpdate) SetNillableCandidateID(v *string) *PreResumeSessionUpdate {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *PreResumeSessionUpdate) ClearCandidateID() *PreResumeSessionUpdate {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PreResumeSessionUpdate) SetStatus(v preresumesession.Status) *PreResumeSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PreResumeSessionUpdate) SetNillableStatus(v *preresumesession.Status) *PreResumeSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *PreResumeSessionUpdate) SetLanguage(v string) *PreResumeSessionUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *PreResumeSessionUpdate) SetNillableLanguage(v *string) *PreResumeSessionUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetFollowupsSent sets the "followups_sent" field.
func (_u *PreResumeSessionUpdate) SetFollowupsSent(v int) *PreResumeSessionUpdate {
	_u.mutation.ResetFollowupsSent()
	_u.mutation.SetFollowupsSent(v)
	return _u
}

// SetNillableFollowupsSent sets the "followups_sent" field if the given value is not nil.
func (_u *PreResumeSessionUpdate) SetNillableFollowupsSent(v *int) *PreResumeSessionUpdate {
	if v != nil {
		_u.SetFollowupsSent(*v)
	}
	return _u
}

// AddFollowupsSent adds value to the "followups_sent" field.
func (_u *PreResumeSessionUpdate) AddFollowupsSent(v int) *PreResumeSessionUpdate {
	_u.mutation.AddFollowupsSent(v)
	return _u
}

// SetTurns sets the "turns" field.
func (_u *PreResumeSessionUpdate) SetTurns(v int) *PreResumeSessionUpdate {
	_u.mutation.ResetTurns()
	_u.mutation.SetTurns(v)
	return _u
}

// SetNillableTurns sets the "turns" field if the given value is not nil.
func (_u *PreResumeSessionUpdate) SetNillableTurns(v *int) *PreResumeSessionUpdate {
	if v != nil {
		_u.SetTurns(*v)
	}
	return _u
}

// AddTurns adds value to the "turns" field.
func (_u *PreResumeSessionUpdate) AddTurns(v int) *PreResumeSessionUpdate {
	_u.mutation.AddTurns(v)
	return _u
}

// SetLastIntent sets the "last_intent" field.
func (_u *PreResumeSessionUpdate) SetLastIntent(v string) *PreResumeSessionUpdate {
	_u.mutation.SetLastIntent(v)
	return _u
}

// SetNillableLastIntent sets the "last_intent" field if the given value is not nil.
func (_u *PreResumeSessionUpdate) SetNillableLastIntent(v *string) *PreResumeSessionUpdate {
	if v != nil {
		_u.SetLastIntent(*v)
	}
	return _u
}

// ClearLastIntent clears the value of the "last_intent" field.
func (_u *PreResumeSessionUpdate) ClearLastIntent() *PreResumeSessionUpdate {
	_u.mutation.ClearLastIntent()
	return _u
}

// SetResumeLinks sets the "resume_links" field.
func (_u *PreResumeSessionUpdate) SetResumeLinks(v []string) *PreResumeSessionUpdate {
	_u.mutation.SetResumeLinks(v)
	return _u
}

// AppendResumeLinks appends value to the "resume_links" field.
func (_u *PreResumeSessionUpdate) AppendResumeLinks(v []string) *PreResumeSessionUpdate {
	_u.mutation.AppendResumeLinks(v)
	return _u
}

// ClearResumeLinks clears the value of the "resume_links" field.
func (_u *PreResumeSessionUpdate) ClearResumeLinks() *PreResumeSessionUpdate {
	_u.mutation.ClearResumeLinks()
	return _u
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (_u *PreResumeSessionUpdate) SetNextFollowupAt(v time.Time) *PreResumeSessionUpdate {
	_u.mutation.SetNextFollowupAt(v)
	return _u
}

// SetNillableNextFollowupAt sets the "next_followup_at" field if the given value is not nil.
func (_u *PreResumeSessionUpdate) SetNillableNextFollowupAt(v *time.Time) *PreResumeSessionUpdate {
	if v != nil {
		_u.SetNextFollowupAt(*v)
	}
	return _u
}

// ClearNextFollowupAt clears the value of the "next_followup_at" field.
func (_u *PreResumeSessionUpdate) ClearNextFollowupAt() *PreResumeSessionUpdate {
	_u.mutation.ClearNextFollowupAt()
	return _u
}

// SetState sets the "state" field.
func (_u *PreResumeSessionUpdate) SetState(v map[string]interface{}) *PreResumeSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *PreResumeSessionUpdate) ClearState() *PreResumeSessionUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PreResumeSessionUpdate) SetLastError(v string) *PreResumeSessionUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PreResumeSessionUpdate) SetNillableLastError(v *string) *PreResumeSessionUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PreResumeSessionUpdate) ClearLastError() *PreResumeSessionUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PreResumeSessionUpdate) SetUpdatedAt(v time.Time) *PreResumeSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_u *PreResumeSessionUpdate) SetConversation(v *Conversation) *PreResumeSessionUpdate {
	return _u.SetConversationID(v.ID)
}

// AddEventIDs adds the "events" edge to the PreResumeEvent entity by IDs.
func (_u *PreResumeSessionUpdate) AddEventIDs(ids ...int) *PreResumeSessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the PreResumeEvent entity.
func (_u *PreResumeSessionUpdate) AddEvents(v ...*PreResumeEvent) *PreResumeSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the PreResumeSessionMutation object of the builder.
func (_u *PreResumeSessionUpdate) Mutation() *PreResumeSessionMutation {
	return _u.mutation
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (_u *PreResumeSessionUpdate) ClearConversation() *PreResumeSessionUpdate {
	_u.mutation.ClearConversation()
	return _u
}

// ClearEvents clears all "events" edges to the PreResumeEvent entity.
func (_u *PreResumeSessionUpdate) ClearEvents() *PreResumeSessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to PreResumeEvent entities by IDs.
func (_u *PreResumeSessionUpdate) RemoveEventIDs(ids ...int) *PreResumeSessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to PreResumeEvent entities.
func (_u *PreResumeSessionUpdate) RemoveEvents(v ...*PreResumeEvent) *PreResumeSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PreResumeSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreResumeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PreResumeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreResumeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PreResumeSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := preresumesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PreResumeSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := preresumesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PreResumeSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PreResumeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(preresumesession.Table, preresumesession.Columns, sqlgraph.NewFieldSpec(preresumesession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(preresumesession.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(preresumesession.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateID(); ok {
		_spec.SetField(preresumesession.FieldCandidateID, field.TypeString, value)
	}
	if _u.mutation.CandidateIDCleared() {
		_spec.ClearField(preresumesession.FieldCandidateID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(preresumesession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(preresumesession.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.FollowupsSent(); ok {
		_spec.SetField(preresumesession.FieldFollowupsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFollowupsSent(); ok {
		_spec.AddField(preresumesession.FieldFollowupsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(preresumesession.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurns(); ok {
		_spec.AddField(preresumesession.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastIntent(); ok {
		_spec.SetField(preresumesession.FieldLastIntent, field.TypeString, value)
	}
	if _u.mutation.LastIntentCleared() {
		_spec.ClearField(preresumesession.FieldLastIntent, field.TypeString)
	}
	if value, ok := _u.mutation.ResumeLinks(); ok {
		_spec.SetField(preresumesession.FieldResumeLinks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResumeLinks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, preresumesession.FieldResumeLinks, value)
		})
	}
	if _u.mutation.ResumeLinksCleared() {
		_spec.ClearField(preresumesession.FieldResumeLinks, field.TypeJSON)
	}
	if value, ok := _u.mutation.NextFollowupAt(); ok {
		_spec.SetField(preresumesession.FieldNextFollowupAt, field.TypeTime, value)
	}
	if _u.mutation.NextFollowupAtCleared() {
		_spec.ClearField(preresumesession.FieldNextFollowupAt, field.TypeTime)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(preresumesession.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(preresumesession.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(preresumesession.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(preresumesession.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(preresumesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConversationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preresumesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PreResumeSessionUpdateOne is the builder for updating a single PreResumeSession entity.
type PreResumeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PreResumeSessionMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *PreResumeSessionUpdateOne) SetConversationID(v string) *PreResumeSessionUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *PreResumeSessionUpdateOne) SetNillableConversationID(v *string) *PreResumeSessionUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *PreResumeSessionUpdateOne) ClearConversationID() *PreResumeSessionUpdateOne {
	_u.mutation.ClearConversationID()
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *PreResumeSessionUpdateOne) SetJobID(v string) *PreResumeSessionUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *PreResumeSessionUpdateOne) SetNillableJobID(v *string) *PreResumeSessionUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *PreResumeSessionUpdateOne) ClearJobID() *PreResumeSessionUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *PreResumeSessionUpdateOne) SetCandidateID(v string) *PreResumeSessionUpdateOne {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *PreResumeSessionUpdateOne) SetNillableCandidateID(v *string) *PreResumeSessionUpdateOne {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *PreResumeSessionUpdateOne) ClearCandidateID() *PreResumeSessionUpdateOne {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PreResumeSessionUpdateOne) SetStatus(v preresumesession.Status) *PreResumeSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PreResumeSessionUpdateOne) SetNillableStatus(v *preresumesession.Status) *PreResumeSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *PreResumeSessionUpdateOne) SetLanguage(v string) *PreResumeSessionUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *PreResumeSessionUpdateOne) SetNillableLanguage(v *string) *PreResumeSessionUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetFollowupsSent sets the "followups_sent" field.
func (_u *PreResumeSessionUpdateOne) SetFollowupsSent(v int) *PreResumeSessionUpdateOne {
	_u.mutation.ResetFollowupsSent()
	_u.mutation.SetFollowupsSent(v)
	return _u
}

// SetNillableFollowupsSent sets the "followups_sent" field if the given value is not nil.
func (_u *PreResumeSessionUpdateOne) SetNillableFollowupsSent(v *int) *PreResumeSessionUpdateOne {
	if v != nil {
		_u.SetFollowupsSent(*v)
	}
	return _u
}

// AddFollowupsSent adds value to the "followups_sent" field.
func (_u *PreResumeSessionUpdateOne) AddFollowupsSent(v int) *PreResumeSessionUpdateOne {
	_u.mutation.AddFollowupsSent(v)
	return _u
}

// SetTurns sets the "turns" field.
func (_u *PreResumeSessionUpdateOne) SetTurns(v int) *PreResumeSessionUpdateOne {
	_u.mutation.ResetTurns()
	_u.mutation.SetTurns(v)
	return _u
}

// SetNillableTurns sets the "turns" field if the given value is not nil.
func (_u *PreResumeSessionUpdateOne) SetNillableTurns(v *int) *PreResumeSessionUpdateOne {
	if v != nil {
		_u.SetTurns(*v)
	}
	return _u
}

// AddTurns adds value to the "turns" field.
func (_u *PreResumeSessionUpdateOne) AddTurns(v int) *PreResumeSessionUpdateOne {
	_u.mutation.AddTurns(v)
	return _u
}

// SetLastIntent sets the "last_intent" field.
func (_u *PreResumeSessionUpdateOne) SetLastIntent(v string) *PreResumeSessionUpdateOne {
	_u.mutation.SetLastIntent(v)
	return _u
}

// SetNillableLastIntent sets the "last_intent" field if the given value is not nil.
func (_u *PreResumeSessionUpdateOne) SetNillableLastIntent(v *string) *PreResumeSessionUpdateOne {
	if v != nil {
		_u.SetLastIntent(*v)
	}
	return _u
}

// ClearLastIntent clears the value of the "last_intent" field.
func (_u *PreResumeSessionUpdateOne) ClearLastIntent() *PreResumeSessionUpdateOne {
	_u.mutation.ClearLastIntent()
	return _u
}

// SetResumeLinks sets the "resume_links" field.
func (_u *PreResumeSessionUpdateOne) SetResumeLinks(v []string) *PreResumeSessionUpdateOne {
	_u.mutation.SetResumeLinks(v)
	return _u
}

// AppendResumeLinks appends value to the "resume_links" field.
func (_u *PreResumeSessionUpdateOne) AppendResumeLinks(v []string) *PreResumeSessionUpdateOne {
	_u.mutation.AppendResumeLinks(v)
	return _u
}

// ClearResumeLinks clears the value of the "resume_links" field.
func (_u *PreResumeSessionUpdateOne) ClearResumeLinks() *PreResumeSessionUpdateOne {
	_u.mutation.ClearResumeLinks()
	return _u
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (_u *PreResumeSessionUpdateOne) SetNextFollowupAt(v time.Time) *PreResumeSessionUpdateOne {
	_u.mutation.SetNextFollowupAt(v)
	return _u
}

// SetNillableNextFollowupAt sets the "next_followup_at" field if the given value is not nil.
func (_u *PreResumeSessionUpdateOne) SetNillableNextFollowupAt(v *time.Time) *PreResumeSessionUpdateOne {
	if v != nil {
		_u.SetNextFollowupAt(*v)
	}
	return _u
}

// ClearNextFollowupAt clears the value of the "next_followup_at" field.
func (_u *PreResumeSessionUpdateOne) ClearNextFollowupAt() *PreResumeSessionUpdateOne {
	_u.mutation.ClearNextFollowupAt()
	return _u
}

// SetState sets the "state" field.
func (_u *PreResumeSessionUpdateOne) SetState(v map[string]interface{}) *PreResumeSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *PreResumeSessionUpdateOne) ClearState() *PreResumeSessionUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PreResumeSessionUpdateOne) SetLastError(v string) *PreResumeSessionUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PreResumeSessionUpdateOne) SetNillableLastError(v *string) *PreResumeSessionUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PreResumeSessionUpdateOne) ClearLastError() *PreResumeSessionUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PreResumeSessionUpdateOne) SetUpdatedAt(v time.Time) *PreResumeSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_u *PreResumeSessionUpdateOne) SetConversation(v *Conversation) *PreResumeSessionUpdateOne {
	return _u.SetConversationID(v.ID)
}

// AddEventIDs adds the "events" edge to the PreResumeEvent entity by IDs.
func (_u *PreResumeSessionUpdateOne) AddEventIDs(ids ...int) *PreResumeSessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the PreResumeEvent entity.
func (_u *PreResumeSessionUpdateOne) AddEvents(v ...*PreResumeEvent) *PreResumeSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the PreResumeSessionMutation object of the builder.
func (_u *PreResumeSessionUpdateOne) Mutation() *PreResumeSessionMutation {
	return _u.mutation
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (_u *PreResumeSessionUpdateOne) ClearConversation() *PreResumeSessionUpdateOne {
	_u.mutation.ClearConversation()
	return _u
}

// ClearEvents clears all "events" edges to the PreResumeEvent entity.
func (_u *PreResumeSessionUpdateOne) ClearEvents() *PreResumeSessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to PreResumeEvent entities by IDs.
func (_u *PreResumeSessionUpdateOne) RemoveEventIDs(ids ...int) *PreResumeSessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to PreResumeEvent entities.
func (_u *PreResumeSessionUpdateOne) RemoveEvents(v ...*PreResumeEvent) *PreResumeSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the PreResumeSessionUpdate builder.
func (_u *PreResumeSessionUpdateOne) Where(ps ...predicate.PreResumeSession) *PreResumeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PreResumeSessionUpdateOne) Select(field string, fields ...string) *PreResumeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PreResumeSession entity.
func (_u *PreResumeSessionUpdateOne) Save(ctx context.Context) (*PreResumeSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreResumeSessionUpdateOne) SaveX(ctx context.Context) *PreResumeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PreResumeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreResumeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PreResumeSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := preresumesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PreResumeSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := preresumesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PreResumeSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PreResumeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PreResumeSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(preresumesession.Table, preresumesession.Columns, sqlgraph.NewFieldSpec(preresumesession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PreResumeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, preresumesession.FieldID)
		for _, f := range fields {
			if !preresumesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != preresumesession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(preresumesession.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(preresumesession.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateID(); ok {
		_spec.SetField(preresumesession.FieldCandidateID, field.TypeString, value)
	}
	if _u.mutation.CandidateIDCleared() {
		_spec.ClearField(preresumesession.FieldCandidateID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(preresumesession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(preresumesession.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.FollowupsSent(); ok {
		_spec.SetField(preresumesession.FieldFollowupsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFollowupsSent(); ok {
		_spec.AddField(preresumesession.FieldFollowupsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(preresumesession.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurns(); ok {
		_spec.AddField(preresumesession.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastIntent(); ok {
		_spec.SetField(preresumesession.FieldLastIntent, field.TypeString, value)
	}
	if _u.mutation.LastIntentCleared() {
		_spec.ClearField(preresumesession.FieldLastIntent, field.TypeString)
	}
	if value, ok := _u.mutation.ResumeLinks(); ok {
		_spec.SetField(preresumesession.FieldResumeLinks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResumeLinks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, preresumesession.FieldResumeLinks, value)
		})
	}
	if _u.mutation.ResumeLinksCleared() {
		_spec.ClearField(preresumesession.FieldResumeLinks, field.TypeJSON)
	}
	if value, ok := _u.mutation.NextFollowupAt(); ok {
		_spec.SetField(preresumesession.FieldNextFollowupAt, field.TypeTime, value)
	}
	if _u.mutation.NextFollowupAtCleared() {
		_spec.ClearField(preresumesession.FieldNextFollowupAt, field.TypeTime)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(preresumesession.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(preresumesession.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(preresumesession.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(preresumesession.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(preresumesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConversationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PreResumeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preresumesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
