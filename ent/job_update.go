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
	"github.com/hireflow/scout/ent/candidatesignal"
	"github.com/hireflow/scout/ent/conversation"
	"github.com/hireflow/scout/ent/job"
	"github.com/hireflow/scout/ent/jobaccountassignment"
	"github.com/hireflow/scout/ent/jobstepprogress"
	"github.com/hireflow/scout/ent/match"
	"github.com/hireflow/scout/ent/outboundaction"
	"github.com/hireflow/scout/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *JobUpdate) SetTitle(v string) *JobUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTitle(v *string) *JobUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetJdText sets the "jd_text" field.
func (_u *JobUpdate) SetJdText(v string) *JobUpdate {
	_u.mutation.SetJdText(v)
	return _u
}

// SetNillableJdText sets the "jd_text" field if the given value is not nil.
func (_u *JobUpdate) SetNillableJdText(v *string) *JobUpdate {
	if v != nil {
		_u.SetJdText(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *JobUpdate) SetLocation(v string) *JobUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLocation(v *string) *JobUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *JobUpdate) ClearLocation() *JobUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetPreferredLanguages sets the "preferred_languages" field.
func (_u *JobUpdate) SetPreferredLanguages(v []string) *JobUpdate {
	_u.mutation.SetPreferredLanguages(v)
	return _u
}

// AppendPreferredLanguages appends value to the "preferred_languages" field.
func (_u *JobUpdate) AppendPreferredLanguages(v []string) *JobUpdate {
	_u.mutation.AppendPreferredLanguages(v)
	return _u
}

// ClearPreferredLanguages clears the value of the "preferred_languages" field.
func (_u *JobUpdate) ClearPreferredLanguages() *JobUpdate {
	_u.mutation.ClearPreferredLanguages()
	return _u
}

// SetSeniority sets the "seniority" field.
func (_u *JobUpdate) SetSeniority(v string) *JobUpdate {
	_u.mutation.SetSeniority(v)
	return _u
}

// SetNillableSeniority sets the "seniority" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSeniority(v *string) *JobUpdate {
	if v != nil {
		_u.SetSeniority(*v)
	}
	return _u
}

// ClearSeniority clears the value of the "seniority" field.
func (_u *JobUpdate) ClearSeniority() *JobUpdate {
	_u.mutation.ClearSeniority()
	return _u
}

// SetRoutingMode sets the "routing_mode" field.
func (_u *JobUpdate) SetRoutingMode(v job.RoutingMode) *JobUpdate {
	_u.mutation.SetRoutingMode(v)
	return _u
}

// SetNillableRoutingMode sets the "routing_mode" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRoutingMode(v *job.RoutingMode) *JobUpdate {
	if v != nil {
		_u.SetRoutingMode(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *JobUpdate) AddMatchIDs(ids ...string) *JobUpdate {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *JobUpdate) AddMatches(v ...*Match) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *JobUpdate) AddConversationIDs(ids ...string) *JobUpdate {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *JobUpdate) AddConversations(v ...*Conversation) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddOutboundActionIDs adds the "outbound_actions" edge to the OutboundAction entity by IDs.
func (_u *JobUpdate) AddOutboundActionIDs(ids ...string) *JobUpdate {
	_u.mutation.AddOutboundActionIDs(ids...)
	return _u
}

// AddOutboundActions adds the "outbound_actions" edges to the OutboundAction entity.
func (_u *JobUpdate) AddOutboundActions(v ...*OutboundAction) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutboundActionIDs(ids...)
}

// AddStepProgresIDs adds the "step_progress" edge to the JobStepProgress entity by IDs.
func (_u *JobUpdate) AddStepProgresIDs(ids ...int) *JobUpdate {
	_u.mutation.AddStepProgresIDs(ids...)
	return _u
}

// AddStepProgress adds the "step_progress" edges to the JobStepProgress entity.
func (_u *JobUpdate) AddStepProgress(v ...*JobStepProgress) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepProgresIDs(ids...)
}

// AddAccountAssignmentIDs adds the "account_assignments" edge to the JobAccountAssignment entity by IDs.
func (_u *JobUpdate) AddAccountAssignmentIDs(ids ...int) *JobUpdate {
	_u.mutation.AddAccountAssignmentIDs(ids...)
	return _u
}

// AddAccountAssignments adds the "account_assignments" edges to the JobAccountAssignment entity.
func (_u *JobUpdate) AddAccountAssignments(v ...*JobAccountAssignment) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAccountAssignmentIDs(ids...)
}

// AddSignalIDs adds the "signals" edge to the CandidateSignal entity by IDs.
func (_u *JobUpdate) AddSignalIDs(ids ...int) *JobUpdate {
	_u.mutation.AddSignalIDs(ids...)
	return _u
}

// AddSignals adds the "signals" edges to the CandidateSignal entity.
func (_u *JobUpdate) AddSignals(v ...*CandidateSignal) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSignalIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *JobUpdate) ClearMatches() *JobUpdate {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *JobUpdate) RemoveMatchIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *JobUpdate) RemoveMatches(v ...*Match) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *JobUpdate) ClearConversations() *JobUpdate {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *JobUpdate) RemoveConversationIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *JobUpdate) RemoveConversations(v ...*Conversation) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearOutboundActions clears all "outbound_actions" edges to the OutboundAction entity.
func (_u *JobUpdate) ClearOutboundActions() *JobUpdate {
	_u.mutation.ClearOutboundActions()
	return _u
}

// RemoveOutboundActionIDs removes the "outbound_actions" edge to OutboundAction entities by IDs.
func (_u *JobUpdate) RemoveOutboundActionIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveOutboundActionIDs(ids...)
	return _u
}

// RemoveOutboundActions removes "outbound_actions" edges to OutboundAction entities.
func (_u *JobUpdate) RemoveOutboundActions(v ...*OutboundAction) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutboundActionIDs(ids...)
}

// ClearStepProgress clears all "step_progress" edges to the JobStepProgress entity.
func (_u *JobUpdate) ClearStepProgress() *JobUpdate {
	_u.mutation.ClearStepProgress()
	return _u
}

// RemoveStepProgresIDs removes the "step_progress" edge to JobStepProgress entities by IDs.
func (_u *JobUpdate) RemoveStepProgresIDs(ids ...int) *JobUpdate {
	_u.mutation.RemoveStepProgresIDs(ids...)
	return _u
}

// RemoveStepProgress removes "step_progress" edges to JobStepProgress entities.
func (_u *JobUpdate) RemoveStepProgress(v ...*JobStepProgress) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepProgresIDs(ids...)
}

// ClearAccountAssignments clears all "account_assignments" edges to the JobAccountAssignment entity.
func (_u *JobUpdate) ClearAccountAssignments() *JobUpdate {
	_u.mutation.ClearAccountAssignments()
	return _u
}

// RemoveAccountAssignmentIDs removes the "account_assignments" edge to JobAccountAssignment entities by IDs.
func (_u *JobUpdate) RemoveAccountAssignmentIDs(ids ...int) *JobUpdate {
	_u.mutation.RemoveAccountAssignmentIDs(ids...)
	return _u
}

// RemoveAccountAssignments removes "account_assignments" edges to JobAccountAssignment entities.
func (_u *JobUpdate) RemoveAccountAssignments(v ...*JobAccountAssignment) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAccountAssignmentIDs(ids...)
}

// ClearSignals clears all "signals" edges to the CandidateSignal entity.
func (_u *JobUpdate) ClearSignals() *JobUpdate {
	_u.mutation.ClearSignals()
	return _u
}

// RemoveSignalIDs removes the "signals" edge to CandidateSignal entities by IDs.
func (_u *JobUpdate) RemoveSignalIDs(ids ...int) *JobUpdate {
	_u.mutation.RemoveSignalIDs(ids...)
	return _u
}

// RemoveSignals removes "signals" edges to CandidateSignal entities.
func (_u *JobUpdate) RemoveSignals(v ...*CandidateSignal) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSignalIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.RoutingMode(); ok {
		if err := job.RoutingModeValidator(v); err != nil {
			return &ValidationError{Name: "routing_mode", err: fmt.Errorf(`ent: validator failed for field "Job.routing_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.JdText(); ok {
		_spec.SetField(job.FieldJdText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(job.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(job.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.PreferredLanguages(); ok {
		_spec.SetField(job.FieldPreferredLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldPreferredLanguages, value)
		})
	}
	if _u.mutation.PreferredLanguagesCleared() {
		_spec.ClearField(job.FieldPreferredLanguages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Seniority(); ok {
		_spec.SetField(job.FieldSeniority, field.TypeString, value)
	}
	if _u.mutation.SeniorityCleared() {
		_spec.ClearField(job.FieldSeniority, field.TypeString)
	}
	if value, ok := _u.mutation.RoutingMode(); ok {
		_spec.SetField(job.FieldRoutingMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutboundActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutboundActionsIDs(); len(nodes) > 0 && !_u.mutation.OutboundActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutboundActionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepProgressCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepProgressIDs(); len(nodes) > 0 && !_u.mutation.StepProgressCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepProgressIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AccountAssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAccountAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AccountAssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountAssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SignalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSignalsIDs(); len(nodes) > 0 && !_u.mutation.SignalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SignalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetTitle sets the "title" field.
func (_u *JobUpdateOne) SetTitle(v string) *JobUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTitle(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetJdText sets the "jd_text" field.
func (_u *JobUpdateOne) SetJdText(v string) *JobUpdateOne {
	_u.mutation.SetJdText(v)
	return _u
}

// SetNillableJdText sets the "jd_text" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableJdText(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetJdText(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *JobUpdateOne) SetLocation(v string) *JobUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLocation(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *JobUpdateOne) ClearLocation() *JobUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetPreferredLanguages sets the "preferred_languages" field.
func (_u *JobUpdateOne) SetPreferredLanguages(v []string) *JobUpdateOne {
	_u.mutation.SetPreferredLanguages(v)
	return _u
}

// AppendPreferredLanguages appends value to the "preferred_languages" field.
func (_u *JobUpdateOne) AppendPreferredLanguages(v []string) *JobUpdateOne {
	_u.mutation.AppendPreferredLanguages(v)
	return _u
}

// ClearPreferredLanguages clears the value of the "preferred_languages" field.
func (_u *JobUpdateOne) ClearPreferredLanguages() *JobUpdateOne {
	_u.mutation.ClearPreferredLanguages()
	return _u
}

// SetSeniority sets the "seniority" field.
func (_u *JobUpdateOne) SetSeniority(v string) *JobUpdateOne {
	_u.mutation.SetSeniority(v)
	return _u
}

// SetNillableSeniority sets the "seniority" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSeniority(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSeniority(*v)
	}
	return _u
}

// ClearSeniority clears the value of the "seniority" field.
func (_u *JobUpdateOne) ClearSeniority() *JobUpdateOne {
	_u.mutation.ClearSeniority()
	return _u
}

// SetRoutingMode sets the "routing_mode" field.
func (_u *JobUpdateOne) SetRoutingMode(v job.RoutingMode) *JobUpdateOne {
	_u.mutation.SetRoutingMode(v)
	return _u
}

// SetNillableRoutingMode sets the "routing_mode" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRoutingMode(v *job.RoutingMode) *JobUpdateOne {
	if v != nil {
		_u.SetRoutingMode(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *JobUpdateOne) AddMatchIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *JobUpdateOne) AddMatches(v ...*Match) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *JobUpdateOne) AddConversationIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *JobUpdateOne) AddConversations(v ...*Conversation) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddOutboundActionIDs adds the "outbound_actions" edge to the OutboundAction entity by IDs.
func (_u *JobUpdateOne) AddOutboundActionIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddOutboundActionIDs(ids...)
	return _u
}

// AddOutboundActions adds the "outbound_actions" edges to the OutboundAction entity.
func (_u *JobUpdateOne) AddOutboundActions(v ...*OutboundAction) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutboundActionIDs(ids...)
}

// AddStepProgresIDs adds the "step_progress" edge to the JobStepProgress entity by IDs.
func (_u *JobUpdateOne) AddStepProgresIDs(ids ...int) *JobUpdateOne {
	_u.mutation.AddStepProgresIDs(ids...)
	return _u
}

// AddStepProgress adds the "step_progress" edges to the JobStepProgress entity.
func (_u *JobUpdateOne) AddStepProgress(v ...*JobStepProgress) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepProgresIDs(ids...)
}

// AddAccountAssignmentIDs adds the "account_assignments" edge to the JobAccountAssignment entity by IDs.
func (_u *JobUpdateOne) AddAccountAssignmentIDs(ids ...int) *JobUpdateOne {
	_u.mutation.AddAccountAssignmentIDs(ids...)
	return _u
}

// AddAccountAssignments adds the "account_assignments" edges to the JobAccountAssignment entity.
func (_u *JobUpdateOne) AddAccountAssignments(v ...*JobAccountAssignment) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAccountAssignmentIDs(ids...)
}

// AddSignalIDs adds the "signals" edge to the CandidateSignal entity by IDs.
func (_u *JobUpdateOne) AddSignalIDs(ids ...int) *JobUpdateOne {
	_u.mutation.AddSignalIDs(ids...)
	return _u
}

// AddSignals adds the "signals" edges to the CandidateSignal entity.
func (_u *JobUpdateOne) AddSignals(v ...*CandidateSignal) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSignalIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *JobUpdateOne) ClearMatches() *JobUpdateOne {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *JobUpdateOne) RemoveMatchIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *JobUpdateOne) RemoveMatches(v ...*Match) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *JobUpdateOne) ClearConversations() *JobUpdateOne {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *JobUpdateOne) RemoveConversationIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *JobUpdateOne) RemoveConversations(v ...*Conversation) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearOutboundActions clears all "outbound_actions" edges to the OutboundAction entity.
func (_u *JobUpdateOne) ClearOutboundActions() *JobUpdateOne {
	_u.mutation.ClearOutboundActions()
	return _u
}

// RemoveOutboundActionIDs removes the "outbound_actions" edge to OutboundAction entities by IDs.
func (_u *JobUpdateOne) RemoveOutboundActionIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveOutboundActionIDs(ids...)
	return _u
}

// RemoveOutboundActions removes "outbound_actions" edges to OutboundAction entities.
func (_u *JobUpdateOne) RemoveOutboundActions(v ...*OutboundAction) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutboundActionIDs(ids...)
}

// ClearStepProgress clears all "step_progress" edges to the JobStepProgress entity.
func (_u *JobUpdateOne) ClearStepProgress() *JobUpdateOne {
	_u.mutation.ClearStepProgress()
	return _u
}

// RemoveStepProgresIDs removes the "step_progress" edge to JobStepProgress entities by IDs.
func (_u *JobUpdateOne) RemoveStepProgresIDs(ids ...int) *JobUpdateOne {
	_u.mutation.RemoveStepProgresIDs(ids...)
	return _u
}

// RemoveStepProgress removes "step_progress" edges to JobStepProgress entities.
func (_u *JobUpdateOne) RemoveStepProgress(v ...*JobStepProgress) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepProgresIDs(ids...)
}

// ClearAccountAssignments clears all "account_assignments" edges to the JobAccountAssignment entity.
func (_u *JobUpdateOne) ClearAccountAssignments() *JobUpdateOne {
	_u.mutation.ClearAccountAssignments()
	return _u
}

// RemoveAccountAssignmentIDs removes the "account_assignments" edge to JobAccountAssignment entities by IDs.
func (_u *JobUpdateOne) RemoveAccountAssignmentIDs(ids ...int) *JobUpdateOne {
	_u.mutation.RemoveAccountAssignmentIDs(ids...)
	return _u
}

// RemoveAccountAssignments removes "account_assignments" edges to JobAccountAssignment entities.
func (_u *JobUpdateOne) RemoveAccountAssignments(v ...*JobAccountAssignment) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAccountAssignmentIDs(ids...)
}

// ClearSignals clears all "signals" edges to the CandidateSignal entity.
func (_u *JobUpdateOne) ClearSignals() *JobUpdateOne {
	_u.mutation.ClearSignals()
	return _u
}

// RemoveSignalIDs removes the "signals" edge to CandidateSignal entities by IDs.
func (_u *JobUpdateOne) RemoveSignalIDs(ids ...int) *JobUpdateOne {
	_u.mutation.RemoveSignalIDs(ids...)
	return _u
}

// RemoveSignals removes "signals" edges to CandidateSignal entities.
func (_u *JobUpdateOne) RemoveSignals(v ...*CandidateSignal) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSignalIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.RoutingMode(); ok {
		if err := job.RoutingModeValidator(v); err != nil {
			return &ValidationError{Name: "routing_mode", err: fmt.Errorf(`ent: validator failed for field "Job.routing_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.JdText(); ok {
		_spec.SetField(job.FieldJdText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(job.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(job.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.PreferredLanguages(); ok {
		_spec.SetField(job.FieldPreferredLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldPreferredLanguages, value)
		})
	}
	if _u.mutation.PreferredLanguagesCleared() {
		_spec.ClearField(job.FieldPreferredLanguages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Seniority(); ok {
		_spec.SetField(job.FieldSeniority, field.TypeString, value)
	}
	if _u.mutation.SeniorityCleared() {
		_spec.ClearField(job.FieldSeniority, field.TypeString)
	}
	if value, ok := _u.mutation.RoutingMode(); ok {
		_spec.SetField(job.FieldRoutingMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutboundActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutboundActionsIDs(); len(nodes) > 0 && !_u.mutation.OutboundActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutboundActionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepProgressCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepProgressIDs(); len(nodes) > 0 && !_u.mutation.StepProgressCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepProgressIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AccountAssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAccountAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AccountAssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountAssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SignalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSignalsIDs(); len(nodes) > 0 && !_u.mutation.SignalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SignalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
