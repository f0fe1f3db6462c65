// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hireflow/scout/ent/predicate"
	"github.com/hireflow/scout/ent/preresumeevent"
)

// PreResumeEventUpdate is the builder for updating PreResumeEvent entities.
type PreResumeEventUpdate struct {
	config
	hooks    []Hook
	mutation *PreResumeEventMutation
}

// Where appends a list predicates to the PreResumeEventUpdate builder.
func (_u *PreResumeEventUpdate) Where(ps ...predicate.PreResumeEvent) *PreResumeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *PreResumeEventUpdate) SetJobID(v string) *PreResumeEventUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *PreResumeEventUpdate) SetNillableJobID(v *string) *PreResumeEventUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *PreResumeEventUpdate) ClearJobID() *PreResumeEventUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *PreResumeEventUpdate) SetCandidateID(v string) *PreResumeEventUpdate {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *PreResumeEventUpdate) SetNillableCandidateID(v *string) *PreResumeEventUpdate {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *PreResumeEventUpdate) ClearCandidateID() *PreResumeEventUpdate {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *PreResumeEventUpdate) SetEventType(v preresumeevent.EventType) *PreResumeEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *PreResumeEventUpdate) SetNillableEventType(v *preresumeevent.EventType) *PreResumeEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *PreResumeEventUpdate) SetIntent(v string) *PreResumeEventUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *PreResumeEventUpdate) SetNillableIntent(v *string) *PreResumeEventUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *PreResumeEventUpdate) ClearIntent() *PreResumeEventUpdate {
	_u.mutation.ClearIntent()
	return _u
}

// SetInboundText sets the "inbound_text" field.
func (_u *PreResumeEventUpdate) SetInboundText(v string) *PreResumeEventUpdate {
	_u.mutation.SetInboundText(v)
	return _u
}

// SetNillableInboundText sets the "inbound_text" field if the given value is not nil.
func (_u *PreResumeEventUpdate) SetNillableInboundText(v *string) *PreResumeEventUpdate {
	if v != nil {
		_u.SetInboundText(*v)
	}
	return _u
}

// ClearInboundText clears the value of the "inbound_text" field.
func (_u *PreResumeEventUpdate) ClearInboundText() *PreResumeEventUpdate {
	_u.mutation.ClearInboundText()
	return _u
}

// SetOutboundText sets the "outbound_text" field.
func (_u *PreResumeEventUpdate) SetOutboundText(v string) *PreResumeEventUpdate {
	_u.mutation.SetOutboundText(v)
	return _u
}

// SetNillableOutboundText sets the "outbound_text" field if the given value is not nil.
func (_u *PreResumeEventUpdate) SetNillableOutboundText(v *string) *PreResumeEventUpdate {
	if v != nil {
		_u.SetOutboundText(*v)
	}
	return _u
}

// ClearOutboundText clears the value of the "outbound_text" field.
func (_u *PreResumeEventUpdate) ClearOutboundText() *PreResumeEventUpdate {
	_u.mutation.ClearOutboundText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PreResumeEventUpdate) SetStatus(v string) *PreResumeEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PreResumeEventUpdate) SetNillableStatus(v *string) *PreResumeEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the PreResumeEventMutation object of the builder.
func (_u *PreResumeEventUpdate) Mutation() *PreResumeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PreResumeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreResumeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PreResumeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreResumeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PreResumeEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := preresumeevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "PreResumeEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PreResumeEvent.session"`)
	}
	return nil
}

func (_u *PreResumeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(preresumeevent.Table, preresumeevent.Columns, sqlgraph.NewFieldSpec(preresumeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(preresumeevent.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(preresumeevent.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateID(); ok {
		_spec.SetField(preresumeevent.FieldCandidateID, field.TypeString, value)
	}
	if _u.mutation.CandidateIDCleared() {
		_spec.ClearField(preresumeevent.FieldCandidateID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(preresumeevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(preresumeevent.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(preresumeevent.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.InboundText(); ok {
		_spec.SetField(preresumeevent.FieldInboundText, field.TypeString, value)
	}
	if _u.mutation.InboundTextCleared() {
		_spec.ClearField(preresumeevent.FieldInboundText, field.TypeString)
	}
	if value, ok := _u.mutation.OutboundText(); ok {
		_spec.SetField(preresumeevent.FieldOutboundText, field.TypeString, value)
	}
	if _u.mutation.OutboundTextCleared() {
		_spec.ClearField(preresumeevent.FieldOutboundText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(preresumeevent.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preresumeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PreResumeEventUpdateOne is the builder for updating a single PreResumeEvent entity.
type PreResumeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PreResumeEventMutation
}

// SetJobID sets the "job_id" field.
func (_u *PreResumeEventUpdateOne) SetJobID(v string) *PreResumeEventUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *PreResumeEventUpdateOne) SetNillableJobID(v *string) *PreResumeEventUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *PreResumeEventUpdateOne) ClearJobID() *PreResumeEventUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *PreResumeEventUpdateOne) SetCandidateID(v string) *PreResumeEventUpdateOne {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *PreResumeEventUpdateOne) SetNillableCandidateID(v *string) *PreResumeEventUpdateOne {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *PreResumeEventUpdateOne) ClearCandidateID() *PreResumeEventUpdateOne {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *PreResumeEventUpdateOne) SetEventType(v preresumeevent.EventType) *PreResumeEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *PreResumeEventUpdateOne) SetNillableEventType(v *preresumeevent.EventType) *PreResumeEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *PreResumeEventUpdateOne) SetIntent(v string) *PreResumeEventUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *PreResumeEventUpdateOne) SetNillableIntent(v *string) *PreResumeEventUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *PreResumeEventUpdateOne) ClearIntent() *PreResumeEventUpdateOne {
	_u.mutation.ClearIntent()
	return _u
}

// SetInboundText sets the "inbound_text" field.
func (_u *PreResumeEventUpdateOne) SetInboundText(v string) *PreResumeEventUpdateOne {
	_u.mutation.SetInboundText(v)
	return _u
}

// SetNillableInboundText sets the "inbound_text" field if the given value is not nil.
func (_u *PreResumeEventUpdateOne) SetNillableInboundText(v *string) *PreResumeEventUpdateOne {
	if v != nil {
		_u.SetInboundText(*v)
	}
	return _u
}

// ClearInboundText clears the value of the "inbound_text" field.
func (_u *PreResumeEventUpdateOne) ClearInboundText() *PreResumeEventUpdateOne {
	_u.mutation.ClearInboundText()
	return _u
}

// SetOutboundText sets the "outbound_text" field.
func (_u *PreResumeEventUpdateOne) SetOutboundText(v string) *PreResumeEventUpdateOne {
	_u.mutation.SetOutboundText(v)
	return _u
}

// SetNillableOutboundText sets the "outbound_text" field if the given value is not nil.
func (_u *PreResumeEventUpdateOne) SetNillableOutboundText(v *string) *PreResumeEventUpdateOne {
	if v != nil {
		_u.SetOutboundText(*v)
	}
	return _u
}

// ClearOutboundText clears the value of the "outbound_text" field.
func (_u *PreResumeEventUpdateOne) ClearOutboundText() *PreResumeEventUpdateOne {
	_u.mutation.ClearOutboundText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PreResumeEventUpdateOne) SetStatus(v string) *PreResumeEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PreResumeEventUpdateOne) SetNillableStatus(v *string) *PreResumeEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the PreResumeEventMutation object of the builder.
func (_u *PreResumeEventUpdateOne) Mutation() *PreResumeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PreResumeEventUpdate builder.
func (_u *PreResumeEventUpdateOne) Where(ps ...predicate.PreResumeEvent) *PreResumeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PreResumeEventUpdateOne) Select(field string, fields ...string) *PreResumeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PreResumeEvent entity.
func (_u *PreResumeEventUpdateOne) Save(ctx context.Context) (*PreResumeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreResumeEventUpdateOne) SaveX(ctx context.Context) *PreResumeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PreResumeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreResumeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PreResumeEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := preresumeevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "PreResumeEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PreResumeEvent.session"`)
	}
	return nil
}

func (_u *PreResumeEventUpdateOne) sqlSave(ctx context.Context) (_node *PreResumeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(preresumeevent.Table, preresumeevent.Columns, sqlgraph.NewFieldSpec(preresumeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PreResumeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, preresumeevent.FieldID)
		for _, f := range fields {
			if !preresumeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != preresumeevent.FieldID {
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
		_spec.SetField(preresumeevent.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(preresumeevent.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateID(); ok {
		_spec.SetField(preresumeevent.FieldCandidateID, field.TypeString, value)
	}
	if _u.mutation.CandidateIDCleared() {
		_spec.ClearField(preresumeevent.FieldCandidateID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(preresumeevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(preresumeevent.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(preresumeevent.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.InboundText(); ok {
		_spec.SetField(preresumeevent.FieldInboundText, field.TypeString, value)
	}
	if _u.mutation.InboundTextCleared() {
		_spec.ClearField(preresumeevent.FieldInboundText, field.TypeString)
	}
	if value, ok := _u.mutation.OutboundText(); ok {
		_spec.SetField(preresumeevent.FieldOutboundText, field.TypeString, value)
	}
	if _u.mutation.OutboundTextCleared() {
		_spec.ClearField(preresumeevent.FieldOutboundText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(preresumeevent.FieldStatus, field.TypeString, value)
	}
	_node = &PreResumeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preresumeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
