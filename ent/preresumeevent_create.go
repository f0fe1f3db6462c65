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
	"github.com/hireflow/scout/ent/preresumeevent"
	"github.com/hireflow/scout/ent/preresumesession"
)

// PreResumeEventCreate is the builder for creating a PreResumeEvent entity.
type PreResumeEventCreate struct {
	config
	mutation *PreResumeEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *PreResumeEventCreate) SetSessionID(v string) *PreResumeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *PreResumeEventCreate) SetJobID(v string) *PreResumeEventCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *PreResumeEventCreate) SetNillableJobID(v *string) *PreResumeEventCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetCandidateID sets the "candidate_id" field.
func (_c *PreResumeEventCreate) SetCandidateID(v string) *PreResumeEventCreate {
	_c.mutation.SetCandidateID(v)
	return _c
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_c *PreResumeEventCreate) SetNillableCandidateID(v *string) *PreResumeEventCreate {
	if v != nil {
		_c.SetCandidateID(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *PreResumeEventCreate) SetEventType(v preresumeevent.EventType) *PreResumeEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetIntent sets the "intent" field.
func (_c *PreResumeEventCreate) SetIntent(v string) *PreResumeEventCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_c *PreResumeEventCreate) SetNillableIntent(v *string) *PreResumeEventCreate {
	if v != nil {
		_c.SetIntent(*v)
	}
	return _c
}

// SetInboundText sets the "inbound_text" field.
func (_c *PreResumeEventCreate) SetInboundText(v string) *PreResumeEventCreate {
	_c.mutation.SetInboundText(v)
	return _c
}

// SetNillableInboundText sets the "inbound_text" field if the given value is not nil.
func (_c *PreResumeEventCreate) SetNillableInboundText(v *string) *PreResumeEventCreate {
	if v != nil {
		_c.SetInboundText(*v)
	}
	return _c
}

// SetOutboundText sets the "outbound_text" field.
func (_c *PreResumeEventCreate) SetOutboundText(v string) *PreResumeEventCreate {
	_c.mutation.SetOutboundText(v)
	return _c
}

// SetNillableOutboundText sets the "outbound_text" field if the given value is not nil.
func (_c *PreResumeEventCreate) SetNillableOutboundText(v *string) *PreResumeEventCreate {
	if v != nil {
		_c.SetOutboundText(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PreResumeEventCreate) SetStatus(v string) *PreResumeEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PreResumeEventCreate) SetCreatedAt(v time.Time) *PreResumeEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PreResumeEventCreate) SetNillableCreatedAt(v *time.Time) *PreResumeEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the PreResumeSession entity.
func (_c *PreResumeEventCreate) SetSession(v *PreResumeSession) *PreResumeEventCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the PreResumeEventMutation object of the builder.
func (_c *PreResumeEventCreate) Mutation() *PreResumeEventMutation {
	return _c.mutation
}

// Save creates the PreResumeEvent in the database.
func (_c *PreResumeEventCreate) Save(ctx context.Context) (*PreResumeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PreResumeEventCreate) SaveX(ctx context.Context) *PreResumeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreResumeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreResumeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PreResumeEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := preresumeevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PreResumeEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PreResumeEvent.session_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "PreResumeEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := preresumeevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "PreResumeEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PreResumeEvent.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PreResumeEvent.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "PreResumeEvent.session"`)}
	}
	return nil
}

func (_c *PreResumeEventCreate) sqlSave(ctx context.Context) (*PreResumeEvent, error) {
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

func (_c *PreResumeEventCreate) createSpec() (*PreResumeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PreResumeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(preresumeevent.Table, sqlgraph.NewFieldSpec(preresumeevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(preresumeevent.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.CandidateID(); ok {
		_spec.SetField(preresumeevent.FieldCandidateID, field.TypeString, value)
		_node.CandidateID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(preresumeevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(preresumeevent.FieldIntent, field.TypeString, value)
		_node.Intent = value
	}
	if value, ok := _c.mutation.InboundText(); ok {
		_spec.SetField(preresumeevent.FieldInboundText, field.TypeString, value)
		_node.InboundText = value
	}
	if value, ok := _c.mutation.OutboundText(); ok {
		_spec.SetField(preresumeevent.FieldOutboundText, field.TypeString, value)
		_node.OutboundText = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(preresumeevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(preresumeevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   preresumeevent.SessionTable,
			Columns: []string{preresumeevent.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(preresumesession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PreResumeEvent.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PreResumeEventUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *PreResumeEventCreate) OnConflict(opts ...sql.ConflictOption) *PreResumeEventUpsertOne {
	_c.conflict = opts
	return &PreResumeEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PreResumeEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PreResumeEventCreate) OnConflictColumns(columns ...string) *PreResumeEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PreResumeEventUpsertOne{
		create: _c,
	}
}

type (
	// PreResumeEventUpsertOne is the builder for "upsert"-ing
	//  one PreResumeEvent node.
	PreResumeEventUpsertOne struct {
		create *PreResumeEventCreate
	}

	// PreResumeEventUpsert is the "OnConflict" setter.
	PreResumeEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetJobID sets the "job_id" field.
func (u *PreResumeEventUpsert) SetJobID(v string) *PreResumeEventUpsert {
	u.Set(preresumeevent.FieldJobID, v)
	return u
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *PreResumeEventUpsert) UpdateJobID() *PreResumeEventUpsert {
	u.SetExcluded(preresumeevent.FieldJobID)
	return u
}

// ClearJobID clears the value of the "job_id" field.
func (u *PreResumeEventUpsert) ClearJobID() *PreResumeEventUpsert {
	u.SetNull(preresumeevent.FieldJobID)
	return u
}

// SetCandidateID sets the "candidate_id" field.
func (u *PreResumeEventUpsert) SetCandidateID(v string) *PreResumeEventUpsert {
	u.Set(preresumeevent.FieldCandidateID, v)
	return u
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *PreResumeEventUpsert) UpdateCandidateID() *PreResumeEventUpsert {
	u.SetExcluded(preresumeevent.FieldCandidateID)
	return u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (u *PreResumeEventUpsert) ClearCandidateID() *PreResumeEventUpsert {
	u.SetNull(preresumeevent.FieldCandidateID)
	return u
}

// SetEventType sets the "event_type" field.
func (u *PreResumeEventUpsert) SetEventType(v preresumeevent.EventType) *PreResumeEventUpsert {
	u.Set(preresumeevent.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *PreResumeEventUpsert) UpdateEventType() *PreResumeEventUpsert {
	u.SetExcluded(preresumeevent.FieldEventType)
	return u
}

// SetIntent sets the "intent" field.
func (u *PreResumeEventUpsert) SetIntent(v string) *PreResumeEventUpsert {
	u.Set(preresumeevent.FieldIntent, v)
	return u
}

// UpdateIntent sets the "intent" field to the value that was provided on create.
func (u *PreResumeEventUpsert) UpdateIntent() *PreResumeEventUpsert {
	u.SetExcluded(preresumeevent.FieldIntent)
	return u
}

// ClearIntent clears the value of the "intent" field.
func (u *PreResumeEventUpsert) ClearIntent() *PreResumeEventUpsert {
	u.SetNull(preresumeevent.FieldIntent)
	return u
}

// SetInboundText sets the "inbound_text" field.
func (u *PreResumeEventUpsert) SetInboundText(v string) *PreResumeEventUpsert {
	u.Set(preresumeevent.FieldInboundText, v)
	return u
}

// UpdateInboundText sets the "inbound_text" field to the value that was provided on create.
func (u *PreResumeEventUpsert) UpdateInboundText() *PreResumeEventUpsert {
	u.SetExcluded(preresumeevent.FieldInboundText)
	return u
}

// ClearInboundText clears the value of the "inbound_text" field.
func (u *PreResumeEventUpsert) ClearInboundText() *PreResumeEventUpsert {
	u.SetNull(preresumeevent.FieldInboundText)
	return u
}

// SetOutboundText sets the "outbound_text" field.
func (u *PreResumeEventUpsert) SetOutboundText(v string) *PreResumeEventUpsert {
	u.Set(preresumeevent.FieldOutboundText, v)
	return u
}

// UpdateOutboundText sets the "outbound_text" field to the value that was provided on create.
func (u *PreResumeEventUpsert) UpdateOutboundText() *PreResumeEventUpsert {
	u.SetExcluded(preresumeevent.FieldOutboundText)
	return u
}

// ClearOutboundText clears the value of the "outbound_text" field.
func (u *PreResumeEventUpsert) ClearOutboundText() *PreResumeEventUpsert {
	u.SetNull(preresumeevent.FieldOutboundText)
	return u
}

// SetStatus sets the "status" field.
func (u *PreResumeEventUpsert) SetStatus(v string) *PreResumeEventUpsert {
	u.Set(preresumeevent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PreResumeEventUpsert) UpdateStatus() *PreResumeEventUpsert {
	u.SetExcluded(preresumeevent.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PreResumeEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PreResumeEventUpsertOne) UpdateNewValues() *PreResumeEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(preresumeevent.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(preresumeevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PreResumeEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PreResumeEventUpsertOne) Ignore() *PreResumeEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PreResumeEventUpsertOne) DoNothing() *PreResumeEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PreResumeEventCreate.OnConflict
// documentation for more info.
func (u *PreResumeEventUpsertOne) Update(set func(*PreResumeEventUpsert)) *PreResumeEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PreResumeEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobID sets the "job_id" field.
func (u *PreResumeEventUpsertOne) SetJobID(v string) *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *PreResumeEventUpsertOne) UpdateJobID() *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *PreResumeEventUpsertOne) ClearJobID() *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.ClearJobID()
	})
}

// SetCandidateID sets the "candidate_id" field.
func (u *PreResumeEventUpsertOne) SetCandidateID(v string) *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetCandidateID(v)
	})
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *PreResumeEventUpsertOne) UpdateCandidateID() *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateCandidateID()
	})
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (u *PreResumeEventUpsertOne) ClearCandidateID() *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.ClearCandidateID()
	})
}

// SetEventType sets the "event_type" field.
func (u *PreResumeEventUpsertOne) SetEventType(v preresumeevent.EventType) *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *PreResumeEventUpsertOne) UpdateEventType() *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateEventType()
	})
}

// SetIntent sets the "intent" field.
func (u *PreResumeEventUpsertOne) SetIntent(v string) *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetIntent(v)
	})
}

// UpdateIntent sets the "intent" field to the value that was provided on create.
func (u *PreResumeEventUpsertOne) UpdateIntent() *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateIntent()
	})
}

// ClearIntent clears the value of the "intent" field.
func (u *PreResumeEventUpsertOne) ClearIntent() *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.ClearIntent()
	})
}

// SetInboundText sets the "inbound_text" field.
func (u *PreResumeEventUpsertOne) SetInboundText(v string) *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetInboundText(v)
	})
}

// UpdateInboundText sets the "inbound_text" field to the value that was provided on create.
func (u *PreResumeEventUpsertOne) UpdateInboundText() *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateInboundText()
	})
}

// ClearInboundText clears the value of the "inbound_text" field.
func (u *PreResumeEventUpsertOne) ClearInboundText() *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.ClearInboundText()
	})
}

// SetOutboundText sets the "outbound_text" field.
func (u *PreResumeEventUpsertOne) SetOutboundText(v string) *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetOutboundText(v)
	})
}

// UpdateOutboundText sets the "outbound_text" field to the value that was provided on create.
func (u *PreResumeEventUpsertOne) UpdateOutboundText() *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateOutboundText()
	})
}

// ClearOutboundText clears the value of the "outbound_text" field.
func (u *PreResumeEventUpsertOne) ClearOutboundText() *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.ClearOutboundText()
	})
}

// SetStatus sets the "status" field.
func (u *PreResumeEventUpsertOne) SetStatus(v string) *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PreResumeEventUpsertOne) UpdateStatus() *PreResumeEventUpsertOne {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *PreResumeEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PreResumeEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PreResumeEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PreResumeEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PreResumeEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PreResumeEventCreateBulk is the builder for creating many PreResumeEvent entities in bulk.
type PreResumeEventCreateBulk struct {
	config
	err      error
	builders []*PreResumeEventCreate
	conflict []sql.ConflictOption
}

// Save creates the PreResumeEvent entities in the database.
func (_c *PreResumeEventCreateBulk) Save(ctx context.Context) ([]*PreResumeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PreResumeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PreResumeEventMutation)
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
func (_c *PreResumeEventCreateBulk) SaveX(ctx context.Context) []*PreResumeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreResumeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreResumeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PreResumeEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PreResumeEventUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *PreResumeEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *PreResumeEventUpsertBulk {
	_c.conflict = opts
	return &PreResumeEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PreResumeEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PreResumeEventCreateBulk) OnConflictColumns(columns ...string) *PreResumeEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PreResumeEventUpsertBulk{
		create: _c,
	}
}

// PreResumeEventUpsertBulk is the builder for "upsert"-ing
// a bulk of PreResumeEvent nodes.
type PreResumeEventUpsertBulk struct {
	create *PreResumeEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PreResumeEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PreResumeEventUpsertBulk) UpdateNewValues() *PreResumeEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(preresumeevent.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(preresumeevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PreResumeEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PreResumeEventUpsertBulk) Ignore() *PreResumeEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PreResumeEventUpsertBulk) DoNothing() *PreResumeEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PreResumeEventCreateBulk.OnConflict
// documentation for more info.
func (u *PreResumeEventUpsertBulk) Update(set func(*PreResumeEventUpsert)) *PreResumeEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PreResumeEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobID sets the "job_id" field.
func (u *PreResumeEventUpsertBulk) SetJobID(v string) *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *PreResumeEventUpsertBulk) UpdateJobID() *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *PreResumeEventUpsertBulk) ClearJobID() *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.ClearJobID()
	})
}

// SetCandidateID sets the "candidate_id" field.
func (u *PreResumeEventUpsertBulk) SetCandidateID(v string) *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetCandidateID(v)
	})
}

// UpdateCandidateID sets the "candidate_id" field to the value that was provided on create.
func (u *PreResumeEventUpsertBulk) UpdateCandidateID() *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateCandidateID()
	})
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (u *PreResumeEventUpsertBulk) ClearCandidateID() *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.ClearCandidateID()
	})
}

// SetEventType sets the "event_type" field.
func (u *PreResumeEventUpsertBulk) SetEventType(v preresumeevent.EventType) *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *PreResumeEventUpsertBulk) UpdateEventType() *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateEventType()
	})
}

// SetIntent sets the "intent" field.
func (u *PreResumeEventUpsertBulk) SetIntent(v string) *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetIntent(v)
	})
}

// UpdateIntent sets the "intent" field to the value that was provided on create.
func (u *PreResumeEventUpsertBulk) UpdateIntent() *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateIntent()
	})
}

// ClearIntent clears the value of the "intent" field.
func (u *PreResumeEventUpsertBulk) ClearIntent() *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.ClearIntent()
	})
}

// SetInboundText sets the "inbound_text" field.
func (u *PreResumeEventUpsertBulk) SetInboundText(v string) *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetInboundText(v)
	})
}

// UpdateInboundText sets the "inbound_text" field to the value that was provided on create.
func (u *PreResumeEventUpsertBulk) UpdateInboundText() *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateInboundText()
	})
}

// ClearInboundText clears the value of the "inbound_text" field.
func (u *PreResumeEventUpsertBulk) ClearInboundText() *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.ClearInboundText()
	})
}

// SetOutboundText sets the "outbound_text" field.
func (u *PreResumeEventUpsertBulk) SetOutboundText(v string) *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetOutboundText(v)
	})
}

// UpdateOutboundText sets the "outbound_text" field to the value that was provided on create.
func (u *PreResumeEventUpsertBulk) UpdateOutboundText() *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateOutboundText()
	})
}

// ClearOutboundText clears the value of the "outbound_text" field.
func (u *PreResumeEventUpsertBulk) ClearOutboundText() *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.ClearOutboundText()
	})
}

// SetStatus sets the "status" field.
func (u *PreResumeEventUpsertBulk) SetStatus(v string) *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PreResumeEventUpsertBulk) UpdateStatus() *PreResumeEventUpsertBulk {
	return u.Update(func(s *PreResumeEventUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *PreResumeEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PreResumeEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PreResumeEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PreResumeEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
