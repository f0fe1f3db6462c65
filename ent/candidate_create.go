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
	"github.com/hireflow/scout/ent/conversation"
	"github.com/hireflow/scout/ent/match"
)

// CandidateCreate is the builder for creating a Candidate entity.
type CandidateCreate struct {
	config
	mutation *CandidateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProviderID sets the "provider_id" field.
func (_c *CandidateCreate) SetProviderID(v string) *CandidateCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *CandidateCreate) SetFullName(v string) *CandidateCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetHeadline sets the "headline" field.
func (_c *CandidateCreate) SetHeadline(v string) *CandidateCreate {
	_c.mutation.SetHeadline(v)
	return _c
}

// SetNillableHeadline sets the "headline" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableHeadline(v *string) *CandidateCreate {
	if v != nil {
		_c.SetHeadline(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *CandidateCreate) SetLocation(v string) *CandidateCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableLocation(v *string) *CandidateCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetLanguages sets the "languages" field.
func (_c *CandidateCreate) SetLanguages(v []string) *CandidateCreate {
	_c.mutation.SetLanguages(v)
	return _c
}

// SetSkills sets the "skills" field.
func (_c *CandidateCreate) SetSkills(v []string) *CandidateCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetYearsExperience sets the "years_experience" field.
func (_c *CandidateCreate) SetYearsExperience(v float64) *CandidateCreate {
	_c.mutation.SetYearsExperience(v)
	return _c
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableYearsExperience(v *float64) *CandidateCreate {
	if v != nil {
		_c.SetYearsExperience(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CandidateCreate) SetCreatedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableCreatedAt(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CandidateCreate) SetUpdatedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableUpdatedAt(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CandidateCreate) SetID(v string) *CandidateCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_c *CandidateCreate) AddMatchIDs(ids ...string) *CandidateCreate {
	_c.mutation.AddMatchIDs(ids...)
	return _c
}

// AddMatches adds the "matches" edges to the Match entity.
func (_c *CandidateCreate) AddMatches(v ...*Match) *CandidateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMatchIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_c *CandidateCreate) AddConversationIDs(ids ...string) *CandidateCreate {
	_c.mutation.AddConversationIDs(ids...)
	return _c
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_c *CandidateCreate) AddConversations(v ...*Conversation) *CandidateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConversationIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_c *CandidateCreate) Mutation() *CandidateMutation {
	return _c.mutation
}

// Save creates the Candidate in the database.
func (_c *CandidateCreate) Save(ctx context.Context) (*Candidate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CandidateCreate) SaveX(ctx context.Context) *Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CandidateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := candidate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := candidate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CandidateCreate) check() error {
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`ent: missing required field "Candidate.provider_id"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "Candidate.full_name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Candidate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Candidate.updated_at"`)}
	}
	return nil
}

func (_c *CandidateCreate) sqlSave(ctx context.Context) (*Candidate, error) {
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
			return nil, fmt.Errorf("unexpected Candidate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CandidateCreate) createSpec() (*Candidate, *sqlgraph.CreateSpec) {
	var (
		_node = &Candidate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(candidate.Table, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProviderID(); ok {
		_spec.SetField(candidate.FieldProviderID, field.TypeString, value)
		_node.ProviderID = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(candidate.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Headline(); ok {
		_spec.SetField(candidate.FieldHeadline, field.TypeString, value)
		_node.Headline = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(candidate.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Languages(); ok {
		_spec.SetField(candidate.FieldLanguages, field.TypeJSON, value)
		_node.Languages = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(candidate.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.YearsExperience(); ok {
		_spec.SetField(candidate.FieldYearsExperience, field.TypeFloat64, value)
		_node.YearsExperience = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(candidate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.MatchesTable,
			Columns: []string{candidate.MatchesColumn},
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
			Table:   candidate.ConversationsTable,
			Columns: []string{candidate.ConversationsColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Candidate.Create().
//		SetProviderID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CandidateUpsert) {
//			SetProviderID(v+v).
//		}).
//		Exec(ctx)
func (_c *CandidateCreate) OnConflict(opts ...sql.ConflictOption) *CandidateUpsertOne {
	_c.conflict = opts
	return &CandidateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CandidateCreate) OnConflictColumns(columns ...string) *CandidateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CandidateUpsertOne{
		create: _c,
	}
}

type (
	// CandidateUpsertOne is the builder for "upsert"-ing
	//  one Candidate node.
	CandidateUpsertOne struct {
		create *CandidateCreate
	}

	// CandidateUpsert is the "OnConflict" setter.
	CandidateUpsert struct {
		*sql.UpdateSet
	}
)

// SetProviderID sets the "provider_id" field.
func (u *CandidateUpsert) SetProviderID(v string) *CandidateUpsert {
	u.Set(candidate.FieldProviderID, v)
	return u
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateProviderID() *CandidateUpsert {
	u.SetExcluded(candidate.FieldProviderID)
	return u
}

// SetFullName sets the "full_name" field.
func (u *CandidateUpsert) SetFullName(v string) *CandidateUpsert {
	u.Set(candidate.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateFullName() *CandidateUpsert {
	u.SetExcluded(candidate.FieldFullName)
	return u
}

// SetHeadline sets the "headline" field.
func (u *CandidateUpsert) SetHeadline(v string) *CandidateUpsert {
	u.Set(candidate.FieldHeadline, v)
	return u
}

// UpdateHeadline sets the "headline" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateHeadline() *CandidateUpsert {
	u.SetExcluded(candidate.FieldHeadline)
	return u
}

// ClearHeadline clears the value of the "headline" field.
func (u *CandidateUpsert) ClearHeadline() *CandidateUpsert {
	u.SetNull(candidate.FieldHeadline)
	return u
}

// SetLocation sets the "location" field.
func (u *CandidateUpsert) SetLocation(v string) *CandidateUpsert {
	u.Set(candidate.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateLocation() *CandidateUpsert {
	u.SetExcluded(candidate.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *CandidateUpsert) ClearLocation() *CandidateUpsert {
	u.SetNull(candidate.FieldLocation)
	return u
}

// SetLanguages sets the "languages" field.
func (u *CandidateUpsert) SetLanguages(v []string) *CandidateUpsert {
	u.Set(candidate.FieldLanguages, v)
	return u
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateLanguages() *CandidateUpsert {
	u.SetExcluded(candidate.FieldLanguages)
	return u
}

// ClearLanguages clears the value of the "languages" field.
func (u *CandidateUpsert) ClearLanguages() *CandidateUpsert {
	u.SetNull(candidate.FieldLanguages)
	return u
}

// SetSkills sets the "skills" field.
func (u *CandidateUpsert) SetSkills(v []string) *CandidateUpsert {
	u.Set(candidate.FieldSkills, v)
	return u
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateSkills() *CandidateUpsert {
	u.SetExcluded(candidate.FieldSkills)
	return u
}

// ClearSkills clears the value of the "skills" field.
func (u *CandidateUpsert) ClearSkills() *CandidateUpsert {
	u.SetNull(candidate.FieldSkills)
	return u
}

// SetYearsExperience sets the "years_experience" field.
func (u *CandidateUpsert) SetYearsExperience(v float64) *CandidateUpsert {
	u.Set(candidate.FieldYearsExperience, v)
	return u
}

// UpdateYearsExperience sets the "years_experience" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateYearsExperience() *CandidateUpsert {
	u.SetExcluded(candidate.FieldYearsExperience)
	return u
}

// AddYearsExperience adds v to the "years_experience" field.
func (u *CandidateUpsert) AddYearsExperience(v float64) *CandidateUpsert {
	u.Add(candidate.FieldYearsExperience, v)
	return u
}

// ClearYearsExperience clears the value of the "years_experience" field.
func (u *CandidateUpsert) ClearYearsExperience() *CandidateUpsert {
	u.SetNull(candidate.FieldYearsExperience)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CandidateUpsert) SetUpdatedAt(v time.Time) *CandidateUpsert {
	u.Set(candidate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CandidateUpsert) UpdateUpdatedAt() *CandidateUpsert {
	u.SetExcluded(candidate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(candidate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CandidateUpsertOne) UpdateNewValues() *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(candidate.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(candidate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Candidate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CandidateUpsertOne) Ignore() *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CandidateUpsertOne) DoNothing() *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CandidateCreate.OnConflict
// documentation for more info.
func (u *CandidateUpsertOne) Update(set func(*CandidateUpsert)) *CandidateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CandidateUpsert{UpdateSet: update})
	}))
	return u
}

// SetProviderID sets the "provider_id" field.
func (u *CandidateUpsertOne) SetProviderID(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateProviderID() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateProviderID()
	})
}

// SetFullName sets the "full_name" field.
func (u *CandidateUpsertOne) SetFullName(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateFullName() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateFullName()
	})
}

// SetHeadline sets the "headline" field.
func (u *CandidateUpsertOne) SetHeadline(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetHeadline(v)
	})
}

// UpdateHeadline sets the "headline" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateHeadline() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateHeadline()
	})
}

// ClearHeadline clears the value of the "headline" field.
func (u *CandidateUpsertOne) ClearHeadline() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearHeadline()
	})
}

// SetLocation sets the "location" field.
func (u *CandidateUpsertOne) SetLocation(v string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateLocation() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *CandidateUpsertOne) ClearLocation() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLocation()
	})
}

// SetLanguages sets the "languages" field.
func (u *CandidateUpsertOne) SetLanguages(v []string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLanguages(v)
	})
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateLanguages() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLanguages()
	})
}

// ClearLanguages clears the value of the "languages" field.
func (u *CandidateUpsertOne) ClearLanguages() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLanguages()
	})
}

// SetSkills sets the "skills" field.
func (u *CandidateUpsertOne) SetSkills(v []string) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateSkills() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateSkills()
	})
}

// ClearSkills clears the value of the "skills" field.
func (u *CandidateUpsertOne) ClearSkills() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearSkills()
	})
}

// SetYearsExperience sets the "years_experience" field.
func (u *CandidateUpsertOne) SetYearsExperience(v float64) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetYearsExperience(v)
	})
}

// AddYearsExperience adds v to the "years_experience" field.
func (u *CandidateUpsertOne) AddYearsExperience(v float64) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.AddYearsExperience(v)
	})
}

// UpdateYearsExperience sets the "years_experience" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateYearsExperience() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateYearsExperience()
	})
}

// ClearYearsExperience clears the value of the "years_experience" field.
func (u *CandidateUpsertOne) ClearYearsExperience() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearYearsExperience()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CandidateUpsertOne) SetUpdatedAt(v time.Time) *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CandidateUpsertOne) UpdateUpdatedAt() *CandidateUpsertOne {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CandidateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CandidateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CandidateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CandidateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CandidateUpsertOne.ID is not supported by MySQL driver. Use CandidateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CandidateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CandidateCreateBulk is the builder for creating many Candidate entities in bulk.
type CandidateCreateBulk struct {
	config
	err      error
	builders []*CandidateCreate
	conflict []sql.ConflictOption
}

// Save creates the Candidate entities in the database.
func (_c *CandidateCreateBulk) Save(ctx context.Context) ([]*Candidate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Candidate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CandidateMutation)
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
func (_c *CandidateCreateBulk) SaveX(ctx context.Context) []*Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Candidate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CandidateUpsert) {
//			SetProviderID(v+v).
//		}).
//		Exec(ctx)
func (_c *CandidateCreateBulk) OnConflict(opts ...sql.ConflictOption) *CandidateUpsertBulk {
	_c.conflict = opts
	return &CandidateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CandidateCreateBulk) OnConflictColumns(columns ...string) *CandidateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CandidateUpsertBulk{
		create: _c,
	}
}

// CandidateUpsertBulk is the builder for "upsert"-ing
// a bulk of Candidate nodes.
type CandidateUpsertBulk struct {
	create *CandidateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(candidate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CandidateUpsertBulk) UpdateNewValues() *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(candidate.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(candidate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Candidate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CandidateUpsertBulk) Ignore() *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CandidateUpsertBulk) DoNothing() *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CandidateCreateBulk.OnConflict
// documentation for more info.
func (u *CandidateUpsertBulk) Update(set func(*CandidateUpsert)) *CandidateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CandidateUpsert{UpdateSet: update})
	}))
	return u
}

// SetProviderID sets the "provider_id" field.
func (u *CandidateUpsertBulk) SetProviderID(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateProviderID() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateProviderID()
	})
}

// SetFullName sets the "full_name" field.
func (u *CandidateUpsertBulk) SetFullName(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateFullName() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateFullName()
	})
}

// SetHeadline sets the "headline" field.
func (u *CandidateUpsertBulk) SetHeadline(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetHeadline(v)
	})
}

// UpdateHeadline sets the "headline" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateHeadline() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateHeadline()
	})
}

// ClearHeadline clears the value of the "headline" field.
func (u *CandidateUpsertBulk) ClearHeadline() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearHeadline()
	})
}

// SetLocation sets the "location" field.
func (u *CandidateUpsertBulk) SetLocation(v string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateLocation() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *CandidateUpsertBulk) ClearLocation() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLocation()
	})
}

// SetLanguages sets the "languages" field.
func (u *CandidateUpsertBulk) SetLanguages(v []string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetLanguages(v)
	})
}

// UpdateLanguages sets the "languages" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateLanguages() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateLanguages()
	})
}

// ClearLanguages clears the value of the "languages" field.
func (u *CandidateUpsertBulk) ClearLanguages() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearLanguages()
	})
}

// SetSkills sets the "skills" field.
func (u *CandidateUpsertBulk) SetSkills(v []string) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateSkills() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateSkills()
	})
}

// ClearSkills clears the value of the "skills" field.
func (u *CandidateUpsertBulk) ClearSkills() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearSkills()
	})
}

// SetYearsExperience sets the "years_experience" field.
func (u *CandidateUpsertBulk) SetYearsExperience(v float64) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetYearsExperience(v)
	})
}

// AddYearsExperience adds v to the "years_experience" field.
func (u *CandidateUpsertBulk) AddYearsExperience(v float64) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.AddYearsExperience(v)
	})
}

// UpdateYearsExperience sets the "years_experience" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateYearsExperience() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateYearsExperience()
	})
}

// ClearYearsExperience clears the value of the "years_experience" field.
func (u *CandidateUpsertBulk) ClearYearsExperience() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.ClearYearsExperience()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CandidateUpsertBulk) SetUpdatedAt(v time.Time) *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CandidateUpsertBulk) UpdateUpdatedAt() *CandidateUpsertBulk {
	return u.Update(func(s *CandidateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CandidateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CandidateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CandidateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CandidateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
