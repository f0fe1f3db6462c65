// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireflow/scout/ent/accountcounter"
	"github.com/hireflow/scout/ent/agentassessment"
	"github.com/hireflow/scout/ent/candidate"
	"github.com/hireflow/scout/ent/candidatesignal"
	"github.com/hireflow/scout/ent/conversation"
	"github.com/hireflow/scout/ent/idempotencyrecord"
	"github.com/hireflow/scout/ent/job"
	"github.com/hireflow/scout/ent/jobaccountassignment"
	"github.com/hireflow/scout/ent/jobstepprogress"
	"github.com/hireflow/scout/ent/match"
	"github.com/hireflow/scout/ent/message"
	"github.com/hireflow/scout/ent/operationlog"
	"github.com/hireflow/scout/ent/outboundaction"
	"github.com/hireflow/scout/ent/predicate"
	"github.com/hireflow/scout/ent/preresumeevent"
	"github.com/hireflow/scout/ent/preresumesession"
	"github.com/hireflow/scout/ent/senderaccount"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccountCounter       = "AccountCounter"
	TypeAgentAssessment      = "AgentAssessment"
	TypeCandidate            = "Candidate"
	TypeCandidateSignal      = "CandidateSignal"
	TypeConversation         = "Conversation"
	TypeIdempotencyRecord    = "IdempotencyRecord"
	TypeJob                  = "Job"
	TypeJobAccountAssignment = "JobAccountAssignment"
	TypeJobStepProgress      = "JobStepProgress"
	TypeMatch                = "Match"
	TypeMessage              = "Message"
	TypeOperationLog         = "OperationLog"
	TypeOutboundAction       = "OutboundAction"
	TypePreResumeEvent       = "PreResumeEvent"
	TypePreResumeSession     = "PreResumeSession"
	TypeSenderAccount        = "SenderAccount"
)

// AccountCounterMutation represents an operation that mutates the AccountCounter nodes in the graph.
type AccountCounterMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	account_id          *string
	period              *accountcounter.Period
	period_start        *time.Time
	new_threads_sent    *int
	addnew_threads_sent *int
	connects_sent       *int
	addconnects_sent    *int
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AccountCounter, error)
	predicates          []predicate.AccountCounter
}

var _ ent.Mutation = (*AccountCounterMutation)(nil)

// accountcounterOption allows management of the mutation configuration using functional options.
type accountcounterOption func(*AccountCounterMutation)

// newAccountCounterMutation creates new mutation for the AccountCounter entity.
func newAccountCounterMutation(c config, op Op, opts ...accountcounterOption) *AccountCounterMutation {
	m := &AccountCounterMutation{
		config:        c,
		op:            op,
		typ:           TypeAccountCounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountCounterID sets the ID field of the mutation.
func withAccountCounterID(id int) accountcounterOption {
	return func(m *AccountCounterMutation) {
		var (
			err   error
			once  sync.Once
			value *AccountCounter
		)
		m.oldValue = func(ctx context.Context) (*AccountCounter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AccountCounter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccountCounter sets the old AccountCounter of the mutation.
func withAccountCounter(node *AccountCounter) accountcounterOption {
	return func(m *AccountCounterMutation) {
		m.oldValue = func(context.Context) (*AccountCounter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountCounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountCounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountCounterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountCounterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AccountCounter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *AccountCounterMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *AccountCounterMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the AccountCounter entity.
// If the AccountCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountCounterMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *AccountCounterMutation) ResetAccountID() {
	m.account_id = nil
}

// SetPeriod sets the "period" field.
func (m *AccountCounterMutation) SetPeriod(a accountcounter.Period) {
	m.period = &a
}

// Period returns the value of the "period" field in the mutation.
func (m *AccountCounterMutation) Period() (r accountcounter.Period, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the AccountCounter entity.
// If the AccountCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountCounterMutation) OldPeriod(ctx context.Context) (v accountcounter.Period, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ResetPeriod resets all changes to the "period" field.
func (m *AccountCounterMutation) ResetPeriod() {
	m.period = nil
}

// SetPeriodStart sets the "period_start" field.
func (m *AccountCounterMutation) SetPeriodStart(t time.Time) {
	m.period_start = &t
}

// PeriodStart returns the value of the "period_start" field in the mutation.
func (m *AccountCounterMutation) PeriodStart() (r time.Time, exists bool) {
	v := m.period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodStart returns the old "period_start" field's value of the AccountCounter entity.
// If the AccountCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountCounterMutation) OldPeriodStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodStart: %w", err)
	}
	return oldValue.PeriodStart, nil
}

// ResetPeriodStart resets all changes to the "period_start" field.
func (m *AccountCounterMutation) ResetPeriodStart() {
	m.period_start = nil
}

// SetNewThreadsSent sets the "new_threads_sent" field.
func (m *AccountCounterMutation) SetNewThreadsSent(i int) {
	m.new_threads_sent = &i
	m.addnew_threads_sent = nil
}

// NewThreadsSent returns the value of the "new_threads_sent" field in the mutation.
func (m *AccountCounterMutation) NewThreadsSent() (r int, exists bool) {
	v := m.new_threads_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldNewThreadsSent returns the old "new_threads_sent" field's value of the AccountCounter entity.
// If the AccountCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountCounterMutation) OldNewThreadsSent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewThreadsSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewThreadsSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewThreadsSent: %w", err)
	}
	return oldValue.NewThreadsSent, nil
}

// AddNewThreadsSent adds i to the "new_threads_sent" field.
func (m *AccountCounterMutation) AddNewThreadsSent(i int) {
	if m.addnew_threads_sent != nil {
		*m.addnew_threads_sent += i
	} else {
		m.addnew_threads_sent = &i
	}
}

// AddedNewThreadsSent returns the value that was added to the "new_threads_sent" field in this mutation.
func (m *AccountCounterMutation) AddedNewThreadsSent() (r int, exists bool) {
	v := m.addnew_threads_sent
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewThreadsSent resets all changes to the "new_threads_sent" field.
func (m *AccountCounterMutation) ResetNewThreadsSent() {
	m.new_threads_sent = nil
	m.addnew_threads_sent = nil
}

// SetConnectsSent sets the "connects_sent" field.
func (m *AccountCounterMutation) SetConnectsSent(i int) {
	m.connects_sent = &i
	m.addconnects_sent = nil
}

// ConnectsSent returns the value of the "connects_sent" field in the mutation.
func (m *AccountCounterMutation) ConnectsSent() (r int, exists bool) {
	v := m.connects_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectsSent returns the old "connects_sent" field's value of the AccountCounter entity.
// If the AccountCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountCounterMutation) OldConnectsSent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectsSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectsSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectsSent: %w", err)
	}
	return oldValue.ConnectsSent, nil
}

// AddConnectsSent adds i to the "connects_sent" field.
func (m *AccountCounterMutation) AddConnectsSent(i int) {
	if m.addconnects_sent != nil {
		*m.addconnects_sent += i
	} else {
		m.addconnects_sent = &i
	}
}

// AddedConnectsSent returns the value that was added to the "connects_sent" field in this mutation.
func (m *AccountCounterMutation) AddedConnectsSent() (r int, exists bool) {
	v := m.addconnects_sent
	if v == nil {
		return
	}
	return *v, true
}

// ResetConnectsSent resets all changes to the "connects_sent" field.
func (m *AccountCounterMutation) ResetConnectsSent() {
	m.connects_sent = nil
	m.addconnects_sent = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AccountCounterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AccountCounterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AccountCounter entity.
// If the AccountCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountCounterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AccountCounterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AccountCounterMutation builder.
func (m *AccountCounterMutation) Where(ps ...predicate.AccountCounter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountCounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountCounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AccountCounter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountCounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountCounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AccountCounter).
func (m *AccountCounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountCounterMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.account_id != nil {
		fields = append(fields, accountcounter.FieldAccountID)
	}
	if m.period != nil {
		fields = append(fields, accountcounter.FieldPeriod)
	}
	if m.period_start != nil {
		fields = append(fields, accountcounter.FieldPeriodStart)
	}
	if m.new_threads_sent != nil {
		fields = append(fields, accountcounter.FieldNewThreadsSent)
	}
	if m.connects_sent != nil {
		fields = append(fields, accountcounter.FieldConnectsSent)
	}
	if m.updated_at != nil {
		fields = append(fields, accountcounter.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountCounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case accountcounter.FieldAccountID:
		return m.AccountID()
	case accountcounter.FieldPeriod:
		return m.Period()
	case accountcounter.FieldPeriodStart:
		return m.PeriodStart()
	case accountcounter.FieldNewThreadsSent:
		return m.NewThreadsSent()
	case accountcounter.FieldConnectsSent:
		return m.ConnectsSent()
	case accountcounter.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountCounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case accountcounter.FieldAccountID:
		return m.OldAccountID(ctx)
	case accountcounter.FieldPeriod:
		return m.OldPeriod(ctx)
	case accountcounter.FieldPeriodStart:
		return m.OldPeriodStart(ctx)
	case accountcounter.FieldNewThreadsSent:
		return m.OldNewThreadsSent(ctx)
	case accountcounter.FieldConnectsSent:
		return m.OldConnectsSent(ctx)
	case accountcounter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AccountCounter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountCounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case accountcounter.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case accountcounter.FieldPeriod:
		v, ok := value.(accountcounter.Period)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case accountcounter.FieldPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodStart(v)
		return nil
	case accountcounter.FieldNewThreadsSent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewThreadsSent(v)
		return nil
	case accountcounter.FieldConnectsSent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectsSent(v)
		return nil
	case accountcounter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AccountCounter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountCounterMutation) AddedFields() []string {
	var fields []string
	if m.addnew_threads_sent != nil {
		fields = append(fields, accountcounter.FieldNewThreadsSent)
	}
	if m.addconnects_sent != nil {
		fields = append(fields, accountcounter.FieldConnectsSent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountCounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case accountcounter.FieldNewThreadsSent:
		return m.AddedNewThreadsSent()
	case accountcounter.FieldConnectsSent:
		return m.AddedConnectsSent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountCounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case accountcounter.FieldNewThreadsSent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewThreadsSent(v)
		return nil
	case accountcounter.FieldConnectsSent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConnectsSent(v)
		return nil
	}
	return fmt.Errorf("unknown AccountCounter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountCounterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountCounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountCounterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AccountCounter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountCounterMutation) ResetField(name string) error {
	switch name {
	case accountcounter.FieldAccountID:
		m.ResetAccountID()
		return nil
	case accountcounter.FieldPeriod:
		m.ResetPeriod()
		return nil
	case accountcounter.FieldPeriodStart:
		m.ResetPeriodStart()
		return nil
	case accountcounter.FieldNewThreadsSent:
		m.ResetNewThreadsSent()
		return nil
	case accountcounter.FieldConnectsSent:
		m.ResetConnectsSent()
		return nil
	case accountcounter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AccountCounter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountCounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountCounterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountCounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountCounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountCounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountCounterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountCounterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AccountCounter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountCounterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AccountCounter edge %s", name)
}

// AgentAssessmentMutation represents an operation that mutates the AgentAssessment nodes in the graph.
type AgentAssessmentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	job_id        *string
	candidate_id  *string
	agent_key     *agentassessment.AgentKey
	stage_key     *string
	score         *float64
	addscore      *float64
	status        *string
	reason        *string
	details       *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AgentAssessment, error)
	predicates    []predicate.AgentAssessment
}

var _ ent.Mutation = (*AgentAssessmentMutation)(nil)

// agentassessmentOption allows management of the mutation configuration using functional options.
type agentassessmentOption func(*AgentAssessmentMutation)

// newAgentAssessmentMutation creates new mutation for the AgentAssessment entity.
func newAgentAssessmentMutation(c config, op Op, opts ...agentassessmentOption) *AgentAssessmentMutation {
	m := &AgentAssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentAssessmentID sets the ID field of the mutation.
func withAgentAssessmentID(id string) agentassessmentOption {
	return func(m *AgentAssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentAssessment
		)
		m.oldValue = func(ctx context.Context) (*AgentAssessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentAssessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentAssessment sets the old AgentAssessment of the mutation.
func withAgentAssessment(node *AgentAssessment) agentassessmentOption {
	return func(m *AgentAssessmentMutation) {
		m.oldValue = func(context.Context) (*AgentAssessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentAssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentAssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentAssessment entities.
func (m *AgentAssessmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentAssessmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentAssessmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentAssessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *AgentAssessmentMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *AgentAssessmentMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the AgentAssessment entity.
// If the AgentAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentAssessmentMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *AgentAssessmentMutation) ResetJobID() {
	m.job_id = nil
}

// SetCandidateID sets the "candidate_id" field.
func (m *AgentAssessmentMutation) SetCandidateID(s string) {
	m.candidate_id = &s
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *AgentAssessmentMutation) CandidateID() (r string, exists bool) {
	v := m.candidate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the AgentAssessment entity.
// If the AgentAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentAssessmentMutation) OldCandidateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *AgentAssessmentMutation) ResetCandidateID() {
	m.candidate_id = nil
}

// SetAgentKey sets the "agent_key" field.
func (m *AgentAssessmentMutation) SetAgentKey(ak agentassessment.AgentKey) {
	m.agent_key = &ak
}

// AgentKey returns the value of the "agent_key" field in the mutation.
func (m *AgentAssessmentMutation) AgentKey() (r agentassessment.AgentKey, exists bool) {
	v := m.agent_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKey returns the old "agent_key" field's value of the AgentAssessment entity.
// If the AgentAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentAssessmentMutation) OldAgentKey(ctx context.Context) (v agentassessment.AgentKey, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKey: %w", err)
	}
	return oldValue.AgentKey, nil
}

// ResetAgentKey resets all changes to the "agent_key" field.
func (m *AgentAssessmentMutation) ResetAgentKey() {
	m.agent_key = nil
}

// SetStageKey sets the "stage_key" field.
func (m *AgentAssessmentMutation) SetStageKey(s string) {
	m.stage_key = &s
}

// StageKey returns the value of the "stage_key" field in the mutation.
func (m *AgentAssessmentMutation) StageKey() (r string, exists bool) {
	v := m.stage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStageKey returns the old "stage_key" field's value of the AgentAssessment entity.
// If the AgentAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentAssessmentMutation) OldStageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageKey: %w", err)
	}
	return oldValue.StageKey, nil
}

// ResetStageKey resets all changes to the "stage_key" field.
func (m *AgentAssessmentMutation) ResetStageKey() {
	m.stage_key = nil
}

// SetScore sets the "score" field.
func (m *AgentAssessmentMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *AgentAssessmentMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the AgentAssessment entity.
// If the AgentAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentAssessmentMutation) OldScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *AgentAssessmentMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *AgentAssessmentMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *AgentAssessmentMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[agentassessment.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *AgentAssessmentMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[agentassessment.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *AgentAssessmentMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, agentassessment.FieldScore)
}

// SetStatus sets the "status" field.
func (m *AgentAssessmentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentAssessmentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentAssessment entity.
// If the AgentAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentAssessmentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentAssessmentMutation) ResetStatus() {
	m.status = nil
}

// SetReason sets the "reason" field.
func (m *AgentAssessmentMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AgentAssessmentMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the AgentAssessment entity.
// If the AgentAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentAssessmentMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *AgentAssessmentMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[agentassessment.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *AgentAssessmentMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[agentassessment.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *AgentAssessmentMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, agentassessment.FieldReason)
}

// SetDetails sets the "details" field.
func (m *AgentAssessmentMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AgentAssessmentMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AgentAssessment entity.
// If the AgentAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentAssessmentMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AgentAssessmentMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[agentassessment.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AgentAssessmentMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[agentassessment.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AgentAssessmentMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, agentassessment.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentAssessmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentAssessmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentAssessment entity.
// If the AgentAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentAssessmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentAssessmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentAssessmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentAssessmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentAssessment entity.
// If the AgentAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentAssessmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentAssessmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentAssessmentMutation builder.
func (m *AgentAssessmentMutation) Where(ps ...predicate.AgentAssessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentAssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentAssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentAssessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentAssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentAssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentAssessment).
func (m *AgentAssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentAssessmentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.job_id != nil {
		fields = append(fields, agentassessment.FieldJobID)
	}
	if m.candidate_id != nil {
		fields = append(fields, agentassessment.FieldCandidateID)
	}
	if m.agent_key != nil {
		fields = append(fields, agentassessment.FieldAgentKey)
	}
	if m.stage_key != nil {
		fields = append(fields, agentassessment.FieldStageKey)
	}
	if m.score != nil {
		fields = append(fields, agentassessment.FieldScore)
	}
	if m.status != nil {
		fields = append(fields, agentassessment.FieldStatus)
	}
	if m.reason != nil {
		fields = append(fields, agentassessment.FieldReason)
	}
	if m.details != nil {
		fields = append(fields, agentassessment.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, agentassessment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentassessment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentAssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentassessment.FieldJobID:
		return m.JobID()
	case agentassessment.FieldCandidateID:
		return m.CandidateID()
	case agentassessment.FieldAgentKey:
		return m.AgentKey()
	case agentassessment.FieldStageKey:
		return m.StageKey()
	case agentassessment.FieldScore:
		return m.Score()
	case agentassessment.FieldStatus:
		return m.Status()
	case agentassessment.FieldReason:
		return m.Reason()
	case agentassessment.FieldDetails:
		return m.Details()
	case agentassessment.FieldCreatedAt:
		return m.CreatedAt()
	case agentassessment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentAssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentassessment.FieldJobID:
		return m.OldJobID(ctx)
	case agentassessment.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case agentassessment.FieldAgentKey:
		return m.OldAgentKey(ctx)
	case agentassessment.FieldStageKey:
		return m.OldStageKey(ctx)
	case agentassessment.FieldScore:
		return m.OldScore(ctx)
	case agentassessment.FieldStatus:
		return m.OldStatus(ctx)
	case agentassessment.FieldReason:
		return m.OldReason(ctx)
	case agentassessment.FieldDetails:
		return m.OldDetails(ctx)
	case agentassessment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentassessment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentAssessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentAssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentassessment.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case agentassessment.FieldCandidateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case agentassessment.FieldAgentKey:
		v, ok := value.(agentassessment.AgentKey)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKey(v)
		return nil
	case agentassessment.FieldStageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageKey(v)
		return nil
	case agentassessment.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case agentassessment.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentassessment.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case agentassessment.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case agentassessment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentassessment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentAssessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentAssessmentMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, agentassessment.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentAssessmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentassessment.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentAssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentassessment.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown AgentAssessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentAssessmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentassessment.FieldScore) {
		fields = append(fields, agentassessment.FieldScore)
	}
	if m.FieldCleared(agentassessment.FieldReason) {
		fields = append(fields, agentassessment.FieldReason)
	}
	if m.FieldCleared(agentassessment.FieldDetails) {
		fields = append(fields, agentassessment.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentAssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentAssessmentMutation) ClearField(name string) error {
	switch name {
	case agentassessment.FieldScore:
		m.ClearScore()
		return nil
	case agentassessment.FieldReason:
		m.ClearReason()
		return nil
	case agentassessment.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown AgentAssessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentAssessmentMutation) ResetField(name string) error {
	switch name {
	case agentassessment.FieldJobID:
		m.ResetJobID()
		return nil
	case agentassessment.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case agentassessment.FieldAgentKey:
		m.ResetAgentKey()
		return nil
	case agentassessment.FieldStageKey:
		m.ResetStageKey()
		return nil
	case agentassessment.FieldScore:
		m.ResetScore()
		return nil
	case agentassessment.FieldStatus:
		m.ResetStatus()
		return nil
	case agentassessment.FieldReason:
		m.ResetReason()
		return nil
	case agentassessment.FieldDetails:
		m.ResetDetails()
		return nil
	case agentassessment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentassessment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentAssessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentAssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentAssessmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentAssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentAssessmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentAssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentAssessmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentAssessmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentAssessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentAssessmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentAssessment edge %s", name)
}

// CandidateMutation represents an operation that mutates the Candidate nodes in the graph.
type CandidateMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	provider_id          *string
	full_name            *string
	headline             *string
	location             *string
	languages            *[]string
	appendlanguages      []string
	skills               *[]string
	appendskills         []string
	years_experience     *float64
	addyears_experience  *float64
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	matches              map[string]struct{}
	removedmatches       map[string]struct{}
	clearedmatches       bool
	conversations        map[string]struct{}
	removedconversations map[string]struct{}
	clearedconversations bool
	done                 bool
	oldValue             func(context.Context) (*Candidate, error)
	predicates           []predicate.Candidate
}

var _ ent.Mutation = (*CandidateMutation)(nil)

// candidateOption allows management of the mutation configuration using functional options.
type candidateOption func(*CandidateMutation)

// newCandidateMutation creates new mutation for the Candidate entity.
func newCandidateMutation(c config, op Op, opts ...candidateOption) *CandidateMutation {
	m := &CandidateMutation{
		config:        c,
		op:            op,
		typ:           TypeCandidate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCandidateID sets the ID field of the mutation.
func withCandidateID(id string) candidateOption {
	return func(m *CandidateMutation) {
		var (
			err   error
			once  sync.Once
			value *Candidate
		)
		m.oldValue = func(ctx context.Context) (*Candidate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Candidate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCandidate sets the old Candidate of the mutation.
func withCandidate(node *Candidate) candidateOption {
	return func(m *CandidateMutation) {
		m.oldValue = func(context.Context) (*Candidate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CandidateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CandidateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Candidate entities.
func (m *CandidateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CandidateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CandidateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Candidate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProviderID sets the "provider_id" field.
func (m *CandidateMutation) SetProviderID(s string) {
	m.provider_id = &s
}

// ProviderID returns the value of the "provider_id" field in the mutation.
func (m *CandidateMutation) ProviderID() (r string, exists bool) {
	v := m.provider_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderID returns the old "provider_id" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldProviderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderID: %w", err)
	}
	return oldValue.ProviderID, nil
}

// ResetProviderID resets all changes to the "provider_id" field.
func (m *CandidateMutation) ResetProviderID() {
	m.provider_id = nil
}

// SetFullName sets the "full_name" field.
func (m *CandidateMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *CandidateMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *CandidateMutation) ResetFullName() {
	m.full_name = nil
}

// SetHeadline sets the "headline" field.
func (m *CandidateMutation) SetHeadline(s string) {
	m.headline = &s
}

// Headline returns the value of the "headline" field in the mutation.
func (m *CandidateMutation) Headline() (r string, exists bool) {
	v := m.headline
	if v == nil {
		return
	}
	return *v, true
}

// OldHeadline returns the old "headline" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldHeadline(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeadline: %w", err)
	}
	return oldValue.Headline, nil
}

// ClearHeadline clears the value of the "headline" field.
func (m *CandidateMutation) ClearHeadline() {
	m.headline = nil
	m.clearedFields[candidate.FieldHeadline] = struct{}{}
}

// HeadlineCleared returns if the "headline" field was cleared in this mutation.
func (m *CandidateMutation) HeadlineCleared() bool {
	_, ok := m.clearedFields[candidate.FieldHeadline]
	return ok
}

// ResetHeadline resets all changes to the "headline" field.
func (m *CandidateMutation) ResetHeadline() {
	m.headline = nil
	delete(m.clearedFields, candidate.FieldHeadline)
}

// SetLocation sets the "location" field.
func (m *CandidateMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *CandidateMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *CandidateMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[candidate.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *CandidateMutation) LocationCleared() bool {
	_, ok := m.clearedFields[candidate.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *CandidateMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, candidate.FieldLocation)
}

// SetLanguages sets the "languages" field.
func (m *CandidateMutation) SetLanguages(s []string) {
	m.languages = &s
	m.appendlanguages = nil
}

// Languages returns the value of the "languages" field in the mutation.
func (m *CandidateMutation) Languages() (r []string, exists bool) {
	v := m.languages
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguages returns the old "languages" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldLanguages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguages: %w", err)
	}
	return oldValue.Languages, nil
}

// AppendLanguages adds s to the "languages" field.
func (m *CandidateMutation) AppendLanguages(s []string) {
	m.appendlanguages = append(m.appendlanguages, s...)
}

// AppendedLanguages returns the list of values that were appended to the "languages" field in this mutation.
func (m *CandidateMutation) AppendedLanguages() ([]string, bool) {
	if len(m.appendlanguages) == 0 {
		return nil, false
	}
	return m.appendlanguages, true
}

// ClearLanguages clears the value of the "languages" field.
func (m *CandidateMutation) ClearLanguages() {
	m.languages = nil
	m.appendlanguages = nil
	m.clearedFields[candidate.FieldLanguages] = struct{}{}
}

// LanguagesCleared returns if the "languages" field was cleared in this mutation.
func (m *CandidateMutation) LanguagesCleared() bool {
	_, ok := m.clearedFields[candidate.FieldLanguages]
	return ok
}

// ResetLanguages resets all changes to the "languages" field.
func (m *CandidateMutation) ResetLanguages() {
	m.languages = nil
	m.appendlanguages = nil
	delete(m.clearedFields, candidate.FieldLanguages)
}

// SetSkills sets the "skills" field.
func (m *CandidateMutation) SetSkills(s []string) {
	m.skills = &s
	m.appendskills = nil
}

// Skills returns the value of the "skills" field in the mutation.
func (m *CandidateMutation) Skills() (r []string, exists bool) {
	v := m.skills
	if v == nil {
		return
	}
	return *v, true
}

// OldSkills returns the old "skills" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldSkills(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkills: %w", err)
	}
	return oldValue.Skills, nil
}

// AppendSkills adds s to the "skills" field.
func (m *CandidateMutation) AppendSkills(s []string) {
	m.appendskills = append(m.appendskills, s...)
}

// AppendedSkills returns the list of values that were appended to the "skills" field in this mutation.
func (m *CandidateMutation) AppendedSkills() ([]string, bool) {
	if len(m.appendskills) == 0 {
		return nil, false
	}
	return m.appendskills, true
}

// ClearSkills clears the value of the "skills" field.
func (m *CandidateMutation) ClearSkills() {
	m.skills = nil
	m.appendskills = nil
	m.clearedFields[candidate.FieldSkills] = struct{}{}
}

// SkillsCleared returns if the "skills" field was cleared in this mutation.
func (m *CandidateMutation) SkillsCleared() bool {
	_, ok := m.clearedFields[candidate.FieldSkills]
	return ok
}

// ResetSkills resets all changes to the "skills" field.
func (m *CandidateMutation) ResetSkills() {
	m.skills = nil
	m.appendskills = nil
	delete(m.clearedFields, candidate.FieldSkills)
}

// SetYearsExperience sets the "years_experience" field.
func (m *CandidateMutation) SetYearsExperience(f float64) {
	m.years_experience = &f
	m.addyears_experience = nil
}

// YearsExperience returns the value of the "years_experience" field in the mutation.
func (m *CandidateMutation) YearsExperience() (r float64, exists bool) {
	v := m.years_experience
	if v == nil {
		return
	}
	return *v, true
}

// OldYearsExperience returns the old "years_experience" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldYearsExperience(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearsExperience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearsExperience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearsExperience: %w", err)
	}
	return oldValue.YearsExperience, nil
}

// AddYearsExperience adds f to the "years_experience" field.
func (m *CandidateMutation) AddYearsExperience(f float64) {
	if m.addyears_experience != nil {
		*m.addyears_experience += f
	} else {
		m.addyears_experience = &f
	}
}

// AddedYearsExperience returns the value that was added to the "years_experience" field in this mutation.
func (m *CandidateMutation) AddedYearsExperience() (r float64, exists bool) {
	v := m.addyears_experience
	if v == nil {
		return
	}
	return *v, true
}

// ClearYearsExperience clears the value of the "years_experience" field.
func (m *CandidateMutation) ClearYearsExperience() {
	m.years_experience = nil
	m.addyears_experience = nil
	m.clearedFields[candidate.FieldYearsExperience] = struct{}{}
}

// YearsExperienceCleared returns if the "years_experience" field was cleared in this mutation.
func (m *CandidateMutation) YearsExperienceCleared() bool {
	_, ok := m.clearedFields[candidate.FieldYearsExperience]
	return ok
}

// ResetYearsExperience resets all changes to the "years_experience" field.
func (m *CandidateMutation) ResetYearsExperience() {
	m.years_experience = nil
	m.addyears_experience = nil
	delete(m.clearedFields, candidate.FieldYearsExperience)
}

// SetCreatedAt sets the "created_at" field.
func (m *CandidateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CandidateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CandidateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CandidateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CandidateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CandidateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMatchIDs adds the "matches" edge to the Match entity by ids.
func (m *CandidateMutation) AddMatchIDs(ids ...string) {
	if m.matches == nil {
		m.matches = make(map[string]struct{})
	}
	for i := range ids {
		m.matches[ids[i]] = struct{}{}
	}
}

// ClearMatches clears the "matches" edge to the Match entity.
func (m *CandidateMutation) ClearMatches() {
	m.clearedmatches = true
}

// MatchesCleared reports if the "matches" edge to the Match entity was cleared.
func (m *CandidateMutation) MatchesCleared() bool {
	return m.clearedmatches
}

// RemoveMatchIDs removes the "matches" edge to the Match entity by IDs.
func (m *CandidateMutation) RemoveMatchIDs(ids ...string) {
	if m.removedmatches == nil {
		m.removedmatches = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.matches, ids[i])
		m.removedmatches[ids[i]] = struct{}{}
	}
}

// RemovedMatches returns the removed IDs of the "matches" edge to the Match entity.
func (m *CandidateMutation) RemovedMatchesIDs() (ids []string) {
	for id := range m.removedmatches {
		ids = append(ids, id)
	}
	return
}

// MatchesIDs returns the "matches" edge IDs in the mutation.
func (m *CandidateMutation) MatchesIDs() (ids []string) {
	for id := range m.matches {
		ids = append(ids, id)
	}
	return
}

// ResetMatches resets all changes to the "matches" edge.
func (m *CandidateMutation) ResetMatches() {
	m.matches = nil
	m.clearedmatches = false
	m.removedmatches = nil
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by ids.
func (m *CandidateMutation) AddConversationIDs(ids ...string) {
	if m.conversations == nil {
		m.conversations = make(map[string]struct{})
	}
	for i := range ids {
		m.conversations[ids[i]] = struct{}{}
	}
}

// ClearConversations clears the "conversations" edge to the Conversation entity.
func (m *CandidateMutation) ClearConversations() {
	m.clearedconversations = true
}

// ConversationsCleared reports if the "conversations" edge to the Conversation entity was cleared.
func (m *CandidateMutation) ConversationsCleared() bool {
	return m.clearedconversations
}

// RemoveConversationIDs removes the "conversations" edge to the Conversation entity by IDs.
func (m *CandidateMutation) RemoveConversationIDs(ids ...string) {
	if m.removedconversations == nil {
		m.removedconversations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.conversations, ids[i])
		m.removedconversations[ids[i]] = struct{}{}
	}
}

// RemovedConversations returns the removed IDs of the "conversations" edge to the Conversation entity.
func (m *CandidateMutation) RemovedConversationsIDs() (ids []string) {
	for id := range m.removedconversations {
		ids = append(ids, id)
	}
	return
}

// ConversationsIDs returns the "conversations" edge IDs in the mutation.
func (m *CandidateMutation) ConversationsIDs() (ids []string) {
	for id := range m.conversations {
		ids = append(ids, id)
	}
	return
}

// ResetConversations resets all changes to the "conversations" edge.
func (m *CandidateMutation) ResetConversations() {
	m.conversations = nil
	m.clearedconversations = false
	m.removedconversations = nil
}

// Where appends a list predicates to the CandidateMutation builder.
func (m *CandidateMutation) Where(ps ...predicate.Candidate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CandidateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CandidateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Candidate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CandidateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CandidateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Candidate).
func (m *CandidateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CandidateMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.provider_id != nil {
		fields = append(fields, candidate.FieldProviderID)
	}
	if m.full_name != nil {
		fields = append(fields, candidate.FieldFullName)
	}
	if m.headline != nil {
		fields = append(fields, candidate.FieldHeadline)
	}
	if m.location != nil {
		fields = append(fields, candidate.FieldLocation)
	}
	if m.languages != nil {
		fields = append(fields, candidate.FieldLanguages)
	}
	if m.skills != nil {
		fields = append(fields, candidate.FieldSkills)
	}
	if m.years_experience != nil {
		fields = append(fields, candidate.FieldYearsExperience)
	}
	if m.created_at != nil {
		fields = append(fields, candidate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, candidate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CandidateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case candidate.FieldProviderID:
		return m.ProviderID()
	case candidate.FieldFullName:
		return m.FullName()
	case candidate.FieldHeadline:
		return m.Headline()
	case candidate.FieldLocation:
		return m.Location()
	case candidate.FieldLanguages:
		return m.Languages()
	case candidate.FieldSkills:
		return m.Skills()
	case candidate.FieldYearsExperience:
		return m.YearsExperience()
	case candidate.FieldCreatedAt:
		return m.CreatedAt()
	case candidate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CandidateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case candidate.FieldProviderID:
		return m.OldProviderID(ctx)
	case candidate.FieldFullName:
		return m.OldFullName(ctx)
	case candidate.FieldHeadline:
		return m.OldHeadline(ctx)
	case candidate.FieldLocation:
		return m.OldLocation(ctx)
	case candidate.FieldLanguages:
		return m.OldLanguages(ctx)
	case candidate.FieldSkills:
		return m.OldSkills(ctx)
	case candidate.FieldYearsExperience:
		return m.OldYearsExperience(ctx)
	case candidate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case candidate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Candidate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case candidate.FieldProviderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderID(v)
		return nil
	case candidate.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case candidate.FieldHeadline:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeadline(v)
		return nil
	case candidate.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case candidate.FieldLanguages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguages(v)
		return nil
	case candidate.FieldSkills:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkills(v)
		return nil
	case candidate.FieldYearsExperience:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearsExperience(v)
		return nil
	case candidate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case candidate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Candidate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CandidateMutation) AddedFields() []string {
	var fields []string
	if m.addyears_experience != nil {
		fields = append(fields, candidate.FieldYearsExperience)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CandidateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case candidate.FieldYearsExperience:
		return m.AddedYearsExperience()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case candidate.FieldYearsExperience:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearsExperience(v)
		return nil
	}
	return fmt.Errorf("unknown Candidate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CandidateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(candidate.FieldHeadline) {
		fields = append(fields, candidate.FieldHeadline)
	}
	if m.FieldCleared(candidate.FieldLocation) {
		fields = append(fields, candidate.FieldLocation)
	}
	if m.FieldCleared(candidate.FieldLanguages) {
		fields = append(fields, candidate.FieldLanguages)
	}
	if m.FieldCleared(candidate.FieldSkills) {
		fields = append(fields, candidate.FieldSkills)
	}
	if m.FieldCleared(candidate.FieldYearsExperience) {
		fields = append(fields, candidate.FieldYearsExperience)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CandidateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CandidateMutation) ClearField(name string) error {
	switch name {
	case candidate.FieldHeadline:
		m.ClearHeadline()
		return nil
	case candidate.FieldLocation:
		m.ClearLocation()
		return nil
	case candidate.FieldLanguages:
		m.ClearLanguages()
		return nil
	case candidate.FieldSkills:
		m.ClearSkills()
		return nil
	case candidate.FieldYearsExperience:
		m.ClearYearsExperience()
		return nil
	}
	return fmt.Errorf("unknown Candidate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CandidateMutation) ResetField(name string) error {
	switch name {
	case candidate.FieldProviderID:
		m.ResetProviderID()
		return nil
	case candidate.FieldFullName:
		m.ResetFullName()
		return nil
	case candidate.FieldHeadline:
		m.ResetHeadline()
		return nil
	case candidate.FieldLocation:
		m.ResetLocation()
		return nil
	case candidate.FieldLanguages:
		m.ResetLanguages()
		return nil
	case candidate.FieldSkills:
		m.ResetSkills()
		return nil
	case candidate.FieldYearsExperience:
		m.ResetYearsExperience()
		return nil
	case candidate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case candidate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Candidate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CandidateMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.matches != nil {
		edges = append(edges, candidate.EdgeMatches)
	}
	if m.conversations != nil {
		edges = append(edges, candidate.EdgeConversations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CandidateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case candidate.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.matches))
		for id := range m.matches {
			ids = append(ids, id)
		}
		return ids
	case candidate.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.conversations))
		for id := range m.conversations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CandidateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmatches != nil {
		edges = append(edges, candidate.EdgeMatches)
	}
	if m.removedconversations != nil {
		edges = append(edges, candidate.EdgeConversations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CandidateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case candidate.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.removedmatches))
		for id := range m.removedmatches {
			ids = append(ids, id)
		}
		return ids
	case candidate.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.removedconversations))
		for id := range m.removedconversations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CandidateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmatches {
		edges = append(edges, candidate.EdgeMatches)
	}
	if m.clearedconversations {
		edges = append(edges, candidate.EdgeConversations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CandidateMutation) EdgeCleared(name string) bool {
	switch name {
	case candidate.EdgeMatches:
		return m.clearedmatches
	case candidate.EdgeConversations:
		return m.clearedconversations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CandidateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Candidate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CandidateMutation) ResetEdge(name string) error {
	switch name {
	case candidate.EdgeMatches:
		m.ResetMatches()
		return nil
	case candidate.EdgeConversations:
		m.ResetConversations()
		return nil
	}
	return fmt.Errorf("unknown Candidate edge %s", name)
}

// CandidateSignalMutation represents an operation that mutates the CandidateSignal nodes in the graph.
type CandidateSignalMutation struct {
	config
	op            Op
	typ           string
	id            *int
	candidate_id  *string
	source_type   *candidatesignal.SourceType
	source_id     *string
	signal_type   *string
	category      *string
	title         *string
	detail        *string
	impact        *float64
	addimpact     *float64
	confidence    *float64
	addconfidence *float64
	signal_meta   *map[string]interface{}
	observed_at   *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	job           *string
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*CandidateSignal, error)
	predicates    []predicate.CandidateSignal
}

var _ ent.Mutation = (*CandidateSignalMutation)(nil)

// candidatesignalOption allows management of the mutation configuration using functional options.
type candidatesignalOption func(*CandidateSignalMutation)

// newCandidateSignalMutation creates new mutation for the CandidateSignal entity.
func newCandidateSignalMutation(c config, op Op, opts ...candidatesignalOption) *CandidateSignalMutation {
	m := &CandidateSignalMutation{
		config:        c,
		op:            op,
		typ:           TypeCandidateSignal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCandidateSignalID sets the ID field of the mutation.
func withCandidateSignalID(id int) candidatesignalOption {
	return func(m *CandidateSignalMutation) {
		var (
			err   error
			once  sync.Once
			value *CandidateSignal
		)
		m.oldValue = func(ctx context.Context) (*CandidateSignal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CandidateSignal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCandidateSignal sets the old CandidateSignal of the mutation.
func withCandidateSignal(node *CandidateSignal) candidatesignalOption {
	return func(m *CandidateSignalMutation) {
		m.oldValue = func(context.Context) (*CandidateSignal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CandidateSignalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CandidateSignalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CandidateSignalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CandidateSignalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CandidateSignal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *CandidateSignalMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *CandidateSignalMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the CandidateSignal entity.
// If the CandidateSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateSignalMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *CandidateSignalMutation) ResetJobID() {
	m.job = nil
}

// SetCandidateID sets the "candidate_id" field.
func (m *CandidateSignalMutation) SetCandidateID(s string) {
	m.candidate_id = &s
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *CandidateSignalMutation) CandidateID() (r string, exists bool) {
	v := m.candidate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the CandidateSignal entity.
// If the CandidateSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateSignalMutation) OldCandidateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *CandidateSignalMutation) ResetCandidateID() {
	m.candidate_id = nil
}

// SetSourceType sets the "source_type" field.
func (m *CandidateSignalMutation) SetSourceType(ct candidatesignal.SourceType) {
	m.source_type = &ct
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *CandidateSignalMutation) SourceType() (r candidatesignal.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the CandidateSignal entity.
// If the CandidateSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateSignalMutation) OldSourceType(ctx context.Context) (v candidatesignal.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *CandidateSignalMutation) ResetSourceType() {
	m.source_type = nil
}

// SetSourceID sets the "source_id" field.
func (m *CandidateSignalMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *CandidateSignalMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the CandidateSignal entity.
// If the CandidateSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateSignalMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *CandidateSignalMutation) ResetSourceID() {
	m.source_id = nil
}

// SetSignalType sets the "signal_type" field.
func (m *CandidateSignalMutation) SetSignalType(s string) {
	m.signal_type = &s
}

// SignalType returns the value of the "signal_type" field in the mutation.
func (m *CandidateSignalMutation) SignalType() (r string, exists bool) {
	v := m.signal_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalType returns the old "signal_type" field's value of the CandidateSignal entity.
// If the CandidateSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateSignalMutation) OldSignalType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalType: %w", err)
	}
	return oldValue.SignalType, nil
}

// ResetSignalType resets all changes to the "signal_type" field.
func (m *CandidateSignalMutation) ResetSignalType() {
	m.signal_type = nil
}

// SetCategory sets the "category" field.
func (m *CandidateSignalMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *CandidateSignalMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CandidateSignal entity.
// If the CandidateSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateSignalMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *CandidateSignalMutation) ResetCategory() {
	m.category = nil
}

// SetTitle sets the "title" field.
func (m *CandidateSignalMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CandidateSignalMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CandidateSignal entity.
// If the CandidateSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateSignalMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CandidateSignalMutation) ResetTitle() {
	m.title = nil
}

// SetDetail sets the "detail" field.
func (m *CandidateSignalMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *CandidateSignalMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the CandidateSignal entity.
// If the CandidateSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateSignalMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *CandidateSignalMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[candidatesignal.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *CandidateSignalMutation) DetailCleared() bool {
	_, ok := m.clearedFields[candidatesignal.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *CandidateSignalMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, candidatesignal.FieldDetail)
}

// SetImpact sets the "impact" field.
func (m *CandidateSignalMutation) SetImpact(f float64) {
	m.impact = &f
	m.addimpact = nil
}

// Impact returns the value of the "impact" field in the mutation.
func (m *CandidateSignalMutation) Impact() (r float64, exists bool) {
	v := m.impact
	if v == nil {
		return
	}
	return *v, true
}

// OldImpact returns the old "impact" field's value of the CandidateSignal entity.
// If the CandidateSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateSignalMutation) OldImpact(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpact: %w", err)
	}
	return oldValue.Impact, nil
}

// AddImpact adds f to the "impact" field.
func (m *CandidateSignalMutation) AddImpact(f float64) {
	if m.addimpact != nil {
		*m.addimpact += f
	} else {
		m.addimpact = &f
	}
}

// AddedImpact returns the value that was added to the "impact" field in this mutation.
func (m *CandidateSignalMutation) AddedImpact() (r float64, exists bool) {
	v := m.addimpact
	if v == nil {
		return
	}
	return *v, true
}

// ResetImpact resets all changes to the "impact" field.
func (m *CandidateSignalMutation) ResetImpact() {
	m.impact = nil
	m.addimpact = nil
}

// SetConfidence sets the "confidence" field.
func (m *CandidateSignalMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *CandidateSignalMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the CandidateSignal entity.
// If the CandidateSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateSignalMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *CandidateSignalMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *CandidateSignalMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *CandidateSignalMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSignalMeta sets the "signal_meta" field.
func (m *CandidateSignalMutation) SetSignalMeta(value map[string]interface{}) {
	m.signal_meta = &value
}

// SignalMeta returns the value of the "signal_meta" field in the mutation.
func (m *CandidateSignalMutation) SignalMeta() (r map[string]interface{}, exists bool) {
	v := m.signal_meta
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalMeta returns the old "signal_meta" field's value of the CandidateSignal entity.
// If the CandidateSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateSignalMutation) OldSignalMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalMeta: %w", err)
	}
	return oldValue.SignalMeta, nil
}

// ClearSignalMeta clears the value of the "signal_meta" field.
func (m *CandidateSignalMutation) ClearSignalMeta() {
	m.signal_meta = nil
	m.clearedFields[candidatesignal.FieldSignalMeta] = struct{}{}
}

// SignalMetaCleared returns if the "signal_meta" field was cleared in this mutation.
func (m *CandidateSignalMutation) SignalMetaCleared() bool {
	_, ok := m.clearedFields[candidatesignal.FieldSignalMeta]
	return ok
}

// ResetSignalMeta resets all changes to the "signal_meta" field.
func (m *CandidateSignalMutation) ResetSignalMeta() {
	m.signal_meta = nil
	delete(m.clearedFields, candidatesignal.FieldSignalMeta)
}

// SetObservedAt sets the "observed_at" field.
func (m *CandidateSignalMutation) SetObservedAt(t time.Time) {
	m.observed_at = &t
}

// ObservedAt returns the value of the "observed_at" field in the mutation.
func (m *CandidateSignalMutation) ObservedAt() (r time.Time, exists bool) {
	v := m.observed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldObservedAt returns the old "observed_at" field's value of the CandidateSignal entity.
// If the CandidateSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateSignalMutation) OldObservedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservedAt: %w", err)
	}
	return oldValue.ObservedAt, nil
}

// ResetObservedAt resets all changes to the "observed_at" field.
func (m *CandidateSignalMutation) ResetObservedAt() {
	m.observed_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CandidateSignalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CandidateSignalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CandidateSignal entity.
// If the CandidateSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateSignalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CandidateSignalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *CandidateSignalMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[candidatesignal.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *CandidateSignalMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *CandidateSignalMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *CandidateSignalMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the CandidateSignalMutation builder.
func (m *CandidateSignalMutation) Where(ps ...predicate.CandidateSignal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CandidateSignalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CandidateSignalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CandidateSignal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CandidateSignalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CandidateSignalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CandidateSignal).
func (m *CandidateSignalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CandidateSignalMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.job != nil {
		fields = append(fields, candidatesignal.FieldJobID)
	}
	if m.candidate_id != nil {
		fields = append(fields, candidatesignal.FieldCandidateID)
	}
	if m.source_type != nil {
		fields = append(fields, candidatesignal.FieldSourceType)
	}
	if m.source_id != nil {
		fields = append(fields, candidatesignal.FieldSourceID)
	}
	if m.signal_type != nil {
		fields = append(fields, candidatesignal.FieldSignalType)
	}
	if m.category != nil {
		fields = append(fields, candidatesignal.FieldCategory)
	}
	if m.title != nil {
		fields = append(fields, candidatesignal.FieldTitle)
	}
	if m.detail != nil {
		fields = append(fields, candidatesignal.FieldDetail)
	}
	if m.impact != nil {
		fields = append(fields, candidatesignal.FieldImpact)
	}
	if m.confidence != nil {
		fields = append(fields, candidatesignal.FieldConfidence)
	}
	if m.signal_meta != nil {
		fields = append(fields, candidatesignal.FieldSignalMeta)
	}
	if m.observed_at != nil {
		fields = append(fields, candidatesignal.FieldObservedAt)
	}
	if m.created_at != nil {
		fields = append(fields, candidatesignal.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CandidateSignalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case candidatesignal.FieldJobID:
		return m.JobID()
	case candidatesignal.FieldCandidateID:
		return m.CandidateID()
	case candidatesignal.FieldSourceType:
		return m.SourceType()
	case candidatesignal.FieldSourceID:
		return m.SourceID()
	case candidatesignal.FieldSignalType:
		return m.SignalType()
	case candidatesignal.FieldCategory:
		return m.Category()
	case candidatesignal.FieldTitle:
		return m.Title()
	case candidatesignal.FieldDetail:
		return m.Detail()
	case candidatesignal.FieldImpact:
		return m.Impact()
	case candidatesignal.FieldConfidence:
		return m.Confidence()
	case candidatesignal.FieldSignalMeta:
		return m.SignalMeta()
	case candidatesignal.FieldObservedAt:
		return m.ObservedAt()
	case candidatesignal.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CandidateSignalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case candidatesignal.FieldJobID:
		return m.OldJobID(ctx)
	case candidatesignal.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case candidatesignal.FieldSourceType:
		return m.OldSourceType(ctx)
	case candidatesignal.FieldSourceID:
		return m.OldSourceID(ctx)
	case candidatesignal.FieldSignalType:
		return m.OldSignalType(ctx)
	case candidatesignal.FieldCategory:
		return m.OldCategory(ctx)
	case candidatesignal.FieldTitle:
		return m.OldTitle(ctx)
	case candidatesignal.FieldDetail:
		return m.OldDetail(ctx)
	case candidatesignal.FieldImpact:
		return m.OldImpact(ctx)
	case candidatesignal.FieldConfidence:
		return m.OldConfidence(ctx)
	case candidatesignal.FieldSignalMeta:
		return m.OldSignalMeta(ctx)
	case candidatesignal.FieldObservedAt:
		return m.OldObservedAt(ctx)
	case candidatesignal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CandidateSignal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateSignalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case candidatesignal.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case candidatesignal.FieldCandidateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case candidatesignal.FieldSourceType:
		v, ok := value.(candidatesignal.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case candidatesignal.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case candidatesignal.FieldSignalType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalType(v)
		return nil
	case candidatesignal.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case candidatesignal.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case candidatesignal.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case candidatesignal.FieldImpact:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpact(v)
		return nil
	case candidatesignal.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case candidatesignal.FieldSignalMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalMeta(v)
		return nil
	case candidatesignal.FieldObservedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservedAt(v)
		return nil
	case candidatesignal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CandidateSignal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CandidateSignalMutation) AddedFields() []string {
	var fields []string
	if m.addimpact != nil {
		fields = append(fields, candidatesignal.FieldImpact)
	}
	if m.addconfidence != nil {
		fields = append(fields, candidatesignal.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CandidateSignalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case candidatesignal.FieldImpact:
		return m.AddedImpact()
	case candidatesignal.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateSignalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case candidatesignal.FieldImpact:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImpact(v)
		return nil
	case candidatesignal.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown CandidateSignal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CandidateSignalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(candidatesignal.FieldDetail) {
		fields = append(fields, candidatesignal.FieldDetail)
	}
	if m.FieldCleared(candidatesignal.FieldSignalMeta) {
		fields = append(fields, candidatesignal.FieldSignalMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CandidateSignalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CandidateSignalMutation) ClearField(name string) error {
	switch name {
	case candidatesignal.FieldDetail:
		m.ClearDetail()
		return nil
	case candidatesignal.FieldSignalMeta:
		m.ClearSignalMeta()
		return nil
	}
	return fmt.Errorf("unknown CandidateSignal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CandidateSignalMutation) ResetField(name string) error {
	switch name {
	case candidatesignal.FieldJobID:
		m.ResetJobID()
		return nil
	case candidatesignal.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case candidatesignal.FieldSourceType:
		m.ResetSourceType()
		return nil
	case candidatesignal.FieldSourceID:
		m.ResetSourceID()
		return nil
	case candidatesignal.FieldSignalType:
		m.ResetSignalType()
		return nil
	case candidatesignal.FieldCategory:
		m.ResetCategory()
		return nil
	case candidatesignal.FieldTitle:
		m.ResetTitle()
		return nil
	case candidatesignal.FieldDetail:
		m.ResetDetail()
		return nil
	case candidatesignal.FieldImpact:
		m.ResetImpact()
		return nil
	case candidatesignal.FieldConfidence:
		m.ResetConfidence()
		return nil
	case candidatesignal.FieldSignalMeta:
		m.ResetSignalMeta()
		return nil
	case candidatesignal.FieldObservedAt:
		m.ResetObservedAt()
		return nil
	case candidatesignal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CandidateSignal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CandidateSignalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, candidatesignal.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CandidateSignalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case candidatesignal.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CandidateSignalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CandidateSignalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CandidateSignalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, candidatesignal.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CandidateSignalMutation) EdgeCleared(name string) bool {
	switch name {
	case candidatesignal.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CandidateSignalMutation) ClearEdge(name string) error {
	switch name {
	case candidatesignal.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown CandidateSignal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CandidateSignalMutation) ResetEdge(name string) error {
	switch name {
	case candidatesignal.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown CandidateSignal edge %s", name)
}

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	channel                   *string
	status                    *conversation.Status
	external_chat_id          *string
	account_id                *string
	last_message_at           *time.Time
	created_at                *time.Time
	clearedFields             map[string]struct{}
	job                       *string
	clearedjob                bool
	candidate                 *string
	clearedcandidate          bool
	messages                  map[int]struct{}
	removedmessages           map[int]struct{}
	clearedmessages           bool
	pre_resume_session        *string
	clearedpre_resume_session bool
	done                      bool
	oldValue                  func(context.Context) (*Conversation, error)
	predicates                []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ConversationMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ConversationMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ConversationMutation) ResetJobID() {
	m.job = nil
}

// SetCandidateID sets the "candidate_id" field.
func (m *ConversationMutation) SetCandidateID(s string) {
	m.candidate = &s
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *ConversationMutation) CandidateID() (r string, exists bool) {
	v := m.candidate
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCandidateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *ConversationMutation) ResetCandidateID() {
	m.candidate = nil
}

// SetChannel sets the "channel" field.
func (m *ConversationMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *ConversationMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *ConversationMutation) ResetChannel() {
	m.channel = nil
}

// SetStatus sets the "status" field.
func (m *ConversationMutation) SetStatus(c conversation.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConversationMutation) Status() (r conversation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldStatus(ctx context.Context) (v conversation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConversationMutation) ResetStatus() {
	m.status = nil
}

// SetExternalChatID sets the "external_chat_id" field.
func (m *ConversationMutation) SetExternalChatID(s string) {
	m.external_chat_id = &s
}

// ExternalChatID returns the value of the "external_chat_id" field in the mutation.
func (m *ConversationMutation) ExternalChatID() (r string, exists bool) {
	v := m.external_chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalChatID returns the old "external_chat_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldExternalChatID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalChatID: %w", err)
	}
	return oldValue.ExternalChatID, nil
}

// ClearExternalChatID clears the value of the "external_chat_id" field.
func (m *ConversationMutation) ClearExternalChatID() {
	m.external_chat_id = nil
	m.clearedFields[conversation.FieldExternalChatID] = struct{}{}
}

// ExternalChatIDCleared returns if the "external_chat_id" field was cleared in this mutation.
func (m *ConversationMutation) ExternalChatIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldExternalChatID]
	return ok
}

// ResetExternalChatID resets all changes to the "external_chat_id" field.
func (m *ConversationMutation) ResetExternalChatID() {
	m.external_chat_id = nil
	delete(m.clearedFields, conversation.FieldExternalChatID)
}

// SetAccountID sets the "account_id" field.
func (m *ConversationMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *ConversationMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldAccountID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ClearAccountID clears the value of the "account_id" field.
func (m *ConversationMutation) ClearAccountID() {
	m.account_id = nil
	m.clearedFields[conversation.FieldAccountID] = struct{}{}
}

// AccountIDCleared returns if the "account_id" field was cleared in this mutation.
func (m *ConversationMutation) AccountIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldAccountID]
	return ok
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *ConversationMutation) ResetAccountID() {
	m.account_id = nil
	delete(m.clearedFields, conversation.FieldAccountID)
}

// SetLastMessageAt sets the "last_message_at" field.
func (m *ConversationMutation) SetLastMessageAt(t time.Time) {
	m.last_message_at = &t
}

// LastMessageAt returns the value of the "last_message_at" field in the mutation.
func (m *ConversationMutation) LastMessageAt() (r time.Time, exists bool) {
	v := m.last_message_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageAt returns the old "last_message_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLastMessageAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageAt: %w", err)
	}
	return oldValue.LastMessageAt, nil
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (m *ConversationMutation) ClearLastMessageAt() {
	m.last_message_at = nil
	m.clearedFields[conversation.FieldLastMessageAt] = struct{}{}
}

// LastMessageAtCleared returns if the "last_message_at" field was cleared in this mutation.
func (m *ConversationMutation) LastMessageAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldLastMessageAt]
	return ok
}

// ResetLastMessageAt resets all changes to the "last_message_at" field.
func (m *ConversationMutation) ResetLastMessageAt() {
	m.last_message_at = nil
	delete(m.clearedFields, conversation.FieldLastMessageAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *ConversationMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[conversation.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *ConversationMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ConversationMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ConversationMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (m *ConversationMutation) ClearCandidate() {
	m.clearedcandidate = true
	m.clearedFields[conversation.FieldCandidateID] = struct{}{}
}

// CandidateCleared reports if the "candidate" edge to the Candidate entity was cleared.
func (m *ConversationMutation) CandidateCleared() bool {
	return m.clearedcandidate
}

// CandidateIDs returns the "candidate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CandidateID instead. It exists only for internal usage by the builders.
func (m *ConversationMutation) CandidateIDs() (ids []string) {
	if id := m.candidate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCandidate resets all changes to the "candidate" edge.
func (m *ConversationMutation) ResetCandidate() {
	m.candidate = nil
	m.clearedcandidate = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ConversationMutation) AddMessageIDs(ids ...int) {
	if m.messages == nil {
		m.messages = make(map[int]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ConversationMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ConversationMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ConversationMutation) RemoveMessageIDs(ids ...int) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ConversationMutation) RemovedMessagesIDs() (ids []int) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ConversationMutation) MessagesIDs() (ids []int) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ConversationMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// SetPreResumeSessionID sets the "pre_resume_session" edge to the PreResumeSession entity by id.
func (m *ConversationMutation) SetPreResumeSessionID(id string) {
	m.pre_resume_session = &id
}

// ClearPreResumeSession clears the "pre_resume_session" edge to the PreResumeSession entity.
func (m *ConversationMutation) ClearPreResumeSession() {
	m.clearedpre_resume_session = true
}

// PreResumeSessionCleared reports if the "pre_resume_session" edge to the PreResumeSession entity was cleared.
func (m *ConversationMutation) PreResumeSessionCleared() bool {
	return m.clearedpre_resume_session
}

// PreResumeSessionID returns the "pre_resume_session" edge ID in the mutation.
func (m *ConversationMutation) PreResumeSessionID() (id string, exists bool) {
	if m.pre_resume_session != nil {
		return *m.pre_resume_session, true
	}
	return
}

// PreResumeSessionIDs returns the "pre_resume_session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PreResumeSessionID instead. It exists only for internal usage by the builders.
func (m *ConversationMutation) PreResumeSessionIDs() (ids []string) {
	if id := m.pre_resume_session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPreResumeSession resets all changes to the "pre_resume_session" edge.
func (m *ConversationMutation) ResetPreResumeSession() {
	m.pre_resume_session = nil
	m.clearedpre_resume_session = false
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.job != nil {
		fields = append(fields, conversation.FieldJobID)
	}
	if m.candidate != nil {
		fields = append(fields, conversation.FieldCandidateID)
	}
	if m.channel != nil {
		fields = append(fields, conversation.FieldChannel)
	}
	if m.status != nil {
		fields = append(fields, conversation.FieldStatus)
	}
	if m.external_chat_id != nil {
		fields = append(fields, conversation.FieldExternalChatID)
	}
	if m.account_id != nil {
		fields = append(fields, conversation.FieldAccountID)
	}
	if m.last_message_at != nil {
		fields = append(fields, conversation.FieldLastMessageAt)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldJobID:
		return m.JobID()
	case conversation.FieldCandidateID:
		return m.CandidateID()
	case conversation.FieldChannel:
		return m.Channel()
	case conversation.FieldStatus:
		return m.Status()
	case conversation.FieldExternalChatID:
		return m.ExternalChatID()
	case conversation.FieldAccountID:
		return m.AccountID()
	case conversation.FieldLastMessageAt:
		return m.LastMessageAt()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldJobID:
		return m.OldJobID(ctx)
	case conversation.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case conversation.FieldChannel:
		return m.OldChannel(ctx)
	case conversation.FieldStatus:
		return m.OldStatus(ctx)
	case conversation.FieldExternalChatID:
		return m.OldExternalChatID(ctx)
	case conversation.FieldAccountID:
		return m.OldAccountID(ctx)
	case conversation.FieldLastMessageAt:
		return m.OldLastMessageAt(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case conversation.FieldCandidateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case conversation.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case conversation.FieldStatus:
		v, ok := value.(conversation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conversation.FieldExternalChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalChatID(v)
		return nil
	case conversation.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case conversation.FieldLastMessageAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageAt(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldExternalChatID) {
		fields = append(fields, conversation.FieldExternalChatID)
	}
	if m.FieldCleared(conversation.FieldAccountID) {
		fields = append(fields, conversation.FieldAccountID)
	}
	if m.FieldCleared(conversation.FieldLastMessageAt) {
		fields = append(fields, conversation.FieldLastMessageAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldExternalChatID:
		m.ClearExternalChatID()
		return nil
	case conversation.FieldAccountID:
		m.ClearAccountID()
		return nil
	case conversation.FieldLastMessageAt:
		m.ClearLastMessageAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldJobID:
		m.ResetJobID()
		return nil
	case conversation.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case conversation.FieldChannel:
		m.ResetChannel()
		return nil
	case conversation.FieldStatus:
		m.ResetStatus()
		return nil
	case conversation.FieldExternalChatID:
		m.ResetExternalChatID()
		return nil
	case conversation.FieldAccountID:
		m.ResetAccountID()
		return nil
	case conversation.FieldLastMessageAt:
		m.ResetLastMessageAt()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.job != nil {
		edges = append(edges, conversation.EdgeJob)
	}
	if m.candidate != nil {
		edges = append(edges, conversation.EdgeCandidate)
	}
	if m.messages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.pre_resume_session != nil {
		edges = append(edges, conversation.EdgePreResumeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case conversation.EdgeCandidate:
		if id := m.candidate; id != nil {
			return []ent.Value{*id}
		}
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgePreResumeSession:
		if id := m.pre_resume_session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedmessages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedjob {
		edges = append(edges, conversation.EdgeJob)
	}
	if m.clearedcandidate {
		edges = append(edges, conversation.EdgeCandidate)
	}
	if m.clearedmessages {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.clearedpre_resume_session {
		edges = append(edges, conversation.EdgePreResumeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeJob:
		return m.clearedjob
	case conversation.EdgeCandidate:
		return m.clearedcandidate
	case conversation.EdgeMessages:
		return m.clearedmessages
	case conversation.EdgePreResumeSession:
		return m.clearedpre_resume_session
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	case conversation.EdgeJob:
		m.ClearJob()
		return nil
	case conversation.EdgeCandidate:
		m.ClearCandidate()
		return nil
	case conversation.EdgePreResumeSession:
		m.ClearPreResumeSession()
		return nil
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeJob:
		m.ResetJob()
		return nil
	case conversation.EdgeCandidate:
		m.ResetCandidate()
		return nil
	case conversation.EdgeMessages:
		m.ResetMessages()
		return nil
	case conversation.EdgePreResumeSession:
		m.ResetPreResumeSession()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// IdempotencyRecordMutation represents an operation that mutates the IdempotencyRecord nodes in the graph.
type IdempotencyRecordMutation struct {
	config
	op             Op
	typ            string
	id             *int
	route          *string
	key            *string
	payload_hash   *string
	status_code    *int
	addstatus_code *int
	response       *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*IdempotencyRecord, error)
	predicates     []predicate.IdempotencyRecord
}

var _ ent.Mutation = (*IdempotencyRecordMutation)(nil)

// idempotencyrecordOption allows management of the mutation configuration using functional options.
type idempotencyrecordOption func(*IdempotencyRecordMutation)

// newIdempotencyRecordMutation creates new mutation for the IdempotencyRecord entity.
func newIdempotencyRecordMutation(c config, op Op, opts ...idempotencyrecordOption) *IdempotencyRecordMutation {
	m := &IdempotencyRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeIdempotencyRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIdempotencyRecordID sets the ID field of the mutation.
func withIdempotencyRecordID(id int) idempotencyrecordOption {
	return func(m *IdempotencyRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *IdempotencyRecord
		)
		m.oldValue = func(ctx context.Context) (*IdempotencyRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IdempotencyRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIdempotencyRecord sets the old IdempotencyRecord of the mutation.
func withIdempotencyRecord(node *IdempotencyRecord) idempotencyrecordOption {
	return func(m *IdempotencyRecordMutation) {
		m.oldValue = func(context.Context) (*IdempotencyRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IdempotencyRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IdempotencyRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IdempotencyRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IdempotencyRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IdempotencyRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoute sets the "route" field.
func (m *IdempotencyRecordMutation) SetRoute(s string) {
	m.route = &s
}

// Route returns the value of the "route" field in the mutation.
func (m *IdempotencyRecordMutation) Route() (r string, exists bool) {
	v := m.route
	if v == nil {
		return
	}
	return *v, true
}

// OldRoute returns the old "route" field's value of the IdempotencyRecord entity.
// If the IdempotencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyRecordMutation) OldRoute(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoute: %w", err)
	}
	return oldValue.Route, nil
}

// ResetRoute resets all changes to the "route" field.
func (m *IdempotencyRecordMutation) ResetRoute() {
	m.route = nil
}

// SetKey sets the "key" field.
func (m *IdempotencyRecordMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *IdempotencyRecordMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the IdempotencyRecord entity.
// If the IdempotencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyRecordMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *IdempotencyRecordMutation) ResetKey() {
	m.key = nil
}

// SetPayloadHash sets the "payload_hash" field.
func (m *IdempotencyRecordMutation) SetPayloadHash(s string) {
	m.payload_hash = &s
}

// PayloadHash returns the value of the "payload_hash" field in the mutation.
func (m *IdempotencyRecordMutation) PayloadHash() (r string, exists bool) {
	v := m.payload_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadHash returns the old "payload_hash" field's value of the IdempotencyRecord entity.
// If the IdempotencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyRecordMutation) OldPayloadHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadHash: %w", err)
	}
	return oldValue.PayloadHash, nil
}

// ResetPayloadHash resets all changes to the "payload_hash" field.
func (m *IdempotencyRecordMutation) ResetPayloadHash() {
	m.payload_hash = nil
}

// SetStatusCode sets the "status_code" field.
func (m *IdempotencyRecordMutation) SetStatusCode(i int) {
	m.status_code = &i
	m.addstatus_code = nil
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *IdempotencyRecordMutation) StatusCode() (r int, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the IdempotencyRecord entity.
// If the IdempotencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyRecordMutation) OldStatusCode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// AddStatusCode adds i to the "status_code" field.
func (m *IdempotencyRecordMutation) AddStatusCode(i int) {
	if m.addstatus_code != nil {
		*m.addstatus_code += i
	} else {
		m.addstatus_code = &i
	}
}

// AddedStatusCode returns the value that was added to the "status_code" field in this mutation.
func (m *IdempotencyRecordMutation) AddedStatusCode() (r int, exists bool) {
	v := m.addstatus_code
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *IdempotencyRecordMutation) ResetStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
}

// SetResponse sets the "response" field.
func (m *IdempotencyRecordMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *IdempotencyRecordMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the IdempotencyRecord entity.
// If the IdempotencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyRecordMutation) OldResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ResetResponse resets all changes to the "response" field.
func (m *IdempotencyRecordMutation) ResetResponse() {
	m.response = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IdempotencyRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IdempotencyRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IdempotencyRecord entity.
// If the IdempotencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IdempotencyRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the IdempotencyRecordMutation builder.
func (m *IdempotencyRecordMutation) Where(ps ...predicate.IdempotencyRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IdempotencyRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IdempotencyRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IdempotencyRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IdempotencyRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IdempotencyRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IdempotencyRecord).
func (m *IdempotencyRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IdempotencyRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.route != nil {
		fields = append(fields, idempotencyrecord.FieldRoute)
	}
	if m.key != nil {
		fields = append(fields, idempotencyrecord.FieldKey)
	}
	if m.payload_hash != nil {
		fields = append(fields, idempotencyrecord.FieldPayloadHash)
	}
	if m.status_code != nil {
		fields = append(fields, idempotencyrecord.FieldStatusCode)
	}
	if m.response != nil {
		fields = append(fields, idempotencyrecord.FieldResponse)
	}
	if m.created_at != nil {
		fields = append(fields, idempotencyrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IdempotencyRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case idempotencyrecord.FieldRoute:
		return m.Route()
	case idempotencyrecord.FieldKey:
		return m.Key()
	case idempotencyrecord.FieldPayloadHash:
		return m.PayloadHash()
	case idempotencyrecord.FieldStatusCode:
		return m.StatusCode()
	case idempotencyrecord.FieldResponse:
		return m.Response()
	case idempotencyrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IdempotencyRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case idempotencyrecord.FieldRoute:
		return m.OldRoute(ctx)
	case idempotencyrecord.FieldKey:
		return m.OldKey(ctx)
	case idempotencyrecord.FieldPayloadHash:
		return m.OldPayloadHash(ctx)
	case idempotencyrecord.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case idempotencyrecord.FieldResponse:
		return m.OldResponse(ctx)
	case idempotencyrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IdempotencyRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdempotencyRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case idempotencyrecord.FieldRoute:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoute(v)
		return nil
	case idempotencyrecord.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case idempotencyrecord.FieldPayloadHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadHash(v)
		return nil
	case idempotencyrecord.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case idempotencyrecord.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case idempotencyrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IdempotencyRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IdempotencyRecordMutation) AddedFields() []string {
	var fields []string
	if m.addstatus_code != nil {
		fields = append(fields, idempotencyrecord.FieldStatusCode)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IdempotencyRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case idempotencyrecord.FieldStatusCode:
		return m.AddedStatusCode()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdempotencyRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case idempotencyrecord.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatusCode(v)
		return nil
	}
	return fmt.Errorf("unknown IdempotencyRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IdempotencyRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IdempotencyRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IdempotencyRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IdempotencyRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IdempotencyRecordMutation) ResetField(name string) error {
	switch name {
	case idempotencyrecord.FieldRoute:
		m.ResetRoute()
		return nil
	case idempotencyrecord.FieldKey:
		m.ResetKey()
		return nil
	case idempotencyrecord.FieldPayloadHash:
		m.ResetPayloadHash()
		return nil
	case idempotencyrecord.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case idempotencyrecord.FieldResponse:
		m.ResetResponse()
		return nil
	case idempotencyrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown IdempotencyRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IdempotencyRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IdempotencyRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IdempotencyRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IdempotencyRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IdempotencyRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IdempotencyRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IdempotencyRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IdempotencyRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IdempotencyRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IdempotencyRecord edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	title                      *string
	jd_text                    *string
	location                   *string
	preferred_languages        *[]string
	appendpreferred_languages  []string
	seniority                  *string
	routing_mode               *job.RoutingMode
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	matches                    map[string]struct{}
	removedmatches             map[string]struct{}
	clearedmatches             bool
	conversations              map[string]struct{}
	removedconversations       map[string]struct{}
	clearedconversations       bool
	outbound_actions           map[string]struct{}
	removedoutbound_actions    map[string]struct{}
	clearedoutbound_actions    bool
	step_progress              map[int]struct{}
	removedstep_progress       map[int]struct{}
	clearedstep_progress       bool
	account_assignments        map[int]struct{}
	removedaccount_assignments map[int]struct{}
	clearedaccount_assignments bool
	signals                    map[int]struct{}
	removedsignals             map[int]struct{}
	clearedsignals             bool
	done                       bool
	oldValue                   func(context.Context) (*Job, error)
	predicates                 []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *JobMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *JobMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *JobMutation) ResetTitle() {
	m.title = nil
}

// SetJdText sets the "jd_text" field.
func (m *JobMutation) SetJdText(s string) {
	m.jd_text = &s
}

// JdText returns the value of the "jd_text" field in the mutation.
func (m *JobMutation) JdText() (r string, exists bool) {
	v := m.jd_text
	if v == nil {
		return
	}
	return *v, true
}

// OldJdText returns the old "jd_text" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJdText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJdText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJdText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJdText: %w", err)
	}
	return oldValue.JdText, nil
}

// ResetJdText resets all changes to the "jd_text" field.
func (m *JobMutation) ResetJdText() {
	m.jd_text = nil
}

// SetLocation sets the "location" field.
func (m *JobMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *JobMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *JobMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[job.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *JobMutation) LocationCleared() bool {
	_, ok := m.clearedFields[job.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *JobMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, job.FieldLocation)
}

// SetPreferredLanguages sets the "preferred_languages" field.
func (m *JobMutation) SetPreferredLanguages(s []string) {
	m.preferred_languages = &s
	m.appendpreferred_languages = nil
}

// PreferredLanguages returns the value of the "preferred_languages" field in the mutation.
func (m *JobMutation) PreferredLanguages() (r []string, exists bool) {
	v := m.preferred_languages
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredLanguages returns the old "preferred_languages" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPreferredLanguages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredLanguages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredLanguages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredLanguages: %w", err)
	}
	return oldValue.PreferredLanguages, nil
}

// AppendPreferredLanguages adds s to the "preferred_languages" field.
func (m *JobMutation) AppendPreferredLanguages(s []string) {
	m.appendpreferred_languages = append(m.appendpreferred_languages, s...)
}

// AppendedPreferredLanguages returns the list of values that were appended to the "preferred_languages" field in this mutation.
func (m *JobMutation) AppendedPreferredLanguages() ([]string, bool) {
	if len(m.appendpreferred_languages) == 0 {
		return nil, false
	}
	return m.appendpreferred_languages, true
}

// ClearPreferredLanguages clears the value of the "preferred_languages" field.
func (m *JobMutation) ClearPreferredLanguages() {
	m.preferred_languages = nil
	m.appendpreferred_languages = nil
	m.clearedFields[job.FieldPreferredLanguages] = struct{}{}
}

// PreferredLanguagesCleared returns if the "preferred_languages" field was cleared in this mutation.
func (m *JobMutation) PreferredLanguagesCleared() bool {
	_, ok := m.clearedFields[job.FieldPreferredLanguages]
	return ok
}

// ResetPreferredLanguages resets all changes to the "preferred_languages" field.
func (m *JobMutation) ResetPreferredLanguages() {
	m.preferred_languages = nil
	m.appendpreferred_languages = nil
	delete(m.clearedFields, job.FieldPreferredLanguages)
}

// SetSeniority sets the "seniority" field.
func (m *JobMutation) SetSeniority(s string) {
	m.seniority = &s
}

// Seniority returns the value of the "seniority" field in the mutation.
func (m *JobMutation) Seniority() (r string, exists bool) {
	v := m.seniority
	if v == nil {
		return
	}
	return *v, true
}

// OldSeniority returns the old "seniority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSeniority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeniority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeniority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeniority: %w", err)
	}
	return oldValue.Seniority, nil
}

// ClearSeniority clears the value of the "seniority" field.
func (m *JobMutation) ClearSeniority() {
	m.seniority = nil
	m.clearedFields[job.FieldSeniority] = struct{}{}
}

// SeniorityCleared returns if the "seniority" field was cleared in this mutation.
func (m *JobMutation) SeniorityCleared() bool {
	_, ok := m.clearedFields[job.FieldSeniority]
	return ok
}

// ResetSeniority resets all changes to the "seniority" field.
func (m *JobMutation) ResetSeniority() {
	m.seniority = nil
	delete(m.clearedFields, job.FieldSeniority)
}

// SetRoutingMode sets the "routing_mode" field.
func (m *JobMutation) SetRoutingMode(jm job.RoutingMode) {
	m.routing_mode = &jm
}

// RoutingMode returns the value of the "routing_mode" field in the mutation.
func (m *JobMutation) RoutingMode() (r job.RoutingMode, exists bool) {
	v := m.routing_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutingMode returns the old "routing_mode" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRoutingMode(ctx context.Context) (v job.RoutingMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutingMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutingMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutingMode: %w", err)
	}
	return oldValue.RoutingMode, nil
}

// ResetRoutingMode resets all changes to the "routing_mode" field.
func (m *JobMutation) ResetRoutingMode() {
	m.routing_mode = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMatchIDs adds the "matches" edge to the Match entity by ids.
func (m *JobMutation) AddMatchIDs(ids ...string) {
	if m.matches == nil {
		m.matches = make(map[string]struct{})
	}
	for i := range ids {
		m.matches[ids[i]] = struct{}{}
	}
}

// ClearMatches clears the "matches" edge to the Match entity.
func (m *JobMutation) ClearMatches() {
	m.clearedmatches = true
}

// MatchesCleared reports if the "matches" edge to the Match entity was cleared.
func (m *JobMutation) MatchesCleared() bool {
	return m.clearedmatches
}

// RemoveMatchIDs removes the "matches" edge to the Match entity by IDs.
func (m *JobMutation) RemoveMatchIDs(ids ...string) {
	if m.removedmatches == nil {
		m.removedmatches = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.matches, ids[i])
		m.removedmatches[ids[i]] = struct{}{}
	}
}

// RemovedMatches returns the removed IDs of the "matches" edge to the Match entity.
func (m *JobMutation) RemovedMatchesIDs() (ids []string) {
	for id := range m.removedmatches {
		ids = append(ids, id)
	}
	return
}

// MatchesIDs returns the "matches" edge IDs in the mutation.
func (m *JobMutation) MatchesIDs() (ids []string) {
	for id := range m.matches {
		ids = append(ids, id)
	}
	return
}

// ResetMatches resets all changes to the "matches" edge.
func (m *JobMutation) ResetMatches() {
	m.matches = nil
	m.clearedmatches = false
	m.removedmatches = nil
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by ids.
func (m *JobMutation) AddConversationIDs(ids ...string) {
	if m.conversations == nil {
		m.conversations = make(map[string]struct{})
	}
	for i := range ids {
		m.conversations[ids[i]] = struct{}{}
	}
}

// ClearConversations clears the "conversations" edge to the Conversation entity.
func (m *JobMutation) ClearConversations() {
	m.clearedconversations = true
}

// ConversationsCleared reports if the "conversations" edge to the Conversation entity was cleared.
func (m *JobMutation) ConversationsCleared() bool {
	return m.clearedconversations
}

// RemoveConversationIDs removes the "conversations" edge to the Conversation entity by IDs.
func (m *JobMutation) RemoveConversationIDs(ids ...string) {
	if m.removedconversations == nil {
		m.removedconversations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.conversations, ids[i])
		m.removedconversations[ids[i]] = struct{}{}
	}
}

// RemovedConversations returns the removed IDs of the "conversations" edge to the Conversation entity.
func (m *JobMutation) RemovedConversationsIDs() (ids []string) {
	for id := range m.removedconversations {
		ids = append(ids, id)
	}
	return
}

// ConversationsIDs returns the "conversations" edge IDs in the mutation.
func (m *JobMutation) ConversationsIDs() (ids []string) {
	for id := range m.conversations {
		ids = append(ids, id)
	}
	return
}

// ResetConversations resets all changes to the "conversations" edge.
func (m *JobMutation) ResetConversations() {
	m.conversations = nil
	m.clearedconversations = false
	m.removedconversations = nil
}

// AddOutboundActionIDs adds the "outbound_actions" edge to the OutboundAction entity by ids.
func (m *JobMutation) AddOutboundActionIDs(ids ...string) {
	if m.outbound_actions == nil {
		m.outbound_actions = make(map[string]struct{})
	}
	for i := range ids {
		m.outbound_actions[ids[i]] = struct{}{}
	}
}

// ClearOutboundActions clears the "outbound_actions" edge to the OutboundAction entity.
func (m *JobMutation) ClearOutboundActions() {
	m.clearedoutbound_actions = true
}

// OutboundActionsCleared reports if the "outbound_actions" edge to the OutboundAction entity was cleared.
func (m *JobMutation) OutboundActionsCleared() bool {
	return m.clearedoutbound_actions
}

// RemoveOutboundActionIDs removes the "outbound_actions" edge to the OutboundAction entity by IDs.
func (m *JobMutation) RemoveOutboundActionIDs(ids ...string) {
	if m.removedoutbound_actions == nil {
		m.removedoutbound_actions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outbound_actions, ids[i])
		m.removedoutbound_actions[ids[i]] = struct{}{}
	}
}

// RemovedOutboundActions returns the removed IDs of the "outbound_actions" edge to the OutboundAction entity.
func (m *JobMutation) RemovedOutboundActionsIDs() (ids []string) {
	for id := range m.removedoutbound_actions {
		ids = append(ids, id)
	}
	return
}

// OutboundActionsIDs returns the "outbound_actions" edge IDs in the mutation.
func (m *JobMutation) OutboundActionsIDs() (ids []string) {
	for id := range m.outbound_actions {
		ids = append(ids, id)
	}
	return
}

// ResetOutboundActions resets all changes to the "outbound_actions" edge.
func (m *JobMutation) ResetOutboundActions() {
	m.outbound_actions = nil
	m.clearedoutbound_actions = false
	m.removedoutbound_actions = nil
}

// AddStepProgresIDs adds the "step_progress" edge to the JobStepProgress entity by ids.
func (m *JobMutation) AddStepProgresIDs(ids ...int) {
	if m.step_progress == nil {
		m.step_progress = make(map[int]struct{})
	}
	for i := range ids {
		m.step_progress[ids[i]] = struct{}{}
	}
}

// ClearStepProgress clears the "step_progress" edge to the JobStepProgress entity.
func (m *JobMutation) ClearStepProgress() {
	m.clearedstep_progress = true
}

// StepProgressCleared reports if the "step_progress" edge to the JobStepProgress entity was cleared.
func (m *JobMutation) StepProgressCleared() bool {
	return m.clearedstep_progress
}

// RemoveStepProgresIDs removes the "step_progress" edge to the JobStepProgress entity by IDs.
func (m *JobMutation) RemoveStepProgresIDs(ids ...int) {
	if m.removedstep_progress == nil {
		m.removedstep_progress = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.step_progress, ids[i])
		m.removedstep_progress[ids[i]] = struct{}{}
	}
}

// RemovedStepProgress returns the removed IDs of the "step_progress" edge to the JobStepProgress entity.
func (m *JobMutation) RemovedStepProgressIDs() (ids []int) {
	for id := range m.removedstep_progress {
		ids = append(ids, id)
	}
	return
}

// StepProgressIDs returns the "step_progress" edge IDs in the mutation.
func (m *JobMutation) StepProgressIDs() (ids []int) {
	for id := range m.step_progress {
		ids = append(ids, id)
	}
	return
}

// ResetStepProgress resets all changes to the "step_progress" edge.
func (m *JobMutation) ResetStepProgress() {
	m.step_progress = nil
	m.clearedstep_progress = false
	m.removedstep_progress = nil
}

// AddAccountAssignmentIDs adds the "account_assignments" edge to the JobAccountAssignment entity by ids.
func (m *JobMutation) AddAccountAssignmentIDs(ids ...int) {
	if m.account_assignments == nil {
		m.account_assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.account_assignments[ids[i]] = struct{}{}
	}
}

// ClearAccountAssignments clears the "account_assignments" edge to the JobAccountAssignment entity.
func (m *JobMutation) ClearAccountAssignments() {
	m.clearedaccount_assignments = true
}

// AccountAssignmentsCleared reports if the "account_assignments" edge to the JobAccountAssignment entity was cleared.
func (m *JobMutation) AccountAssignmentsCleared() bool {
	return m.clearedaccount_assignments
}

// RemoveAccountAssignmentIDs removes the "account_assignments" edge to the JobAccountAssignment entity by IDs.
func (m *JobMutation) RemoveAccountAssignmentIDs(ids ...int) {
	if m.removedaccount_assignments == nil {
		m.removedaccount_assignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.account_assignments, ids[i])
		m.removedaccount_assignments[ids[i]] = struct{}{}
	}
}

// RemovedAccountAssignments returns the removed IDs of the "account_assignments" edge to the JobAccountAssignment entity.
func (m *JobMutation) RemovedAccountAssignmentsIDs() (ids []int) {
	for id := range m.removedaccount_assignments {
		ids = append(ids, id)
	}
	return
}

// AccountAssignmentsIDs returns the "account_assignments" edge IDs in the mutation.
func (m *JobMutation) AccountAssignmentsIDs() (ids []int) {
	for id := range m.account_assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAccountAssignments resets all changes to the "account_assignments" edge.
func (m *JobMutation) ResetAccountAssignments() {
	m.account_assignments = nil
	m.clearedaccount_assignments = false
	m.removedaccount_assignments = nil
}

// AddSignalIDs adds the "signals" edge to the CandidateSignal entity by ids.
func (m *JobMutation) AddSignalIDs(ids ...int) {
	if m.signals == nil {
		m.signals = make(map[int]struct{})
	}
	for i := range ids {
		m.signals[ids[i]] = struct{}{}
	}
}

// ClearSignals clears the "signals" edge to the CandidateSignal entity.
func (m *JobMutation) ClearSignals() {
	m.clearedsignals = true
}

// SignalsCleared reports if the "signals" edge to the CandidateSignal entity was cleared.
func (m *JobMutation) SignalsCleared() bool {
	return m.clearedsignals
}

// RemoveSignalIDs removes the "signals" edge to the CandidateSignal entity by IDs.
func (m *JobMutation) RemoveSignalIDs(ids ...int) {
	if m.removedsignals == nil {
		m.removedsignals = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.signals, ids[i])
		m.removedsignals[ids[i]] = struct{}{}
	}
}

// RemovedSignals returns the removed IDs of the "signals" edge to the CandidateSignal entity.
func (m *JobMutation) RemovedSignalsIDs() (ids []int) {
	for id := range m.removedsignals {
		ids = append(ids, id)
	}
	return
}

// SignalsIDs returns the "signals" edge IDs in the mutation.
func (m *JobMutation) SignalsIDs() (ids []int) {
	for id := range m.signals {
		ids = append(ids, id)
	}
	return
}

// ResetSignals resets all changes to the "signals" edge.
func (m *JobMutation) ResetSignals() {
	m.signals = nil
	m.clearedsignals = false
	m.removedsignals = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.title != nil {
		fields = append(fields, job.FieldTitle)
	}
	if m.jd_text != nil {
		fields = append(fields, job.FieldJdText)
	}
	if m.location != nil {
		fields = append(fields, job.FieldLocation)
	}
	if m.preferred_languages != nil {
		fields = append(fields, job.FieldPreferredLanguages)
	}
	if m.seniority != nil {
		fields = append(fields, job.FieldSeniority)
	}
	if m.routing_mode != nil {
		fields = append(fields, job.FieldRoutingMode)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldTitle:
		return m.Title()
	case job.FieldJdText:
		return m.JdText()
	case job.FieldLocation:
		return m.Location()
	case job.FieldPreferredLanguages:
		return m.PreferredLanguages()
	case job.FieldSeniority:
		return m.Seniority()
	case job.FieldRoutingMode:
		return m.RoutingMode()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldTitle:
		return m.OldTitle(ctx)
	case job.FieldJdText:
		return m.OldJdText(ctx)
	case job.FieldLocation:
		return m.OldLocation(ctx)
	case job.FieldPreferredLanguages:
		return m.OldPreferredLanguages(ctx)
	case job.FieldSeniority:
		return m.OldSeniority(ctx)
	case job.FieldRoutingMode:
		return m.OldRoutingMode(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case job.FieldJdText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJdText(v)
		return nil
	case job.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case job.FieldPreferredLanguages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredLanguages(v)
		return nil
	case job.FieldSeniority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeniority(v)
		return nil
	case job.FieldRoutingMode:
		v, ok := value.(job.RoutingMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutingMode(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldLocation) {
		fields = append(fields, job.FieldLocation)
	}
	if m.FieldCleared(job.FieldPreferredLanguages) {
		fields = append(fields, job.FieldPreferredLanguages)
	}
	if m.FieldCleared(job.FieldSeniority) {
		fields = append(fields, job.FieldSeniority)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldLocation:
		m.ClearLocation()
		return nil
	case job.FieldPreferredLanguages:
		m.ClearPreferredLanguages()
		return nil
	case job.FieldSeniority:
		m.ClearSeniority()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldTitle:
		m.ResetTitle()
		return nil
	case job.FieldJdText:
		m.ResetJdText()
		return nil
	case job.FieldLocation:
		m.ResetLocation()
		return nil
	case job.FieldPreferredLanguages:
		m.ResetPreferredLanguages()
		return nil
	case job.FieldSeniority:
		m.ResetSeniority()
		return nil
	case job.FieldRoutingMode:
		m.ResetRoutingMode()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.matches != nil {
		edges = append(edges, job.EdgeMatches)
	}
	if m.conversations != nil {
		edges = append(edges, job.EdgeConversations)
	}
	if m.outbound_actions != nil {
		edges = append(edges, job.EdgeOutboundActions)
	}
	if m.step_progress != nil {
		edges = append(edges, job.EdgeStepProgress)
	}
	if m.account_assignments != nil {
		edges = append(edges, job.EdgeAccountAssignments)
	}
	if m.signals != nil {
		edges = append(edges, job.EdgeSignals)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.matches))
		for id := range m.matches {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.conversations))
		for id := range m.conversations {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeOutboundActions:
		ids := make([]ent.Value, 0, len(m.outbound_actions))
		for id := range m.outbound_actions {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeStepProgress:
		ids := make([]ent.Value, 0, len(m.step_progress))
		for id := range m.step_progress {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeAccountAssignments:
		ids := make([]ent.Value, 0, len(m.account_assignments))
		for id := range m.account_assignments {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeSignals:
		ids := make([]ent.Value, 0, len(m.signals))
		for id := range m.signals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedmatches != nil {
		edges = append(edges, job.EdgeMatches)
	}
	if m.removedconversations != nil {
		edges = append(edges, job.EdgeConversations)
	}
	if m.removedoutbound_actions != nil {
		edges = append(edges, job.EdgeOutboundActions)
	}
	if m.removedstep_progress != nil {
		edges = append(edges, job.EdgeStepProgress)
	}
	if m.removedaccount_assignments != nil {
		edges = append(edges, job.EdgeAccountAssignments)
	}
	if m.removedsignals != nil {
		edges = append(edges, job.EdgeSignals)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeMatches:
		ids := make([]ent.Value, 0, len(m.removedmatches))
		for id := range m.removedmatches {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.removedconversations))
		for id := range m.removedconversations {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeOutboundActions:
		ids := make([]ent.Value, 0, len(m.removedoutbound_actions))
		for id := range m.removedoutbound_actions {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeStepProgress:
		ids := make([]ent.Value, 0, len(m.removedstep_progress))
		for id := range m.removedstep_progress {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeAccountAssignments:
		ids := make([]ent.Value, 0, len(m.removedaccount_assignments))
		for id := range m.removedaccount_assignments {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeSignals:
		ids := make([]ent.Value, 0, len(m.removedsignals))
		for id := range m.removedsignals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedmatches {
		edges = append(edges, job.EdgeMatches)
	}
	if m.clearedconversations {
		edges = append(edges, job.EdgeConversations)
	}
	if m.clearedoutbound_actions {
		edges = append(edges, job.EdgeOutboundActions)
	}
	if m.clearedstep_progress {
		edges = append(edges, job.EdgeStepProgress)
	}
	if m.clearedaccount_assignments {
		edges = append(edges, job.EdgeAccountAssignments)
	}
	if m.clearedsignals {
		edges = append(edges, job.EdgeSignals)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeMatches:
		return m.clearedmatches
	case job.EdgeConversations:
		return m.clearedconversations
	case job.EdgeOutboundActions:
		return m.clearedoutbound_actions
	case job.EdgeStepProgress:
		return m.clearedstep_progress
	case job.EdgeAccountAssignments:
		return m.clearedaccount_assignments
	case job.EdgeSignals:
		return m.clearedsignals
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeMatches:
		m.ResetMatches()
		return nil
	case job.EdgeConversations:
		m.ResetConversations()
		return nil
	case job.EdgeOutboundActions:
		m.ResetOutboundActions()
		return nil
	case job.EdgeStepProgress:
		m.ResetStepProgress()
		return nil
	case job.EdgeAccountAssignments:
		m.ResetAccountAssignments()
		return nil
	case job.EdgeSignals:
		m.ResetSignals()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobAccountAssignmentMutation represents an operation that mutates the JobAccountAssignment nodes in the graph.
type JobAccountAssignmentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	account_id    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	job           *string
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*JobAccountAssignment, error)
	predicates    []predicate.JobAccountAssignment
}

var _ ent.Mutation = (*JobAccountAssignmentMutation)(nil)

// jobaccountassignmentOption allows management of the mutation configuration using functional options.
type jobaccountassignmentOption func(*JobAccountAssignmentMutation)

// newJobAccountAssignmentMutation creates new mutation for the JobAccountAssignment entity.
func newJobAccountAssignmentMutation(c config, op Op, opts ...jobaccountassignmentOption) *JobAccountAssignmentMutation {
	m := &JobAccountAssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeJobAccountAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobAccountAssignmentID sets the ID field of the mutation.
func withJobAccountAssignmentID(id int) jobaccountassignmentOption {
	return func(m *JobAccountAssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *JobAccountAssignment
		)
		m.oldValue = func(ctx context.Context) (*JobAccountAssignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobAccountAssignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobAccountAssignment sets the old JobAccountAssignment of the mutation.
func withJobAccountAssignment(node *JobAccountAssignment) jobaccountassignmentOption {
	return func(m *JobAccountAssignmentMutation) {
		m.oldValue = func(context.Context) (*JobAccountAssignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobAccountAssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobAccountAssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobAccountAssignmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobAccountAssignmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobAccountAssignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobAccountAssignmentMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobAccountAssignmentMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobAccountAssignment entity.
// If the JobAccountAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobAccountAssignmentMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobAccountAssignmentMutation) ResetJobID() {
	m.job = nil
}

// SetAccountID sets the "account_id" field.
func (m *JobAccountAssignmentMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *JobAccountAssignmentMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the JobAccountAssignment entity.
// If the JobAccountAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobAccountAssignmentMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *JobAccountAssignmentMutation) ResetAccountID() {
	m.account_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobAccountAssignmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobAccountAssignmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobAccountAssignment entity.
// If the JobAccountAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobAccountAssignmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobAccountAssignmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobAccountAssignmentMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobaccountassignment.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobAccountAssignmentMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobAccountAssignmentMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobAccountAssignmentMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobAccountAssignmentMutation builder.
func (m *JobAccountAssignmentMutation) Where(ps ...predicate.JobAccountAssignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobAccountAssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobAccountAssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobAccountAssignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobAccountAssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobAccountAssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobAccountAssignment).
func (m *JobAccountAssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobAccountAssignmentMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.job != nil {
		fields = append(fields, jobaccountassignment.FieldJobID)
	}
	if m.account_id != nil {
		fields = append(fields, jobaccountassignment.FieldAccountID)
	}
	if m.created_at != nil {
		fields = append(fields, jobaccountassignment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobAccountAssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobaccountassignment.FieldJobID:
		return m.JobID()
	case jobaccountassignment.FieldAccountID:
		return m.AccountID()
	case jobaccountassignment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobAccountAssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobaccountassignment.FieldJobID:
		return m.OldJobID(ctx)
	case jobaccountassignment.FieldAccountID:
		return m.OldAccountID(ctx)
	case jobaccountassignment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobAccountAssignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobAccountAssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobaccountassignment.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobaccountassignment.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case jobaccountassignment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobAccountAssignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobAccountAssignmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobAccountAssignmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobAccountAssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown JobAccountAssignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobAccountAssignmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobAccountAssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobAccountAssignmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown JobAccountAssignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobAccountAssignmentMutation) ResetField(name string) error {
	switch name {
	case jobaccountassignment.FieldJobID:
		m.ResetJobID()
		return nil
	case jobaccountassignment.FieldAccountID:
		m.ResetAccountID()
		return nil
	case jobaccountassignment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobAccountAssignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobAccountAssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, jobaccountassignment.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobAccountAssignmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobaccountassignment.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobAccountAssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobAccountAssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobAccountAssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, jobaccountassignment.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobAccountAssignmentMutation) EdgeCleared(name string) bool {
	switch name {
	case jobaccountassignment.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobAccountAssignmentMutation) ClearEdge(name string) error {
	switch name {
	case jobaccountassignment.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobAccountAssignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobAccountAssignmentMutation) ResetEdge(name string) error {
	switch name {
	case jobaccountassignment.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobAccountAssignment edge %s", name)
}

// JobStepProgressMutation represents an operation that mutates the JobStepProgress nodes in the graph.
type JobStepProgressMutation struct {
	config
	op            Op
	typ           string
	id            *int
	step          *string
	status        *jobstepprogress.Status
	output        *map[string]interface{}
	last_error    *string
	started_at    *time.Time
	completed_at  *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	job           *string
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*JobStepProgress, error)
	predicates    []predicate.JobStepProgress
}

var _ ent.Mutation = (*JobStepProgressMutation)(nil)

// jobstepprogressOption allows management of the mutation configuration using functional options.
type jobstepprogressOption func(*JobStepProgressMutation)

// newJobStepProgressMutation creates new mutation for the JobStepProgress entity.
func newJobStepProgressMutation(c config, op Op, opts ...jobstepprogressOption) *JobStepProgressMutation {
	m := &JobStepProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeJobStepProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobStepProgressID sets the ID field of the mutation.
func withJobStepProgressID(id int) jobstepprogressOption {
	return func(m *JobStepProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *JobStepProgress
		)
		m.oldValue = func(ctx context.Context) (*JobStepProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobStepProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobStepProgress sets the old JobStepProgress of the mutation.
func withJobStepProgress(node *JobStepProgress) jobstepprogressOption {
	return func(m *JobStepProgressMutation) {
		m.oldValue = func(context.Context) (*JobStepProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobStepProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobStepProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobStepProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobStepProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobStepProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobStepProgressMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobStepProgressMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobStepProgress entity.
// If the JobStepProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepProgressMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobStepProgressMutation) ResetJobID() {
	m.job = nil
}

// SetStep sets the "step" field.
func (m *JobStepProgressMutation) SetStep(s string) {
	m.step = &s
}

// Step returns the value of the "step" field in the mutation.
func (m *JobStepProgressMutation) Step() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the JobStepProgress entity.
// If the JobStepProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepProgressMutation) OldStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// ResetStep resets all changes to the "step" field.
func (m *JobStepProgressMutation) ResetStep() {
	m.step = nil
}

// SetStatus sets the "status" field.
func (m *JobStepProgressMutation) SetStatus(j jobstepprogress.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobStepProgressMutation) Status() (r jobstepprogress.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the JobStepProgress entity.
// If the JobStepProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepProgressMutation) OldStatus(ctx context.Context) (v jobstepprogress.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobStepProgressMutation) ResetStatus() {
	m.status = nil
}

// SetOutput sets the "output" field.
func (m *JobStepProgressMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *JobStepProgressMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the JobStepProgress entity.
// If the JobStepProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepProgressMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *JobStepProgressMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[jobstepprogress.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *JobStepProgressMutation) OutputCleared() bool {
	_, ok := m.clearedFields[jobstepprogress.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *JobStepProgressMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, jobstepprogress.FieldOutput)
}

// SetLastError sets the "last_error" field.
func (m *JobStepProgressMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *JobStepProgressMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the JobStepProgress entity.
// If the JobStepProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepProgressMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *JobStepProgressMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[jobstepprogress.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *JobStepProgressMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[jobstepprogress.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *JobStepProgressMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, jobstepprogress.FieldLastError)
}

// SetStartedAt sets the "started_at" field.
func (m *JobStepProgressMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobStepProgressMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the JobStepProgress entity.
// If the JobStepProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepProgressMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobStepProgressMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[jobstepprogress.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobStepProgressMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[jobstepprogress.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobStepProgressMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, jobstepprogress.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobStepProgressMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobStepProgressMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the JobStepProgress entity.
// If the JobStepProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepProgressMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobStepProgressMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[jobstepprogress.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobStepProgressMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[jobstepprogress.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobStepProgressMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, jobstepprogress.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobStepProgressMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobStepProgressMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobStepProgress entity.
// If the JobStepProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepProgressMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobStepProgressMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobStepProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobStepProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the JobStepProgress entity.
// If the JobStepProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobStepProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobStepProgressMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobstepprogress.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobStepProgressMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobStepProgressMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobStepProgressMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobStepProgressMutation builder.
func (m *JobStepProgressMutation) Where(ps ...predicate.JobStepProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobStepProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobStepProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobStepProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobStepProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobStepProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobStepProgress).
func (m *JobStepProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobStepProgressMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.job != nil {
		fields = append(fields, jobstepprogress.FieldJobID)
	}
	if m.step != nil {
		fields = append(fields, jobstepprogress.FieldStep)
	}
	if m.status != nil {
		fields = append(fields, jobstepprogress.FieldStatus)
	}
	if m.output != nil {
		fields = append(fields, jobstepprogress.FieldOutput)
	}
	if m.last_error != nil {
		fields = append(fields, jobstepprogress.FieldLastError)
	}
	if m.started_at != nil {
		fields = append(fields, jobstepprogress.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, jobstepprogress.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, jobstepprogress.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, jobstepprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobStepProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobstepprogress.FieldJobID:
		return m.JobID()
	case jobstepprogress.FieldStep:
		return m.Step()
	case jobstepprogress.FieldStatus:
		return m.Status()
	case jobstepprogress.FieldOutput:
		return m.Output()
	case jobstepprogress.FieldLastError:
		return m.LastError()
	case jobstepprogress.FieldStartedAt:
		return m.StartedAt()
	case jobstepprogress.FieldCompletedAt:
		return m.CompletedAt()
	case jobstepprogress.FieldCreatedAt:
		return m.CreatedAt()
	case jobstepprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobStepProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobstepprogress.FieldJobID:
		return m.OldJobID(ctx)
	case jobstepprogress.FieldStep:
		return m.OldStep(ctx)
	case jobstepprogress.FieldStatus:
		return m.OldStatus(ctx)
	case jobstepprogress.FieldOutput:
		return m.OldOutput(ctx)
	case jobstepprogress.FieldLastError:
		return m.OldLastError(ctx)
	case jobstepprogress.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case jobstepprogress.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case jobstepprogress.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case jobstepprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobStepProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobStepProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobstepprogress.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobstepprogress.FieldStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case jobstepprogress.FieldStatus:
		v, ok := value.(jobstepprogress.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case jobstepprogress.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case jobstepprogress.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case jobstepprogress.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case jobstepprogress.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case jobstepprogress.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case jobstepprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobStepProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobStepProgressMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobStepProgressMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobStepProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown JobStepProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobStepProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobstepprogress.FieldOutput) {
		fields = append(fields, jobstepprogress.FieldOutput)
	}
	if m.FieldCleared(jobstepprogress.FieldLastError) {
		fields = append(fields, jobstepprogress.FieldLastError)
	}
	if m.FieldCleared(jobstepprogress.FieldStartedAt) {
		fields = append(fields, jobstepprogress.FieldStartedAt)
	}
	if m.FieldCleared(jobstepprogress.FieldCompletedAt) {
		fields = append(fields, jobstepprogress.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobStepProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobStepProgressMutation) ClearField(name string) error {
	switch name {
	case jobstepprogress.FieldOutput:
		m.ClearOutput()
		return nil
	case jobstepprogress.FieldLastError:
		m.ClearLastError()
		return nil
	case jobstepprogress.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case jobstepprogress.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown JobStepProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobStepProgressMutation) ResetField(name string) error {
	switch name {
	case jobstepprogress.FieldJobID:
		m.ResetJobID()
		return nil
	case jobstepprogress.FieldStep:
		m.ResetStep()
		return nil
	case jobstepprogress.FieldStatus:
		m.ResetStatus()
		return nil
	case jobstepprogress.FieldOutput:
		m.ResetOutput()
		return nil
	case jobstepprogress.FieldLastError:
		m.ResetLastError()
		return nil
	case jobstepprogress.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case jobstepprogress.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case jobstepprogress.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case jobstepprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobStepProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobStepProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, jobstepprogress.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobStepProgressMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobstepprogress.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobStepProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobStepProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobStepProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, jobstepprogress.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobStepProgressMutation) EdgeCleared(name string) bool {
	switch name {
	case jobstepprogress.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobStepProgressMutation) ClearEdge(name string) error {
	switch name {
	case jobstepprogress.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobStepProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobStepProgressMutation) ResetEdge(name string) error {
	switch name {
	case jobstepprogress.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobStepProgress edge %s", name)
}

// MatchMutation represents an operation that mutates the Match nodes in the graph.
type MatchMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	score              *float64
	addscore           *float64
	status             *match.Status
	verification_notes *map[string]interface{}
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	job                *string
	clearedjob         bool
	candidate          *string
	clearedcandidate   bool
	done               bool
	oldValue           func(context.Context) (*Match, error)
	predicates         []predicate.Match
}

var _ ent.Mutation = (*MatchMutation)(nil)

// matchOption allows management of the mutation configuration using functional options.
type matchOption func(*MatchMutation)

// newMatchMutation creates new mutation for the Match entity.
func newMatchMutation(c config, op Op, opts ...matchOption) *MatchMutation {
	m := &MatchMutation{
		config:        c,
		op:            op,
		typ:           TypeMatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatchID sets the ID field of the mutation.
func withMatchID(id string) matchOption {
	return func(m *MatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Match
		)
		m.oldValue = func(ctx context.Context) (*Match, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Match.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatch sets the old Match of the mutation.
func withMatch(node *Match) matchOption {
	return func(m *MatchMutation) {
		m.oldValue = func(context.Context) (*Match, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Match entities.
func (m *MatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Match.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *MatchMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *MatchMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *MatchMutation) ResetJobID() {
	m.job = nil
}

// SetCandidateID sets the "candidate_id" field.
func (m *MatchMutation) SetCandidateID(s string) {
	m.candidate = &s
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *MatchMutation) CandidateID() (r string, exists bool) {
	v := m.candidate
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldCandidateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *MatchMutation) ResetCandidateID() {
	m.candidate = nil
}

// SetScore sets the "score" field.
func (m *MatchMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *MatchMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *MatchMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *MatchMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *MatchMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetStatus sets the "status" field.
func (m *MatchMutation) SetStatus(value match.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MatchMutation) Status() (r match.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldStatus(ctx context.Context) (v match.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MatchMutation) ResetStatus() {
	m.status = nil
}

// SetVerificationNotes sets the "verification_notes" field.
func (m *MatchMutation) SetVerificationNotes(value map[string]interface{}) {
	m.verification_notes = &value
}

// VerificationNotes returns the value of the "verification_notes" field in the mutation.
func (m *MatchMutation) VerificationNotes() (r map[string]interface{}, exists bool) {
	v := m.verification_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationNotes returns the old "verification_notes" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldVerificationNotes(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationNotes: %w", err)
	}
	return oldValue.VerificationNotes, nil
}

// ClearVerificationNotes clears the value of the "verification_notes" field.
func (m *MatchMutation) ClearVerificationNotes() {
	m.verification_notes = nil
	m.clearedFields[match.FieldVerificationNotes] = struct{}{}
}

// VerificationNotesCleared returns if the "verification_notes" field was cleared in this mutation.
func (m *MatchMutation) VerificationNotesCleared() bool {
	_, ok := m.clearedFields[match.FieldVerificationNotes]
	return ok
}

// ResetVerificationNotes resets all changes to the "verification_notes" field.
func (m *MatchMutation) ResetVerificationNotes() {
	m.verification_notes = nil
	delete(m.clearedFields, match.FieldVerificationNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *MatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MatchMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MatchMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MatchMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *MatchMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[match.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *MatchMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *MatchMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *MatchMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (m *MatchMutation) ClearCandidate() {
	m.clearedcandidate = true
	m.clearedFields[match.FieldCandidateID] = struct{}{}
}

// CandidateCleared reports if the "candidate" edge to the Candidate entity was cleared.
func (m *MatchMutation) CandidateCleared() bool {
	return m.clearedcandidate
}

// CandidateIDs returns the "candidate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CandidateID instead. It exists only for internal usage by the builders.
func (m *MatchMutation) CandidateIDs() (ids []string) {
	if id := m.candidate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCandidate resets all changes to the "candidate" edge.
func (m *MatchMutation) ResetCandidate() {
	m.candidate = nil
	m.clearedcandidate = false
}

// Where appends a list predicates to the MatchMutation builder.
func (m *MatchMutation) Where(ps ...predicate.Match) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Match, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Match).
func (m *MatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatchMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.job != nil {
		fields = append(fields, match.FieldJobID)
	}
	if m.candidate != nil {
		fields = append(fields, match.FieldCandidateID)
	}
	if m.score != nil {
		fields = append(fields, match.FieldScore)
	}
	if m.status != nil {
		fields = append(fields, match.FieldStatus)
	}
	if m.verification_notes != nil {
		fields = append(fields, match.FieldVerificationNotes)
	}
	if m.created_at != nil {
		fields = append(fields, match.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, match.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case match.FieldJobID:
		return m.JobID()
	case match.FieldCandidateID:
		return m.CandidateID()
	case match.FieldScore:
		return m.Score()
	case match.FieldStatus:
		return m.Status()
	case match.FieldVerificationNotes:
		return m.VerificationNotes()
	case match.FieldCreatedAt:
		return m.CreatedAt()
	case match.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case match.FieldJobID:
		return m.OldJobID(ctx)
	case match.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case match.FieldScore:
		return m.OldScore(ctx)
	case match.FieldStatus:
		return m.OldStatus(ctx)
	case match.FieldVerificationNotes:
		return m.OldVerificationNotes(ctx)
	case match.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case match.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Match field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case match.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case match.FieldCandidateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case match.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case match.FieldStatus:
		v, ok := value.(match.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case match.FieldVerificationNotes:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationNotes(v)
		return nil
	case match.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case match.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Match field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatchMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, match.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case match.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case match.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Match numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(match.FieldVerificationNotes) {
		fields = append(fields, match.FieldVerificationNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatchMutation) ClearField(name string) error {
	switch name {
	case match.FieldVerificationNotes:
		m.ClearVerificationNotes()
		return nil
	}
	return fmt.Errorf("unknown Match nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatchMutation) ResetField(name string) error {
	switch name {
	case match.FieldJobID:
		m.ResetJobID()
		return nil
	case match.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case match.FieldScore:
		m.ResetScore()
		return nil
	case match.FieldStatus:
		m.ResetStatus()
		return nil
	case match.FieldVerificationNotes:
		m.ResetVerificationNotes()
		return nil
	case match.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case match.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Match field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, match.EdgeJob)
	}
	if m.candidate != nil {
		edges = append(edges, match.EdgeCandidate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case match.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case match.EdgeCandidate:
		if id := m.candidate; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, match.EdgeJob)
	}
	if m.clearedcandidate {
		edges = append(edges, match.EdgeCandidate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatchMutation) EdgeCleared(name string) bool {
	switch name {
	case match.EdgeJob:
		return m.clearedjob
	case match.EdgeCandidate:
		return m.clearedcandidate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatchMutation) ClearEdge(name string) error {
	switch name {
	case match.EdgeJob:
		m.ClearJob()
		return nil
	case match.EdgeCandidate:
		m.ClearCandidate()
		return nil
	}
	return fmt.Errorf("unknown Match unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatchMutation) ResetEdge(name string) error {
	switch name {
	case match.EdgeJob:
		m.ResetJob()
		return nil
	case match.EdgeCandidate:
		m.ResetCandidate()
		return nil
	}
	return fmt.Errorf("unknown Match edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	direction           *message.Direction
	language            *string
	content             *string
	meta                *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*Message, error)
	predicates          []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id int) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *MessageMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MessageMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MessageMutation) ResetConversationID() {
	m.conversation = nil
}

// SetDirection sets the "direction" field.
func (m *MessageMutation) SetDirection(value message.Direction) {
	m.direction = &value
}

// Direction returns the value of the "direction" field in the mutation.
func (m *MessageMutation) Direction() (r message.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldDirection(ctx context.Context) (v message.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *MessageMutation) ResetDirection() {
	m.direction = nil
}

// SetLanguage sets the "language" field.
func (m *MessageMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *MessageMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *MessageMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[message.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *MessageMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[message.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *MessageMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, message.FieldLanguage)
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetMeta sets the "meta" field.
func (m *MessageMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *MessageMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *MessageMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[message.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *MessageMutation) MetaCleared() bool {
	_, ok := m.clearedFields[message.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *MessageMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, message.FieldMeta)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *MessageMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[message.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *MessageMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *MessageMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.conversation != nil {
		fields = append(fields, message.FieldConversationID)
	}
	if m.direction != nil {
		fields = append(fields, message.FieldDirection)
	}
	if m.language != nil {
		fields = append(fields, message.FieldLanguage)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.meta != nil {
		fields = append(fields, message.FieldMeta)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldConversationID:
		return m.ConversationID()
	case message.FieldDirection:
		return m.Direction()
	case message.FieldLanguage:
		return m.Language()
	case message.FieldContent:
		return m.Content()
	case message.FieldMeta:
		return m.Meta()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldConversationID:
		return m.OldConversationID(ctx)
	case message.FieldDirection:
		return m.OldDirection(ctx)
	case message.FieldLanguage:
		return m.OldLanguage(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldMeta:
		return m.OldMeta(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case message.FieldDirection:
		v, ok := value.(message.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case message.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldLanguage) {
		fields = append(fields, message.FieldLanguage)
	}
	if m.FieldCleared(message.FieldMeta) {
		fields = append(fields, message.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldLanguage:
		m.ClearLanguage()
		return nil
	case message.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldConversationID:
		m.ResetConversationID()
		return nil
	case message.FieldDirection:
		m.ResetDirection()
		return nil
	case message.FieldLanguage:
		m.ResetLanguage()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldMeta:
		m.ResetMeta()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// OperationLogMutation represents an operation that mutates the OperationLog nodes in the graph.
type OperationLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	operation     *string
	status        *string
	entity_type   *string
	entity_id     *string
	job_id        *string
	candidate_id  *string
	details       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OperationLog, error)
	predicates    []predicate.OperationLog
}

var _ ent.Mutation = (*OperationLogMutation)(nil)

// operationlogOption allows management of the mutation configuration using functional options.
type operationlogOption func(*OperationLogMutation)

// newOperationLogMutation creates new mutation for the OperationLog entity.
func newOperationLogMutation(c config, op Op, opts ...operationlogOption) *OperationLogMutation {
	m := &OperationLogMutation{
		config:        c,
		op:            op,
		typ:           TypeOperationLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOperationLogID sets the ID field of the mutation.
func withOperationLogID(id int) operationlogOption {
	return func(m *OperationLogMutation) {
		var (
			err   error
			once  sync.Once
			value *OperationLog
		)
		m.oldValue = func(ctx context.Context) (*OperationLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OperationLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOperationLog sets the old OperationLog of the mutation.
func withOperationLog(node *OperationLog) operationlogOption {
	return func(m *OperationLogMutation) {
		m.oldValue = func(context.Context) (*OperationLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OperationLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OperationLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OperationLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OperationLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OperationLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOperation sets the "operation" field.
func (m *OperationLogMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *OperationLogMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the OperationLog entity.
// If the OperationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationLogMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *OperationLogMutation) ResetOperation() {
	m.operation = nil
}

// SetStatus sets the "status" field.
func (m *OperationLogMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *OperationLogMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OperationLog entity.
// If the OperationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationLogMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OperationLogMutation) ResetStatus() {
	m.status = nil
}

// SetEntityType sets the "entity_type" field.
func (m *OperationLogMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *OperationLogMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the OperationLog entity.
// If the OperationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationLogMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ClearEntityType clears the value of the "entity_type" field.
func (m *OperationLogMutation) ClearEntityType() {
	m.entity_type = nil
	m.clearedFields[operationlog.FieldEntityType] = struct{}{}
}

// EntityTypeCleared returns if the "entity_type" field was cleared in this mutation.
func (m *OperationLogMutation) EntityTypeCleared() bool {
	_, ok := m.clearedFields[operationlog.FieldEntityType]
	return ok
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *OperationLogMutation) ResetEntityType() {
	m.entity_type = nil
	delete(m.clearedFields, operationlog.FieldEntityType)
}

// SetEntityID sets the "entity_id" field.
func (m *OperationLogMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *OperationLogMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the OperationLog entity.
// If the OperationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationLogMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ClearEntityID clears the value of the "entity_id" field.
func (m *OperationLogMutation) ClearEntityID() {
	m.entity_id = nil
	m.clearedFields[operationlog.FieldEntityID] = struct{}{}
}

// EntityIDCleared returns if the "entity_id" field was cleared in this mutation.
func (m *OperationLogMutation) EntityIDCleared() bool {
	_, ok := m.clearedFields[operationlog.FieldEntityID]
	return ok
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *OperationLogMutation) ResetEntityID() {
	m.entity_id = nil
	delete(m.clearedFields, operationlog.FieldEntityID)
}

// SetJobID sets the "job_id" field.
func (m *OperationLogMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *OperationLogMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the OperationLog entity.
// If the OperationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationLogMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *OperationLogMutation) ClearJobID() {
	m.job_id = nil
	m.clearedFields[operationlog.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *OperationLogMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[operationlog.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *OperationLogMutation) ResetJobID() {
	m.job_id = nil
	delete(m.clearedFields, operationlog.FieldJobID)
}

// SetCandidateID sets the "candidate_id" field.
func (m *OperationLogMutation) SetCandidateID(s string) {
	m.candidate_id = &s
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *OperationLogMutation) CandidateID() (r string, exists bool) {
	v := m.candidate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the OperationLog entity.
// If the OperationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationLogMutation) OldCandidateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (m *OperationLogMutation) ClearCandidateID() {
	m.candidate_id = nil
	m.clearedFields[operationlog.FieldCandidateID] = struct{}{}
}

// CandidateIDCleared returns if the "candidate_id" field was cleared in this mutation.
func (m *OperationLogMutation) CandidateIDCleared() bool {
	_, ok := m.clearedFields[operationlog.FieldCandidateID]
	return ok
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *OperationLogMutation) ResetCandidateID() {
	m.candidate_id = nil
	delete(m.clearedFields, operationlog.FieldCandidateID)
}

// SetDetails sets the "details" field.
func (m *OperationLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *OperationLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the OperationLog entity.
// If the OperationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *OperationLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[operationlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *OperationLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[operationlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *OperationLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, operationlog.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *OperationLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OperationLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OperationLog entity.
// If the OperationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OperationLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the OperationLogMutation builder.
func (m *OperationLogMutation) Where(ps ...predicate.OperationLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OperationLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OperationLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OperationLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OperationLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OperationLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OperationLog).
func (m *OperationLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OperationLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.operation != nil {
		fields = append(fields, operationlog.FieldOperation)
	}
	if m.status != nil {
		fields = append(fields, operationlog.FieldStatus)
	}
	if m.entity_type != nil {
		fields = append(fields, operationlog.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, operationlog.FieldEntityID)
	}
	if m.job_id != nil {
		fields = append(fields, operationlog.FieldJobID)
	}
	if m.candidate_id != nil {
		fields = append(fields, operationlog.FieldCandidateID)
	}
	if m.details != nil {
		fields = append(fields, operationlog.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, operationlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OperationLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case operationlog.FieldOperation:
		return m.Operation()
	case operationlog.FieldStatus:
		return m.Status()
	case operationlog.FieldEntityType:
		return m.EntityType()
	case operationlog.FieldEntityID:
		return m.EntityID()
	case operationlog.FieldJobID:
		return m.JobID()
	case operationlog.FieldCandidateID:
		return m.CandidateID()
	case operationlog.FieldDetails:
		return m.Details()
	case operationlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OperationLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case operationlog.FieldOperation:
		return m.OldOperation(ctx)
	case operationlog.FieldStatus:
		return m.OldStatus(ctx)
	case operationlog.FieldEntityType:
		return m.OldEntityType(ctx)
	case operationlog.FieldEntityID:
		return m.OldEntityID(ctx)
	case operationlog.FieldJobID:
		return m.OldJobID(ctx)
	case operationlog.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case operationlog.FieldDetails:
		return m.OldDetails(ctx)
	case operationlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OperationLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OperationLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case operationlog.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case operationlog.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case operationlog.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case operationlog.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case operationlog.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case operationlog.FieldCandidateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case operationlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case operationlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OperationLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OperationLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OperationLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OperationLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OperationLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OperationLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(operationlog.FieldEntityType) {
		fields = append(fields, operationlog.FieldEntityType)
	}
	if m.FieldCleared(operationlog.FieldEntityID) {
		fields = append(fields, operationlog.FieldEntityID)
	}
	if m.FieldCleared(operationlog.FieldJobID) {
		fields = append(fields, operationlog.FieldJobID)
	}
	if m.FieldCleared(operationlog.FieldCandidateID) {
		fields = append(fields, operationlog.FieldCandidateID)
	}
	if m.FieldCleared(operationlog.FieldDetails) {
		fields = append(fields, operationlog.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OperationLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OperationLogMutation) ClearField(name string) error {
	switch name {
	case operationlog.FieldEntityType:
		m.ClearEntityType()
		return nil
	case operationlog.FieldEntityID:
		m.ClearEntityID()
		return nil
	case operationlog.FieldJobID:
		m.ClearJobID()
		return nil
	case operationlog.FieldCandidateID:
		m.ClearCandidateID()
		return nil
	case operationlog.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown OperationLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OperationLogMutation) ResetField(name string) error {
	switch name {
	case operationlog.FieldOperation:
		m.ResetOperation()
		return nil
	case operationlog.FieldStatus:
		m.ResetStatus()
		return nil
	case operationlog.FieldEntityType:
		m.ResetEntityType()
		return nil
	case operationlog.FieldEntityID:
		m.ResetEntityID()
		return nil
	case operationlog.FieldJobID:
		m.ResetJobID()
		return nil
	case operationlog.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case operationlog.FieldDetails:
		m.ResetDetails()
		return nil
	case operationlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OperationLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OperationLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OperationLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OperationLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OperationLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OperationLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OperationLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OperationLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OperationLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OperationLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OperationLog edge %s", name)
}

// OutboundActionMutation represents an operation that mutates the OutboundAction nodes in the graph.
type OutboundActionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	candidate_id    *string
	conversation_id *string
	kind            *outboundaction.Kind
	status          *outboundaction.Status
	payload         *map[string]interface{}
	account_id      *string
	attempts        *int
	addattempts     *int
	last_error      *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	job             *string
	clearedjob      bool
	done            bool
	oldValue        func(context.Context) (*OutboundAction, error)
	predicates      []predicate.OutboundAction
}

var _ ent.Mutation = (*OutboundActionMutation)(nil)

// outboundactionOption allows management of the mutation configuration using functional options.
type outboundactionOption func(*OutboundActionMutation)

// newOutboundActionMutation creates new mutation for the OutboundAction entity.
func newOutboundActionMutation(c config, op Op, opts ...outboundactionOption) *OutboundActionMutation {
	m := &OutboundActionMutation{
		config:        c,
		op:            op,
		typ:           TypeOutboundAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutboundActionID sets the ID field of the mutation.
func withOutboundActionID(id string) outboundactionOption {
	return func(m *OutboundActionMutation) {
		var (
			err   error
			once  sync.Once
			value *OutboundAction
		)
		m.oldValue = func(ctx context.Context) (*OutboundAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutboundAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutboundAction sets the old OutboundAction of the mutation.
func withOutboundAction(node *OutboundAction) outboundactionOption {
	return func(m *OutboundActionMutation) {
		m.oldValue = func(context.Context) (*OutboundAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutboundActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutboundActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OutboundAction entities.
func (m *OutboundActionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutboundActionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutboundActionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutboundAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *OutboundActionMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *OutboundActionMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the OutboundAction entity.
// If the OutboundAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundActionMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *OutboundActionMutation) ResetJobID() {
	m.job = nil
}

// SetCandidateID sets the "candidate_id" field.
func (m *OutboundActionMutation) SetCandidateID(s string) {
	m.candidate_id = &s
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *OutboundActionMutation) CandidateID() (r string, exists bool) {
	v := m.candidate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the OutboundAction entity.
// If the OutboundAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundActionMutation) OldCandidateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *OutboundActionMutation) ResetCandidateID() {
	m.candidate_id = nil
}

// SetConversationID sets the "conversation_id" field.
func (m *OutboundActionMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *OutboundActionMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the OutboundAction entity.
// If the OutboundAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundActionMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *OutboundActionMutation) ResetConversationID() {
	m.conversation_id = nil
}

// SetKind sets the "kind" field.
func (m *OutboundActionMutation) SetKind(o outboundaction.Kind) {
	m.kind = &o
}

// Kind returns the value of the "kind" field in the mutation.
func (m *OutboundActionMutation) Kind() (r outboundaction.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the OutboundAction entity.
// If the OutboundAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundActionMutation) OldKind(ctx context.Context) (v outboundaction.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *OutboundActionMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *OutboundActionMutation) SetStatus(o outboundaction.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OutboundActionMutation) Status() (r outboundaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OutboundAction entity.
// If the OutboundAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundActionMutation) OldStatus(ctx context.Context) (v outboundaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OutboundActionMutation) ResetStatus() {
	m.status = nil
}

// SetPayload sets the "payload" field.
func (m *OutboundActionMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *OutboundActionMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the OutboundAction entity.
// If the OutboundAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundActionMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *OutboundActionMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[outboundaction.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *OutboundActionMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[outboundaction.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *OutboundActionMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, outboundaction.FieldPayload)
}

// SetAccountID sets the "account_id" field.
func (m *OutboundActionMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *OutboundActionMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the OutboundAction entity.
// If the OutboundAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundActionMutation) OldAccountID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ClearAccountID clears the value of the "account_id" field.
func (m *OutboundActionMutation) ClearAccountID() {
	m.account_id = nil
	m.clearedFields[outboundaction.FieldAccountID] = struct{}{}
}

// AccountIDCleared returns if the "account_id" field was cleared in this mutation.
func (m *OutboundActionMutation) AccountIDCleared() bool {
	_, ok := m.clearedFields[outboundaction.FieldAccountID]
	return ok
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *OutboundActionMutation) ResetAccountID() {
	m.account_id = nil
	delete(m.clearedFields, outboundaction.FieldAccountID)
}

// SetAttempts sets the "attempts" field.
func (m *OutboundActionMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *OutboundActionMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the OutboundAction entity.
// If the OutboundAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundActionMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *OutboundActionMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *OutboundActionMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *OutboundActionMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastError sets the "last_error" field.
func (m *OutboundActionMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *OutboundActionMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the OutboundAction entity.
// If the OutboundAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundActionMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *OutboundActionMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[outboundaction.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *OutboundActionMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[outboundaction.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *OutboundActionMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, outboundaction.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *OutboundActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OutboundActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OutboundAction entity.
// If the OutboundAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OutboundActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OutboundActionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OutboundActionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the OutboundAction entity.
// If the OutboundAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundActionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OutboundActionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *OutboundActionMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[outboundaction.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *OutboundActionMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *OutboundActionMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *OutboundActionMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the OutboundActionMutation builder.
func (m *OutboundActionMutation) Where(ps ...predicate.OutboundAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutboundActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutboundActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutboundAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutboundActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutboundActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutboundAction).
func (m *OutboundActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutboundActionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.job != nil {
		fields = append(fields, outboundaction.FieldJobID)
	}
	if m.candidate_id != nil {
		fields = append(fields, outboundaction.FieldCandidateID)
	}
	if m.conversation_id != nil {
		fields = append(fields, outboundaction.FieldConversationID)
	}
	if m.kind != nil {
		fields = append(fields, outboundaction.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, outboundaction.FieldStatus)
	}
	if m.payload != nil {
		fields = append(fields, outboundaction.FieldPayload)
	}
	if m.account_id != nil {
		fields = append(fields, outboundaction.FieldAccountID)
	}
	if m.attempts != nil {
		fields = append(fields, outboundaction.FieldAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, outboundaction.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, outboundaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, outboundaction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutboundActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outboundaction.FieldJobID:
		return m.JobID()
	case outboundaction.FieldCandidateID:
		return m.CandidateID()
	case outboundaction.FieldConversationID:
		return m.ConversationID()
	case outboundaction.FieldKind:
		return m.Kind()
	case outboundaction.FieldStatus:
		return m.Status()
	case outboundaction.FieldPayload:
		return m.Payload()
	case outboundaction.FieldAccountID:
		return m.AccountID()
	case outboundaction.FieldAttempts:
		return m.Attempts()
	case outboundaction.FieldLastError:
		return m.LastError()
	case outboundaction.FieldCreatedAt:
		return m.CreatedAt()
	case outboundaction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutboundActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outboundaction.FieldJobID:
		return m.OldJobID(ctx)
	case outboundaction.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case outboundaction.FieldConversationID:
		return m.OldConversationID(ctx)
	case outboundaction.FieldKind:
		return m.OldKind(ctx)
	case outboundaction.FieldStatus:
		return m.OldStatus(ctx)
	case outboundaction.FieldPayload:
		return m.OldPayload(ctx)
	case outboundaction.FieldAccountID:
		return m.OldAccountID(ctx)
	case outboundaction.FieldAttempts:
		return m.OldAttempts(ctx)
	case outboundaction.FieldLastError:
		return m.OldLastError(ctx)
	case outboundaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case outboundaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OutboundAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboundActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outboundaction.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case outboundaction.FieldCandidateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case outboundaction.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case outboundaction.FieldKind:
		v, ok := value.(outboundaction.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case outboundaction.FieldStatus:
		v, ok := value.(outboundaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case outboundaction.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case outboundaction.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case outboundaction.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case outboundaction.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case outboundaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case outboundaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OutboundAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutboundActionMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, outboundaction.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutboundActionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case outboundaction.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboundActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case outboundaction.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown OutboundAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutboundActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(outboundaction.FieldPayload) {
		fields = append(fields, outboundaction.FieldPayload)
	}
	if m.FieldCleared(outboundaction.FieldAccountID) {
		fields = append(fields, outboundaction.FieldAccountID)
	}
	if m.FieldCleared(outboundaction.FieldLastError) {
		fields = append(fields, outboundaction.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutboundActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutboundActionMutation) ClearField(name string) error {
	switch name {
	case outboundaction.FieldPayload:
		m.ClearPayload()
		return nil
	case outboundaction.FieldAccountID:
		m.ClearAccountID()
		return nil
	case outboundaction.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown OutboundAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutboundActionMutation) ResetField(name string) error {
	switch name {
	case outboundaction.FieldJobID:
		m.ResetJobID()
		return nil
	case outboundaction.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case outboundaction.FieldConversationID:
		m.ResetConversationID()
		return nil
	case outboundaction.FieldKind:
		m.ResetKind()
		return nil
	case outboundaction.FieldStatus:
		m.ResetStatus()
		return nil
	case outboundaction.FieldPayload:
		m.ResetPayload()
		return nil
	case outboundaction.FieldAccountID:
		m.ResetAccountID()
		return nil
	case outboundaction.FieldAttempts:
		m.ResetAttempts()
		return nil
	case outboundaction.FieldLastError:
		m.ResetLastError()
		return nil
	case outboundaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case outboundaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown OutboundAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutboundActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, outboundaction.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutboundActionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case outboundaction.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutboundActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutboundActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutboundActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, outboundaction.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutboundActionMutation) EdgeCleared(name string) bool {
	switch name {
	case outboundaction.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutboundActionMutation) ClearEdge(name string) error {
	switch name {
	case outboundaction.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown OutboundAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutboundActionMutation) ResetEdge(name string) error {
	switch name {
	case outboundaction.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown OutboundAction edge %s", name)
}

// PreResumeEventMutation represents an operation that mutates the PreResumeEvent nodes in the graph.
type PreResumeEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	job_id         *string
	candidate_id   *string
	event_type     *preresumeevent.EventType
	intent         *string
	inbound_text   *string
	outbound_text  *string
	status         *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*PreResumeEvent, error)
	predicates     []predicate.PreResumeEvent
}

var _ ent.Mutation = (*PreResumeEventMutation)(nil)

// preresumeeventOption allows management of the mutation configuration using functional options.
type preresumeeventOption func(*PreResumeEventMutation)

// newPreResumeEventMutation creates new mutation for the PreResumeEvent entity.
func newPreResumeEventMutation(c config, op Op, opts ...preresumeeventOption) *PreResumeEventMutation {
	m := &PreResumeEventMutation{
		config:        c,
		op:            op,
		typ:           TypePreResumeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPreResumeEventID sets the ID field of the mutation.
func withPreResumeEventID(id int) preresumeeventOption {
	return func(m *PreResumeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PreResumeEvent
		)
		m.oldValue = func(ctx context.Context) (*PreResumeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PreResumeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPreResumeEvent sets the old PreResumeEvent of the mutation.
func withPreResumeEvent(node *PreResumeEvent) preresumeeventOption {
	return func(m *PreResumeEventMutation) {
		m.oldValue = func(context.Context) (*PreResumeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PreResumeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PreResumeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PreResumeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PreResumeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PreResumeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *PreResumeEventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PreResumeEventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PreResumeEvent entity.
// If the PreResumeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PreResumeEventMutation) ResetSessionID() {
	m.session = nil
}

// SetJobID sets the "job_id" field.
func (m *PreResumeEventMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *PreResumeEventMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the PreResumeEvent entity.
// If the PreResumeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeEventMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *PreResumeEventMutation) ClearJobID() {
	m.job_id = nil
	m.clearedFields[preresumeevent.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *PreResumeEventMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[preresumeevent.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *PreResumeEventMutation) ResetJobID() {
	m.job_id = nil
	delete(m.clearedFields, preresumeevent.FieldJobID)
}

// SetCandidateID sets the "candidate_id" field.
func (m *PreResumeEventMutation) SetCandidateID(s string) {
	m.candidate_id = &s
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *PreResumeEventMutation) CandidateID() (r string, exists bool) {
	v := m.candidate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the PreResumeEvent entity.
// If the PreResumeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeEventMutation) OldCandidateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (m *PreResumeEventMutation) ClearCandidateID() {
	m.candidate_id = nil
	m.clearedFields[preresumeevent.FieldCandidateID] = struct{}{}
}

// CandidateIDCleared returns if the "candidate_id" field was cleared in this mutation.
func (m *PreResumeEventMutation) CandidateIDCleared() bool {
	_, ok := m.clearedFields[preresumeevent.FieldCandidateID]
	return ok
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *PreResumeEventMutation) ResetCandidateID() {
	m.candidate_id = nil
	delete(m.clearedFields, preresumeevent.FieldCandidateID)
}

// SetEventType sets the "event_type" field.
func (m *PreResumeEventMutation) SetEventType(pt preresumeevent.EventType) {
	m.event_type = &pt
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *PreResumeEventMutation) EventType() (r preresumeevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the PreResumeEvent entity.
// If the PreResumeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeEventMutation) OldEventType(ctx context.Context) (v preresumeevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *PreResumeEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetIntent sets the "intent" field.
func (m *PreResumeEventMutation) SetIntent(s string) {
	m.intent = &s
}

// Intent returns the value of the "intent" field in the mutation.
func (m *PreResumeEventMutation) Intent() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntent returns the old "intent" field's value of the PreResumeEvent entity.
// If the PreResumeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeEventMutation) OldIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntent: %w", err)
	}
	return oldValue.Intent, nil
}

// ClearIntent clears the value of the "intent" field.
func (m *PreResumeEventMutation) ClearIntent() {
	m.intent = nil
	m.clearedFields[preresumeevent.FieldIntent] = struct{}{}
}

// IntentCleared returns if the "intent" field was cleared in this mutation.
func (m *PreResumeEventMutation) IntentCleared() bool {
	_, ok := m.clearedFields[preresumeevent.FieldIntent]
	return ok
}

// ResetIntent resets all changes to the "intent" field.
func (m *PreResumeEventMutation) ResetIntent() {
	m.intent = nil
	delete(m.clearedFields, preresumeevent.FieldIntent)
}

// SetInboundText sets the "inbound_text" field.
func (m *PreResumeEventMutation) SetInboundText(s string) {
	m.inbound_text = &s
}

// InboundText returns the value of the "inbound_text" field in the mutation.
func (m *PreResumeEventMutation) InboundText() (r string, exists bool) {
	v := m.inbound_text
	if v == nil {
		return
	}
	return *v, true
}

// OldInboundText returns the old "inbound_text" field's value of the PreResumeEvent entity.
// If the PreResumeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeEventMutation) OldInboundText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInboundText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInboundText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInboundText: %w", err)
	}
	return oldValue.InboundText, nil
}

// ClearInboundText clears the value of the "inbound_text" field.
func (m *PreResumeEventMutation) ClearInboundText() {
	m.inbound_text = nil
	m.clearedFields[preresumeevent.FieldInboundText] = struct{}{}
}

// InboundTextCleared returns if the "inbound_text" field was cleared in this mutation.
func (m *PreResumeEventMutation) InboundTextCleared() bool {
	_, ok := m.clearedFields[preresumeevent.FieldInboundText]
	return ok
}

// ResetInboundText resets all changes to the "inbound_text" field.
func (m *PreResumeEventMutation) ResetInboundText() {
	m.inbound_text = nil
	delete(m.clearedFields, preresumeevent.FieldInboundText)
}

// SetOutboundText sets the "outbound_text" field.
func (m *PreResumeEventMutation) SetOutboundText(s string) {
	m.outbound_text = &s
}

// OutboundText returns the value of the "outbound_text" field in the mutation.
func (m *PreResumeEventMutation) OutboundText() (r string, exists bool) {
	v := m.outbound_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOutboundText returns the old "outbound_text" field's value of the PreResumeEvent entity.
// If the PreResumeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeEventMutation) OldOutboundText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutboundText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutboundText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutboundText: %w", err)
	}
	return oldValue.OutboundText, nil
}

// ClearOutboundText clears the value of the "outbound_text" field.
func (m *PreResumeEventMutation) ClearOutboundText() {
	m.outbound_text = nil
	m.clearedFields[preresumeevent.FieldOutboundText] = struct{}{}
}

// OutboundTextCleared returns if the "outbound_text" field was cleared in this mutation.
func (m *PreResumeEventMutation) OutboundTextCleared() bool {
	_, ok := m.clearedFields[preresumeevent.FieldOutboundText]
	return ok
}

// ResetOutboundText resets all changes to the "outbound_text" field.
func (m *PreResumeEventMutation) ResetOutboundText() {
	m.outbound_text = nil
	delete(m.clearedFields, preresumeevent.FieldOutboundText)
}

// SetStatus sets the "status" field.
func (m *PreResumeEventMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PreResumeEventMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PreResumeEvent entity.
// If the PreResumeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeEventMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PreResumeEventMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PreResumeEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PreResumeEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PreResumeEvent entity.
// If the PreResumeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PreResumeEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the PreResumeSession entity.
func (m *PreResumeEventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[preresumeevent.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the PreResumeSession entity was cleared.
func (m *PreResumeEventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *PreResumeEventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *PreResumeEventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the PreResumeEventMutation builder.
func (m *PreResumeEventMutation) Where(ps ...predicate.PreResumeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PreResumeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PreResumeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PreResumeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PreResumeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PreResumeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PreResumeEvent).
func (m *PreResumeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PreResumeEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session != nil {
		fields = append(fields, preresumeevent.FieldSessionID)
	}
	if m.job_id != nil {
		fields = append(fields, preresumeevent.FieldJobID)
	}
	if m.candidate_id != nil {
		fields = append(fields, preresumeevent.FieldCandidateID)
	}
	if m.event_type != nil {
		fields = append(fields, preresumeevent.FieldEventType)
	}
	if m.intent != nil {
		fields = append(fields, preresumeevent.FieldIntent)
	}
	if m.inbound_text != nil {
		fields = append(fields, preresumeevent.FieldInboundText)
	}
	if m.outbound_text != nil {
		fields = append(fields, preresumeevent.FieldOutboundText)
	}
	if m.status != nil {
		fields = append(fields, preresumeevent.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, preresumeevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PreResumeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case preresumeevent.FieldSessionID:
		return m.SessionID()
	case preresumeevent.FieldJobID:
		return m.JobID()
	case preresumeevent.FieldCandidateID:
		return m.CandidateID()
	case preresumeevent.FieldEventType:
		return m.EventType()
	case preresumeevent.FieldIntent:
		return m.Intent()
	case preresumeevent.FieldInboundText:
		return m.InboundText()
	case preresumeevent.FieldOutboundText:
		return m.OutboundText()
	case preresumeevent.FieldStatus:
		return m.Status()
	case preresumeevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PreResumeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case preresumeevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case preresumeevent.FieldJobID:
		return m.OldJobID(ctx)
	case preresumeevent.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case preresumeevent.FieldEventType:
		return m.OldEventType(ctx)
	case preresumeevent.FieldIntent:
		return m.OldIntent(ctx)
	case preresumeevent.FieldInboundText:
		return m.OldInboundText(ctx)
	case preresumeevent.FieldOutboundText:
		return m.OldOutboundText(ctx)
	case preresumeevent.FieldStatus:
		return m.OldStatus(ctx)
	case preresumeevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PreResumeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PreResumeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case preresumeevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case preresumeevent.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case preresumeevent.FieldCandidateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case preresumeevent.FieldEventType:
		v, ok := value.(preresumeevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case preresumeevent.FieldIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntent(v)
		return nil
	case preresumeevent.FieldInboundText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInboundText(v)
		return nil
	case preresumeevent.FieldOutboundText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutboundText(v)
		return nil
	case preresumeevent.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case preresumeevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PreResumeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PreResumeEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PreResumeEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PreResumeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PreResumeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PreResumeEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(preresumeevent.FieldJobID) {
		fields = append(fields, preresumeevent.FieldJobID)
	}
	if m.FieldCleared(preresumeevent.FieldCandidateID) {
		fields = append(fields, preresumeevent.FieldCandidateID)
	}
	if m.FieldCleared(preresumeevent.FieldIntent) {
		fields = append(fields, preresumeevent.FieldIntent)
	}
	if m.FieldCleared(preresumeevent.FieldInboundText) {
		fields = append(fields, preresumeevent.FieldInboundText)
	}
	if m.FieldCleared(preresumeevent.FieldOutboundText) {
		fields = append(fields, preresumeevent.FieldOutboundText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PreResumeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PreResumeEventMutation) ClearField(name string) error {
	switch name {
	case preresumeevent.FieldJobID:
		m.ClearJobID()
		return nil
	case preresumeevent.FieldCandidateID:
		m.ClearCandidateID()
		return nil
	case preresumeevent.FieldIntent:
		m.ClearIntent()
		return nil
	case preresumeevent.FieldInboundText:
		m.ClearInboundText()
		return nil
	case preresumeevent.FieldOutboundText:
		m.ClearOutboundText()
		return nil
	}
	return fmt.Errorf("unknown PreResumeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PreResumeEventMutation) ResetField(name string) error {
	switch name {
	case preresumeevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case preresumeevent.FieldJobID:
		m.ResetJobID()
		return nil
	case preresumeevent.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case preresumeevent.FieldEventType:
		m.ResetEventType()
		return nil
	case preresumeevent.FieldIntent:
		m.ResetIntent()
		return nil
	case preresumeevent.FieldInboundText:
		m.ResetInboundText()
		return nil
	case preresumeevent.FieldOutboundText:
		m.ResetOutboundText()
		return nil
	case preresumeevent.FieldStatus:
		m.ResetStatus()
		return nil
	case preresumeevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PreResumeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PreResumeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, preresumeevent.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PreResumeEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case preresumeevent.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PreResumeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PreResumeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PreResumeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, preresumeevent.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PreResumeEventMutation) EdgeCleared(name string) bool {
	switch name {
	case preresumeevent.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PreResumeEventMutation) ClearEdge(name string) error {
	switch name {
	case preresumeevent.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown PreResumeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PreResumeEventMutation) ResetEdge(name string) error {
	switch name {
	case preresumeevent.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown PreResumeEvent edge %s", name)
}

// PreResumeSessionMutation represents an operation that mutates the PreResumeSession nodes in the graph.
type PreResumeSessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	job_id              *string
	candidate_id        *string
	status              *preresumesession.Status
	language            *string
	followups_sent      *int
	addfollowups_sent   *int
	turns               *int
	addturns            *int
	last_intent         *string
	resume_links        *[]string
	appendresume_links  []string
	next_followup_at    *time.Time
	state               *map[string]interface{}
	last_error          *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	events              map[int]struct{}
	removedevents       map[int]struct{}
	clearedevents       bool
	done                bool
	oldValue            func(context.Context) (*PreResumeSession, error)
	predicates          []predicate.PreResumeSession
}

var _ ent.Mutation = (*PreResumeSessionMutation)(nil)

// preresumesessionOption allows management of the mutation configuration using functional options.
type preresumesessionOption func(*PreResumeSessionMutation)

// newPreResumeSessionMutation creates new mutation for the PreResumeSession entity.
func newPreResumeSessionMutation(c config, op Op, opts ...preresumesessionOption) *PreResumeSessionMutation {
	m := &PreResumeSessionMutation{
		config:        c,
		op:            op,
		typ:           TypePreResumeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPreResumeSessionID sets the ID field of the mutation.
func withPreResumeSessionID(id string) preresumesessionOption {
	return func(m *PreResumeSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *PreResumeSession
		)
		m.oldValue = func(ctx context.Context) (*PreResumeSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PreResumeSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPreResumeSession sets the old PreResumeSession of the mutation.
func withPreResumeSession(node *PreResumeSession) preresumesessionOption {
	return func(m *PreResumeSessionMutation) {
		m.oldValue = func(context.Context) (*PreResumeSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PreResumeSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PreResumeSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PreResumeSession entities.
func (m *PreResumeSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PreResumeSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PreResumeSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PreResumeSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *PreResumeSessionMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *PreResumeSessionMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldConversationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ClearConversationID clears the value of the "conversation_id" field.
func (m *PreResumeSessionMutation) ClearConversationID() {
	m.conversation = nil
	m.clearedFields[preresumesession.FieldConversationID] = struct{}{}
}

// ConversationIDCleared returns if the "conversation_id" field was cleared in this mutation.
func (m *PreResumeSessionMutation) ConversationIDCleared() bool {
	_, ok := m.clearedFields[preresumesession.FieldConversationID]
	return ok
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *PreResumeSessionMutation) ResetConversationID() {
	m.conversation = nil
	delete(m.clearedFields, preresumesession.FieldConversationID)
}

// SetJobID sets the "job_id" field.
func (m *PreResumeSessionMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *PreResumeSessionMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *PreResumeSessionMutation) ClearJobID() {
	m.job_id = nil
	m.clearedFields[preresumesession.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *PreResumeSessionMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[preresumesession.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *PreResumeSessionMutation) ResetJobID() {
	m.job_id = nil
	delete(m.clearedFields, preresumesession.FieldJobID)
}

// SetCandidateID sets the "candidate_id" field.
func (m *PreResumeSessionMutation) SetCandidateID(s string) {
	m.candidate_id = &s
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *PreResumeSessionMutation) CandidateID() (r string, exists bool) {
	v := m.candidate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldCandidateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (m *PreResumeSessionMutation) ClearCandidateID() {
	m.candidate_id = nil
	m.clearedFields[preresumesession.FieldCandidateID] = struct{}{}
}

// CandidateIDCleared returns if the "candidate_id" field was cleared in this mutation.
func (m *PreResumeSessionMutation) CandidateIDCleared() bool {
	_, ok := m.clearedFields[preresumesession.FieldCandidateID]
	return ok
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *PreResumeSessionMutation) ResetCandidateID() {
	m.candidate_id = nil
	delete(m.clearedFields, preresumesession.FieldCandidateID)
}

// SetStatus sets the "status" field.
func (m *PreResumeSessionMutation) SetStatus(pr preresumesession.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *PreResumeSessionMutation) Status() (r preresumesession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldStatus(ctx context.Context) (v preresumesession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PreResumeSessionMutation) ResetStatus() {
	m.status = nil
}

// SetLanguage sets the "language" field.
func (m *PreResumeSessionMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *PreResumeSessionMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *PreResumeSessionMutation) ResetLanguage() {
	m.language = nil
}

// SetFollowupsSent sets the "followups_sent" field.
func (m *PreResumeSessionMutation) SetFollowupsSent(i int) {
	m.followups_sent = &i
	m.addfollowups_sent = nil
}

// FollowupsSent returns the value of the "followups_sent" field in the mutation.
func (m *PreResumeSessionMutation) FollowupsSent() (r int, exists bool) {
	v := m.followups_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowupsSent returns the old "followups_sent" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldFollowupsSent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowupsSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowupsSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowupsSent: %w", err)
	}
	return oldValue.FollowupsSent, nil
}

// AddFollowupsSent adds i to the "followups_sent" field.
func (m *PreResumeSessionMutation) AddFollowupsSent(i int) {
	if m.addfollowups_sent != nil {
		*m.addfollowups_sent += i
	} else {
		m.addfollowups_sent = &i
	}
}

// AddedFollowupsSent returns the value that was added to the "followups_sent" field in this mutation.
func (m *PreResumeSessionMutation) AddedFollowupsSent() (r int, exists bool) {
	v := m.addfollowups_sent
	if v == nil {
		return
	}
	return *v, true
}

// ResetFollowupsSent resets all changes to the "followups_sent" field.
func (m *PreResumeSessionMutation) ResetFollowupsSent() {
	m.followups_sent = nil
	m.addfollowups_sent = nil
}

// SetTurns sets the "turns" field.
func (m *PreResumeSessionMutation) SetTurns(i int) {
	m.turns = &i
	m.addturns = nil
}

// Turns returns the value of the "turns" field in the mutation.
func (m *PreResumeSessionMutation) Turns() (r int, exists bool) {
	v := m.turns
	if v == nil {
		return
	}
	return *v, true
}

// OldTurns returns the old "turns" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldTurns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurns: %w", err)
	}
	return oldValue.Turns, nil
}

// AddTurns adds i to the "turns" field.
func (m *PreResumeSessionMutation) AddTurns(i int) {
	if m.addturns != nil {
		*m.addturns += i
	} else {
		m.addturns = &i
	}
}

// AddedTurns returns the value that was added to the "turns" field in this mutation.
func (m *PreResumeSessionMutation) AddedTurns() (r int, exists bool) {
	v := m.addturns
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurns resets all changes to the "turns" field.
func (m *PreResumeSessionMutation) ResetTurns() {
	m.turns = nil
	m.addturns = nil
}

// SetLastIntent sets the "last_intent" field.
func (m *PreResumeSessionMutation) SetLastIntent(s string) {
	m.last_intent = &s
}

// LastIntent returns the value of the "last_intent" field in the mutation.
func (m *PreResumeSessionMutation) LastIntent() (r string, exists bool) {
	v := m.last_intent
	if v == nil {
		return
	}
	return *v, true
}

// OldLastIntent returns the old "last_intent" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldLastIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastIntent: %w", err)
	}
	return oldValue.LastIntent, nil
}

// ClearLastIntent clears the value of the "last_intent" field.
func (m *PreResumeSessionMutation) ClearLastIntent() {
	m.last_intent = nil
	m.clearedFields[preresumesession.FieldLastIntent] = struct{}{}
}

// LastIntentCleared returns if the "last_intent" field was cleared in this mutation.
func (m *PreResumeSessionMutation) LastIntentCleared() bool {
	_, ok := m.clearedFields[preresumesession.FieldLastIntent]
	return ok
}

// ResetLastIntent resets all changes to the "last_intent" field.
func (m *PreResumeSessionMutation) ResetLastIntent() {
	m.last_intent = nil
	delete(m.clearedFields, preresumesession.FieldLastIntent)
}

// SetResumeLinks sets the "resume_links" field.
func (m *PreResumeSessionMutation) SetResumeLinks(s []string) {
	m.resume_links = &s
	m.appendresume_links = nil
}

// ResumeLinks returns the value of the "resume_links" field in the mutation.
func (m *PreResumeSessionMutation) ResumeLinks() (r []string, exists bool) {
	v := m.resume_links
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeLinks returns the old "resume_links" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldResumeLinks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeLinks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeLinks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeLinks: %w", err)
	}
	return oldValue.ResumeLinks, nil
}

// AppendResumeLinks adds s to the "resume_links" field.
func (m *PreResumeSessionMutation) AppendResumeLinks(s []string) {
	m.appendresume_links = append(m.appendresume_links, s...)
}

// AppendedResumeLinks returns the list of values that were appended to the "resume_links" field in this mutation.
func (m *PreResumeSessionMutation) AppendedResumeLinks() ([]string, bool) {
	if len(m.appendresume_links) == 0 {
		return nil, false
	}
	return m.appendresume_links, true
}

// ClearResumeLinks clears the value of the "resume_links" field.
func (m *PreResumeSessionMutation) ClearResumeLinks() {
	m.resume_links = nil
	m.appendresume_links = nil
	m.clearedFields[preresumesession.FieldResumeLinks] = struct{}{}
}

// ResumeLinksCleared returns if the "resume_links" field was cleared in this mutation.
func (m *PreResumeSessionMutation) ResumeLinksCleared() bool {
	_, ok := m.clearedFields[preresumesession.FieldResumeLinks]
	return ok
}

// ResetResumeLinks resets all changes to the "resume_links" field.
func (m *PreResumeSessionMutation) ResetResumeLinks() {
	m.resume_links = nil
	m.appendresume_links = nil
	delete(m.clearedFields, preresumesession.FieldResumeLinks)
}

// SetNextFollowupAt sets the "next_followup_at" field.
func (m *PreResumeSessionMutation) SetNextFollowupAt(t time.Time) {
	m.next_followup_at = &t
}

// NextFollowupAt returns the value of the "next_followup_at" field in the mutation.
func (m *PreResumeSessionMutation) NextFollowupAt() (r time.Time, exists bool) {
	v := m.next_followup_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextFollowupAt returns the old "next_followup_at" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldNextFollowupAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextFollowupAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextFollowupAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextFollowupAt: %w", err)
	}
	return oldValue.NextFollowupAt, nil
}

// ClearNextFollowupAt clears the value of the "next_followup_at" field.
func (m *PreResumeSessionMutation) ClearNextFollowupAt() {
	m.next_followup_at = nil
	m.clearedFields[preresumesession.FieldNextFollowupAt] = struct{}{}
}

// NextFollowupAtCleared returns if the "next_followup_at" field was cleared in this mutation.
func (m *PreResumeSessionMutation) NextFollowupAtCleared() bool {
	_, ok := m.clearedFields[preresumesession.FieldNextFollowupAt]
	return ok
}

// ResetNextFollowupAt resets all changes to the "next_followup_at" field.
func (m *PreResumeSessionMutation) ResetNextFollowupAt() {
	m.next_followup_at = nil
	delete(m.clearedFields, preresumesession.FieldNextFollowupAt)
}

// SetState sets the "state" field.
func (m *PreResumeSessionMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *PreResumeSessionMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *PreResumeSessionMutation) ClearState() {
	m.state = nil
	m.clearedFields[preresumesession.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *PreResumeSessionMutation) StateCleared() bool {
	_, ok := m.clearedFields[preresumesession.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *PreResumeSessionMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, preresumesession.FieldState)
}

// SetLastError sets the "last_error" field.
func (m *PreResumeSessionMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *PreResumeSessionMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *PreResumeSessionMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[preresumesession.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *PreResumeSessionMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[preresumesession.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *PreResumeSessionMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, preresumesession.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *PreResumeSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PreResumeSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PreResumeSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PreResumeSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PreResumeSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PreResumeSession entity.
// If the PreResumeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PreResumeSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PreResumeSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *PreResumeSessionMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[preresumesession.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *PreResumeSessionMutation) ConversationCleared() bool {
	return m.ConversationIDCleared() || m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *PreResumeSessionMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *PreResumeSessionMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// AddEventIDs adds the "events" edge to the PreResumeEvent entity by ids.
func (m *PreResumeSessionMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the PreResumeEvent entity.
func (m *PreResumeSessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the PreResumeEvent entity was cleared.
func (m *PreResumeSessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the PreResumeEvent entity by IDs.
func (m *PreResumeSessionMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the PreResumeEvent entity.
func (m *PreResumeSessionMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *PreResumeSessionMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *PreResumeSessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the PreResumeSessionMutation builder.
func (m *PreResumeSessionMutation) Where(ps ...predicate.PreResumeSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PreResumeSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PreResumeSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PreResumeSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PreResumeSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PreResumeSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PreResumeSession).
func (m *PreResumeSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PreResumeSessionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.conversation != nil {
		fields = append(fields, preresumesession.FieldConversationID)
	}
	if m.job_id != nil {
		fields = append(fields, preresumesession.FieldJobID)
	}
	if m.candidate_id != nil {
		fields = append(fields, preresumesession.FieldCandidateID)
	}
	if m.status != nil {
		fields = append(fields, preresumesession.FieldStatus)
	}
	if m.language != nil {
		fields = append(fields, preresumesession.FieldLanguage)
	}
	if m.followups_sent != nil {
		fields = append(fields, preresumesession.FieldFollowupsSent)
	}
	if m.turns != nil {
		fields = append(fields, preresumesession.FieldTurns)
	}
	if m.last_intent != nil {
		fields = append(fields, preresumesession.FieldLastIntent)
	}
	if m.resume_links != nil {
		fields = append(fields, preresumesession.FieldResumeLinks)
	}
	if m.next_followup_at != nil {
		fields = append(fields, preresumesession.FieldNextFollowupAt)
	}
	if m.state != nil {
		fields = append(fields, preresumesession.FieldState)
	}
	if m.last_error != nil {
		fields = append(fields, preresumesession.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, preresumesession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, preresumesession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PreResumeSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case preresumesession.FieldConversationID:
		return m.ConversationID()
	case preresumesession.FieldJobID:
		return m.JobID()
	case preresumesession.FieldCandidateID:
		return m.CandidateID()
	case preresumesession.FieldStatus:
		return m.Status()
	case preresumesession.FieldLanguage:
		return m.Language()
	case preresumesession.FieldFollowupsSent:
		return m.FollowupsSent()
	case preresumesession.FieldTurns:
		return m.Turns()
	case preresumesession.FieldLastIntent:
		return m.LastIntent()
	case preresumesession.FieldResumeLinks:
		return m.ResumeLinks()
	case preresumesession.FieldNextFollowupAt:
		return m.NextFollowupAt()
	case preresumesession.FieldState:
		return m.State()
	case preresumesession.FieldLastError:
		return m.LastError()
	case preresumesession.FieldCreatedAt:
		return m.CreatedAt()
	case preresumesession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PreResumeSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case preresumesession.FieldConversationID:
		return m.OldConversationID(ctx)
	case preresumesession.FieldJobID:
		return m.OldJobID(ctx)
	case preresumesession.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case preresumesession.FieldStatus:
		return m.OldStatus(ctx)
	case preresumesession.FieldLanguage:
		return m.OldLanguage(ctx)
	case preresumesession.FieldFollowupsSent:
		return m.OldFollowupsSent(ctx)
	case preresumesession.FieldTurns:
		return m.OldTurns(ctx)
	case preresumesession.FieldLastIntent:
		return m.OldLastIntent(ctx)
	case preresumesession.FieldResumeLinks:
		return m.OldResumeLinks(ctx)
	case preresumesession.FieldNextFollowupAt:
		return m.OldNextFollowupAt(ctx)
	case preresumesession.FieldState:
		return m.OldState(ctx)
	case preresumesession.FieldLastError:
		return m.OldLastError(ctx)
	case preresumesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case preresumesession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PreResumeSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PreResumeSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case preresumesession.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case preresumesession.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case preresumesession.FieldCandidateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case preresumesession.FieldStatus:
		v, ok := value.(preresumesession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case preresumesession.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case preresumesession.FieldFollowupsSent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowupsSent(v)
		return nil
	case preresumesession.FieldTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurns(v)
		return nil
	case preresumesession.FieldLastIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastIntent(v)
		return nil
	case preresumesession.FieldResumeLinks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeLinks(v)
		return nil
	case preresumesession.FieldNextFollowupAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextFollowupAt(v)
		return nil
	case preresumesession.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case preresumesession.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case preresumesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case preresumesession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PreResumeSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PreResumeSessionMutation) AddedFields() []string {
	var fields []string
	if m.addfollowups_sent != nil {
		fields = append(fields, preresumesession.FieldFollowupsSent)
	}
	if m.addturns != nil {
		fields = append(fields, preresumesession.FieldTurns)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PreResumeSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case preresumesession.FieldFollowupsSent:
		return m.AddedFollowupsSent()
	case preresumesession.FieldTurns:
		return m.AddedTurns()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PreResumeSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case preresumesession.FieldFollowupsSent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFollowupsSent(v)
		return nil
	case preresumesession.FieldTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurns(v)
		return nil
	}
	return fmt.Errorf("unknown PreResumeSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PreResumeSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(preresumesession.FieldConversationID) {
		fields = append(fields, preresumesession.FieldConversationID)
	}
	if m.FieldCleared(preresumesession.FieldJobID) {
		fields = append(fields, preresumesession.FieldJobID)
	}
	if m.FieldCleared(preresumesession.FieldCandidateID) {
		fields = append(fields, preresumesession.FieldCandidateID)
	}
	if m.FieldCleared(preresumesession.FieldLastIntent) {
		fields = append(fields, preresumesession.FieldLastIntent)
	}
	if m.FieldCleared(preresumesession.FieldResumeLinks) {
		fields = append(fields, preresumesession.FieldResumeLinks)
	}
	if m.FieldCleared(preresumesession.FieldNextFollowupAt) {
		fields = append(fields, preresumesession.FieldNextFollowupAt)
	}
	if m.FieldCleared(preresumesession.FieldState) {
		fields = append(fields, preresumesession.FieldState)
	}
	if m.FieldCleared(preresumesession.FieldLastError) {
		fields = append(fields, preresumesession.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PreResumeSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PreResumeSessionMutation) ClearField(name string) error {
	switch name {
	case preresumesession.FieldConversationID:
		m.ClearConversationID()
		return nil
	case preresumesession.FieldJobID:
		m.ClearJobID()
		return nil
	case preresumesession.FieldCandidateID:
		m.ClearCandidateID()
		return nil
	case preresumesession.FieldLastIntent:
		m.ClearLastIntent()
		return nil
	case preresumesession.FieldResumeLinks:
		m.ClearResumeLinks()
		return nil
	case preresumesession.FieldNextFollowupAt:
		m.ClearNextFollowupAt()
		return nil
	case preresumesession.FieldState:
		m.ClearState()
		return nil
	case preresumesession.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown PreResumeSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PreResumeSessionMutation) ResetField(name string) error {
	switch name {
	case preresumesession.FieldConversationID:
		m.ResetConversationID()
		return nil
	case preresumesession.FieldJobID:
		m.ResetJobID()
		return nil
	case preresumesession.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case preresumesession.FieldStatus:
		m.ResetStatus()
		return nil
	case preresumesession.FieldLanguage:
		m.ResetLanguage()
		return nil
	case preresumesession.FieldFollowupsSent:
		m.ResetFollowupsSent()
		return nil
	case preresumesession.FieldTurns:
		m.ResetTurns()
		return nil
	case preresumesession.FieldLastIntent:
		m.ResetLastIntent()
		return nil
	case preresumesession.FieldResumeLinks:
		m.ResetResumeLinks()
		return nil
	case preresumesession.FieldNextFollowupAt:
		m.ResetNextFollowupAt()
		return nil
	case preresumesession.FieldState:
		m.ResetState()
		return nil
	case preresumesession.FieldLastError:
		m.ResetLastError()
		return nil
	case preresumesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case preresumesession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PreResumeSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PreResumeSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.conversation != nil {
		edges = append(edges, preresumesession.EdgeConversation)
	}
	if m.events != nil {
		edges = append(edges, preresumesession.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PreResumeSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case preresumesession.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	case preresumesession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PreResumeSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedevents != nil {
		edges = append(edges, preresumesession.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PreResumeSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case preresumesession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PreResumeSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedconversation {
		edges = append(edges, preresumesession.EdgeConversation)
	}
	if m.clearedevents {
		edges = append(edges, preresumesession.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PreResumeSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case preresumesession.EdgeConversation:
		return m.clearedconversation
	case preresumesession.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PreResumeSessionMutation) ClearEdge(name string) error {
	switch name {
	case preresumesession.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown PreResumeSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PreResumeSessionMutation) ResetEdge(name string) error {
	switch name {
	case preresumesession.EdgeConversation:
		m.ResetConversation()
		return nil
	case preresumesession.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown PreResumeSession edge %s", name)
}

// SenderAccountMutation represents an operation that mutates the SenderAccount nodes in the graph.
type SenderAccountMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	provider_account_id *string
	provider_user_id    *string
	label               *string
	status              *senderaccount.Status
	connected_at        *time.Time
	last_synced_at      *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*SenderAccount, error)
	predicates          []predicate.SenderAccount
}

var _ ent.Mutation = (*SenderAccountMutation)(nil)

// senderaccountOption allows management of the mutation configuration using functional options.
type senderaccountOption func(*SenderAccountMutation)

// newSenderAccountMutation creates new mutation for the SenderAccount entity.
func newSenderAccountMutation(c config, op Op, opts ...senderaccountOption) *SenderAccountMutation {
	m := &SenderAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeSenderAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSenderAccountID sets the ID field of the mutation.
func withSenderAccountID(id string) senderaccountOption {
	return func(m *SenderAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *SenderAccount
		)
		m.oldValue = func(ctx context.Context) (*SenderAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SenderAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSenderAccount sets the old SenderAccount of the mutation.
func withSenderAccount(node *SenderAccount) senderaccountOption {
	return func(m *SenderAccountMutation) {
		m.oldValue = func(context.Context) (*SenderAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SenderAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SenderAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SenderAccount entities.
func (m *SenderAccountMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SenderAccountMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SenderAccountMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SenderAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProviderAccountID sets the "provider_account_id" field.
func (m *SenderAccountMutation) SetProviderAccountID(s string) {
	m.provider_account_id = &s
}

// ProviderAccountID returns the value of the "provider_account_id" field in the mutation.
func (m *SenderAccountMutation) ProviderAccountID() (r string, exists bool) {
	v := m.provider_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderAccountID returns the old "provider_account_id" field's value of the SenderAccount entity.
// If the SenderAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderAccountMutation) OldProviderAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderAccountID: %w", err)
	}
	return oldValue.ProviderAccountID, nil
}

// ResetProviderAccountID resets all changes to the "provider_account_id" field.
func (m *SenderAccountMutation) ResetProviderAccountID() {
	m.provider_account_id = nil
}

// SetProviderUserID sets the "provider_user_id" field.
func (m *SenderAccountMutation) SetProviderUserID(s string) {
	m.provider_user_id = &s
}

// ProviderUserID returns the value of the "provider_user_id" field in the mutation.
func (m *SenderAccountMutation) ProviderUserID() (r string, exists bool) {
	v := m.provider_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderUserID returns the old "provider_user_id" field's value of the SenderAccount entity.
// If the SenderAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderAccountMutation) OldProviderUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderUserID: %w", err)
	}
	return oldValue.ProviderUserID, nil
}

// ClearProviderUserID clears the value of the "provider_user_id" field.
func (m *SenderAccountMutation) ClearProviderUserID() {
	m.provider_user_id = nil
	m.clearedFields[senderaccount.FieldProviderUserID] = struct{}{}
}

// ProviderUserIDCleared returns if the "provider_user_id" field was cleared in this mutation.
func (m *SenderAccountMutation) ProviderUserIDCleared() bool {
	_, ok := m.clearedFields[senderaccount.FieldProviderUserID]
	return ok
}

// ResetProviderUserID resets all changes to the "provider_user_id" field.
func (m *SenderAccountMutation) ResetProviderUserID() {
	m.provider_user_id = nil
	delete(m.clearedFields, senderaccount.FieldProviderUserID)
}

// SetLabel sets the "label" field.
func (m *SenderAccountMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *SenderAccountMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the SenderAccount entity.
// If the SenderAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderAccountMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ClearLabel clears the value of the "label" field.
func (m *SenderAccountMutation) ClearLabel() {
	m.label = nil
	m.clearedFields[senderaccount.FieldLabel] = struct{}{}
}

// LabelCleared returns if the "label" field was cleared in this mutation.
func (m *SenderAccountMutation) LabelCleared() bool {
	_, ok := m.clearedFields[senderaccount.FieldLabel]
	return ok
}

// ResetLabel resets all changes to the "label" field.
func (m *SenderAccountMutation) ResetLabel() {
	m.label = nil
	delete(m.clearedFields, senderaccount.FieldLabel)
}

// SetStatus sets the "status" field.
func (m *SenderAccountMutation) SetStatus(s senderaccount.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SenderAccountMutation) Status() (r senderaccount.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SenderAccount entity.
// If the SenderAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderAccountMutation) OldStatus(ctx context.Context) (v senderaccount.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SenderAccountMutation) ResetStatus() {
	m.status = nil
}

// SetConnectedAt sets the "connected_at" field.
func (m *SenderAccountMutation) SetConnectedAt(t time.Time) {
	m.connected_at = &t
}

// ConnectedAt returns the value of the "connected_at" field in the mutation.
func (m *SenderAccountMutation) ConnectedAt() (r time.Time, exists bool) {
	v := m.connected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectedAt returns the old "connected_at" field's value of the SenderAccount entity.
// If the SenderAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderAccountMutation) OldConnectedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectedAt: %w", err)
	}
	return oldValue.ConnectedAt, nil
}

// ClearConnectedAt clears the value of the "connected_at" field.
func (m *SenderAccountMutation) ClearConnectedAt() {
	m.connected_at = nil
	m.clearedFields[senderaccount.FieldConnectedAt] = struct{}{}
}

// ConnectedAtCleared returns if the "connected_at" field was cleared in this mutation.
func (m *SenderAccountMutation) ConnectedAtCleared() bool {
	_, ok := m.clearedFields[senderaccount.FieldConnectedAt]
	return ok
}

// ResetConnectedAt resets all changes to the "connected_at" field.
func (m *SenderAccountMutation) ResetConnectedAt() {
	m.connected_at = nil
	delete(m.clearedFields, senderaccount.FieldConnectedAt)
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (m *SenderAccountMutation) SetLastSyncedAt(t time.Time) {
	m.last_synced_at = &t
}

// LastSyncedAt returns the value of the "last_synced_at" field in the mutation.
func (m *SenderAccountMutation) LastSyncedAt() (r time.Time, exists bool) {
	v := m.last_synced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncedAt returns the old "last_synced_at" field's value of the SenderAccount entity.
// If the SenderAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderAccountMutation) OldLastSyncedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncedAt: %w", err)
	}
	return oldValue.LastSyncedAt, nil
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (m *SenderAccountMutation) ClearLastSyncedAt() {
	m.last_synced_at = nil
	m.clearedFields[senderaccount.FieldLastSyncedAt] = struct{}{}
}

// LastSyncedAtCleared returns if the "last_synced_at" field was cleared in this mutation.
func (m *SenderAccountMutation) LastSyncedAtCleared() bool {
	_, ok := m.clearedFields[senderaccount.FieldLastSyncedAt]
	return ok
}

// ResetLastSyncedAt resets all changes to the "last_synced_at" field.
func (m *SenderAccountMutation) ResetLastSyncedAt() {
	m.last_synced_at = nil
	delete(m.clearedFields, senderaccount.FieldLastSyncedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SenderAccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SenderAccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SenderAccount entity.
// If the SenderAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderAccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SenderAccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SenderAccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SenderAccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SenderAccount entity.
// If the SenderAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderAccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SenderAccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SenderAccountMutation builder.
func (m *SenderAccountMutation) Where(ps ...predicate.SenderAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SenderAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SenderAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SenderAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SenderAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SenderAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SenderAccount).
func (m *SenderAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SenderAccountMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.provider_account_id != nil {
		fields = append(fields, senderaccount.FieldProviderAccountID)
	}
	if m.provider_user_id != nil {
		fields = append(fields, senderaccount.FieldProviderUserID)
	}
	if m.label != nil {
		fields = append(fields, senderaccount.FieldLabel)
	}
	if m.status != nil {
		fields = append(fields, senderaccount.FieldStatus)
	}
	if m.connected_at != nil {
		fields = append(fields, senderaccount.FieldConnectedAt)
	}
	if m.last_synced_at != nil {
		fields = append(fields, senderaccount.FieldLastSyncedAt)
	}
	if m.created_at != nil {
		fields = append(fields, senderaccount.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, senderaccount.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SenderAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case senderaccount.FieldProviderAccountID:
		return m.ProviderAccountID()
	case senderaccount.FieldProviderUserID:
		return m.ProviderUserID()
	case senderaccount.FieldLabel:
		return m.Label()
	case senderaccount.FieldStatus:
		return m.Status()
	case senderaccount.FieldConnectedAt:
		return m.ConnectedAt()
	case senderaccount.FieldLastSyncedAt:
		return m.LastSyncedAt()
	case senderaccount.FieldCreatedAt:
		return m.CreatedAt()
	case senderaccount.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SenderAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case senderaccount.FieldProviderAccountID:
		return m.OldProviderAccountID(ctx)
	case senderaccount.FieldProviderUserID:
		return m.OldProviderUserID(ctx)
	case senderaccount.FieldLabel:
		return m.OldLabel(ctx)
	case senderaccount.FieldStatus:
		return m.OldStatus(ctx)
	case senderaccount.FieldConnectedAt:
		return m.OldConnectedAt(ctx)
	case senderaccount.FieldLastSyncedAt:
		return m.OldLastSyncedAt(ctx)
	case senderaccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case senderaccount.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SenderAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SenderAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case senderaccount.FieldProviderAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderAccountID(v)
		return nil
	case senderaccount.FieldProviderUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderUserID(v)
		return nil
	case senderaccount.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case senderaccount.FieldStatus:
		v, ok := value.(senderaccount.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case senderaccount.FieldConnectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectedAt(v)
		return nil
	case senderaccount.FieldLastSyncedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncedAt(v)
		return nil
	case senderaccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case senderaccount.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SenderAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SenderAccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SenderAccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SenderAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SenderAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SenderAccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(senderaccount.FieldProviderUserID) {
		fields = append(fields, senderaccount.FieldProviderUserID)
	}
	if m.FieldCleared(senderaccount.FieldLabel) {
		fields = append(fields, senderaccount.FieldLabel)
	}
	if m.FieldCleared(senderaccount.FieldConnectedAt) {
		fields = append(fields, senderaccount.FieldConnectedAt)
	}
	if m.FieldCleared(senderaccount.FieldLastSyncedAt) {
		fields = append(fields, senderaccount.FieldLastSyncedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SenderAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SenderAccountMutation) ClearField(name string) error {
	switch name {
	case senderaccount.FieldProviderUserID:
		m.ClearProviderUserID()
		return nil
	case senderaccount.FieldLabel:
		m.ClearLabel()
		return nil
	case senderaccount.FieldConnectedAt:
		m.ClearConnectedAt()
		return nil
	case senderaccount.FieldLastSyncedAt:
		m.ClearLastSyncedAt()
		return nil
	}
	return fmt.Errorf("unknown SenderAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SenderAccountMutation) ResetField(name string) error {
	switch name {
	case senderaccount.FieldProviderAccountID:
		m.ResetProviderAccountID()
		return nil
	case senderaccount.FieldProviderUserID:
		m.ResetProviderUserID()
		return nil
	case senderaccount.FieldLabel:
		m.ResetLabel()
		return nil
	case senderaccount.FieldStatus:
		m.ResetStatus()
		return nil
	case senderaccount.FieldConnectedAt:
		m.ResetConnectedAt()
		return nil
	case senderaccount.FieldLastSyncedAt:
		m.ResetLastSyncedAt()
		return nil
	case senderaccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case senderaccount.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SenderAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SenderAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SenderAccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SenderAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SenderAccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SenderAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SenderAccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SenderAccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SenderAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SenderAccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SenderAccount edge %s", name)
}
