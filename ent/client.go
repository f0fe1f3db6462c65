// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/hireflow/scout/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
	"github.com/hireflow/scout/ent/preresumeevent"
	"github.com/hireflow/scout/ent/preresumesession"
	"github.com/hireflow/scout/ent/senderaccount"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AccountCounter is the client for interacting with the AccountCounter builders.
	AccountCounter *AccountCounterClient
	// AgentAssessment is the client for interacting with the AgentAssessment builders.
	AgentAssessment *AgentAssessmentClient
	// Candidate is the client for interacting with the Candidate builders.
	Candidate *CandidateClient
	// CandidateSignal is the client for interacting with the CandidateSignal builders.
	CandidateSignal *CandidateSignalClient
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// IdempotencyRecord is the client for interacting with the IdempotencyRecord builders.
	IdempotencyRecord *IdempotencyRecordClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// JobAccountAssignment is the client for interacting with the JobAccountAssignment builders.
	JobAccountAssignment *JobAccountAssignmentClient
	// JobStepProgress is the client for interacting with the JobStepProgress builders.
	JobStepProgress *JobStepProgressClient
	// Match is the client for interacting with the Match builders.
	Match *MatchClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// OperationLog is the client for interacting with the OperationLog builders.
	OperationLog *OperationLogClient
	// OutboundAction is the client for interacting with the OutboundAction builders.
	OutboundAction *OutboundActionClient
	// PreResumeEvent is the client for interacting with the PreResumeEvent builders.
	PreResumeEvent *PreResumeEventClient
	// PreResumeSession is the client for interacting with the PreResumeSession builders.
	PreResumeSession *PreResumeSessionClient
	// SenderAccount is the client for interacting with the SenderAccount builders.
	SenderAccount *SenderAccountClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AccountCounter = NewAccountCounterClient(c.config)
	c.AgentAssessment = NewAgentAssessmentClient(c.config)
	c.Candidate = NewCandidateClient(c.config)
	c.CandidateSignal = NewCandidateSignalClient(c.config)
	c.Conversation = NewConversationClient(c.config)
	c.IdempotencyRecord = NewIdempotencyRecordClient(c.config)
	c.Job = NewJobClient(c.config)
	c.JobAccountAssignment = NewJobAccountAssignmentClient(c.config)
	c.JobStepProgress = NewJobStepProgressClient(c.config)
	c.Match = NewMatchClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.OperationLog = NewOperationLogClient(c.config)
	c.OutboundAction = NewOutboundActionClient(c.config)
	c.PreResumeEvent = NewPreResumeEventClient(c.config)
	c.PreResumeSession = NewPreResumeSessionClient(c.config)
	c.SenderAccount = NewSenderAccountClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		AccountCounter:       NewAccountCounterClient(cfg),
		AgentAssessment:      NewAgentAssessmentClient(cfg),
		Candidate:            NewCandidateClient(cfg),
		CandidateSignal:      NewCandidateSignalClient(cfg),
		Conversation:         NewConversationClient(cfg),
		IdempotencyRecord:    NewIdempotencyRecordClient(cfg),
		Job:                  NewJobClient(cfg),
		JobAccountAssignment: NewJobAccountAssignmentClient(cfg),
		JobStepProgress:      NewJobStepProgressClient(cfg),
		Match:                NewMatchClient(cfg),
		Message:              NewMessageClient(cfg),
		OperationLog:         NewOperationLogClient(cfg),
		OutboundAction:       NewOutboundActionClient(cfg),
		PreResumeEvent:       NewPreResumeEventClient(cfg),
		PreResumeSession:     NewPreResumeSessionClient(cfg),
		SenderAccount:        NewSenderAccountClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		AccountCounter:       NewAccountCounterClient(cfg),
		AgentAssessment:      NewAgentAssessmentClient(cfg),
		Candidate:            NewCandidateClient(cfg),
		CandidateSignal:      NewCandidateSignalClient(cfg),
		Conversation:         NewConversationClient(cfg),
		IdempotencyRecord:    NewIdempotencyRecordClient(cfg),
		Job:                  NewJobClient(cfg),
		JobAccountAssignment: NewJobAccountAssignmentClient(cfg),
		JobStepProgress:      NewJobStepProgressClient(cfg),
		Match:                NewMatchClient(cfg),
		Message:              NewMessageClient(cfg),
		OperationLog:         NewOperationLogClient(cfg),
		OutboundAction:       NewOutboundActionClient(cfg),
		PreResumeEvent:       NewPreResumeEventClient(cfg),
		PreResumeSession:     NewPreResumeSessionClient(cfg),
		SenderAccount:        NewSenderAccountClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AccountCounter.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AccountCounter, c.AgentAssessment, c.Candidate, c.CandidateSignal,
		c.Conversation, c.IdempotencyRecord, c.Job, c.JobAccountAssignment,
		c.JobStepProgress, c.Match, c.Message, c.OperationLog, c.OutboundAction,
		c.PreResumeEvent, c.PreResumeSession, c.SenderAccount,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AccountCounter, c.AgentAssessment, c.Candidate, c.CandidateSignal,
		c.Conversation, c.IdempotencyRecord, c.Job, c.JobAccountAssignment,
		c.JobStepProgress, c.Match, c.Message, c.OperationLog, c.OutboundAction,
		c.PreResumeEvent, c.PreResumeSession, c.SenderAccount,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AccountCounterMutation:
		return c.AccountCounter.mutate(ctx, m)
	case *AgentAssessmentMutation:
		return c.AgentAssessment.mutate(ctx, m)
	case *CandidateMutation:
		return c.Candidate.mutate(ctx, m)
	case *CandidateSignalMutation:
		return c.CandidateSignal.mutate(ctx, m)
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *IdempotencyRecordMutation:
		return c.IdempotencyRecord.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *JobAccountAssignmentMutation:
		return c.JobAccountAssignment.mutate(ctx, m)
	case *JobStepProgressMutation:
		return c.JobStepProgress.mutate(ctx, m)
	case *MatchMutation:
		return c.Match.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *OperationLogMutation:
		return c.OperationLog.mutate(ctx, m)
	case *OutboundActionMutation:
		return c.OutboundAction.mutate(ctx, m)
	case *PreResumeEventMutation:
		return c.PreResumeEvent.mutate(ctx, m)
	case *PreResumeSessionMutation:
		return c.PreResumeSession.mutate(ctx, m)
	case *SenderAccountMutation:
		return c.SenderAccount.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AccountCounterClient is a client for the AccountCounter schema.
type AccountCounterClient struct {
	config
}

// NewAccountCounterClient returns a client for the AccountCounter from the given config.
func NewAccountCounterClient(c config) *AccountCounterClient {
	return &AccountCounterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `accountcounter.Hooks(f(g(h())))`.
func (c *AccountCounterClient) Use(hooks ...Hook) {
	c.hooks.AccountCounter = append(c.hooks.AccountCounter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `accountcounter.Intercept(f(g(h())))`.
func (c *AccountCounterClient) Intercept(interceptors ...Interceptor) {
	c.inters.AccountCounter = append(c.inters.AccountCounter, interceptors...)
}

// Create returns a builder for creating a AccountCounter entity.
func (c *AccountCounterClient) Create() *AccountCounterCreate {
	mutation := newAccountCounterMutation(c.config, OpCreate)
	return &AccountCounterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AccountCounter entities.
func (c *AccountCounterClient) CreateBulk(builders ...*AccountCounterCreate) *AccountCounterCreateBulk {
	return &AccountCounterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AccountCounterClient) MapCreateBulk(slice any, setFunc func(*AccountCounterCreate, int)) *AccountCounterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AccountCounterCreateBulk{err: fmt.Errorf("calling to AccountCounterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AccountCounterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AccountCounterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AccountCounter.
func (c *AccountCounterClient) Update() *AccountCounterUpdate {
	mutation := newAccountCounterMutation(c.config, OpUpdate)
	return &AccountCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AccountCounterClient) UpdateOne(_m *AccountCounter) *AccountCounterUpdateOne {
	mutation := newAccountCounterMutation(c.config, OpUpdateOne, withAccountCounter(_m))
	return &AccountCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AccountCounterClient) UpdateOneID(id int) *AccountCounterUpdateOne {
	mutation := newAccountCounterMutation(c.config, OpUpdateOne, withAccountCounterID(id))
	return &AccountCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AccountCounter.
func (c *AccountCounterClient) Delete() *AccountCounterDelete {
	mutation := newAccountCounterMutation(c.config, OpDelete)
	return &AccountCounterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AccountCounterClient) DeleteOne(_m *AccountCounter) *AccountCounterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AccountCounterClient) DeleteOneID(id int) *AccountCounterDeleteOne {
	builder := c.Delete().Where(accountcounter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AccountCounterDeleteOne{builder}
}

// Query returns a query builder for AccountCounter.
func (c *AccountCounterClient) Query() *AccountCounterQuery {
	return &AccountCounterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAccountCounter},
		inters: c.Interceptors(),
	}
}

// Get returns a AccountCounter entity by its id.
func (c *AccountCounterClient) Get(ctx context.Context, id int) (*AccountCounter, error) {
	return c.Query().Where(accountcounter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AccountCounterClient) GetX(ctx context.Context, id int) *AccountCounter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AccountCounterClient) Hooks() []Hook {
	return c.hooks.AccountCounter
}

// Interceptors returns the client interceptors.
func (c *AccountCounterClient) Interceptors() []Interceptor {
	return c.inters.AccountCounter
}

func (c *AccountCounterClient) mutate(ctx context.Context, m *AccountCounterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AccountCounterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AccountCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AccountCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AccountCounterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AccountCounter mutation op: %q", m.Op())
	}
}

// AgentAssessmentClient is a client for the AgentAssessment schema.
type AgentAssessmentClient struct {
	config
}

// NewAgentAssessmentClient returns a client for the AgentAssessment from the given config.
func NewAgentAssessmentClient(c config) *AgentAssessmentClient {
	return &AgentAssessmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentassessment.Hooks(f(g(h())))`.
func (c *AgentAssessmentClient) Use(hooks ...Hook) {
	c.hooks.AgentAssessment = append(c.hooks.AgentAssessment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentassessment.Intercept(f(g(h())))`.
func (c *AgentAssessmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentAssessment = append(c.inters.AgentAssessment, interceptors...)
}

// Create returns a builder for creating a AgentAssessment entity.
func (c *AgentAssessmentClient) Create() *AgentAssessmentCreate {
	mutation := newAgentAssessmentMutation(c.config, OpCreate)
	return &AgentAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentAssessment entities.
func (c *AgentAssessmentClient) CreateBulk(builders ...*AgentAssessmentCreate) *AgentAssessmentCreateBulk {
	return &AgentAssessmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentAssessmentClient) MapCreateBulk(slice any, setFunc func(*AgentAssessmentCreate, int)) *AgentAssessmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentAssessmentCreateBulk{err: fmt.Errorf("calling to AgentAssessmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentAssessmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentAssessmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentAssessment.
func (c *AgentAssessmentClient) Update() *AgentAssessmentUpdate {
	mutation := newAgentAssessmentMutation(c.config, OpUpdate)
	return &AgentAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentAssessmentClient) UpdateOne(_m *AgentAssessment) *AgentAssessmentUpdateOne {
	mutation := newAgentAssessmentMutation(c.config, OpUpdateOne, withAgentAssessment(_m))
	return &AgentAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentAssessmentClient) UpdateOneID(id string) *AgentAssessmentUpdateOne {
	mutation := newAgentAssessmentMutation(c.config, OpUpdateOne, withAgentAssessmentID(id))
	return &AgentAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentAssessment.
func (c *AgentAssessmentClient) Delete() *AgentAssessmentDelete {
	mutation := newAgentAssessmentMutation(c.config, OpDelete)
	return &AgentAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentAssessmentClient) DeleteOne(_m *AgentAssessment) *AgentAssessmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentAssessmentClient) DeleteOneID(id string) *AgentAssessmentDeleteOne {
	builder := c.Delete().Where(agentassessment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentAssessmentDeleteOne{builder}
}

// Query returns a query builder for AgentAssessment.
func (c *AgentAssessmentClient) Query() *AgentAssessmentQuery {
	return &AgentAssessmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentAssessment},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentAssessment entity by its id.
func (c *AgentAssessmentClient) Get(ctx context.Context, id string) (*AgentAssessment, error) {
	return c.Query().Where(agentassessment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentAssessmentClient) GetX(ctx context.Context, id string) *AgentAssessment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentAssessmentClient) Hooks() []Hook {
	return c.hooks.AgentAssessment
}

// Interceptors returns the client interceptors.
func (c *AgentAssessmentClient) Interceptors() []Interceptor {
	return c.inters.AgentAssessment
}

func (c *AgentAssessmentClient) mutate(ctx context.Context, m *AgentAssessmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentAssessment mutation op: %q", m.Op())
	}
}

// CandidateClient is a client for the Candidate schema.
type CandidateClient struct {
	config
}

// NewCandidateClient returns a client for the Candidate from the given config.
func NewCandidateClient(c config) *CandidateClient {
	return &CandidateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `candidate.Hooks(f(g(h())))`.
func (c *CandidateClient) Use(hooks ...Hook) {
	c.hooks.Candidate = append(c.hooks.Candidate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `candidate.Intercept(f(g(h())))`.
func (c *CandidateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Candidate = append(c.inters.Candidate, interceptors...)
}

// Create returns a builder for creating a Candidate entity.
func (c *CandidateClient) Create() *CandidateCreate {
	mutation := newCandidateMutation(c.config, OpCreate)
	return &CandidateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Candidate entities.
func (c *CandidateClient) CreateBulk(builders ...*CandidateCreate) *CandidateCreateBulk {
	return &CandidateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CandidateClient) MapCreateBulk(slice any, setFunc func(*CandidateCreate, int)) *CandidateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CandidateCreateBulk{err: fmt.Errorf("calling to CandidateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CandidateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CandidateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Candidate.
func (c *CandidateClient) Update() *CandidateUpdate {
	mutation := newCandidateMutation(c.config, OpUpdate)
	return &CandidateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CandidateClient) UpdateOne(_m *Candidate) *CandidateUpdateOne {
	mutation := newCandidateMutation(c.config, OpUpdateOne, withCandidate(_m))
	return &CandidateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CandidateClient) UpdateOneID(id string) *CandidateUpdateOne {
	mutation := newCandidateMutation(c.config, OpUpdateOne, withCandidateID(id))
	return &CandidateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Candidate.
func (c *CandidateClient) Delete() *CandidateDelete {
	mutation := newCandidateMutation(c.config, OpDelete)
	return &CandidateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CandidateClient) DeleteOne(_m *Candidate) *CandidateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CandidateClient) DeleteOneID(id string) *CandidateDeleteOne {
	builder := c.Delete().Where(candidate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CandidateDeleteOne{builder}
}

// Query returns a query builder for Candidate.
func (c *CandidateClient) Query() *CandidateQuery {
	return &CandidateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCandidate},
		inters: c.Interceptors(),
	}
}

// Get returns a Candidate entity by its id.
func (c *CandidateClient) Get(ctx context.Context, id string) (*Candidate, error) {
	return c.Query().Where(candidate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CandidateClient) GetX(ctx context.Context, id string) *Candidate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMatches queries the matches edge of a Candidate.
func (c *CandidateClient) QueryMatches(_m *Candidate) *MatchQuery {
	query := (&MatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(candidate.Table, candidate.FieldID, id),
			sqlgraph.To(match.Table, match.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, candidate.MatchesTable, candidate.MatchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConversations queries the conversations edge of a Candidate.
func (c *CandidateClient) QueryConversations(_m *Candidate) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(candidate.Table, candidate.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, candidate.ConversationsTable, candidate.ConversationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CandidateClient) Hooks() []Hook {
	return c.hooks.Candidate
}

// Interceptors returns the client interceptors.
func (c *CandidateClient) Interceptors() []Interceptor {
	return c.inters.Candidate
}

func (c *CandidateClient) mutate(ctx context.Context, m *CandidateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CandidateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CandidateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CandidateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CandidateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Candidate mutation op: %q", m.Op())
	}
}

// CandidateSignalClient is a client for the CandidateSignal schema.
type CandidateSignalClient struct {
	config
}

// NewCandidateSignalClient returns a client for the CandidateSignal from the given config.
func NewCandidateSignalClient(c config) *CandidateSignalClient {
	return &CandidateSignalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `candidatesignal.Hooks(f(g(h())))`.
func (c *CandidateSignalClient) Use(hooks ...Hook) {
	c.hooks.CandidateSignal = append(c.hooks.CandidateSignal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `candidatesignal.Intercept(f(g(h())))`.
func (c *CandidateSignalClient) Intercept(interceptors ...Interceptor) {
	c.inters.CandidateSignal = append(c.inters.CandidateSignal, interceptors...)
}

// Create returns a builder for creating a CandidateSignal entity.
func (c *CandidateSignalClient) Create() *CandidateSignalCreate {
	mutation := newCandidateSignalMutation(c.config, OpCreate)
	return &CandidateSignalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CandidateSignal entities.
func (c *CandidateSignalClient) CreateBulk(builders ...*CandidateSignalCreate) *CandidateSignalCreateBulk {
	return &CandidateSignalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CandidateSignalClient) MapCreateBulk(slice any, setFunc func(*CandidateSignalCreate, int)) *CandidateSignalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CandidateSignalCreateBulk{err: fmt.Errorf("calling to CandidateSignalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CandidateSignalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CandidateSignalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CandidateSignal.
func (c *CandidateSignalClient) Update() *CandidateSignalUpdate {
	mutation := newCandidateSignalMutation(c.config, OpUpdate)
	return &CandidateSignalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CandidateSignalClient) UpdateOne(_m *CandidateSignal) *CandidateSignalUpdateOne {
	mutation := newCandidateSignalMutation(c.config, OpUpdateOne, withCandidateSignal(_m))
	return &CandidateSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CandidateSignalClient) UpdateOneID(id int) *CandidateSignalUpdateOne {
	mutation := newCandidateSignalMutation(c.config, OpUpdateOne, withCandidateSignalID(id))
	return &CandidateSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CandidateSignal.
func (c *CandidateSignalClient) Delete() *CandidateSignalDelete {
	mutation := newCandidateSignalMutation(c.config, OpDelete)
	return &CandidateSignalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CandidateSignalClient) DeleteOne(_m *CandidateSignal) *CandidateSignalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CandidateSignalClient) DeleteOneID(id int) *CandidateSignalDeleteOne {
	builder := c.Delete().Where(candidatesignal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CandidateSignalDeleteOne{builder}
}

// Query returns a query builder for CandidateSignal.
func (c *CandidateSignalClient) Query() *CandidateSignalQuery {
	return &CandidateSignalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCandidateSignal},
		inters: c.Interceptors(),
	}
}

// Get returns a CandidateSignal entity by its id.
func (c *CandidateSignalClient) Get(ctx context.Context, id int) (*CandidateSignal, error) {
	return c.Query().Where(candidatesignal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CandidateSignalClient) GetX(ctx context.Context, id int) *CandidateSignal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a CandidateSignal.
func (c *CandidateSignalClient) QueryJob(_m *CandidateSignal) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(candidatesignal.Table, candidatesignal.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, candidatesignal.JobTable, candidatesignal.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CandidateSignalClient) Hooks() []Hook {
	return c.hooks.CandidateSignal
}

// Interceptors returns the client interceptors.
func (c *CandidateSignalClient) Interceptors() []Interceptor {
	return c.inters.CandidateSignal
}

func (c *CandidateSignalClient) mutate(ctx context.Context, m *CandidateSignalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CandidateSignalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CandidateSignalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CandidateSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CandidateSignalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CandidateSignal mutation op: %q", m.Op())
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id string) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id string) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id string) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id string) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a Conversation.
func (c *ConversationClient) QueryJob(_m *Conversation) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversation.JobTable, conversation.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCandidate queries the candidate edge of a Conversation.
func (c *ConversationClient) QueryCandidate(_m *Conversation) *CandidateQuery {
	query := (&CandidateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(candidate.Table, candidate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversation.CandidateTable, conversation.CandidateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Conversation.
func (c *ConversationClient) QueryMessages(_m *Conversation) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.MessagesTable, conversation.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPreResumeSession queries the pre_resume_session edge of a Conversation.
func (c *ConversationClient) QueryPreResumeSession(_m *Conversation) *PreResumeSessionQuery {
	query := (&PreResumeSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(preresumesession.Table, preresumesession.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, conversation.PreResumeSessionTable, conversation.PreResumeSessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conversation mutation op: %q", m.Op())
	}
}

// IdempotencyRecordClient is a client for the IdempotencyRecord schema.
type IdempotencyRecordClient struct {
	config
}

// NewIdempotencyRecordClient returns a client for the IdempotencyRecord from the given config.
func NewIdempotencyRecordClient(c config) *IdempotencyRecordClient {
	return &IdempotencyRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `idempotencyrecord.Hooks(f(g(h())))`.
func (c *IdempotencyRecordClient) Use(hooks ...Hook) {
	c.hooks.IdempotencyRecord = append(c.hooks.IdempotencyRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `idempotencyrecord.Intercept(f(g(h())))`.
func (c *IdempotencyRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.IdempotencyRecord = append(c.inters.IdempotencyRecord, interceptors...)
}

// Create returns a builder for creating a IdempotencyRecord entity.
func (c *IdempotencyRecordClient) Create() *IdempotencyRecordCreate {
	mutation := newIdempotencyRecordMutation(c.config, OpCreate)
	return &IdempotencyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IdempotencyRecord entities.
func (c *IdempotencyRecordClient) CreateBulk(builders ...*IdempotencyRecordCreate) *IdempotencyRecordCreateBulk {
	return &IdempotencyRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IdempotencyRecordClient) MapCreateBulk(slice any, setFunc func(*IdempotencyRecordCreate, int)) *IdempotencyRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IdempotencyRecordCreateBulk{err: fmt.Errorf("calling to IdempotencyRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IdempotencyRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IdempotencyRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IdempotencyRecord.
func (c *IdempotencyRecordClient) Update() *IdempotencyRecordUpdate {
	mutation := newIdempotencyRecordMutation(c.config, OpUpdate)
	return &IdempotencyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IdempotencyRecordClient) UpdateOne(_m *IdempotencyRecord) *IdempotencyRecordUpdateOne {
	mutation := newIdempotencyRecordMutation(c.config, OpUpdateOne, withIdempotencyRecord(_m))
	return &IdempotencyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IdempotencyRecordClient) UpdateOneID(id int) *IdempotencyRecordUpdateOne {
	mutation := newIdempotencyRecordMutation(c.config, OpUpdateOne, withIdempotencyRecordID(id))
	return &IdempotencyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IdempotencyRecord.
func (c *IdempotencyRecordClient) Delete() *IdempotencyRecordDelete {
	mutation := newIdempotencyRecordMutation(c.config, OpDelete)
	return &IdempotencyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IdempotencyRecordClient) DeleteOne(_m *IdempotencyRecord) *IdempotencyRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IdempotencyRecordClient) DeleteOneID(id int) *IdempotencyRecordDeleteOne {
	builder := c.Delete().Where(idempotencyrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IdempotencyRecordDeleteOne{builder}
}

// Query returns a query builder for IdempotencyRecord.
func (c *IdempotencyRecordClient) Query() *IdempotencyRecordQuery {
	return &IdempotencyRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIdempotencyRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a IdempotencyRecord entity by its id.
func (c *IdempotencyRecordClient) Get(ctx context.Context, id int) (*IdempotencyRecord, error) {
	return c.Query().Where(idempotencyrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IdempotencyRecordClient) GetX(ctx context.Context, id int) *IdempotencyRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IdempotencyRecordClient) Hooks() []Hook {
	return c.hooks.IdempotencyRecord
}

// Interceptors returns the client interceptors.
func (c *IdempotencyRecordClient) Interceptors() []Interceptor {
	return c.inters.IdempotencyRecord
}

func (c *IdempotencyRecordClient) mutate(ctx context.Context, m *IdempotencyRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IdempotencyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IdempotencyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IdempotencyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IdempotencyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IdempotencyRecord mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMatches queries the matches edge of a Job.
func (c *JobClient) QueryMatches(_m *Job) *MatchQuery {
	query := (&MatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(match.Table, match.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.MatchesTable, job.MatchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConversations queries the conversations edge of a Job.
func (c *JobClient) QueryConversations(_m *Job) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.ConversationsTable, job.ConversationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutboundActions queries the outbound_actions edge of a Job.
func (c *JobClient) QueryOutboundActions(_m *Job) *OutboundActionQuery {
	query := (&OutboundActionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(outboundaction.Table, outboundaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.OutboundActionsTable, job.OutboundActionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStepProgress queries the step_progress edge of a Job.
func (c *JobClient) QueryStepProgress(_m *Job) *JobStepProgressQuery {
	query := (&JobStepProgressClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(jobstepprogress.Table, jobstepprogress.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.StepProgressTable, job.StepProgressColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAccountAssignments queries the account_assignments edge of a Job.
func (c *JobClient) QueryAccountAssignments(_m *Job) *JobAccountAssignmentQuery {
	query := (&JobAccountAssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(jobaccountassignment.Table, jobaccountassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.AccountAssignmentsTable, job.AccountAssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySignals queries the signals edge of a Job.
func (c *JobClient) QuerySignals(_m *Job) *CandidateSignalQuery {
	query := (&CandidateSignalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(candidatesignal.Table, candidatesignal.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.SignalsTable, job.SignalsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// JobAccountAssignmentClient is a client for the JobAccountAssignment schema.
type JobAccountAssignmentClient struct {
	config
}

// NewJobAccountAssignmentClient returns a client for the JobAccountAssignment from the given config.
func NewJobAccountAssignmentClient(c config) *JobAccountAssignmentClient {
	return &JobAccountAssignmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobaccountassignment.Hooks(f(g(h())))`.
func (c *JobAccountAssignmentClient) Use(hooks ...Hook) {
	c.hooks.JobAccountAssignment = append(c.hooks.JobAccountAssignment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobaccountassignment.Intercept(f(g(h())))`.
func (c *JobAccountAssignmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobAccountAssignment = append(c.inters.JobAccountAssignment, interceptors...)
}

// Create returns a builder for creating a JobAccountAssignment entity.
func (c *JobAccountAssignmentClient) Create() *JobAccountAssignmentCreate {
	mutation := newJobAccountAssignmentMutation(c.config, OpCreate)
	return &JobAccountAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobAccountAssignment entities.
func (c *JobAccountAssignmentClient) CreateBulk(builders ...*JobAccountAssignmentCreate) *JobAccountAssignmentCreateBulk {
	return &JobAccountAssignmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobAccountAssignmentClient) MapCreateBulk(slice any, setFunc func(*JobAccountAssignmentCreate, int)) *JobAccountAssignmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobAccountAssignmentCreateBulk{err: fmt.Errorf("calling to JobAccountAssignmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobAccountAssignmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobAccountAssignmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobAccountAssignment.
func (c *JobAccountAssignmentClient) Update() *JobAccountAssignmentUpdate {
	mutation := newJobAccountAssignmentMutation(c.config, OpUpdate)
	return &JobAccountAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobAccountAssignmentClient) UpdateOne(_m *JobAccountAssignment) *JobAccountAssignmentUpdateOne {
	mutation := newJobAccountAssignmentMutation(c.config, OpUpdateOne, withJobAccountAssignment(_m))
	return &JobAccountAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobAccountAssignmentClient) UpdateOneID(id int) *JobAccountAssignmentUpdateOne {
	mutation := newJobAccountAssignmentMutation(c.config, OpUpdateOne, withJobAccountAssignmentID(id))
	return &JobAccountAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobAccountAssignment.
func (c *JobAccountAssignmentClient) Delete() *JobAccountAssignmentDelete {
	mutation := newJobAccountAssignmentMutation(c.config, OpDelete)
	return &JobAccountAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobAccountAssignmentClient) DeleteOne(_m *JobAccountAssignment) *JobAccountAssignmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobAccountAssignmentClient) DeleteOneID(id int) *JobAccountAssignmentDeleteOne {
	builder := c.Delete().Where(jobaccountassignment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobAccountAssignmentDeleteOne{builder}
}

// Query returns a query builder for JobAccountAssignment.
func (c *JobAccountAssignmentClient) Query() *JobAccountAssignmentQuery {
	return &JobAccountAssignmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobAccountAssignment},
		inters: c.Interceptors(),
	}
}

// Get returns a JobAccountAssignment entity by its id.
func (c *JobAccountAssignmentClient) Get(ctx context.Context, id int) (*JobAccountAssignment, error) {
	return c.Query().Where(jobaccountassignment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobAccountAssignmentClient) GetX(ctx context.Context, id int) *JobAccountAssignment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobAccountAssignment.
func (c *JobAccountAssignmentClient) QueryJob(_m *JobAccountAssignment) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobaccountassignment.Table, jobaccountassignment.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobaccountassignment.JobTable, jobaccountassignment.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobAccountAssignmentClient) Hooks() []Hook {
	return c.hooks.JobAccountAssignment
}

// Interceptors returns the client interceptors.
func (c *JobAccountAssignmentClient) Interceptors() []Interceptor {
	return c.inters.JobAccountAssignment
}

func (c *JobAccountAssignmentClient) mutate(ctx context.Context, m *JobAccountAssignmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobAccountAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobAccountAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobAccountAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobAccountAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobAccountAssignment mutation op: %q", m.Op())
	}
}

// JobStepProgressClient is a client for the JobStepProgress schema.
type JobStepProgressClient struct {
	config
}

// NewJobStepProgressClient returns a client for the JobStepProgress from the given config.
func NewJobStepProgressClient(c config) *JobStepProgressClient {
	return &JobStepProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobstepprogress.Hooks(f(g(h())))`.
func (c *JobStepProgressClient) Use(hooks ...Hook) {
	c.hooks.JobStepProgress = append(c.hooks.JobStepProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobstepprogress.Intercept(f(g(h())))`.
func (c *JobStepProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobStepProgress = append(c.inters.JobStepProgress, interceptors...)
}

// Create returns a builder for creating a JobStepProgress entity.
func (c *JobStepProgressClient) Create() *JobStepProgressCreate {
	mutation := newJobStepProgressMutation(c.config, OpCreate)
	return &JobStepProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobStepProgress entities.
func (c *JobStepProgressClient) CreateBulk(builders ...*JobStepProgressCreate) *JobStepProgressCreateBulk {
	return &JobStepProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobStepProgressClient) MapCreateBulk(slice any, setFunc func(*JobStepProgressCreate, int)) *JobStepProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobStepProgressCreateBulk{err: fmt.Errorf("calling to JobStepProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobStepProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobStepProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobStepProgress.
func (c *JobStepProgressClient) Update() *JobStepProgressUpdate {
	mutation := newJobStepProgressMutation(c.config, OpUpdate)
	return &JobStepProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobStepProgressClient) UpdateOne(_m *JobStepProgress) *JobStepProgressUpdateOne {
	mutation := newJobStepProgressMutation(c.config, OpUpdateOne, withJobStepProgress(_m))
	return &JobStepProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobStepProgressClient) UpdateOneID(id int) *JobStepProgressUpdateOne {
	mutation := newJobStepProgressMutation(c.config, OpUpdateOne, withJobStepProgressID(id))
	return &JobStepProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobStepProgress.
func (c *JobStepProgressClient) Delete() *JobStepProgressDelete {
	mutation := newJobStepProgressMutation(c.config, OpDelete)
	return &JobStepProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobStepProgressClient) DeleteOne(_m *JobStepProgress) *JobStepProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobStepProgressClient) DeleteOneID(id int) *JobStepProgressDeleteOne {
	builder := c.Delete().Where(jobstepprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobStepProgressDeleteOne{builder}
}

// Query returns a query builder for JobStepProgress.
func (c *JobStepProgressClient) Query() *JobStepProgressQuery {
	return &JobStepProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobStepProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a JobStepProgress entity by its id.
func (c *JobStepProgressClient) Get(ctx context.Context, id int) (*JobStepProgress, error) {
	return c.Query().Where(jobstepprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobStepProgressClient) GetX(ctx context.Context, id int) *JobStepProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobStepProgress.
func (c *JobStepProgressClient) QueryJob(_m *JobStepProgress) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobstepprogress.Table, jobstepprogress.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobstepprogress.JobTable, jobstepprogress.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobStepProgressClient) Hooks() []Hook {
	return c.hooks.JobStepProgress
}

// Interceptors returns the client interceptors.
func (c *JobStepProgressClient) Interceptors() []Interceptor {
	return c.inters.JobStepProgress
}

func (c *JobStepProgressClient) mutate(ctx context.Context, m *JobStepProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobStepProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobStepProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobStepProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobStepProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobStepProgress mutation op: %q", m.Op())
	}
}

// MatchClient is a client for the Match schema.
type MatchClient struct {
	config
}

// NewMatchClient returns a client for the Match from the given config.
func NewMatchClient(c config) *MatchClient {
	return &MatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `match.Hooks(f(g(h())))`.
func (c *MatchClient) Use(hooks ...Hook) {
	c.hooks.Match = append(c.hooks.Match, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `match.Intercept(f(g(h())))`.
func (c *MatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.Match = append(c.inters.Match, interceptors...)
}

// Create returns a builder for creating a Match entity.
func (c *MatchClient) Create() *MatchCreate {
	mutation := newMatchMutation(c.config, OpCreate)
	return &MatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Match entities.
func (c *MatchClient) CreateBulk(builders ...*MatchCreate) *MatchCreateBulk {
	return &MatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatchClient) MapCreateBulk(slice any, setFunc func(*MatchCreate, int)) *MatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatchCreateBulk{err: fmt.Errorf("calling to MatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Match.
func (c *MatchClient) Update() *MatchUpdate {
	mutation := newMatchMutation(c.config, OpUpdate)
	return &MatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatchClient) UpdateOne(_m *Match) *MatchUpdateOne {
	mutation := newMatchMutation(c.config, OpUpdateOne, withMatch(_m))
	return &MatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatchClient) UpdateOneID(id string) *MatchUpdateOne {
	mutation := newMatchMutation(c.config, OpUpdateOne, withMatchID(id))
	return &MatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Match.
func (c *MatchClient) Delete() *MatchDelete {
	mutation := newMatchMutation(c.config, OpDelete)
	return &MatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatchClient) DeleteOne(_m *Match) *MatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatchClient) DeleteOneID(id string) *MatchDeleteOne {
	builder := c.Delete().Where(match.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatchDeleteOne{builder}
}

// Query returns a query builder for Match.
func (c *MatchClient) Query() *MatchQuery {
	return &MatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatch},
		inters: c.Interceptors(),
	}
}

// Get returns a Match entity by its id.
func (c *MatchClient) Get(ctx context.Context, id string) (*Match, error) {
	return c.Query().Where(match.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatchClient) GetX(ctx context.Context, id string) *Match {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a Match.
func (c *MatchClient) QueryJob(_m *Match) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(match.Table, match.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, match.JobTable, match.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCandidate queries the candidate edge of a Match.
func (c *MatchClient) QueryCandidate(_m *Match) *CandidateQuery {
	query := (&CandidateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(match.Table, match.FieldID, id),
			sqlgraph.To(candidate.Table, candidate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, match.CandidateTable, match.CandidateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MatchClient) Hooks() []Hook {
	return c.hooks.Match
}

// Interceptors returns the client interceptors.
func (c *MatchClient) Interceptors() []Interceptor {
	return c.inters.Match
}

func (c *MatchClient) mutate(ctx context.Context, m *MatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Match mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id int) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id int) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id int) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id int) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a Message.
func (c *MessageClient) QueryConversation(_m *Message) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.ConversationTable, message.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// OperationLogClient is a client for the OperationLog schema.
type OperationLogClient struct {
	config
}

// NewOperationLogClient returns a client for the OperationLog from the given config.
func NewOperationLogClient(c config) *OperationLogClient {
	return &OperationLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `operationlog.Hooks(f(g(h())))`.
func (c *OperationLogClient) Use(hooks ...Hook) {
	c.hooks.OperationLog = append(c.hooks.OperationLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `operationlog.Intercept(f(g(h())))`.
func (c *OperationLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.OperationLog = append(c.inters.OperationLog, interceptors...)
}

// Create returns a builder for creating a OperationLog entity.
func (c *OperationLogClient) Create() *OperationLogCreate {
	mutation := newOperationLogMutation(c.config, OpCreate)
	return &OperationLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OperationLog entities.
func (c *OperationLogClient) CreateBulk(builders ...*OperationLogCreate) *OperationLogCreateBulk {
	return &OperationLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OperationLogClient) MapCreateBulk(slice any, setFunc func(*OperationLogCreate, int)) *OperationLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OperationLogCreateBulk{err: fmt.Errorf("calling to OperationLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OperationLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OperationLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OperationLog.
func (c *OperationLogClient) Update() *OperationLogUpdate {
	mutation := newOperationLogMutation(c.config, OpUpdate)
	return &OperationLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OperationLogClient) UpdateOne(_m *OperationLog) *OperationLogUpdateOne {
	mutation := newOperationLogMutation(c.config, OpUpdateOne, withOperationLog(_m))
	return &OperationLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OperationLogClient) UpdateOneID(id int) *OperationLogUpdateOne {
	mutation := newOperationLogMutation(c.config, OpUpdateOne, withOperationLogID(id))
	return &OperationLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OperationLog.
func (c *OperationLogClient) Delete() *OperationLogDelete {
	mutation := newOperationLogMutation(c.config, OpDelete)
	return &OperationLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OperationLogClient) DeleteOne(_m *OperationLog) *OperationLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OperationLogClient) DeleteOneID(id int) *OperationLogDeleteOne {
	builder := c.Delete().Where(operationlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OperationLogDeleteOne{builder}
}

// Query returns a query builder for OperationLog.
func (c *OperationLogClient) Query() *OperationLogQuery {
	return &OperationLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOperationLog},
		inters: c.Interceptors(),
	}
}

// Get returns a OperationLog entity by its id.
func (c *OperationLogClient) Get(ctx context.Context, id int) (*OperationLog, error) {
	return c.Query().Where(operationlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OperationLogClient) GetX(ctx context.Context, id int) *OperationLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OperationLogClient) Hooks() []Hook {
	return c.hooks.OperationLog
}

// Interceptors returns the client interceptors.
func (c *OperationLogClient) Interceptors() []Interceptor {
	return c.inters.OperationLog
}

func (c *OperationLogClient) mutate(ctx context.Context, m *OperationLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OperationLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OperationLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OperationLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OperationLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OperationLog mutation op: %q", m.Op())
	}
}

// OutboundActionClient is a client for the OutboundAction schema.
type OutboundActionClient struct {
	config
}

// NewOutboundActionClient returns a client for the OutboundAction from the given config.
func NewOutboundActionClient(c config) *OutboundActionClient {
	return &OutboundActionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outboundaction.Hooks(f(g(h())))`.
func (c *OutboundActionClient) Use(hooks ...Hook) {
	c.hooks.OutboundAction = append(c.hooks.OutboundAction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outboundaction.Intercept(f(g(h())))`.
func (c *OutboundActionClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutboundAction = append(c.inters.OutboundAction, interceptors...)
}

// Create returns a builder for creating a OutboundAction entity.
func (c *OutboundActionClient) Create() *OutboundActionCreate {
	mutation := newOutboundActionMutation(c.config, OpCreate)
	return &OutboundActionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutboundAction entities.
func (c *OutboundActionClient) CreateBulk(builders ...*OutboundActionCreate) *OutboundActionCreateBulk {
	return &OutboundActionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutboundActionClient) MapCreateBulk(slice any, setFunc func(*OutboundActionCreate, int)) *OutboundActionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutboundActionCreateBulk{err: fmt.Errorf("calling to OutboundActionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutboundActionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutboundActionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutboundAction.
func (c *OutboundActionClient) Update() *OutboundActionUpdate {
	mutation := newOutboundActionMutation(c.config, OpUpdate)
	return &OutboundActionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutboundActionClient) UpdateOne(_m *OutboundAction) *OutboundActionUpdateOne {
	mutation := newOutboundActionMutation(c.config, OpUpdateOne, withOutboundAction(_m))
	return &OutboundActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutboundActionClient) UpdateOneID(id string) *OutboundActionUpdateOne {
	mutation := newOutboundActionMutation(c.config, OpUpdateOne, withOutboundActionID(id))
	return &OutboundActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutboundAction.
func (c *OutboundActionClient) Delete() *OutboundActionDelete {
	mutation := newOutboundActionMutation(c.config, OpDelete)
	return &OutboundActionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutboundActionClient) DeleteOne(_m *OutboundAction) *OutboundActionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutboundActionClient) DeleteOneID(id string) *OutboundActionDeleteOne {
	builder := c.Delete().Where(outboundaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutboundActionDeleteOne{builder}
}

// Query returns a query builder for OutboundAction.
func (c *OutboundActionClient) Query() *OutboundActionQuery {
	return &OutboundActionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutboundAction},
		inters: c.Interceptors(),
	}
}

// Get returns a OutboundAction entity by its id.
func (c *OutboundActionClient) Get(ctx context.Context, id string) (*OutboundAction, error) {
	return c.Query().Where(outboundaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutboundActionClient) GetX(ctx context.Context, id string) *OutboundAction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a OutboundAction.
func (c *OutboundActionClient) QueryJob(_m *OutboundAction) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(outboundaction.Table, outboundaction.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, outboundaction.JobTable, outboundaction.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OutboundActionClient) Hooks() []Hook {
	return c.hooks.OutboundAction
}

// Interceptors returns the client interceptors.
func (c *OutboundActionClient) Interceptors() []Interceptor {
	return c.inters.OutboundAction
}

func (c *OutboundActionClient) mutate(ctx context.Context, m *OutboundActionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutboundActionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutboundActionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutboundActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutboundActionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutboundAction mutation op: %q", m.Op())
	}
}

// PreResumeEventClient is a client for the PreResumeEvent schema.
type PreResumeEventClient struct {
	config
}

// NewPreResumeEventClient returns a client for the PreResumeEvent from the given config.
func NewPreResumeEventClient(c config) *PreResumeEventClient {
	return &PreResumeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `preresumeevent.Hooks(f(g(h())))`.
func (c *PreResumeEventClient) Use(hooks ...Hook) {
	c.hooks.PreResumeEvent = append(c.hooks.PreResumeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `preresumeevent.Intercept(f(g(h())))`.
func (c *PreResumeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PreResumeEvent = append(c.inters.PreResumeEvent, interceptors...)
}

// Create returns a builder for creating a PreResumeEvent entity.
func (c *PreResumeEventClient) Create() *PreResumeEventCreate {
	mutation := newPreResumeEventMutation(c.config, OpCreate)
	return &PreResumeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PreResumeEvent entities.
func (c *PreResumeEventClient) CreateBulk(builders ...*PreResumeEventCreate) *PreResumeEventCreateBulk {
	return &PreResumeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PreResumeEventClient) MapCreateBulk(slice any, setFunc func(*PreResumeEventCreate, int)) *PreResumeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PreResumeEventCreateBulk{err: fmt.Errorf("calling to PreResumeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PreResumeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PreResumeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PreResumeEvent.
func (c *PreResumeEventClient) Update() *PreResumeEventUpdate {
	mutation := newPreResumeEventMutation(c.config, OpUpdate)
	return &PreResumeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PreResumeEventClient) UpdateOne(_m *PreResumeEvent) *PreResumeEventUpdateOne {
	mutation := newPreResumeEventMutation(c.config, OpUpdateOne, withPreResumeEvent(_m))
	return &PreResumeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PreResumeEventClient) UpdateOneID(id int) *PreResumeEventUpdateOne {
	mutation := newPreResumeEventMutation(c.config, OpUpdateOne, withPreResumeEventID(id))
	return &PreResumeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PreResumeEvent.
func (c *PreResumeEventClient) Delete() *PreResumeEventDelete {
	mutation := newPreResumeEventMutation(c.config, OpDelete)
	return &PreResumeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PreResumeEventClient) DeleteOne(_m *PreResumeEvent) *PreResumeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PreResumeEventClient) DeleteOneID(id int) *PreResumeEventDeleteOne {
	builder := c.Delete().Where(preresumeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PreResumeEventDeleteOne{builder}
}

// Query returns a query builder for PreResumeEvent.
func (c *PreResumeEventClient) Query() *PreResumeEventQuery {
	return &PreResumeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePreResumeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PreResumeEvent entity by its id.
func (c *PreResumeEventClient) Get(ctx context.Context, id int) (*PreResumeEvent, error) {
	return c.Query().Where(preresumeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PreResumeEventClient) GetX(ctx context.Context, id int) *PreResumeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a PreResumeEvent.
func (c *PreResumeEventClient) QuerySession(_m *PreResumeEvent) *PreResumeSessionQuery {
	query := (&PreResumeSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(preresumeevent.Table, preresumeevent.FieldID, id),
			sqlgraph.To(preresumesession.Table, preresumesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, preresumeevent.SessionTable, preresumeevent.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PreResumeEventClient) Hooks() []Hook {
	return c.hooks.PreResumeEvent
}

// Interceptors returns the client interceptors.
func (c *PreResumeEventClient) Interceptors() []Interceptor {
	return c.inters.PreResumeEvent
}

func (c *PreResumeEventClient) mutate(ctx context.Context, m *PreResumeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PreResumeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PreResumeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PreResumeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PreResumeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PreResumeEvent mutation op: %q", m.Op())
	}
}

// PreResumeSessionClient is a client for the PreResumeSession schema.
type PreResumeSessionClient struct {
	config
}

// NewPreResumeSessionClient returns a client for the PreResumeSession from the given config.
func NewPreResumeSessionClient(c config) *PreResumeSessionClient {
	return &PreResumeSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `preresumesession.Hooks(f(g(h())))`.
func (c *PreResumeSessionClient) Use(hooks ...Hook) {
	c.hooks.PreResumeSession = append(c.hooks.PreResumeSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `preresumesession.Intercept(f(g(h())))`.
func (c *PreResumeSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PreResumeSession = append(c.inters.PreResumeSession, interceptors...)
}

// Create returns a builder for creating a PreResumeSession entity.
func (c *PreResumeSessionClient) Create() *PreResumeSessionCreate {
	mutation := newPreResumeSessionMutation(c.config, OpCreate)
	return &PreResumeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PreResumeSession entities.
func (c *PreResumeSessionClient) CreateBulk(builders ...*PreResumeSessionCreate) *PreResumeSessionCreateBulk {
	return &PreResumeSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PreResumeSessionClient) MapCreateBulk(slice any, setFunc func(*PreResumeSessionCreate, int)) *PreResumeSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PreResumeSessionCreateBulk{err: fmt.Errorf("calling to PreResumeSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PreResumeSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PreResumeSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PreResumeSession.
func (c *PreResumeSessionClient) Update() *PreResumeSessionUpdate {
	mutation := newPreResumeSessionMutation(c.config, OpUpdate)
	return &PreResumeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PreResumeSessionClient) UpdateOne(_m *PreResumeSession) *PreResumeSessionUpdateOne {
	mutation := newPreResumeSessionMutation(c.config, OpUpdateOne, withPreResumeSession(_m))
	return &PreResumeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PreResumeSessionClient) UpdateOneID(id string) *PreResumeSessionUpdateOne {
	mutation := newPreResumeSessionMutation(c.config, OpUpdateOne, withPreResumeSessionID(id))
	return &PreResumeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PreResumeSession.
func (c *PreResumeSessionClient) Delete() *PreResumeSessionDelete {
	mutation := newPreResumeSessionMutation(c.config, OpDelete)
	return &PreResumeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PreResumeSessionClient) DeleteOne(_m *PreResumeSession) *PreResumeSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PreResumeSessionClient) DeleteOneID(id string) *PreResumeSessionDeleteOne {
	builder := c.Delete().Where(preresumesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PreResumeSessionDeleteOne{builder}
}

// Query returns a query builder for PreResumeSession.
func (c *PreResumeSessionClient) Query() *PreResumeSessionQuery {
	return &PreResumeSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePreResumeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a PreResumeSession entity by its id.
func (c *PreResumeSessionClient) Get(ctx context.Context, id string) (*PreResumeSession, error) {
	return c.Query().Where(preresumesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PreResumeSessionClient) GetX(ctx context.Context, id string) *PreResumeSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a PreResumeSession.
func (c *PreResumeSessionClient) QueryConversation(_m *PreResumeSession) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(preresumesession.Table, preresumesession.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, preresumesession.ConversationTable, preresumesession.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a PreResumeSession.
func (c *PreResumeSessionClient) QueryEvents(_m *PreResumeSession) *PreResumeEventQuery {
	query := (&PreResumeEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(preresumesession.Table, preresumesession.FieldID, id),
			sqlgraph.To(preresumeevent.Table, preresumeevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, preresumesession.EventsTable, preresumesession.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PreResumeSessionClient) Hooks() []Hook {
	return c.hooks.PreResumeSession
}

// Interceptors returns the client interceptors.
func (c *PreResumeSessionClient) Interceptors() []Interceptor {
	return c.inters.PreResumeSession
}

func (c *PreResumeSessionClient) mutate(ctx context.Context, m *PreResumeSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PreResumeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PreResumeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PreResumeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PreResumeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PreResumeSession mutation op: %q", m.Op())
	}
}

// SenderAccountClient is a client for the SenderAccount schema.
type SenderAccountClient struct {
	config
}

// NewSenderAccountClient returns a client for the SenderAccount from the given config.
func NewSenderAccountClient(c config) *SenderAccountClient {
	return &SenderAccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `senderaccount.Hooks(f(g(h())))`.
func (c *SenderAccountClient) Use(hooks ...Hook) {
	c.hooks.SenderAccount = append(c.hooks.SenderAccount, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `senderaccount.Intercept(f(g(h())))`.
func (c *SenderAccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.SenderAccount = append(c.inters.SenderAccount, interceptors...)
}

// Create returns a builder for creating a SenderAccount entity.
func (c *SenderAccountClient) Create() *SenderAccountCreate {
	mutation := newSenderAccountMutation(c.config, OpCreate)
	return &SenderAccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SenderAccount entities.
func (c *SenderAccountClient) CreateBulk(builders ...*SenderAccountCreate) *SenderAccountCreateBulk {
	return &SenderAccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SenderAccountClient) MapCreateBulk(slice any, setFunc func(*SenderAccountCreate, int)) *SenderAccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SenderAccountCreateBulk{err: fmt.Errorf("calling to SenderAccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SenderAccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SenderAccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SenderAccount.
func (c *SenderAccountClient) Update() *SenderAccountUpdate {
	mutation := newSenderAccountMutation(c.config, OpUpdate)
	return &SenderAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SenderAccountClient) UpdateOne(_m *SenderAccount) *SenderAccountUpdateOne {
	mutation := newSenderAccountMutation(c.config, OpUpdateOne, withSenderAccount(_m))
	return &SenderAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SenderAccountClient) UpdateOneID(id string) *SenderAccountUpdateOne {
	mutation := newSenderAccountMutation(c.config, OpUpdateOne, withSenderAccountID(id))
	return &SenderAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SenderAccount.
func (c *SenderAccountClient) Delete() *SenderAccountDelete {
	mutation := newSenderAccountMutation(c.config, OpDelete)
	return &SenderAccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SenderAccountClient) DeleteOne(_m *SenderAccount) *SenderAccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SenderAccountClient) DeleteOneID(id string) *SenderAccountDeleteOne {
	builder := c.Delete().Where(senderaccount.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SenderAccountDeleteOne{builder}
}

// Query returns a query builder for SenderAccount.
func (c *SenderAccountClient) Query() *SenderAccountQuery {
	return &SenderAccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSenderAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a SenderAccount entity by its id.
func (c *SenderAccountClient) Get(ctx context.Context, id string) (*SenderAccount, error) {
	return c.Query().Where(senderaccount.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SenderAccountClient) GetX(ctx context.Context, id string) *SenderAccount {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SenderAccountClient) Hooks() []Hook {
	return c.hooks.SenderAccount
}

// Interceptors returns the client interceptors.
func (c *SenderAccountClient) Interceptors() []Interceptor {
	return c.inters.SenderAccount
}

func (c *SenderAccountClient) mutate(ctx context.Context, m *SenderAccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SenderAccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SenderAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SenderAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SenderAccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SenderAccount mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AccountCounter, AgentAssessment, Candidate, CandidateSignal, Conversation,
		IdempotencyRecord, Job, JobAccountAssignment, JobStepProgress, Match, Message,
		OperationLog, OutboundAction, PreResumeEvent, PreResumeSession,
		SenderAccount []ent.Hook
	}
	inters struct {
		AccountCounter, AgentAssessment, Candidate, CandidateSignal, Conversation,
		IdempotencyRecord, Job, JobAccountAssignment, JobStepProgress, Match, Message,
		OperationLog, OutboundAction, PreResumeEvent, PreResumeSession,
		SenderAccount []ent.Interceptor
	}
)
