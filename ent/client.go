// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/loom-agents/loom/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loom-agents/loom/ent/evidencerecord"
	"github.com/loom-agents/loom/ent/prprun"
	"github.com/loom-agents/loom/ent/sessionevent"
	"github.com/loom-agents/loom/ent/workflowsession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EvidenceRecord is the client for interacting with the EvidenceRecord builders.
	EvidenceRecord *EvidenceRecordClient
	// PRPRun is the client for interacting with the PRPRun builders.
	PRPRun *PRPRunClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
	// WorkflowSession is the client for interacting with the WorkflowSession builders.
	WorkflowSession *WorkflowSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EvidenceRecord = NewEvidenceRecordClient(c.config)
	c.PRPRun = NewPRPRunClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
	c.WorkflowSession = NewWorkflowSessionClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		EvidenceRecord:  NewEvidenceRecordClient(cfg),
		PRPRun:          NewPRPRunClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
		WorkflowSession: NewWorkflowSessionClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		EvidenceRecord:  NewEvidenceRecordClient(cfg),
		PRPRun:          NewPRPRunClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
		WorkflowSession: NewWorkflowSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EvidenceRecord.
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
	c.EvidenceRecord.Use(hooks...)
	c.PRPRun.Use(hooks...)
	c.SessionEvent.Use(hooks...)
	c.WorkflowSession.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.EvidenceRecord.Intercept(interceptors...)
	c.PRPRun.Intercept(interceptors...)
	c.SessionEvent.Intercept(interceptors...)
	c.WorkflowSession.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EvidenceRecordMutation:
		return c.EvidenceRecord.mutate(ctx, m)
	case *PRPRunMutation:
		return c.PRPRun.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	case *WorkflowSessionMutation:
		return c.WorkflowSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EvidenceRecordClient is a client for the EvidenceRecord schema.
type EvidenceRecordClient struct {
	config
}

// NewEvidenceRecordClient returns a client for the EvidenceRecord from the given config.
func NewEvidenceRecordClient(c config) *EvidenceRecordClient {
	return &EvidenceRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evidencerecord.Hooks(f(g(h())))`.
func (c *EvidenceRecordClient) Use(hooks ...Hook) {
	c.hooks.EvidenceRecord = append(c.hooks.EvidenceRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evidencerecord.Intercept(f(g(h())))`.
func (c *EvidenceRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvidenceRecord = append(c.inters.EvidenceRecord, interceptors...)
}

// Create returns a builder for creating a EvidenceRecord entity.
func (c *EvidenceRecordClient) Create() *EvidenceRecordCreate {
	mutation := newEvidenceRecordMutation(c.config, OpCreate)
	return &EvidenceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvidenceRecord entities.
func (c *EvidenceRecordClient) CreateBulk(builders ...*EvidenceRecordCreate) *EvidenceRecordCreateBulk {
	return &EvidenceRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvidenceRecordClient) MapCreateBulk(slice any, setFunc func(*EvidenceRecordCreate, int)) *EvidenceRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvidenceRecordCreateBulk{err: fmt.Errorf("calling to EvidenceRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvidenceRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvidenceRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvidenceRecord.
func (c *EvidenceRecordClient) Update() *EvidenceRecordUpdate {
	mutation := newEvidenceRecordMutation(c.config, OpUpdate)
	return &EvidenceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvidenceRecordClient) UpdateOne(_m *EvidenceRecord) *EvidenceRecordUpdateOne {
	mutation := newEvidenceRecordMutation(c.config, OpUpdateOne, withEvidenceRecord(_m))
	return &EvidenceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvidenceRecordClient) UpdateOneID(id string) *EvidenceRecordUpdateOne {
	mutation := newEvidenceRecordMutation(c.config, OpUpdateOne, withEvidenceRecordID(id))
	return &EvidenceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvidenceRecord.
func (c *EvidenceRecordClient) Delete() *EvidenceRecordDelete {
	mutation := newEvidenceRecordMutation(c.config, OpDelete)
	return &EvidenceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvidenceRecordClient) DeleteOne(_m *EvidenceRecord) *EvidenceRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvidenceRecordClient) DeleteOneID(id string) *EvidenceRecordDeleteOne {
	builder := c.Delete().Where(evidencerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvidenceRecordDeleteOne{builder}
}

// Query returns a query builder for EvidenceRecord.
func (c *EvidenceRecordClient) Query() *EvidenceRecordQuery {
	return &EvidenceRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvidenceRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a EvidenceRecord entity by its id.
func (c *EvidenceRecordClient) Get(ctx context.Context, id string) (*EvidenceRecord, error) {
	return c.Query().Where(evidencerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvidenceRecordClient) GetX(ctx context.Context, id string) *EvidenceRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a EvidenceRecord.
func (c *EvidenceRecordClient) QueryRun(_m *EvidenceRecord) *PRPRunQuery {
	query := (&PRPRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evidencerecord.Table, evidencerecord.FieldID, id),
			sqlgraph.To(prprun.Table, prprun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evidencerecord.RunTable, evidencerecord.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvidenceRecordClient) Hooks() []Hook {
	return c.hooks.EvidenceRecord
}

// Interceptors returns the client interceptors.
func (c *EvidenceRecordClient) Interceptors() []Interceptor {
	return c.inters.EvidenceRecord
}

func (c *EvidenceRecordClient) mutate(ctx context.Context, m *EvidenceRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvidenceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvidenceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvidenceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvidenceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvidenceRecord mutation op: %q", m.Op())
	}
}

// PRPRunClient is a client for the PRPRun schema.
type PRPRunClient struct {
	config
}

// NewPRPRunClient returns a client for the PRPRun from the given config.
func NewPRPRunClient(c config) *PRPRunClient {
	return &PRPRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prprun.Hooks(f(g(h())))`.
func (c *PRPRunClient) Use(hooks ...Hook) {
	c.hooks.PRPRun = append(c.hooks.PRPRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prprun.Intercept(f(g(h())))`.
func (c *PRPRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.PRPRun = append(c.inters.PRPRun, interceptors...)
}

// Create returns a builder for creating a PRPRun entity.
func (c *PRPRunClient) Create() *PRPRunCreate {
	mutation := newPRPRunMutation(c.config, OpCreate)
	return &PRPRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PRPRun entities.
func (c *PRPRunClient) CreateBulk(builders ...*PRPRunCreate) *PRPRunCreateBulk {
	return &PRPRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PRPRunClient) MapCreateBulk(slice any, setFunc func(*PRPRunCreate, int)) *PRPRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PRPRunCreateBulk{err: fmt.Errorf("calling to PRPRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PRPRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PRPRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PRPRun.
func (c *PRPRunClient) Update() *PRPRunUpdate {
	mutation := newPRPRunMutation(c.config, OpUpdate)
	return &PRPRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PRPRunClient) UpdateOne(_m *PRPRun) *PRPRunUpdateOne {
	mutation := newPRPRunMutation(c.config, OpUpdateOne, withPRPRun(_m))
	return &PRPRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PRPRunClient) UpdateOneID(id string) *PRPRunUpdateOne {
	mutation := newPRPRunMutation(c.config, OpUpdateOne, withPRPRunID(id))
	return &PRPRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PRPRun.
func (c *PRPRunClient) Delete() *PRPRunDelete {
	mutation := newPRPRunMutation(c.config, OpDelete)
	return &PRPRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PRPRunClient) DeleteOne(_m *PRPRun) *PRPRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PRPRunClient) DeleteOneID(id string) *PRPRunDeleteOne {
	builder := c.Delete().Where(prprun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PRPRunDeleteOne{builder}
}

// Query returns a query builder for PRPRun.
func (c *PRPRunClient) Query() *PRPRunQuery {
	return &PRPRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePRPRun},
		inters: c.Interceptors(),
	}
}

// Get returns a PRPRun entity by its id.
func (c *PRPRunClient) Get(ctx context.Context, id string) (*PRPRun, error) {
	return c.Query().Where(prprun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PRPRunClient) GetX(ctx context.Context, id string) *PRPRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvidence queries the evidence edge of a PRPRun.
func (c *PRPRunClient) QueryEvidence(_m *PRPRun) *EvidenceRecordQuery {
	query := (&EvidenceRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(prprun.Table, prprun.FieldID, id),
			sqlgraph.To(evidencerecord.Table, evidencerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, prprun.EvidenceTable, prprun.EvidenceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PRPRunClient) Hooks() []Hook {
	return c.hooks.PRPRun
}

// Interceptors returns the client interceptors.
func (c *PRPRunClient) Interceptors() []Interceptor {
	return c.inters.PRPRun
}

func (c *PRPRunClient) mutate(ctx context.Context, m *PRPRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PRPRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PRPRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PRPRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PRPRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PRPRun mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SessionEvent.
func (c *SessionEventClient) QuerySession(_m *SessionEvent) *WorkflowSessionQuery {
	query := (&WorkflowSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionevent.Table, sessionevent.FieldID, id),
			sqlgraph.To(workflowsession.Table, workflowsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessionevent.SessionTable, sessionevent.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// WorkflowSessionClient is a client for the WorkflowSession schema.
type WorkflowSessionClient struct {
	config
}

// NewWorkflowSessionClient returns a client for the WorkflowSession from the given config.
func NewWorkflowSessionClient(c config) *WorkflowSessionClient {
	return &WorkflowSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowsession.Hooks(f(g(h())))`.
func (c *WorkflowSessionClient) Use(hooks ...Hook) {
	c.hooks.WorkflowSession = append(c.hooks.WorkflowSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowsession.Intercept(f(g(h())))`.
func (c *WorkflowSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowSession = append(c.inters.WorkflowSession, interceptors...)
}

// Create returns a builder for creating a WorkflowSession entity.
func (c *WorkflowSessionClient) Create() *WorkflowSessionCreate {
	mutation := newWorkflowSessionMutation(c.config, OpCreate)
	return &WorkflowSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowSession entities.
func (c *WorkflowSessionClient) CreateBulk(builders ...*WorkflowSessionCreate) *WorkflowSessionCreateBulk {
	return &WorkflowSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowSessionClient) MapCreateBulk(slice any, setFunc func(*WorkflowSessionCreate, int)) *WorkflowSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowSessionCreateBulk{err: fmt.Errorf("calling to WorkflowSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowSession.
func (c *WorkflowSessionClient) Update() *WorkflowSessionUpdate {
	mutation := newWorkflowSessionMutation(c.config, OpUpdate)
	return &WorkflowSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowSessionClient) UpdateOne(_m *WorkflowSession) *WorkflowSessionUpdateOne {
	mutation := newWorkflowSessionMutation(c.config, OpUpdateOne, withWorkflowSession(_m))
	return &WorkflowSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowSessionClient) UpdateOneID(id string) *WorkflowSessionUpdateOne {
	mutation := newWorkflowSessionMutation(c.config, OpUpdateOne, withWorkflowSessionID(id))
	return &WorkflowSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowSession.
func (c *WorkflowSessionClient) Delete() *WorkflowSessionDelete {
	mutation := newWorkflowSessionMutation(c.config, OpDelete)
	return &WorkflowSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowSessionClient) DeleteOne(_m *WorkflowSession) *WorkflowSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowSessionClient) DeleteOneID(id string) *WorkflowSessionDeleteOne {
	builder := c.Delete().Where(workflowsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowSessionDeleteOne{builder}
}

// Query returns a query builder for WorkflowSession.
func (c *WorkflowSessionClient) Query() *WorkflowSessionQuery {
	return &WorkflowSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowSession},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowSession entity by its id.
func (c *WorkflowSessionClient) Get(ctx context.Context, id string) (*WorkflowSession, error) {
	return c.Query().Where(workflowsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowSessionClient) GetX(ctx context.Context, id string) *WorkflowSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a WorkflowSession.
func (c *WorkflowSessionClient) QueryEvents(_m *WorkflowSession) *SessionEventQuery {
	query := (&SessionEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowsession.Table, workflowsession.FieldID, id),
			sqlgraph.To(sessionevent.Table, sessionevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowsession.EventsTable, workflowsession.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowSessionClient) Hooks() []Hook {
	return c.hooks.WorkflowSession
}

// Interceptors returns the client interceptors.
func (c *WorkflowSessionClient) Interceptors() []Interceptor {
	return c.inters.WorkflowSession
}

func (c *WorkflowSessionClient) mutate(ctx context.Context, m *WorkflowSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EvidenceRecord, PRPRun, SessionEvent, WorkflowSession []ent.Hook
	}
	inters struct {
		EvidenceRecord, PRPRun, SessionEvent, WorkflowSession []ent.Interceptor
	}
)
