// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/knitworks/pattern-analyzer/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/knitworks/pattern-analyzer/gen/ent/analysisattempt"
	"github.com/knitworks/pattern-analyzer/gen/ent/usageaccount"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisAttempt is the client for interacting with the AnalysisAttempt builders.
	AnalysisAttempt *AnalysisAttemptClient
	// UsageAccount is the client for interacting with the UsageAccount builders.
	UsageAccount *UsageAccountClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisAttempt = NewAnalysisAttemptClient(c.config)
	c.UsageAccount = NewUsageAccountClient(c.config)
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
		AnalysisAttempt: NewAnalysisAttemptClient(cfg),
		UsageAccount:    NewUsageAccountClient(cfg),
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
		AnalysisAttempt: NewAnalysisAttemptClient(cfg),
		UsageAccount:    NewUsageAccountClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisAttempt.
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
	c.AnalysisAttempt.Use(hooks...)
	c.UsageAccount.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnalysisAttempt.Intercept(interceptors...)
	c.UsageAccount.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisAttemptMutation:
		return c.AnalysisAttempt.mutate(ctx, m)
	case *UsageAccountMutation:
		return c.UsageAccount.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisAttemptClient is a client for the AnalysisAttempt schema.
type AnalysisAttemptClient struct {
	config
}

// NewAnalysisAttemptClient returns a client for the AnalysisAttempt from the given config.
func NewAnalysisAttemptClient(c config) *AnalysisAttemptClient {
	return &AnalysisAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisattempt.Hooks(f(g(h())))`.
func (c *AnalysisAttemptClient) Use(hooks ...Hook) {
	c.hooks.AnalysisAttempt = append(c.hooks.AnalysisAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisattempt.Intercept(f(g(h())))`.
func (c *AnalysisAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisAttempt = append(c.inters.AnalysisAttempt, interceptors...)
}

// Create returns a builder for creating a AnalysisAttempt entity.
func (c *AnalysisAttemptClient) Create() *AnalysisAttemptCreate {
	mutation := newAnalysisAttemptMutation(c.config, OpCreate)
	return &AnalysisAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisAttempt entities.
func (c *AnalysisAttemptClient) CreateBulk(builders ...*AnalysisAttemptCreate) *AnalysisAttemptCreateBulk {
	return &AnalysisAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisAttemptClient) MapCreateBulk(slice any, setFunc func(*AnalysisAttemptCreate, int)) *AnalysisAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisAttemptCreateBulk{err: fmt.Errorf("calling to AnalysisAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisAttempt.
func (c *AnalysisAttemptClient) Update() *AnalysisAttemptUpdate {
	mutation := newAnalysisAttemptMutation(c.config, OpUpdate)
	return &AnalysisAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisAttemptClient) UpdateOne(_m *AnalysisAttempt) *AnalysisAttemptUpdateOne {
	mutation := newAnalysisAttemptMutation(c.config, OpUpdateOne, withAnalysisAttempt(_m))
	return &AnalysisAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisAttemptClient) UpdateOneID(id uuid.UUID) *AnalysisAttemptUpdateOne {
	mutation := newAnalysisAttemptMutation(c.config, OpUpdateOne, withAnalysisAttemptID(id))
	return &AnalysisAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisAttempt.
func (c *AnalysisAttemptClient) Delete() *AnalysisAttemptDelete {
	mutation := newAnalysisAttemptMutation(c.config, OpDelete)
	return &AnalysisAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisAttemptClient) DeleteOne(_m *AnalysisAttempt) *AnalysisAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisAttemptClient) DeleteOneID(id uuid.UUID) *AnalysisAttemptDeleteOne {
	builder := c.Delete().Where(analysisattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisAttemptDeleteOne{builder}
}

// Query returns a query builder for AnalysisAttempt.
func (c *AnalysisAttemptClient) Query() *AnalysisAttemptQuery {
	return &AnalysisAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisAttempt entity by its id.
func (c *AnalysisAttemptClient) Get(ctx context.Context, id uuid.UUID) (*AnalysisAttempt, error) {
	return c.Query().Where(analysisattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisAttemptClient) GetX(ctx context.Context, id uuid.UUID) *AnalysisAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAccount queries the account edge of a AnalysisAttempt.
func (c *AnalysisAttemptClient) QueryAccount(_m *AnalysisAttempt) *UsageAccountQuery {
	query := (&UsageAccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisattempt.Table, analysisattempt.FieldID, id),
			sqlgraph.To(usageaccount.Table, usageaccount.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysisattempt.AccountTable, analysisattempt.AccountColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisAttemptClient) Hooks() []Hook {
	return c.hooks.AnalysisAttempt
}

// Interceptors returns the client interceptors.
func (c *AnalysisAttemptClient) Interceptors() []Interceptor {
	return c.inters.AnalysisAttempt
}

func (c *AnalysisAttemptClient) mutate(ctx context.Context, m *AnalysisAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisAttempt mutation op: %q", m.Op())
	}
}

// UsageAccountClient is a client for the UsageAccount schema.
type UsageAccountClient struct {
	config
}

// NewUsageAccountClient returns a client for the UsageAccount from the given config.
func NewUsageAccountClient(c config) *UsageAccountClient {
	return &UsageAccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usageaccount.Hooks(f(g(h())))`.
func (c *UsageAccountClient) Use(hooks ...Hook) {
	c.hooks.UsageAccount = append(c.hooks.UsageAccount, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usageaccount.Intercept(f(g(h())))`.
func (c *UsageAccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageAccount = append(c.inters.UsageAccount, interceptors...)
}

// Create returns a builder for creating a UsageAccount entity.
func (c *UsageAccountClient) Create() *UsageAccountCreate {
	mutation := newUsageAccountMutation(c.config, OpCreate)
	return &UsageAccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageAccount entities.
func (c *UsageAccountClient) CreateBulk(builders ...*UsageAccountCreate) *UsageAccountCreateBulk {
	return &UsageAccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageAccountClient) MapCreateBulk(slice any, setFunc func(*UsageAccountCreate, int)) *UsageAccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageAccountCreateBulk{err: fmt.Errorf("calling to UsageAccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageAccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageAccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageAccount.
func (c *UsageAccountClient) Update() *UsageAccountUpdate {
	mutation := newUsageAccountMutation(c.config, OpUpdate)
	return &UsageAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageAccountClient) UpdateOne(_m *UsageAccount) *UsageAccountUpdateOne {
	mutation := newUsageAccountMutation(c.config, OpUpdateOne, withUsageAccount(_m))
	return &UsageAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageAccountClient) UpdateOneID(id uuid.UUID) *UsageAccountUpdateOne {
	mutation := newUsageAccountMutation(c.config, OpUpdateOne, withUsageAccountID(id))
	return &UsageAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageAccount.
func (c *UsageAccountClient) Delete() *UsageAccountDelete {
	mutation := newUsageAccountMutation(c.config, OpDelete)
	return &UsageAccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageAccountClient) DeleteOne(_m *UsageAccount) *UsageAccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageAccountClient) DeleteOneID(id uuid.UUID) *UsageAccountDeleteOne {
	builder := c.Delete().Where(usageaccount.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageAccountDeleteOne{builder}
}

// Query returns a query builder for UsageAccount.
func (c *UsageAccountClient) Query() *UsageAccountQuery {
	return &UsageAccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageAccount entity by its id.
func (c *UsageAccountClient) Get(ctx context.Context, id uuid.UUID) (*UsageAccount, error) {
	return c.Query().Where(usageaccount.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageAccountClient) GetX(ctx context.Context, id uuid.UUID) *UsageAccount {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAttempts queries the attempts edge of a UsageAccount.
func (c *UsageAccountClient) QueryAttempts(_m *UsageAccount) *AnalysisAttemptQuery {
	query := (&AnalysisAttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usageaccount.Table, usageaccount.FieldID, id),
			sqlgraph.To(analysisattempt.Table, analysisattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, usageaccount.AttemptsTable, usageaccount.AttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UsageAccountClient) Hooks() []Hook {
	return c.hooks.UsageAccount
}

// Interceptors returns the client interceptors.
func (c *UsageAccountClient) Interceptors() []Interceptor {
	return c.inters.UsageAccount
}

func (c *UsageAccountClient) mutate(ctx context.Context, m *UsageAccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageAccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageAccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageAccount mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisAttempt, UsageAccount []ent.Hook
	}
	inters struct {
		AnalysisAttempt, UsageAccount []ent.Interceptor
	}
)
