// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/availabilityblock"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/booking"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/procedurelogentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AvailabilityBlock is the client for interacting with the AvailabilityBlock builders.
	AvailabilityBlock *AvailabilityBlockClient
	// Booking is the client for interacting with the Booking builders.
	Booking *BookingClient
	// ProcedureLogEntry is the client for interacting with the ProcedureLogEntry builders.
	ProcedureLogEntry *ProcedureLogEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AvailabilityBlock = NewAvailabilityBlockClient(c.config)
	c.Booking = NewBookingClient(c.config)
	c.ProcedureLogEntry = NewProcedureLogEntryClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AvailabilityBlock: NewAvailabilityBlockClient(cfg),
		Booking:           NewBookingClient(cfg),
		ProcedureLogEntry: NewProcedureLogEntryClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		AvailabilityBlock: NewAvailabilityBlockClient(cfg),
		Booking:           NewBookingClient(cfg),
		ProcedureLogEntry: NewProcedureLogEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AvailabilityBlock.
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
	c.AvailabilityBlock.Use(hooks...)
	c.Booking.Use(hooks...)
	c.ProcedureLogEntry.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AvailabilityBlock.Intercept(interceptors...)
	c.Booking.Intercept(interceptors...)
	c.ProcedureLogEntry.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AvailabilityBlockMutation:
		return c.AvailabilityBlock.mutate(ctx, m)
	case *BookingMutation:
		return c.Booking.mutate(ctx, m)
	case *ProcedureLogEntryMutation:
		return c.ProcedureLogEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AvailabilityBlockClient is a client for the AvailabilityBlock schema.
type AvailabilityBlockClient struct {
	config
}

// NewAvailabilityBlockClient returns a client for the AvailabilityBlock from the given config.
func NewAvailabilityBlockClient(c config) *AvailabilityBlockClient {
	return &AvailabilityBlockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `availabilityblock.Hooks(f(g(h())))`.
func (c *AvailabilityBlockClient) Use(hooks ...Hook) {
	c.hooks.AvailabilityBlock = append(c.hooks.AvailabilityBlock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `availabilityblock.Intercept(f(g(h())))`.
func (c *AvailabilityBlockClient) Intercept(interceptors ...Interceptor) {
	c.inters.AvailabilityBlock = append(c.inters.AvailabilityBlock, interceptors...)
}

// Create returns a builder for creating a AvailabilityBlock entity.
func (c *AvailabilityBlockClient) Create() *AvailabilityBlockCreate {
	mutation := newAvailabilityBlockMutation(c.config, OpCreate)
	return &AvailabilityBlockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AvailabilityBlock entities.
func (c *AvailabilityBlockClient) CreateBulk(builders ...*AvailabilityBlockCreate) *AvailabilityBlockCreateBulk {
	return &AvailabilityBlockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AvailabilityBlockClient) MapCreateBulk(slice any, setFunc func(*AvailabilityBlockCreate, int)) *AvailabilityBlockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AvailabilityBlockCreateBulk{err: fmt.Errorf("calling to AvailabilityBlockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AvailabilityBlockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AvailabilityBlockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AvailabilityBlock.
func (c *AvailabilityBlockClient) Update() *AvailabilityBlockUpdate {
	mutation := newAvailabilityBlockMutation(c.config, OpUpdate)
	return &AvailabilityBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AvailabilityBlockClient) UpdateOne(_m *AvailabilityBlock) *AvailabilityBlockUpdateOne {
	mutation := newAvailabilityBlockMutation(c.config, OpUpdateOne, withAvailabilityBlock(_m))
	return &AvailabilityBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AvailabilityBlockClient) UpdateOneID(id uuid.UUID) *AvailabilityBlockUpdateOne {
	mutation := newAvailabilityBlockMutation(c.config, OpUpdateOne, withAvailabilityBlockID(id))
	return &AvailabilityBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AvailabilityBlock.
func (c *AvailabilityBlockClient) Delete() *AvailabilityBlockDelete {
	mutation := newAvailabilityBlockMutation(c.config, OpDelete)
	return &AvailabilityBlockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AvailabilityBlockClient) DeleteOne(_m *AvailabilityBlock) *AvailabilityBlockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AvailabilityBlockClient) DeleteOneID(id uuid.UUID) *AvailabilityBlockDeleteOne {
	builder := c.Delete().Where(availabilityblock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AvailabilityBlockDeleteOne{builder}
}

// Query returns a query builder for AvailabilityBlock.
func (c *AvailabilityBlockClient) Query() *AvailabilityBlockQuery {
	return &AvailabilityBlockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAvailabilityBlock},
		inters: c.Interceptors(),
	}
}

// Get returns a AvailabilityBlock entity by its id.
func (c *AvailabilityBlockClient) Get(ctx context.Context, id uuid.UUID) (*AvailabilityBlock, error) {
	return c.Query().Where(availabilityblock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AvailabilityBlockClient) GetX(ctx context.Context, id uuid.UUID) *AvailabilityBlock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AvailabilityBlockClient) Hooks() []Hook {
	return c.hooks.AvailabilityBlock
}

// Interceptors returns the client interceptors.
func (c *AvailabilityBlockClient) Interceptors() []Interceptor {
	return c.inters.AvailabilityBlock
}

func (c *AvailabilityBlockClient) mutate(ctx context.Context, m *AvailabilityBlockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AvailabilityBlockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AvailabilityBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AvailabilityBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AvailabilityBlockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AvailabilityBlock mutation op: %q", m.Op())
	}
}

// BookingClient is a client for the Booking schema.
type BookingClient struct {
	config
}

// NewBookingClient returns a client for the Booking from the given config.
func NewBookingClient(c config) *BookingClient {
	return &BookingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `booking.Hooks(f(g(h())))`.
func (c *BookingClient) Use(hooks ...Hook) {
	c.hooks.Booking = append(c.hooks.Booking, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `booking.Intercept(f(g(h())))`.
func (c *BookingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Booking = append(c.inters.Booking, interceptors...)
}

// Create returns a builder for creating a Booking entity.
func (c *BookingClient) Create() *BookingCreate {
	mutation := newBookingMutation(c.config, OpCreate)
	return &BookingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Booking entities.
func (c *BookingClient) CreateBulk(builders ...*BookingCreate) *BookingCreateBulk {
	return &BookingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BookingClient) MapCreateBulk(slice any, setFunc func(*BookingCreate, int)) *BookingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BookingCreateBulk{err: fmt.Errorf("calling to BookingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BookingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BookingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Booking.
func (c *BookingClient) Update() *BookingUpdate {
	mutation := newBookingMutation(c.config, OpUpdate)
	return &BookingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BookingClient) UpdateOne(_m *Booking) *BookingUpdateOne {
	mutation := newBookingMutation(c.config, OpUpdateOne, withBooking(_m))
	return &BookingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BookingClient) UpdateOneID(id uuid.UUID) *BookingUpdateOne {
	mutation := newBookingMutation(c.config, OpUpdateOne, withBookingID(id))
	return &BookingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Booking.
func (c *BookingClient) Delete() *BookingDelete {
	mutation := newBookingMutation(c.config, OpDelete)
	return &BookingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BookingClient) DeleteOne(_m *Booking) *BookingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BookingClient) DeleteOneID(id uuid.UUID) *BookingDeleteOne {
	builder := c.Delete().Where(booking.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BookingDeleteOne{builder}
}

// Query returns a query builder for Booking.
func (c *BookingClient) Query() *BookingQuery {
	return &BookingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBooking},
		inters: c.Interceptors(),
	}
}

// Get returns a Booking entity by its id.
func (c *BookingClient) Get(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return c.Query().Where(booking.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BookingClient) GetX(ctx context.Context, id uuid.UUID) *Booking {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BookingClient) Hooks() []Hook {
	return c.hooks.Booking
}

// Interceptors returns the client interceptors.
func (c *BookingClient) Interceptors() []Interceptor {
	return c.inters.Booking
}

func (c *BookingClient) mutate(ctx context.Context, m *BookingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BookingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BookingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BookingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BookingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Booking mutation op: %q", m.Op())
	}
}

// ProcedureLogEntryClient is a client for the ProcedureLogEntry schema.
type ProcedureLogEntryClient struct {
	config
}

// NewProcedureLogEntryClient returns a client for the ProcedureLogEntry from the given config.
func NewProcedureLogEntryClient(c config) *ProcedureLogEntryClient {
	return &ProcedureLogEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `procedurelogentry.Hooks(f(g(h())))`.
func (c *ProcedureLogEntryClient) Use(hooks ...Hook) {
	c.hooks.ProcedureLogEntry = append(c.hooks.ProcedureLogEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `procedurelogentry.Intercept(f(g(h())))`.
func (c *ProcedureLogEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcedureLogEntry = append(c.inters.ProcedureLogEntry, interceptors...)
}

// Create returns a builder for creating a ProcedureLogEntry entity.
func (c *ProcedureLogEntryClient) Create() *ProcedureLogEntryCreate {
	mutation := newProcedureLogEntryMutation(c.config, OpCreate)
	return &ProcedureLogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcedureLogEntry entities.
func (c *ProcedureLogEntryClient) CreateBulk(builders ...*ProcedureLogEntryCreate) *ProcedureLogEntryCreateBulk {
	return &ProcedureLogEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcedureLogEntryClient) MapCreateBulk(slice any, setFunc func(*ProcedureLogEntryCreate, int)) *ProcedureLogEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcedureLogEntryCreateBulk{err: fmt.Errorf("calling to ProcedureLogEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcedureLogEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcedureLogEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcedureLogEntry.
func (c *ProcedureLogEntryClient) Update() *ProcedureLogEntryUpdate {
	mutation := newProcedureLogEntryMutation(c.config, OpUpdate)
	return &ProcedureLogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcedureLogEntryClient) UpdateOne(_m *ProcedureLogEntry) *ProcedureLogEntryUpdateOne {
	mutation := newProcedureLogEntryMutation(c.config, OpUpdateOne, withProcedureLogEntry(_m))
	return &ProcedureLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcedureLogEntryClient) UpdateOneID(id uuid.UUID) *ProcedureLogEntryUpdateOne {
	mutation := newProcedureLogEntryMutation(c.config, OpUpdateOne, withProcedureLogEntryID(id))
	return &ProcedureLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcedureLogEntry.
func (c *ProcedureLogEntryClient) Delete() *ProcedureLogEntryDelete {
	mutation := newProcedureLogEntryMutation(c.config, OpDelete)
	return &ProcedureLogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcedureLogEntryClient) DeleteOne(_m *ProcedureLogEntry) *ProcedureLogEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcedureLogEntryClient) DeleteOneID(id uuid.UUID) *ProcedureLogEntryDeleteOne {
	builder := c.Delete().Where(procedurelogentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcedureLogEntryDeleteOne{builder}
}

// Query returns a query builder for ProcedureLogEntry.
func (c *ProcedureLogEntryClient) Query() *ProcedureLogEntryQuery {
	return &ProcedureLogEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcedureLogEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcedureLogEntry entity by its id.
func (c *ProcedureLogEntryClient) Get(ctx context.Context, id uuid.UUID) (*ProcedureLogEntry, error) {
	return c.Query().Where(procedurelogentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcedureLogEntryClient) GetX(ctx context.Context, id uuid.UUID) *ProcedureLogEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcedureLogEntryClient) Hooks() []Hook {
	return c.hooks.ProcedureLogEntry
}

// Interceptors returns the client interceptors.
func (c *ProcedureLogEntryClient) Interceptors() []Interceptor {
	return c.inters.ProcedureLogEntry
}

func (c *ProcedureLogEntryClient) mutate(ctx context.Context, m *ProcedureLogEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcedureLogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcedureLogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcedureLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcedureLogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ProcedureLogEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AvailabilityBlock, Booking, ProcedureLogEntry []ent.Hook
	}
	inters struct {
		AvailabilityBlock, Booking, ProcedureLogEntry []ent.Interceptor
	}
)
