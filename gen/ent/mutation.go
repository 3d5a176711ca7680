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
	"github.com/google/uuid"
	"github.com/knitworks/pattern-analyzer/gen/ent/analysisattempt"
	"github.com/knitworks/pattern-analyzer/gen/ent/predicate"
	"github.com/knitworks/pattern-analyzer/gen/ent/usageaccount"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisAttempt = "AnalysisAttempt"
	TypeUsageAccount    = "UsageAccount"
)

// AnalysisAttemptMutation represents an operation that mutates the AnalysisAttempt nodes in the graph.
type AnalysisAttemptMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	user_id        *string
	file_hash      *string
	file_name      *string
	succeeded      *bool
	attempted_at   *time.Time
	clearedFields  map[string]struct{}
	account        *uuid.UUID
	clearedaccount bool
	done           bool
	oldValue       func(context.Context) (*AnalysisAttempt, error)
	predicates     []predicate.AnalysisAttempt
}

var _ ent.Mutation = (*AnalysisAttemptMutation)(nil)

// analysisattemptOption allows management of the mutation configuration using functional options.
type analysisattemptOption func(*AnalysisAttemptMutation)

// newAnalysisAttemptMutation creates new mutation for the AnalysisAttempt entity.
func newAnalysisAttemptMutation(c config, op Op, opts ...analysisattemptOption) *AnalysisAttemptMutation {
	m := &AnalysisAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisAttemptID sets the ID field of the mutation.
func withAnalysisAttemptID(id uuid.UUID) analysisattemptOption {
	return func(m *AnalysisAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisAttempt
		)
		m.oldValue = func(ctx context.Context) (*AnalysisAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisAttempt sets the old AnalysisAttempt of the mutation.
func withAnalysisAttempt(node *AnalysisAttempt) analysisattemptOption {
	return func(m *AnalysisAttemptMutation) {
		m.oldValue = func(context.Context) (*AnalysisAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisAttempt entities.
func (m *AnalysisAttemptMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisAttemptMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisAttemptMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *AnalysisAttemptMutation) SetAccountID(u uuid.UUID) {
	m.account = &u
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *AnalysisAttemptMutation) AccountID() (r uuid.UUID, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the AnalysisAttempt entity.
// If the AnalysisAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisAttemptMutation) OldAccountID(ctx context.Context) (v uuid.UUID, err error) {
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
func (m *AnalysisAttemptMutation) ResetAccountID() {
	m.account = nil
}

// SetUserID sets the "user_id" field.
func (m *AnalysisAttemptMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AnalysisAttemptMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AnalysisAttempt entity.
// If the AnalysisAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisAttemptMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AnalysisAttemptMutation) ResetUserID() {
	m.user_id = nil
}

// SetFileHash sets the "file_hash" field.
func (m *AnalysisAttemptMutation) SetFileHash(s string) {
	m.file_hash = &s
}

// FileHash returns the value of the "file_hash" field in the mutation.
func (m *AnalysisAttemptMutation) FileHash() (r string, exists bool) {
	v := m.file_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldFileHash returns the old "file_hash" field's value of the AnalysisAttempt entity.
// If the AnalysisAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisAttemptMutation) OldFileHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileHash: %w", err)
	}
	return oldValue.FileHash, nil
}

// ResetFileHash resets all changes to the "file_hash" field.
func (m *AnalysisAttemptMutation) ResetFileHash() {
	m.file_hash = nil
}

// SetFileName sets the "file_name" field.
func (m *AnalysisAttemptMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *AnalysisAttemptMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the AnalysisAttempt entity.
// If the AnalysisAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisAttemptMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *AnalysisAttemptMutation) ResetFileName() {
	m.file_name = nil
}

// SetSucceeded sets the "succeeded" field.
func (m *AnalysisAttemptMutation) SetSucceeded(b bool) {
	m.succeeded = &b
}

// Succeeded returns the value of the "succeeded" field in the mutation.
func (m *AnalysisAttemptMutation) Succeeded() (r bool, exists bool) {
	v := m.succeeded
	if v == nil {
		return
	}
	return *v, true
}

// OldSucceeded returns the old "succeeded" field's value of the AnalysisAttempt entity.
// If the AnalysisAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisAttemptMutation) OldSucceeded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSucceeded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSucceeded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSucceeded: %w", err)
	}
	return oldValue.Succeeded, nil
}

// ResetSucceeded resets all changes to the "succeeded" field.
func (m *AnalysisAttemptMutation) ResetSucceeded() {
	m.succeeded = nil
}

// SetAttemptedAt sets the "attempted_at" field.
func (m *AnalysisAttemptMutation) SetAttemptedAt(t time.Time) {
	m.attempted_at = &t
}

// AttemptedAt returns the value of the "attempted_at" field in the mutation.
func (m *AnalysisAttemptMutation) AttemptedAt() (r time.Time, exists bool) {
	v := m.attempted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptedAt returns the old "attempted_at" field's value of the AnalysisAttempt entity.
// If the AnalysisAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisAttemptMutation) OldAttemptedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptedAt: %w", err)
	}
	return oldValue.AttemptedAt, nil
}

// ResetAttemptedAt resets all changes to the "attempted_at" field.
func (m *AnalysisAttemptMutation) ResetAttemptedAt() {
	m.attempted_at = nil
}

// ClearAccount clears the "account" edge to the UsageAccount entity.
func (m *AnalysisAttemptMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[analysisattempt.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the UsageAccount entity was cleared.
func (m *AnalysisAttemptMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *AnalysisAttemptMutation) AccountIDs() (ids []uuid.UUID) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *AnalysisAttemptMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// Where appends a list predicates to the AnalysisAttemptMutation builder.
func (m *AnalysisAttemptMutation) Where(ps ...predicate.AnalysisAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisAttempt).
func (m *AnalysisAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisAttemptMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.account != nil {
		fields = append(fields, analysisattempt.FieldAccountID)
	}
	if m.user_id != nil {
		fields = append(fields, analysisattempt.FieldUserID)
	}
	if m.file_hash != nil {
		fields = append(fields, analysisattempt.FieldFileHash)
	}
	if m.file_name != nil {
		fields = append(fields, analysisattempt.FieldFileName)
	}
	if m.succeeded != nil {
		fields = append(fields, analysisattempt.FieldSucceeded)
	}
	if m.attempted_at != nil {
		fields = append(fields, analysisattempt.FieldAttemptedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisattempt.FieldAccountID:
		return m.AccountID()
	case analysisattempt.FieldUserID:
		return m.UserID()
	case analysisattempt.FieldFileHash:
		return m.FileHash()
	case analysisattempt.FieldFileName:
		return m.FileName()
	case analysisattempt.FieldSucceeded:
		return m.Succeeded()
	case analysisattempt.FieldAttemptedAt:
		return m.AttemptedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisattempt.FieldAccountID:
		return m.OldAccountID(ctx)
	case analysisattempt.FieldUserID:
		return m.OldUserID(ctx)
	case analysisattempt.FieldFileHash:
		return m.OldFileHash(ctx)
	case analysisattempt.FieldFileName:
		return m.OldFileName(ctx)
	case analysisattempt.FieldSucceeded:
		return m.OldSucceeded(ctx)
	case analysisattempt.FieldAttemptedAt:
		return m.OldAttemptedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisattempt.FieldAccountID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case analysisattempt.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case analysisattempt.FieldFileHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileHash(v)
		return nil
	case analysisattempt.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case analysisattempt.FieldSucceeded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSucceeded(v)
		return nil
	case analysisattempt.FieldAttemptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisAttemptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisAttemptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalysisAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisAttemptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisAttemptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnalysisAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisAttemptMutation) ResetField(name string) error {
	switch name {
	case analysisattempt.FieldAccountID:
		m.ResetAccountID()
		return nil
	case analysisattempt.FieldUserID:
		m.ResetUserID()
		return nil
	case analysisattempt.FieldFileHash:
		m.ResetFileHash()
		return nil
	case analysisattempt.FieldFileName:
		m.ResetFileName()
		return nil
	case analysisattempt.FieldSucceeded:
		m.ResetSucceeded()
		return nil
	case analysisattempt.FieldAttemptedAt:
		m.ResetAttemptedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.account != nil {
		edges = append(edges, analysisattempt.EdgeAccount)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisAttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysisattempt.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaccount {
		edges = append(edges, analysisattempt.EdgeAccount)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisAttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case analysisattempt.EdgeAccount:
		return m.clearedaccount
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisAttemptMutation) ClearEdge(name string) error {
	switch name {
	case analysisattempt.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown AnalysisAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisAttemptMutation) ResetEdge(name string) error {
	switch name {
	case analysisattempt.EdgeAccount:
		m.ResetAccount()
		return nil
	}
	return fmt.Errorf("unknown AnalysisAttempt edge %s", name)
}

// UsageAccountMutation represents an operation that mutates the UsageAccount nodes in the graph.
type UsageAccountMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	user_id            *string
	credits            *int
	addcredits         *int
	last_reset_date    *time.Time
	ad_rewards_used    *int
	addad_rewards_used *int
	created_at         *time.Time
	updated_at         *time.Time
	total_attempts     *int
	addtotal_attempts  *int
	success_count      *int
	addsuccess_count   *int
	failure_count      *int
	addfailure_count   *int
	clearedFields      map[string]struct{}
	attempts           map[uuid.UUID]struct{}
	removedattempts    map[uuid.UUID]struct{}
	clearedattempts    bool
	done               bool
	oldValue           func(context.Context) (*UsageAccount, error)
	predicates         []predicate.UsageAccount
}

var _ ent.Mutation = (*UsageAccountMutation)(nil)

// usageaccountOption allows management of the mutation configuration using functional options.
type usageaccountOption func(*UsageAccountMutation)

// newUsageAccountMutation creates new mutation for the UsageAccount entity.
func newUsageAccountMutation(c config, op Op, opts ...usageaccountOption) *UsageAccountMutation {
	m := &UsageAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageAccountID sets the ID field of the mutation.
func withUsageAccountID(id uuid.UUID) usageaccountOption {
	return func(m *UsageAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageAccount
		)
		m.oldValue = func(ctx context.Context) (*UsageAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageAccount sets the old UsageAccount of the mutation.
func withUsageAccount(node *UsageAccount) usageaccountOption {
	return func(m *UsageAccountMutation) {
		m.oldValue = func(context.Context) (*UsageAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UsageAccount entities.
func (m *UsageAccountMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageAccountMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageAccountMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UsageAccountMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UsageAccountMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UsageAccount entity.
// If the UsageAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAccountMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UsageAccountMutation) ResetUserID() {
	m.user_id = nil
}

// SetCredits sets the "credits" field.
func (m *UsageAccountMutation) SetCredits(i int) {
	m.credits = &i
	m.addcredits = nil
}

// Credits returns the value of the "credits" field in the mutation.
func (m *UsageAccountMutation) Credits() (r int, exists bool) {
	v := m.credits
	if v == nil {
		return
	}
	return *v, true
}

// OldCredits returns the old "credits" field's value of the UsageAccount entity.
// If the UsageAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAccountMutation) OldCredits(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredits: %w", err)
	}
	return oldValue.Credits, nil
}

// AddCredits adds i to the "credits" field.
func (m *UsageAccountMutation) AddCredits(i int) {
	if m.addcredits != nil {
		*m.addcredits += i
	} else {
		m.addcredits = &i
	}
}

// AddedCredits returns the value that was added to the "credits" field in this mutation.
func (m *UsageAccountMutation) AddedCredits() (r int, exists bool) {
	v := m.addcredits
	if v == nil {
		return
	}
	return *v, true
}

// ResetCredits resets all changes to the "credits" field.
func (m *UsageAccountMutation) ResetCredits() {
	m.credits = nil
	m.addcredits = nil
}

// SetLastResetDate sets the "last_reset_date" field.
func (m *UsageAccountMutation) SetLastResetDate(t time.Time) {
	m.last_reset_date = &t
}

// LastResetDate returns the value of the "last_reset_date" field in the mutation.
func (m *UsageAccountMutation) LastResetDate() (r time.Time, exists bool) {
	v := m.last_reset_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastResetDate returns the old "last_reset_date" field's value of the UsageAccount entity.
// If the UsageAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAccountMutation) OldLastResetDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastResetDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastResetDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastResetDate: %w", err)
	}
	return oldValue.LastResetDate, nil
}

// ResetLastResetDate resets all changes to the "last_reset_date" field.
func (m *UsageAccountMutation) ResetLastResetDate() {
	m.last_reset_date = nil
}

// SetAdRewardsUsed sets the "ad_rewards_used" field.
func (m *UsageAccountMutation) SetAdRewardsUsed(i int) {
	m.ad_rewards_used = &i
	m.addad_rewards_used = nil
}

// AdRewardsUsed returns the value of the "ad_rewards_used" field in the mutation.
func (m *UsageAccountMutation) AdRewardsUsed() (r int, exists bool) {
	v := m.ad_rewards_used
	if v == nil {
		return
	}
	return *v, true
}

// OldAdRewardsUsed returns the old "ad_rewards_used" field's value of the UsageAccount entity.
// If the UsageAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAccountMutation) OldAdRewardsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdRewardsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdRewardsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdRewardsUsed: %w", err)
	}
	return oldValue.AdRewardsUsed, nil
}

// AddAdRewardsUsed adds i to the "ad_rewards_used" field.
func (m *UsageAccountMutation) AddAdRewardsUsed(i int) {
	if m.addad_rewards_used != nil {
		*m.addad_rewards_used += i
	} else {
		m.addad_rewards_used = &i
	}
}

// AddedAdRewardsUsed returns the value that was added to the "ad_rewards_used" field in this mutation.
func (m *UsageAccountMutation) AddedAdRewardsUsed() (r int, exists bool) {
	v := m.addad_rewards_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetAdRewardsUsed resets all changes to the "ad_rewards_used" field.
func (m *UsageAccountMutation) ResetAdRewardsUsed() {
	m.ad_rewards_used = nil
	m.addad_rewards_used = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageAccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageAccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageAccount entity.
// If the UsageAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UsageAccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UsageAccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UsageAccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UsageAccount entity.
// If the UsageAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UsageAccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTotalAttempts sets the "total_attempts" field.
func (m *UsageAccountMutation) SetTotalAttempts(i int) {
	m.total_attempts = &i
	m.addtotal_attempts = nil
}

// TotalAttempts returns the value of the "total_attempts" field in the mutation.
func (m *UsageAccountMutation) TotalAttempts() (r int, exists bool) {
	v := m.total_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAttempts returns the old "total_attempts" field's value of the UsageAccount entity.
// If the UsageAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAccountMutation) OldTotalAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAttempts: %w", err)
	}
	return oldValue.TotalAttempts, nil
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (m *UsageAccountMutation) AddTotalAttempts(i int) {
	if m.addtotal_attempts != nil {
		*m.addtotal_attempts += i
	} else {
		m.addtotal_attempts = &i
	}
}

// AddedTotalAttempts returns the value that was added to the "total_attempts" field in this mutation.
func (m *UsageAccountMutation) AddedTotalAttempts() (r int, exists bool) {
	v := m.addtotal_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAttempts resets all changes to the "total_attempts" field.
func (m *UsageAccountMutation) ResetTotalAttempts() {
	m.total_attempts = nil
	m.addtotal_attempts = nil
}

// SetSuccessCount sets the "success_count" field.
func (m *UsageAccountMutation) SetSuccessCount(i int) {
	m.success_count = &i
	m.addsuccess_count = nil
}

// SuccessCount returns the value of the "success_count" field in the mutation.
func (m *UsageAccountMutation) SuccessCount() (r int, exists bool) {
	v := m.success_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCount returns the old "success_count" field's value of the UsageAccount entity.
// If the UsageAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAccountMutation) OldSuccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCount: %w", err)
	}
	return oldValue.SuccessCount, nil
}

// AddSuccessCount adds i to the "success_count" field.
func (m *UsageAccountMutation) AddSuccessCount(i int) {
	if m.addsuccess_count != nil {
		*m.addsuccess_count += i
	} else {
		m.addsuccess_count = &i
	}
}

// AddedSuccessCount returns the value that was added to the "success_count" field in this mutation.
func (m *UsageAccountMutation) AddedSuccessCount() (r int, exists bool) {
	v := m.addsuccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessCount resets all changes to the "success_count" field.
func (m *UsageAccountMutation) ResetSuccessCount() {
	m.success_count = nil
	m.addsuccess_count = nil
}

// SetFailureCount sets the "failure_count" field.
func (m *UsageAccountMutation) SetFailureCount(i int) {
	m.failure_count = &i
	m.addfailure_count = nil
}

// FailureCount returns the value of the "failure_count" field in the mutation.
func (m *UsageAccountMutation) FailureCount() (r int, exists bool) {
	v := m.failure_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureCount returns the old "failure_count" field's value of the UsageAccount entity.
// If the UsageAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageAccountMutation) OldFailureCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureCount: %w", err)
	}
	return oldValue.FailureCount, nil
}

// AddFailureCount adds i to the "failure_count" field.
func (m *UsageAccountMutation) AddFailureCount(i int) {
	if m.addfailure_count != nil {
		*m.addfailure_count += i
	} else {
		m.addfailure_count = &i
	}
}

// AddedFailureCount returns the value that was added to the "failure_count" field in this mutation.
func (m *UsageAccountMutation) AddedFailureCount() (r int, exists bool) {
	v := m.addfailure_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailureCount resets all changes to the "failure_count" field.
func (m *UsageAccountMutation) ResetFailureCount() {
	m.failure_count = nil
	m.addfailure_count = nil
}

// AddAttemptIDs adds the "attempts" edge to the AnalysisAttempt entity by ids.
func (m *UsageAccountMutation) AddAttemptIDs(ids ...uuid.UUID) {
	if m.attempts == nil {
		m.attempts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the AnalysisAttempt entity.
func (m *UsageAccountMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the AnalysisAttempt entity was cleared.
func (m *UsageAccountMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the AnalysisAttempt entity by IDs.
func (m *UsageAccountMutation) RemoveAttemptIDs(ids ...uuid.UUID) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the AnalysisAttempt entity.
func (m *UsageAccountMutation) RemovedAttemptsIDs() (ids []uuid.UUID) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *UsageAccountMutation) AttemptsIDs() (ids []uuid.UUID) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *UsageAccountMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// Where appends a list predicates to the UsageAccountMutation builder.
func (m *UsageAccountMutation) Where(ps ...predicate.UsageAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageAccount).
func (m *UsageAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageAccountMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, usageaccount.FieldUserID)
	}
	if m.credits != nil {
		fields = append(fields, usageaccount.FieldCredits)
	}
	if m.last_reset_date != nil {
		fields = append(fields, usageaccount.FieldLastResetDate)
	}
	if m.ad_rewards_used != nil {
		fields = append(fields, usageaccount.FieldAdRewardsUsed)
	}
	if m.created_at != nil {
		fields = append(fields, usageaccount.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usageaccount.FieldUpdatedAt)
	}
	if m.total_attempts != nil {
		fields = append(fields, usageaccount.FieldTotalAttempts)
	}
	if m.success_count != nil {
		fields = append(fields, usageaccount.FieldSuccessCount)
	}
	if m.failure_count != nil {
		fields = append(fields, usageaccount.FieldFailureCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usageaccount.FieldUserID:
		return m.UserID()
	case usageaccount.FieldCredits:
		return m.Credits()
	case usageaccount.FieldLastResetDate:
		return m.LastResetDate()
	case usageaccount.FieldAdRewardsUsed:
		return m.AdRewardsUsed()
	case usageaccount.FieldCreatedAt:
		return m.CreatedAt()
	case usageaccount.FieldUpdatedAt:
		return m.UpdatedAt()
	case usageaccount.FieldTotalAttempts:
		return m.TotalAttempts()
	case usageaccount.FieldSuccessCount:
		return m.SuccessCount()
	case usageaccount.FieldFailureCount:
		return m.FailureCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usageaccount.FieldUserID:
		return m.OldUserID(ctx)
	case usageaccount.FieldCredits:
		return m.OldCredits(ctx)
	case usageaccount.FieldLastResetDate:
		return m.OldLastResetDate(ctx)
	case usageaccount.FieldAdRewardsUsed:
		return m.OldAdRewardsUsed(ctx)
	case usageaccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usageaccount.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usageaccount.FieldTotalAttempts:
		return m.OldTotalAttempts(ctx)
	case usageaccount.FieldSuccessCount:
		return m.OldSuccessCount(ctx)
	case usageaccount.FieldFailureCount:
		return m.OldFailureCount(ctx)
	}
	return nil, fmt.Errorf("unknown UsageAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usageaccount.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usageaccount.FieldCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredits(v)
		return nil
	case usageaccount.FieldLastResetDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastResetDate(v)
		return nil
	case usageaccount.FieldAdRewardsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdRewardsUsed(v)
		return nil
	case usageaccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usageaccount.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usageaccount.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAttempts(v)
		return nil
	case usageaccount.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCount(v)
		return nil
	case usageaccount.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureCount(v)
		return nil
	}
	return fmt.Errorf("unknown UsageAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageAccountMutation) AddedFields() []string {
	var fields []string
	if m.addcredits != nil {
		fields = append(fields, usageaccount.FieldCredits)
	}
	if m.addad_rewards_used != nil {
		fields = append(fields, usageaccount.FieldAdRewardsUsed)
	}
	if m.addtotal_attempts != nil {
		fields = append(fields, usageaccount.FieldTotalAttempts)
	}
	if m.addsuccess_count != nil {
		fields = append(fields, usageaccount.FieldSuccessCount)
	}
	if m.addfailure_count != nil {
		fields = append(fields, usageaccount.FieldFailureCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageAccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usageaccount.FieldCredits:
		return m.AddedCredits()
	case usageaccount.FieldAdRewardsUsed:
		return m.AddedAdRewardsUsed()
	case usageaccount.FieldTotalAttempts:
		return m.AddedTotalAttempts()
	case usageaccount.FieldSuccessCount:
		return m.AddedSuccessCount()
	case usageaccount.FieldFailureCount:
		return m.AddedFailureCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usageaccount.FieldCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCredits(v)
		return nil
	case usageaccount.FieldAdRewardsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdRewardsUsed(v)
		return nil
	case usageaccount.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAttempts(v)
		return nil
	case usageaccount.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessCount(v)
		return nil
	case usageaccount.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailureCount(v)
		return nil
	}
	return fmt.Errorf("unknown UsageAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageAccountMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageAccountMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UsageAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageAccountMutation) ResetField(name string) error {
	switch name {
	case usageaccount.FieldUserID:
		m.ResetUserID()
		return nil
	case usageaccount.FieldCredits:
		m.ResetCredits()
		return nil
	case usageaccount.FieldLastResetDate:
		m.ResetLastResetDate()
		return nil
	case usageaccount.FieldAdRewardsUsed:
		m.ResetAdRewardsUsed()
		return nil
	case usageaccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usageaccount.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usageaccount.FieldTotalAttempts:
		m.ResetTotalAttempts()
		return nil
	case usageaccount.FieldSuccessCount:
		m.ResetSuccessCount()
		return nil
	case usageaccount.FieldFailureCount:
		m.ResetFailureCount()
		return nil
	}
	return fmt.Errorf("unknown UsageAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.attempts != nil {
		edges = append(edges, usageaccount.EdgeAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageAccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usageaccount.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedattempts != nil {
		edges = append(edges, usageaccount.EdgeAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageAccountMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case usageaccount.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedattempts {
		edges = append(edges, usageaccount.EdgeAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageAccountMutation) EdgeCleared(name string) bool {
	switch name {
	case usageaccount.EdgeAttempts:
		return m.clearedattempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageAccountMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown UsageAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageAccountMutation) ResetEdge(name string) error {
	switch name {
	case usageaccount.EdgeAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown UsageAccount edge %s", name)
}
