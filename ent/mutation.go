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
	"github.com/loom-agents/loom/ent/evidencerecord"
	"github.com/loom-agents/loom/ent/predicate"
	"github.com/loom-agents/loom/ent/prprun"
	"github.com/loom-agents/loom/ent/sessionevent"
	"github.com/loom-agents/loom/ent/workflowsession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvidenceRecord  = "EvidenceRecord"
	TypePRPRun          = "PRPRun"
	TypeSessionEvent    = "SessionEvent"
	TypeWorkflowSession = "WorkflowSession"
)

// EvidenceRecordMutation represents an operation that mutates the EvidenceRecord nodes in the graph.
type EvidenceRecordMutation struct {
	config
	op            Op
	typ           string
	id            *string
	seq           *int
	addseq        *int
	_type         *evidencerecord.Type
	source        *string
	content       *string
	phase         *string
	timestamp     *string
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*EvidenceRecord, error)
	predicates    []predicate.EvidenceRecord
}

var _ ent.Mutation = (*EvidenceRecordMutation)(nil)

// evidencerecordOption allows management of the mutation configuration using functional options.
type evidencerecordOption func(*EvidenceRecordMutation)

// newEvidenceRecordMutation creates new mutation for the EvidenceRecord entity.
func newEvidenceRecordMutation(c config, op Op, opts ...evidencerecordOption) *EvidenceRecordMutation {
	m := &EvidenceRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidenceRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceRecordID sets the ID field of the mutation.
func withEvidenceRecordID(id string) evidencerecordOption {
	return func(m *EvidenceRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *EvidenceRecord
		)
		m.oldValue = func(ctx context.Context) (*EvidenceRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvidenceRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidenceRecord sets the old EvidenceRecord of the mutation.
func withEvidenceRecord(node *EvidenceRecord) evidencerecordOption {
	return func(m *EvidenceRecordMutation) {
		m.oldValue = func(context.Context) (*EvidenceRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvidenceRecord entities.
func (m *EvidenceRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvidenceRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *EvidenceRecordMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *EvidenceRecordMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the EvidenceRecord entity.
// If the EvidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRecordMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *EvidenceRecordMutation) ResetRunID() {
	m.run = nil
}

// SetSeq sets the "seq" field.
func (m *EvidenceRecordMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *EvidenceRecordMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the EvidenceRecord entity.
// If the EvidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRecordMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *EvidenceRecordMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *EvidenceRecordMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *EvidenceRecordMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetType sets the "type" field.
func (m *EvidenceRecordMutation) SetType(e evidencerecord.Type) {
	m._type = &e
}

// GetType returns the value of the "type" field in the mutation.
func (m *EvidenceRecordMutation) GetType() (r evidencerecord.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the EvidenceRecord entity.
// If the EvidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRecordMutation) OldType(ctx context.Context) (v evidencerecord.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EvidenceRecordMutation) ResetType() {
	m._type = nil
}

// SetSource sets the "source" field.
func (m *EvidenceRecordMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *EvidenceRecordMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the EvidenceRecord entity.
// If the EvidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRecordMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *EvidenceRecordMutation) ResetSource() {
	m.source = nil
}

// SetContent sets the "content" field.
func (m *EvidenceRecordMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *EvidenceRecordMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the EvidenceRecord entity.
// If the EvidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRecordMutation) OldContent(ctx context.Context) (v string, err error) {
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
func (m *EvidenceRecordMutation) ResetContent() {
	m.content = nil
}

// SetPhase sets the "phase" field.
func (m *EvidenceRecordMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *EvidenceRecordMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the EvidenceRecord entity.
// If the EvidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRecordMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *EvidenceRecordMutation) ResetPhase() {
	m.phase = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *EvidenceRecordMutation) SetTimestamp(s string) {
	m.timestamp = &s
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EvidenceRecordMutation) Timestamp() (r string, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the EvidenceRecord entity.
// If the EvidenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRecordMutation) OldTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EvidenceRecordMutation) ResetTimestamp() {
	m.timestamp = nil
}

// ClearRun clears the "run" edge to the PRPRun entity.
func (m *EvidenceRecordMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[evidencerecord.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the PRPRun entity was cleared.
func (m *EvidenceRecordMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *EvidenceRecordMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *EvidenceRecordMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the EvidenceRecordMutation builder.
func (m *EvidenceRecordMutation) Where(ps ...predicate.EvidenceRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvidenceRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvidenceRecord).
func (m *EvidenceRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run != nil {
		fields = append(fields, evidencerecord.FieldRunID)
	}
	if m.seq != nil {
		fields = append(fields, evidencerecord.FieldSeq)
	}
	if m._type != nil {
		fields = append(fields, evidencerecord.FieldType)
	}
	if m.source != nil {
		fields = append(fields, evidencerecord.FieldSource)
	}
	if m.content != nil {
		fields = append(fields, evidencerecord.FieldContent)
	}
	if m.phase != nil {
		fields = append(fields, evidencerecord.FieldPhase)
	}
	if m.timestamp != nil {
		fields = append(fields, evidencerecord.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidencerecord.FieldRunID:
		return m.RunID()
	case evidencerecord.FieldSeq:
		return m.Seq()
	case evidencerecord.FieldType:
		return m.GetType()
	case evidencerecord.FieldSource:
		return m.Source()
	case evidencerecord.FieldContent:
		return m.Content()
	case evidencerecord.FieldPhase:
		return m.Phase()
	case evidencerecord.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidencerecord.FieldRunID:
		return m.OldRunID(ctx)
	case evidencerecord.FieldSeq:
		return m.OldSeq(ctx)
	case evidencerecord.FieldType:
		return m.OldType(ctx)
	case evidencerecord.FieldSource:
		return m.OldSource(ctx)
	case evidencerecord.FieldContent:
		return m.OldContent(ctx)
	case evidencerecord.FieldPhase:
		return m.OldPhase(ctx)
	case evidencerecord.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown EvidenceRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidencerecord.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case evidencerecord.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case evidencerecord.FieldType:
		v, ok := value.(evidencerecord.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case evidencerecord.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case evidencerecord.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case evidencerecord.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case evidencerecord.FieldTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown EvidenceRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceRecordMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, evidencerecord.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evidencerecord.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evidencerecord.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown EvidenceRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EvidenceRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceRecordMutation) ResetField(name string) error {
	switch name {
	case evidencerecord.FieldRunID:
		m.ResetRunID()
		return nil
	case evidencerecord.FieldSeq:
		m.ResetSeq()
		return nil
	case evidencerecord.FieldType:
		m.ResetType()
		return nil
	case evidencerecord.FieldSource:
		m.ResetSource()
		return nil
	case evidencerecord.FieldContent:
		m.ResetContent()
		return nil
	case evidencerecord.FieldPhase:
		m.ResetPhase()
		return nil
	case evidencerecord.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown EvidenceRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, evidencerecord.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evidencerecord.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, evidencerecord.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case evidencerecord.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceRecordMutation) ClearEdge(name string) error {
	switch name {
	case evidencerecord.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown EvidenceRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceRecordMutation) ResetEdge(name string) error {
	switch name {
	case evidencerecord.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown EvidenceRecord edge %s", name)
}

// PRPRunMutation represents an operation that mutates the PRPRun nodes in the graph.
type PRPRunMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	blueprint          *string
	phase              *prprun.Phase
	deterministic      *bool
	validation_results *map[string]interface{}
	cerebrum           *map[string]interface{}
	metadata           *map[string]interface{}
	history            *[]interface{}
	appendhistory      []interface{}
	created_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	evidence           map[string]struct{}
	removedevidence    map[string]struct{}
	clearedevidence    bool
	done               bool
	oldValue           func(context.Context) (*PRPRun, error)
	predicates         []predicate.PRPRun
}

var _ ent.Mutation = (*PRPRunMutation)(nil)

// prprunOption allows management of the mutation configuration using functional options.
type prprunOption func(*PRPRunMutation)

// newPRPRunMutation creates new mutation for the PRPRun entity.
func newPRPRunMutation(c config, op Op, opts ...prprunOption) *PRPRunMutation {
	m := &PRPRunMutation{
		config:        c,
		op:            op,
		typ:           TypePRPRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPRPRunID sets the ID field of the mutation.
func withPRPRunID(id string) prprunOption {
	return func(m *PRPRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PRPRun
		)
		m.oldValue = func(ctx context.Context) (*PRPRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PRPRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPRPRun sets the old PRPRun of the mutation.
func withPRPRun(node *PRPRun) prprunOption {
	return func(m *PRPRunMutation) {
		m.oldValue = func(context.Context) (*PRPRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PRPRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PRPRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PRPRun entities.
func (m *PRPRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PRPRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PRPRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PRPRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlueprint sets the "blueprint" field.
func (m *PRPRunMutation) SetBlueprint(s string) {
	m.blueprint = &s
}

// Blueprint returns the value of the "blueprint" field in the mutation.
func (m *PRPRunMutation) Blueprint() (r string, exists bool) {
	v := m.blueprint
	if v == nil {
		return
	}
	return *v, true
}

// OldBlueprint returns the old "blueprint" field's value of the PRPRun entity.
// If the PRPRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRPRunMutation) OldBlueprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlueprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlueprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlueprint: %w", err)
	}
	return oldValue.Blueprint, nil
}

// ResetBlueprint resets all changes to the "blueprint" field.
func (m *PRPRunMutation) ResetBlueprint() {
	m.blueprint = nil
}

// SetPhase sets the "phase" field.
func (m *PRPRunMutation) SetPhase(pr prprun.Phase) {
	m.phase = &pr
}

// Phase returns the value of the "phase" field in the mutation.
func (m *PRPRunMutation) Phase() (r prprun.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the PRPRun entity.
// If the PRPRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRPRunMutation) OldPhase(ctx context.Context) (v prprun.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *PRPRunMutation) ResetPhase() {
	m.phase = nil
}

// SetDeterministic sets the "deterministic" field.
func (m *PRPRunMutation) SetDeterministic(b bool) {
	m.deterministic = &b
}

// Deterministic returns the value of the "deterministic" field in the mutation.
func (m *PRPRunMutation) Deterministic() (r bool, exists bool) {
	v := m.deterministic
	if v == nil {
		return
	}
	return *v, true
}

// OldDeterministic returns the old "deterministic" field's value of the PRPRun entity.
// If the PRPRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRPRunMutation) OldDeterministic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeterministic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeterministic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeterministic: %w", err)
	}
	return oldValue.Deterministic, nil
}

// ResetDeterministic resets all changes to the "deterministic" field.
func (m *PRPRunMutation) ResetDeterministic() {
	m.deterministic = nil
}

// SetValidationResults sets the "validation_results" field.
func (m *PRPRunMutation) SetValidationResults(value map[string]interface{}) {
	m.validation_results = &value
}

// ValidationResults returns the value of the "validation_results" field in the mutation.
func (m *PRPRunMutation) ValidationResults() (r map[string]interface{}, exists bool) {
	v := m.validation_results
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationResults returns the old "validation_results" field's value of the PRPRun entity.
// If the PRPRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRPRunMutation) OldValidationResults(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationResults: %w", err)
	}
	return oldValue.ValidationResults, nil
}

// ClearValidationResults clears the value of the "validation_results" field.
func (m *PRPRunMutation) ClearValidationResults() {
	m.validation_results = nil
	m.clearedFields[prprun.FieldValidationResults] = struct{}{}
}

// ValidationResultsCleared returns if the "validation_results" field was cleared in this mutation.
func (m *PRPRunMutation) ValidationResultsCleared() bool {
	_, ok := m.clearedFields[prprun.FieldValidationResults]
	return ok
}

// ResetValidationResults resets all changes to the "validation_results" field.
func (m *PRPRunMutation) ResetValidationResults() {
	m.validation_results = nil
	delete(m.clearedFields, prprun.FieldValidationResults)
}

// SetCerebrum sets the "cerebrum" field.
func (m *PRPRunMutation) SetCerebrum(value map[string]interface{}) {
	m.cerebrum = &value
}

// Cerebrum returns the value of the "cerebrum" field in the mutation.
func (m *PRPRunMutation) Cerebrum() (r map[string]interface{}, exists bool) {
	v := m.cerebrum
	if v == nil {
		return
	}
	return *v, true
}

// OldCerebrum returns the old "cerebrum" field's value of the PRPRun entity.
// If the PRPRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRPRunMutation) OldCerebrum(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCerebrum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCerebrum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCerebrum: %w", err)
	}
	return oldValue.Cerebrum, nil
}

// ClearCerebrum clears the value of the "cerebrum" field.
func (m *PRPRunMutation) ClearCerebrum() {
	m.cerebrum = nil
	m.clearedFields[prprun.FieldCerebrum] = struct{}{}
}

// CerebrumCleared returns if the "cerebrum" field was cleared in this mutation.
func (m *PRPRunMutation) CerebrumCleared() bool {
	_, ok := m.clearedFields[prprun.FieldCerebrum]
	return ok
}

// ResetCerebrum resets all changes to the "cerebrum" field.
func (m *PRPRunMutation) ResetCerebrum() {
	m.cerebrum = nil
	delete(m.clearedFields, prprun.FieldCerebrum)
}

// SetMetadata sets the "metadata" field.
func (m *PRPRunMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *PRPRunMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the PRPRun entity.
// If the PRPRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRPRunMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *PRPRunMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[prprun.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *PRPRunMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[prprun.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *PRPRunMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, prprun.FieldMetadata)
}

// SetHistory sets the "history" field.
func (m *PRPRunMutation) SetHistory(i []interface{}) {
	m.history = &i
	m.appendhistory = nil
}

// History returns the value of the "history" field in the mutation.
func (m *PRPRunMutation) History() (r []interface{}, exists bool) {
	v := m.history
	if v == nil {
		return
	}
	return *v, true
}

// OldHistory returns the old "history" field's value of the PRPRun entity.
// If the PRPRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRPRunMutation) OldHistory(ctx context.Context) (v []interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistory: %w", err)
	}
	return oldValue.History, nil
}

// AppendHistory adds i to the "history" field.
func (m *PRPRunMutation) AppendHistory(i []interface{}) {
	m.appendhistory = append(m.appendhistory, i...)
}

// AppendedHistory returns the list of values that were appended to the "history" field in this mutation.
func (m *PRPRunMutation) AppendedHistory() ([]interface{}, bool) {
	if len(m.appendhistory) == 0 {
		return nil, false
	}
	return m.appendhistory, true
}

// ResetHistory resets all changes to the "history" field.
func (m *PRPRunMutation) ResetHistory() {
	m.history = nil
	m.appendhistory = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PRPRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PRPRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PRPRun entity.
// If the PRPRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRPRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PRPRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PRPRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PRPRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PRPRun entity.
// If the PRPRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PRPRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *PRPRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[prprun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PRPRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[prprun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PRPRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, prprun.FieldCompletedAt)
}

// AddEvidenceIDs adds the "evidence" edge to the EvidenceRecord entity by ids.
func (m *PRPRunMutation) AddEvidenceIDs(ids ...string) {
	if m.evidence == nil {
		m.evidence = make(map[string]struct{})
	}
	for i := range ids {
		m.evidence[ids[i]] = struct{}{}
	}
}

// ClearEvidence clears the "evidence" edge to the EvidenceRecord entity.
func (m *PRPRunMutation) ClearEvidence() {
	m.clearedevidence = true
}

// EvidenceCleared reports if the "evidence" edge to the EvidenceRecord entity was cleared.
func (m *PRPRunMutation) EvidenceCleared() bool {
	return m.clearedevidence
}

// RemoveEvidenceIDs removes the "evidence" edge to the EvidenceRecord entity by IDs.
func (m *PRPRunMutation) RemoveEvidenceIDs(ids ...string) {
	if m.removedevidence == nil {
		m.removedevidence = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evidence, ids[i])
		m.removedevidence[ids[i]] = struct{}{}
	}
}

// RemovedEvidence returns the removed IDs of the "evidence" edge to the EvidenceRecord entity.
func (m *PRPRunMutation) RemovedEvidenceIDs() (ids []string) {
	for id := range m.removedevidence {
		ids = append(ids, id)
	}
	return
}

// EvidenceIDs returns the "evidence" edge IDs in the mutation.
func (m *PRPRunMutation) EvidenceIDs() (ids []string) {
	for id := range m.evidence {
		ids = append(ids, id)
	}
	return
}

// ResetEvidence resets all changes to the "evidence" edge.
func (m *PRPRunMutation) ResetEvidence() {
	m.evidence = nil
	m.clearedevidence = false
	m.removedevidence = nil
}

// Where appends a list predicates to the PRPRunMutation builder.
func (m *PRPRunMutation) Where(ps ...predicate.PRPRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PRPRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PRPRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PRPRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PRPRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PRPRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PRPRun).
func (m *PRPRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PRPRunMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.blueprint != nil {
		fields = append(fields, prprun.FieldBlueprint)
	}
	if m.phase != nil {
		fields = append(fields, prprun.FieldPhase)
	}
	if m.deterministic != nil {
		fields = append(fields, prprun.FieldDeterministic)
	}
	if m.validation_results != nil {
		fields = append(fields, prprun.FieldValidationResults)
	}
	if m.cerebrum != nil {
		fields = append(fields, prprun.FieldCerebrum)
	}
	if m.metadata != nil {
		fields = append(fields, prprun.FieldMetadata)
	}
	if m.history != nil {
		fields = append(fields, prprun.FieldHistory)
	}
	if m.created_at != nil {
		fields = append(fields, prprun.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, prprun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PRPRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prprun.FieldBlueprint:
		return m.Blueprint()
	case prprun.FieldPhase:
		return m.Phase()
	case prprun.FieldDeterministic:
		return m.Deterministic()
	case prprun.FieldValidationResults:
		return m.ValidationResults()
	case prprun.FieldCerebrum:
		return m.Cerebrum()
	case prprun.FieldMetadata:
		return m.Metadata()
	case prprun.FieldHistory:
		return m.History()
	case prprun.FieldCreatedAt:
		return m.CreatedAt()
	case prprun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PRPRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prprun.FieldBlueprint:
		return m.OldBlueprint(ctx)
	case prprun.FieldPhase:
		return m.OldPhase(ctx)
	case prprun.FieldDeterministic:
		return m.OldDeterministic(ctx)
	case prprun.FieldValidationResults:
		return m.OldValidationResults(ctx)
	case prprun.FieldCerebrum:
		return m.OldCerebrum(ctx)
	case prprun.FieldMetadata:
		return m.OldMetadata(ctx)
	case prprun.FieldHistory:
		return m.OldHistory(ctx)
	case prprun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prprun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PRPRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PRPRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prprun.FieldBlueprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlueprint(v)
		return nil
	case prprun.FieldPhase:
		v, ok := value.(prprun.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case prprun.FieldDeterministic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeterministic(v)
		return nil
	case prprun.FieldValidationResults:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationResults(v)
		return nil
	case prprun.FieldCerebrum:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCerebrum(v)
		return nil
	case prprun.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case prprun.FieldHistory:
		v, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistory(v)
		return nil
	case prprun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prprun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PRPRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PRPRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PRPRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PRPRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PRPRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PRPRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prprun.FieldValidationResults) {
		fields = append(fields, prprun.FieldValidationResults)
	}
	if m.FieldCleared(prprun.FieldCerebrum) {
		fields = append(fields, prprun.FieldCerebrum)
	}
	if m.FieldCleared(prprun.FieldMetadata) {
		fields = append(fields, prprun.FieldMetadata)
	}
	if m.FieldCleared(prprun.FieldCompletedAt) {
		fields = append(fields, prprun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PRPRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PRPRunMutation) ClearField(name string) error {
	switch name {
	case prprun.FieldValidationResults:
		m.ClearValidationResults()
		return nil
	case prprun.FieldCerebrum:
		m.ClearCerebrum()
		return nil
	case prprun.FieldMetadata:
		m.ClearMetadata()
		return nil
	case prprun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PRPRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PRPRunMutation) ResetField(name string) error {
	switch name {
	case prprun.FieldBlueprint:
		m.ResetBlueprint()
		return nil
	case prprun.FieldPhase:
		m.ResetPhase()
		return nil
	case prprun.FieldDeterministic:
		m.ResetDeterministic()
		return nil
	case prprun.FieldValidationResults:
		m.ResetValidationResults()
		return nil
	case prprun.FieldCerebrum:
		m.ResetCerebrum()
		return nil
	case prprun.FieldMetadata:
		m.ResetMetadata()
		return nil
	case prprun.FieldHistory:
		m.ResetHistory()
		return nil
	case prprun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prprun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PRPRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PRPRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.evidence != nil {
		edges = append(edges, prprun.EdgeEvidence)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PRPRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case prprun.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.evidence))
		for id := range m.evidence {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PRPRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevidence != nil {
		edges = append(edges, prprun.EdgeEvidence)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PRPRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case prprun.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.removedevidence))
		for id := range m.removedevidence {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PRPRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevidence {
		edges = append(edges, prprun.EdgeEvidence)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PRPRunMutation) EdgeCleared(name string) bool {
	switch name {
	case prprun.EdgeEvidence:
		return m.clearedevidence
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PRPRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PRPRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PRPRunMutation) ResetEdge(name string) error {
	switch name {
	case prprun.EdgeEvidence:
		m.ResetEvidence()
		return nil
	}
	return fmt.Errorf("unknown PRPRun edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	_type          *string
	thread_id      *string
	payload        *map[string]interface{}
	timestamp      *string
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*SessionEvent, error)
	predicates     []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *SessionEventMutation) ResetSessionID() {
	m.session = nil
}

// SetType sets the "type" field.
func (m *SessionEventMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *SessionEventMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *SessionEventMutation) ResetType() {
	m._type = nil
}

// SetThreadID sets the "thread_id" field.
func (m *SessionEventMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *SessionEventMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *SessionEventMutation) ResetThreadID() {
	m.thread_id = nil
}

// SetPayload sets the "payload" field.
func (m *SessionEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *SessionEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
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
func (m *SessionEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[sessionevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *SessionEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *SessionEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, sessionevent.FieldPayload)
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(s string) {
	m.timestamp = &s
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r string, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// ClearSession clears the "session" edge to the WorkflowSession entity.
func (m *SessionEventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessionevent.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the WorkflowSession entity was cleared.
func (m *SessionEventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionEventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionEventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m._type != nil {
		fields = append(fields, sessionevent.FieldType)
	}
	if m.thread_id != nil {
		fields = append(fields, sessionevent.FieldThreadID)
	}
	if m.payload != nil {
		fields = append(fields, sessionevent.FieldPayload)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldType:
		return m.GetType()
	case sessionevent.FieldThreadID:
		return m.ThreadID()
	case sessionevent.FieldPayload:
		return m.Payload()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldType:
		return m.OldType(ctx)
	case sessionevent.FieldThreadID:
		return m.OldThreadID(ctx)
	case sessionevent.FieldPayload:
		return m.OldPayload(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case sessionevent.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case sessionevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionevent.FieldPayload) {
		fields = append(fields, sessionevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	switch name {
	case sessionevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldType:
		m.ResetType()
		return nil
	case sessionevent.FieldThreadID:
		m.ResetThreadID()
		return nil
	case sessionevent.FieldPayload:
		m.ResetPayload()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionevent.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionevent.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionevent.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionevent.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	switch name {
	case sessionevent.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	switch name {
	case sessionevent.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}

// WorkflowSessionMutation represents an operation that mutates the WorkflowSession nodes in the graph.
type WorkflowSessionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	state         *map[string]interface{}
	last_updated  *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	events        map[int]struct{}
	removedevents map[int]struct{}
	clearedevents bool
	done          bool
	oldValue      func(context.Context) (*WorkflowSession, error)
	predicates    []predicate.WorkflowSession
}

var _ ent.Mutation = (*WorkflowSessionMutation)(nil)

// workflowsessionOption allows management of the mutation configuration using functional options.
type workflowsessionOption func(*WorkflowSessionMutation)

// newWorkflowSessionMutation creates new mutation for the WorkflowSession entity.
func newWorkflowSessionMutation(c config, op Op, opts ...workflowsessionOption) *WorkflowSessionMutation {
	m := &WorkflowSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowSessionID sets the ID field of the mutation.
func withWorkflowSessionID(id string) workflowsessionOption {
	return func(m *WorkflowSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowSession
		)
		m.oldValue = func(ctx context.Context) (*WorkflowSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowSession sets the old WorkflowSession of the mutation.
func withWorkflowSession(node *WorkflowSession) workflowsessionOption {
	return func(m *WorkflowSessionMutation) {
		m.oldValue = func(context.Context) (*WorkflowSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowSession entities.
func (m *WorkflowSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetState sets the "state" field.
func (m *WorkflowSessionMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *WorkflowSessionMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the WorkflowSession entity.
// If the WorkflowSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowSessionMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
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

// ResetState resets all changes to the "state" field.
func (m *WorkflowSessionMutation) ResetState() {
	m.state = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *WorkflowSessionMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *WorkflowSessionMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the WorkflowSession entity.
// If the WorkflowSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowSessionMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *WorkflowSessionMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowSession entity.
// If the WorkflowSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WorkflowSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by ids.
func (m *WorkflowSessionMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the SessionEvent entity.
func (m *WorkflowSessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the SessionEvent entity was cleared.
func (m *WorkflowSessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the SessionEvent entity by IDs.
func (m *WorkflowSessionMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the SessionEvent entity.
func (m *WorkflowSessionMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *WorkflowSessionMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *WorkflowSessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the WorkflowSessionMutation builder.
func (m *WorkflowSessionMutation) Where(ps ...predicate.WorkflowSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowSession).
func (m *WorkflowSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowSessionMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.state != nil {
		fields = append(fields, workflowsession.FieldState)
	}
	if m.last_updated != nil {
		fields = append(fields, workflowsession.FieldLastUpdated)
	}
	if m.created_at != nil {
		fields = append(fields, workflowsession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowsession.FieldState:
		return m.State()
	case workflowsession.FieldLastUpdated:
		return m.LastUpdated()
	case workflowsession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowsession.FieldState:
		return m.OldState(ctx)
	case workflowsession.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	case workflowsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowsession.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case workflowsession.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	case workflowsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WorkflowSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowSessionMutation) ResetField(name string) error {
	switch name {
	case workflowsession.FieldState:
		m.ResetState()
		return nil
	case workflowsession.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	case workflowsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.events != nil {
		edges = append(edges, workflowsession.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevents != nil {
		edges = append(edges, workflowsession.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevents {
		edges = append(edges, workflowsession.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowsession.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowSessionMutation) ResetEdge(name string) error {
	switch name {
	case workflowsession.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown WorkflowSession edge %s", name)
}
