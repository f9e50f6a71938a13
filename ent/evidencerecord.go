// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loom-agents/loom/ent/evidencerecord"
	"github.com/loom-agents/loom/ent/prprun"
)

// EvidenceRecord is the model entity for the EvidenceRecord schema.
type EvidenceRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Position within the run's evidence list
	Seq int `json:"seq,omitempty"`
	// Type holds the value of the "type" field.
	Type evidencerecord.Type `json:"type,omitempty"`
	// Validator that produced the record
	Source string `json:"source,omitempty"`
	// JSON-encoded validator report
	Content string `json:"content,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase string `json:"phase,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp string `json:"timestamp,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvidenceRecordQuery when eager-loading is set.
	Edges        EvidenceRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvidenceRecordEdges holds the relations/edges for other nodes in the graph.
type EvidenceRecordEdges struct {
	// Run holds the value of the run edge.
	Run *PRPRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvidenceRecordEdges) RunOrErr() (*PRPRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: prprun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvidenceRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evidencerecord.FieldSeq:
			values[i] = new(sql.NullInt64)
		case evidencerecord.FieldID, evidencerecord.FieldRunID, evidencerecord.FieldType, evidencerecord.FieldSource, evidencerecord.FieldContent, evidencerecord.FieldPhase, evidencerecord.FieldTimestamp:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvidenceRecord fields.
func (_m *EvidenceRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evidencerecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evidencerecord.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case evidencerecord.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case evidencerecord.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = evidencerecord.Type(value.String)
			}
		case evidencerecord.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case evidencerecord.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case evidencerecord.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case evidencerecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvidenceRecord.
// This includes values selected through modifiers, order, etc.
func (_m *EvidenceRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the EvidenceRecord entity.
func (_m *EvidenceRecord) QueryRun() *PRPRunQuery {
	return NewEvidenceRecordClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this EvidenceRecord.
// Note that you need to call EvidenceRecord.Unwrap() before calling this method if this EvidenceRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvidenceRecord) Update() *EvidenceRecordUpdateOne {
	return NewEvidenceRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvidenceRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvidenceRecord) Unwrap() *EvidenceRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvidenceRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvidenceRecord) String() string {
	var builder strings.Builder
	builder.WriteString("EvidenceRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp)
	builder.WriteByte(')')
	return builder.String()
}

// EvidenceRecords is a parsable slice of EvidenceRecord.
type EvidenceRecords []*EvidenceRecord
