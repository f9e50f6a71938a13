// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loom-agents/loom/ent/prprun"
)

// PRPRun is the model entity for the PRPRun schema.
type PRPRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Blueprint holds the value of the "blueprint" field.
	Blueprint string `json:"blueprint,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase prprun.Phase `json:"phase,omitempty"`
	// Deterministic holds the value of the "deterministic" field.
	Deterministic bool `json:"deterministic,omitempty"`
	// ValidationResults holds the value of the "validation_results" field.
	ValidationResults map[string]interface{} `json:"validation_results,omitempty"`
	// Cerebrum holds the value of the "cerebrum" field.
	Cerebrum map[string]interface{} `json:"cerebrum,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// State snapshots, one per transition
	History []interface{} `json:"history,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PRPRunQuery when eager-loading is set.
	Edges        PRPRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PRPRunEdges holds the relations/edges for other nodes in the graph.
type PRPRunEdges struct {
	// Evidence holds the value of the evidence edge.
	Evidence []*EvidenceRecord `json:"evidence,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EvidenceOrErr returns the Evidence value or an error if the edge
// was not loaded in eager-loading.
func (e PRPRunEdges) EvidenceOrErr() ([]*EvidenceRecord, error) {
	if e.loadedTypes[0] {
		return e.Evidence, nil
	}
	return nil, &NotLoadedError{edge: "evidence"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PRPRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prprun.FieldValidationResults, prprun.FieldCerebrum, prprun.FieldMetadata, prprun.FieldHistory:
			values[i] = new([]byte)
		case prprun.FieldDeterministic:
			values[i] = new(sql.NullBool)
		case prprun.FieldID, prprun.FieldBlueprint, prprun.FieldPhase:
			values[i] = new(sql.NullString)
		case prprun.FieldCreatedAt, prprun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PRPRun fields.
func (_m *PRPRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prprun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case prprun.FieldBlueprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blueprint", values[i])
			} else if value.Valid {
				_m.Blueprint = value.String
			}
		case prprun.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = prprun.Phase(value.String)
			}
		case prprun.FieldDeterministic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deterministic", values[i])
			} else if value.Valid {
				_m.Deterministic = value.Bool
			}
		case prprun.FieldValidationResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidationResults); err != nil {
					return fmt.Errorf("unmarshal field validation_results: %w", err)
				}
			}
		case prprun.FieldCerebrum:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cerebrum", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Cerebrum); err != nil {
					return fmt.Errorf("unmarshal field cerebrum: %w", err)
				}
			}
		case prprun.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case prprun.FieldHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.History); err != nil {
					return fmt.Errorf("unmarshal field history: %w", err)
				}
			}
		case prprun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case prprun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PRPRun.
// This includes values selected through modifiers, order, etc.
func (_m *PRPRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvidence queries the "evidence" edge of the PRPRun entity.
func (_m *PRPRun) QueryEvidence() *EvidenceRecordQuery {
	return NewPRPRunClient(_m.config).QueryEvidence(_m)
}

// Update returns a builder for updating this PRPRun.
// Note that you need to call PRPRun.Unwrap() before calling this method if this PRPRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PRPRun) Update() *PRPRunUpdateOne {
	return NewPRPRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PRPRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PRPRun) Unwrap() *PRPRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PRPRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PRPRun) String() string {
	var builder strings.Builder
	builder.WriteString("PRPRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("blueprint=")
	builder.WriteString(_m.Blueprint)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("deterministic=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deterministic))
	builder.WriteString(", ")
	builder.WriteString("validation_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationResults))
	builder.WriteString(", ")
	builder.WriteString("cerebrum=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cerebrum))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("history=")
	builder.WriteString(fmt.Sprintf("%v", _m.History))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PRPRuns is a parsable slice of PRPRun.
type PRPRuns []*PRPRun
