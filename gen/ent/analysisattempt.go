// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/knitworks/pattern-analyzer/gen/ent/analysisattempt"
	"github.com/knitworks/pattern-analyzer/gen/ent/usageaccount"
)

// AnalysisAttempt is the model entity for the AnalysisAttempt schema.
type AnalysisAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID uuid.UUID `json:"account_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// FileHash holds the value of the "file_hash" field.
	FileHash string `json:"file_hash,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// Succeeded holds the value of the "succeeded" field.
	Succeeded bool `json:"succeeded,omitempty"`
	// AttemptedAt holds the value of the "attempted_at" field.
	AttemptedAt time.Time `json:"attempted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisAttemptQuery when eager-loading is set.
	Edges        AnalysisAttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisAttemptEdges holds the relations/edges for other nodes in the graph.
type AnalysisAttemptEdges struct {
	// Account holds the value of the account edge.
	Account *UsageAccount `json:"account,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisAttemptEdges) AccountOrErr() (*UsageAccount, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: usageaccount.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisattempt.FieldSucceeded:
			values[i] = new(sql.NullBool)
		case analysisattempt.FieldUserID, analysisattempt.FieldFileHash, analysisattempt.FieldFileName:
			values[i] = new(sql.NullString)
		case analysisattempt.FieldAttemptedAt:
			values[i] = new(sql.NullTime)
		case analysisattempt.FieldID, analysisattempt.FieldAccountID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisAttempt fields.
func (_m *AnalysisAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisattempt.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case analysisattempt.FieldAccountID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value != nil {
				_m.AccountID = *value
			}
		case analysisattempt.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case analysisattempt.FieldFileHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_hash", values[i])
			} else if value.Valid {
				_m.FileHash = value.String
			}
		case analysisattempt.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case analysisattempt.FieldSucceeded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field succeeded", values[i])
			} else if value.Valid {
				_m.Succeeded = value.Bool
			}
		case analysisattempt.FieldAttemptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field attempted_at", values[i])
			} else if value.Valid {
				_m.AttemptedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAccount queries the "account" edge of the AnalysisAttempt entity.
func (_m *AnalysisAttempt) QueryAccount() *UsageAccountQuery {
	return NewAnalysisAttemptClient(_m.config).QueryAccount(_m)
}

// Update returns a builder for updating this AnalysisAttempt.
// Note that you need to call AnalysisAttempt.Unwrap() before calling this method if this AnalysisAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisAttempt) Update() *AnalysisAttemptUpdateOne {
	return NewAnalysisAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisAttempt) Unwrap() *AnalysisAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccountID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("file_hash=")
	builder.WriteString(_m.FileHash)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("succeeded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Succeeded))
	builder.WriteString(", ")
	builder.WriteString("attempted_at=")
	builder.WriteString(_m.AttemptedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisAttempts is a parsable slice of AnalysisAttempt.
type AnalysisAttempts []*AnalysisAttempt
