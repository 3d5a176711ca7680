// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/knitworks/pattern-analyzer/gen/ent/usageaccount"
)

// UsageAccount is the model entity for the UsageAccount schema.
type UsageAccount struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Credits holds the value of the "credits" field.
	Credits int `json:"credits,omitempty"`
	// LastResetDate holds the value of the "last_reset_date" field.
	LastResetDate time.Time `json:"last_reset_date,omitempty"`
	// AdRewardsUsed holds the value of the "ad_rewards_used" field.
	AdRewardsUsed int `json:"ad_rewards_used,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int `json:"total_attempts,omitempty"`
	// SuccessCount holds the value of the "success_count" field.
	SuccessCount int `json:"success_count,omitempty"`
	// FailureCount holds the value of the "failure_count" field.
	FailureCount int `json:"failure_count,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UsageAccountQuery when eager-loading is set.
	Edges        UsageAccountEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UsageAccountEdges holds the relations/edges for other nodes in the graph.
type UsageAccountEdges struct {
	// Attempts holds the value of the attempts edge.
	Attempts []*AnalysisAttempt `json:"attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AttemptsOrErr returns the Attempts value or an error if the edge
// was not loaded in eager-loading.
func (e UsageAccountEdges) AttemptsOrErr() ([]*AnalysisAttempt, error) {
	if e.loadedTypes[0] {
		return e.Attempts, nil
	}
	return nil, &NotLoadedError{edge: "attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UsageAccount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usageaccount.FieldCredits, usageaccount.FieldAdRewardsUsed, usageaccount.FieldTotalAttempts, usageaccount.FieldSuccessCount, usageaccount.FieldFailureCount:
			values[i] = new(sql.NullInt64)
		case usageaccount.FieldUserID:
			values[i] = new(sql.NullString)
		case usageaccount.FieldLastResetDate, usageaccount.FieldCreatedAt, usageaccount.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case usageaccount.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UsageAccount fields.
func (_m *UsageAccount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usageaccount.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case usageaccount.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case usageaccount.FieldCredits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field credits", values[i])
			} else if value.Valid {
				_m.Credits = int(value.Int64)
			}
		case usageaccount.FieldLastResetDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reset_date", values[i])
			} else if value.Valid {
				_m.LastResetDate = value.Time
			}
		case usageaccount.FieldAdRewardsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ad_rewards_used", values[i])
			} else if value.Valid {
				_m.AdRewardsUsed = int(value.Int64)
			}
		case usageaccount.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case usageaccount.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case usageaccount.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case usageaccount.FieldSuccessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field success_count", values[i])
			} else if value.Valid {
				_m.SuccessCount = int(value.Int64)
			}
		case usageaccount.FieldFailureCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failure_count", values[i])
			} else if value.Valid {
				_m.FailureCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UsageAccount.
// This includes values selected through modifiers, order, etc.
func (_m *UsageAccount) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAttempts queries the "attempts" edge of the UsageAccount entity.
func (_m *UsageAccount) QueryAttempts() *AnalysisAttemptQuery {
	return NewUsageAccountClient(_m.config).QueryAttempts(_m)
}

// Update returns a builder for updating this UsageAccount.
// Note that you need to call UsageAccount.Unwrap() before calling this method if this UsageAccount
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UsageAccount) Update() *UsageAccountUpdateOne {
	return NewUsageAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UsageAccount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UsageAccount) Unwrap() *UsageAccount {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UsageAccount is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UsageAccount) String() string {
	var builder strings.Builder
	builder.WriteString("UsageAccount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("credits=")
	builder.WriteString(fmt.Sprintf("%v", _m.Credits))
	builder.WriteString(", ")
	builder.WriteString("last_reset_date=")
	builder.WriteString(_m.LastResetDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ad_rewards_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdRewardsUsed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("success_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessCount))
	builder.WriteString(", ")
	builder.WriteString("failure_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailureCount))
	builder.WriteByte(')')
	return builder.String()
}

// UsageAccounts is a parsable slice of UsageAccount.
type UsageAccounts []*UsageAccount
