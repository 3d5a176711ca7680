// Code generated by ent, DO NOT EDIT.

package usageaccount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the usageaccount type in the database.
	Label = "usage_account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCredits holds the string denoting the credits field in the database.
	FieldCredits = "credits"
	// FieldLastResetDate holds the string denoting the last_reset_date field in the database.
	FieldLastResetDate = "last_reset_date"
	// FieldAdRewardsUsed holds the string denoting the ad_rewards_used field in the database.
	FieldAdRewardsUsed = "ad_rewards_used"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldSuccessCount holds the string denoting the success_count field in the database.
	FieldSuccessCount = "success_count"
	// FieldFailureCount holds the string denoting the failure_count field in the database.
	FieldFailureCount = "failure_count"
	// EdgeAttempts holds the string denoting the attempts edge name in mutations.
	EdgeAttempts = "attempts"
	// Table holds the table name of the usageaccount in the database.
	Table = "usage_account"
	// AttemptsTable is the table that holds the attempts relation/edge.
	AttemptsTable = "analysis_attempt"
	// AttemptsInverseTable is the table name for the AnalysisAttempt entity.
	// It exists in this package in order to avoid circular dependency with the "analysisattempt" package.
	AttemptsInverseTable = "analysis_attempt"
	// AttemptsColumn is the table column denoting the attempts relation/edge.
	AttemptsColumn = "account_id"
)

// Columns holds all SQL columns for usageaccount fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCredits,
	FieldLastResetDate,
	FieldAdRewardsUsed,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTotalAttempts,
	FieldSuccessCount,
	FieldFailureCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultCredits holds the default value on creation for the "credits" field.
	DefaultCredits int
	// CreditsValidator is a validator for the "credits" field. It is called by the builders before save.
	CreditsValidator func(int) error
	// DefaultLastResetDate holds the default value on creation for the "last_reset_date" field.
	DefaultLastResetDate func() time.Time
	// DefaultAdRewardsUsed holds the default value on creation for the "ad_rewards_used" field.
	DefaultAdRewardsUsed int
	// AdRewardsUsedValidator is a validator for the "ad_rewards_used" field. It is called by the builders before save.
	AdRewardsUsedValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// DefaultSuccessCount holds the default value on creation for the "success_count" field.
	DefaultSuccessCount int
	// DefaultFailureCount holds the default value on creation for the "failure_count" field.
	DefaultFailureCount int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the UsageAccount queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCredits orders the results by the credits field.
func ByCredits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCredits, opts...).ToFunc()
}

// ByLastResetDate orders the results by the last_reset_date field.
func ByLastResetDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastResetDate, opts...).ToFunc()
}

// ByAdRewardsUsed orders the results by the ad_rewards_used field.
func ByAdRewardsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdRewardsUsed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// BySuccessCount orders the results by the success_count field.
func BySuccessCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessCount, opts...).ToFunc()
}

// ByFailureCount orders the results by the failure_count field.
func ByFailureCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureCount, opts...).ToFunc()
}

// ByAttemptsCount orders the results by attempts count.
func ByAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttemptsStep(), opts...)
	}
}

// ByAttempts orders the results by attempts terms.
func ByAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
	)
}
