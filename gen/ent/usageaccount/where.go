// Code generated by ent, DO NOT EDIT.

package usageaccount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/knitworks/pattern-analyzer/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldUserID, v))
}

// Credits applies equality check predicate on the "credits" field. It's identical to CreditsEQ.
func Credits(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldCredits, v))
}

// LastResetDate applies equality check predicate on the "last_reset_date" field. It's identical to LastResetDateEQ.
func LastResetDate(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldLastResetDate, v))
}

// AdRewardsUsed applies equality check predicate on the "ad_rewards_used" field. It's identical to AdRewardsUsedEQ.
func AdRewardsUsed(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldAdRewardsUsed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldTotalAttempts, v))
}

// SuccessCount applies equality check predicate on the "success_count" field. It's identical to SuccessCountEQ.
func SuccessCount(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldSuccessCount, v))
}

// FailureCount applies equality check predicate on the "failure_count" field. It's identical to FailureCountEQ.
func FailureCount(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldFailureCount, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldContainsFold(FieldUserID, v))
}

// CreditsEQ applies the EQ predicate on the "credits" field.
func CreditsEQ(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldCredits, v))
}

// CreditsNEQ applies the NEQ predicate on the "credits" field.
func CreditsNEQ(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNEQ(FieldCredits, v))
}

// CreditsIn applies the In predicate on the "credits" field.
func CreditsIn(vs ...int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldIn(FieldCredits, vs...))
}

// CreditsNotIn applies the NotIn predicate on the "credits" field.
func CreditsNotIn(vs ...int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNotIn(FieldCredits, vs...))
}

// CreditsGT applies the GT predicate on the "credits" field.
func CreditsGT(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGT(FieldCredits, v))
}

// CreditsGTE applies the GTE predicate on the "credits" field.
func CreditsGTE(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGTE(FieldCredits, v))
}

// CreditsLT applies the LT predicate on the "credits" field.
func CreditsLT(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLT(FieldCredits, v))
}

// CreditsLTE applies the LTE predicate on the "credits" field.
func CreditsLTE(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLTE(FieldCredits, v))
}

// LastResetDateEQ applies the EQ predicate on the "last_reset_date" field.
func LastResetDateEQ(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldLastResetDate, v))
}

// LastResetDateNEQ applies the NEQ predicate on the "last_reset_date" field.
func LastResetDateNEQ(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNEQ(FieldLastResetDate, v))
}

// LastResetDateIn applies the In predicate on the "last_reset_date" field.
func LastResetDateIn(vs ...time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldIn(FieldLastResetDate, vs...))
}

// LastResetDateNotIn applies the NotIn predicate on the "last_reset_date" field.
func LastResetDateNotIn(vs ...time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNotIn(FieldLastResetDate, vs...))
}

// LastResetDateGT applies the GT predicate on the "last_reset_date" field.
func LastResetDateGT(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGT(FieldLastResetDate, v))
}

// LastResetDateGTE applies the GTE predicate on the "last_reset_date" field.
func LastResetDateGTE(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGTE(FieldLastResetDate, v))
}

// LastResetDateLT applies the LT predicate on the "last_reset_date" field.
func LastResetDateLT(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLT(FieldLastResetDate, v))
}

// LastResetDateLTE applies the LTE predicate on the "last_reset_date" field.
func LastResetDateLTE(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLTE(FieldLastResetDate, v))
}

// AdRewardsUsedEQ applies the EQ predicate on the "ad_rewards_used" field.
func AdRewardsUsedEQ(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldAdRewardsUsed, v))
}

// AdRewardsUsedNEQ applies the NEQ predicate on the "ad_rewards_used" field.
func AdRewardsUsedNEQ(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNEQ(FieldAdRewardsUsed, v))
}

// AdRewardsUsedIn applies the In predicate on the "ad_rewards_used" field.
func AdRewardsUsedIn(vs ...int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldIn(FieldAdRewardsUsed, vs...))
}

// AdRewardsUsedNotIn applies the NotIn predicate on the "ad_rewards_used" field.
func AdRewardsUsedNotIn(vs ...int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNotIn(FieldAdRewardsUsed, vs...))
}

// AdRewardsUsedGT applies the GT predicate on the "ad_rewards_used" field.
func AdRewardsUsedGT(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGT(FieldAdRewardsUsed, v))
}

// AdRewardsUsedGTE applies the GTE predicate on the "ad_rewards_used" field.
func AdRewardsUsedGTE(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGTE(FieldAdRewardsUsed, v))
}

// AdRewardsUsedLT applies the LT predicate on the "ad_rewards_used" field.
func AdRewardsUsedLT(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLT(FieldAdRewardsUsed, v))
}

// AdRewardsUsedLTE applies the LTE predicate on the "ad_rewards_used" field.
func AdRewardsUsedLTE(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLTE(FieldAdRewardsUsed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLTE(FieldUpdatedAt, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLTE(FieldTotalAttempts, v))
}

// SuccessCountEQ applies the EQ predicate on the "success_count" field.
func SuccessCountEQ(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldSuccessCount, v))
}

// SuccessCountNEQ applies the NEQ predicate on the "success_count" field.
func SuccessCountNEQ(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNEQ(FieldSuccessCount, v))
}

// SuccessCountIn applies the In predicate on the "success_count" field.
func SuccessCountIn(vs ...int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldIn(FieldSuccessCount, vs...))
}

// SuccessCountNotIn applies the NotIn predicate on the "success_count" field.
func SuccessCountNotIn(vs ...int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNotIn(FieldSuccessCount, vs...))
}

// SuccessCountGT applies the GT predicate on the "success_count" field.
func SuccessCountGT(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGT(FieldSuccessCount, v))
}

// SuccessCountGTE applies the GTE predicate on the "success_count" field.
func SuccessCountGTE(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGTE(FieldSuccessCount, v))
}

// SuccessCountLT applies the LT predicate on the "success_count" field.
func SuccessCountLT(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLT(FieldSuccessCount, v))
}

// SuccessCountLTE applies the LTE predicate on the "success_count" field.
func SuccessCountLTE(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLTE(FieldSuccessCount, v))
}

// FailureCountEQ applies the EQ predicate on the "failure_count" field.
func FailureCountEQ(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldEQ(FieldFailureCount, v))
}

// FailureCountNEQ applies the NEQ predicate on the "failure_count" field.
func FailureCountNEQ(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNEQ(FieldFailureCount, v))
}

// FailureCountIn applies the In predicate on the "failure_count" field.
func FailureCountIn(vs ...int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldIn(FieldFailureCount, vs...))
}

// FailureCountNotIn applies the NotIn predicate on the "failure_count" field.
func FailureCountNotIn(vs ...int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldNotIn(FieldFailureCount, vs...))
}

// FailureCountGT applies the GT predicate on the "failure_count" field.
func FailureCountGT(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGT(FieldFailureCount, v))
}

// FailureCountGTE applies the GTE predicate on the "failure_count" field.
func FailureCountGTE(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldGTE(FieldFailureCount, v))
}

// FailureCountLT applies the LT predicate on the "failure_count" field.
func FailureCountLT(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLT(FieldFailureCount, v))
}

// FailureCountLTE applies the LTE predicate on the "failure_count" field.
func FailureCountLTE(v int) predicate.UsageAccount {
	return predicate.UsageAccount(sql.FieldLTE(FieldFailureCount, v))
}

// HasAttempts applies the HasEdge predicate on the "attempts" edge.
func HasAttempts() predicate.UsageAccount {
	return predicate.UsageAccount(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptsWith applies the HasEdge predicate on the "attempts" edge with a given conditions (other predicates).
func HasAttemptsWith(preds ...predicate.AnalysisAttempt) predicate.UsageAccount {
	return predicate.UsageAccount(func(s *sql.Selector) {
		step := newAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageAccount) predicate.UsageAccount {
	return predicate.UsageAccount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageAccount) predicate.UsageAccount {
	return predicate.UsageAccount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageAccount) predicate.UsageAccount {
	return predicate.UsageAccount(sql.NotPredicates(p))
}
