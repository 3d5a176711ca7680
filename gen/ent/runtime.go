// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/knitworks/pattern-analyzer/db/ent/schema"
	"github.com/knitworks/pattern-analyzer/gen/ent/analysisattempt"
	"github.com/knitworks/pattern-analyzer/gen/ent/usageaccount"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisattemptFields := schema.AnalysisAttempt{}.Fields()
	_ = analysisattemptFields
	// analysisattemptDescUserID is the schema descriptor for user_id field.
	analysisattemptDescUserID := analysisattemptFields[2].Descriptor()
	// analysisattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	analysisattempt.UserIDValidator = analysisattemptDescUserID.Validators[0].(func(string) error)
	// analysisattemptDescFileHash is the schema descriptor for file_hash field.
	analysisattemptDescFileHash := analysisattemptFields[3].Descriptor()
	// analysisattempt.FileHashValidator is a validator for the "file_hash" field. It is called by the builders before save.
	analysisattempt.FileHashValidator = analysisattemptDescFileHash.Validators[0].(func(string) error)
	// analysisattemptDescSucceeded is the schema descriptor for succeeded field.
	analysisattemptDescSucceeded := analysisattemptFields[5].Descriptor()
	// analysisattempt.DefaultSucceeded holds the default value on creation for the succeeded field.
	analysisattempt.DefaultSucceeded = analysisattemptDescSucceeded.Default.(bool)
	// analysisattemptDescAttemptedAt is the schema descriptor for attempted_at field.
	analysisattemptDescAttemptedAt := analysisattemptFields[6].Descriptor()
	// analysisattempt.DefaultAttemptedAt holds the default value on creation for the attempted_at field.
	analysisattempt.DefaultAttemptedAt = analysisattemptDescAttemptedAt.Default.(func() time.Time)
	// analysisattemptDescID is the schema descriptor for id field.
	analysisattemptDescID := analysisattemptFields[0].Descriptor()
	// analysisattempt.DefaultID holds the default value on creation for the id field.
	analysisattempt.DefaultID = analysisattemptDescID.Default.(func() uuid.UUID)
	usageaccountFields := schema.UsageAccount{}.Fields()
	_ = usageaccountFields
	// usageaccountDescUserID is the schema descriptor for user_id field.
	usageaccountDescUserID := usageaccountFields[1].Descriptor()
	// usageaccount.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	usageaccount.UserIDValidator = usageaccountDescUserID.Validators[0].(func(string) error)
	// usageaccountDescCredits is the schema descriptor for credits field.
	usageaccountDescCredits := usageaccountFields[2].Descriptor()
	// usageaccount.DefaultCredits holds the default value on creation for the credits field.
	usageaccount.DefaultCredits = usageaccountDescCredits.Default.(int)
	// usageaccount.CreditsValidator is a validator for the "credits" field. It is called by the builders before save.
	usageaccount.CreditsValidator = usageaccountDescCredits.Validators[0].(func(int) error)
	// usageaccountDescLastResetDate is the schema descriptor for last_reset_date field.
	usageaccountDescLastResetDate := usageaccountFields[3].Descriptor()
	// usageaccount.DefaultLastResetDate holds the default value on creation for the last_reset_date field.
	usageaccount.DefaultLastResetDate = usageaccountDescLastResetDate.Default.(func() time.Time)
	// usageaccountDescAdRewardsUsed is the schema descriptor for ad_rewards_used field.
	usageaccountDescAdRewardsUsed := usageaccountFields[4].Descriptor()
	// usageaccount.DefaultAdRewardsUsed holds the default value on creation for the ad_rewards_used field.
	usageaccount.DefaultAdRewardsUsed = usageaccountDescAdRewardsUsed.Default.(int)
	// usageaccount.AdRewardsUsedValidator is a validator for the "ad_rewards_used" field. It is called by the builders before save.
	usageaccount.AdRewardsUsedValidator = usageaccountDescAdRewardsUsed.Validators[0].(func(int) error)
	// usageaccountDescCreatedAt is the schema descriptor for created_at field.
	usageaccountDescCreatedAt := usageaccountFields[5].Descriptor()
	// usageaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	usageaccount.DefaultCreatedAt = usageaccountDescCreatedAt.Default.(func() time.Time)
	// usageaccountDescUpdatedAt is the schema descriptor for updated_at field.
	usageaccountDescUpdatedAt := usageaccountFields[6].Descriptor()
	// usageaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usageaccount.DefaultUpdatedAt = usageaccountDescUpdatedAt.Default.(func() time.Time)
	// usageaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usageaccount.UpdateDefaultUpdatedAt = usageaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usageaccountDescTotalAttempts is the schema descriptor for total_attempts field.
	usageaccountDescTotalAttempts := usageaccountFields[7].Descriptor()
	// usageaccount.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	usageaccount.DefaultTotalAttempts = usageaccountDescTotalAttempts.Default.(int)
	// usageaccountDescSuccessCount is the schema descriptor for success_count field.
	usageaccountDescSuccessCount := usageaccountFields[8].Descriptor()
	// usageaccount.DefaultSuccessCount holds the default value on creation for the success_count field.
	usageaccount.DefaultSuccessCount = usageaccountDescSuccessCount.Default.(int)
	// usageaccountDescFailureCount is the schema descriptor for failure_count field.
	usageaccountDescFailureCount := usageaccountFields[9].Descriptor()
	// usageaccount.DefaultFailureCount holds the default value on creation for the failure_count field.
	usageaccount.DefaultFailureCount = usageaccountDescFailureCount.Default.(int)
	// usageaccountDescID is the schema descriptor for id field.
	usageaccountDescID := usageaccountFields[0].Descriptor()
	// usageaccount.DefaultID holds the default value on creation for the id field.
	usageaccount.DefaultID = usageaccountDescID.Default.(func() uuid.UUID)
}
