// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisAttemptColumns holds the columns for the "analysis_attempt" table.
	AnalysisAttemptColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "file_hash", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "succeeded", Type: field.TypeBool, Default: false},
		{Name: "attempted_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeUUID},
	}
	// AnalysisAttemptTable holds the schema information for the "analysis_attempt" table.
	AnalysisAttemptTable = &schema.Table{
		Name:       "analysis_attempt",
		Columns:    AnalysisAttemptColumns,
		PrimaryKey: []*schema.Column{AnalysisAttemptColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_attempt_usage_account_attempts",
				Columns:    []*schema.Column{AnalysisAttemptColumns[6]},
				RefColumns: []*schema.Column{UsageAccountColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysisattempt_user_id_attempted_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisAttemptColumns[1], AnalysisAttemptColumns[5]},
			},
			{
				Name:    "analysisattempt_attempted_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisAttemptColumns[5]},
			},
		},
	}
	// UsageAccountColumns holds the columns for the "usage_account" table.
	UsageAccountColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "credits", Type: field.TypeInt, Default: 10},
		{Name: "last_reset_date", Type: field.TypeTime},
		{Name: "ad_rewards_used", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "success_count", Type: field.TypeInt, Default: 0},
		{Name: "failure_count", Type: field.TypeInt, Default: 0},
	}
	// UsageAccountTable holds the schema information for the "usage_account" table.
	UsageAccountTable = &schema.Table{
		Name:       "usage_account",
		Columns:    UsageAccountColumns,
		PrimaryKey: []*schema.Column{UsageAccountColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usageaccount_last_reset_date",
				Unique:  false,
				Columns: []*schema.Column{UsageAccountColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisAttemptTable,
		UsageAccountTable,
	}
)

func init() {
	AnalysisAttemptTable.ForeignKeys[0].RefTable = UsageAccountTable
	AnalysisAttemptTable.Annotation = &entsql.Annotation{
		Table: "analysis_attempt",
	}
	UsageAccountTable.Annotation = &entsql.Annotation{
		Table: "usage_account",
	}
}
