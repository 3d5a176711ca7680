package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/knitworks/pattern-analyzer/constants"
)

type UsageAccount struct{ ent.Schema }

func (UsageAccount) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "usage_account"},
	}
}

func (UsageAccount) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("user_id").NotEmpty().Unique(),
		field.Int("credits").Default(constants.MonthlyFreeCredits).Min(0),
		field.Time("last_reset_date").Default(time.Now),
		field.Int("ad_rewards_used").Default(0).Min(0),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		// Lifetime statistics; monthly resets never touch these.
		field.Int("total_attempts").Default(0),
		field.Int("success_count").Default(0),
		field.Int("failure_count").Default(0),
	}
}

func (UsageAccount) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("attempts", AnalysisAttempt.Type),
	}
}

func (UsageAccount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_reset_date"),
	}
}
