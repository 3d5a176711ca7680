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
)

type AnalysisAttempt struct{ ent.Schema }

func (AnalysisAttempt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analysis_attempt"},
	}
}

func (AnalysisAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("account_id", uuid.UUID{}),
		field.String("user_id").NotEmpty(),
		field.String("file_hash").NotEmpty(),
		field.String("file_name"),
		field.Bool("succeeded").Default(false),
		field.Time("attempted_at").Default(time.Now).Immutable(),
	}
}

func (AnalysisAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", UsageAccount.Type).
			Ref("attempts").
			Field("account_id").
			Unique().
			Required(),
	}
}

func (AnalysisAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "attempted_at"),
		index.Fields("attempted_at"),
	}
}
