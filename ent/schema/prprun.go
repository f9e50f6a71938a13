package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// PRPRun holds the schema definition for the PRPRun entity: one row per
// kernel run, including the append-only execution history.
type PRPRun struct {
	ent.Schema
}

// Annotations of the PRPRun.
func (PRPRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "prp_runs"},
	}
}

// Fields of the PRPRun.
func (PRPRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.Text("blueprint"),
		field.Enum("phase").
			Values("strategy", "build", "evaluation", "completed", "recycled"),
		field.Bool("deterministic").
			Default(false),
		field.JSON("validation_results", map[string]interface{}{}).
			Optional(),
		field.JSON("cerebrum", map[string]interface{}{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.JSON("history", []interface{}{}).
			Comment("State snapshots, one per transition"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the PRPRun.
func (PRPRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("evidence", EvidenceRecord.Type),
	}
}
