package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvidenceRecord holds the schema definition for the EvidenceRecord entity.
// Rows are append-only: no field is ever updated after insert.
type EvidenceRecord struct {
	ent.Schema
}

// Annotations of the EvidenceRecord.
func (EvidenceRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "evidence_records"},
	}
}

// Fields of the EvidenceRecord.
func (EvidenceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evidence_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("seq").
			Immutable().
			Comment("Position within the run's evidence list"),
		field.Enum("type").
			Values("test", "analysis", "validation").
			Immutable(),
		field.String("source").
			Immutable().
			Comment("Validator that produced the record"),
		field.Text("content").
			Immutable().
			Comment("JSON-encoded validator report"),
		field.String("phase").
			Immutable(),
		field.String("timestamp").
			Immutable(),
	}
}

// Edges of the EvidenceRecord.
func (EvidenceRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", PRPRun.Type).
			Ref("evidence").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EvidenceRecord.
func (EvidenceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "seq"),
	}
}
