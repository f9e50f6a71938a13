package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent holds the schema definition for the SessionEvent entity:
// one row per entry in a session's append-only event log.
type SessionEvent struct {
	ent.Schema
}

// Annotations of the SessionEvent.
func (SessionEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "session_events"},
	}
}

// Fields of the SessionEvent.
func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id"),
		field.String("type").
			Comment("Event type, e.g. plan-created, step-completed"),
		field.String("thread_id"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.String("timestamp").
			Comment("ISO-8601 emission time, preserved verbatim for replay"),
	}
}

// Edges of the SessionEvent.
func (SessionEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", WorkflowSession.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the SessionEvent.
func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
