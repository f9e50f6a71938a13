package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// WorkflowSession holds the schema definition for the WorkflowSession entity.
// One row per session ID, carrying the full session-state document.
type WorkflowSession struct {
	ent.Schema
}

// Annotations of the WorkflowSession.
func (WorkflowSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "workflow_sessions"},
	}
}

// Fields of the WorkflowSession.
func (WorkflowSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.JSON("state", map[string]interface{}{}).
			Comment("Session state document: steps, facts, reasoning"),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WorkflowSession.
func (WorkflowSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", SessionEvent.Type),
	}
}
