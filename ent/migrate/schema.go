// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EvidenceRecordsColumns holds the columns for the "evidence_records" table.
	EvidenceRecordsColumns = []*schema.Column{
		{Name: "evidence_id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"test", "analysis", "validation"}},
		{Name: "source", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "phase", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString},
	}
	// EvidenceRecordsTable holds the schema information for the "evidence_records" table.
	EvidenceRecordsTable = &schema.Table{
		Name:       "evidence_records",
		Columns:    EvidenceRecordsColumns,
		PrimaryKey: []*schema.Column{EvidenceRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evidence_records_prp_runs_evidence",
				Columns:    []*schema.Column{EvidenceRecordsColumns[7]},
				RefColumns: []*schema.Column{PrpRunsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evidencerecord_run_id_seq",
				Unique:  false,
				Columns: []*schema.Column{EvidenceRecordsColumns[7], EvidenceRecordsColumns[1]},
			},
		},
	}
	// PrpRunsColumns holds the columns for the "prp_runs" table.
	PrpRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "blueprint", Type: field.TypeString, Size: 2147483647},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"strategy", "build", "evaluation", "completed", "recycled"}},
		{Name: "deterministic", Type: field.TypeBool, Default: false},
		{Name: "validation_results", Type: field.TypeJSON, Nullable: true},
		{Name: "cerebrum", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "history", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// PrpRunsTable holds the schema information for the "prp_runs" table.
	PrpRunsTable = &schema.Table{
		Name:       "prp_runs",
		Columns:    PrpRunsColumns,
		PrimaryKey: []*schema.Column{PrpRunsColumns[0]},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeString},
		{Name: "thread_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_events_workflow_sessions_events",
				Columns:    []*schema.Column{SessionEventsColumns[5]},
				RefColumns: []*schema.Column{WorkflowSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// WorkflowSessionsColumns holds the columns for the "workflow_sessions" table.
	WorkflowSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeJSON},
		{Name: "last_updated", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WorkflowSessionsTable holds the schema information for the "workflow_sessions" table.
	WorkflowSessionsTable = &schema.Table{
		Name:       "workflow_sessions",
		Columns:    WorkflowSessionsColumns,
		PrimaryKey: []*schema.Column{WorkflowSessionsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EvidenceRecordsTable,
		PrpRunsTable,
		SessionEventsTable,
		WorkflowSessionsTable,
	}
)

func init() {
	EvidenceRecordsTable.ForeignKeys[0].RefTable = PrpRunsTable
	EvidenceRecordsTable.Annotation = &entsql.Annotation{
		Table: "evidence_records",
	}
	PrpRunsTable.Annotation = &entsql.Annotation{
		Table: "prp_runs",
	}
	SessionEventsTable.ForeignKeys[0].RefTable = WorkflowSessionsTable
	SessionEventsTable.Annotation = &entsql.Annotation{
		Table: "session_events",
	}
	WorkflowSessionsTable.Annotation = &entsql.Annotation{
		Table: "workflow_sessions",
	}
}
