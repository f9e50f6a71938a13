// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EvidenceRecord is the predicate function for evidencerecord builders.
type EvidenceRecord func(*sql.Selector)

// PRPRun is the predicate function for prprun builders.
type PRPRun func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// WorkflowSession is the predicate function for workflowsession builders.
type WorkflowSession func(*sql.Selector)
