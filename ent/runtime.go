// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/loom-agents/loom/ent/prprun"
	"github.com/loom-agents/loom/ent/schema"
	"github.com/loom-agents/loom/ent/workflowsession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	prprunFields := schema.PRPRun{}.Fields()
	_ = prprunFields
	// prprunDescDeterministic is the schema descriptor for deterministic field.
	prprunDescDeterministic := prprunFields[3].Descriptor()
	// prprun.DefaultDeterministic holds the default value on creation for the deterministic field.
	prprun.DefaultDeterministic = prprunDescDeterministic.Default.(bool)
	// prprunDescCreatedAt is the schema descriptor for created_at field.
	prprunDescCreatedAt := prprunFields[8].Descriptor()
	// prprun.DefaultCreatedAt holds the default value on creation for the created_at field.
	prprun.DefaultCreatedAt = prprunDescCreatedAt.Default.(func() time.Time)
	workflowsessionFields := schema.WorkflowSession{}.Fields()
	_ = workflowsessionFields
	// workflowsessionDescLastUpdated is the schema descriptor for last_updated field.
	workflowsessionDescLastUpdated := workflowsessionFields[2].Descriptor()
	// workflowsession.DefaultLastUpdated holds the default value on creation for the last_updated field.
	workflowsession.DefaultLastUpdated = workflowsessionDescLastUpdated.Default.(func() time.Time)
	// workflowsession.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	workflowsession.UpdateDefaultLastUpdated = workflowsessionDescLastUpdated.UpdateDefault.(func() time.Time)
	// workflowsessionDescCreatedAt is the schema descriptor for created_at field.
	workflowsessionDescCreatedAt := workflowsessionFields[3].Descriptor()
	// workflowsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowsession.DefaultCreatedAt = workflowsessionDescCreatedAt.Default.(func() time.Time)
}
