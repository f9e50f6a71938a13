package models

// Thought is one element of a reasoning trace: the planner's rationale for
// a single step, in decomposition order.
type Thought struct {
	Step       int    `json:"step"`
	Capability string `json:"capability"`
	WorkerName string `json:"worker_name"`
	Rationale  string `json:"rationale"`
}

// ReasoningPath is one candidate step ordering in a tree-of-thought trace,
// scored relative to the other candidates.
type ReasoningPath struct {
	Ordering []string `json:"ordering"`
	Score    float64  `json:"score"`
	Chosen   bool     `json:"chosen"`
}

// Reasoning is the structured record of how the planner decomposed a goal.
// Retained for audit alongside the plan.
type Reasoning struct {
	Strategy        PlanningStrategy   `json:"strategy"`
	Thoughts        []Thought          `json:"thoughts"`
	Paths           []ReasoningPath    `json:"paths,omitempty"`
	VendorWeighting map[string]float64 `json:"vendor_weighting,omitempty"`
}

// Plan binds a goal to an ordered step list, the retrieved session context,
// and the reasoning trace. Created once per prepare; len(Steps) always
// equals len(Goal.RequiredCapabilities).
type Plan struct {
	Goal             Goal         `json:"goal"`
	Steps            []StepRecord `json:"steps"`
	RetrievedContext []Document   `json:"retrieved_context,omitempty"`
	Reasoning        *Reasoning   `json:"reasoning,omitempty"`
}

// ExecutionResult is the outcome of a full prepare → run cycle.
type ExecutionResult struct {
	Goal      Goal         `json:"goal"`
	Steps     []StepRecord `json:"steps"`
	Context   []Document   `json:"context,omitempty"`
	Reasoning *Reasoning   `json:"reasoning,omitempty"`
}
