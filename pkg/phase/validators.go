package phase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/loom-agents/loom/pkg/models"
)

// Artifacts carries the inputs validators inspect: test results, commit
// history, review findings, and budget scores. Validators never execute
// linters or test runners themselves; they judge the structured output of
// black-box commands that already ran.
type Artifacts struct {
	Tests   TestReport   `json:"tests"`
	Commits []string     `json:"commits,omitempty"`
	Review  ReviewReport `json:"review"`
	Budgets BudgetScores `json:"budgets"`
}

// TestReport summarises a test run over the blueprint's workspace.
type TestReport struct {
	// Files lists the test files found in the workspace.
	Files []string `json:"files,omitempty"`
	// Failing is the count of failing tests. Zero means the run passed.
	Failing int `json:"failing"`
	// Coverage is the statement coverage percentage.
	Coverage float64 `json:"coverage"`
	// Output holds the raw test-run output lines.
	Output []string `json:"output,omitempty"`
}

// ReviewReport carries the findings of a code review pass.
type ReviewReport struct {
	Blockers []string `json:"blockers,omitempty"`
	Majors   []string `json:"majors,omitempty"`
}

// BudgetScores are the quality-budget measurements, each on a 0-100 scale.
type BudgetScores struct {
	Accessibility float64 `json:"accessibility"`
	Performance   float64 `json:"performance"`
	Security      float64 `json:"security"`
}

// Input is what a validator receives for one run.
type Input struct {
	Blueprint string
	Artifacts Artifacts
}

// Report is a validator's finding. Blockers and majors roll up into the
// phase verdict; Detail is serialised into the evidence record.
type Report struct {
	Blockers []string       `json:"blockers,omitempty"`
	Majors   []string       `json:"majors,omitempty"`
	Detail   map[string]any `json:"detail,omitempty"`
}

// Validator checks one aspect of a run during a phase. A returned error is
// captured as a ValidatorFailure blocker; the phase keeps running so every
// validator still leaves evidence behind.
type Validator struct {
	Name string
	Type models.EvidenceType
	Run  func(ctx context.Context, in Input, state *models.PRPState) (Report, error)
}

// BlueprintAnalysis is the default strategy-phase validator. It rejects
// blueprints that cannot drive a build.
func BlueprintAnalysis() Validator {
	return Validator{
		Name: "blueprint-analysis",
		Type: models.EvidenceTypeAnalysis,
		Run: func(_ context.Context, in Input, _ *models.PRPState) (Report, error) {
			report := Report{Detail: map[string]any{
				"blueprint_bytes": len(in.Blueprint),
				"structured":      json.Valid([]byte(in.Blueprint)),
			}}
			if len(in.Blueprint) < minBlueprintBytes {
				report.Majors = append(report.Majors,
					"blueprint lacks actionable detail")
			}
			return report, nil
		},
	}
}

// BuildVerification is the default build-phase validator: the workspace
// must have produced a clean test run before evaluation starts.
func BuildVerification() Validator {
	return Validator{
		Name: "build-verification",
		Type: models.EvidenceTypeValidation,
		Run: func(_ context.Context, in Input, _ *models.PRPState) (Report, error) {
			report := Report{Detail: map[string]any{
				"test_files":    len(in.Artifacts.Tests.Files),
				"failing_tests": in.Artifacts.Tests.Failing,
			}}
			if in.Artifacts.Tests.Failing > 0 {
				report.Blockers = append(report.Blockers, fmt.Sprintf(
					"build has %d failing tests", in.Artifacts.Tests.Failing))
			}
			return report, nil
		},
	}
}
