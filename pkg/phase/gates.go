package phase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/loom-agents/loom/pkg/models"
)

// Gate thresholds for the evaluation phase.
const (
	coverageThreshold   = 80.0
	accessibilityBudget = 90.0
	performanceBudget   = 85.0
	securityBudget      = 80.0
	readinessEvidence   = 5
	majorsLimit         = 3
	minBlueprintBytes   = 16
)

var tddCommitPattern = regexp.MustCompile(`(?i)\b(test|tdd|red|green|refactor)\b`)

// TDDGate verifies test-driven practice: at least one test file, a passing
// run, coverage at or above the threshold, and observable TDD evidence in
// either test output or commit messages. Every shortfall is a blocker.
func TDDGate() Validator {
	return Validator{
		Name: "tdd-gate",
		Type: models.EvidenceTypeTest,
		Run: func(_ context.Context, in Input, _ *models.PRPState) (Report, error) {
			tests := in.Artifacts.Tests
			report := Report{Detail: map[string]any{
				"test_files": len(tests.Files),
				"failing":    tests.Failing,
				"coverage":   tests.Coverage,
			}}
			if len(tests.Files) == 0 {
				report.Blockers = append(report.Blockers, "no test files present")
			}
			if tests.Failing > 0 {
				report.Blockers = append(report.Blockers,
					fmt.Sprintf("%d tests failing", tests.Failing))
			}
			if tests.Coverage < coverageThreshold {
				report.Blockers = append(report.Blockers, fmt.Sprintf(
					"coverage %.1f%% below %.0f%% threshold",
					tests.Coverage, coverageThreshold))
			}
			if !hasTDDEvidence(in.Artifacts) {
				report.Blockers = append(report.Blockers,
					"no observable TDD evidence in test output or commits")
			}
			return report, nil
		},
	}
}

func hasTDDEvidence(a Artifacts) bool {
	if len(a.Tests.Output) > 0 {
		return true
	}
	for _, msg := range a.Commits {
		if tddCommitPattern.MatchString(msg) {
			return true
		}
	}
	return false
}

// ReviewGate lifts code-review findings into the phase verdict: review
// blockers become blockers, review majors become majors.
func ReviewGate() Validator {
	return Validator{
		Name: "review-gate",
		Type: models.EvidenceTypeAnalysis,
		Run: func(_ context.Context, in Input, _ *models.PRPState) (Report, error) {
			review := in.Artifacts.Review
			return Report{
				Blockers: append([]string(nil), review.Blockers...),
				Majors:   append([]string(nil), review.Majors...),
				Detail: map[string]any{
					"review_blockers": len(review.Blockers),
					"review_majors":   len(review.Majors),
				},
			}, nil
		},
	}
}

// BudgetGate enforces the quality budgets. Accessibility and performance
// shortfalls are majors; a security shortfall is a blocker.
func BudgetGate() Validator {
	return Validator{
		Name: "budget-gate",
		Type: models.EvidenceTypeValidation,
		Run: func(_ context.Context, in Input, _ *models.PRPState) (Report, error) {
			scores := in.Artifacts.Budgets
			report := Report{Detail: map[string]any{
				"accessibility": scores.Accessibility,
				"performance":   scores.Performance,
				"security":      scores.Security,
			}}
			if scores.Accessibility < accessibilityBudget {
				report.Majors = append(report.Majors, fmt.Sprintf(
					"accessibility %.0f below budget %.0f",
					scores.Accessibility, accessibilityBudget))
			}
			if scores.Performance < performanceBudget {
				report.Majors = append(report.Majors, fmt.Sprintf(
					"performance %.0f below budget %.0f",
					scores.Performance, performanceBudget))
			}
			if scores.Security < securityBudget {
				report.Blockers = append(report.Blockers, fmt.Sprintf(
					"security %.0f below budget %.0f",
					scores.Security, securityBudget))
			}
			return report, nil
		},
	}
}

// ReadinessGate is the pre-promotion check: every prior phase must have
// passed and the run must carry enough evidence to justify promotion.
func ReadinessGate() Validator {
	return Validator{
		Name: "readiness-gate",
		Type: models.EvidenceTypeValidation,
		Run: func(_ context.Context, _ Input, state *models.PRPState) (Report, error) {
			report := Report{Detail: map[string]any{
				"evidence_count": len(state.Evidence),
			}}
			for _, prior := range []models.Phase{models.PhaseStrategy, models.PhaseBuild} {
				verdict, ok := state.ValidationResults[prior]
				if !ok || !verdict.Passed {
					report.Blockers = append(report.Blockers,
						fmt.Sprintf("phase %s did not pass", prior))
				}
			}
			if len(state.Evidence) < readinessEvidence {
				report.Blockers = append(report.Blockers, fmt.Sprintf(
					"only %d evidence records, %d required",
					len(state.Evidence), readinessEvidence))
			}
			return report, nil
		},
	}
}
