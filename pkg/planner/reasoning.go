package planner

import (
	"fmt"
	"math"

	"github.com/loom-agents/loom/pkg/models"
)

// treeOfThoughtThreshold is the step count above which the planner switches
// to tree-of-thought even when the goal asked for a chain.
const treeOfThoughtThreshold = 3

// Scores assigned to the candidate orderings in a tree-of-thought trace.
const (
	primaryPathScore     = 0.7
	alternativePathScore = 0.5
)

// vendorModelWeights maps known providers to their raw model weighting.
// Raw weights are re-normalised to sum 1.0 before they are attached.
var vendorModelWeights = map[string]map[string]float64{
	"anthropic": {
		"claude-3-5-sonnet": 0.62,
		"claude-3-5-haiku":  0.38,
	},
	"openai": {
		"gpt-4o":      0.70,
		"gpt-4o-mini": 0.30,
	},
	"google": {
		"gemini-1.5-pro":   0.65,
		"gemini-1.5-flash": 0.35,
	},
}

// buildReasoning computes the reasoning trace for a prepared step list.
// Tree-of-thought is used when the goal asks for it or the step count
// exceeds the threshold; otherwise a linear chain is produced.
func buildReasoning(goal models.Goal, steps []models.StepRecord) *models.Reasoning {
	useTree := goal.Strategy == models.StrategyTreeOfThought ||
		len(steps) > treeOfThoughtThreshold

	reasoning := &models.Reasoning{
		Thoughts: make([]models.Thought, 0, len(steps)),
	}

	if useTree {
		reasoning.Strategy = models.StrategyTreeOfThought
		for i, step := range steps {
			reasoning.Thoughts = append(reasoning.Thoughts, models.Thought{
				Step:       i + 1,
				Capability: step.Capability,
				WorkerName: step.WorkerName,
				Rationale: fmt.Sprintf("branch %d: explore %q via worker %q",
					i+1, step.Capability, step.WorkerName),
			})
		}
		reasoning.Paths = buildPaths(steps)
	} else {
		reasoning.Strategy = models.StrategyChainOfThought
		for i, step := range steps {
			reasoning.Thoughts = append(reasoning.Thoughts, models.Thought{
				Step:       i + 1,
				Capability: step.Capability,
				WorkerName: step.WorkerName,
				Rationale: fmt.Sprintf("step %d: run %q via worker %q",
					i+1, step.Capability, step.WorkerName),
			})
		}
	}

	if provider, ok := goal.Input["provider"].(string); ok {
		if weights, known := vendorModelWeights[provider]; known {
			reasoning.VendorWeighting = normaliseWeights(weights)
		}
	}

	return reasoning
}

// buildPaths returns the primary ordering plus the reversed alternative.
// The alternative is omitted when it equals the primary (single step, or a
// palindromic capability sequence).
func buildPaths(steps []models.StepRecord) []models.ReasoningPath {
	primary := make([]string, len(steps))
	for i, step := range steps {
		primary[i] = step.Capability
	}

	reversed := make([]string, len(primary))
	for i, cap := range primary {
		reversed[len(primary)-1-i] = cap
	}

	paths := []models.ReasoningPath{
		{Ordering: primary, Score: primaryPathScore, Chosen: true},
	}
	if !equalOrdering(primary, reversed) {
		paths = append(paths, models.ReasoningPath{
			Ordering: reversed, Score: alternativePathScore,
		})
	}
	return paths
}

func equalOrdering(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// normaliseWeights rescales raw weights to sum 1.0, rounding each entry to
// four decimal places.
func normaliseWeights(raw map[string]float64) map[string]float64 {
	var sum float64
	for _, w := range raw {
		sum += w
	}
	if sum <= 0 {
		return nil
	}
	out := make(map[string]float64, len(raw))
	for model, w := range raw {
		out[model] = math.Round(w/sum*10000) / 10000
	}
	return out
}
