package engine

import (
	"math"

	"github.com/dosewise/dosewise/internal/model"
)

// Blend weights for the overall confidence score. A heuristic for relative
// ranking across runs, not a calibrated probability.
const (
	weightCoverage     = 0.3
	weightRuleQuality  = 0.4
	weightSatisfaction = 0.3
)

// ScoreConfidence combines profile coverage, average rule confidence, and
// constraint satisfaction rate into one 0-100 integer.
func ScoreConfidence(items []model.EnrichedItem, constraints []model.AppliedConstraint, placed []model.ScheduledItem) int {
	coverage := 1.0
	if len(items) > 0 {
		profiled := 0
		for i := range items {
			if items[i].Profile != nil {
				profiled++
			}
		}
		coverage = float64(profiled) / float64(len(items))
	}

	ruleQuality := 1.0
	if len(constraints) > 0 {
		sum := 0
		for i := range constraints {
			sum += constraints[i].Rule.Confidence
		}
		ruleQuality = float64(sum) / float64(len(constraints)) / 100.0
	}

	violated := 0
	for i := range placed {
		violated += len(placed[i].ViolatedRules)
	}
	satisfaction := 1.0 - float64(violated)/math.Max(1, float64(len(constraints)))

	score := 100 * (weightCoverage*coverage + weightRuleQuality*ruleQuality + weightSatisfaction*satisfaction)
	return int(math.Round(score))
}
