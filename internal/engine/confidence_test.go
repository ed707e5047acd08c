package engine

import (
	"testing"

	"github.com/dosewise/dosewise/internal/model"
)

func TestScoreConfidenceEmptyRun(t *testing.T) {
	// No items, no constraints: all components default to full marks.
	if got := ScoreConfidence(nil, nil, nil); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestScoreConfidenceProfileCoverage(t *testing.T) {
	p := model.ItemProfile{CanonicalName: "a"}
	items := []model.EnrichedItem{
		{InputItem: model.InputItem{CanonicalName: "a"}, Profile: &p},
		{InputItem: model.InputItem{CanonicalName: "b"}}, // unprofiled
	}

	// coverage 0.5, no constraints: 100*(0.3*0.5 + 0.4 + 0.3) = 85
	if got := ScoreConfidence(items, nil, nil); got != 85 {
		t.Errorf("expected 85, got %d", got)
	}
}

func TestScoreConfidenceRuleQualityAndViolations(t *testing.T) {
	p := model.ItemProfile{CanonicalName: "a"}
	items := []model.EnrichedItem{{InputItem: model.InputItem{CanonicalName: "a"}, Profile: &p}}
	rule := model.InteractionRule{RuleKey: "r", Confidence: 80}
	constraints := []model.AppliedConstraint{
		{Rule: &rule, RuleKey: "r", TargetCanonical: "a"},
		{Rule: &rule, RuleKey: "r", TargetCanonical: "a"},
	}
	placed := []model.ScheduledItem{{CanonicalName: "a", ViolatedRules: []string{"r"}}}

	// coverage 1, avg confidence 0.8, satisfaction 1 - 1/2 = 0.5
	// 100*(0.3 + 0.32 + 0.15) = 77
	if got := ScoreConfidence(items, constraints, placed); got != 77 {
		t.Errorf("expected 77, got %d", got)
	}
}

func TestScoreConfidenceBounded(t *testing.T) {
	rule := model.InteractionRule{RuleKey: "r", Confidence: 0}
	constraints := []model.AppliedConstraint{{Rule: &rule, RuleKey: "r", TargetCanonical: "a"}}
	placed := []model.ScheduledItem{{CanonicalName: "a", ViolatedRules: []string{"r"}}}
	items := []model.EnrichedItem{{InputItem: model.InputItem{CanonicalName: "a"}}}

	got := ScoreConfidence(items, constraints, placed)
	if got < 0 || got > 100 {
		t.Errorf("score %d out of [0,100]", got)
	}
}
