package engine

import (
	"testing"

	"github.com/dosewise/dosewise/internal/model"
)

func enrich(t *testing.T, profiles []model.ItemProfile, names ...string) []model.EnrichedItem {
	t.Helper()
	items := make([]model.InputItem, 0, len(names))
	for _, n := range names {
		items = append(items, model.InputItem{CanonicalName: n})
	}
	return AttachProfiles(items, profiles)
}

func TestBuildConstraintsByName(t *testing.T) {
	rules := []model.InteractionRule{{
		RuleKey:    "levo-empty",
		AppliesTo:  []string{"levothyroxine"},
		Constraint: model.EmptyStomach{BufferMinutes: 60},
		Severity:   model.SeverityHard,
		Active:     true,
	}}
	items := enrich(t, nil, "levothyroxine", "vitamin-c")

	applied := BuildConstraints(items, rules)
	if len(applied) != 1 {
		t.Fatalf("expected 1 constraint, got %d", len(applied))
	}
	if applied[0].TargetCanonical != "levothyroxine" {
		t.Errorf("expected target levothyroxine, got %s", applied[0].TargetCanonical)
	}
	if applied[0].OtherCanonical != "" {
		t.Errorf("expected no other item, got %s", applied[0].OtherCanonical)
	}
}

func TestBuildConstraintsByTagSuperset(t *testing.T) {
	profiles := []model.ItemProfile{
		{CanonicalName: "a", Tags: []string{"X", "Y"}},
		{CanonicalName: "b", Tags: []string{"X"}},
	}
	rules := []model.InteractionRule{{
		RuleKey:       "needs-both",
		AppliesToTags: []string{"X", "Y"},
		Constraint:    model.WithFood{},
		Severity:      model.SeveritySoft,
		Active:        true,
	}}

	applied := BuildConstraints(enrich(t, profiles, "a", "b"), rules)
	if len(applied) != 1 {
		t.Fatalf("expected 1 constraint (only the full superset matches), got %d", len(applied))
	}
	if applied[0].TargetCanonical != "a" {
		t.Errorf("expected target a, got %s", applied[0].TargetCanonical)
	}
}

func TestBuildConstraintsPairExpansion(t *testing.T) {
	profiles := []model.ItemProfile{
		{CanonicalName: "iron-supplement", Tags: []string{model.TagIron}},
		{CanonicalName: "calcium-supplement", Tags: []string{model.TagDivalentCation}},
		{CanonicalName: "magnesium-glycinate", Tags: []string{model.TagDivalentCation}},
	}
	rules := []model.InteractionRule{{
		RuleKey:           "iron-divalent",
		AppliesToTags:     []string{model.TagIron},
		ConflictsWithTags: []string{model.TagDivalentCation},
		Constraint:        model.MinSeparation{Minutes: 120},
		Severity:          model.SeveritySoft,
		Active:            true,
	}}

	applied := BuildConstraints(enrich(t, profiles, "iron-supplement", "calcium-supplement", "magnesium-glycinate"), rules)
	// One constraint per conflicting other item.
	if len(applied) != 2 {
		t.Fatalf("expected 2 constraints, got %d", len(applied))
	}
	others := map[string]bool{}
	for _, a := range applied {
		if a.TargetCanonical != "iron-supplement" {
			t.Errorf("expected target iron-supplement, got %s", a.TargetCanonical)
		}
		others[a.OtherCanonical] = true
	}
	if !others["calcium-supplement"] || !others["magnesium-glycinate"] {
		t.Errorf("expected both divalent others, got %v", others)
	}
}

func TestBuildConstraintsConflictByName(t *testing.T) {
	rules := []model.InteractionRule{{
		RuleKey:       "a-vs-b",
		AppliesTo:     []string{"a"},
		ConflictsWith: []string{"b"},
		Constraint:    model.MinSeparation{Minutes: 60},
		Severity:      model.SeverityHard,
		Active:        true,
	}}

	applied := BuildConstraints(enrich(t, nil, "a", "b", "c"), rules)
	if len(applied) != 1 {
		t.Fatalf("expected 1 constraint, got %d", len(applied))
	}
	if applied[0].OtherCanonical != "b" {
		t.Errorf("expected other b, got %s", applied[0].OtherCanonical)
	}
}

func TestBuildConstraintsConflictPredicateWithNoMatchYieldsNothing(t *testing.T) {
	rules := []model.InteractionRule{{
		RuleKey:           "iron-divalent",
		AppliesToTags:     []string{model.TagIron},
		ConflictsWithTags: []string{model.TagDivalentCation},
		Constraint:        model.MinSeparation{Minutes: 120},
		Severity:          model.SeveritySoft,
		Active:            true,
	}}
	profiles := []model.ItemProfile{{CanonicalName: "iron-supplement", Tags: []string{model.TagIron}}}

	applied := BuildConstraints(enrich(t, profiles, "iron-supplement"), rules)
	if len(applied) != 0 {
		t.Errorf("expected no constraints without a conflicting item, got %d", len(applied))
	}
}

func TestBuildConstraintsEmptyApplicabilityMatchesNothing(t *testing.T) {
	// A rule with neither a name list nor a tag list is unreachable.
	rules := []model.InteractionRule{{
		RuleKey:    "orphan",
		Constraint: model.WithFood{},
		Severity:   model.SeveritySoft,
		Active:     true,
	}}

	applied := BuildConstraints(enrich(t, nil, "a", "b"), rules)
	if len(applied) != 0 {
		t.Errorf("expected orphan rule to match nothing, got %d constraints", len(applied))
	}
}
