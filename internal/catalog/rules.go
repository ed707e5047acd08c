package catalog

import "github.com/dosewise/dosewise/internal/model"

// builtinRules is the bundled interaction rule set. Rules are versioned and
// read-only; callers union their own rules with these per run.
var builtinRules = []model.InteractionRule{
	{
		RuleKey:    "levothyroxine-empty-stomach",
		Version:    2,
		AppliesTo:  []string{"levothyroxine"},
		Constraint: model.EmptyStomach{BufferMinutes: 60},
		Severity:   model.SeverityHard,
		Confidence: 95,
		Rationale:  "Food, especially fiber and soy, reduces levothyroxine absorption substantially.",
		References: []string{"ATA hypothyroidism guidelines 2014"},
		Active:     true,
	},
	{
		RuleKey:           "levothyroxine-divalent-cation-separation",
		Version:           2,
		AppliesTo:         []string{"levothyroxine"},
		ConflictsWithTags: []string{model.TagDivalentCation, model.TagIron},
		Constraint:        model.MinSeparation{Minutes: 240},
		Severity:          model.SeverityHard,
		Confidence:        95,
		Rationale:         "Calcium, magnesium, zinc and iron chelate levothyroxine in the gut.",
		References:        []string{"Thyroid 2011;21(5):483-6"},
		Active:            true,
	},
	{
		RuleKey:           "iron-divalent-cation-separation",
		Version:           1,
		AppliesToTags:     []string{model.TagIron},
		ConflictsWithTags: []string{model.TagDivalentCation},
		Constraint:        model.MinSeparation{Minutes: 120},
		Severity:          model.SeveritySoft,
		Confidence:        85,
		Rationale:         "Calcium and other divalent cations compete with iron for absorption.",
		Active:            true,
	},
	{
		RuleKey:           "iron-stimulant-separation",
		Version:           1,
		AppliesToTags:     []string{model.TagIron},
		ConflictsWithTags: []string{model.TagStimulant},
		Constraint:        model.MinSeparation{Minutes: 60},
		Severity:          model.SeveritySoft,
		Confidence:        70,
		Rationale:         "Polyphenols in coffee and tea inhibit non-heme iron absorption.",
		Active:            true,
	},
	{
		RuleKey:       "stimulant-afternoon-cutoff",
		Version:       1,
		AppliesToTags: []string{model.TagStimulant},
		Constraint:    model.AvoidAfter{After: model.MustTimeOfDay("14:00")},
		Severity:      model.SeveritySoft,
		Confidence:    80,
		Rationale:     "Caffeine taken within 6 hours of bedtime disrupts sleep.",
		References:    []string{"J Clin Sleep Med 2013;9(11):1195-200"},
		Active:        true,
	},
	{
		RuleKey:       "fat-soluble-with-food",
		Version:       1,
		AppliesToTags: []string{model.TagFatSoluble},
		Constraint:    model.WithFood{},
		Severity:      model.SeveritySoft,
		Confidence:    85,
		Rationale:     "Fat-soluble vitamins absorb best alongside dietary fat.",
		Active:        true,
	},
	{
		RuleKey:    "metformin-with-food",
		Version:    1,
		AppliesTo:  []string{"metformin"},
		Constraint: model.WithFood{},
		Severity:   model.SeverityHard,
		Confidence: 90,
		Rationale:  "Taking metformin with meals reduces gastrointestinal side effects.",
		Active:     true,
	},
	{
		RuleKey:       "sleep-aid-evening-only",
		Version:       1,
		AppliesToTags: []string{model.TagSleepAid},
		Constraint:    model.Advisory{Message: "Take sleep aids 30-60 minutes before intended bedtime, not earlier in the day."},
		Severity:      model.SeveritySoft,
		Confidence:    75,
		Active:        true,
	},
	{
		RuleKey:    "zinc-copper-depletion",
		Version:    1,
		AppliesTo:  []string{"zinc-supplement"},
		Constraint: model.Advisory{Message: "Long-term zinc supplementation above 40 mg/day can deplete copper stores."},
		Severity:   model.SeveritySoft,
		Confidence: 60,
		Active:     true,
	},
	{
		RuleKey:       "ssri-morning-preference",
		Version:       1,
		AppliesToTags: []string{model.TagSSRI},
		Constraint:    model.AvoidAfter{After: model.MustTimeOfDay("12:00")},
		Severity:      model.SeveritySoft,
		Confidence:    65,
		Rationale:     "Activating SSRIs taken late in the day can interfere with sleep for some people.",
		Active:        true,
	},
	{
		RuleKey:           "sedative-stack-caution",
		Version:           1,
		AppliesToTags:     []string{model.TagSleepAid},
		ConflictsWithTags: []string{model.TagAdaptogen},
		Constraint:        model.Advisory{Message: "Combining sleep aids with sedating adaptogens may be additive; start low."},
		Severity:          model.SeveritySoft,
		Confidence:        55,
		Active:            true,
	},
	{
		// Retired in favor of iron-divalent-cation-separation; kept for
		// audit trails that reference the old key.
		RuleKey:       "iron-calcium-separation",
		Version:       3,
		AppliesTo:     []string{"iron-supplement"},
		ConflictsWith: []string{"calcium-supplement"},
		Constraint:    model.MinSeparation{Minutes: 120},
		Severity:      model.SeveritySoft,
		Confidence:    85,
		Active:        false,
	},
}

// Rules returns a copy of the built-in rule set, including inactive rules.
func Rules() []model.InteractionRule {
	out := make([]model.InteractionRule, len(builtinRules))
	copy(out, builtinRules)
	return out
}

// RuleByKey returns the built-in rule with the given key, or nil.
func RuleByKey(key string) *model.InteractionRule {
	for i := range builtinRules {
		if builtinRules[i].RuleKey == key {
			r := builtinRules[i]
			return &r
		}
	}
	return nil
}

// ActiveRules returns the built-in rules with Active set, unioned with any
// caller-supplied extras (also filtered to active). Built-ins come first so
// output ordering stays stable across runs.
func ActiveRules(extra []model.InteractionRule) []model.InteractionRule {
	var out []model.InteractionRule
	for _, r := range builtinRules {
		if r.Active {
			out = append(out, r)
		}
	}
	for _, r := range extra {
		if r.Active {
			out = append(out, r)
		}
	}
	return out
}
