package engine

import "github.com/dosewise/dosewise/internal/model"

// BuildConstraints matches every active rule against every enriched item
// (and, for rules with a conflict predicate, every pair of items) and
// returns the flat list of applied constraints.
//
// Quadratic over items by design: runs see tens of items, not thousands.
func BuildConstraints(items []model.EnrichedItem, rules []model.InteractionRule) []model.AppliedConstraint {
	var applied []model.AppliedConstraint

	for r := range rules {
		rule := &rules[r]
		for i := range items {
			item := &items[i]
			if !ruleApplies(rule, item) {
				continue
			}

			if !rule.HasConflictPredicate() {
				applied = append(applied, model.AppliedConstraint{
					Rule:            rule,
					RuleKey:         rule.RuleKey,
					Constraint:      rule.Constraint,
					TargetCanonical: item.CanonicalName,
				})
				continue
			}

			for j := range items {
				if j == i {
					continue
				}
				other := &items[j]
				if !conflicts(rule, other) {
					continue
				}
				applied = append(applied, model.AppliedConstraint{
					Rule:            rule,
					RuleKey:         rule.RuleKey,
					Constraint:      rule.Constraint,
					TargetCanonical: item.CanonicalName,
					OtherCanonical:  other.CanonicalName,
				})
			}
		}
	}
	return applied
}

// ruleApplies reports whether the rule targets this item: by exact canonical
// name, or because the item carries every required tag. A rule with both
// lists empty applies to nothing.
func ruleApplies(rule *model.InteractionRule, item *model.EnrichedItem) bool {
	for _, name := range rule.AppliesTo {
		if name == item.CanonicalName {
			return true
		}
	}
	if len(rule.AppliesToTags) == 0 {
		return false
	}
	for _, tag := range rule.AppliesToTags {
		if !item.HasTag(tag) {
			return false
		}
	}
	return true
}

// conflicts reports whether the other item trips the rule's conflict
// predicate: name in the conflict list, or any tag overlap.
func conflicts(rule *model.InteractionRule, other *model.EnrichedItem) bool {
	for _, name := range rule.ConflictsWith {
		if name == other.CanonicalName {
			return true
		}
	}
	for _, tag := range rule.ConflictsWithTags {
		if other.HasTag(tag) {
			return true
		}
	}
	return false
}
