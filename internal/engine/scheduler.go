package engine

import (
	"fmt"
	"sort"

	"github.com/dosewise/dosewise/internal/model"
)

// placement is the mutable working record for one item during scheduling.
type placement struct {
	item      *model.EnrichedItem
	time      model.TimeOfDay
	withFood  bool
	notes     []string
	satisfied []string
	violated  []string
	placed    bool
	ruleClamp bool // a rule-driven AvoidAfter already ran for this item
}

type sepStatus int

const (
	sepPending sepStatus = iota
	sepResolved
)

// ScheduleResult is the scheduler's output: chronological placements plus
// accumulated warnings.
type ScheduleResult struct {
	Items    []model.ScheduledItem
	Warnings []model.ScheduleWarning
}

// Schedule assigns a time to every item and iteratively adjusts it to
// satisfy the applied constraints. It never fails: unsatisfiable soft
// constraints degrade to warnings and unsatisfiable hard time limits are
// enforced by clamping.
func Schedule(items []model.EnrichedItem, constraints []model.AppliedConstraint, slots model.DaySlots) ScheduleResult {
	placements := make(map[string]*placement, len(items))
	order := make([]*placement, 0, len(items))
	for i := range items {
		p := &placement{item: &items[i]}
		placements[items[i].CanonicalName] = p
		order = append(order, p)
	}

	// Non-flexible items first so they anchor the day; within each group,
	// empty-stomach items first so wake-time placements happen before
	// anything references them.
	sort.SliceStable(order, func(i, j int) bool {
		fi, fj := order[i].item.Flexible(), order[j].item.Flexible()
		if fi != fj {
			return !fi
		}
		return emptyStomachPreferred(order[i].item) && !emptyStomachPreferred(order[j].item)
	})

	var warnings []model.ScheduleWarning
	warn := func(rule *model.InteractionRule, msg string, affected ...string) {
		warnings = append(warnings, model.ScheduleWarning{
			RuleKey:    rule.RuleKey,
			Severity:   rule.Severity,
			Confidence: rule.Confidence,
			Message:    msg,
			Affected:   affected,
		})
	}

	// Separation constraints skipped because the other item was unplaced;
	// resolved in the post-pass below.
	sepState := make(map[int]sepStatus)

	for _, p := range order {
		p.time = initialTime(p.item, slots)

		for ci := range constraints {
			ac := &constraints[ci]
			if ac.TargetCanonical != p.item.CanonicalName {
				continue
			}

			switch c := ac.Constraint.(type) {
			case model.AvoidAfter:
				p.ruleClamp = true
				if p.time <= c.After {
					p.satisfied = append(p.satisfied, ac.RuleKey)
					break
				}
				if ac.Rule.Severity == model.SeverityHard {
					p.time = c.After
					p.notes = append(p.notes, fmt.Sprintf("Moved earlier to respect the %s cutoff", c.After))
					p.satisfied = append(p.satisfied, ac.RuleKey)
				} else {
					p.violated = append(p.violated, ac.RuleKey)
					warn(ac.Rule, fmt.Sprintf("%s is best taken before %s; consider an earlier time", p.item.DisplayName, c.After), p.item.CanonicalName)
				}

			case model.EmptyStomach:
				if p.time >= slots.Breakfast && p.time < slots.Breakfast+model.TimeOfDay(c.BufferMinutes) {
					p.time = slots.Wake
				}
				if p.time == slots.Wake {
					p.notes = append(p.notes, fmt.Sprintf("Take on an empty stomach, %d min before food", c.BufferMinutes))
				}
				p.satisfied = append(p.satisfied, ac.RuleKey)

			case model.WithFood:
				if !p.withFood {
					p.withFood = true
					p.notes = append(p.notes, "Take with food")
				}
				p.satisfied = append(p.satisfied, ac.RuleKey)

			case model.Advisory:
				p.notes = append(p.notes, c.Message)
				affected := []string{ac.TargetCanonical}
				if ac.OtherCanonical != "" {
					affected = append(affected, ac.OtherCanonical)
				}
				warn(ac.Rule, c.Message, affected...)
				p.satisfied = append(p.satisfied, ac.RuleKey)

			case model.MinSeparation:
				other := placements[ac.OtherCanonical]
				if other == nil || !other.placed {
					sepState[ci] = sepPending
					break
				}
				sepState[ci] = sepResolved
				if p.time.DistanceTo(other.time) >= c.Minutes {
					p.satisfied = append(p.satisfied, ac.RuleKey)
					break
				}
				if moved := other.time + model.TimeOfDay(c.Minutes); moved <= slots.Bedtime {
					p.time = moved
					p.satisfied = append(p.satisfied, ac.RuleKey)
				} else if moved := other.time - model.TimeOfDay(c.Minutes); moved >= slots.Wake {
					p.time = moved
					p.satisfied = append(p.satisfied, ac.RuleKey)
				} else {
					p.violated = append(p.violated, ac.RuleKey)
					warn(ac.Rule, separationWarning(p.item, other.item, c.Minutes), p.item.CanonicalName, other.item.CanonicalName)
				}
			}
		}

		// Profile-level avoid-after preference, unless a rule already ran
		// an AvoidAfter for this item.
		if !p.ruleClamp && p.item.Profile != nil && p.item.Profile.Timing.AvoidAfter != nil {
			if limit := *p.item.Profile.Timing.AvoidAfter; p.time > limit {
				p.time = limit
			}
		}

		// Last-resort invariant guard.
		p.time = p.time.Clamp(slots.Wake, slots.Bedtime)
		p.placed = true
	}

	// Post-placement separation pass: one hop of dependency. Chains of
	// three or more mutually separated items are not guaranteed to
	// converge; they degrade to warnings.
	for ci := range constraints {
		ac := &constraints[ci]
		c, ok := ac.Constraint.(model.MinSeparation)
		if !ok || sepState[ci] != sepPending {
			continue
		}
		target := placements[ac.TargetCanonical]
		other := placements[ac.OtherCanonical]
		if target == nil || other == nil {
			continue
		}

		if target.time.DistanceTo(other.time) >= c.Minutes {
			target.satisfied = append(target.satisfied, ac.RuleKey)
			continue
		}

		mover, anchor := other, target
		if !other.item.Flexible() && target.item.Flexible() {
			mover, anchor = target, other
		}

		if moved := anchor.time + model.TimeOfDay(c.Minutes); moved <= slots.Bedtime {
			mover.time = moved
		} else if moved := anchor.time - model.TimeOfDay(c.Minutes); moved >= slots.Wake {
			mover.time = moved
		} else {
			target.violated = append(target.violated, ac.RuleKey)
			warn(ac.Rule, separationWarning(target.item, other.item, c.Minutes), target.item.CanonicalName, other.item.CanonicalName)
			continue
		}
		mover.notes = append(mover.notes, fmt.Sprintf("Moved to keep %d min from %s", c.Minutes, anchor.item.DisplayName))
		target.satisfied = append(target.satisfied, ac.RuleKey)
	}

	out := make([]model.ScheduledItem, 0, len(order))
	for _, p := range order {
		out = append(out, model.ScheduledItem{
			CanonicalName:  p.item.CanonicalName,
			DisplayName:    p.item.DisplayName,
			Dose:           p.item.Dose,
			ScheduledTime:  p.time,
			SlotLabel:      model.SlotLabel(p.time),
			WithFood:       p.withFood,
			Notes:          p.notes,
			SatisfiedRules: p.satisfied,
			ViolatedRules:  p.violated,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ScheduledTime != out[j].ScheduledTime {
			return out[i].ScheduledTime < out[j].ScheduledTime
		}
		return out[i].CanonicalName < out[j].CanonicalName
	})

	return ScheduleResult{Items: out, Warnings: warnings}
}

func emptyStomachPreferred(item *model.EnrichedItem) bool {
	return item.Profile != nil && item.Profile.Timing.EmptyStomach
}

// initialTime picks the starting anchor for an item, in priority order:
// empty stomach, preferred window, food requirement, breakfast default.
func initialTime(item *model.EnrichedItem, slots model.DaySlots) model.TimeOfDay {
	if item.Profile == nil {
		return slots.Breakfast
	}
	t := item.Profile.Timing
	switch {
	case t.EmptyStomach:
		return slots.Wake
	case len(t.PreferredWindows) > 0:
		return t.PreferredWindows[0].Start
	case t.RequiresFood:
		return slots.Breakfast
	default:
		return slots.Breakfast
	}
}

func separationWarning(a, b *model.EnrichedItem, minutes int) string {
	return fmt.Sprintf("Could not keep %s and %s at least %d minutes apart within the day; ask a pharmacist how to space them",
		a.DisplayName, b.DisplayName, minutes)
}
