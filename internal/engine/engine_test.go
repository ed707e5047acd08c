package engine

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosewise/dosewise/internal/catalog"
	"github.com/dosewise/dosewise/internal/model"
)

func catalogRequest(wake string, names ...string) Request {
	items := make([]model.InputItem, 0, len(names))
	for _, n := range names {
		items = append(items, model.InputItem{CanonicalName: n})
	}
	var wakePtr *model.TimeOfDay
	if wake != "" {
		w := model.MustTimeOfDay(wake)
		wakePtr = &w
	}
	return Request{
		Date:     "2026-03-02",
		Items:    items,
		Profiles: catalog.Profiles(),
		Rules:    catalog.ActiveRules(nil),
		WakeTime: wakePtr,
	}
}

func TestGenerateLevothyroxineScenario(t *testing.T) {
	out := Generate(catalogRequest("07:00", "levothyroxine"))

	require.Len(t, out.Items, 1)
	item := out.Items[0]
	assert.Equal(t, model.MustTimeOfDay("07:00"), item.ScheduledTime, "placed at the wake anchor")
	assert.Contains(t, item.Notes, "Take on an empty stomach, 60 min before food")
	assert.Empty(t, out.Warnings)
	assert.Equal(t, "Morning", item.SlotLabel)
	assert.Equal(t, model.Disclaimer, out.Disclaimer)
	// Full profile coverage and a single high-confidence satisfied rule.
	assert.GreaterOrEqual(t, out.OverallConfidence, 90)
}

func TestGenerateIronCalciumSeparation(t *testing.T) {
	out := Generate(catalogRequest("", "iron-supplement", "calcium-supplement"))

	require.Len(t, out.Items, 2)
	var iron, calcium model.ScheduledItem
	for _, it := range out.Items {
		switch it.CanonicalName {
		case "iron-supplement":
			iron = it
		case "calcium-supplement":
			calcium = it
		}
	}

	gap := iron.ScheduledTime.DistanceTo(calcium.ScheduledTime)
	if gap < 120 {
		// Unresolvable separations must surface as a warning naming both.
		require.NotEmpty(t, out.Warnings)
		found := false
		for _, w := range out.Warnings {
			if len(w.Affected) == 2 {
				found = true
			}
		}
		assert.True(t, found, "expected a warning referencing both items")
	}
}

func TestGenerateAlwaysWithinDayWindow(t *testing.T) {
	out := Generate(catalogRequest("06:00",
		"levothyroxine", "iron-supplement", "calcium-supplement", "coffee",
		"melatonin", "vitamin-d3", "metformin", "unknown-herb"))

	wake := model.MustTimeOfDay("06:00")
	slots := ComputeDaySlots(wake, model.MealTimes{})
	for _, it := range out.Items {
		assert.GreaterOrEqual(t, it.ScheduledTime, slots.Wake, "%s before wake", it.CanonicalName)
		assert.LessOrEqual(t, it.ScheduledTime, slots.Bedtime, "%s after bedtime", it.CanonicalName)
	}
	assert.GreaterOrEqual(t, out.OverallConfidence, 0)
	assert.LessOrEqual(t, out.OverallConfidence, 100)
}

func TestGenerateDeterministic(t *testing.T) {
	req := catalogRequest("06:30",
		"levothyroxine", "iron-supplement", "calcium-supplement",
		"magnesium-glycinate", "coffee", "melatonin")

	first := Generate(req)
	second := Generate(req)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical requests produced different outputs")
	}
}

func TestGenerateUnknownItemsDegradeConfidence(t *testing.T) {
	known := Generate(catalogRequest("", "vitamin-d3"))
	mixed := Generate(catalogRequest("", "vitamin-d3", "mystery-capsule"))

	assert.Less(t, mixed.OverallConfidence, known.OverallConfidence,
		"missing profiles should lower confidence")
	require.Len(t, mixed.Items, 2)
}

func TestGenerateAdditionalRulesAreApplied(t *testing.T) {
	req := catalogRequest("", "vitamin-c")
	msg := "Vitamin C above 1 g/day can cause GI upset."
	req.Rules = catalog.ActiveRules([]model.InteractionRule{{
		RuleKey:    "clinic-vitc-advisory",
		AppliesTo:  []string{"vitamin-c"},
		Constraint: model.Advisory{Message: msg},
		Severity:   model.SeveritySoft,
		Confidence: 50,
		Active:     true,
	}})

	out := Generate(req)
	require.Len(t, out.Warnings, 1)
	assert.Equal(t, msg, out.Warnings[0].Message)
	assert.Equal(t, "clinic-vitc-advisory", out.Warnings[0].RuleKey)
}

func TestGenerateEmptyRun(t *testing.T) {
	out := Generate(Request{Date: "2026-03-02", Rules: catalog.ActiveRules(nil), Profiles: catalog.Profiles()})

	assert.Empty(t, out.Items)
	assert.Empty(t, out.Warnings)
	assert.Equal(t, 100, out.OverallConfidence)
	assert.Equal(t, model.Disclaimer, out.Disclaimer)
}
