// Package catalog bundles the built-in item profiles and interaction rules,
// and loads caller-supplied extras from YAML files.
package catalog

import "github.com/dosewise/dosewise/internal/model"

func timePtr(s string) *model.TimeOfDay {
	t := model.MustTimeOfDay(s)
	return &t
}

func window(start, end string) model.TimeWindow {
	return model.TimeWindow{Start: model.MustTimeOfDay(start), End: model.MustTimeOfDay(end)}
}

// builtinProfiles is the bundled item profile catalog, keyed downstream by
// canonical name. Read-only after init.
var builtinProfiles = []model.ItemProfile{
	{
		CanonicalName: "levothyroxine",
		DisplayName:   "Levothyroxine",
		Kind:          model.KindMedication,
		Tags:          []string{model.TagThyroidHormone, model.TagNarrowTherapeuticWindow},
		Timing: model.Timing{
			PreferredWindows:  []model.TimeWindow{window("06:00", "09:00")},
			EmptyStomach:      true,
			FoodBufferMinutes: 60,
		},
	},
	{
		CanonicalName: "iron-supplement",
		DisplayName:   "Iron",
		Kind:          model.KindSupplement,
		Tags:          []string{model.TagIron},
		Timing: model.Timing{
			EmptyStomach:      true,
			FoodBufferMinutes: 30,
			Flexible:          true,
		},
	},
	{
		CanonicalName: "calcium-supplement",
		DisplayName:   "Calcium",
		Kind:          model.KindSupplement,
		Tags:          []string{model.TagDivalentCation},
		Timing: model.Timing{
			RequiresFood: true,
			Flexible:     true,
		},
	},
	{
		CanonicalName: "magnesium-glycinate",
		DisplayName:   "Magnesium Glycinate",
		Kind:          model.KindSupplement,
		Tags:          []string{model.TagDivalentCation},
		Timing: model.Timing{
			PreferredWindows: []model.TimeWindow{window("19:00", "22:00")},
			Flexible:         true,
		},
	},
	{
		CanonicalName: "zinc-supplement",
		DisplayName:   "Zinc",
		Kind:          model.KindSupplement,
		Tags:          []string{model.TagDivalentCation},
		Timing: model.Timing{
			RequiresFood: true,
			Flexible:     true,
		},
	},
	{
		CanonicalName: "vitamin-d3",
		DisplayName:   "Vitamin D3",
		Kind:          model.KindSupplement,
		Tags:          []string{model.TagFatSoluble},
		Timing: model.Timing{
			RequiresFood: true,
			Flexible:     true,
		},
	},
	{
		CanonicalName: "omega-3-fish-oil",
		DisplayName:   "Omega-3 Fish Oil",
		Kind:          model.KindSupplement,
		Tags:          []string{model.TagFatSoluble},
		Timing: model.Timing{
			RequiresFood: true,
			Flexible:     true,
		},
	},
	{
		CanonicalName: "multivitamin",
		DisplayName:   "Multivitamin",
		Kind:          model.KindSupplement,
		Tags:          []string{model.TagDivalentCation, model.TagIron},
		Timing: model.Timing{
			RequiresFood: true,
			Flexible:     true,
		},
	},
	{
		CanonicalName: "probiotic",
		DisplayName:   "Probiotic",
		Kind:          model.KindSupplement,
		Timing: model.Timing{
			EmptyStomach:      true,
			FoodBufferMinutes: 30,
			Flexible:          true,
		},
	},
	{
		CanonicalName: "melatonin",
		DisplayName:   "Melatonin",
		Kind:          model.KindSupplement,
		Tags:          []string{model.TagSleepAid},
		Timing: model.Timing{
			PreferredWindows: []model.TimeWindow{window("21:00", "23:00")},
		},
	},
	{
		CanonicalName: "coffee",
		DisplayName:   "Coffee",
		Kind:          model.KindFood,
		Tags:          []string{model.TagStimulant},
		Timing: model.Timing{
			PreferredWindows: []model.TimeWindow{window("06:00", "11:00")},
			AvoidAfter:       timePtr("14:00"),
			Stimulant:        true,
			Flexible:         true,
		},
	},
	{
		CanonicalName: "metformin",
		DisplayName:   "Metformin",
		Kind:          model.KindMedication,
		Tags:          []string{model.TagBiguanide},
		Timing: model.Timing{
			RequiresFood: true,
		},
	},
	{
		CanonicalName: "atorvastatin",
		DisplayName:   "Atorvastatin",
		Kind:          model.KindMedication,
		Tags:          []string{model.TagStatin},
		Timing: model.Timing{
			PreferredWindows: []model.TimeWindow{window("19:00", "22:00")},
			Flexible:         true,
		},
	},
	{
		CanonicalName: "lisinopril",
		DisplayName:   "Lisinopril",
		Kind:          model.KindMedication,
		Timing: model.Timing{
			Flexible: true,
		},
	},
	{
		CanonicalName: "sertraline",
		DisplayName:   "Sertraline",
		Kind:          model.KindMedication,
		Tags:          []string{model.TagSSRI},
		Timing: model.Timing{
			PreferredWindows: []model.TimeWindow{window("07:00", "10:00")},
		},
	},
	{
		CanonicalName: "vitamin-c",
		DisplayName:   "Vitamin C",
		Kind:          model.KindSupplement,
		Timing: model.Timing{
			Flexible: true,
		},
	},
	{
		CanonicalName: "b-complex",
		DisplayName:   "B-Complex",
		Kind:          model.KindSupplement,
		Timing: model.Timing{
			PreferredWindows: []model.TimeWindow{window("06:00", "12:00")},
			AvoidAfter:       timePtr("15:00"),
			Flexible:         true,
		},
	},
	{
		CanonicalName: "ashwagandha",
		DisplayName:   "Ashwagandha",
		Kind:          model.KindSupplement,
		Tags:          []string{model.TagAdaptogen},
		Timing: model.Timing{
			PreferredWindows: []model.TimeWindow{window("20:00", "22:30")},
			Flexible:         true,
		},
	},
}

// Profiles returns a copy of the built-in profile catalog.
func Profiles() []model.ItemProfile {
	out := make([]model.ItemProfile, len(builtinProfiles))
	copy(out, builtinProfiles)
	return out
}

// ProfileByName returns the built-in profile for a canonical name, or nil.
func ProfileByName(canonical string) *model.ItemProfile {
	for i := range builtinProfiles {
		if builtinProfiles[i].CanonicalName == canonical {
			p := builtinProfiles[i]
			return &p
		}
	}
	return nil
}
