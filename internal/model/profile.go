// Package model defines the core planner data types.
package model

// ItemKind classifies a catalog substance.
type ItemKind string

const (
	KindMedication ItemKind = "medication"
	KindSupplement ItemKind = "supplement"
	KindFood       ItemKind = "food"
)

// Common tags used by the built-in catalogs. Rules may reference any string
// tag; these constants just keep the built-ins typo-safe.
const (
	TagThyroidHormone          = "THYROID_HORMONE"
	TagNarrowTherapeuticWindow = "NARROW_THERAPEUTIC_WINDOW"
	TagDivalentCation          = "DIVALENT_CATION"
	TagIron                    = "IRON"
	TagStimulant               = "STIMULANT"
	TagFatSoluble              = "FAT_SOLUBLE"
	TagSleepAid                = "SLEEP_AID"
	TagSSRI                    = "SSRI"
	TagBiguanide               = "BIGUANIDE"
	TagStatin                  = "STATIN"
	TagAdaptogen               = "ADAPTOGEN"
)

// TimeWindow is a half-open [Start, End) preferred dosing window.
type TimeWindow struct {
	Start TimeOfDay `json:"start" yaml:"start"`
	End   TimeOfDay `json:"end" yaml:"end"`
}

// Timing holds the static timing preferences of one substance.
type Timing struct {
	PreferredWindows  []TimeWindow `json:"preferred_windows,omitempty" yaml:"preferred_windows,omitempty"`
	RequiresFood      bool         `json:"requires_food,omitempty" yaml:"requires_food,omitempty"`
	EmptyStomach      bool         `json:"empty_stomach,omitempty" yaml:"empty_stomach,omitempty"`
	FoodBufferMinutes int          `json:"food_buffer_minutes,omitempty" yaml:"food_buffer_minutes,omitempty"`
	AvoidAfter        *TimeOfDay   `json:"avoid_after,omitempty" yaml:"avoid_after,omitempty"`
	Stimulant         bool         `json:"stimulant,omitempty" yaml:"stimulant,omitempty"`
	Flexible          bool         `json:"flexible,omitempty" yaml:"flexible,omitempty"`
}

// ItemProfile is immutable reference data for one canonical substance.
// Profiles are loaded once per process and never mutated at runtime.
type ItemProfile struct {
	CanonicalName string   `json:"canonical_name" yaml:"canonical_name"`
	DisplayName   string   `json:"display_name" yaml:"display_name"`
	Kind          ItemKind `json:"kind" yaml:"kind"`
	Tags          []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Timing        Timing   `json:"timing" yaml:"timing"`
}

// HasTag reports whether the profile carries the given tag.
func (p *ItemProfile) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ValidKinds are the allowed item kinds.
var ValidKinds = map[ItemKind]bool{
	KindMedication: true,
	KindSupplement: true,
	KindFood:       true,
}
