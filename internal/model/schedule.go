package model

import "time"

// Disclaimer is attached to every schedule. It is a contract of the engine
// output and is not configurable.
const Disclaimer = "This schedule is informational only and is not medical advice. " +
	"Consult your doctor or pharmacist before changing how you take any medication."

// InputItem is one caller-supplied medication or supplement for a run.
type InputItem struct {
	CanonicalName string `json:"canonical_name" yaml:"canonical_name"`
	DisplayName   string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Dose          string `json:"dose,omitempty" yaml:"dose,omitempty"`
	Frequency     string `json:"frequency,omitempty" yaml:"frequency,omitempty"` // default "daily"
}

// EnrichedItem is an InputItem joined to its profile. Profile is nil when the
// catalog has no entry for the item; such items degrade to "no preference".
type EnrichedItem struct {
	InputItem
	Profile *ItemProfile `json:"profile,omitempty"`
	Tags    []string     `json:"tags,omitempty"`
}

// Flexible reports whether the item's own time may be moved to satisfy
// another item's constraint. Unprofiled items are flexible: nothing anchors
// them.
func (e *EnrichedItem) Flexible() bool {
	if e.Profile == nil {
		return true
	}
	return e.Profile.Timing.Flexible
}

// HasTag reports whether the enriched item carries the given tag.
func (e *EnrichedItem) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DaySlots holds the seven anchor clock-times of one day. Computed once per
// run and immutable afterwards.
type DaySlots struct {
	Wake       TimeOfDay `json:"wake"`
	Breakfast  TimeOfDay `json:"breakfast"`
	MidMorning TimeOfDay `json:"mid_morning"`
	Lunch      TimeOfDay `json:"lunch"`
	Afternoon  TimeOfDay `json:"afternoon"`
	Dinner     TimeOfDay `json:"dinner"`
	Bedtime    TimeOfDay `json:"bedtime"`
}

// MealTimes are optional explicit meal anchors for a run.
type MealTimes struct {
	Breakfast *TimeOfDay `json:"breakfast,omitempty" yaml:"breakfast,omitempty"`
	Lunch     *TimeOfDay `json:"lunch,omitempty" yaml:"lunch,omitempty"`
	Dinner    *TimeOfDay `json:"dinner,omitempty" yaml:"dinner,omitempty"`
}

// Slot labels derived from minute-of-day thresholds.
const (
	slotAfternoonStart = TimeOfDay(720)  // 12:00
	slotEveningStart   = TimeOfDay(900)  // 15:00
	slotNightStart     = TimeOfDay(1200) // 20:00
)

// SlotLabel buckets a clock time into Morning/Afternoon/Evening/Night.
func SlotLabel(t TimeOfDay) string {
	switch {
	case t < slotAfternoonStart:
		return "Morning"
	case t < slotEveningStart:
		return "Afternoon"
	case t < slotNightStart:
		return "Evening"
	default:
		return "Night"
	}
}

// ScheduledItem is one finalized placement in the output timetable.
type ScheduledItem struct {
	CanonicalName  string    `json:"canonical_name"`
	DisplayName    string    `json:"display_name"`
	Dose           string    `json:"dose,omitempty"`
	ScheduledTime  TimeOfDay `json:"scheduled_time"`
	SlotLabel      string    `json:"slot_label"`
	WithFood       bool      `json:"with_food"`
	Notes          []string  `json:"notes,omitempty"`
	SatisfiedRules []string  `json:"satisfied_rules,omitempty"`
	ViolatedRules  []string  `json:"violated_rules,omitempty"`
}

// ScheduleWarning is an unresolved or advisory finding. Warnings accumulate
// across a run and are never retracted.
type ScheduleWarning struct {
	RuleKey    string   `json:"rule_key"`
	Severity   Severity `json:"severity"`
	Confidence int      `json:"confidence"`
	Message    string   `json:"message"`
	Affected   []string `json:"affected"`
}

// ScheduleOutput is the sole return value of the engine. The engine never
// persists it; that is the caller's concern.
type ScheduleOutput struct {
	Date              string            `json:"date"`
	Items             []ScheduledItem   `json:"items"`
	Warnings          []ScheduleWarning `json:"warnings"`
	OverallConfidence int               `json:"overall_confidence"`
	Disclaimer        string            `json:"disclaimer"`
}

// ScheduleRecord is one saved run in the history store.
type ScheduleRecord struct {
	ID        string         `json:"id"`
	Date      string         `json:"date"`
	WakeTime  TimeOfDay      `json:"wake_time"`
	Meals     MealTimes      `json:"meals,omitempty"`
	Items     []InputItem    `json:"items"`
	Output    ScheduleOutput `json:"output"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt *time.Time     `json:"deleted_at,omitempty"`
}
