// Package engine implements the deterministic daily dose scheduler: rule
// matching, time-slot placement, and confidence scoring. It is a pure
// function of its inputs; no I/O, no clock, no shared state.
package engine

import "github.com/dosewise/dosewise/internal/model"

// DefaultWakeTime is used when the caller supplies no wake time.
var DefaultWakeTime = model.MustTimeOfDay("07:00")

const (
	breakfastAfterWake  = 30  // minutes
	lunchAfterBreakfast = 240 // minimum gap, floor at noon
	dinnerAfterLunch    = 300 // minimum gap, floor at 18:00
	bedtimeAfterDinner  = 180
)

var (
	earliestLunch  = model.MustTimeOfDay("12:00")
	earliestDinner = model.MustTimeOfDay("18:00")
)

// ComputeDaySlots derives the seven day anchors from a wake time and
// optional explicit meal times. Derived anchors never roll into the next
// day; anything past midnight clamps to 23:59.
func ComputeDaySlots(wake model.TimeOfDay, meals model.MealTimes) model.DaySlots {
	clamp := func(t model.TimeOfDay) model.TimeOfDay {
		return t.Clamp(0, model.EndOfDay)
	}

	breakfast := clamp(wake + breakfastAfterWake)
	if meals.Breakfast != nil {
		breakfast = clamp(*meals.Breakfast)
	}

	lunch := clamp(max(breakfast+lunchAfterBreakfast, earliestLunch))
	if meals.Lunch != nil {
		lunch = clamp(*meals.Lunch)
	}

	dinner := clamp(max(lunch+dinnerAfterLunch, earliestDinner))
	if meals.Dinner != nil {
		dinner = clamp(*meals.Dinner)
	}

	return model.DaySlots{
		Wake:       clamp(wake),
		Breakfast:  breakfast,
		MidMorning: model.Midpoint(breakfast, lunch),
		Lunch:      lunch,
		Afternoon:  model.Midpoint(lunch, dinner),
		Dinner:     dinner,
		Bedtime:    clamp(dinner + bedtimeAfterDinner),
	}
}
