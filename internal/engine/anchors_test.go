package engine

import (
	"testing"

	"github.com/dosewise/dosewise/internal/model"
)

func TestComputeDaySlotsDefaults(t *testing.T) {
	slots := ComputeDaySlots(model.MustTimeOfDay("07:00"), model.MealTimes{})

	cases := []struct {
		name string
		got  model.TimeOfDay
		want string
	}{
		{"wake", slots.Wake, "07:00"},
		{"breakfast", slots.Breakfast, "07:30"},
		{"lunch", slots.Lunch, "12:00"},
		{"dinner", slots.Dinner, "18:00"},
		{"mid_morning", slots.MidMorning, "09:45"},
		{"afternoon", slots.Afternoon, "15:00"},
		{"bedtime", slots.Bedtime, "21:00"},
	}
	for _, c := range cases {
		if c.got != model.MustTimeOfDay(c.want) {
			t.Errorf("%s: expected %s, got %s", c.name, c.want, c.got)
		}
	}
}

func TestComputeDaySlotsLateBreakfastPushesLunch(t *testing.T) {
	b := model.MustTimeOfDay("09:00")
	slots := ComputeDaySlots(model.MustTimeOfDay("07:00"), model.MealTimes{Breakfast: &b})

	// breakfast+240 = 13:00 beats the noon floor
	if slots.Lunch != model.MustTimeOfDay("13:00") {
		t.Errorf("expected lunch 13:00, got %s", slots.Lunch)
	}
	if slots.Dinner != model.MustTimeOfDay("18:00") {
		t.Errorf("expected dinner 18:00, got %s", slots.Dinner)
	}
}

func TestComputeDaySlotsExplicitMeals(t *testing.T) {
	b := model.MustTimeOfDay("08:00")
	l := model.MustTimeOfDay("13:00")
	d := model.MustTimeOfDay("19:00")
	slots := ComputeDaySlots(model.MustTimeOfDay("06:30"), model.MealTimes{Breakfast: &b, Lunch: &l, Dinner: &d})

	if slots.Breakfast != b || slots.Lunch != l || slots.Dinner != d {
		t.Errorf("explicit meals not respected: %+v", slots)
	}
	if slots.MidMorning != model.Midpoint(b, l) {
		t.Errorf("expected mid-morning midpoint, got %s", slots.MidMorning)
	}
	if slots.Bedtime != model.MustTimeOfDay("22:00") {
		t.Errorf("expected bedtime 22:00, got %s", slots.Bedtime)
	}
}

func TestComputeDaySlotsNoDayRollover(t *testing.T) {
	// A very late wake pushes every derived anchor past midnight; they must
	// clamp to 23:59, never wrap to the next day.
	slots := ComputeDaySlots(model.MustTimeOfDay("22:00"), model.MealTimes{})

	if slots.Bedtime != model.EndOfDay {
		t.Errorf("expected bedtime clamped to 23:59, got %s", slots.Bedtime)
	}
	if slots.Lunch > model.EndOfDay || slots.Dinner > model.EndOfDay {
		t.Errorf("anchors rolled over: %+v", slots)
	}
	if slots.Wake > slots.Bedtime {
		t.Errorf("wake %s after bedtime %s", slots.Wake, slots.Bedtime)
	}
}
