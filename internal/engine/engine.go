package engine

import "github.com/dosewise/dosewise/internal/model"

// Request holds everything one scheduling run needs. The engine reads it
// and nothing else; identical requests produce identical outputs.
type Request struct {
	Date     string
	Items    []model.InputItem
	Profiles []model.ItemProfile
	Rules    []model.InteractionRule // merged active set, built-ins included
	WakeTime *model.TimeOfDay
	Meals    model.MealTimes
}

// Generate runs the full pipeline: day anchors, profile attachment,
// constraint building, placement, and confidence scoring. It always returns
// a complete schedule.
func Generate(req Request) model.ScheduleOutput {
	wake := DefaultWakeTime
	if req.WakeTime != nil {
		wake = *req.WakeTime
	}
	slots := ComputeDaySlots(wake, req.Meals)

	enriched := AttachProfiles(req.Items, req.Profiles)
	constraints := BuildConstraints(enriched, req.Rules)
	result := Schedule(enriched, constraints, slots)

	warnings := result.Warnings
	if warnings == nil {
		warnings = []model.ScheduleWarning{}
	}

	return model.ScheduleOutput{
		Date:              req.Date,
		Items:             result.Items,
		Warnings:          warnings,
		OverallConfidence: ScoreConfidence(enriched, constraints, result.Items),
		Disclaimer:        model.Disclaimer,
	}
}
