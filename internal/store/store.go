// Package store provides the schedule run history interface and SQLite
// implementation. The scheduling engine itself never touches storage; only
// the CLI and server layers save runs here.
package store

import (
	"context"

	"github.com/dosewise/dosewise/internal/model"
)

// SaveParams holds parameters for recording a schedule run.
type SaveParams struct {
	Date     string
	WakeTime model.TimeOfDay
	Meals    model.MealTimes
	Items    []model.InputItem
	Output   model.ScheduleOutput
}

// ListParams holds parameters for listing saved runs.
type ListParams struct {
	Date          string
	MinConfidence int
	Limit         int
}

// RmParams holds parameters for deleting a saved run.
type RmParams struct {
	ID   string
	Hard bool
}

// Store defines the run history interface.
type Store interface {
	// Save records a schedule run. Returns the stored record.
	Save(ctx context.Context, p SaveParams) (*model.ScheduleRecord, error)

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*model.ScheduleRecord, error)

	// Latest retrieves the most recently saved run for a date.
	Latest(ctx context.Context, date string) (*model.ScheduleRecord, error)

	// List lists saved runs matching the given filters, newest first.
	List(ctx context.Context, p ListParams) ([]model.ScheduleRecord, error)

	// Search finds runs whose input items include the given canonical name.
	Search(ctx context.Context, canonical string, limit int) ([]model.ScheduleRecord, error)

	// Rm soft-deletes (or hard-deletes) a run.
	Rm(ctx context.Context, p RmParams) error

	// Close closes the store.
	Close() error
}
