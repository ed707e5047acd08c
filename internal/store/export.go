package store

import (
	"context"
	"strings"

	"github.com/dosewise/dosewise/internal/model"
)

// ExportAll returns all non-deleted runs, optionally filtered by date.
func (s *SQLiteStore) ExportAll(ctx context.Context, date string) ([]model.ScheduleRecord, error) {
	where := []string{"deleted_at IS NULL"}
	args := []interface{}{}

	if date != "" {
		where = append(where, "date = ?")
		args = append(args, date)
	}

	query := `SELECT ` + runColumns + ` FROM runs WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY date, created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.ScheduleRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Import stores runs from an export. Re-imported runs get fresh IDs.
func (s *SQLiteStore) Import(ctx context.Context, records []model.ScheduleRecord) (int, error) {
	imported := 0
	for _, r := range records {
		_, err := s.Save(ctx, SaveParams{
			Date:     r.Date,
			WakeTime: r.WakeTime,
			Meals:    r.Meals,
			Items:    r.Items,
			Output:   r.Output,
		})
		if err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
