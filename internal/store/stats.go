package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath        string      `json:"db_path"`
	DBSizeBytes   int64       `json:"db_size_bytes"`
	TotalRuns     int         `json:"total_runs"`
	ActiveRuns    int         `json:"active_runs"`
	TotalWarnings int         `json:"total_warnings"`
	AvgConfidence float64     `json:"avg_confidence"`
	Dates         []DateStats `json:"dates"`
}

// DateStats holds per-date run counts.
type DateStats struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&st.TotalRuns)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE deleted_at IS NULL`).Scan(&st.ActiveRuns)
	s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(warning_count), 0) FROM runs WHERE deleted_at IS NULL`).Scan(&st.TotalWarnings)
	s.db.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(confidence), 0) FROM runs WHERE deleted_at IS NULL`).Scan(&st.AvgConfidence)

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, COUNT(*) as cnt
		FROM runs WHERE deleted_at IS NULL
		GROUP BY date ORDER BY date DESC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var d DateStats
		rows.Scan(&d.Date, &d.Count)
		st.Dates = append(st.Dates, d)
	}

	return st, rows.Err()
}
