package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/dosewise/dosewise/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id            TEXT PRIMARY KEY,
		date          TEXT NOT NULL,
		wake_time     TEXT NOT NULL,
		meals         TEXT,
		items         TEXT NOT NULL,
		output        TEXT NOT NULL,
		confidence    INTEGER NOT NULL,
		warning_count INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		deleted_at    TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_runs_date ON runs(date);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_deleted ON runs(deleted_at);
	CREATE INDEX IF NOT EXISTS idx_runs_confidence ON runs(confidence);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Save(ctx context.Context, p SaveParams) (*model.ScheduleRecord, error) {
	now := time.Now().UTC()
	id := s.newID()

	itemsJSON, err := json.Marshal(p.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}
	outputJSON, err := json.Marshal(p.Output)
	if err != nil {
		return nil, fmt.Errorf("marshal output: %w", err)
	}

	var mealsJSON *string
	if p.Meals.Breakfast != nil || p.Meals.Lunch != nil || p.Meals.Dinner != nil {
		b, _ := json.Marshal(p.Meals)
		str := string(b)
		mealsJSON = &str
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, date, wake_time, meals, items, output, confidence, warning_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Date, p.WakeTime.String(), mealsJSON, string(itemsJSON), string(outputJSON),
		p.Output.OverallConfidence, len(p.Output.Warnings), now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	return &model.ScheduleRecord{
		ID:        id,
		Date:      p.Date,
		WakeTime:  p.WakeTime,
		Meals:     p.Meals,
		Items:     p.Items,
		Output:    p.Output,
		CreatedAt: now,
	}, nil
}

const runColumns = `id, date, wake_time, meals, items, output, created_at, deleted_at`

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.ScheduleRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id = ? AND deleted_at IS NULL`, id)
	rec, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SQLiteStore) Latest(ctx context.Context, date string) (*model.ScheduleRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE date = ? AND deleted_at IS NULL
		 ORDER BY created_at DESC, id DESC LIMIT 1`, date)
	rec, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no run saved for date %s", date)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.ScheduleRecord, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"deleted_at IS NULL"}
	args := []interface{}{}

	if p.Date != "" {
		where = append(where, "date = ?")
		args = append(args, p.Date)
	}
	if p.MinConfidence > 0 {
		where = append(where, "confidence >= ?")
		args = append(args, p.MinConfidence)
	}

	query := `SELECT ` + runColumns + ` FROM runs WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

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

// Search finds runs whose saved input items include the canonical name. A
// LIKE over the items JSON is enough at history scale.
func (s *SQLiteStore) Search(ctx context.Context, canonical string, limit int) ([]model.ScheduleRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs
		 WHERE deleted_at IS NULL AND items LIKE ?
		 ORDER BY created_at DESC, id DESC LIMIT ?`,
		`%"canonical_name":"`+canonical+`"%`, limit)
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

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) error {
	if p.Hard {
		res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, p.ID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("run not found: %s", p.ID)
		}
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, now, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("run not found: %s", p.ID)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (model.ScheduleRecord, error) {
	var rec model.ScheduleRecord
	var wake, createdAt string
	var meals, deletedAt sql.NullString
	var itemsJSON, outputJSON string

	err := row.Scan(&rec.ID, &rec.Date, &wake, &meals, &itemsJSON, &outputJSON, &createdAt, &deletedAt)
	if err != nil {
		return rec, err
	}

	if rec.WakeTime, err = model.ParseTimeOfDay(wake); err != nil {
		return rec, fmt.Errorf("run %s: %w", rec.ID, err)
	}
	if meals.Valid {
		if err := json.Unmarshal([]byte(meals.String), &rec.Meals); err != nil {
			return rec, fmt.Errorf("run %s: parse meals: %w", rec.ID, err)
		}
	}
	if err := json.Unmarshal([]byte(itemsJSON), &rec.Items); err != nil {
		return rec, fmt.Errorf("run %s: parse items: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(outputJSON), &rec.Output); err != nil {
		return rec, fmt.Errorf("run %s: parse output: %w", rec.ID, err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if deletedAt.Valid {
		t, _ := time.Parse(time.RFC3339, deletedAt.String)
		rec.DeletedAt = &t
	}

	return rec, nil
}
