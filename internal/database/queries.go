package database

import (
	"context"
	"database/sql"
	"fmt"
)

// InsertDays inserts a batch of day rows inside one transaction.
// Existing rows for the same offset are replaced, so regenerating an
// overlapping range is idempotent.
func (db *DB) InsertDays(ctx context.Context, days []Day) error {
	if len(days) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO days (day_offset, year, month, day, weekday, iso)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range days {
		if _, err := stmt.ExecContext(ctx,
			d.Offset, d.Year, d.Month, d.Day, d.Weekday, d.ISO,
		); err != nil {
			return fmt.Errorf("insert day offset %d: %w", d.Offset, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert: %w", err)
	}

	return nil
}

// GetDayByOffset returns the row for the given day offset.
func (db *DB) GetDayByOffset(ctx context.Context, offset int) (*Day, error) {
	row := db.QueryRowContext(ctx, `
		SELECT day_offset, year, month, day, weekday, iso
		FROM days
		WHERE day_offset = ?
	`, offset)

	return scanDay(row)
}

// GetDayByDate returns the row for the given year/month/day.
func (db *DB) GetDayByDate(ctx context.Context, year, month, day int) (*Day, error) {
	row := db.QueryRowContext(ctx, `
		SELECT day_offset, year, month, day, weekday, iso
		FROM days
		WHERE year = ? AND month = ? AND day = ?
	`, year, month, day)

	return scanDay(row)
}

// CountDays returns the number of materialized rows.
func (db *DB) CountDays(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM days").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count days: %w", err)
	}
	return count, nil
}

func scanDay(row *sql.Row) (*Day, error) {
	var d Day
	err := row.Scan(&d.Offset, &d.Year, &d.Month, &d.Day, &d.Weekday, &d.ISO)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan day: %w", err)
	}
	return &d, nil
}
