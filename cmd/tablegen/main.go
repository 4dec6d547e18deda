// Package main implements tablegen, which materializes the offset/date
// mapping for a year range into a SQLite table. The generated table
// lets non-Go consumers resolve conversions with a plain SQL join
// instead of reimplementing the calendar arithmetic.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mwaldron/grcal/internal/config"
	"github.com/mwaldron/grcal/internal/database"
	"github.com/mwaldron/grcal/internal/gregorian"
	"github.com/mwaldron/grcal/internal/logger"
)

const batchSize = 1000

func main() {
	dbPath := flag.String("db", "", "path to SQLite database (defaults to DATABASE_PATH)")
	startYear := flag.Int("start-year", 1970, "first year to materialize (min 1582)")
	endYear := flag.Int("end-year", 2100, "last year to materialize (max 9999)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	if *dbPath == "" {
		*dbPath = cfg.DatabasePath
	}

	if err := generate(context.Background(), log, *dbPath, *startYear, *endYear); err != nil {
		log.Error("table generation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func generate(ctx context.Context, log *slog.Logger, dbPath string, startYear, endYear int) error {
	first, last, err := offsetRange(startYear, endYear)
	if err != nil {
		return err
	}

	db, err := database.Open(database.DefaultConfig(dbPath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	log.Info("materializing day table",
		slog.Int("start_year", startYear),
		slog.Int("end_year", endYear),
		slog.Int("first_offset", first),
		slog.Int("last_offset", last),
		slog.Int("rows", last-first+1),
	)

	days := make([]database.Day, 0, batchSize)
	inserted := 0

	for offset := first; offset <= last; offset++ {
		d := gregorian.OffsetToDate(offset)
		days = append(days, database.Day{
			Offset:  offset,
			Year:    d.Year,
			Month:   d.Month,
			Day:     d.Day,
			Weekday: int(gregorian.WeekdayOf(offset)),
			ISO:     d.String(),
		})

		if len(days) == batchSize {
			if err := db.InsertDays(ctx, days); err != nil {
				return err
			}
			inserted += len(days)
			days = days[:0]

			if inserted%100000 == 0 {
				log.Info("progress", slog.Int("rows_inserted", inserted))
			}
		}
	}

	if err := db.InsertDays(ctx, days); err != nil {
		return err
	}
	inserted += len(days)

	count, err := db.CountDays(ctx)
	if err != nil {
		return err
	}

	log.Info("day table complete",
		slog.Int("rows_inserted", inserted),
		slog.Int("rows_total", count),
	)

	return nil
}

// offsetRange resolves a year range to the inclusive day offsets it
// covers. The start year is clamped to the calendar epoch: 1582 starts
// at offset zero, not at January 1.
func offsetRange(startYear, endYear int) (first, last int, err error) {
	if startYear < 1582 || endYear > 9999 || startYear > endYear {
		return 0, 0, fmt.Errorf("year range [%d, %d] outside [1582, 9999]", startYear, endYear)
	}

	if startYear == 1582 {
		first = 0
	} else {
		first, err = gregorian.DateToOffset(startYear, 1, 1)
		if err != nil {
			return 0, 0, fmt.Errorf("start year %d: %w", startYear, err)
		}
	}

	last, err = gregorian.DateToOffset(endYear, 12, 31)
	if err != nil {
		return 0, 0, fmt.Errorf("end year %d: %w", endYear, err)
	}

	return first, last, nil
}
