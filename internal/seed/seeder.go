// Package seed loads the initial venue/event catalog from CSV files the first
// time the service starts against an empty database.
package seed

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	zlog "github.com/rs/zerolog/log"
)

const (
	venuesFile = "venues.csv"
	eventsFile = "events.csv"

	eventDateLayout = "2006-01-02 15:04:05"

	batchSize = 100
)

type Seeder struct {
	db  *sql.DB
	dir string
}

func New(db *sql.DB, dir string) *Seeder { return &Seeder{db: db, dir: dir} }

// Run seeds venues and events when their tables are empty. A missing CSV file
// is logged and skipped, not fatal: deployments without seed data are valid.
func (s *Seeder) Run(ctx context.Context) error {
	zlog.Info().Str("dir", s.dir).Msg("starting database seeding")

	if err := s.seedTable(ctx, "venues", venuesFile, s.seedVenues); err != nil {
		return err
	}
	if err := s.seedTable(ctx, "events", eventsFile, s.seedEvents); err != nil {
		return err
	}

	zlog.Info().Msg("database seeding completed")
	return nil
}

func (s *Seeder) seedTable(ctx context.Context, table, file string, fn func(ctx context.Context, path string) error) error {
	var count int
	if err := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		zlog.Info().Str("table", table).Int("count", count).Msg("table already seeded, skipping")
		return nil
	}

	path := filepath.Join(s.dir, file)
	if _, err := os.Stat(path); err != nil {
		zlog.Warn().Str("path", path).Msg("seed file not found, skipping")
		return nil
	}
	return fn(ctx, path)
}

type venueRow struct {
	ID       int64
	Name     string
	City     string
	Capacity int
}

type eventRow struct {
	ID          int64
	VenueID     int64
	Title       string
	EventType   string
	EventDate   time.Time
	BasePrice   float64
	Status      string
	CancelledAt *time.Time
}

func (s *Seeder) seedVenues(ctx context.Context, path string) error {
	rows, err := loadVenues(path)
	if err != nil {
		return fmt.Errorf("load venues csv: %w", err)
	}
	zlog.Info().Int("count", len(rows)).Msg("seeding venues")

	for i := 0; i < len(rows); i += batchSize {
		end := min(i+batchSize, len(rows))
		for _, v := range rows[i:end] {
			if _, err := s.db.ExecContext(ctx,
				`INSERT INTO venues (venue_id, name, city, capacity) VALUES ($1,$2,$3,$4)`,
				v.ID, v.Name, v.City, v.Capacity,
			); err != nil {
				return err
			}
		}
	}

	return s.resetSequence(ctx, "venues", "venue_id")
}

func (s *Seeder) seedEvents(ctx context.Context, path string) error {
	rows, err := loadEvents(path)
	if err != nil {
		return fmt.Errorf("load events csv: %w", err)
	}
	zlog.Info().Int("count", len(rows)).Msg("seeding events")

	for i := 0; i < len(rows); i += batchSize {
		end := min(i+batchSize, len(rows))
		for _, e := range rows[i:end] {
			if _, err := s.db.ExecContext(ctx,
				`INSERT INTO events (event_id, venue_id, title, event_type, event_date, base_price, status, cancelled_at)
				 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
				e.ID, e.VenueID, e.Title, e.EventType, e.EventDate, e.BasePrice, e.Status, e.CancelledAt,
			); err != nil {
				return err
			}
		}
		zlog.Info().Int("seeded", end).Int("total", len(rows)).Msg("seeded event batch")
	}

	return s.resetSequence(ctx, "events", "event_id")
}

// resetSequence realigns the identity sequence after explicit-id inserts.
func (s *Seeder) resetSequence(ctx context.Context, table, idCol string) error {
	q := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%s', '%s'), (SELECT COALESCE(MAX(%s), 1) FROM %s), true)`,
		table, idCol, idCol, table,
	)
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		zlog.Warn().Err(err).Str("table", table).Msg("could not reset sequence")
	}
	return nil
}

func loadVenues(path string) ([]venueRow, error) {
	records, idx, err := readCSV(path, "venue_id", "name", "city", "capacity")
	if err != nil {
		return nil, err
	}

	out := make([]venueRow, 0, len(records))
	for _, rec := range records {
		id, err := strconv.ParseInt(rec[idx["venue_id"]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad venue_id %q: %w", rec[idx["venue_id"]], err)
		}
		capacity, err := strconv.Atoi(rec[idx["capacity"]])
		if err != nil {
			return nil, fmt.Errorf("bad capacity %q: %w", rec[idx["capacity"]], err)
		}
		out = append(out, venueRow{
			ID:       id,
			Name:     rec[idx["name"]],
			City:     rec[idx["city"]],
			Capacity: capacity,
		})
	}
	return out, nil
}

func loadEvents(path string) ([]eventRow, error) {
	records, idx, err := readCSV(path, "event_id", "venue_id", "title", "event_type", "event_date", "base_price", "status")
	if err != nil {
		return nil, err
	}

	out := make([]eventRow, 0, len(records))
	for _, rec := range records {
		id, err := strconv.ParseInt(rec[idx["event_id"]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad event_id %q: %w", rec[idx["event_id"]], err)
		}
		venueID, err := strconv.ParseInt(rec[idx["venue_id"]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad venue_id %q: %w", rec[idx["venue_id"]], err)
		}
		date, err := time.ParseInLocation(eventDateLayout, rec[idx["event_date"]], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("bad event_date %q: %w", rec[idx["event_date"]], err)
		}
		price, err := strconv.ParseFloat(rec[idx["base_price"]], 64)
		if err != nil {
			return nil, fmt.Errorf("bad base_price %q: %w", rec[idx["base_price"]], err)
		}

		row := eventRow{
			ID:        id,
			VenueID:   venueID,
			Title:     rec[idx["title"]],
			EventType: rec[idx["event_type"]],
			EventDate: date,
			BasePrice: price,
			Status:    rec[idx["status"]],
		}

		// The cancelled_at column is optional in the file, but a CANCELLED row
		// without it would break the rule that the timestamp exists exactly
		// when the status says so.
		if ci, ok := idx["cancelled_at"]; ok && rec[ci] != "" {
			at, err := time.ParseInLocation(eventDateLayout, rec[ci], time.UTC)
			if err != nil {
				return nil, fmt.Errorf("bad cancelled_at %q: %w", rec[ci], err)
			}
			row.CancelledAt = &at
		}
		if row.Status == "CANCELLED" && row.CancelledAt == nil {
			return nil, fmt.Errorf("event %d: CANCELLED row has no cancelled_at", id)
		}
		if row.Status != "CANCELLED" && row.CancelledAt != nil {
			return nil, fmt.Errorf("event %d: cancelled_at set on a %s row", id, row.Status)
		}

		out = append(out, row)
	}
	return out, nil
}

// readCSV reads a headered CSV and returns the data records plus a
// column-name -> index map for the required columns.
func readCSV(path string, required ...string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("%s: empty csv", path)
	}

	idx := make(map[string]int, len(all[0]))
	for i, col := range all[0] {
		idx[col] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, nil, fmt.Errorf("%s: missing column %q", path, col)
		}
	}
	return all[1:], idx, nil
}
