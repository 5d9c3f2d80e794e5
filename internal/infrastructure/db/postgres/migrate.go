package postgres

import (
	"context"
	"database/sql"

	zlog "github.com/rs/zerolog/log"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		venue_id BIGSERIAL PRIMARY KEY,
		name     TEXT NOT NULL,
		city     TEXT NOT NULL,
		capacity INT  NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		event_id     BIGSERIAL PRIMARY KEY,
		venue_id     BIGINT NOT NULL REFERENCES venues(venue_id),
		title        TEXT NOT NULL,
		event_type   TEXT NOT NULL,
		event_date   TIMESTAMPTZ NOT NULL,
		base_price   NUMERIC(10,2) NOT NULL DEFAULT 0,
		status       TEXT NOT NULL DEFAULT 'ACTIVE',
		cancelled_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_venue_id ON events (venue_id)`,
	`CREATE INDEX IF NOT EXISTS idx_events_status ON events (status)`,
	`CREATE INDEX IF NOT EXISTS idx_venues_city ON venues (city)`,
}

// RunMigrations applies the schema at startup. Statements are idempotent so a
// restart against an existing database is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return err
		}
	}
	zlog.Info().Msg("database migrations applied")
	return nil
}
