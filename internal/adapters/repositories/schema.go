package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// The same DDL runs on sqlite and postgres; DOUBLE PRECISION maps to REAL
// affinity in sqlite.
var schemaStatements = []string{
	`
	CREATE TABLE IF NOT EXISTS spots (
		id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		name TEXT NOT NULL,
		name_en TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		kind TEXT NOT NULL DEFAULT '',
		difficulty TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS pois (
		id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		location_id TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		price_tier INTEGER NOT NULL DEFAULT 0,
		rating DOUBLE PRECISION,
		tags TEXT NOT NULL DEFAULT '[]',
		description TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT ''
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_pois_location_seq
	ON pois(location_id, seq);
	`,
	`
	CREATE TABLE IF NOT EXISTS open_hours (
		poi_id TEXT NOT NULL,
		weekday INTEGER NOT NULL,
		open_min INTEGER,
		close_min INTEGER
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_open_hours_poi
	ON open_hours(poi_id, weekday);
	`,
	`
	CREATE TABLE IF NOT EXISTS sea_state_cache (
		location_id TEXT NOT NULL,
		day TEXT NOT NULL,
		wave_height_m DOUBLE PRECISION NOT NULL,
		wave_period_s DOUBLE PRECISION NOT NULL,
		wave_direction_deg DOUBLE PRECISION NOT NULL,
		swell_height_m DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (location_id, day)
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS weather_cache (
		location_id TEXT NOT NULL,
		day TEXT NOT NULL,
		temperature_c DOUBLE PRECISION NOT NULL,
		wind_speed_ms DOUBLE PRECISION NOT NULL,
		rainfall_pct DOUBLE PRECISION NOT NULL,
		humidity_pct DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (location_id, day)
	);
	`,
}

// Initialize the database schema. Safe to run repeatedly.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
