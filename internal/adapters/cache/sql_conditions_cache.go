package cache

import (
	"coastal-day-planner/internal/domain"
	platformdb "coastal-day-planner/internal/platform/db"
	"coastal-day-planner/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLConditionsCache stores daily sea-state and weather summaries keyed by
// (location, day). Rows are never expired; a day's forecast is frozen once
// fetched.
type SQLConditionsCache struct {
	DB      *sql.DB
	Dialect platformdb.Dialect
}

func NewSQLConditionsCache(db *sql.DB, dialect platformdb.Dialect) *SQLConditionsCache {
	return &SQLConditionsCache{DB: db, Dialect: dialect}
}

func (s *SQLConditionsCache) GetSeaState(
	ctx context.Context,
	locationID, date string,
) (_ domain.SeaState, _ bool, err error) {
	defer obs.Time(ctx, "conditions.cache.GetSeaState")(&err)

	if err := s.checkKey(locationID, date); err != nil {
		return domain.SeaState{}, false, fmt.Errorf("get sea state cache: %w", err)
	}

	q := s.Dialect.Rebind(`
	SELECT wave_height_m, wave_period_s, wave_direction_deg, swell_height_m
	FROM sea_state_cache
	WHERE location_id = ? AND day = ?;
	`)

	sea := domain.SeaState{LocationID: locationID, Date: date}
	err = s.DB.QueryRowContext(ctx, q, locationID, date).Scan(
		&sea.WaveHeightM, &sea.WavePeriodS, &sea.WaveDirectionDeg, &sea.SwellHeightM,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SeaState{}, false, nil
	}
	if err != nil {
		return domain.SeaState{}, false, fmt.Errorf("get sea state cache: query sea_state_cache table: %w", err)
	}

	return sea, true, nil
}

func (s *SQLConditionsCache) PutSeaState(ctx context.Context, sea domain.SeaState) error {
	if err := s.checkKey(sea.LocationID, sea.Date); err != nil {
		return fmt.Errorf("insert sea state cache: %w", err)
	}

	q := s.Dialect.Rebind(`
	INSERT INTO sea_state_cache (location_id, day, wave_height_m, wave_period_s, wave_direction_deg, swell_height_m)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (location_id, day) DO UPDATE
	SET wave_height_m = EXCLUDED.wave_height_m,
		wave_period_s = EXCLUDED.wave_period_s,
		wave_direction_deg = EXCLUDED.wave_direction_deg,
		swell_height_m = EXCLUDED.swell_height_m;
	`)

	if _, err := s.DB.ExecContext(ctx, q,
		sea.LocationID, sea.Date, sea.WaveHeightM, sea.WavePeriodS, sea.WaveDirectionDeg, sea.SwellHeightM,
	); err != nil {
		return fmt.Errorf("insert sea state cache location=%q day=%s: %w", sea.LocationID, sea.Date, err)
	}
	return nil
}

func (s *SQLConditionsCache) GetWeather(
	ctx context.Context,
	locationID, date string,
) (_ domain.Weather, _ bool, err error) {
	defer obs.Time(ctx, "conditions.cache.GetWeather")(&err)

	if err := s.checkKey(locationID, date); err != nil {
		return domain.Weather{}, false, fmt.Errorf("get weather cache: %w", err)
	}

	q := s.Dialect.Rebind(`
	SELECT temperature_c, wind_speed_ms, rainfall_pct, humidity_pct
	FROM weather_cache
	WHERE location_id = ? AND day = ?;
	`)

	w := domain.Weather{LocationID: locationID, Date: date}
	err = s.DB.QueryRowContext(ctx, q, locationID, date).Scan(
		&w.TemperatureC, &w.WindSpeedMS, &w.RainfallPct, &w.HumidityPct,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Weather{}, false, nil
	}
	if err != nil {
		return domain.Weather{}, false, fmt.Errorf("get weather cache: query weather_cache table: %w", err)
	}

	return w, true, nil
}

func (s *SQLConditionsCache) PutWeather(ctx context.Context, w domain.Weather) error {
	if err := s.checkKey(w.LocationID, w.Date); err != nil {
		return fmt.Errorf("insert weather cache: %w", err)
	}

	q := s.Dialect.Rebind(`
	INSERT INTO weather_cache (location_id, day, temperature_c, wind_speed_ms, rainfall_pct, humidity_pct)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (location_id, day) DO UPDATE
	SET temperature_c = EXCLUDED.temperature_c,
		wind_speed_ms = EXCLUDED.wind_speed_ms,
		rainfall_pct = EXCLUDED.rainfall_pct,
		humidity_pct = EXCLUDED.humidity_pct;
	`)

	if _, err := s.DB.ExecContext(ctx, q,
		w.LocationID, w.Date, w.TemperatureC, w.WindSpeedMS, w.RainfallPct, w.HumidityPct,
	); err != nil {
		return fmt.Errorf("insert weather cache location=%q day=%s: %w", w.LocationID, w.Date, err)
	}
	return nil
}

func (s *SQLConditionsCache) checkKey(locationID, date string) error {
	if s.DB == nil {
		return errors.New("conditions cache: db is nil")
	}
	if strings.TrimSpace(locationID) == "" || strings.TrimSpace(date) == "" {
		return errors.New("location and date must not be empty")
	}
	return nil
}
