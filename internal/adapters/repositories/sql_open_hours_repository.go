package repositories

import (
	"coastal-day-planner/internal/domain"
	platformdb "coastal-day-planner/internal/platform/db"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQL-backed implementation of the OpenHoursProvider port.
type SQLOpenHoursRepository struct {
	DB      *sql.DB
	Dialect platformdb.Dialect
}

func NewSQLOpenHoursRepository(db *sql.DB, dialect platformdb.Dialect) *SQLOpenHoursRepository {
	return &SQLOpenHoursRepository{DB: db, Dialect: dialect}
}

// Rows with NULL bounds mark a closed weekday.
func (s *SQLOpenHoursRepository) GetOpenHours(ctx context.Context, poiID string) (domain.WeeklySchedule, error) {
	if s.DB == nil {
		return nil, errors.New("open hours repository: DB is nil")
	}

	query := s.Dialect.Rebind(`
	SELECT weekday, open_min, close_min
	FROM open_hours
	WHERE poi_id = ?
	ORDER BY weekday, open_min;
	`)

	rows, err := s.DB.QueryContext(ctx, query, poiID)
	if err != nil {
		return nil, fmt.Errorf("get open hours %q: query open_hours table: %w", poiID, err)
	}
	defer rows.Close()

	sched := domain.WeeklySchedule{}
	for rows.Next() {
		var (
			wd          int
			openMin, closeMin sql.NullInt64
		)
		if err := rows.Scan(&wd, &openMin, &closeMin); err != nil {
			return nil, fmt.Errorf("get open hours %q: scan row: %w", poiID, err)
		}

		day := time.Weekday(wd)
		if !openMin.Valid || !closeMin.Valid {
			if _, ok := sched[day]; !ok {
				sched[day] = []domain.OpenPeriod{}
			}
			continue
		}
		sched[day] = append(sched[day], domain.OpenPeriod{
			Open:  domain.Clock(openMin.Int64),
			Close: domain.Clock(closeMin.Int64),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get open hours %q: row iteration: %w", poiID, err)
	}

	return sched, nil
}
