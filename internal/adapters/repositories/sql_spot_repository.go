package repositories

import (
	"coastal-day-planner/internal/domain"
	platformdb "coastal-day-planner/internal/platform/db"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL-backed implementation of the SpotRepository port.
type SQLSpotRepository struct {
	DB      *sql.DB
	Dialect platformdb.Dialect
}

func NewSQLSpotRepository(db *sql.DB, dialect platformdb.Dialect) *SQLSpotRepository {
	return &SQLSpotRepository{DB: db, Dialect: dialect}
}

// Return all spots in seed order.
func (s *SQLSpotRepository) ListSpots(ctx context.Context) ([]domain.Spot, error) {
	if s.DB == nil {
		return nil, errors.New("spot repository: DB is nil")
	}

	query := `
	SELECT
		id, name, name_en, lat, lng, kind, difficulty, description
	FROM spots
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list spots: query spots table: %w", err)
	}
	defer rows.Close()

	spots := make([]domain.Spot, 0, 8)
	for rows.Next() {
		var sp domain.Spot
		if err := rows.Scan(
			&sp.ID, &sp.Name, &sp.NameEn, &sp.Coordinates.Lat, &sp.Coordinates.Lng,
			&sp.Kind, &sp.Difficulty, &sp.Description,
		); err != nil {
			return nil, fmt.Errorf("list spots: scan row: %w", err)
		}
		spots = append(spots, sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list spots: row iteration: %w", err)
	}

	return spots, nil
}

func (s *SQLSpotRepository) GetSpot(ctx context.Context, id string) (domain.Spot, error) {
	if s.DB == nil {
		return domain.Spot{}, errors.New("spot repository: DB is nil")
	}

	query := s.Dialect.Rebind(`
	SELECT
		id, name, name_en, lat, lng, kind, difficulty, description
	FROM spots
	WHERE id = ?;
	`)

	var sp domain.Spot
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&sp.ID, &sp.Name, &sp.NameEn, &sp.Coordinates.Lat, &sp.Coordinates.Lng,
		&sp.Kind, &sp.Difficulty, &sp.Description,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Spot{}, fmt.Errorf("get spot %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Spot{}, fmt.Errorf("get spot %q: %w", id, err)
	}

	return sp, nil
}
