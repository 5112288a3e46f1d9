package repositories

import (
	"coastal-day-planner/internal/domain"
	platformdb "coastal-day-planner/internal/platform/db"
	"coastal-day-planner/internal/platform/obs"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SQL-backed implementation of the POICatalog port.
type SQLPOICatalog struct {
	DB      *sql.DB
	Dialect platformdb.Dialect
}

func NewSQLPOICatalog(db *sql.DB, dialect platformdb.Dialect) *SQLPOICatalog {
	return &SQLPOICatalog{DB: db, Dialect: dialect}
}

const poiColumns = `
	id,
	location_id,
	name,
	category,
	lat,
	lng,
	price_tier,
	rating,
	tags,
	description,
	phone,
	address
`

func (s *SQLPOICatalog) GetPOIsByLocation(ctx context.Context, locationID string) ([]domain.POI, error) {
	return s.GetPOIsByCategory(ctx, locationID, nil)
}

// Return POIs for a location in seed order, optionally narrowed to categories.
func (s *SQLPOICatalog) GetPOIsByCategory(
	ctx context.Context,
	locationID string,
	categories []domain.Category,
) (_ []domain.POI, err error) {
	defer obs.Time(ctx, "catalog.GetPOIs")(&err)

	if s.DB == nil {
		return nil, errors.New("poi catalog: DB is nil")
	}

	args := make([]any, 0, 1+len(categories))
	args = append(args, locationID)

	filter := ""
	if len(categories) > 0 {
		ph := make([]string, 0, len(categories))
		for _, c := range categories {
			ph = append(ph, "?")
			args = append(args, string(c))
		}
		// Only the placeholder structure is interpolated; values stay parameterized.
		filter = fmt.Sprintf(" AND category IN (%s)", strings.Join(ph, ","))
	}

	q := s.Dialect.Rebind(`SELECT` + poiColumns + `FROM pois WHERE location_id = ?` + filter + ` ORDER BY seq;`)

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get pois: query pois table: %w", err)
	}
	defer rows.Close()

	pois := make([]domain.POI, 0, 16)
	for rows.Next() {
		p, err := scanPOI(rows)
		if err != nil {
			return nil, fmt.Errorf("get pois: %w", err)
		}
		pois = append(pois, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get pois: row iteration: %w", err)
	}

	return pois, nil
}

func scanPOI(rows *sql.Rows) (domain.POI, error) {
	var (
		p        domain.POI
		category string
		tier     int
		rating   sql.NullFloat64
		tags     string
	)

	if err := rows.Scan(
		&p.ID, &p.LocationID, &p.Name, &category, &p.Lat, &p.Lng,
		&tier, &rating, &tags, &p.Description, &p.Phone, &p.Address,
	); err != nil {
		return domain.POI{}, fmt.Errorf("scan row: %w", err)
	}

	p.Category = domain.Category(category)
	p.PriceTier = domain.PriceTier(tier)
	if rating.Valid {
		r := rating.Float64
		p.Rating = &r
	}
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		return domain.POI{}, fmt.Errorf("decode tags for poi %q: %w", p.ID, err)
	}

	return p, nil
}
