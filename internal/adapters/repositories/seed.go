package repositories

import (
	"coastal-day-planner/internal/domain"
	platformdb "coastal-day-planner/internal/platform/db"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

type SpotSeed struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NameEn      string  `json:"name_en"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Kind        string  `json:"kind"`
	Difficulty  string  `json:"difficulty"`
	Description string  `json:"description"`
}

type POISeed struct {
	ID          string   `json:"id"`
	LocationID  string   `json:"location_id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Price       string   `json:"price"`
	Rating      *float64 `json:"rating"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
}

type PeriodSeed struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// CatalogSeed is the on-disk seed format. OpenHours is keyed by POI id, then
// weekday ("mon".."sun"); an empty list marks the POI closed that day.
type CatalogSeed struct {
	Spots     []SpotSeed                         `json:"spots"`
	POIs      []POISeed                          `json:"pois"`
	OpenHours map[string]map[string][]PeriodSeed `json:"open_hours"`
}

// Catalog is a validated seed in domain form. Slice order is catalog order.
type Catalog struct {
	Spots     []domain.Spot
	POIs      []domain.POI
	OpenHours map[string]domain.WeeklySchedule
}

// Read and validate a JSON seed file.
func LoadCatalogFile(jsonPath string) (*Catalog, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: read %q: %w", jsonPath, err)
	}

	c, err := ParseCatalog(bytes)
	if err != nil {
		return nil, fmt.Errorf("load catalog %q: %w", jsonPath, err)
	}
	return c, nil
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var seed CatalogSeed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse catalog: parse json: %w", err)
	}

	out := &Catalog{
		Spots:     make([]domain.Spot, 0, len(seed.Spots)),
		POIs:      make([]domain.POI, 0, len(seed.POIs)),
		OpenHours: make(map[string]domain.WeeklySchedule, len(seed.OpenHours)),
	}

	spotIDs := make(map[string]struct{}, len(seed.Spots))
	for i, s := range seed.Spots {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			return nil, fmt.Errorf("parse catalog: spot at index %d: id cannot be empty", i+1)
		}
		if _, dup := spotIDs[id]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate spot id %q", id)
		}
		spotIDs[id] = struct{}{}

		out.Spots = append(out.Spots, domain.Spot{
			ID:          id,
			Name:        s.Name,
			NameEn:      s.NameEn,
			Coordinates: domain.Coordinates{Lat: s.Lat, Lng: s.Lng},
			Kind:        s.Kind,
			Difficulty:  s.Difficulty,
			Description: s.Description,
		})
	}

	poiIDs := make(map[string]struct{}, len(seed.POIs))
	for i, p := range seed.POIs {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("parse catalog: poi at index %d: id cannot be empty", i+1)
		}
		if _, dup := poiIDs[id]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate poi id %q", id)
		}
		poiIDs[id] = struct{}{}

		if _, ok := spotIDs[p.LocationID]; !ok {
			return nil, fmt.Errorf("parse catalog: poi %q: unknown location %q", id, p.LocationID)
		}

		cat, err := domain.ParseCategory(p.Category)
		if err != nil {
			return nil, fmt.Errorf("parse catalog: poi %q: %w", id, err)
		}

		tier, err := domain.ParsePriceTier(p.Price)
		if err != nil {
			return nil, fmt.Errorf("parse catalog: poi %q: %w", id, err)
		}

		out.POIs = append(out.POIs, domain.POI{
			ID:          id,
			LocationID:  p.LocationID,
			Name:        p.Name,
			Category:    cat,
			Lat:         p.Lat,
			Lng:         p.Lng,
			PriceTier:   tier,
			Rating:      p.Rating,
			Tags:        p.Tags,
			Description: p.Description,
			Phone:       p.Phone,
			Address:     p.Address,
		})
	}

	for poiID, days := range seed.OpenHours {
		if _, ok := poiIDs[poiID]; !ok {
			return nil, fmt.Errorf("parse catalog: open hours for unknown poi %q", poiID)
		}

		sched := make(domain.WeeklySchedule, len(days))
		for key, periods := range days {
			wd, err := domain.ParseWeekday(key)
			if err != nil {
				return nil, fmt.Errorf("parse catalog: open hours %q: %w", poiID, err)
			}

			ps := make([]domain.OpenPeriod, 0, len(periods))
			for _, p := range periods {
				open, err := domain.ParseClock(p.Open)
				if err != nil {
					return nil, fmt.Errorf("parse catalog: open hours %q %s: %w", poiID, key, err)
				}
				closing, err := domain.ParseClock(p.Close)
				if err != nil {
					return nil, fmt.Errorf("parse catalog: open hours %q %s: %w", poiID, key, err)
				}
				if closing < open {
					return nil, fmt.Errorf("parse catalog: open hours %q %s: close %s before open %s", poiID, key, closing, open)
				}
				ps = append(ps, domain.OpenPeriod{Open: open, Close: closing})
			}
			sched[wd] = ps
		}
		out.OpenHours[poiID] = sched
	}

	return out, nil
}

// Populate the database from a JSON seed file.
func SeedFromJSON(ctx context.Context, db *sql.DB, dialect platformdb.Dialect, jsonPath string) error {
	c, err := LoadCatalogFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return SeedCatalog(ctx, db, dialect, c)
}

// Upsert spots and POIs and replace the stored hours of every seeded POI,
// all in one transaction.
func SeedCatalog(ctx context.Context, db *sql.DB, dialect platformdb.Dialect, c *Catalog) error {
	if db == nil {
		return errors.New("seed catalog: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	spotStmt, err := tx.PrepareContext(ctx, dialect.Rebind(`
	INSERT INTO spots (id, seq, name, name_en, lat, lng, kind, difficulty, description)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE
	SET seq = EXCLUDED.seq,
		name = EXCLUDED.name,
		name_en = EXCLUDED.name_en,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		kind = EXCLUDED.kind,
		difficulty = EXCLUDED.difficulty,
		description = EXCLUDED.description;
	`))
	if err != nil {
		return fmt.Errorf("seed catalog: prepare spot insert: %w", err)
	}
	defer spotStmt.Close()

	for i, s := range c.Spots {
		if _, err := spotStmt.ExecContext(ctx,
			s.ID, i, s.Name, s.NameEn, s.Coordinates.Lat, s.Coordinates.Lng, s.Kind, s.Difficulty, s.Description,
		); err != nil {
			return fmt.Errorf("seed catalog: insert spot id=%q: %w", s.ID, err)
		}
	}

	poiStmt, err := tx.PrepareContext(ctx, dialect.Rebind(`
	INSERT INTO pois (id, seq, location_id, name, category, lat, lng, price_tier, rating, tags, description, phone, address)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE
	SET seq = EXCLUDED.seq,
		location_id = EXCLUDED.location_id,
		name = EXCLUDED.name,
		category = EXCLUDED.category,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		price_tier = EXCLUDED.price_tier,
		rating = EXCLUDED.rating,
		tags = EXCLUDED.tags,
		description = EXCLUDED.description,
		phone = EXCLUDED.phone,
		address = EXCLUDED.address;
	`))
	if err != nil {
		return fmt.Errorf("seed catalog: prepare poi insert: %w", err)
	}
	defer poiStmt.Close()

	for i, p := range c.POIs {
		tags, err := encodeTags(p.Tags)
		if err != nil {
			return fmt.Errorf("seed catalog: poi id=%q: %w", p.ID, err)
		}

		var rating sql.NullFloat64
		if p.Rating != nil {
			rating = sql.NullFloat64{Float64: *p.Rating, Valid: true}
		}

		if _, err := poiStmt.ExecContext(ctx,
			p.ID, i, p.LocationID, p.Name, string(p.Category), p.Lat, p.Lng, int(p.PriceTier), rating, tags, p.Description, p.Phone, p.Address,
		); err != nil {
			return fmt.Errorf("seed catalog: insert poi id=%q: %w", p.ID, err)
		}
	}

	for poiID, sched := range c.OpenHours {
		if err := replaceOpenHours(ctx, tx, dialect, poiID, sched); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}

// A weekday without periods is stored as a single row with NULL bounds so
// "closed" stays distinct from "no data".
func replaceOpenHours(ctx context.Context, tx *sql.Tx, dialect platformdb.Dialect, poiID string, sched domain.WeeklySchedule) error {
	if _, err := tx.ExecContext(ctx, dialect.Rebind(`DELETE FROM open_hours WHERE poi_id = ?;`), poiID); err != nil {
		return fmt.Errorf("replace open hours poi_id=%q: delete: %w", poiID, err)
	}

	insert := dialect.Rebind(`
	INSERT INTO open_hours (poi_id, weekday, open_min, close_min)
	VALUES (?, ?, ?, ?);
	`)

	for wd, periods := range sched {
		if len(periods) == 0 {
			if _, err := tx.ExecContext(ctx, insert, poiID, int(wd), nil, nil); err != nil {
				return fmt.Errorf("replace open hours poi_id=%q weekday=%d: %w", poiID, wd, err)
			}
			continue
		}
		for _, p := range periods {
			if _, err := tx.ExecContext(ctx, insert, poiID, int(wd), int(p.Open), int(p.Close)); err != nil {
				return fmt.Errorf("replace open hours poi_id=%q weekday=%d: %w", poiID, wd, err)
			}
		}
	}
	return nil
}

func encodeTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}
