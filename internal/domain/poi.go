package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Category is the closed set of POI kinds the catalog knows about.
type Category string

const (
	CategoryFood    Category = "food"
	CategoryCafe    Category = "cafe"
	CategoryRental  Category = "rental"
	CategoryShower  Category = "shower"
	CategoryParking Category = "parking"
	CategoryView    Category = "view"
	CategoryCulture Category = "culture"
)

var categories = []Category{
	CategoryFood,
	CategoryCafe,
	CategoryRental,
	CategoryShower,
	CategoryParking,
	CategoryView,
	CategoryCulture,
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(categories, c) {
		return "", fmt.Errorf("parse category %q: %w", s, ErrInvalidInput)
	}
	return c, nil
}

// PriceTier is an ordinal price band. The zero value means unknown.
type PriceTier int

const (
	PriceUnknown PriceTier = iota
	PriceLow
	PriceMid
	PriceHigh
)

// ParsePriceTier accepts "low"/"mid"/"high" as well as "$"/"$$"/"$$$".
// An empty string yields PriceUnknown.
func ParsePriceTier(s string) (PriceTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriceUnknown, nil
	case "low", "$":
		return PriceLow, nil
	case "mid", "$$":
		return PriceMid, nil
	case "high", "$$$":
		return PriceHigh, nil
	}
	return PriceUnknown, fmt.Errorf("parse price tier %q: %w", s, ErrInvalidInput)
}

func (p PriceTier) String() string {
	switch p {
	case PriceLow:
		return "low"
	case PriceMid:
		return "mid"
	case PriceHigh:
		return "high"
	}
	return ""
}

// Represents a point of interest near a surf spot.
// POIs are immutable reference data owned by the catalog.
type POI struct {
	ID          string
	LocationID  string
	Name        string
	Category    Category
	Lat         float64
	Lng         float64
	PriceTier   PriceTier
	Rating      *float64
	Tags        []string
	Description string
	Phone       string
	Address     string
}

func (p POI) Coordinates() Coordinates { return Coordinates{Lat: p.Lat, Lng: p.Lng} }

func (p POI) HasTag(tag string) bool {
	return slices.ContainsFunc(p.Tags, func(t string) bool {
		return strings.EqualFold(t, tag)
	})
}
