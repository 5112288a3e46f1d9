package domain

// A surf spot or observation station; the location id POIs hang off.
type Spot struct {
	ID          string
	Name        string
	NameEn      string
	Coordinates Coordinates
	Kind        string
	Difficulty  string
	Description string
}
