package domain

import (
	"fmt"
	"strings"
)

// Mobility is the transportation mode used for travel legs.
type Mobility string

const (
	MobilityWalk    Mobility = "walk"
	MobilityBike    Mobility = "bike"
	MobilityScooter Mobility = "scooter"
	MobilityCar     Mobility = "car"
	MobilityTransit Mobility = "transit"
)

// Average speeds in km/h. Car is an urban figure.
var speedsKmPerHour = map[Mobility]float64{
	MobilityWalk:    4,
	MobilityBike:    15,
	MobilityScooter: 28,
	MobilityCar:     30,
	MobilityTransit: 20,
}

func ParseMobility(s string) (Mobility, error) {
	m := Mobility(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("parse mobility %q: %w", s, ErrInvalidInput)
	}
	return m, nil
}

func (m Mobility) Valid() bool {
	_, ok := speedsKmPerHour[m]
	return ok
}

// SpeedKmPerHour returns the fixed average speed for the mode.
func (m Mobility) SpeedKmPerHour() (float64, error) {
	v, ok := speedsKmPerHour[m]
	if !ok {
		return 0, fmt.Errorf("speed for mobility %q: %w", string(m), ErrInvalidInput)
	}
	return v, nil
}

// TwoWheeled reports whether the rider is exposed to crosswinds.
func (m Mobility) TwoWheeled() bool {
	return m == MobilityScooter || m == MobilityBike
}
