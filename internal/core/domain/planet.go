package domain

import "errors"

var ErrPlanetNotFound = errors.New("planet not found")
var ErrPlanetExists = errors.New("planet already exists")

// Planet is a catalog entry. PlanetName is the business key used by the
// name-based mutation routes; ID is the storage primary key.
type Planet struct {
	ID         int64   `json:"planet_id"   db:"planet_id"`
	PlanetName string  `json:"planet_name" db:"planet_name"`
	PlanetType string  `json:"planet_type" db:"planet_type"`
	HomeStar   string  `json:"home_star"   db:"home_star"`
	Mass       float64 `json:"mass"        db:"mass"`
	Radius     float64 `json:"radius"      db:"radius"`
	Distance   float64 `json:"distance"    db:"distance"`
}

// PlanetAttributes holds the fields an update is allowed to overwrite.
type PlanetAttributes struct {
	PlanetType string
	HomeStar   string
	Mass       float64
	Radius     float64
	Distance   float64
}

// Apply overwrites the mutable fields of p. ID and PlanetName are untouched.
func (p *Planet) Apply(a PlanetAttributes) {
	p.PlanetType = a.PlanetType
	p.HomeStar = a.HomeStar
	p.Mass = a.Mass
	p.Radius = a.Radius
	p.Distance = a.Distance
}
