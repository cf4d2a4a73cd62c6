package handler

import (
	"github.com/planetary/planetary-api/internal/core/domain"
	"github.com/planetary/planetary-api/internal/core/ports"
)

// messageResponse is the envelope every JSON response body uses.
type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// --- Auth ---

type registerRequest struct {
	Email     string `json:"email"      form:"email"      validate:"required,email"`
	FirstName string `json:"first_name" form:"first_name" validate:"required"`
	LastName  string `json:"last_name"  form:"last_name"  validate:"required"`
	Password  string `json:"password"   form:"password"   validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    form:"email"    validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// --- Planets ---

// Numeric fields are pointers so a missing key is told apart from zero.
type planetAttributesRequest struct {
	PlanetType string   `json:"planet_type" validate:"required"`
	HomeStar   string   `json:"home_star"   validate:"required"`
	Mass       *float64 `json:"mass"        validate:"required"`
	Radius     *float64 `json:"radius"      validate:"required"`
	Distance   *float64 `json:"distance"    validate:"required"`
}

type addPlanetRequest struct {
	PlanetName string `json:"planet_name" validate:"required"`
	planetAttributesRequest
}

type updatePlanetRequest struct {
	PlanetName string `json:"planet_name" validate:"required"`
	planetAttributesRequest
}

// planetIDParam binds the numeric id of the id-based planet routes.
type planetIDParam struct {
	ID int64 `param:"id"`
}

func (r planetAttributesRequest) toAttributes() domain.PlanetAttributes {
	return domain.PlanetAttributes{
		PlanetType: r.PlanetType,
		HomeStar:   r.HomeStar,
		Mass:       deref(r.Mass),
		Radius:     deref(r.Radius),
		Distance:   deref(r.Distance),
	}
}

func (r addPlanetRequest) toInput() ports.AddPlanetInput {
	a := r.toAttributes()
	return ports.AddPlanetInput{
		PlanetName: r.PlanetName,
		PlanetType: a.PlanetType,
		HomeStar:   a.HomeStar,
		Mass:       a.Mass,
		Radius:     a.Radius,
		Distance:   a.Distance,
	}
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
