package ports

import (
	"context"

	"github.com/planetary/planetary-api/internal/core/domain"
)

// AddPlanetInput carries all fields of a new planet.
type AddPlanetInput struct {
	PlanetName string
	PlanetType string
	HomeStar   string
	Mass       float64
	Radius     float64
	Distance   float64
}

// PlanetService defines the planet catalog use cases.
type PlanetService interface {
	List(ctx context.Context) ([]domain.Planet, error)
	Get(ctx context.Context, id int64) (*domain.Planet, error)
	Add(ctx context.Context, in AddPlanetInput) (*domain.Planet, error)
	UpdateByName(ctx context.Context, name string, attrs domain.PlanetAttributes) (*domain.Planet, error)
	UpdateByID(ctx context.Context, id int64, attrs domain.PlanetAttributes) (*domain.Planet, error)
	DeleteByName(ctx context.Context, name string) error
	DeleteByID(ctx context.Context, id int64) error
}
