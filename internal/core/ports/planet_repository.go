package ports

import (
	"context"

	"github.com/planetary/planetary-api/internal/core/domain"
)

// PlanetRepository defines persistence operations for planets.
// Lookups that miss return domain.ErrPlanetNotFound.
type PlanetRepository interface {
	// List returns every planet ordered by ID.
	List(ctx context.Context) ([]domain.Planet, error)
	FindByID(ctx context.Context, id int64) (*domain.Planet, error)
	FindByName(ctx context.Context, name string) (*domain.Planet, error)
	// Create inserts p and fills in its generated ID.
	// A duplicate name yields domain.ErrPlanetExists.
	Create(ctx context.Context, p *domain.Planet) error
	// Update overwrites the mutable columns of the row identified by p.ID.
	Update(ctx context.Context, p *domain.Planet) error
	Delete(ctx context.Context, id int64) error
}
