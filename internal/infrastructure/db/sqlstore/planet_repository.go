package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/planetary/planetary-api/internal/core/domain"
)

const planetColumns = `planet_id, planet_name, planet_type, home_star, mass, radius, distance`

// PlanetRepository stores the planet catalog in the planets table.
type PlanetRepository struct {
	db sqlx.ExtContext
}

// NewPlanetRepository accepts a *sqlx.DB or a *sqlx.Tx.
func NewPlanetRepository(db sqlx.ExtContext) *PlanetRepository {
	return &PlanetRepository{db: db}
}

// List returns every planet ordered by planet_id.
func (r *PlanetRepository) List(ctx context.Context) ([]domain.Planet, error) {
	planets := []domain.Planet{}
	if err := sqlx.SelectContext(ctx, r.db, &planets, `SELECT `+planetColumns+` FROM planets ORDER BY planet_id`); err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	return planets, nil
}

func (r *PlanetRepository) FindByID(ctx context.Context, id int64) (*domain.Planet, error) {
	return r.findOne(ctx, `SELECT `+planetColumns+` FROM planets WHERE planet_id = ?`, id)
}

func (r *PlanetRepository) FindByName(ctx context.Context, name string) (*domain.Planet, error) {
	return r.findOne(ctx, `SELECT `+planetColumns+` FROM planets WHERE planet_name = ?`, name)
}

func (r *PlanetRepository) findOne(ctx context.Context, query string, arg any) (*domain.Planet, error) {
	var p domain.Planet
	if err := sqlx.GetContext(ctx, r.db, &p, r.db.Rebind(query), arg); err != nil {
		if isNoRows(err) {
			return nil, domain.ErrPlanetNotFound
		}
		return nil, fmt.Errorf("find planet: %w", err)
	}
	return &p, nil
}

// Create inserts p and sets its generated ID.
func (r *PlanetRepository) Create(ctx context.Context, p *domain.Planet) error {
	q := r.db.Rebind(`INSERT INTO planets (planet_name, planet_type, home_star, mass, radius, distance)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING planet_id`)
	err := sqlx.GetContext(ctx, r.db, &p.ID, q, p.PlanetName, p.PlanetType, p.HomeStar, p.Mass, p.Radius, p.Distance)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPlanetExists
		}
		return fmt.Errorf("create planet: %w", err)
	}
	return nil
}

// Update overwrites the mutable columns of the row identified by p.ID.
func (r *PlanetRepository) Update(ctx context.Context, p *domain.Planet) error {
	q := r.db.Rebind(`UPDATE planets SET planet_type = ?, home_star = ?, mass = ?, radius = ?, distance = ?
		WHERE planet_id = ?`)
	res, err := r.db.ExecContext(ctx, q, p.PlanetType, p.HomeStar, p.Mass, p.Radius, p.Distance, p.ID)
	if err != nil {
		return fmt.Errorf("update planet: %w", err)
	}
	return expectOneRow(res.RowsAffected())
}

func (r *PlanetRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM planets WHERE planet_id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete planet: %w", err)
	}
	return expectOneRow(res.RowsAffected())
}

// Count returns the number of stored planets.
func (r *PlanetRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, r.db, &n, `SELECT COUNT(*) FROM planets`); err != nil {
		return 0, fmt.Errorf("count planets: %w", err)
	}
	return n, nil
}

func expectOneRow(n int64, err error) error {
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrPlanetNotFound
	}
	return nil
}
