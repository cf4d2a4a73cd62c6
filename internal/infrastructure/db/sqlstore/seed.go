package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/planetary/planetary-api/internal/core/domain"
)

// SeedPlanets are the catalog rows inserted by Seed.
var SeedPlanets = []domain.Planet{
	{PlanetName: "Mercury", PlanetType: "Class D", HomeStar: "Sun", Mass: 3.258e23, Radius: 1516, Distance: 35.98e6},
	{PlanetName: "Venus", PlanetType: "Class K", HomeStar: "Sun", Mass: 4.867e24, Radius: 3760, Distance: 67.24e6},
	{PlanetName: "Earth", PlanetType: "Class M", HomeStar: "Sun", Mass: 5.972e24, Radius: 3959, Distance: 92.96e6},
}

// Seed account credentials.
const (
	SeedUserEmail    = "test@test.com"
	SeedUserPassword = "123456"
)

// Seed inserts the demo planets and user in one transaction. It does nothing
// when either table already holds rows and reports whether it inserted.
func Seed(ctx context.Context, db *sqlx.DB, log zerolog.Logger) (bool, error) {
	planets, err := NewPlanetRepository(db).Count(ctx)
	if err != nil {
		return false, err
	}
	users, err := NewUserRepository(db).Count(ctx)
	if err != nil {
		return false, err
	}
	if planets > 0 || users > 0 {
		log.Info().Int("planets", planets).Int("users", users).Msg("database already populated, skipping seed")
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("seed: hash password: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("seed: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	planetRepo := NewPlanetRepository(tx)
	for _, p := range SeedPlanets {
		p := p
		if err := planetRepo.Create(ctx, &p); err != nil {
			return false, fmt.Errorf("seed planet %s: %w", p.PlanetName, err)
		}
	}

	user := domain.User{
		FirstName:    "William",
		LastName:     "Hershel",
		Email:        SeedUserEmail,
		PasswordHash: string(hash),
	}
	if err := NewUserRepository(tx).Create(ctx, &user); err != nil {
		return false, fmt.Errorf("seed user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("seed: commit: %w", err)
	}

	log.Info().Int("planets", len(SeedPlanets)).Msg("database seeded")
	return true, nil
}
