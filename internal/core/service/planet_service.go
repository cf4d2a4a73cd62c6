package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/planetary/planetary-api/internal/api/metrics"
	"github.com/planetary/planetary-api/internal/core/domain"
	"github.com/planetary/planetary-api/internal/core/ports"
)

type PlanetService struct {
	repo   ports.PlanetRepository
	logger zerolog.Logger
}

func NewPlanetService(repo ports.PlanetRepository, logger zerolog.Logger) *PlanetService {
	return &PlanetService{repo: repo, logger: logger}
}

func (s *PlanetService) List(ctx context.Context) ([]domain.Planet, error) {
	return s.repo.List(ctx)
}

func (s *PlanetService) Get(ctx context.Context, id int64) (*domain.Planet, error) {
	return s.repo.FindByID(ctx, id)
}

// Add creates a planet unless one with the same name already exists.
func (s *PlanetService) Add(ctx context.Context, in ports.AddPlanetInput) (*domain.Planet, error) {
	if _, err := s.repo.FindByName(ctx, in.PlanetName); err == nil {
		return nil, domain.ErrPlanetExists
	} else if !errors.Is(err, domain.ErrPlanetNotFound) {
		return nil, fmt.Errorf("add planet: %w", err)
	}

	p := &domain.Planet{
		PlanetName: in.PlanetName,
		PlanetType: in.PlanetType,
		HomeStar:   in.HomeStar,
		Mass:       in.Mass,
		Radius:     in.Radius,
		Distance:   in.Distance,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	metrics.PlanetMutationsTotal.WithLabelValues("add").Inc()
	s.logger.Info().Int64("planet_id", p.ID).Str("planet_name", p.PlanetName).Msg("planet added")
	return p, nil
}

func (s *PlanetService) UpdateByName(ctx context.Context, name string, attrs domain.PlanetAttributes) (*domain.Planet, error) {
	p, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, p, attrs)
}

func (s *PlanetService) UpdateByID(ctx context.Context, id int64, attrs domain.PlanetAttributes) (*domain.Planet, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, p, attrs)
}

func (s *PlanetService) update(ctx context.Context, p *domain.Planet, attrs domain.PlanetAttributes) (*domain.Planet, error) {
	p.Apply(attrs)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	metrics.PlanetMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Int64("planet_id", p.ID).Str("planet_name", p.PlanetName).Msg("planet updated")
	return p, nil
}

func (s *PlanetService) DeleteByName(ctx context.Context, name string) error {
	p, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return err
	}
	return s.delete(ctx, p)
}

func (s *PlanetService) DeleteByID(ctx context.Context, id int64) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.delete(ctx, p)
}

func (s *PlanetService) delete(ctx context.Context, p *domain.Planet) error {
	if err := s.repo.Delete(ctx, p.ID); err != nil {
		return err
	}

	metrics.PlanetMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Int64("planet_id", p.ID).Str("planet_name", p.PlanetName).Msg("planet deleted")
	return nil
}
