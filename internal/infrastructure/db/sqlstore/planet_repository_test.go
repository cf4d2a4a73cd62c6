package sqlstore

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetary/planetary-api/internal/core/domain"
)

func pluto() domain.Planet {
	return domain.Planet{PlanetName: "Pluto", PlanetType: "Dwarf", HomeStar: "Sun", Mass: 1.3e22, Radius: 738, Distance: 3.7e9}
}

func TestPlanetRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanetRepository(openTestDB(t))

	p := pluto()
	require.NoError(t, repo.Create(ctx, &p))
	require.NotZero(t, p.ID)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, *got)

	byName, err := repo.FindByName(ctx, "Pluto")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byName.ID)

	p.PlanetType, p.Radius = "Plutoid", 740
	require.NoError(t, repo.Update(ctx, &p))
	got, err = repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Plutoid", got.PlanetType)
	assert.Equal(t, float64(740), got.Radius)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrPlanetNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), domain.ErrPlanetNotFound)
}

func TestPlanetRepository_DuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanetRepository(openTestDB(t))

	first := pluto()
	require.NoError(t, repo.Create(ctx, &first))

	dup := pluto()
	dup.HomeStar = "Other"
	assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrPlanetExists)

	got, err := repo.FindByName(ctx, "Pluto")
	require.NoError(t, err)
	assert.Equal(t, "Sun", got.HomeStar)
}

func TestPlanetRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanetRepository(openTestDB(t))

	_, err := repo.FindByName(ctx, "Vulcan")
	assert.ErrorIs(t, err, domain.ErrPlanetNotFound)

	missing := pluto()
	missing.ID = 99
	assert.ErrorIs(t, repo.Update(ctx, &missing), domain.ErrPlanetNotFound)
}

func TestPlanetRepository_ListOrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanetRepository(openTestDB(t))

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		p := pluto()
		p.PlanetName = name
		require.NoError(t, repo.Create(ctx, &p))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Zeta", list[0].PlanetName)
	assert.Less(t, list[0].ID, list[1].ID)
	assert.Less(t, list[1].ID, list[2].ID)
}

func newMockRepo(t *testing.T) (*PlanetRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPlanetRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestPlanetRepository_DriverErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepo(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta("FROM planets ORDER BY planet_id")).WillReturnError(boom)
	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE planet_id = ?")).WithArgs(int64(1)).WillReturnError(boom)
	_, err = repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrPlanetNotFound)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM planets")).WithArgs(int64(1)).WillReturnError(boom)
	assert.ErrorIs(t, repo.Delete(ctx, 1), boom)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanetRepository_UpdateNoRows(t *testing.T) {
	repo, mock := newMockRepo(t)
	p := pluto()
	p.ID = 5

	mock.ExpectExec(regexp.QuoteMeta("UPDATE planets SET")).
		WithArgs(p.PlanetType, p.HomeStar, p.Mass, p.Radius, p.Distance, p.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Update(context.Background(), &p), domain.ErrPlanetNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
