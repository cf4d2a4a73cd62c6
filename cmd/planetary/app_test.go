package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetary/planetary-api/internal/infrastructure/db/sqlstore"
)

func newTestApp(t *testing.T, buf *bytes.Buffer) *app {
	t.Helper()
	db, err := sqlstore.Open(context.Background(), sqlstore.DriverSQLite, filepath.Join(t.TempDir(), "planets.db"))
	require.NoError(t, err)
	mr := miniredis.RunT(t)
	return &app{
		log: zerolog.New(buf),
		db:  db,
		rdb: goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
	}
}

func TestApp_CloseAndLog(t *testing.T) {
	var buf bytes.Buffer
	a := newTestApp(t, &buf)

	a.closeAndLog()
	assert.Empty(t, buf.String(), "clean close logs nothing")

	// The redis client refuses a second close.
	a.closeAndLog()
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "close redis")
	assert.Contains(t, buf.String(), "failed to release resources")
}
