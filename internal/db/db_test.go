package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arpgcore/internal/testutil"
)

func TestRunMigrations_UpToDate(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	dsn := pool.Config().ConnString()

	version, err := RunMigrations(ctx, dsn)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	version, err = RunMigrations(ctx, dsn)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version, "second run applies nothing")
}

func TestNew(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()

	database, err := New(ctx, pool.Config().ConnString(), 3)
	require.NoError(t, err)
	defer database.Close()

	assert.Equal(t, int32(3), database.Pool().Config().MaxConns)

	var app string
	require.NoError(t, database.Pool().QueryRow(ctx, `SELECT current_setting('application_name')`).Scan(&app))
	assert.Equal(t, applicationName, app)
}

func TestNew_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), "postgres://%zz", 0)
	assert.ErrorContains(t, err, "parsing item archive dsn")
}
