//go:build integration

package db

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestRunMigrationsPostgres(t *testing.T) {
	ctx := context.Background()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("fittrack"),
		postgrescontainer.WithUsername("fittrack"),
		postgrescontainer.WithPassword("fittrack"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database := waitForDatabase(t, connStr)
	t.Cleanup(func() { _ = Close(database) })

	require.NoError(t, RunMigrations(database.DB, "pgx"))
	require.NoError(t, RunMigrations(database.DB, "pgx"))

	var userID int64
	err = database.QueryRow(`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`, "alice", "pw1").Scan(&userID)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO users (username, password) VALUES ($1, $2)`, "alice", "other")
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate key value")

	_, err = database.Exec(`INSERT INTO activities (user_id, activity_type, duration, distance, calories_burned) VALUES ($1, $2, $3, $4, $5)`, userID+100, "running", 30, 5.0, 350.0)
	require.Error(t, err, "foreign key should reject unknown users")

	version, err := Version(database.DB, "pgx")
	require.NoError(t, err)
	require.Equal(t, int64(1), version)
}

func waitForDatabase(t *testing.T, connStr string) *sqlx.DB {
	t.Helper()

	deadline := time.Now().Add(30 * time.Second)
	for {
		database, err := Init("pgx", connStr)
		if err == nil {
			return database
		}
		if time.Now().After(deadline) {
			require.NoError(t, err)
		}
		time.Sleep(time.Second)
	}
}
