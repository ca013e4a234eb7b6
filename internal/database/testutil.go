package database

import (
	"context"
	"testing"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/diegoclair/standup-bot/migrator/sqlite"
	"github.com/stretchr/testify/require"
)

// SetupTestDB opens a migrated in-memory database that is closed when the
// test finishes.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(memoryPath)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		require.NoError(t, db.Close(), "failed to close test database")
	})

	require.NoError(t, sqlite.Migrate(db.DB()), "failed to migrate test database")

	return db
}

// SeedStandup stores an empty-response standup with the given roster.
func SeedStandup(t *testing.T, dm contract.DataManager, id string, members ...string) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, dm.Standup().Create(ctx, entity.NewStandup(id, "C-"+id)))
	for _, m := range members {
		require.NoError(t, dm.Standup().AddMember(ctx, id, m))
	}
}
