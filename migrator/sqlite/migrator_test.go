package sqlite

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	require.NoError(t, Migrate(db))

	t.Run("should create every table", func(t *testing.T) {
		for _, table := range []string{"standups", "standup_members", "standup_responses"} {
			var name string
			err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
			require.NoError(t, err, table)
			assert.Equal(t, table, name)
		}
	})

	t.Run("should be idempotent", func(t *testing.T) {
		assert.NoError(t, Migrate(db))
	})

	t.Run("should cascade roster and responses", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO standups (id, channel_id, created_at, updated_at) VALUES ('G1', 'C1', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO standup_members (standup_id, member_id, position) VALUES ('G1', 'u1', 1)`)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO standup_responses (standup_id, member_id, response, updated_at) VALUES ('G1', 'u1', 'done', CURRENT_TIMESTAMP)`)
		require.NoError(t, err)

		_, err = db.Exec(`DELETE FROM standups WHERE id = 'G1'`)
		require.NoError(t, err)

		var count int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM standup_members`).Scan(&count))
		assert.Zero(t, count)
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM standup_responses`).Scan(&count))
		assert.Zero(t, count)
	})
}
