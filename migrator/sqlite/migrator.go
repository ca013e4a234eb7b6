package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// migrationFiles are applied in file name order; the numeric prefix is the
// migration version, so released files must never be renamed or edited.
//
//go:embed sql/*.sql
var migrationFiles embed.FS

// Migrate brings the standup schema up to date. Already applied versions
// are skipped, so it is safe to run on every start.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(migrationFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate standup schema: %w", err)
	}
	return nil
}
