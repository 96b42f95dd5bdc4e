// Package sqlite applies the embedded schema migrations.
package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate brings db up to the latest schema. Already applied files are skipped.
func Migrate(db *sql.DB) error {
	return sqlmigrator.New(db, darwin.SqliteDialect{}).Migrate(SqlFiles, "sql")
}
