package app

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed init.sql
var schemaSQL string

// RunMigrations applies the catalog schema. Every statement is guarded by
// IF NOT EXISTS, so running it against an existing catalog is a no-op.
func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
