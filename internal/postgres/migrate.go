package postgres

import (
	"context"

	_ "embed"
)

//go:embed schema.sql
var schema string

// Migrate applies the embedded schema. Every statement uses IF NOT EXISTS,
// so running it against an existing database is a no-op.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return err
	}
	db.logger.Infow("database schema applied")
	return nil
}
