package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes that the schema
// language cannot express. They back blueprint search in the ops API.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_prp_runs_blueprint_gin
		ON prp_runs USING gin(to_tsvector('english', blueprint))`)
	if err != nil {
		return fmt.Errorf("failed to create blueprint GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_evidence_records_content_gin
		ON evidence_records USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create evidence content GIN index: %w", err)
	}

	return nil
}
