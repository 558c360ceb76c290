package repository

import (
	"context"
	"database/sql"
)

const pluginConfigTable = "assignsubmission_edulegit_config"

// PluginConfigRepository stores the assignment-level setting overrides that
// take precedence over the global defaults.
type PluginConfigRepository struct {
	db *sql.DB
}

func NewPluginConfigRepository(db *sql.DB) *PluginConfigRepository {
	return &PluginConfigRepository{db: db}
}

func (r *PluginConfigRepository) Get(ctx context.Context, assignmentID int64, name string) (string, error) {
	query := `SELECT value FROM ` + pluginConfigTable + ` WHERE assignment = $1 AND name = $2`

	var value string
	err := r.db.QueryRowContext(ctx, query, assignmentID, name).Scan(&value)
	if err != nil {
		return "", handleError(err)
	}
	return value, nil
}

func (r *PluginConfigRepository) Set(ctx context.Context, assignmentID int64, name, value string) error {
	query := `
		INSERT INTO ` + pluginConfigTable + ` (assignment, name, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (assignment, name) DO UPDATE SET value = EXCLUDED.value
	`

	if _, err := r.db.ExecContext(ctx, query, assignmentID, name, value); err != nil {
		return handleError(err)
	}
	return nil
}

func (r *PluginConfigRepository) DeleteByAssignment(ctx context.Context, assignmentID int64) error {
	query := `DELETE FROM ` + pluginConfigTable + ` WHERE assignment = $1`
	if _, err := r.db.ExecContext(ctx, query, assignmentID); err != nil {
		return handleError(err)
	}
	return nil
}
