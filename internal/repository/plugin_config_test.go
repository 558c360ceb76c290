package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edulegit_service/internal/errdefs"
	"edulegit_service/internal/repository"
)

func setupConfigRepo(t *testing.T) (*repository.PluginConfigRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return repository.NewPluginConfigRepository(db), mock
}

func TestPluginConfigGet(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsValue", func(t *testing.T) {
		repo, mock := setupConfigRepo(t)

		mock.ExpectQuery(`SELECT value FROM assignsubmission_edulegit_config WHERE assignment = \$1 AND name = \$2`).
			WithArgs(int64(7), "enable_ai").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("1"))

		value, err := repo.Get(ctx, 7, "enable_ai")
		require.NoError(t, err)
		assert.Equal(t, "1", value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mock := setupConfigRepo(t)

		mock.ExpectQuery(`SELECT value FROM assignsubmission_edulegit_config`).
			WithArgs(int64(7), "enable_ai").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, err := repo.Get(ctx, 7, "enable_ai")
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPluginConfigSet(t *testing.T) {
	ctx := context.Background()

	t.Run("Upserts", func(t *testing.T) {
		repo, mock := setupConfigRepo(t)

		mock.ExpectExec(`INSERT INTO assignsubmission_edulegit_config \(assignment, name, value\)`).
			WithArgs(int64(7), "enable_ai", "0").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Set(ctx, 7, "enable_ai", "0"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPluginConfigDeleteByAssignment(t *testing.T) {
	ctx := context.Background()

	repo, mock := setupConfigRepo(t)

	mock.ExpectExec(`DELETE FROM assignsubmission_edulegit_config WHERE assignment = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, repo.DeleteByAssignment(ctx, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
