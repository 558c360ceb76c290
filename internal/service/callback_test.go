package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"edulegit_service/internal/domain"
	"edulegit_service/internal/errdefs"
	"edulegit_service/internal/service"
	"edulegit_service/internal/service/mocks"
	"edulegit_service/pkg/logger"
)

// memCache is an in-process Cache for duplicate-delivery tests.
type memCache struct {
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool) {
	data, ok := c.entries[key]
	return data, ok
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) {
	c.entries[key] = data
}

func (c *memCache) Delete(_ context.Context, key string) {
	delete(c.entries, key)
}

type callbackEnv struct {
	service   *service.CallbackService
	repo      *mocks.MockSubmissionRepository
	publisher *mocks.MockEventPublisher
	cache     *memCache
}

func setupCallback(t *testing.T) *callbackEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockSubmissionRepository(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)
	cache := newMemCache()

	return &callbackEnv{
		service:   service.NewCallbackService(repo, publisher, cache, logger.New()),
		repo:      repo,
		publisher: publisher,
		cache:     cache,
	}
}

func storedSubmission() *domain.Submission {
	return &domain.Submission{
		ID:         10,
		Submission: 42,
		Assignment: 7,
		DocumentID: 999,
		TaskID:     55,
		Title:      ptr("Essay 1"),
		Status:     domain.StatusSynced,
	}
}

func TestHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidPayloadMutatesNothing", func(t *testing.T) {
		env := setupCallback(t)

		_, err := env.service.Handle(ctx, domain.EventTaskUserUpdated, "{not json")
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("MissingCorrelationID", func(t *testing.T) {
		env := setupCallback(t)

		_, err := env.service.Handle(ctx, domain.EventTaskUserUpdated, `{"taskDocument":{"id":999}}`)
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("UnknownRecord", func(t *testing.T) {
		env := setupCallback(t)

		env.repo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(nil, errdefs.ErrNotFound)

		_, err := env.service.Handle(ctx, domain.EventTaskUserUpdated, `{"taskUser":{"externalId":10}}`)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("DocumentCheckedUpdatesScoresOnly", func(t *testing.T) {
		env := setupCallback(t)

		data := `{"taskUser":{"externalId":10},"taskDocument":{"id":1000,"title":"renamed","score":0.9,"plagiarism":0.05}}`

		env.repo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(storedSubmission(), nil)

		var updated *domain.Submission
		env.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.Submission) error {
				updated = s
				return nil
			})
		env.publisher.EXPECT().Send(gomock.Any(), int64(42), gomock.Any()).Return(nil)

		result, err := env.service.Handle(ctx, domain.EventTaskDocumentChecked, data)
		require.NoError(t, err)
		assert.True(t, result.Handled)
		assert.Equal(t, int64(42), result.Submission)

		require.NotNil(t, updated)
		assert.Equal(t, ptr(0.9), updated.Score)
		assert.Equal(t, ptr(0.05), updated.Plagiarism)
		// Non-score fields are untouched by a checked event.
		assert.Equal(t, int64(999), updated.DocumentID)
		assert.Equal(t, ptr("Essay 1"), updated.Title)
	})

	t.Run("DocumentUpdatedReplacesDocument", func(t *testing.T) {
		env := setupCallback(t)

		data := `{"taskUser":{"externalId":10},"taskDocument":{"id":1000,"title":"renamed","score":0.9}}`

		env.repo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(storedSubmission(), nil)

		var updated *domain.Submission
		env.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.Submission) error {
				updated = s
				return nil
			})
		env.publisher.EXPECT().Send(gomock.Any(), int64(42), gomock.Any()).Return(nil)

		_, err := env.service.Handle(ctx, domain.EventTaskDocumentUpdated, data)
		require.NoError(t, err)

		require.NotNil(t, updated)
		assert.Equal(t, int64(1000), updated.DocumentID)
		assert.Equal(t, ptr("renamed"), updated.Title)
		assert.Equal(t, ptr(0.9), updated.Score)
		// The task linkage is not part of a document event.
		assert.Equal(t, int64(55), updated.TaskID)
	})

	t.Run("TaskUserUpdatedRemapsWholeRecord", func(t *testing.T) {
		env := setupCallback(t)

		data := `{"taskUser":{"externalId":10,"id":78,"taskId":56},"taskDocument":{"id":1001,"score":0.7}}`

		env.repo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(storedSubmission(), nil)

		var updated *domain.Submission
		env.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.Submission) error {
				updated = s
				return nil
			})
		env.publisher.EXPECT().Send(gomock.Any(), int64(42), gomock.Any()).Return(nil)

		_, err := env.service.Handle(ctx, domain.EventTaskUserUpdated, data)
		require.NoError(t, err)

		require.NotNil(t, updated)
		assert.Equal(t, int64(56), updated.TaskID)
		assert.Equal(t, int64(78), updated.TaskUserID)
		assert.Equal(t, int64(1001), updated.DocumentID)
		assert.Equal(t, ptr(0.7), updated.Score)
		assert.Equal(t, domain.StatusSynced, updated.Status)
	})

	t.Run("UnknownEventIsAckedWithoutMutation", func(t *testing.T) {
		env := setupCallback(t)

		env.repo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(storedSubmission(), nil)

		result, err := env.service.Handle(ctx, "task.archived", `{"taskUser":{"externalId":10}}`)
		require.NoError(t, err)
		assert.False(t, result.Handled)
	})

	t.Run("DuplicateDeliveryIsShortCircuited", func(t *testing.T) {
		env := setupCallback(t)

		data := `{"taskUser":{"externalId":10},"taskDocument":{"score":0.9}}`

		// Only the first delivery reaches the repository.
		env.repo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(storedSubmission(), nil)
		env.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		env.publisher.EXPECT().Send(gomock.Any(), int64(42), gomock.Any()).Return(nil)

		first, err := env.service.Handle(ctx, domain.EventTaskDocumentChecked, data)
		require.NoError(t, err)

		second, err := env.service.Handle(ctx, domain.EventTaskDocumentChecked, data)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("NilCacheProcessesEveryDelivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		repo := mocks.NewMockSubmissionRepository(ctrl)
		svc := service.NewCallbackService(repo, nil, nil, logger.New())

		data := `{"taskUser":{"externalId":10},"taskDocument":{"score":0.9}}`

		repo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(storedSubmission(), nil).Times(2)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		_, err := svc.Handle(ctx, domain.EventTaskDocumentChecked, data)
		require.NoError(t, err)
		_, err = svc.Handle(ctx, domain.EventTaskDocumentChecked, data)
		require.NoError(t, err)
	})
}
