package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"edulegit_service/internal/domain"
	"edulegit_service/internal/edulegit"
	"edulegit_service/internal/errdefs"
	"edulegit_service/pkg/logger"
)

const duplicateEventTTL = 24 * time.Hour

// CallbackResult is returned to the remote service in the webhook response
// body.
type CallbackResult struct {
	Handled    bool  `json:"handled"`
	Submission int64 `json:"submission,omitempty"`
	Status     int   `json:"status,omitempty"`
}

// CallbackService applies asynchronous EduLegit events to submission
// records. Processing is idempotent: the update is an upsert keyed by the
// correlation id, so replaying an event leaves the row in the same state.
// Exact duplicate deliveries are additionally short-circuited through the
// cache.
type CallbackService struct {
	repo      SubmissionRepository
	publisher EventPublisher
	cache     Cache
	logger    *logger.Logger
}

func NewCallbackService(repo SubmissionRepository, publisher EventPublisher, cache Cache, log *logger.Logger) *CallbackService {
	return &CallbackService{
		repo:      repo,
		publisher: publisher,
		cache:     cache,
		logger:    log,
	}
}

// Handle decodes the event payload and dispatches by event name. An
// undecodable payload is a validation error and mutates nothing.
func (s *CallbackService) Handle(ctx context.Context, event, data string) (*CallbackResult, error) {
	var taskData edulegit.TaskData
	if err := json.Unmarshal([]byte(data), &taskData); err != nil {
		return nil, fmt.Errorf("%w: invalid data payload", errdefs.ErrValidation)
	}

	if cached, ok := s.cachedResult(ctx, event, data); ok {
		return cached, nil
	}

	if taskData.TaskUser == nil || taskData.TaskUser.ExternalID == nil {
		return nil, fmt.Errorf("%w: missing correlation id", errdefs.ErrValidation)
	}

	rec, err := s.repo.GetByID(ctx, *taskData.TaskUser.ExternalID)
	if err != nil {
		return nil, err
	}

	switch event {
	case domain.EventTaskUserUpdated:
		applyTaskData(rec, &taskData)
	case domain.EventTaskDocumentUpdated:
		applyDocument(rec, taskData.TaskDocument)
	case domain.EventTaskDocumentChecked:
		applyScores(rec, taskData.TaskDocument)
	default:
		s.logger.Warn("unhandled webhook event", zap.String("event", event))
		return &CallbackResult{Handled: false}, nil
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}

	s.publishUpdated(ctx, rec)

	result := &CallbackResult{
		Handled:    true,
		Submission: rec.Submission,
		Status:     rec.Status,
	}

	s.storeResult(ctx, event, data, result)

	return result, nil
}

func eventKey(event, data string) string {
	sum := sha256.Sum256([]byte(event + "\x00" + data))
	return "edulegit:webhook:" + hex.EncodeToString(sum[:])
}

func (s *CallbackService) cachedResult(ctx context.Context, event, data string) (*CallbackResult, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, ok := s.cache.Get(ctx, eventKey(event, data))
	if !ok {
		return nil, false
	}

	var result CallbackResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, false
	}

	s.logger.Debug("duplicate webhook delivery skipped", zap.String("event", event))
	return &result, true
}

func (s *CallbackService) storeResult(ctx context.Context, event, data string, result *CallbackResult) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return
	}

	s.cache.Set(ctx, eventKey(event, data), raw, duplicateEventTTL)
}

func (s *CallbackService) publishUpdated(ctx context.Context, rec *domain.Submission) {
	if s.publisher == nil {
		return
	}

	msg := domain.SubmissionEvent{
		Event:      domain.EventSubmissionUpdated,
		Submission: rec.Submission,
		Assignment: rec.Assignment,
		Status:     rec.Status,
		DocumentID: rec.DocumentID,
		Score:      rec.Score,
		Error:      rec.Error,
	}

	if err := s.publisher.Send(ctx, rec.Submission, msg); err != nil {
		s.logger.Warn("failed to publish submission event", zap.Error(err))
	}
}
