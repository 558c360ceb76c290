package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"edulegit_service/internal/domain"
	"edulegit_service/internal/edulegit"
	"edulegit_service/internal/errdefs"
	"edulegit_service/pkg/logger"
)

const defaultServiceError = "EduLegit service error."

const webhookFunction = "assignsubmission_edulegit_webhook_handler"

// ManagerConfig carries the host identifiers sent in the init payload meta
// block and the address the remote service calls back on.
type ManagerConfig struct {
	CallbackURL   string
	MoodleRelease string
	PluginRelease string
}

// SyncManager owns the submission state transitions: it builds the remote
// init payload, calls the client, maps the response onto the local record
// and persists it. It is the only component that mutates submission records.
type SyncManager struct {
	repo      SubmissionRepository
	client    EduLegitClient
	settings  *Settings
	config    PluginConfigStore
	publisher EventPublisher
	logger    *logger.Logger
	cfg       ManagerConfig
}

func NewSyncManager(
	repo SubmissionRepository,
	client EduLegitClient,
	settings *Settings,
	config PluginConfigStore,
	publisher EventPublisher,
	log *logger.Logger,
	cfg ManagerConfig,
) *SyncManager {
	return &SyncManager{
		repo:      repo,
		client:    client,
		settings:  settings,
		config:    config,
		publisher: publisher,
		logger:    log,
		cfg:       cfg,
	}
}

// Init registers a submission with EduLegit. It is idempotent over the local
// record: repeated calls reuse the same row, and a failed attempt can be
// retried by calling Init again. A remote failure is recorded on the row
// (status 0 + error text) and returned without an error; only validation and
// persistence failures surface as errors.
func (m *SyncManager) Init(ctx context.Context, req *domain.InitRequest) (*domain.Submission, error) {
	if !req.Valid() {
		return nil, fmt.Errorf("%w: submission, assignment and user ids are required", errdefs.ErrValidation)
	}

	rec, err := m.getOrCreate(ctx, req)
	if err != nil {
		return nil, err
	}

	info, err := m.repo.AssignmentInfo(ctx, req.Assignment)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment info: %w", err)
	}

	payload := m.buildInitPayload(ctx, rec, req, info)

	resp := m.client.InitAssignment(ctx, payload)

	data := resp.Data()
	if !resp.Success || resp.Payload == nil || !resp.Payload.Success || data == nil {
		return m.markFailed(ctx, rec, resp)
	}

	applyTaskData(rec, data)

	if err := m.repo.Update(ctx, rec); err != nil {
		return nil, err
	}

	m.publish(ctx, rec, domain.EventSubmissionSynced)

	return rec, nil
}

// Sync returns the local record for a submission. It performs no remote call.
func (m *SyncManager) Sync(ctx context.Context, submissionID int64) (*domain.Submission, error) {
	return m.repo.GetBySubmission(ctx, submissionID)
}

// DeleteSubmission removes the local record for a submission after a
// best-effort delete of its remote user tasks. The returned error reflects
// the local deletion only.
func (m *SyncManager) DeleteSubmission(ctx context.Context, submissionID int64) error {
	// The record is read before the delete so the published event carries
	// the assignment id alongside the submission id.
	rec, err := m.repo.GetBySubmission(ctx, submissionID)
	if err != nil && !errors.Is(err, errdefs.ErrNotFound) {
		m.logger.Warn("failed to load submission record", zap.Int64("submission", submissionID), zap.Error(err))
	}

	ids, err := m.repo.TaskUserIDsForSubmission(ctx, submissionID)
	if err != nil {
		m.logger.Warn("failed to collect task user ids", zap.Int64("submission", submissionID), zap.Error(err))
	}
	m.deleteRemoteTasks(ctx, ids)

	if err := m.repo.DeleteBySubmission(ctx, submissionID); err != nil {
		return err
	}

	deleted := &domain.Submission{Submission: submissionID}
	if rec != nil {
		deleted.Assignment = rec.Assignment
	}
	m.publish(ctx, deleted, domain.EventSubmissionDeleted)
	return nil
}

// DeleteAssignment removes all local records for an assignment, its setting
// overrides included, after a best-effort delete of the remote user tasks.
func (m *SyncManager) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	// Collected before the delete; one deleted event goes out per affected
	// submission so consumers can correlate by either id.
	submissionIDs, err := m.repo.SubmissionIDsForAssignment(ctx, assignmentID)
	if err != nil {
		m.logger.Warn("failed to collect submission ids", zap.Int64("assignment", assignmentID), zap.Error(err))
	}

	ids, err := m.repo.TaskUserIDsForAssignment(ctx, assignmentID)
	if err != nil {
		m.logger.Warn("failed to collect task user ids", zap.Int64("assignment", assignmentID), zap.Error(err))
	}
	m.deleteRemoteTasks(ctx, ids)

	if err := m.repo.DeleteByAssignment(ctx, assignmentID); err != nil {
		return err
	}

	if err := m.config.DeleteByAssignment(ctx, assignmentID); err != nil {
		m.logger.Warn("failed to delete assignment setting overrides", zap.Int64("assignment", assignmentID), zap.Error(err))
	}

	for _, submissionID := range submissionIDs {
		m.publish(ctx, &domain.Submission{Submission: submissionID, Assignment: assignmentID}, domain.EventSubmissionDeleted)
	}
	return nil
}

func (m *SyncManager) getOrCreate(ctx context.Context, req *domain.InitRequest) (*domain.Submission, error) {
	rec, err := m.repo.GetBySubmission(ctx, req.Submission)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, errdefs.ErrNotFound) {
		return nil, err
	}

	rec = &domain.Submission{
		Submission: req.Submission,
		Assignment: req.Assignment,
	}

	err = m.repo.Insert(ctx, rec)
	if errors.Is(err, errdefs.ErrAlreadyExists) {
		// Lost a concurrent-create race; the other caller's row wins.
		return m.repo.GetBySubmission(ctx, req.Submission)
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

func (m *SyncManager) buildInitPayload(
	ctx context.Context,
	rec *domain.Submission,
	req *domain.InitRequest,
	info *domain.AssignmentInfo,
) *edulegit.InitAssignmentRequest {
	plagiarism := m.settings.GetBool(ctx, req.Assignment, "enable_plagiarism")

	title := info.Name
	if title == "" {
		title = strconv.FormatInt(info.ID, 10)
	}

	text := info.Activity
	if text == "" {
		text = info.Intro
	}

	courseTitle := info.CourseFullName
	if courseTitle == "" {
		courseTitle = info.CourseShortName
	}

	finishedAt := info.DueDate
	if finishedAt == 0 {
		finishedAt = info.GradingDueDate
	}

	return &edulegit.InitAssignmentRequest{
		Meta: edulegit.Meta{
			CallbackURL: m.buildCallbackURL(ctx, req.Assignment),
			Moodle:      m.cfg.MoodleRelease,
			Plugin:      m.cfg.PluginRelease,
		},
		User: edulegit.User{
			ExternalID: req.UserID,
			Email:      req.Email,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
		},
		TaskUser: edulegit.TaskUser{
			ExternalID: rec.ID,
		},
		Task: edulegit.Task{
			ExternalID:  info.ID,
			Title:       title,
			Text:        text,
			Description: info.Intro,
			StartedAt:   unixOrNil(info.AllowSubmissionsFromDate),
			FinishedAt:  unixOrNil(finishedAt),
		},
		Course: edulegit.Course{
			ExternalID: info.Course,
			Title:      courseTitle,
			Text:       info.CourseSummary,
			StartedAt:  unixOrNil(info.CourseStartDate),
			FinishedAt: unixOrNil(info.CourseEndDate),
			Setting: edulegit.CourseSettings{
				AutoPlagiarismCheck: plagiarism,
				AutoAiCheck:         m.settings.GetBool(ctx, req.Assignment, "enable_ai"),
				// Event recording follows the plagiarism flag.
				MustRecordEvents:          plagiarism,
				MustRecordScreen:          m.settings.GetBool(ctx, req.Assignment, "enable_screen"),
				MustRecordCamera:          m.settings.GetBool(ctx, req.Assignment, "enable_camera"),
				MustRecognizeAttentionMap: m.settings.GetBool(ctx, req.Assignment, "enable_attention"),
			},
		},
	}
}

func (m *SyncManager) buildCallbackURL(ctx context.Context, assignmentID int64) string {
	u, err := url.Parse(m.cfg.CallbackURL)
	if err != nil {
		return m.cfg.CallbackURL
	}

	query := u.Query()
	query.Set("wstoken", m.settings.WebhookToken(ctx, assignmentID))
	query.Set("wsfunction", webhookFunction)
	query.Set("moodlewsrestformat", "json")
	u.RawQuery = query.Encode()

	return u.String()
}

// markFailed records the best-available error text on the row. The remote
// linkage fields of a previous successful sync are left untouched.
func (m *SyncManager) markFailed(ctx context.Context, rec *domain.Submission, resp *edulegit.Response) (*domain.Submission, error) {
	errText := defaultServiceError
	switch {
	case resp.Payload != nil && resp.Payload.Error != nil && *resp.Payload.Error != "":
		errText = *resp.Payload.Error
	case resp.Error != "":
		errText = resp.Error
	}

	rec.Status = domain.StatusError
	rec.Error = &errText

	if err := m.repo.Update(ctx, rec); err != nil {
		return nil, err
	}

	m.logger.Warn("submission init failed",
		zap.Int64("submission", rec.Submission),
		zap.String("url", resp.RawURL),
		zap.String("error", errText),
	)
	m.publish(ctx, rec, domain.EventSubmissionSyncFailed)

	return rec, nil
}

func (m *SyncManager) deleteRemoteTasks(ctx context.Context, taskUserIDs []int64) {
	if len(taskUserIDs) == 0 {
		return
	}

	resp := m.client.DeleteAssignmentUserTasks(ctx, taskUserIDs)
	if !resp.Success || resp.Payload == nil || !resp.Payload.Success {
		m.logger.Warn("remote task delete failed",
			zap.Int64s("task_user_ids", taskUserIDs),
			zap.String("error", resp.Error),
		)
	}
}

func (m *SyncManager) publish(ctx context.Context, rec *domain.Submission, event string) {
	if m.publisher == nil {
		return
	}

	msg := domain.SubmissionEvent{
		Event:      event,
		Submission: rec.Submission,
		Assignment: rec.Assignment,
		Status:     rec.Status,
		DocumentID: rec.DocumentID,
		Score:      rec.Score,
		Error:      rec.Error,
	}

	if err := m.publisher.Send(ctx, rec.Submission, msg); err != nil {
		m.logger.Warn("failed to publish submission event", zap.String("event", event), zap.Error(err))
	}
}

func unixOrNil(ts int64) *int64 {
	if ts == 0 {
		return nil
	}
	return &ts
}
