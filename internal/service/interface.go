//go:generate mockgen -source=interface.go -destination=mocks/service_mocks.go -package=mocks

package service

import (
	"context"
	"time"

	"edulegit_service/internal/domain"
	"edulegit_service/internal/edulegit"
)

type SubmissionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Submission, error)
	GetBySubmission(ctx context.Context, submissionID int64) (*domain.Submission, error)
	Insert(ctx context.Context, s *domain.Submission) error
	Update(ctx context.Context, s *domain.Submission) error
	DeleteBySubmission(ctx context.Context, submissionID int64) error
	DeleteByAssignment(ctx context.Context, assignmentID int64) error
	SubmissionIDsForAssignment(ctx context.Context, assignmentID int64) ([]int64, error)
	TaskUserIDsForSubmission(ctx context.Context, submissionID int64) ([]int64, error)
	TaskUserIDsForAssignment(ctx context.Context, assignmentID int64) ([]int64, error)
	AssignmentInfo(ctx context.Context, assignmentID int64) (*domain.AssignmentInfo, error)
}

type PluginConfigStore interface {
	Get(ctx context.Context, assignmentID int64, name string) (string, error)
	Set(ctx context.Context, assignmentID int64, name, value string) error
	DeleteByAssignment(ctx context.Context, assignmentID int64) error
}

type EduLegitClient interface {
	InitAssignment(ctx context.Context, data *edulegit.InitAssignmentRequest) *edulegit.Response
	DeleteAssignmentUserTasks(ctx context.Context, taskUserIDs []int64) *edulegit.Response
}

type EventPublisher interface {
	Send(ctx context.Context, submissionID int64, message interface{}) error
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}
