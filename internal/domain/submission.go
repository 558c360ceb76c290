package domain

import "time"

const (
	// StatusError marks a submission whose last remote init attempt failed.
	StatusError = 0
	// StatusSynced marks a submission that is linked to a remote task.
	StatusSynced = 1
)

// Submission is the local tracking record for one Moodle submission, keyed by
// the submission id (one row per submission). Remote linkage fields are zero
// until the first successful init.
type Submission struct {
	ID         int64
	Submission int64
	Assignment int64

	DocumentID int64
	TaskID     int64
	TaskUserID int64
	UserID     int64
	UserKey    *string

	Title   *string
	Content *string
	URL     *string
	AuthKey *string
	BaseURL *string

	Score         *float64
	Plagiarism    *float64
	AiRate        *float64
	AiProbability *float64

	Status int
	Error  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InitRequest is what the host passes when a submission is saved: the
// identifying ids plus optional user profile fields forwarded to EduLegit.
type InitRequest struct {
	Submission int64
	Assignment int64
	UserID     int64

	Email     *string
	FirstName *string
	LastName  *string
}

func (r *InitRequest) Valid() bool {
	return r != nil && r.Submission != 0 && r.Assignment != 0 && r.UserID != 0
}
