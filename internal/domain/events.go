package domain

// Webhook event names pushed by EduLegit.
const (
	EventTaskUserUpdated     = "task.user.updated"
	EventTaskDocumentUpdated = "task.document.updated"
	EventTaskDocumentChecked = "task.document.checked"
)

// Outbound event names published to the message bus after a state transition.
const (
	EventSubmissionSynced     = "submission.synced"
	EventSubmissionSyncFailed = "submission.sync_failed"
	EventSubmissionUpdated    = "submission.updated"
	EventSubmissionDeleted    = "submission.deleted"
)

// SubmissionEvent is the message published after every submission state
// transition.
type SubmissionEvent struct {
	Event      string   `json:"event"`
	Submission int64    `json:"submission"`
	Assignment int64    `json:"assignment"`
	Status     int      `json:"status"`
	DocumentID int64    `json:"document_id,omitempty"`
	Score      *float64 `json:"score,omitempty"`
	Error      *string  `json:"error,omitempty"`
}
