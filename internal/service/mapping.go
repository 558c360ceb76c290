package service

import (
	"edulegit_service/internal/domain"
	"edulegit_service/internal/edulegit"
)

// Field mapping from the remote data schema onto the local record. Each
// assignment lists its primary source path and, where the API has a legacy
// alternative, the fallback path.

// applyTaskData maps every remote field onto the record and moves it to the
// synced state.
func applyTaskData(rec *domain.Submission, data *edulegit.TaskData) {
	// Absent source fields clear their targets: the remote schema is the
	// source of truth for the whole record on a full sync.
	rec.Title = nil
	rec.Content = nil
	rec.DocumentID = 0
	rec.Score = nil
	rec.Plagiarism = nil
	rec.AiRate = nil
	rec.AiProbability = nil
	applyDocument(rec, data.TaskDocument)

	// task.id, legacy fallback taskUser.taskId
	rec.TaskID = 0
	if data.Task != nil && data.Task.ID != nil {
		rec.TaskID = *data.Task.ID
	} else if data.TaskUser != nil && data.TaskUser.TaskID != nil {
		rec.TaskID = *data.TaskUser.TaskID
	}

	// taskUser.id, legacy fallback taskUser.taskUserId
	rec.TaskUserID = 0
	if data.TaskUser != nil {
		if data.TaskUser.ID != nil {
			rec.TaskUserID = *data.TaskUser.ID
		} else if data.TaskUser.TaskUserID != nil {
			rec.TaskUserID = *data.TaskUser.TaskUserID
		}
	}

	// sharedDocument.viewUrl, fallback sharedDocument.pdfUrl
	rec.URL = nil
	rec.AuthKey = nil
	if data.SharedDocument != nil {
		if data.SharedDocument.ViewURL != nil {
			rec.URL = data.SharedDocument.ViewURL
		} else {
			rec.URL = data.SharedDocument.PdfURL
		}
		rec.AuthKey = data.SharedDocument.AuthKey
	}

	rec.BaseURL = data.BaseURL

	rec.UserID = 0
	rec.UserKey = nil
	if data.User != nil {
		if data.User.ID != nil {
			rec.UserID = *data.User.ID
		}
		rec.UserKey = data.User.LoginTimeToken
	}

	rec.Error = nil
	rec.Status = domain.StatusSynced
}

// applyDocument maps the task document fields, scoring included.
func applyDocument(rec *domain.Submission, doc *edulegit.TaskDocument) {
	if doc == nil {
		return
	}

	rec.Title = doc.Title
	rec.Content = doc.Content
	rec.DocumentID = 0
	if doc.ID != nil {
		rec.DocumentID = *doc.ID
	}

	applyScores(rec, doc)
}

// applyScores maps only the scoring fields.
func applyScores(rec *domain.Submission, doc *edulegit.TaskDocument) {
	if doc == nil {
		return
	}

	rec.Score = doc.Score
	rec.Plagiarism = doc.Plagiarism
	rec.AiRate = doc.AiAverageProbability
	rec.AiProbability = doc.AiProbability
}
