package repository

import (
	"context"
	"database/sql"
	"time"

	"edulegit_service/internal/domain"
)

const submissionTable = "assignsubmission_edulegit"

const submissionColumns = `
id, submission, assignment, documentid, taskid, taskuserid, userid, userkey,
title, content, url, authkey, baseurl, score, plagiarism, airate, aiprobability,
status, error, createdat, updatedat
`

type SubmissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM ` + submissionTable + ` WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *SubmissionRepository) GetBySubmission(ctx context.Context, submissionID int64) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM ` + submissionTable + ` WHERE submission = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, submissionID))
}

// Insert stores a new record and fills in the assigned id. The unique index
// on submission makes concurrent get-or-create safe: the loser of the race
// gets ErrAlreadyExists and re-reads the winner's row.
func (r *SubmissionRepository) Insert(ctx context.Context, s *domain.Submission) error {
	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	query := `
		INSERT INTO ` + submissionTable + `
		(submission, assignment, documentid, taskid, taskuserid, userid, userkey,
		 title, content, url, authkey, baseurl, score, plagiarism, airate, aiprobability,
		 status, error, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		s.Submission, s.Assignment, s.DocumentID, s.TaskID, s.TaskUserID, s.UserID, s.UserKey,
		s.Title, s.Content, s.URL, s.AuthKey, s.BaseURL, s.Score, s.Plagiarism, s.AiRate, s.AiProbability,
		s.Status, s.Error, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return handleError(err)
	}

	return nil
}

func (r *SubmissionRepository) Update(ctx context.Context, s *domain.Submission) error {
	s.UpdatedAt = time.Now()

	query := `
		UPDATE ` + submissionTable + ` SET
		submission = $1, assignment = $2, documentid = $3, taskid = $4, taskuserid = $5,
		userid = $6, userkey = $7, title = $8, content = $9, url = $10, authkey = $11,
		baseurl = $12, score = $13, plagiarism = $14, airate = $15, aiprobability = $16,
		status = $17, error = $18, updatedat = $19
		WHERE id = $20
	`

	res, err := r.db.ExecContext(ctx, query,
		s.Submission, s.Assignment, s.DocumentID, s.TaskID, s.TaskUserID,
		s.UserID, s.UserKey, s.Title, s.Content, s.URL, s.AuthKey,
		s.BaseURL, s.Score, s.Plagiarism, s.AiRate, s.AiProbability,
		s.Status, s.Error, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return handleError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return handleError(err)
	}
	if affected == 0 {
		return handleError(sql.ErrNoRows)
	}

	return nil
}

func (r *SubmissionRepository) DeleteBySubmission(ctx context.Context, submissionID int64) error {
	query := `DELETE FROM ` + submissionTable + ` WHERE submission = $1`
	if _, err := r.db.ExecContext(ctx, query, submissionID); err != nil {
		return handleError(err)
	}
	return nil
}

func (r *SubmissionRepository) DeleteByAssignment(ctx context.Context, assignmentID int64) error {
	query := `DELETE FROM ` + submissionTable + ` WHERE assignment = $1`
	if _, err := r.db.ExecContext(ctx, query, assignmentID); err != nil {
		return handleError(err)
	}
	return nil
}

// SubmissionIDsForAssignment lists the host submission ids an assignment
// delete cascades over.
func (r *SubmissionRepository) SubmissionIDsForAssignment(ctx context.Context, assignmentID int64) ([]int64, error) {
	query := `SELECT submission FROM ` + submissionTable + ` WHERE assignment = $1`
	return r.queryIDs(ctx, query, assignmentID)
}

func (r *SubmissionRepository) TaskUserIDsForSubmission(ctx context.Context, submissionID int64) ([]int64, error) {
	query := `SELECT DISTINCT taskuserid FROM ` + submissionTable + ` WHERE submission = $1 AND taskuserid <> 0`
	return r.queryIDs(ctx, query, submissionID)
}

func (r *SubmissionRepository) TaskUserIDsForAssignment(ctx context.Context, assignmentID int64) ([]int64, error) {
	query := `SELECT DISTINCT taskuserid FROM ` + submissionTable + ` WHERE assignment = $1 AND taskuserid <> 0`
	return r.queryIDs(ctx, query, assignmentID)
}

func (r *SubmissionRepository) queryIDs(ctx context.Context, query string, id int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	defer func() { _ = rows.Close() }()

	var ids []int64
	for rows.Next() {
		var value int64
		if err := rows.Scan(&value); err != nil {
			return nil, handleError(err)
		}
		ids = append(ids, value)
	}

	if err := rows.Err(); err != nil {
		return nil, handleError(err)
	}

	return ids, nil
}

// AssignmentInfo reads the host's assignment and course tables. They belong
// to the host system; this is a read-through used only to build the remote
// payload.
func (r *SubmissionRepository) AssignmentInfo(ctx context.Context, assignmentID int64) (*domain.AssignmentInfo, error) {
	query := `
		SELECT a.id, a.course, a.name, a.intro, a.activity,
		       a.allowsubmissionsfromdate, a.duedate, a.gradingduedate,
		       c.shortname, c.fullname, c.summary, c.startdate, c.enddate
		FROM assign a
		JOIN course c ON c.id = a.course
		WHERE a.id = $1
	`

	var info domain.AssignmentInfo
	err := r.db.QueryRowContext(ctx, query, assignmentID).Scan(
		&info.ID, &info.Course, &info.Name, &info.Intro, &info.Activity,
		&info.AllowSubmissionsFromDate, &info.DueDate, &info.GradingDueDate,
		&info.CourseShortName, &info.CourseFullName, &info.CourseSummary,
		&info.CourseStartDate, &info.CourseEndDate,
	)
	if err != nil {
		return nil, handleError(err)
	}

	return &info, nil
}

func (r *SubmissionRepository) scanOne(row *sql.Row) (*domain.Submission, error) {
	var s domain.Submission
	err := row.Scan(
		&s.ID, &s.Submission, &s.Assignment, &s.DocumentID, &s.TaskID, &s.TaskUserID, &s.UserID, &s.UserKey,
		&s.Title, &s.Content, &s.URL, &s.AuthKey, &s.BaseURL, &s.Score, &s.Plagiarism, &s.AiRate, &s.AiProbability,
		&s.Status, &s.Error, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &s, nil
}
