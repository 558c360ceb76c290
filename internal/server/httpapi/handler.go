package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"edulegit_service/internal/domain"
	"edulegit_service/internal/errdefs"
	"edulegit_service/internal/service"
	"edulegit_service/pkg/logger"
)

type SubmissionManager interface {
	Init(ctx context.Context, req *domain.InitRequest) (*domain.Submission, error)
	Sync(ctx context.Context, submissionID int64) (*domain.Submission, error)
	DeleteSubmission(ctx context.Context, submissionID int64) error
	DeleteAssignment(ctx context.Context, assignmentID int64) error
}

type CallbackHandler interface {
	Handle(ctx context.Context, event, data string) (*service.CallbackResult, error)
}

type ConfigStore interface {
	Set(ctx context.Context, assignmentID int64, name, value string) error
}

// TokenResolver resolves the expected webhook token for an assignment. The
// callback URL embeds the assignment-level ws_token override when one is set,
// so validation has to resolve through the same chain.
type TokenResolver interface {
	WebhookToken(ctx context.Context, assignmentID int64) string
}

type Handler struct {
	manager  SubmissionManager
	callback CallbackHandler
	config   ConfigStore
	tokens   TokenResolver
	logger   *logger.Logger
}

func NewHandler(
	manager SubmissionManager,
	callback CallbackHandler,
	config ConfigStore,
	tokens TokenResolver,
	log *logger.Logger,
) *Handler {
	return &Handler{
		manager:  manager,
		callback: callback,
		config:   config,
		tokens:   tokens,
		logger:   log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/submissions/init", h.InitSubmission)
		r.Get("/submissions/{submission_id}", h.GetSubmission)
		r.Delete("/submissions/{submission_id}", h.DeleteSubmission)
		r.Delete("/assignments/{assignment_id}", h.DeleteAssignment)
		r.Put("/assignments/{assignment_id}/config", h.PutAssignmentConfig)
		r.Post("/webhook", h.Webhook)
	})
}

type initRequest struct {
	Submission int64   `json:"submission"`
	Assignment int64   `json:"assignment"`
	UserID     int64   `json:"user_id"`
	Email      *string `json:"email,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
}

type submissionResponse struct {
	ID         int64    `json:"id"`
	Submission int64    `json:"submission"`
	Assignment int64    `json:"assignment"`
	DocumentID int64    `json:"document_id,omitempty"`
	TaskID     int64    `json:"task_id,omitempty"`
	TaskUserID int64    `json:"task_user_id,omitempty"`
	UserID     int64    `json:"user_id,omitempty"`
	Title      *string  `json:"title,omitempty"`
	URL        *string  `json:"url,omitempty"`
	AuthKey    *string  `json:"auth_key,omitempty"`
	BaseURL    *string  `json:"base_url,omitempty"`
	Score      *float64 `json:"score,omitempty"`
	Plagiarism *float64 `json:"plagiarism,omitempty"`
	AiRate     *float64 `json:"ai_rate,omitempty"`
	AiProb     *float64 `json:"ai_probability,omitempty"`
	Status     int      `json:"status"`
	Error      *string  `json:"error,omitempty"`
}

type webhookRequest struct {
	Event         string `json:"event"`
	Data          string `json:"data"`
	ModuleContext int64  `json:"moduleContext"`
}

type webhookResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type configRequest struct {
	Values map[string]string `json:"values"`
}

// InitSubmission registers a submission with EduLegit. A remote-side failure
// is not an HTTP error: the errored record (status 0) is returned so the
// host can render the stored error text.
func (h *Handler) InitSubmission(w http.ResponseWriter, r *http.Request) {
	var req initRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.manager.Init(r.Context(), &domain.InitRequest{
		Submission: req.Submission,
		Assignment: req.Assignment,
		UserID:     req.UserID,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(rec))
}

func (h *Handler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "submission_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.manager.Sync(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(rec))
}

func (h *Handler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "submission_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.manager.DeleteSubmission(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "assignment_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.manager.DeleteAssignment(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) PutAssignmentConfig(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "assignment_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Values) == 0 {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	for name, value := range req.Values {
		if err := h.config.Set(r.Context(), id, name, value); err != nil {
			h.writeServiceError(w, r, err)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// Webhook is the entry point EduLegit pushes asynchronous results to. The
// body is decoded before the token check: moduleContext names the assignment
// whose ws_token override, if any, the caller was given.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Event == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.authorized(r, req.ModuleContext) {
		writeError(w, http.StatusUnauthorized, "invalid webhook token")
		return
	}

	result, err := h.callback.Handle(r.Context(), req.Event, req.Data)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{Success: true, Data: result})
}

func (h *Handler) authorized(r *http.Request, assignmentID int64) bool {
	token := r.Header.Get("X-Webhook-Token")
	if token == "" {
		token = r.URL.Query().Get("wstoken")
	}

	expected := h.tokens.WebhookToken(r.Context(), assignmentID)
	return expected != "" && token == expected
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errdefs.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errdefs.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errdefs.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toSubmissionResponse(rec *domain.Submission) submissionResponse {
	return submissionResponse{
		ID:         rec.ID,
		Submission: rec.Submission,
		Assignment: rec.Assignment,
		DocumentID: rec.DocumentID,
		TaskID:     rec.TaskID,
		TaskUserID: rec.TaskUserID,
		UserID:     rec.UserID,
		Title:      rec.Title,
		URL:        rec.URL,
		AuthKey:    rec.AuthKey,
		BaseURL:    rec.BaseURL,
		Score:      rec.Score,
		Plagiarism: rec.Plagiarism,
		AiRate:     rec.AiRate,
		AiProb:     rec.AiProbability,
		Status:     rec.Status,
		Error:      rec.Error,
	}
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
