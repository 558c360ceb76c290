package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edulegit_service/internal/domain"
	"edulegit_service/internal/errdefs"
	"edulegit_service/internal/server/httpapi"
	"edulegit_service/internal/service"
	"edulegit_service/pkg/logger"
)

type stubManager struct {
	initFn             func(ctx context.Context, req *domain.InitRequest) (*domain.Submission, error)
	syncFn             func(ctx context.Context, submissionID int64) (*domain.Submission, error)
	deleteSubmissionFn func(ctx context.Context, submissionID int64) error
	deleteAssignmentFn func(ctx context.Context, assignmentID int64) error
}

func (s *stubManager) Init(ctx context.Context, req *domain.InitRequest) (*domain.Submission, error) {
	return s.initFn(ctx, req)
}

func (s *stubManager) Sync(ctx context.Context, submissionID int64) (*domain.Submission, error) {
	return s.syncFn(ctx, submissionID)
}

func (s *stubManager) DeleteSubmission(ctx context.Context, submissionID int64) error {
	return s.deleteSubmissionFn(ctx, submissionID)
}

func (s *stubManager) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	return s.deleteAssignmentFn(ctx, assignmentID)
}

type stubCallback struct {
	handleFn func(ctx context.Context, event, data string) (*service.CallbackResult, error)
}

func (s *stubCallback) Handle(ctx context.Context, event, data string) (*service.CallbackResult, error) {
	return s.handleFn(ctx, event, data)
}

type stubConfig struct {
	setFn func(ctx context.Context, assignmentID int64, name, value string) error
}

func (s *stubConfig) Set(ctx context.Context, assignmentID int64, name, value string) error {
	return s.setFn(ctx, assignmentID, name, value)
}

type stubTokens struct {
	overrides map[int64]string
	global    string
}

func (s *stubTokens) WebhookToken(_ context.Context, assignmentID int64) string {
	if token, ok := s.overrides[assignmentID]; ok {
		return token
	}
	return s.global
}

func newTestServer(t *testing.T, manager *stubManager, callback *stubCallback, config *stubConfig) *httptest.Server {
	return newTestServerWithTokens(t, manager, callback, config, &stubTokens{global: "hook-token"})
}

func newTestServerWithTokens(t *testing.T, manager *stubManager, callback *stubCallback, config *stubConfig, tokens *stubTokens) *httptest.Server {
	log := logger.New()
	h := httpapi.NewHandler(manager, callback, config, tokens, log)
	server := httptest.NewServer(httpapi.NewRouter(h, log))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, body string) *http.Response {
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func TestInitSubmission(t *testing.T) {
	t.Run("ReturnsSyncedRecord", func(t *testing.T) {
		manager := &stubManager{
			initFn: func(_ context.Context, req *domain.InitRequest) (*domain.Submission, error) {
				assert.Equal(t, int64(42), req.Submission)
				assert.Equal(t, int64(7), req.Assignment)
				assert.Equal(t, int64(5), req.UserID)
				score := 0.8
				return &domain.Submission{
					ID:         10,
					Submission: 42,
					Assignment: 7,
					DocumentID: 999,
					Score:      &score,
					Status:     domain.StatusSynced,
				}, nil
			},
		}
		server := newTestServer(t, manager, nil, nil)

		resp := doJSON(t, http.MethodPost, server.URL+"/v1/submissions/init",
			`{"submission":42,"assignment":7,"user_id":5,"email":"student@example.com"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		decodeBody(t, resp, &body)
		assert.Equal(t, float64(10), body["id"])
		assert.Equal(t, float64(999), body["document_id"])
		assert.Equal(t, 0.8, body["score"])
		assert.Equal(t, float64(1), body["status"])
	})

	t.Run("RemoteFailureIsStillOK", func(t *testing.T) {
		manager := &stubManager{
			initFn: func(context.Context, *domain.InitRequest) (*domain.Submission, error) {
				errText := "EduLegit service error."
				return &domain.Submission{ID: 10, Submission: 42, Status: domain.StatusError, Error: &errText}, nil
			},
		}
		server := newTestServer(t, manager, nil, nil)

		resp := doJSON(t, http.MethodPost, server.URL+"/v1/submissions/init",
			`{"submission":42,"assignment":7,"user_id":5}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		decodeBody(t, resp, &body)
		assert.Equal(t, float64(0), body["status"])
		assert.Equal(t, "EduLegit service error.", body["error"])
	})

	t.Run("ValidationErrorIs400", func(t *testing.T) {
		manager := &stubManager{
			initFn: func(context.Context, *domain.InitRequest) (*domain.Submission, error) {
				return nil, errdefs.ErrValidation
			},
		}
		server := newTestServer(t, manager, nil, nil)

		resp := doJSON(t, http.MethodPost, server.URL+"/v1/submissions/init", `{"submission":42}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MalformedBodyIs400", func(t *testing.T) {
		server := newTestServer(t, &stubManager{}, nil, nil)

		resp := doJSON(t, http.MethodPost, server.URL+"/v1/submissions/init", `{broken`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetSubmission(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		manager := &stubManager{
			syncFn: func(_ context.Context, submissionID int64) (*domain.Submission, error) {
				assert.Equal(t, int64(42), submissionID)
				return &domain.Submission{ID: 10, Submission: 42, Status: domain.StatusSynced}, nil
			},
		}
		server := newTestServer(t, manager, nil, nil)

		resp := doJSON(t, http.MethodGet, server.URL+"/v1/submissions/42", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("NotFoundIs404", func(t *testing.T) {
		manager := &stubManager{
			syncFn: func(context.Context, int64) (*domain.Submission, error) {
				return nil, errdefs.ErrNotFound
			},
		}
		server := newTestServer(t, manager, nil, nil)

		resp := doJSON(t, http.MethodGet, server.URL+"/v1/submissions/42", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("InvalidIDIs400", func(t *testing.T) {
		server := newTestServer(t, &stubManager{}, nil, nil)

		resp := doJSON(t, http.MethodGet, server.URL+"/v1/submissions/abc", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UnexpectedErrorIs500", func(t *testing.T) {
		manager := &stubManager{
			syncFn: func(context.Context, int64) (*domain.Submission, error) {
				return nil, errors.New("db down")
			},
		}
		server := newTestServer(t, manager, nil, nil)

		resp := doJSON(t, http.MethodGet, server.URL+"/v1/submissions/42", "")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestDeleteEndpoints(t *testing.T) {
	t.Run("DeleteSubmission", func(t *testing.T) {
		manager := &stubManager{
			deleteSubmissionFn: func(_ context.Context, submissionID int64) error {
				assert.Equal(t, int64(42), submissionID)
				return nil
			},
		}
		server := newTestServer(t, manager, nil, nil)

		resp := doJSON(t, http.MethodDelete, server.URL+"/v1/submissions/42", "")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("DeleteAssignment", func(t *testing.T) {
		manager := &stubManager{
			deleteAssignmentFn: func(_ context.Context, assignmentID int64) error {
				assert.Equal(t, int64(7), assignmentID)
				return nil
			},
		}
		server := newTestServer(t, manager, nil, nil)

		resp := doJSON(t, http.MethodDelete, server.URL+"/v1/assignments/7", "")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestPutAssignmentConfig(t *testing.T) {
	t.Run("StoresEveryValue", func(t *testing.T) {
		stored := map[string]string{}
		config := &stubConfig{
			setFn: func(_ context.Context, assignmentID int64, name, value string) error {
				assert.Equal(t, int64(7), assignmentID)
				stored[name] = value
				return nil
			},
		}
		server := newTestServer(t, &stubManager{}, nil, config)

		resp := doJSON(t, http.MethodPut, server.URL+"/v1/assignments/7/config",
			`{"values":{"enable_ai":"0","enable_screen":"1"}}`)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, map[string]string{"enable_ai": "0", "enable_screen": "1"}, stored)
	})

	t.Run("EmptyValuesIs400", func(t *testing.T) {
		server := newTestServer(t, &stubManager{}, nil, &stubConfig{})

		resp := doJSON(t, http.MethodPut, server.URL+"/v1/assignments/7/config", `{"values":{}}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestWebhook(t *testing.T) {
	t.Run("HeaderTokenAccepted", func(t *testing.T) {
		callback := &stubCallback{
			handleFn: func(_ context.Context, event, data string) (*service.CallbackResult, error) {
				assert.Equal(t, "task.document.checked", event)
				assert.Equal(t, `{"taskUser":{"externalId":10}}`, data)
				return &service.CallbackResult{Handled: true, Submission: 42, Status: 1}, nil
			},
		}
		server := newTestServer(t, &stubManager{}, callback, nil)

		req, err := http.NewRequest(http.MethodPost, server.URL+"/v1/webhook",
			strings.NewReader(`{"event":"task.document.checked","data":"{\"taskUser\":{\"externalId\":10}}"}`))
		require.NoError(t, err)
		req.Header.Set("X-Webhook-Token", "hook-token")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Success bool                   `json:"success"`
			Data    map[string]interface{} `json:"data"`
		}
		decodeBody(t, resp, &body)
		assert.True(t, body.Success)
		assert.Equal(t, true, body.Data["handled"])
		assert.Equal(t, float64(42), body.Data["submission"])
	})

	t.Run("QueryTokenAccepted", func(t *testing.T) {
		callback := &stubCallback{
			handleFn: func(context.Context, string, string) (*service.CallbackResult, error) {
				return &service.CallbackResult{Handled: true}, nil
			},
		}
		server := newTestServer(t, &stubManager{}, callback, nil)

		resp := doJSON(t, http.MethodPost, server.URL+"/v1/webhook?wstoken=hook-token",
			`{"event":"task.user.updated","data":"{}"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("MissingTokenIs401", func(t *testing.T) {
		server := newTestServer(t, &stubManager{}, &stubCallback{}, nil)

		resp := doJSON(t, http.MethodPost, server.URL+"/v1/webhook",
			`{"event":"task.user.updated","data":"{}"}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("WrongTokenIs401", func(t *testing.T) {
		server := newTestServer(t, &stubManager{}, &stubCallback{}, nil)

		resp := doJSON(t, http.MethodPost, server.URL+"/v1/webhook?wstoken=other",
			`{"event":"task.user.updated","data":"{}"}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("AssignmentOverrideTokenAccepted", func(t *testing.T) {
		callback := &stubCallback{
			handleFn: func(context.Context, string, string) (*service.CallbackResult, error) {
				return &service.CallbackResult{Handled: true}, nil
			},
		}
		tokens := &stubTokens{global: "hook-token", overrides: map[int64]string{7: "assignment-token"}}
		server := newTestServerWithTokens(t, &stubManager{}, callback, nil, tokens)

		// The callback URL for assignment 7 embeds the override token, so
		// that is what EduLegit presents back.
		resp := doJSON(t, http.MethodPost, server.URL+"/v1/webhook?wstoken=assignment-token",
			`{"event":"task.user.updated","data":"{}","moduleContext":7}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("GlobalTokenRejectedWhereOverrideSet", func(t *testing.T) {
		tokens := &stubTokens{global: "hook-token", overrides: map[int64]string{7: "assignment-token"}}
		server := newTestServerWithTokens(t, &stubManager{}, &stubCallback{}, nil, tokens)

		resp := doJSON(t, http.MethodPost, server.URL+"/v1/webhook?wstoken=hook-token",
			`{"event":"task.user.updated","data":"{}","moduleContext":7}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("MissingEventIs400", func(t *testing.T) {
		server := newTestServer(t, &stubManager{}, &stubCallback{}, nil)

		resp := doJSON(t, http.MethodPost, server.URL+"/v1/webhook?wstoken=hook-token", `{"data":"{}"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UndecodableDataIs400", func(t *testing.T) {
		callback := &stubCallback{
			handleFn: func(context.Context, string, string) (*service.CallbackResult, error) {
				return nil, errdefs.ErrValidation
			},
		}
		server := newTestServer(t, &stubManager{}, callback, nil)

		resp := doJSON(t, http.MethodPost, server.URL+"/v1/webhook?wstoken=hook-token",
			`{"event":"task.user.updated","data":"{broken"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHealth(t *testing.T) {
	server := newTestServer(t, &stubManager{}, nil, nil)

	resp := doJSON(t, http.MethodGet, server.URL+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}
