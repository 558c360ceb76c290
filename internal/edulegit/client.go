package edulegit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const userAgent = "Mozilla/5.0 Edulegit plugin/1.0"

type Config struct {
	BaseURL        string
	APIToken       string
	ConnectTimeout time.Duration
	Timeout        time.Duration
}

// Response is the uniform result of one API call. Success reflects the
// transport outcome only; whether the service itself succeeded is carried by
// the parsed Payload. Payload is nil when the body is not valid JSON.
type Response struct {
	Success    bool
	StatusCode int
	Payload    *Payload
	Error      string
	RawURL     string
}

// Data returns the nested data object, or nil if the response carries none.
func (r *Response) Data() *TaskData {
	if r == nil || r.Payload == nil {
		return nil
	}
	return r.Payload.Data
}

type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	connectTimeout := cfg.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = 7 * time.Second
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	transport := &http.Transport{
		DialContext:         (&net.Dialer{Timeout: connectTimeout}).DialContext,
		TLSHandshakeTimeout: connectTimeout,
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiToken: cfg.APIToken,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// Request issues one API call and folds body, status and transport error
// into a Response. It never retries; callers decide whether to call again.
func (c *Client) Request(ctx context.Context, method, path string, data interface{}) *Response {
	url := c.baseURL + path
	resp := &Response{RawURL: url}

	var body io.Reader
	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			resp.Error = "failed to encode request body: " + err.Error()
			return resp
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}

	req.Header.Set("X-API-TOKEN", c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	defer func() { _ = httpResp.Body.Close() }()

	resp.Success = true
	resp.StatusCode = httpResp.StatusCode

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err == nil {
		resp.Payload = &payload
	}

	return resp
}

// InitAssignment registers an assignment user task with EduLegit.
func (c *Client) InitAssignment(ctx context.Context, data *InitAssignmentRequest) *Response {
	return c.Request(ctx, http.MethodPost, "/init-moodle-assignment", data)
}

// DeleteAssignmentUserTasks removes remote user tasks in bulk. Used by the
// cascade deletes; callers treat any failure as best-effort.
func (c *Client) DeleteAssignmentUserTasks(ctx context.Context, taskUserIDs []int64) *Response {
	return c.Request(ctx, http.MethodDelete, "/moodle-assignment-user-tasks", map[string][]int64{
		"taskUserIds": taskUserIDs,
	})
}
