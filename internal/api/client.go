// Package api implements the HTTP client for the remote scam-detection
// service. One method per endpoint; all analysis happens server-side, so
// the client's job is assembling payloads, dispatching requests, and
// translating failures into single user-facing messages.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scamshield/scamshield/internal/common"
)

// Defaults applied when the Config leaves fields zero.
const (
	DefaultTimeout = 30 * time.Second
	// DefaultUploadTimeout bounds the file-processing endpoints
	// (document, audio, deepfake) independently of the transport default.
	DefaultUploadTimeout = 10 * time.Second
)

// Config holds the transport configuration. It is constructed explicitly
// and passed in so tests can point the client at a fake server without
// touching process-wide state.
type Config struct {
	BaseURL       string
	UserAgent     string
	Timeout       time.Duration
	UploadTimeout time.Duration
}

// Client is the configured HTTP client shared by every request function.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	userAgent     string
	uploadTimeout time.Duration
}

// New creates a client for the detection service.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: API base URL", common.ErrMissingConfig)
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid API base URL: %v", common.ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported URL scheme %q", common.ErrInvalidConfig, u.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	uploadTimeout := cfg.UploadTimeout
	if uploadTimeout <= 0 {
		uploadTimeout = DefaultUploadTimeout
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "scamshield"
	}

	return &Client{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:     userAgent,
		uploadTimeout: uploadTimeout,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// APIError is the single error surface of every request function. Message
// is taken from the remote error body's detail field when present, else the
// endpoint's fixed fallback string. Error() returns exactly the message the
// user should see.
type APIError struct {
	Err        error
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// errorBody is the conventional shape of a non-2xx response.
type errorBody struct {
	Detail string `json:"detail"`
}

// File is a named payload attached to a multipart request. Content is
// streamed; the caller keeps ownership of any underlying handle.
type File struct {
	Content io.Reader
	Name    string
	MIME    string
}

// postJSON sends a JSON body and decodes a JSON response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any, fallback string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out, fallback)
}

// getJSON issues a GET with query parameters and decodes the response.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any, fallback string) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, out, fallback)
}

// postMultipart sends a multipart/form-data body assembled from plain
// fields and file parts and decodes the JSON response into out.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, files map[string]File, out any, fallback string) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	for field, file := range files {
		part, err := createFilePart(writer, field, file)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("failed to read %s: %w", file.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, out, fallback)
}

// createFilePart opens a form part that carries the file's declared MIME
// type instead of the octet-stream default.
func createFilePart(writer *multipart.Writer, field string, file File) (io.Writer, error) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, file.Name))
	mimeType := file.MIME
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create form part %s: %w", field, err)
	}
	return part, nil
}

// do dispatches the request and funnels every non-success outcome through
// a single *APIError. No retries, no backoff: every failure is recoverable
// by the user repeating the action.
func (c *Client) do(req *http.Request, out any, fallback string) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	slog.Debug("dispatching API request",
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: fallback, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Message: fallback, Err: err, StatusCode: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Message:    errorMessage(body, fallback),
			StatusCode: resp.StatusCode,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{Message: fallback, Err: err, StatusCode: resp.StatusCode}
	}
	return nil
}

// errorMessage extracts the server's detail string, falling back to the
// endpoint's fixed message when the body carries none.
func errorMessage(body []byte, fallback string) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return fallback
}
