package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"ideaboard-cli/internal/config"
	"ideaboard-cli/internal/model"
	"ideaboard-cli/internal/session"
)

// Client wraps HTTP access to the idea-board backend. It attaches the bearer
// token from the session, retries exactly once after a silent token refresh
// on 401, and normalizes every failure into *model.APIError.
type Client struct {
	baseURL string
	httpc   *http.Client
	store   session.Store
	sess    *session.Session

	// onAuthFailure runs after a failed refresh, once the session has been
	// cleared (the TUI switches to the login view; the CLI reports it).
	onAuthFailure func()
}

func New(cfg config.APIConfig, store session.Store, sess *session.Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.Timeout},
		store:   store,
		sess:    sess,
	}
}

// Session returns the session the client was constructed with.
func (c *Client) Session() *session.Session { return c.sess }

func (c *Client) OnAuthFailure(fn func()) { c.onAuthFailure = fn }

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.send(ctx, method, path, query, body, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeError(resp, path)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &model.APIError{
			Status:    resp.StatusCode,
			Message:   fmt.Sprintf("decode response: %v", err),
			Timestamp: time.Now().UTC(),
			Path:      path,
		}
	}
	return nil
}

// send issues one JSON request through sendBytes.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any, allowRetry bool) (*http.Response, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, transportError(path, err)
		}
		payload = b
	}
	return c.sendBytes(ctx, method, path, query, "application/json", payload, allowRetry)
}

// sendBytes issues one request from a replayable byte payload, running the
// refresh-and-replay branch at most once (allowRetry is false on the replay
// and on the refresh call itself). Every outgoing request goes through here,
// multipart uploads and binary downloads included.
func (c *Client) sendBytes(ctx context.Context, method, path string, query url.Values, contentType string, payload []byte, allowRetry bool) (*http.Response, error) {
	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), rd)
	if err != nil {
		return nil, transportError(path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.sess.Token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, transportError(path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && allowRetry && c.sess.RefreshToken != "" {
		resp.Body.Close()
		if err := c.refresh(ctx); err != nil {
			c.resetSession()
			return nil, err
		}
		return c.sendBytes(ctx, method, path, query, contentType, payload, false)
	}
	return resp, nil
}

// refresh exchanges the persisted refresh token for a new access token and
// persists it. The refresh call carries no bearer header.
func (c *Client) refresh(ctx context.Context) error {
	payload, err := json.Marshal(map[string]string{"refreshToken": c.sess.RefreshToken})
	if err != nil {
		return transportError("/auth/refresh", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/auth/refresh", nil), bytes.NewReader(payload))
	if err != nil {
		return transportError("/auth/refresh", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return transportError("/auth/refresh", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeError(resp, "/auth/refresh")
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Token == "" {
		return &model.APIError{
			Status:    http.StatusUnauthorized,
			Message:   "token refresh returned no token",
			Timestamp: time.Now().UTC(),
			Path:      "/auth/refresh",
		}
	}
	c.sess.Token = body.Token
	return c.store.SaveToken(body.Token)
}

// resetSession clears all persisted auth state after an irrecoverable auth
// failure. The three stored values always go together.
func (c *Client) resetSession() {
	_ = c.store.Clear()
	c.sess.Token = ""
	c.sess.RefreshToken = ""
	c.sess.User = nil
	if c.onAuthFailure != nil {
		c.onAuthFailure()
	}
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// upload posts a multipart form with a single file part. The form is built
// into memory first so the request can be replayed after a token refresh.
func (c *Client) upload(ctx context.Context, path, field, filename string, content io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return transportError(path, err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return transportError(path, err)
	}
	if err := mw.Close(); err != nil {
		return transportError(path, err)
	}

	resp, err := c.sendBytes(ctx, http.MethodPost, path, nil, mw.FormDataContentType(), buf.Bytes(), true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeError(resp, path)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// download fetches a binary response body.
func (c *Client) download(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.sendBytes(ctx, http.MethodGet, path, nil, "", nil, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, normalizeError(resp, path)
	}
	return io.ReadAll(resp.Body)
}

// normalizeError turns a non-2xx response into *model.APIError, preferring
// the server's structured payload and falling back to a generic message.
func normalizeError(resp *http.Response, path string) error {
	apiErr := &model.APIError{
		Status:    resp.StatusCode,
		Message:   "an unexpected error occurred",
		Timestamp: time.Now().UTC(),
		Path:      path,
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(body) > 0 {
		var parsed model.APIError
		if jsonErr := json.Unmarshal(body, &parsed); jsonErr == nil && parsed.Message != "" {
			apiErr.Message = parsed.Message
			apiErr.Errors = parsed.Errors
		}
	}
	return apiErr
}

// transportError covers failures with no HTTP response (DNS, refused,
// context cancellation). Status 0 distinguishes them from server rejections.
func transportError(path string, err error) error {
	return &model.APIError{
		Status:    0,
		Message:   err.Error(),
		Timestamp: time.Now().UTC(),
		Path:      path,
	}
}
