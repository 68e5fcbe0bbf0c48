// Package forumapi is the HTTP/JSON client for the forum platform's REST
// API. All candidate-side data access goes through this client; it owns the
// base URL, cookie-based credentials, timeouts, and payload validation.
package forumapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/forum-agent/internal/logging"
)

// DefaultTimeout is the default HTTP request timeout
const DefaultTimeout = 30 * time.Second

// DefaultSessionCookie is the cookie carrying the candidate's session
const DefaultSessionCookie = "sessionid"

// Options configures the client
type Options struct {
	BaseURL       string
	MediaBaseURL  string
	SessionToken  string // value of the session cookie; empty for anonymous calls
	SessionCookie string // cookie name, DefaultSessionCookie when empty
	Timeout       time.Duration
	Logger        logging.Logger
}

// StatusError reports a non-success HTTP response
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("forum API %s %s: HTTP status %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound reports whether err is a 404 StatusError
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// Client talks to the forum backend
type Client struct {
	baseURL  *url.URL
	mediaURL *url.URL
	http     *http.Client
	log      logging.Logger
	validate *validator.Validate
}

// New creates a client for the given base URL. Credentials travel as a
// session cookie on every request, matching the backend's cookie-based
// authentication.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("forum API base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid forum API base URL %q", opts.BaseURL)
	}

	var media *url.URL
	if opts.MediaBaseURL != "" {
		media, err = url.Parse(strings.TrimRight(opts.MediaBaseURL, "/"))
		if err != nil {
			return nil, fmt.Errorf("invalid media base URL %q: %w", opts.MediaBaseURL, err)
		}
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	if opts.SessionToken != "" {
		name := opts.SessionCookie
		if name == "" {
			name = DefaultSessionCookie
		}
		jar.SetCookies(base, []*http.Cookie{{Name: name, Value: opts.SessionToken, Path: "/"}})
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	return &Client{
		baseURL:  base,
		mediaURL: media,
		http:     &http.Client{Jar: jar, Timeout: timeout},
		log:      log,
		validate: validator.New(),
	}, nil
}

// MediaURL resolves a server-relative media path (CV, photo) against the
// configured media base. Absolute URLs pass through unchanged.
func (c *Client) MediaURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if c.mediaURL == nil {
		return path
	}
	return c.mediaURL.String() + "/" + strings.TrimLeft(path, "/")
}

// do executes one JSON request and returns the raw response body.
// Non-2xx responses become a *StatusError carrying the body for diagnostics.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s payload: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("forum API request", logging.Fields{"method": method, "path": path})

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forum API %s %s failed: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug("forum API non-success response", logging.Fields{
			"method": method, "path": path, "status": resp.StatusCode,
		})
		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	return raw, nil
}
