package pastebin

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sharepad/sharepad/internal/logging"
)

// DefaultBaseURL is the public paste.rs endpoint.
const DefaultBaseURL = "https://paste.rs/"

// Options configures a Client. Zero values fall back to package defaults.
type Options struct {
	BaseURL        string
	RequestTimeout time.Duration
	MaxTextLength  int
	RetryAttempts  int
	RetryDelay     time.Duration
}

// UploadResult is the tagged outcome of an upload. Exactly one of the two
// shapes holds: Success with Link and ID set, or failure with Err set.
type UploadResult struct {
	Success    bool
	Link       string
	ID         string
	Err        error
	StatusCode int

	// Partial reports that the service accepted only a prefix of the content
	// because of its own size ceiling (HTTP 206).
	Partial bool
}

// Client uploads text to a pastebin service and retrieves pastes by id.
// Safe for concurrent use; each call owns its own timeout and retry budget.
type Client struct {
	baseURL   string
	validator *Validator
	transport *Transport
	log       logging.Logger
}

// NewClient builds a Client from opts. The base URL is normalized to end
// with a slash so share links can be built by plain concatenation.
func NewClient(opts Options, log logging.Logger) *Client {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL:   base,
		validator: NewValidator(opts.MaxTextLength),
		transport: NewTransport(opts.RequestTimeout, opts.RetryDelay, opts.RetryAttempts),
		log:       log,
	}
}

// Upload validates text, posts it to the service and interprets the response.
// It never returns a Go error: every failure is folded into the result.
func (c *Client) Upload(ctx context.Context, text string) UploadResult {
	if err := c.validator.Validate(text); err != nil {
		return UploadResult{Err: err}
	}

	resp, err := c.transport.Post(ctx, c.baseURL, "text/plain", []byte(text))
	if err != nil {
		mapped := c.mapTransportError(err)
		c.log.Warn(ctx, "upload transport failure", "err", mapped)
		return UploadResult{Err: mapped}
	}

	switch {
	case resp.StatusCode == 201 || resp.StatusCode == 206:
		id := extractID(resp.Header.Get("Location"), resp.Body)
		if id == "" {
			// the service answered success without an identifier; treat it
			// as a protocol violation, not a retryable condition
			c.log.Error(ctx, "no paste id in success response", "status", resp.StatusCode)
			return UploadResult{Err: ErrUploadFailed, StatusCode: resp.StatusCode}
		}
		res := UploadResult{
			Success:    true,
			ID:         id,
			Link:       c.baseURL + id,
			StatusCode: resp.StatusCode,
			Partial:    resp.StatusCode == 206,
		}
		c.log.Info(ctx, "upload complete", "id", id, "partial", res.Partial)
		return res

	case resp.StatusCode == 429:
		return UploadResult{Err: ErrRateLimited, StatusCode: resp.StatusCode}

	case resp.StatusCode >= 500:
		return UploadResult{Err: ErrUnavailable, StatusCode: resp.StatusCode}

	default:
		return UploadResult{
			Err:        fmt.Errorf("%w (%d)", ErrUploadFailed, resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}
}

// Retrieve fetches a previously uploaded paste. An optional format suffix
// selects the service's rendered representation (e.g. "rs" for highlighting).
func (c *Client) Retrieve(ctx context.Context, id string, format string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidArgument
	}

	target := c.baseURL + id
	if format != "" {
		target += "." + format
	}

	resp, err := c.transport.Get(ctx, target)
	if err != nil {
		return "", c.mapTransportError(err)
	}

	switch {
	case resp.StatusCode == 404:
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	case resp.StatusCode != 200:
		return "", fmt.Errorf("failed to retrieve paste %s: %s", id, resp.Status)
	}
	return string(resp.Body), nil
}

// BaseURL returns the normalized service endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// mapTransportError folds transport failures into the error taxonomy:
// exhausted timeout retries stay ErrTimeout, connection-level problems
// become ErrNetwork, anything unexpected is a generic upload failure.
func (c *Client) mapTransportError(err error) error {
	switch {
	case errors.Is(err, ErrTimeout):
		return ErrTimeout
	case errors.Is(err, context.Canceled):
		return err
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%w: %v", ErrNetwork, ue.Err)
	}
	return fmt.Errorf("%w: %v", ErrUploadFailed, err)
}

// extractID pulls the paste identifier out of a success response: the
// Location header wins, otherwise the body text, in both cases taking the
// final path segment of the value.
func extractID(location string, body []byte) string {
	source := location
	if source == "" {
		source = string(body)
	}
	source = strings.TrimSpace(source)
	source = strings.TrimSuffix(source, "/")
	if source == "" {
		return ""
	}
	if i := strings.LastIndex(source, "/"); i >= 0 {
		return source[i+1:]
	}
	return source
}
