package pastebin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// Transport defaults. The retry budget counts re-attempts beyond the first
// call, so the default allows 4 attempts total.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetryDelay     = 1 * time.Second
	DefaultRetryAttempts  = 3
)

// Response is a fully drained HTTP response. The transport reads the body
// before returning so a retried attempt never leaks an open connection.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// Transport issues HTTP requests with a fixed per-attempt timeout and retries
// timed-out attempts a bounded number of times with a constant delay. Any
// other failure (connection refused, DNS, cancellation by the caller)
// propagates immediately: a definite failure is not worth retrying against a
// rate-limited public service, only transient unresponsiveness is.
type Transport struct {
	client  *http.Client
	timeout time.Duration
	delay   time.Duration
	retries uint64
}

// NewTransport builds a Transport. Non-positive arguments fall back to the
// package defaults.
func NewTransport(timeout, delay time.Duration, retries int) *Transport {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if delay <= 0 {
		delay = DefaultRetryDelay
	}
	if retries < 0 {
		retries = DefaultRetryAttempts
	}
	return &Transport{
		client:  &http.Client{},
		timeout: timeout,
		delay:   delay,
		retries: uint64(retries),
	}
}

// Post issues a POST with the given content type and body.
func (t *Transport) Post(ctx context.Context, url, contentType string, body []byte) (*Response, error) {
	return t.do(ctx, http.MethodPost, url, contentType, body)
}

// Get issues a GET.
func (t *Transport) Get(ctx context.Context, url string) (*Response, error) {
	return t.do(ctx, http.MethodGet, url, "", nil)
}

func (t *Transport) do(ctx context.Context, method, url, contentType string, body []byte) (*Response, error) {
	var out *Response

	backoff := retry.WithMaxRetries(t.retries, retry.NewConstant(t.delay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := t.attempt(ctx, method, url, contentType, body)
		if err != nil {
			if isTimeout(err) {
				// only a timed-out attempt is eligible for another try
				return retry.RetryableError(fmt.Errorf("%w: %v", ErrTimeout, err))
			}
			return err
		}
		out = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// attempt performs one bounded HTTP call. The per-attempt context cancels the
// in-flight call deterministically on expiry; no orphaned work survives it.
func (t *Transport) attempt(ctx context.Context, method, url, contentType string, body []byte) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// isTimeout reports whether err was caused by the attempt deadline rather
// than a definite network failure or a caller-initiated cancellation.
func isTimeout(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
