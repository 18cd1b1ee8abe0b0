package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Sender delivers webhook payloads over a pooled HTTP client.
type Sender struct {
	client *http.Client
}

// NewSender creates a Sender with a connection-pooled default client.
func NewSender() *Sender {
	return &Sender{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// NewSenderWithClient creates a Sender around a custom client; a nil client
// falls back to the default.
func NewSenderWithClient(client *http.Client) *Sender {
	if client == nil {
		return NewSender()
	}
	return &Sender{client: client}
}

// Send marshals data to JSON and POSTs it to webhookURL, retrying per the
// options. A 2xx response is success; 4xx fails immediately; 5xx and network
// errors are retried with exponential backoff until attempts run out.
func (s *Sender) Send(ctx context.Context, webhookURL string, data any, opts ...SendOption) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrInvalidPayload, err)
	}

	u, err := url.Parse(webhookURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, webhookURL)
	}

	options := defaultSendOptions()
	for _, opt := range opts {
		opt(options)
	}

	var headers map[string]string
	if options.secret != "" {
		sig, err := SignPayload(options.secret, payload)
		if err != nil {
			return err
		}
		headers = sig.Headers()
	}

	var lastErr error
	for attempt := 0; attempt <= options.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoffDelay(attempt, options.baseBackoff)):
			}
		}

		status, err := s.deliver(ctx, webhookURL, payload, headers, options)
		switch {
		case err != nil:
			lastErr = err
		case status >= 200 && status < 300:
			return nil
		case status >= 400 && status < 500:
			return fmt.Errorf("%w: endpoint answered %d", ErrDeliveryFailed, status)
		default:
			lastErr = fmt.Errorf("endpoint answered %d", status)
		}
	}

	return fmt.Errorf("%w: %d attempts: %v", ErrDeliveryFailed, options.maxRetries+1, lastErr)
}

func (s *Sender) deliver(ctx context.Context, webhookURL string, payload []byte, headers map[string]string, options *sendOptions) (int, error) {
	reqCtx := ctx
	if options.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, options.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "svgforge-webhook/1.0")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for k, v := range options.headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Drain so the connection returns to the pool.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return resp.StatusCode, nil
}

// backoffDelay grows exponentially with the attempt number: base, 2*base,
// 4*base, capped at 30 seconds.
func backoffDelay(attempt int, base time.Duration) time.Duration {
	d := base << (attempt - 1)
	if d > 30*time.Second || d <= 0 {
		return 30 * time.Second
	}
	return d
}
