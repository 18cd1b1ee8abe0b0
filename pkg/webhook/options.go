package webhook

import "time"

type sendOptions struct {
	timeout     time.Duration
	maxRetries  int
	baseBackoff time.Duration
	secret      string
	headers     map[string]string
}

func defaultSendOptions() *sendOptions {
	return &sendOptions{
		timeout:     10 * time.Second,
		maxRetries:  3,
		baseBackoff: 500 * time.Millisecond,
	}
}

// SendOption configures a single delivery.
type SendOption func(*sendOptions)

// WithTimeout bounds each individual delivery attempt.
func WithTimeout(d time.Duration) SendOption {
	return func(o *sendOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithMaxRetries sets how many times a failed delivery is retried.
// Zero disables retries.
func WithMaxRetries(n int) SendOption {
	return func(o *sendOptions) {
		if n >= 0 {
			o.maxRetries = n
		}
	}
}

// WithBackoff sets the base delay of the exponential retry backoff.
func WithBackoff(base time.Duration) SendOption {
	return func(o *sendOptions) {
		if base > 0 {
			o.baseBackoff = base
		}
	}
}

// WithSignature signs the delivery with the given shared secret.
func WithSignature(secret string) SendOption {
	return func(o *sendOptions) {
		o.secret = secret
	}
}

// WithHeader attaches an extra header to the delivery.
func WithHeader(key, value string) SendOption {
	return func(o *sendOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}
