package optimize

import (
	"context"
	"io"
	"log/slog"

	"github.com/svgforge/svgforge/pkg/async"
	"github.com/svgforge/svgforge/pkg/webhook"
)

// Notifier delivers completed results to an external webhook endpoint.
// Delivery is fire-and-forget; failures are logged and never surface to the
// request that produced the result.
type Notifier struct {
	sender *webhook.Sender
	url    string
	secret string
	log    *slog.Logger
}

// NewNotifier panics if url is empty.
func NewNotifier(url, secret string, log *slog.Logger) *Notifier {
	if url == "" {
		panic("optimize: notifier requires a webhook URL")
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Notifier{
		sender: webhook.NewSender(),
		url:    url,
		secret: secret,
		log:    log,
	}
}

// ResultProduced posts the response to the configured endpoint in the
// background. The delivery outlives the request context.
func (n *Notifier) ResultProduced(ctx context.Context, resp *Response) {
	payload := *resp
	async.Fire(context.WithoutCancel(ctx), func(ctx context.Context) error {
		opts := []webhook.SendOption{}
		if n.secret != "" {
			opts = append(opts, webhook.WithSignature(n.secret))
		}
		return n.sender.Send(ctx, n.url, payload, opts...)
	}, func(err error) {
		n.log.ErrorContext(ctx, "webhook delivery failed", "url", n.url, "error", err)
	})
}
