package webhook_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgforge/svgforge/pkg/webhook"
)

type event struct {
	Type     string `json:"type"`
	Filename string `json:"filename"`
}

func TestSender_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers JSON payload", func(t *testing.T) {
		var got event
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		err := webhook.NewSender().Send(ctx, srv.URL, event{Type: "optimized", Filename: "logo.svg"})

		require.NoError(t, err)
		assert.Equal(t, "optimized", got.Type)
	})

	t.Run("signs when a secret is configured", func(t *testing.T) {
		secret := "shhh"
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			ts, err := strconv.ParseInt(r.Header.Get("X-Webhook-Timestamp"), 10, 64)
			require.NoError(t, err)
			assert.NotEmpty(t, r.Header.Get("X-Webhook-ID"))
			assert.True(t, webhook.VerifySignature(secret, body, ts, r.Header.Get("X-Webhook-Signature")))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		err := webhook.NewSender().Send(ctx, srv.URL, event{Type: "optimized"}, webhook.WithSignature(secret))
		require.NoError(t, err)
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		err := webhook.NewSender().Send(ctx, srv.URL, event{},
			webhook.WithMaxRetries(3), webhook.WithBackoff(time.Millisecond))

		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		err := webhook.NewSender().Send(ctx, srv.URL, event{},
			webhook.WithMaxRetries(3), webhook.WithBackoff(time.Millisecond))

		assert.ErrorIs(t, err, webhook.ErrDeliveryFailed)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("gives up after retries are exhausted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		err := webhook.NewSender().Send(ctx, srv.URL, event{},
			webhook.WithMaxRetries(1), webhook.WithBackoff(time.Millisecond))

		assert.ErrorIs(t, err, webhook.ErrDeliveryFailed)
	})

	t.Run("rejects invalid URLs", func(t *testing.T) {
		err := webhook.NewSender().Send(ctx, "ftp://example.com/hook", event{})
		assert.ErrorIs(t, err, webhook.ErrInvalidURL)
	})
}

func TestSignPayload(t *testing.T) {
	t.Run("requires a secret and payload", func(t *testing.T) {
		_, err := webhook.SignPayload("", []byte("x"))
		assert.ErrorIs(t, err, webhook.ErrInvalidConfiguration)

		_, err = webhook.SignPayload("secret", nil)
		assert.ErrorIs(t, err, webhook.ErrInvalidPayload)
	})

	t.Run("verification round trip", func(t *testing.T) {
		payload := []byte(`{"a":1}`)
		sig, err := webhook.SignPayload("secret", payload)
		require.NoError(t, err)

		assert.True(t, webhook.VerifySignature("secret", payload, sig.Timestamp, sig.Signature))
		assert.False(t, webhook.VerifySignature("wrong", payload, sig.Timestamp, sig.Signature))
		assert.False(t, webhook.VerifySignature("secret", []byte(`{"a":2}`), sig.Timestamp, sig.Signature))
	})
}
