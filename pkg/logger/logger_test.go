package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgforge/svgforge/pkg/logger"
)

type ctxKey string

func TestNew(t *testing.T) {
	t.Run("defaults to JSON at info level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("shown")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "shown", rec["msg"])
	})

	t.Run("static attributes appear on every record", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithAttr(slog.String("service", "svgforge")))

		log.Info("hello")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "svgforge", rec["service"])
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

		log.Info("hello")

		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("context values are extracted", func(t *testing.T) {
		var buf bytes.Buffer
		key := ctxKey("request_id")
		log := logger.New(logger.WithOutput(&buf), logger.WithContextValue("request_id", key))

		ctx := context.WithValue(context.Background(), key, "req-123")
		log.InfoContext(ctx, "handled")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "req-123", rec["request_id"])
	})

	t.Run("development preset logs debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("svgforge"), logger.WithOutput(&buf))

		log.Debug("visible")

		assert.Contains(t, buf.String(), "visible")
	})
}
