package audit_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgforge/svgforge/pkg/audit"
)

func TestSQLiteStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("store and read back", func(t *testing.T) {
		storage, err := audit.NewSQLiteStorage(filepath.Join(t.TempDir(), "audit.db"))
		require.NoError(t, err)
		defer storage.Close()

		rec := audit.Record{
			ID:            "rec-1",
			CreatedAt:     time.Now().UTC(),
			Credential:    "cred",
			Filename:      "logo.svg",
			OriginalSize:  100,
			OptimizedSize: 60,
			Cached:        false,
			Sanitized:     true,
			Result:        audit.ResultSuccess,
		}
		require.NoError(t, storage.Store(ctx, rec))

		records, err := storage.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "rec-1", records[0].ID)
		assert.Equal(t, "logo.svg", records[0].Filename)
		assert.Equal(t, audit.ResultSuccess, records[0].Result)
		assert.True(t, records[0].Sanitized)
	})

	t.Run("recent orders newest first and respects the limit", func(t *testing.T) {
		storage, err := audit.NewSQLiteStorage(filepath.Join(t.TempDir(), "audit.db"))
		require.NoError(t, err)
		defer storage.Close()

		base := time.Now().UTC()
		for i := 0; i < 5; i++ {
			require.NoError(t, storage.Store(ctx, audit.Record{
				ID:        string(rune('a' + i)),
				CreatedAt: base.Add(time.Duration(i) * time.Second),
				Result:    audit.ResultSuccess,
			}))
		}

		records, err := storage.Recent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "e", records[0].ID)
		assert.Equal(t, "d", records[1].ID)
	})

	t.Run("failure records round-trip the error text", func(t *testing.T) {
		storage, err := audit.NewSQLiteStorage(":memory:")
		require.NoError(t, err)
		defer storage.Close()

		require.NoError(t, storage.Store(ctx, audit.Record{
			ID:        "fail-1",
			CreatedAt: time.Now().UTC(),
			Result:    audit.ResultFailure,
			Error:     "optimizer exploded",
		}))

		records, err := storage.Recent(ctx, 1)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, audit.ResultFailure, records[0].Result)
		assert.Equal(t, "optimizer exploded", records[0].Error)
	})
}
