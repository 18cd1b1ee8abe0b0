package clientip_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svgforge/svgforge/pkg/clientip"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("remote addr fallback", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "10.1.2.3:4567"
		assert.Equal(t, "10.1.2.3", clientip.Resolve(r))
	})

	t.Run("forwarded-for wins", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "10.1.2.3:4567"
		r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		assert.Equal(t, "203.0.113.9", clientip.Resolve(r))
	})

	t.Run("skips invalid forwarded entries", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "10.1.2.3:4567"
		r.Header.Set("X-Forwarded-For", "not-an-ip, 203.0.113.9")
		assert.Equal(t, "203.0.113.9", clientip.Resolve(r))
	})

	t.Run("real-ip before remote addr", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "10.1.2.3:4567"
		r.Header.Set("X-Real-IP", "198.51.100.7")
		assert.Equal(t, "198.51.100.7", clientip.Resolve(r))
	})

	t.Run("normalizes ipv6", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "2001:0db8:0000:0000:0000:0000:0000:0001")
		assert.Equal(t, "2001:db8::1", clientip.Resolve(r))
	})

	t.Run("remote addr without port", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "10.1.2.3"
		assert.Equal(t, "10.1.2.3", clientip.Resolve(r))
	})

	t.Run("empty when nothing parses", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "garbage"
		assert.Empty(t, clientip.Resolve(r))
	})
}
