package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/svgforge/svgforge/pkg/clientip"
)

// maxKeyLength caps the storage key size; longer composites are hashed so
// backends like Redis never see unbounded keys.
const maxKeyLength = 64

// KeyFunc extracts a credential key from an HTTP request. An empty return
// means the request carries no usable identity for this extractor.
type KeyFunc func(*http.Request) string

// KeyByHeader identifies callers by a header value, typically an API key.
func KeyByHeader(name string) KeyFunc {
	return func(r *http.Request) string {
		return strings.TrimSpace(r.Header.Get(name))
	}
}

// KeyByIP identifies callers by client IP, honoring proxy headers the way
// clientip.Resolve does.
func KeyByIP() KeyFunc {
	return clientip.Resolve
}

// Composite joins the first non-empty results of several extractors into one
// key. Composites longer than 64 characters are shortened to a 32-hex-char
// SHA-256 prefix.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) > maxKeyLength {
			sum := sha256.Sum256([]byte(combined))
			return hex.EncodeToString(sum[:16])
		}

		return combined
	}
}
