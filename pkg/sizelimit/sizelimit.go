package sizelimit

import (
	"errors"
	"fmt"
)

// DefaultMaxBytes is the ceiling applied when the caller does not supply one.
const DefaultMaxBytes = 1 << 20 // 1 MiB

// ErrPayloadTooLarge indicates the document exceeds the configured size limit.
var ErrPayloadTooLarge = errors.New("payload too large")

// Validate checks that content fits within maxBytes. A non-positive maxBytes
// falls back to DefaultMaxBytes. The returned error embeds both the measured
// and the configured size in human-readable units.
func Validate(content string, maxBytes int) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	// len on a string counts encoded bytes, which is exactly the unit the
	// limit is defined in.
	size := len(content)
	if size > maxBytes {
		return fmt.Errorf("%w: document is %s, limit is %s",
			ErrPayloadTooLarge, FormatBytes(size), FormatBytes(maxBytes))
	}

	return nil
}

// FormatBytes renders a byte count using binary units with one decimal place
// above the byte range, e.g. 1048576 -> "1.0 MB".
func FormatBytes(n int) string {
	const unit = 1024

	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for v := int64(n) / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
