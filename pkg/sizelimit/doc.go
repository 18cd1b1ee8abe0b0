// Package sizelimit rejects oversized documents before they reach the more
// expensive sanitization and optimization stages.
//
// Size is measured in encoded bytes, not runes: a multi-byte character counts
// by its UTF-8 length. The default ceiling is 1 MiB.
//
// Usage:
//
//	if err := sizelimit.Validate(content, sizelimit.DefaultMaxBytes); err != nil {
//		// errors.Is(err, sizelimit.ErrPayloadTooLarge)
//	}
package sizelimit
