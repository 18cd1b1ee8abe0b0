package sanitizer

import (
	"fmt"
	"regexp"
)

// Options toggles the four removal categories applied by Sanitize.
// The zero value disables everything; use DefaultOptions for the usual
// everything-on configuration.
type Options struct {
	RemoveScripts           bool
	RemoveDangerousElements bool
	RemoveEventHandlers     bool
	RemoveDangerousURLs     bool
}

// DefaultOptions enables all removal categories.
func DefaultOptions() Options {
	return Options{
		RemoveScripts:           true,
		RemoveDangerousElements: true,
		RemoveEventHandlers:     true,
		RemoveDangerousURLs:     true,
	}
}

// Outcome is the result of a Sanitize call. Issues holds one human-readable
// entry per removal category that fired, in scan order. Modified is true iff
// Issues is non-empty; when false, Sanitized is byte-identical to the input.
type Outcome struct {
	Sanitized string
	Modified  bool
	Issues    []string
}

// dangerousElements are non-script elements capable of loading external or
// executable content or hijacking navigation.
var dangerousElements = []string{
	"iframe", "object", "embed", "applet", "foreignObject", "base", "meta", "link",
}

var (
	scriptPatterns    = elementPatterns("script")
	dangerousPatterns = elementPatterns(dangerousElements...)

	// Matches on* attributes bound with single or double quotes, including
	// the leading whitespace so the removal leaves no gap behind.
	eventHandlerPattern = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*("[^"]*"|'[^']*')`)

	// Matches reference-carrying attributes whose value starts with a
	// known-dangerous scheme. xlink:href must precede href in the
	// alternation so the namespaced form is consumed whole.
	dangerousURLPattern = regexp.MustCompile(
		`(?i)\s*(?:xlink:href|href|src|action)\s*=\s*` +
			`(?:"\s*(?:javascript:|vbscript:|data:text/html|data:application/)[^"]*"` +
			`|'\s*(?:javascript:|vbscript:|data:text/html|data:application/)[^']*')`)
)

// elementPatterns compiles the removal patterns for a set of element names,
// covering both the self-closing and the paired open/close forms. Paired
// matches delete the element wholly, text content included. One pattern per
// name because RE2 has no backreferences to tie open and close tags together.
func elementPatterns(names ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(names))
	for _, name := range names {
		patterns = append(patterns, regexp.MustCompile(fmt.Sprintf(
			`(?is)<%[1]s\b[^>]*/>|<%[1]s\b[^>]*>.*?</%[1]s\s*>`, name)))
	}
	return patterns
}

// Sanitize destructively removes dangerous constructs from doc according to
// opts. When nothing matches, the returned Outcome carries the input string
// unchanged and Modified false.
func Sanitize(doc string, opts Options) Outcome {
	out := Outcome{Sanitized: doc}

	if opts.RemoveScripts {
		if cleaned, hit := removeAll(out.Sanitized, scriptPatterns); hit {
			out.Sanitized = cleaned
			out.Issues = append(out.Issues, "removed script elements")
		}
	}

	if opts.RemoveDangerousElements {
		if cleaned, hit := removeAll(out.Sanitized, dangerousPatterns); hit {
			out.Sanitized = cleaned
			out.Issues = append(out.Issues, "removed dangerous elements")
		}
	}

	if opts.RemoveEventHandlers {
		if eventHandlerPattern.MatchString(out.Sanitized) {
			out.Sanitized = eventHandlerPattern.ReplaceAllString(out.Sanitized, "")
			out.Issues = append(out.Issues, "removed event handler attributes")
		}
	}

	if opts.RemoveDangerousURLs {
		if dangerousURLPattern.MatchString(out.Sanitized) {
			out.Sanitized = dangerousURLPattern.ReplaceAllString(out.Sanitized, "")
			out.Issues = append(out.Issues, "removed dangerous URL references")
		}
	}

	out.Modified = len(out.Issues) > 0
	return out
}

// removeAll applies every pattern and reports whether any of them matched.
func removeAll(doc string, patterns []*regexp.Regexp) (string, bool) {
	hit := false
	for _, re := range patterns {
		if re.MatchString(doc) {
			doc = re.ReplaceAllString(doc, "")
			hit = true
		}
	}
	return doc, hit
}
