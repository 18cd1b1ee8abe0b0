package sanitizer

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Captures the attribute name so the auditor can report each distinct
	// handler it found.
	eventHandlerNamePattern = regexp.MustCompile(`(?i)\s(on\w+)\s*=\s*("[^"]*"|'[^']*')`)

	auditSchemes = []struct {
		label   string
		pattern *regexp.Regexp
	}{
		{"javascript:", schemePattern(`javascript:`)},
		{"vbscript:", schemePattern(`vbscript:`)},
		{"data:text/html", schemePattern(`data:text/html`)},
		{"data:application", schemePattern(`data:application/`)},
	}

	auditElements = buildAuditElements()
)

func schemePattern(scheme string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?i)(?:xlink:href|href|src|action)\s*=\s*` +
			`(?:"\s*` + scheme + `|'\s*` + scheme + `)`)
}

func buildAuditElements() []struct {
	name    string
	pattern *regexp.Regexp
} {
	names := append([]string{"script"}, dangerousElements...)
	out := make([]struct {
		name    string
		pattern *regexp.Regexp
	}, 0, len(names))
	for _, name := range names {
		out = append(out, struct {
			name    string
			pattern *regexp.Regexp
		}{name, regexp.MustCompile(`(?i)<` + name + `\b`)})
	}
	return out
}

// Audit is the read-only counterpart to Sanitize. It scans doc without
// mutating it and returns one warning per dangerous element category present,
// one per distinct event-handler attribute name, and one per dangerous URL
// scheme found. An empty result means no known risk was detected.
func Audit(doc string) []string {
	var warnings []string

	for _, el := range auditElements {
		if el.pattern.MatchString(doc) {
			warnings = append(warnings, fmt.Sprintf("document contains <%s> element", el.name))
		}
	}

	seen := make(map[string]struct{})
	for _, m := range eventHandlerNamePattern.FindAllStringSubmatch(doc, -1) {
		name := strings.ToLower(m[1])
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		warnings = append(warnings, fmt.Sprintf("document contains event handler attribute %q", name))
	}

	for _, s := range auditSchemes {
		if s.pattern.MatchString(doc) {
			warnings = append(warnings, fmt.Sprintf("document contains dangerous URL scheme %q", s.label))
		}
	}

	return warnings
}
