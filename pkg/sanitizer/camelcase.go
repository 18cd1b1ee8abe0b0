package sanitizer

import (
	"regexp"
	"strings"
)

// Matches hyphen-separated lowercase attribute names (two or more segments)
// up to and including the assignment sign. Requiring the trailing "=" keeps
// hyphenated words inside attribute values and text content out of reach.
var hyphenatedAttrPattern = regexp.MustCompile(`(\s)([a-z][a-z0-9]*(?:-[a-z0-9]+)+)(\s*=)`)

// CamelCaseAttributes rewrites hyphenated attribute names into camelCase,
// e.g. fill-opacity="0.5" becomes fillOpacity="0.5". Attribute values are
// never touched and single-segment names pass through unchanged, so applying
// the conversion twice is a no-op.
func CamelCaseAttributes(doc string) string {
	return hyphenatedAttrPattern.ReplaceAllStringFunc(doc, func(m string) string {
		sub := hyphenatedAttrPattern.FindStringSubmatch(m)
		return sub[1] + camelJoin(sub[2]) + sub[3]
	})
}

// camelJoin concatenates hyphen-separated segments, capitalizing every
// segment after the first. Segments are known to be lowercase alphanumeric
// by the time this is called.
func camelJoin(name string) string {
	segments := strings.Split(name, "-")

	var b strings.Builder
	b.Grow(len(name))
	b.WriteString(segments[0])
	for _, seg := range segments[1:] {
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}

	return b.String()
}
