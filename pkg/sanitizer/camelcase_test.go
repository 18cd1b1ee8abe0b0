package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svgforge/svgforge/pkg/sanitizer"
)

func TestCamelCaseAttributes(t *testing.T) {
	t.Run("converts hyphenated attribute names", func(t *testing.T) {
		doc := `<rect fill-opacity="0.5" stroke-width="2" stroke-dasharray="1 2"/>`

		got := sanitizer.CamelCaseAttributes(doc)

		assert.Equal(t, `<rect fillOpacity="0.5" strokeWidth="2" strokeDasharray="1 2"/>`, got)
	})

	t.Run("handles three or more segments", func(t *testing.T) {
		got := sanitizer.CamelCaseAttributes(`<text glyph-orientation-vertical="auto"/>`)

		assert.Equal(t, `<text glyphOrientationVertical="auto"/>`, got)
	})

	t.Run("single segment names untouched", func(t *testing.T) {
		doc := `<rect width="10" height="20" fill="red"/>`

		assert.Equal(t, doc, sanitizer.CamelCaseAttributes(doc))
	})

	t.Run("values with hyphens untouched", func(t *testing.T) {
		doc := `<stop stop-color="dark-red" id="my-gradient-stop"/>`

		got := sanitizer.CamelCaseAttributes(doc)

		assert.Equal(t, `<stop stopColor="dark-red" id="my-gradient-stop"/>`, got)
	})

	t.Run("no-op on documents without hyphenated names", func(t *testing.T) {
		doc := `<svg viewBox="0 0 10 10"><circle r="5"/></svg>`

		assert.Equal(t, doc, sanitizer.CamelCaseAttributes(doc))
	})

	t.Run("idempotent", func(t *testing.T) {
		doc := `<rect fill-opacity="0.5" stroke-line="a-b"/>`

		once := sanitizer.CamelCaseAttributes(doc)
		twice := sanitizer.CamelCaseAttributes(once)

		assert.Equal(t, once, twice)
	})
}

func TestPipelineScenario(t *testing.T) {
	// Sanitization followed by case conversion over a document combining an
	// event handler, a script element and a hyphenated attribute.
	doc := `<svg onclick="x()"><script>y()</script><rect fill-opacity="0.5"/></svg>`

	out := sanitizer.Sanitize(doc, sanitizer.DefaultOptions())
	got := sanitizer.CamelCaseAttributes(out.Sanitized)

	assert.NotContains(t, got, "onclick")
	assert.NotContains(t, got, "<script")
	assert.NotContains(t, got, "fill-opacity")
	assert.Contains(t, got, "fillOpacity")
}
