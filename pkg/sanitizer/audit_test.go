package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgforge/svgforge/pkg/sanitizer"
)

func TestAudit(t *testing.T) {
	t.Run("clean document yields no warnings", func(t *testing.T) {
		doc := `<svg><rect fill="red" width="10"/></svg>`
		assert.Empty(t, sanitizer.Audit(doc))
	})

	t.Run("one warning per element category", func(t *testing.T) {
		doc := `<svg><script>a()</script><script>b()</script><iframe/><iframe/></svg>`

		warnings := sanitizer.Audit(doc)

		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "<script>")
		assert.Contains(t, warnings[1], "<iframe>")
	})

	t.Run("one warning per distinct event handler name", func(t *testing.T) {
		doc := `<svg onclick="a()"><rect onclick="b()" onload='c()' onpointermove="d()"/></svg>`

		warnings := sanitizer.Audit(doc)

		require.Len(t, warnings, 3)
		assert.Contains(t, warnings[0], "onclick")
		assert.Contains(t, warnings[1], "onload")
		assert.Contains(t, warnings[2], "onpointermove")
	})

	t.Run("one warning per dangerous URL scheme", func(t *testing.T) {
		doc := `<a href="javascript:a()"><use xlink:href="javascript:b()"/><image src="data:text/html,x"/></a>`

		warnings := sanitizer.Audit(doc)

		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "javascript:")
		assert.Contains(t, warnings[1], "data:text/html")
	})

	t.Run("mixed risks reported across categories", func(t *testing.T) {
		doc := `<svg onload="x()"><foreignObject/><embed src="vbscript:y()"/></svg>`

		warnings := sanitizer.Audit(doc)

		assert.Len(t, warnings, 4) // embed, foreignObject, onload, vbscript
	})

	t.Run("does not mutate the document", func(t *testing.T) {
		doc := `<svg onclick="a()"><script>b()</script></svg>`
		orig := doc

		sanitizer.Audit(doc)

		assert.Equal(t, orig, doc)
	})
}
