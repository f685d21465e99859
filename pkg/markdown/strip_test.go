package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPlainTextStripsMarkup(t *testing.T) {
	out := ToPlainText("# Heading\n\nSome **bold** and _italic_ text")
	assert.Equal(t, "Heading\n\nSome bold and italic text", out)
}

func TestToPlainTextLinks(t *testing.T) {
	out := ToPlainText("see [the docs](https://example.com) for details")
	assert.Equal(t, "see the docs for details", out)
}

func TestToPlainTextPlainInputUnchanged(t *testing.T) {
	out := ToPlainText("already plain text")
	assert.Equal(t, "already plain text", out)
}

func TestToPlainTextTrimsWhitespace(t *testing.T) {
	out := ToPlainText("  \n\ncontent\n\n  ")
	assert.Equal(t, "content", out)
}
