package markdown

import (
	"strings"

	stripmd "github.com/writeas/go-strip-markdown/v2"
)

// ToPlainText converts markdown note content to plain text before it is
// embedded. Embedding raw markup skews both the dense and the sparse channel
// (heading markers and link targets are not note content).
func ToPlainText(content string) string {
	return strings.TrimSpace(stripmd.Strip(content))
}
