package prompt

import "strings"

// Builder renders a text template by substituting {placeholder} markers.
// Templates live in internal/constant so prompt wording is reviewed in one
// place.
type Builder struct {
	template string
}

func NewBuilder(template string) *Builder {
	return &Builder{template: template}
}

// Render replaces every {key} in the template with its value. Unknown
// placeholders are left untouched so a template typo is visible in the
// rendered prompt instead of silently disappearing.
func (b *Builder) Render(values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(b.template)
}
