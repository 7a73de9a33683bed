// Package template implements variable substitution for stored template
// content.
package template

import (
	"bytes"
	texttemplate "text/template"

	"templar/internal/shared/errors"
)

// Renderer substitutes named variables into template content using Go's
// text/template syntax. Rendering is pure CPU work; it never touches the
// store or the cache.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render parses the content and executes it with the given variables.
// Malformed syntax or a reference to a missing variable surfaces as a
// render error carrying the underlying cause; it is never retried.
func (r *Renderer) Render(content string, variables map[string]interface{}) (string, error) {
	tmpl, err := texttemplate.New("content").
		Option("missingkey=error").
		Parse(content)
	if err != nil {
		return "", errors.NewBadRequestError("failed to parse template content", err.Error())
	}

	if variables == nil {
		variables = map[string]interface{}{}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", errors.NewBadRequestError("failed to render template content", err.Error())
	}

	return buf.String(), nil
}
