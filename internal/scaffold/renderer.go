package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"text/template"
)

//go:embed templates
var templatesFS embed.FS

// EmbeddedTemplates returns the embedded template tree rooted at templates/.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return sub, nil
}

// leftoverDirectivePattern detects Go template directives that survived
// rendering. The generated TypeScript legitimately contains `${...}` string
// interpolation, so only `{{...}}` forms are flagged.
var leftoverDirectivePattern = regexp.MustCompile(`\{\{[^{}]*\}\}`)

// Renderer renders embedded templates with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the embedded FS and executes it
	// with the given data. Returns ErrMissingTemplateKey if the data lacks a
	// referenced key and ErrUnexpandedToken if directives remain afterwards.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use testing/fstest.MapFS.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()

	if loc := leftoverDirectivePattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, string(loc), templateName)
	}

	// Normalize any CRLF that slipped into a template on checkout.
	return bytes.ReplaceAll(result, []byte("\r\n"), []byte("\n")), nil
}
