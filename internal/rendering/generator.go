package rendering

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DocumentGenerator produces a document from template variables. DOCX and PDF
// generators live outside this module; TextGenerator is the built-in preview.
type DocumentGenerator interface {
	Generate(ctx context.Context, vars *TemplateVars) ([]byte, error)
}

// TextGenerator renders a plain-text resume preview.
type TextGenerator struct {
	tmpl *template.Template
}

var _ DocumentGenerator = (*TextGenerator)(nil)

// NewTextGenerator returns a generator using the built-in resume layout.
func NewTextGenerator() (*TextGenerator, error) {
	tmpl, err := parseEmbedded("resume.txt.tmpl")
	if err != nil {
		return nil, err
	}
	return &TextGenerator{tmpl: tmpl}, nil
}

// LoadTextGenerator returns a generator using a template file on disk.
func LoadTextGenerator(templatePath string) (*TextGenerator, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{Message: fmt.Sprintf("template file not found: %s", templatePath), Cause: err}
		}
		return nil, &TemplateError{Message: fmt.Sprintf("failed to read template file: %s", templatePath), Cause: err}
	}
	tmpl, err := parseTemplate("resume", string(content))
	if err != nil {
		return nil, err
	}
	return &TextGenerator{tmpl: tmpl}, nil
}

// Generate executes the template.
func (g *TextGenerator) Generate(ctx context.Context, vars *TemplateVars) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Message: "generation cancelled", Cause: err}
	}
	if vars == nil {
		return nil, &RenderError{Message: "template variables are nil"}
	}
	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, vars); err != nil {
		return nil, &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return buf.Bytes(), nil
}

func parseEmbedded(name string) (*template.Template, error) {
	content, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, &TemplateError{Message: fmt.Sprintf("embedded template missing: %s", name), Cause: err}
	}
	return parseTemplate(name, string(content))
}

func parseTemplate(name, content string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(content)
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}

var funcs = template.FuncMap{
	"join":      func(sep string, items []string) string { return strings.Join(items, sep) },
	"nonEmpty":  nonEmpty,
	"dateRange": dateRange,
	"article":   article,
}

func nonEmpty(items ...string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func dateRange(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " – " + end
	case start != "":
		return start
	}
	return end
}

func article(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if w != "" && strings.ContainsRune("aeiou", rune(w[0])) {
		return "an"
	}
	return "a"
}
