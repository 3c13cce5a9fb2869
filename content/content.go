// Package content seeds newly created files with a default body picked by
// file extension.
package content

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
)

// FileInfo is the data available to content templates.
type FileInfo struct {
	Name     string // base name without extension
	Filename string // full base name
}

// Generator holds the immutable extension -> template table, built once at
// startup. Lookup is by lower-cased extension including the leading dot.
type Generator struct {
	templates map[string]*template.Template
	fallback  *template.Template
}

// New builds a Generator from the default table, with overrides (from the
// config file) replacing or extending individual extensions. An override
// keyed by "" replaces the fallback body.
func New(overrides map[string]string) (*Generator, error) {
	g := &Generator{templates: make(map[string]*template.Template, len(defaultTemplates))}

	for ext, body := range defaultTemplates {
		tmpl, err := template.New(ext).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse built-in template for %s: %w", ext, err)
		}
		g.templates[ext] = tmpl
	}
	fallback, err := template.New("fallback").Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fallback template: %w", err)
	}
	g.fallback = fallback

	for ext, body := range overrides {
		ext = strings.ToLower(ext)
		tmpl, err := template.New(ext).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template for %q: %w", ext, err)
		}
		if ext == "" {
			g.fallback = tmpl
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		g.templates[ext] = tmpl
	}
	return g, nil
}

// Generate returns the initial body for a new file with the given name.
func (g *Generator) Generate(filename string) (string, error) {
	base := filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(base))

	info := FileInfo{
		Name:     strings.TrimSuffix(base, filepath.Ext(base)),
		Filename: base,
	}
	if info.Name == "" {
		// dotfiles like .htaccess: Ext eats the whole name
		info.Name = base
	}

	tmpl, ok := g.templates[ext]
	if !ok {
		tmpl = g.fallback
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, info); err != nil {
		return "", fmt.Errorf("failed to render content for %s: %w", filename, err)
	}
	return sb.String(), nil
}
