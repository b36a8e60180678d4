// Package web carries the storefront's embedded page templates. The
// showcase markup is a named template of its own so the catalog sync can
// render and scrape it without going through a live page request.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses all embedded page templates.
func Templates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return tmpl, nil
}

// ShowcaseHTML renders the showcase section on its own.
func ShowcaseHTML() (string, error) {
	tmpl, err := Templates()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "showcase", nil); err != nil {
		return "", fmt.Errorf("render showcase: %w", err)
	}
	return buf.String(), nil
}
