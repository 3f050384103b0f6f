// Package web holds the HTML templates, static assets and page view models
// for the RefugeConnect site.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
}

// Templates parses every page template into one set. Pages are executed by
// file name, e.g. "locations.html".
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// Static serves the stylesheet, script and images under /static
func Static() (http.FileSystem, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}
	return http.FS(sub), nil
}
