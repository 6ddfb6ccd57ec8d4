package frontend

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

// FS embeds the dashboard page template and its static assets
//
//go:embed all:dist
var FS embed.FS

const indexTemplate = "index.html"

// GetHTTPFS returns the embedded static assets (dist/static) for HTTP serving
func GetHTTPFS() (http.FileSystem, error) {
	sub, err := fs.Sub(FS, "dist/static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}

// IndexTemplate parses the embedded dashboard page template
func IndexTemplate(funcs template.FuncMap) (*template.Template, error) {
	dist, err := fs.Sub(FS, "dist")
	if err != nil {
		return nil, err
	}

	// Check that the page template is present before parsing
	if _, err := fs.Stat(dist, indexTemplate); err != nil {
		return nil, err
	}

	return template.New(indexTemplate).Funcs(funcs).ParseFS(dist, indexTemplate)
}
