// Package web embeds the browser clients: server-rendered approval pages and
// a static single-page app that talks to the JSON API.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed app
var appFS embed.FS

// Templates parses the server-rendered pages. Template names are the file names.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// App returns the single-page app rooted at its index.html
func App() http.FileSystem {
	sub, err := fs.Sub(appFS, "app")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
