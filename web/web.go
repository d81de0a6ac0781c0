// Package web embeds the page template and its static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"

	"pixelity_site/internal/pkg/utils"
)

//go:embed templates/*.html static/*.css static/*.js
var files embed.FS

// Templates parses the page templates with the helpers they use.
func Templates() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{
			"shortAddress": utils.ShortenAddress,
			"lower":        strings.ToLower,
		}).
		ParseFS(files, "templates/*.html")
}

// Static returns the static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}
