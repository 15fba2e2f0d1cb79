package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded page templates. Embedding keeps rendering
// independent of the working directory.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}
