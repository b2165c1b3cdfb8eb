// web/templates.go
package web

import "html/template"

// LoadTemplates parses the page templates with the view helpers attached.
// The glob is configurable so tests can load from the package directory.
func LoadTemplates(glob string) *template.Template {
	return template.Must(template.New("").Funcs(FuncMap()).ParseGlob(glob))
}
