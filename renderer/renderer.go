// Package renderer formats fleet data for display: the inventory table and
// the monthly billing statement.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates
var templates embed.FS

// renderTemplate executes one of the embedded templates against data.
func renderTemplate(name string, data any) string {
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", name, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
