package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
)

//go:embed *.tmpl
var FS embed.FS

var parsed = htmpl.Must(htmpl.ParseFS(FS, "*.tmpl"))

// RenderHTML renders the named template ("<name>.tmpl") with data.
func RenderHTML(name string, data map[string]any) (string, error) {
	t := parsed.Lookup(name + ".tmpl")
	if t == nil {
		return "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SubjectFor maps a template name to its subject line.
func SubjectFor(name string) string {
	switch name {
	case "welcome":
		return "Welcome to Shoppy"
	default:
		return "Notification"
	}
}
