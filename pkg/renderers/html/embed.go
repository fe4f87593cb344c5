package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded preview template bundle so callers can
// reuse or extend it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
