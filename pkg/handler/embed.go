package handler

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded handler template so callers can reuse or
// extend it without importing the package internals.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
