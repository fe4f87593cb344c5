package script

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded console-script template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
