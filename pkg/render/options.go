package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the quiz model itself.
type RenderOptions struct {
	// Theme carries resolved go-theme configuration (tokens, CSS variables,
	// asset URLs). Renderers that produce styled output consult it; the
	// script renderer ignores it.
	Theme *theme.RendererConfig

	// OmitHandler suppresses the submit-handler text in renderers that embed
	// it (the script renderer). The zero value keeps the text: it is
	// informational either way and is never installed against a live form.
	OmitHandler bool
}
