package web

import (
	"embed"
	"io/fs"
	"path"
)

// The admin UI ships inside the binary so a single executable can serve the
// settings page without an asset directory next to it.
var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// templateEmbedFS exposes the embedded templates directory as an fs.FS
// rooted at 'templates' for the template engine.
type templateEmbedFS struct {
	content embed.FS
}

func (e templateEmbedFS) Open(name string) (fs.File, error) {
	return e.content.Open(path.Join("templates", name))
}
