// Package web embeds the single-page UI served by the HTTP router.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html static
var assets embed.FS

// IndexHTML returns the main page.
func IndexHTML() []byte {
	data, err := assets.ReadFile("index.html")
	if err != nil {
		panic(err)
	}
	return data
}

// StaticFS returns the asset tree rooted at static/, ready to mount under
// the /static route.
func StaticFS() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
