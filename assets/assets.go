// Package assets embeds the default static files served under /static.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Static returns the embedded static tree rooted at its top directory,
// so "intro.json" is addressed without the "static/" prefix.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}
