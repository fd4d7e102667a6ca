// Package embedded provides embedded static assets for the application.
package embedded

import (
	"embed"
	"io/fs"
)

// files contains the browser front end: index.html plus its script and
// stylesheet. They are served directly via HTTP.
//
//go:embed frontend
var files embed.FS

// Frontend returns the front end rooted at the frontend directory.
func Frontend() fs.FS {
	sub, err := fs.Sub(files, "frontend")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "frontend" is fixed.
		panic(err)
	}
	return sub
}
