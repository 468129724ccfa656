// Package web embeds the static client: the contact page, its
// stylesheet and the view-state controller script.
package web

import (
	"embed"
	"net/http"
)

//go:embed index.html static
var files embed.FS

// Index serves the contact book page.
func Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, files, "index.html")
}

// Static serves the embedded /static/ assets.
func Static() http.Handler {
	return http.FileServerFS(files)
}
