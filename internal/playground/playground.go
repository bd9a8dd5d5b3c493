// Package playground serves the locator practice page: a static page with
// the elements the locators and the synchronisation barriers are exercised
// on, such as delayed, hidden and removed elements, forms and a modal.
//
// The delays of the page default to one second, and can be changed with the
// "delay" query parameter, in milliseconds: "/?delay=100".
package playground

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// Handler returns the handler that serves the practice page at "/".
func Handler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is embedded, it's always there.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
