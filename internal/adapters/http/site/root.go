// Package site serves the embedded advisor home page.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded home page routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	files := http.FileServer(FS())
	mux.Handle("/", files)
}
