package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
)

//go:embed static/*
var content embed.FS

// Handler returns an http.Handler that serves the Swagger UI page and the
// OpenAPI document. The root path serves index.html; /openapi.json serves
// the schema the UI loads.
//
// Panics if the embedded assets cannot be loaded (build error).
func Handler() http.Handler {
	staticFS, err := fs.Sub(content, "static")
	if err != nil {
		panic(fmt.Sprintf("docs: failed to load embedded assets: %v", err))
	}

	fileServer := http.FileServer(http.FS(staticFS))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The schema may be edited between releases; keep clients honest.
		w.Header().Set("Cache-Control", "no-cache, must-revalidate")
		fileServer.ServeHTTP(w, r)
	})
}
