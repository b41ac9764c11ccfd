// Package swagger serves the embedded OpenAPI document.
package swagger

import (
	"context"
	_ "embed"
	"net/http"
)

// OpenAPI contains the embedded OpenAPI document.
//
//go:embed openapi.yaml
var OpenAPI []byte

// Register attaches the OpenAPI route to mux.
//
//	GET /openapi.yaml -> embedded OpenAPI document
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		_, _ = w.Write(OpenAPI)
	})
}
