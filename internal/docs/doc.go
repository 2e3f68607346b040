// Package docs serves the interactive API documentation as embedded assets.
//
// The OpenAPI 3.0 document and a Swagger UI page are embedded into the Go
// binary using the go:embed directive, eliminating any runtime dependency on
// external files. Handler returns an http.Handler that serves them read-only;
// the documentation surface carries no business behaviour and is mounted
// outside the Basic-auth gate so the schema stays browsable.
package docs
