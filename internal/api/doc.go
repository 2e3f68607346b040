// Package api implements the HTTP REST API server for Restaurants Core.
//
// This package provides:
//   - REST endpoints for restaurant CRUD with filtering and pagination
//   - A Basic-auth gate over all restaurant routes, generic over the
//     credential verification strategy
//   - Middleware stack (request ID, logging, recovery, CORS, body size limit)
//   - Embedded Swagger UI documentation at /docs
//   - TLS support for production deployments
//
// # Architecture
//
// The server sits between HTTP clients and the restaurant repository. Every
// operation is a single store call: handlers validate input, build the store
// query, and shape the JSON response. No state is held between requests.
//
// # Error handling
//
// Required-field validation short-circuits before any store interaction and
// reports exactly one field per request. A by-id lookup distinguishes
// not-found (404) from store failure (500); create, list, update, and delete
// let store failures surface through the generic 500 path without leaking
// internals.
package api
