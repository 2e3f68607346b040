// Package mongodb manages the MongoDB client lifecycle for Restaurants Core.
//
// It wraps the official driver with the same lifecycle pattern as the other
// infrastructure components:
//
//	client, err := mongodb.Connect(ctx, cfg)
//	defer client.Close(ctx)
//
// The connection is verified with a ping at startup so that a misconfigured
// store fails fast instead of at the first request. The client is constructed
// explicitly and injected into the repository layer; there is no package-level
// singleton.
//
// Thread Safety: the underlying driver client is safe for concurrent use.
package mongodb
