// Package restaurant defines the restaurant entity, its required-field
// validation, and the persistence contract over the document store.
//
// This package provides:
//   - The Restaurant record type shared by the API and the store
//   - Required-field validation with fixed evaluation order
//   - A Repository interface covering insert, filtered list, and by-id
//     get/replace/delete
//   - A MongoDB-backed Repository implementation
//
// # Validation
//
// Required-ness is evaluated as truthiness, not presence: an empty string and
// a rating of 0 both count as missing. Validation short-circuits on the first
// missing field, so at most one field is ever reported per request. The model
// enforces no format constraints beyond this — no phone/email syntax checks,
// no rating range.
//
// # Identity
//
// Record identifiers are store-assigned ObjectIDs, set once at insert and
// immutable afterwards. A malformed identifier is reported as ErrInvalidID
// and is treated by callers as a store failure, not a not-found.
package restaurant
