// Package kernel provides core domain primitives shared across the model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation
//   - GeoPoint: a validated WGS84 coordinate with great-circle distance
//
// These primitives enforce their invariants at construction, are immutable,
// and are safe for concurrent use.
package kernel
