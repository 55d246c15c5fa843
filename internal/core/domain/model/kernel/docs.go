// Package kernel provides the value objects shared by the route and stop aggregates.
//
// The package includes:
//   - Coordinate: a latitude/longitude pair with the (0, 0) "unset" sentinel and the
//     usable-coordinate rule used to partition stops before sequencing
//   - HaversineKm: straight-line great-circle distance in kilometers
//
// Both are immutable and safe for concurrent use.
package kernel
