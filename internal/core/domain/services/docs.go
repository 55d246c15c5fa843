// Package services provides the route-sequencing engine: pure domain services that
// decide the order in which a driver visits the stops of a route.
//
// The package includes:
//   - PartitionByCoordinate: splits stops into geolocated and unlocated
//   - NearestNeighborTour: greedy tour construction from an origin
//   - TwoOptRefiner: bounded 2-opt improvement of an open tour
//   - FallbackOrderer: zone then address ordering for stops without coordinates
//   - PathDistanceKm: open-path length from the origin
//   - RouteSequencer: combines the above and reports sequencing metadata
//
// Distances are great-circle (haversine) kilometers, not road distances. None of these
// services touch storage; the application layer persists their results.
package services
