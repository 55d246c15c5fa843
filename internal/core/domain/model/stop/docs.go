// Package stop models a delivery stop: one shipment destination that can be placed on a
// driver's route, sequenced, and confirmed.
//
// The package includes:
//   - Stop: the entity carrying address, zone, coordinate, route placement and status
//   - Status: the delivery state machine (PENDING, IN_TRANSIT, DELIVERED, CANCELLED)
//
// Key business rules:
//   - An unassigned stop has no route and position 0
//   - Assigned stops hold 1-based positions inside their route
//   - A stop is IN_TRANSIT only while its route is in progress
//   - Detaching a stop always resets it to PENDING
package stop
