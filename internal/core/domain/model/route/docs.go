// Package route provides the Route aggregate: one driver's delivery run for a day and
// the ordered stops placed on it.
//
// The package includes:
//   - Route: the aggregate root owning stop placement, visiting order and status coupling
//   - Status: the route state machine (SCHEDULED, IN_PROGRESS, FINISHED)
//
// Key business rules:
//   - Routes are created SCHEDULED, started, and finished
//   - An in-progress route can be rescheduled back to SCHEDULED
//   - Starting dispatches pending stops; rescheduling or finishing recalls in-transit stops
//   - Delivery confirmation is only accepted while the route is in progress
package route
