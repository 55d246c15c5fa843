package services

import (
	"logistics/internal/core/domain/model/kernel"
)

// Locatable is anything that carries a coordinate: stops in production, bare points in tests.
type Locatable interface {
	Coordinate() kernel.Coordinate
}

// PartitionByCoordinate splits items into those with a usable coordinate and the rest.
// Each partition keeps the input order, and together they hold every item exactly once.
func PartitionByCoordinate[T Locatable](items []T) (geolocated, unlocated []T) {
	geolocated = make([]T, 0, len(items))
	unlocated = make([]T, 0)
	for _, item := range items {
		if item.Coordinate().IsUsable() {
			geolocated = append(geolocated, item)
		} else {
			unlocated = append(unlocated, item)
		}
	}
	return geolocated, unlocated
}

// Coordinates extracts the coordinate of every item, preserving order.
func Coordinates[T Locatable](items []T) []kernel.Coordinate {
	points := make([]kernel.Coordinate, len(items))
	for i, item := range items {
		points[i] = item.Coordinate()
	}
	return points
}

// Permute returns items rearranged by order, where order holds indices into items.
func Permute[T any](items []T, order []int) []T {
	out := make([]T, len(order))
	for i, idx := range order {
		out[i] = items[idx]
	}
	return out
}
