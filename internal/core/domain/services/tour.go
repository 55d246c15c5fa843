package services

import (
	"math"

	"logistics/internal/core/domain/model/kernel"
)

// PathDistanceKm is the open-path length origin -> points[0] -> points[1] -> ... in km.
// There is no return leg; an empty path has length 0.
func PathDistanceKm(origin kernel.Coordinate, points []kernel.Coordinate) float64 {
	total := 0.0
	current := origin
	for _, p := range points {
		total += current.DistanceTo(p)
		current = p
	}
	return total
}

// tourDistanceKm is PathDistanceKm over points visited in the given index order.
func tourDistanceKm(origin kernel.Coordinate, points []kernel.Coordinate, order []int) float64 {
	total := 0.0
	current := origin
	for _, idx := range order {
		total += current.DistanceTo(points[idx])
		current = points[idx]
	}
	return total
}

// NearestNeighborTour builds a greedy tour starting at origin: at each step it moves to
// the closest unvisited point. It returns the visiting order as indices into points.
//
// Ties go to the lowest index, so the result is deterministic. Runs in O(n²).
func NearestNeighborTour(origin kernel.Coordinate, points []kernel.Coordinate) []int {
	visited := make([]bool, len(points))
	order := make([]int, 0, len(points))
	current := origin

	for len(order) < len(points) {
		nearest := -1
		minDistance := math.Inf(1)

		for i, p := range points {
			if visited[i] {
				continue
			}
			// Strict comparison keeps the first-encountered point on ties.
			if d := current.DistanceTo(p); nearest == -1 || d < minDistance {
				nearest = i
				minDistance = d
			}
		}

		visited[nearest] = true
		order = append(order, nearest)
		current = points[nearest]
	}

	return order
}
