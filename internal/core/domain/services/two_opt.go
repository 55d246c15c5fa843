package services

import (
	"slices"

	"logistics/internal/core/domain/model/kernel"
)

const (
	// DefaultTwoOptMaxPasses bounds the number of improvement sweeps.
	DefaultTwoOptMaxPasses = 8

	// DefaultTwoOptToleranceKm is the minimum gain for a reversal to be adopted.
	DefaultTwoOptToleranceKm = 0.001

	// twoOptMinStops is the smallest tour the refiner will touch.
	twoOptMinStops = 4
)

// TwoOptRefiner improves an open tour that starts at a fixed origin by reversing
// segments. A reversal of [i, k] is adopted when the whole path, recomputed from the
// origin, gets shorter by more than ToleranceKm. The last stop of the tour is never
// part of a reversed segment.
//
// Sweeps repeat until one finds no improvement or MaxPasses is reached, so the result
// is never longer than the input. Tours with fewer than four stops are returned as is.
type TwoOptRefiner struct {
	MaxPasses   int
	ToleranceKm float64
}

// NewTwoOptRefiner returns a refiner with the given pass cap. Non-positive values fall
// back to DefaultTwoOptMaxPasses.
func NewTwoOptRefiner(maxPasses int) TwoOptRefiner {
	if maxPasses <= 0 {
		maxPasses = DefaultTwoOptMaxPasses
	}
	return TwoOptRefiner{
		MaxPasses:   maxPasses,
		ToleranceKm: DefaultTwoOptToleranceKm,
	}
}

// Refine returns an improved copy of tour, a visiting order of indices into points.
// The input slice is not modified.
func (r TwoOptRefiner) Refine(origin kernel.Coordinate, points []kernel.Coordinate, tour []int) []int {
	best := slices.Clone(tour)
	if len(best) < twoOptMinStops {
		return best
	}

	maxPasses := r.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultTwoOptMaxPasses
	}

	bestDistance := tourDistanceKm(origin, points, best)
	candidate := make([]int, len(best))

	for pass := 0; pass < maxPasses; pass++ {
		improved := false

		for i := 0; i < len(best)-2; i++ {
			for k := i + 1; k < len(best)-1; k++ {
				copy(candidate, best)
				slices.Reverse(candidate[i : k+1])

				candidateDistance := tourDistanceKm(origin, points, candidate)
				if candidateDistance+r.ToleranceKm < bestDistance {
					best, candidate = candidate, best
					bestDistance = candidateDistance
					improved = true
				}
			}
		}

		if !improved {
			break
		}
	}

	return best
}
