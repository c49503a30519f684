// Package tsp - city registry.
//
// A Registry is the immutable set of labeled 2-D points shared by every
// solver. Index i always holds the city with id i+1; the cost model and the
// tour encoding both rely on that mapping.
package tsp

import (
	"fmt"
	"math"
	"slices"
)

// City is a labeled point in the plane. ID is positive and unique within
// an instance.
type City struct {
	ID int
	X  float64
	Y  float64
}

// String renders the city as "id: x y".
func (c City) String() string {
	return fmt.Sprintf("%d: %g %g", c.ID, c.X, c.Y)
}

// Registry is an ordered, read-only sequence of cities indexed 0..n-1,
// where index i holds city id i+1.
type Registry struct {
	cities []City
}

// NewRegistry copies cities, orders the copy by id and verifies that the
// ids form exactly {1..n} and that every coordinate is finite.
//
// Errors: ErrNonContiguousIDs, ErrBadCoordinate.
//
// Complexity: O(n log n) time, O(n) space.
func NewRegistry(cities []City) (*Registry, error) {
	var own = slices.Clone(cities)
	slices.SortStableFunc(own, func(a, b City) int { return a.ID - b.ID })

	var (
		i int
		c City
	)
	for i, c = range own {
		if c.ID != i+1 {
			return nil, ErrNonContiguousIDs
		}
		if !finite(c.X) || !finite(c.Y) {
			return nil, ErrBadCoordinate
		}
	}

	return &Registry{cities: own}, nil
}

// Len returns the number of cities.
func (r *Registry) Len() int { return len(r.cities) }

// At returns the city stored at index i (id i+1). It panics when i is out
// of range, like a slice index.
func (r *Registry) At(i int) City { return r.cities[i] }

// ByID returns the city with the given id.
func (r *Registry) ByID(id int) (City, bool) {
	if id < 1 || id > len(r.cities) {
		return City{}, false
	}

	return r.cities[id-1], true
}

// Cities returns a copy of the ordered city list.
func (r *Registry) Cities() []City { return slices.Clone(r.cities) }

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
