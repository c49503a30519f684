package tsp

import "math"

// NearestNeighbor builds one tour with the nearest-neighbor heuristic.
//
// Algorithm:
//  1. Start at index 0 (the anchor). All other indices are unvisited, kept
//     in ascending index order.
//  2. Scan the unvisited list for the city closest to the current one. The
//     running minimum starts at +Inf and is replaced only on strictly-less,
//     so the first city met in list order wins ties.
//  3. Move there, add the edge to the total, drop it from the list
//     (order of the rest is preserved).
//  4. When the list is empty, close the loop back to the anchor.
//
// The heuristic never backtracks: it runs in polynomial time but may be far
// from optimal on adversarial inputs. Its result is never cheaper than
// SelectBest on the same instance.
//
// For cm.Len() < 2 it returns the zero Result.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(cm CostModel) Result {
	var n = cm.Len()
	if n < 2 {
		return Result{}
	}

	var (
		tour      = make(Tour, 0, n+1)
		unvisited = make([]int, 0, n-1)
		current   = 0
		total     float64
		k         int
	)
	for k = 1; k < n; k++ {
		unvisited = append(unvisited, k)
	}
	tour = append(tour, current+1)

	var (
		nearest int     // position of the chosen city inside unvisited
		closest float64 // running minimum distance
		d       float64
	)
	for len(unvisited) > 0 {
		nearest = 0
		closest = math.Inf(1)
		for k = 0; k < len(unvisited); k++ {
			d = cm.Cost(current, unvisited[k])
			if d < closest {
				closest = d
				nearest = k
			}
		}

		total += closest
		current = unvisited[nearest]
		tour = append(tour, current+1)
		unvisited = append(unvisited[:nearest], unvisited[nearest+1:]...)
	}

	total += cm.Cost(current, 0)
	tour = append(tour, AnchorID)

	return Result{Tour: tour, Cost: round1e9(total), Candidates: 1}
}
