package tsp

import "fmt"

// Dense is a precomputed, row-major n×n cost matrix.
// Entry (i, j) holds Distance(city i, city j); the diagonal is zero and the
// matrix is symmetric by construction. It is read-only after NewDense.
type Dense struct {
	n    int
	data []float64
}

var _ CostModel = (*Dense)(nil)

// NewDense precomputes every pairwise distance of reg.
// Only the upper triangle is evaluated; the lower one is mirrored, so
// symmetry is exact rather than up to rounding.
//
// Complexity: O(n²) time and memory.
func NewDense(reg *Registry) *Dense {
	var (
		n    = reg.Len()
		data = make([]float64, n*n)
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(reg.cities[i], reg.cities[j])
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}

	return &Dense{n: n, data: data}
}

// Len returns the matrix order.
func (m *Dense) Len() int { return m.n }

// Cost returns the precomputed distance between indices i and j.
func (m *Dense) Cost(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("tsp: dense index (%d,%d) out of range [0,%d)", i, j, m.n))
	}

	return m.data[i*m.n+j]
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) []float64 {
	var out = make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out
}
