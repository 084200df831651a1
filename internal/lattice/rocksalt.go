// Package lattice builds demo clusters to feed the scatter viewer.
package lattice

import (
	"errors"
	"fmt"

	"ionic-scatter/internal/defs"
)

// ErrSpacing is returned for a non-positive lattice constant.
var ErrSpacing = errors.New("lattice spacing must be positive")

// NaClSpacing is the nearest-neighbour distance of rock salt in nm.
const NaClSpacing = 0.282

// RockSalt returns an n x n x n block of a rock-salt lattice centred on the origin.
// Sites with even i+j+k carry +1, the others -1. A positive jitter displaces every
// coordinate by a normal deviate with that standard deviation.
func RockSalt(n int, spacing, jitter float64, seed int64) (*defs.Cluster, error) {
	if !(spacing > 0) {
		return nil, fmt.Errorf("%w: %v", ErrSpacing, spacing)
	}
	if n <= 0 {
		return &defs.Cluster{Positions: [][3]float64{}, Charges: []float64{}}, nil
	}

	var rng *PRNGService
	if jitter > 0 {
		rng = NewPRNGService(seed)
	}

	offset := float64(n-1) / 2
	c := &defs.Cluster{
		Positions: make([][3]float64, 0, n*n*n),
		Charges:   make([]float64, 0, n*n*n),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				p := [3]float64{
					(float64(i) - offset) * spacing,
					(float64(j) - offset) * spacing,
					(float64(k) - offset) * spacing,
				}
				if rng != nil {
					for a := range p {
						p[a] += rng.Normal(jitter)
					}
				}

				charge := 1.0
				if (i+j+k)%2 == 1 {
					charge = -1
				}
				c.Positions = append(c.Positions, p)
				c.Charges = append(c.Charges, charge)
			}
		}
	}
	return c, nil
}
