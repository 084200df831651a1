// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	"ionic-scatter/internal/scatter"
)

var (
	// ErrMissingField means a cluster file lacks "positions" or "charges".
	ErrMissingField = errors.New("cluster field missing")
	// ErrBadPosition means a position row does not hold exactly three numbers.
	ErrBadPosition = errors.New("position must have 3 coordinates")
	// ErrNullValue means a coordinate or charge is JSON null.
	ErrNullValue = errors.New("null value in cluster")
)

// Cluster is the on-disk form of a set of charged particles.
type Cluster struct {
	Positions [][3]float64
	Charges   []float64
}

// clusterFile keeps the fields as pointers so absent keys can be told apart from
// empty arrays, and null entries from zeros.
type clusterFile struct {
	Positions *[][]*float64 `json:"positions"`
	Charges   *[]*float64   `json:"charges"`
}

// clusterOut is the write side of clusterFile.
type clusterOut struct {
	Positions [][]float64 `json:"positions"`
	Charges   []float64   `json:"charges"`
}

// LoadCluster reads a cluster JSON file.
func LoadCluster(path string) (*Cluster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cluster file: %w", err)
	}
	defer f.Close()

	c, err := DecodeCluster(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// DecodeCluster parses {"positions": [[x,y,z], ...], "charges": [q, ...]}. The two
// arrays are not required to match in length here; rendering checks that.
func DecodeCluster(r io.Reader) (*Cluster, error) {
	var raw clusterFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cluster: %w", err)
	}
	if raw.Positions == nil {
		return nil, fmt.Errorf("%w: positions", ErrMissingField)
	}
	if raw.Charges == nil {
		return nil, fmt.Errorf("%w: charges", ErrMissingField)
	}

	c := &Cluster{
		Positions: make([][3]float64, len(*raw.Positions)),
		Charges:   make([]float64, len(*raw.Charges)),
	}
	for i, row := range *raw.Positions {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: row %d has %d", ErrBadPosition, i, len(row))
		}
		for j, v := range row {
			if v == nil {
				return nil, fmt.Errorf("%w: positions[%d][%d]", ErrNullValue, i, j)
			}
			c.Positions[i][j] = *v
		}
	}
	for i, q := range *raw.Charges {
		if q == nil {
			return nil, fmt.Errorf("%w: charges[%d]", ErrNullValue, i)
		}
		c.Charges[i] = *q
	}
	return c, nil
}

// EncodeCluster writes c in the format DecodeCluster reads.
func EncodeCluster(w io.Writer, c *Cluster) error {
	positions := make([][]float64, len(c.Positions))
	for i, p := range c.Positions {
		positions[i] = []float64{p[0], p[1], p[2]}
	}
	charges := c.Charges
	if charges == nil {
		charges = []float64{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(clusterOut{Positions: positions, Charges: charges}); err != nil {
		return fmt.Errorf("failed to marshal cluster: %w", err)
	}
	return nil
}

// PointSet converts the cluster into renderer input.
func (c *Cluster) PointSet() scatter.PointSet {
	ps := scatter.PointSet{
		Coordinates: make([]r3.Vec, len(c.Positions)),
		Values:      append([]float64(nil), c.Charges...),
	}
	for i, p := range c.Positions {
		ps.Coordinates[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}
	return ps
}
