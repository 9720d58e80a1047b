package automaton

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// hexRings holds the ring for rows with shift 0 and shift 1. Offsets are
// taken from the queried row's shift, not the neighbor row's.
var hexRings = [2][]offset{
	hexRing(0),
	hexRing(1),
}

func hexRing(s int) []offset {
	return []offset{
		{1, 0},
		{s, 1},
		{s - 1, 1},
		{-1, 0},
		{s - 1, -1},
		{s, -1},
	}
}

type hexLayout struct{}

func (hexLayout) ring(y int) []offset { return hexRings[rowShift(y)] }

// rowShift is the horizontal offset of row y in half-cell units.
func rowShift(y int) int { return ((y % 2) + 2) % 2 }

// HexCenter returns the planar centre of hex cell (x, y) for unit spacing
// between neighboring centres.
func HexCenter(x, y int) r2.Vec {
	return r2.Vec{
		X: float64(x) + 0.5*float64(rowShift(y)),
		Y: float64(y) * math.Sqrt(3) / 2,
	}
}

// HexDistance is the Euclidean distance between two hex cell centres.
func HexDistance(x0, y0, x1, y1 int) float64 {
	return r2.Norm(r2.Sub(HexCenter(x0, y0), HexCenter(x1, y1)))
}

// HexGrid is a hexagonal-prism voxel grid: rows alternate a half-cell shift
// and every cell has six same-layer neighbors.
type HexGrid struct {
	store
}

// NewHexGrid allocates an x*y*z hex grid of Empty cells wrapped in an
// OutOfBounds halo.
func NewHexGrid(x, y, z int) (*HexGrid, error) {
	s, err := newStore(x, y, z, hexLayout{})
	if err != nil {
		return nil, err
	}
	return &HexGrid{store: s}, nil
}

// Topology reports Hexagonal.
func (g *HexGrid) Topology() Topology { return Hexagonal }

// Duplicate returns an independent copy of the grid.
func (g *HexGrid) Duplicate() Grid { return &HexGrid{store: g.clone()} }

// NewGrid allocates a grid of the requested topology. An empty topology
// selects Orthogonal.
func NewGrid(t Topology, x, y, z int) (Grid, error) {
	switch t {
	case Orthogonal, "":
		g, err := NewOrthoGrid(x, y, z)
		if err != nil {
			return nil, err
		}
		return g, nil
	case Hexagonal:
		g, err := NewHexGrid(x, y, z)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("automaton: unknown topology %q", t)
	}
}
