package core

import (
	"fmt"

	"voxel-ca/pkg/automaton"
)

// Layer is one z-slice of a voxel grid stored row-major, the form 2-D
// renderers and floor plans consume.
type Layer struct {
	W, H int
	Z    int
	data []automaton.State
}

// LayerOf copies layer z of g.
func LayerOf(g automaton.Grid, z int) (*Layer, error) {
	size := g.Size()
	if z < 0 || z >= size.Z {
		return nil, fmt.Errorf("%w: layer %d of %d", automaton.ErrCoordinateOutOfRange, z, size.Z)
	}
	l := &Layer{W: size.X, H: size.Y, Z: z, data: make([]automaton.State, size.X*size.Y)}
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			v, err := g.Value(x, y, z)
			if err != nil {
				return nil, err
			}
			l.data[l.Index(x, y)] = v
		}
	}
	return l, nil
}

// Cells exposes the backing slice so callers can read values directly.
func (l *Layer) Cells() []automaton.State { return l.data }

// Index returns the linear slice index for coordinates (x, y).
func (l *Layer) Index(x, y int) int { return y*l.W + x }

// At returns the value at (x, y).
func (l *Layer) At(x, y int) automaton.State { return l.data[l.Index(x, y)] }

// Filled counts the non-empty cells of the layer.
func (l *Layer) Filled() int {
	n := 0
	for _, v := range l.data {
		if v != automaton.Empty {
			n++
		}
	}
	return n
}
