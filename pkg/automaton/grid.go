package automaton

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Size describes the logical extents of a grid, excluding the halo.
type Size struct {
	X, Y, Z int
}

// Volume returns the number of logical cells.
func (s Size) Volume() int { return s.X * s.Y * s.Z }

// Topology names the neighbor layout of a grid.
type Topology string

const (
	// Orthogonal grids use the 8-cell Moore ring on every layer.
	Orthogonal Topology = "ortho"
	// Hexagonal grids offset odd rows by half a cell and use a 6-cell ring.
	Hexagonal Topology = "hex"
)

// Grid is the contract shared by every topology.
type Grid interface {
	Topology() Topology
	Size() Size
	Value(x, y, z int) (State, error)
	SetValue(x, y, z int, v State) error
	Neighbors(x, y, z int) (Neighborhood, error)
	// Apply advances the grid by one generation of rule.
	Apply(rule Rule)
	// Step is Apply spread over up to workers goroutines. It returns the
	// number of cells whose value changed.
	Step(rule Rule, workers int) int
	Duplicate() Grid
	Count(v State) int
	Each(fn func(x, y, z int, v State))
}

// offset is a same-layer displacement of a ring neighbor.
type offset struct{ dx, dy int }

// layout yields the ring offsets for a cell in row y.
type layout interface {
	ring(y int) []offset
}

// store is the padded voxel buffer both topologies are built on. Logical
// coordinate (x, y, z) lives at padded coordinate (x+1, y+1, z+1).
type store struct {
	size       Size
	px, py, pz int
	cells      []State
	layout     layout
}

func newStore(x, y, z int, l layout) (store, error) {
	if x < 0 || y < 0 || z < 0 {
		return store{}, fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimension, x, y, z)
	}
	s := store{
		size:   Size{X: x, Y: y, Z: z},
		px:     x + 2,
		py:     y + 2,
		pz:     z + 2,
		layout: l,
	}
	s.cells = make([]State, s.px*s.py*s.pz)
	for pz := 0; pz < s.pz; pz++ {
		for py := 0; py < s.py; py++ {
			for px := 0; px < s.px; px++ {
				if px == 0 || py == 0 || pz == 0 || px == s.px-1 || py == s.py-1 || pz == s.pz-1 {
					s.cells[s.padded(px, py, pz)] = OutOfBounds
				}
			}
		}
	}
	return s, nil
}

// padded returns the slice index of padded coordinates.
func (s *store) padded(px, py, pz int) int { return (pz*s.py+py)*s.px + px }

// index returns the slice index of logical coordinates.
func (s *store) index(x, y, z int) int { return s.padded(x+1, y+1, z+1) }

func (s *store) inBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < s.size.X && y < s.size.Y && z < s.size.Z
}

func (s *store) checkBounds(x, y, z int) error {
	if !s.inBounds(x, y, z) {
		return fmt.Errorf("%w: (%d,%d,%d) not in %dx%dx%d",
			ErrCoordinateOutOfRange, x, y, z, s.size.X, s.size.Y, s.size.Z)
	}
	return nil
}

// Size returns the logical extents.
func (s *store) Size() Size { return s.size }

// Value returns the state stored at logical coordinates.
func (s *store) Value(x, y, z int) (State, error) {
	if err := s.checkBounds(x, y, z); err != nil {
		return Empty, err
	}
	return s.cells[s.index(x, y, z)], nil
}

// SetValue stores v at logical coordinates. Writing NoChange does nothing.
func (s *store) SetValue(x, y, z int, v State) error {
	if err := s.checkBounds(x, y, z); err != nil {
		return err
	}
	if v.Unchanged() {
		return nil
	}
	s.cells[s.index(x, y, z)] = v
	return nil
}

// Neighbors returns the neighborhood of a logical coordinate. Cells on the
// logical edge see OutOfBounds through the halo.
func (s *store) Neighbors(x, y, z int) (Neighborhood, error) {
	if err := s.checkBounds(x, y, z); err != nil {
		return Neighborhood{}, err
	}
	return s.neighbors(x, y, z), nil
}

func (s *store) neighbors(x, y, z int) Neighborhood {
	ring := s.layout.ring(y)
	px, py := x+1, y+1
	n := Neighborhood{
		Self:  s.cells[s.padded(px, py, z+1)],
		Lower: s.cells[s.padded(px, py, z)],
		Upper: s.cells[s.padded(px, py, z+2)],
		Same:  make([]State, len(ring)),
		Below: make([]State, len(ring)),
		Above: make([]State, len(ring)),
	}
	for i, o := range ring {
		n.Below[i] = s.cells[s.padded(px+o.dx, py+o.dy, z)]
		n.Same[i] = s.cells[s.padded(px+o.dx, py+o.dy, z+1)]
		n.Above[i] = s.cells[s.padded(px+o.dx, py+o.dy, z+2)]
	}
	return n
}

func (s *store) clone() store {
	c := *s
	c.cells = append([]State(nil), s.cells...)
	return c
}

// Apply advances the grid by one generation. Every cell is evaluated against
// a frozen copy of the grid, so the result does not depend on visiting order.
func (s *store) Apply(rule Rule) {
	s.Step(rule, 1)
}

// Step is Apply with the per-cell loop split into z-slabs across up to
// workers goroutines. The live grid is only written, the snapshot only read.
func (s *store) Step(rule Rule, workers int) int {
	snapshot := s.clone()
	if workers <= 1 || s.size.Z <= 1 {
		return s.stepSlab(&snapshot, rule, 0, s.size.Z)
	}
	if workers > s.size.Z {
		workers = s.size.Z
	}

	changed := make([]int, workers)
	per := (s.size.Z + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		lo, hi := w*per, min((w+1)*per, s.size.Z)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			changed[w] = s.stepSlab(&snapshot, rule, lo, hi)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, c := range changed {
		total += c
	}
	return total
}

func (s *store) stepSlab(snapshot *store, rule Rule, z0, z1 int) int {
	changed := 0
	for z := z0; z < z1; z++ {
		for y := 0; y < s.size.Y; y++ {
			for x := 0; x < s.size.X; x++ {
				v := rule.Status(snapshot.neighbors(x, y, z), x, y, z)
				if v.Unchanged() {
					continue
				}
				idx := s.index(x, y, z)
				if s.cells[idx] != v {
					s.cells[idx] = v
					changed++
				}
			}
		}
	}
	return changed
}

// Count returns how many logical cells hold exactly v.
func (s *store) Count(v State) int {
	n := 0
	s.Each(func(_, _, _ int, c State) {
		if c == v {
			n++
		}
	})
	return n
}

// Each visits every logical cell, x varying fastest.
func (s *store) Each(fn func(x, y, z int, v State)) {
	for z := 0; z < s.size.Z; z++ {
		for y := 0; y < s.size.Y; y++ {
			for x := 0; x < s.size.X; x++ {
				fn(x, y, z, s.cells[s.index(x, y, z)])
			}
		}
	}
}
