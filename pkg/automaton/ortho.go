package automaton

// mooreRing lists the orthogonal ring clockwise from east with +y pointing
// south, so even slots are axis-adjacent and odd slots diagonal.
var mooreRing = []offset{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

type mooreLayout struct{}

func (mooreLayout) ring(int) []offset { return mooreRing }

// OrthoGrid is a rectangular voxel grid with an 8-cell Moore ring per layer.
type OrthoGrid struct {
	store
}

// NewOrthoGrid allocates an x*y*z grid of Empty cells wrapped in an
// OutOfBounds halo.
func NewOrthoGrid(x, y, z int) (*OrthoGrid, error) {
	s, err := newStore(x, y, z, mooreLayout{})
	if err != nil {
		return nil, err
	}
	return &OrthoGrid{store: s}, nil
}

// Topology reports Orthogonal.
func (g *OrthoGrid) Topology() Topology { return Orthogonal }

// Duplicate returns an independent copy of the grid.
func (g *OrthoGrid) Duplicate() Grid { return &OrthoGrid{store: g.clone()} }
