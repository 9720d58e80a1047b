package automaton

// BuildBox stamps Result into the half-open box starting at (X0, Y0, Z0)
// with extents (DX, DY, DZ). It ignores neighbors entirely.
type BuildBox struct {
	Result     State
	X0, Y0, Z0 int
	DX, DY, DZ int
}

// NewBuildBox builds a BuildBox rule.
func NewBuildBox(result State, x0, y0, z0, dx, dy, dz int) *BuildBox {
	return mustRule(&BuildBox{Result: result, X0: x0, Y0: y0, Z0: z0, DX: dx, DY: dy, DZ: dz})
}

// Validate reports malformed parameters.
func (r *BuildBox) Validate() error {
	if r.DX < 0 || r.DY < 0 || r.DZ < 0 {
		return malformed("box", "negative extent %dx%dx%d", r.DX, r.DY, r.DZ)
	}
	return requireResult("box", r.Result)
}

// Status implements Rule.
func (r *BuildBox) Status(_ Neighborhood, x, y, z int) State {
	if x >= r.X0 && x < r.X0+r.DX &&
		y >= r.Y0 && y < r.Y0+r.DY &&
		z >= r.Z0 && z < r.Z0+r.DZ {
		return r.Result
	}
	return NoChange
}

// BuildCylinder stamps Result into the single column at (CX, CY) below
// Height.
type BuildCylinder struct {
	Result State
	CX, CY int
	Height int
}

// NewBuildCylinder builds a BuildCylinder rule.
func NewBuildCylinder(result State, cx, cy, height int) *BuildCylinder {
	return mustRule(&BuildCylinder{Result: result, CX: cx, CY: cy, Height: height})
}

// Validate reports malformed parameters.
func (r *BuildCylinder) Validate() error {
	if r.Height < 0 {
		return malformed("cylinder", "negative height %d", r.Height)
	}
	return requireResult("cylinder", r.Result)
}

// Status implements Rule.
func (r *BuildCylinder) Status(_ Neighborhood, x, y, z int) State {
	if x == r.CX && y == r.CY && z < r.Height {
		return r.Result
	}
	return NoChange
}

// BuildCylinderRadius stamps Result into every cell below Height whose
// (x, y) lies within Radius of (CX, CY), measured on the integer lattice.
type BuildCylinderRadius struct {
	Result State
	CX, CY int
	Height int
	Radius int
}

// NewBuildCylinderRadius builds a BuildCylinderRadius rule.
func NewBuildCylinderRadius(result State, cx, cy, height, radius int) *BuildCylinderRadius {
	return mustRule(&BuildCylinderRadius{Result: result, CX: cx, CY: cy, Height: height, Radius: radius})
}

// Validate reports malformed parameters.
func (r *BuildCylinderRadius) Validate() error {
	return validateCylinder("cylinder_radius", r.Result, r.Height, r.Radius)
}

func validateCylinder(name string, result State, height, radius int) error {
	if height < 0 {
		return malformed(name, "negative height %d", height)
	}
	if radius < 0 {
		return malformed(name, "negative radius %d", radius)
	}
	return requireResult(name, result)
}

// Status implements Rule.
func (r *BuildCylinderRadius) Status(_ Neighborhood, x, y, z int) State {
	dx, dy := x-r.CX, y-r.CY
	if dx*dx+dy*dy <= r.Radius*r.Radius && z < r.Height {
		return r.Result
	}
	return NoChange
}

// BuildCylinderRadiusHex is BuildCylinderRadius for hex grids: the distance
// is measured between hex-cell centres rather than raw coordinates.
type BuildCylinderRadiusHex struct {
	Result State
	CX, CY int
	Height int
	Radius int
}

// NewBuildCylinderRadiusHex builds a BuildCylinderRadiusHex rule.
func NewBuildCylinderRadiusHex(result State, cx, cy, height, radius int) *BuildCylinderRadiusHex {
	return mustRule(&BuildCylinderRadiusHex{Result: result, CX: cx, CY: cy, Height: height, Radius: radius})
}

// Validate reports malformed parameters.
func (r *BuildCylinderRadiusHex) Validate() error {
	return validateCylinder("cylinder_radius_hex", r.Result, r.Height, r.Radius)
}

// hexEpsilon absorbs rounding in the √3 row spacing so cells lying exactly
// on the radius are included.
const hexEpsilon = 1e-9

// Status implements Rule.
func (r *BuildCylinderRadiusHex) Status(_ Neighborhood, x, y, z int) State {
	if z < r.Height && HexDistance(x, y, r.CX, r.CY) <= float64(r.Radius)+hexEpsilon {
		return r.Result
	}
	return NoChange
}
