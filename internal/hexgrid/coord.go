// Package hexgrid provides the hex coordinate algebra and the sparse tile
// grid. Tiles are addressed by axial coordinates (q, r) in a pointy-top
// layout; cube coordinates (x, y, z) with x+y+z = 0 are used as an
// intermediate where they make the math well-defined (rounding, distance).
package hexgrid

import "math"

// Axial is a two-component hex grid address.
type Axial struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Cube is the redundant three-component hex address with x+y+z = 0.
// It is only ever an intermediate; tiles are stored by Axial.
type Cube struct {
	X int
	Y int
	Z int
}

// FracCube is a cube coordinate before rounding, produced when converting
// a continuous world position back onto the grid.
type FracCube struct {
	X float64
	Y float64
	Z float64
}

// WorldPos is a continuous rendering-space position.
type WorldPos struct {
	X float64
	Y float64
	Z float64
}

// Directions lists the six axial neighbor offsets in pointy-top orientation.
var Directions = [6]Axial{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{Q: a.Q + b.Q, R: a.R + b.R} }

// Neighbors returns the six adjacent axial coordinates.
func (a Axial) Neighbors() [6]Axial {
	var result [6]Axial
	for i, dir := range Directions {
		result[i] = a.Add(dir)
	}
	return result
}

// ToCube converts axial to cube: x = q, z = r, y = -x-z.
func (a Axial) ToCube() Cube {
	x := a.Q
	z := a.R
	return Cube{X: x, Y: -x - z, Z: z}
}

// ToAxial converts cube to axial. The y component is dropped; it is fully
// determined by the zero-sum invariant.
func (c Cube) ToAxial() Axial { return Axial{Q: c.X, R: c.Z} }

// Distance returns the hex distance between two axial coordinates: the max
// of the absolute component differences in cube space.
func Distance(a, b Axial) int {
	ca, cb := a.ToCube(), b.ToCube()
	dx := absInt(ca.X - cb.X)
	dy := absInt(ca.Y - cb.Y)
	dz := absInt(ca.Z - cb.Z)
	max := dx
	if dy > max {
		max = dy
	}
	if dz > max {
		max = dz
	}
	return max
}

// AxialToWorld projects an axial coordinate to world space for pointy-top
// hexes of unit size: x = sqrt(3)*(q + r/2), y = 1.5*r, z = 0.
func AxialToWorld(q, r int) WorldPos {
	return WorldPos{
		X: math.Sqrt(3) * (float64(q) + float64(r)/2.0),
		Y: 1.5 * float64(r),
	}
}

// WorldToFracAxial is the exact inverse of AxialToWorld on the projection
// plane: q = sqrt(3)/3*x - y/3, r = 2/3*y.
func WorldToFracAxial(x, y float64) (q, r float64) {
	q = math.Sqrt(3)/3.0*x - y/3.0
	r = 2.0 / 3.0 * y
	return q, r
}

// FracAxialToCube applies the axial-to-cube formula in floating point.
func FracAxialToCube(q, r float64) FracCube {
	return FracCube{X: q, Y: -q - r, Z: r}
}

// RoundToHex rounds a fractional cube coordinate to the nearest hex cell.
// Each axis is rounded independently, then the axis with the largest
// rounding error is recomputed from the other two to restore x+y+z = 0.
// Ties resolve by fixed priority x, then y, then z, so a point equidistant
// between cells always resolves to the same cell.
func RoundToHex(c FracCube) Cube {
	rx := math.Round(c.X)
	ry := math.Round(c.Y)
	rz := math.Round(c.Z)

	dx := math.Abs(rx - c.X)
	dy := math.Abs(ry - c.Y)
	dz := math.Abs(rz - c.Z)

	switch {
	case dx >= dy && dx >= dz:
		rx = -ry - rz
	case dy >= dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}

	return Cube{X: int(rx), Y: int(ry), Z: int(rz)}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
