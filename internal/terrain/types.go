// Package terrain builds height grids from noise and triangulates them into
// render-ready meshes with smooth per-vertex normals.
package terrain

import (
	"errors"

	"github.com/Faultbox/terrarium/pkg/math"
)

// ErrInvalidArgument is returned when grid or mesh parameters violate the
// caller contract (non-positive sizes, scale, or a malformed grid).
var ErrInvalidArgument = errors.New("terrain: invalid argument")

// HeightGrid holds height samples for a Width x Depth vertex lattice.
// Heights are stored row by row: index = z*Width + x.
type HeightGrid struct {
	Width   int
	Depth   int
	Heights []float32
}

// Mesh holds the triangulated terrain ready for GPU upload.
// Vertices and Normals are parallel; Indices hold three entries per triangle.
type Mesh struct {
	Vertices []math.Vec3
	Normals  []math.Vec3
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
