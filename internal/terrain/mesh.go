package terrain

import (
	"fmt"

	"github.com/Faultbox/terrarium/pkg/math"
)

// BuildMesh triangulates a height grid.
//
// The grid's Width x Depth samples become Width x Depth vertices at
// (x, height, z) with index x + z*Width. Each of the (Width-1) x (Depth-1)
// cells emits two triangles, (topLeft, bottomLeft, topRight) and
// (topRight, bottomLeft, bottomRight), which face +Y on flat ground.
func BuildMesh(grid *HeightGrid) (*Mesh, error) {
	if err := grid.validate(); err != nil {
		return nil, err
	}
	width, depth := grid.Width, grid.Depth
	if width <= 1 || depth <= 1 {
		return nil, fmt.Errorf("%w: mesh needs at least 2x2 samples (got %dx%d)", ErrInvalidArgument, width, depth)
	}

	vertices := make([]math.Vec3, width*depth)
	bounds := Bounds{
		Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}
	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			v := math.Vec3{X: float32(x), Y: grid.At(x, z), Z: float32(z)}
			vertices[x+z*width] = v
			bounds.Min = bounds.Min.Min(v)
			bounds.Max = bounds.Max.Max(v)
		}
	}

	indices := make([]uint32, 0, (width-1)*(depth-1)*6)
	for z := 0; z < depth-1; z++ {
		for x := 0; x < width-1; x++ {
			topLeft := uint32(x + z*width)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(width)
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return &Mesh{
		Vertices: vertices,
		Normals:  ComputeNormals(vertices, indices),
		Indices:  indices,
		Bounds:   bounds,
	}, nil
}

// ComputeNormals returns per-vertex normals for an indexed triangle list.
// Each triangle's unit face normal is summed into its three vertices and the
// sums are normalised. Degenerate triangles contribute nothing; vertices left
// with no usable sum get math.Up.
func ComputeNormals(vertices []math.Vec3, indices []uint32) []math.Vec3 {
	sums := make([]math.Vec3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		v0 := vertices[a]
		face := vertices[b].Sub(v0).Cross(vertices[c].Sub(v0)).Normalize()

		sums[a] = sums[a].Add(face)
		sums[b] = sums[b].Add(face)
		sums[c] = sums[c].Add(face)
	}

	normals := make([]math.Vec3, len(vertices))
	for i, n := range sums {
		normals[i] = n.NormalizeOr(math.Up)
	}
	return normals
}
