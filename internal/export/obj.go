package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/terrarium/internal/terrain"
)

// WriteOBJ writes the mesh as a Wavefront OBJ with per-vertex normals.
// OBJ indices are 1-based; vertex i shares its index with normal i.
func WriteOBJ(w io.Writer, mesh *terrain.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# terrarium mesh: %d vertices, %d triangles\n", len(mesh.Vertices), mesh.TriangleCount())
	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, n := range mesh.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}

	return bw.Flush()
}
