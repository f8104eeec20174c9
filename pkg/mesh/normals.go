package mesh

import "github.com/Faultbox/vrmlmesh/pkg/math"

// NormalStats reports the degenerate cases met by UpdateNormals.
// Degenerate elements get a zero normal instead of an error.
type NormalStats struct {
	DegenerateFaces  int // faces with zero area
	IsolatedVertices int // vertices with a zero normal sum, usually referenced by no face
}

// Degenerate returns true if any zero normal was produced.
func (s NormalStats) Degenerate() bool {
	return s.DegenerateFaces > 0 || s.IsolatedVertices > 0
}

// FaceNormal returns the unit normal of face f, following its winding order.
// Zero-area faces yield the zero vector.
func FaceNormal(m *Mesh, f Face) math.Vec3 {
	v0 := m.Vertices[f[0]]
	e1 := m.Vertices[f[1]].Sub(v0)
	e2 := m.Vertices[f[2]].Sub(v0)
	return e1.Cross(e2).Normalize()
}

// UpdateNormals computes face normals and vertex normals and stores them on
// the mesh. A vertex normal is the normalized sum of the normals of its
// incident faces. Vertices and faces are left untouched.
func (m *Mesh) UpdateNormals() NormalStats {
	var stats NormalStats

	faceNormals := make([]math.Vec3, len(m.Faces))
	vertexNormals := make([]math.Vec3, len(m.Vertices))

	for i, f := range m.Faces {
		n := FaceNormal(m, f)
		if n.IsZero() {
			stats.DegenerateFaces++
		}
		faceNormals[i] = n
		for _, v := range f {
			vertexNormals[v] = vertexNormals[v].Add(n)
		}
	}

	for i, n := range vertexNormals {
		vertexNormals[i] = n.Normalize()
		if vertexNormals[i].IsZero() {
			stats.IsolatedVertices++
		}
	}

	m.FaceNormals = faceNormals
	m.VertexNormals = vertexNormals
	return stats
}
