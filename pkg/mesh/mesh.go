// Package mesh provides an indexed triangular mesh and the geometric
// queries derived from it: normals, adjacency, borders and bounding volumes.
package mesh

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/vrmlmesh/pkg/math"
)

// Mesh consistency errors.
var (
	ErrEmptyMesh       = errors.New("mesh has no vertices or no faces")
	ErrIndexOutOfRange = errors.New("face index out of range")
	ErrColorCount      = errors.New("color count does not match vertex count")
	ErrTextureCount    = errors.New("texture coordinate count does not match vertex count")
	ErrNormalCount     = errors.New("normal count does not match element count")
	ErrDegenerateFace  = errors.New("face references the same vertex twice")
)

// Face is a triangle, stored as three indices into Mesh.Vertices.
// Winding order is kept exactly as given.
type Face [3]uint32

// Mesh is an indexed triangular mesh.
//
// Colors and Textures are either empty or parallel to Vertices. FaceNormals
// and VertexNormals are derived data, filled by UpdateNormals.
type Mesh struct {
	Name          string
	Vertices      []math.Vec3
	Faces         []Face
	Colors        []math.Vec3
	TextureName   string
	Textures      []math.Vec2
	FaceNormals   []math.Vec3
	VertexNormals []math.Vec3
}

// HasColors returns true if per-vertex colors are present.
func (m *Mesh) HasColors() bool {
	return len(m.Colors) > 0 && len(m.Colors) == len(m.Vertices)
}

// HasTextures returns true if per-vertex texture coordinates are present.
func (m *Mesh) HasTextures() bool {
	return len(m.Textures) > 0 && len(m.Textures) == len(m.Vertices)
}

// String returns a short multi-line summary of the mesh.
func (m *Mesh) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "  Name :               %s\n", m.Name)
	fmt.Fprintf(&b, "  Vertices :           %d\n", len(m.Vertices))
	fmt.Fprintf(&b, "  Faces :              %d", len(m.Faces))
	if len(m.Colors) > 0 {
		fmt.Fprintf(&b, "\n  Colors :             %d", len(m.Colors))
	}
	if len(m.FaceNormals) > 0 {
		fmt.Fprintf(&b, "\n  Faces normals :      %d", len(m.FaceNormals))
	}
	if len(m.VertexNormals) > 0 {
		fmt.Fprintf(&b, "\n  Vertex normals :     %d", len(m.VertexNormals))
	}
	if len(m.Textures) > 0 {
		fmt.Fprintf(&b, "\n  Textures :           %d", len(m.Textures))
	}
	if m.TextureName != "" {
		fmt.Fprintf(&b, "\n  Texture filename :   %s", m.TextureName)
	}
	return b.String()
}

// Check validates the mesh invariants and returns every violation found,
// joined with errors.Join. It returns nil for a consistent mesh.
func Check(m *Mesh) error {
	var errs []error

	if len(m.Vertices) == 0 || len(m.Faces) == 0 {
		errs = append(errs, ErrEmptyMesh)
	}

	n := uint32(len(m.Vertices))
	for i, f := range m.Faces {
		if f[0] >= n || f[1] >= n || f[2] >= n {
			errs = append(errs, fmt.Errorf("%w: face %d %v (vertices: %d)", ErrIndexOutOfRange, i, f, n))
			continue
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			errs = append(errs, fmt.Errorf("%w: face %d %v", ErrDegenerateFace, i, f))
		}
	}

	if len(m.Colors) != 0 && len(m.Colors) != len(m.Vertices) {
		errs = append(errs, fmt.Errorf("%w: %d colors, %d vertices", ErrColorCount, len(m.Colors), len(m.Vertices)))
	}
	if len(m.Textures) != 0 && len(m.Textures) != len(m.Vertices) {
		errs = append(errs, fmt.Errorf("%w: %d texture coordinates, %d vertices", ErrTextureCount, len(m.Textures), len(m.Vertices)))
	}
	if len(m.FaceNormals) != 0 && len(m.FaceNormals) != len(m.Faces) {
		errs = append(errs, fmt.Errorf("%w: %d face normals, %d faces", ErrNormalCount, len(m.FaceNormals), len(m.Faces)))
	}
	if len(m.VertexNormals) != 0 && len(m.VertexNormals) != len(m.Vertices) {
		errs = append(errs, fmt.Errorf("%w: %d vertex normals, %d vertices", ErrNormalCount, len(m.VertexNormals), len(m.Vertices)))
	}

	return errors.Join(errs...)
}
