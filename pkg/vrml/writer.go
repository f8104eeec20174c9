package vrml

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Faultbox/vrmlmesh/pkg/encoding"
	"github.com/Faultbox/vrmlmesh/pkg/math"
	"github.com/Faultbox/vrmlmesh/pkg/mesh"
)

// WriteOptions controls the writer.
type WriteOptions struct {
	// Normals writes a per-vertex normal block when the mesh has vertex normals.
	Normals bool
}

// WriteFile writes m to path as a VRML 2.0 file. Empty meshes are
// rejected before the file is created.
func WriteFile(path string, m *mesh.Mesh, opts WriteOptions) (err error) {
	if len(m.Vertices) == 0 || len(m.Faces) == 0 {
		return mesh.ErrEmptyMesh
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating scene file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing scene file: %w", cerr)
		}
	}()

	return Write(file, m, opts)
}

// Write encodes m as VRML 2.0: an IndexedFaceSet with its point list, one
// terminated index triple per face, and optional color, normal and texture
// blocks. Element order follows the mesh arrays.
func Write(w io.Writer, m *mesh.Mesh, opts WriteOptions) error {
	if len(m.Vertices) == 0 || len(m.Faces) == 0 {
		return mesh.ErrEmptyMesh
	}

	bw := bufio.NewWriter(w)
	textured := m.HasTextures() && m.TextureName != ""

	fmt.Fprint(bw, "#VRML V2.0 utf8\n\n")
	fmt.Fprintf(bw, "# Vertices:  %d\n", len(m.Vertices))
	fmt.Fprintf(bw, "# Faces:     %d\n\n", len(m.Faces))

	fmt.Fprint(bw, "Transform {\n")
	fmt.Fprint(bw, "  scale 1 1 1\n")
	fmt.Fprint(bw, "  translation 0 0 0\n")
	fmt.Fprint(bw, "  children [\n")
	fmt.Fprint(bw, "    Shape {\n")

	if textured {
		fmt.Fprint(bw, "      appearance Appearance {\n")
		fmt.Fprint(bw, "        texture ImageTexture {\n")
		fmt.Fprintf(bw, "          url %s\n", encoding.Quote(m.TextureName))
		fmt.Fprint(bw, "        }\n")
		fmt.Fprint(bw, "      }\n")
	}

	fmt.Fprint(bw, "      geometry IndexedFaceSet {\n")
	fmt.Fprint(bw, "        coord Coordinate {\n")
	fmt.Fprint(bw, "          point [\n")
	writeVec3s(bw, "                ", m.Vertices)
	fmt.Fprint(bw, "          ]\n")
	fmt.Fprint(bw, "        }\n")

	fmt.Fprint(bw, "        coordIndex [\n")
	for i, f := range m.Faces {
		fmt.Fprintf(bw, "            %d, %d, %d, -1%s\n", f[0], f[1], f[2], separator(i, len(m.Faces)))
	}
	fmt.Fprint(bw, "        ]\n")

	if m.HasColors() {
		fmt.Fprint(bw, "        colorPerVertex TRUE\n")
		fmt.Fprint(bw, "        color Color {\n")
		fmt.Fprint(bw, "          color [\n")
		writeVec3s(bw, "            ", m.Colors)
		fmt.Fprint(bw, "          ]\n")
		fmt.Fprint(bw, "        }\n")
	}

	if opts.Normals && len(m.VertexNormals) > 0 && len(m.VertexNormals) == len(m.Vertices) {
		fmt.Fprint(bw, "        normalPerVertex TRUE\n")
		fmt.Fprint(bw, "        normal Normal {\n")
		fmt.Fprint(bw, "          vector [\n")
		writeVec3s(bw, "            ", m.VertexNormals)
		fmt.Fprint(bw, "          ]\n")
		fmt.Fprint(bw, "        }\n")
	}

	if textured {
		fmt.Fprint(bw, "        texCoord TextureCoordinate {\n")
		fmt.Fprint(bw, "          point [\n")
		for i, t := range m.Textures {
			fmt.Fprintf(bw, "            %s %s%s\n", formatFloat(t.X), formatFloat(t.Y), separator(i, len(m.Textures)))
		}
		fmt.Fprint(bw, "          ]\n")
		fmt.Fprint(bw, "        }\n")
	}

	fmt.Fprint(bw, "      }\n")
	fmt.Fprint(bw, "    }\n")
	fmt.Fprint(bw, "  ]\n")
	fmt.Fprint(bw, "}\n")

	// bufio.Writer keeps the first write error and returns it from Flush.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing scene: %w", err)
	}
	return nil
}

// writeVec3s writes one vector per line, all but the last followed by a comma.
func writeVec3s(w io.Writer, indent string, vs []math.Vec3) {
	for i, v := range vs {
		fmt.Fprintf(w, "%s%s %s %s%s\n", indent, formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z), separator(i, len(vs)))
	}
}

func separator(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}

// formatFloat returns the shortest representation that parses back to v.
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
