package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/vrmlmesh/pkg/math"
)

// BoundingBox returns the axis-aligned bounding box of the vertices.
// An empty mesh returns two zero vectors.
func BoundingBox(m *Mesh) (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}
	}

	inf := math32.Inf(1)
	min = math.Vec3{X: inf, Y: inf, Z: inf}
	max = min.Scale(-1)

	for _, v := range m.Vertices {
		min = min.Min(v)
		max = max.Max(v)
	}

	return min, max
}

// BoundingSphere returns a sphere centered on the bounding box midpoint,
// with the distance to the farthest vertex as radius. It encloses every
// vertex but is not the minimal enclosing sphere.
func BoundingSphere(m *Mesh) (center math.Vec3, radius float32) {
	pmin, pmax := BoundingBox(m)
	center = pmin.Add(pmax).Scale(0.5)

	for _, v := range m.Vertices {
		radius = math32.Max(radius, center.Distance(v))
	}

	return center, radius
}
