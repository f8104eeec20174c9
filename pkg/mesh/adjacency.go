package mesh

import (
	"cmp"
	"slices"
)

// IndexSet is a sorted set of element indices without duplicates.
type IndexSet []int

// IntersectCount returns the number of indices present in both sets.
func (s IndexSet) IntersectCount(other IndexSet) int {
	count := 0
	for a, b := 0, 0; a < len(s) && b < len(other); {
		switch {
		case s[a] < other[b]:
			a++
		case s[a] > other[b]:
			b++
		default:
			count++
			a++
			b++
		}
	}
	return count
}

func toSets(lists [][]int) []IndexSet {
	sets := make([]IndexSet, len(lists))
	for i, l := range lists {
		slices.Sort(l)
		sets[i] = IndexSet(slices.Compact(l))
	}
	return sets
}

// NeighborFaces returns, for every vertex, the set of faces that reference it.
func NeighborFaces(m *Mesh) []IndexSet {
	lists := make([][]int, len(m.Vertices))
	for i, f := range m.Faces {
		for _, v := range f {
			lists[v] = append(lists[v], i)
		}
	}
	return toSets(lists)
}

// NeighborVertices returns, for every vertex, the set of vertices it shares a
// face with. The relation is symmetric.
func NeighborVertices(m *Mesh) []IndexSet {
	lists := make([][]int, len(m.Vertices))
	for _, f := range m.Faces {
		a, b, c := int(f[0]), int(f[1]), int(f[2])
		lists[a] = append(lists[a], b, c)
		lists[b] = append(lists[b], a, c)
		lists[c] = append(lists[c], a, b)
	}
	return toSets(lists)
}

// Edge is an undirected edge, A is always the lower index.
type Edge struct {
	A, B uint32
}

// NewEdge returns the edge between a and b with its indices ordered.
func NewEdge(a, b uint32) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// Edges groups faces by the undirected edges they contain.
// Each face contributes its three edges.
func Edges(m *Mesh) map[Edge][]int {
	edges := make(map[Edge][]int, len(m.Faces)*3/2)
	for i, f := range m.Faces {
		for _, e := range [3]Edge{NewEdge(f[0], f[1]), NewEdge(f[0], f[2]), NewEdge(f[1], f[2])} {
			edges[e] = append(edges[e], i)
		}
	}
	return edges
}

// BorderEdges returns the edges that belong to exactly one face, sorted.
func BorderEdges(m *Mesh) []Edge {
	return filterEdges(Edges(m), func(faces []int) bool { return len(faces) == 1 })
}

// NonManifoldEdges returns the edges shared by more than two faces, sorted.
func NonManifoldEdges(m *Mesh) []Edge {
	return filterEdges(Edges(m), func(faces []int) bool { return len(faces) > 2 })
}

func filterEdges(edges map[Edge][]int, keep func([]int) bool) []Edge {
	var out []Edge
	for e, faces := range edges {
		if keep(faces) {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(x, y Edge) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		return cmp.Compare(x.B, y.B)
	})
	return out
}

// BorderVertices flags every vertex that touches an edge shared by fewer
// than two faces. Vertices referenced by no face are not border vertices.
func BorderVertices(m *Mesh) []bool {
	neighborVertices := NeighborVertices(m)
	neighborFaces := NeighborFaces(m)
	border := make([]bool, len(m.Vertices))

	for va, vn := range neighborVertices {
		for _, vb := range vn {
			// Faces common to va and vb are the faces holding edge (va, vb).
			if neighborFaces[va].IntersectCount(neighborFaces[vb]) < 2 {
				border[va] = true
				break
			}
		}
	}

	return border
}
