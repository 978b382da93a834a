// Package mesh - edge census over face triples.
//
// All three census methods treat edges as unordered pairs in canonical
// (A < B) form and ignore degenerate face sides where both corners coincide.
// Ordering of returned slices is deterministic: ascending by (A, B).
package mesh

import "sort"

// EdgeUse counts, for every unordered vertex pair that appears as a side of
// some face, the number of faces using it. A manifold interior edge maps to
// 2, a boundary edge to 1, non-manifold fins to 3+.
//
// Degenerate sides (both corners equal) are skipped — they describe no edge.
//
// Complexity: O(M) time, O(E) memory.
func (m *Mesh) EdgeUse() map[Edge]int {
	use := make(map[Edge]int, len(m.Faces)*3/2)

	var (
		f    [3]int // current face
		c    int    // corner position
		a, b int    // side endpoints
	)
	for _, f = range m.Faces {
		for c = 0; c < 3; c++ {
			a, b = f[c], f[(c+1)%3]
			if a == b {
				continue // degenerate side, not an edge
			}
			use[NewEdge(a, b)]++
		}
	}

	return use
}

// Edges returns every distinct mesh edge exactly once, sorted ascending by
// (A, B) so that repeated runs over the same mesh enumerate candidates in
// one stable order.
//
// Complexity: O(M + E log E) time, O(E) memory.
func (m *Mesh) Edges() []Edge {
	use := m.EdgeUse()
	edges := make([]Edge, 0, len(use))
	for e := range use {
		edges = append(edges, e)
	}
	sortEdges(edges)

	return edges
}

// BoundaryEdges returns the edges used by exactly one face — the open
// silhouette of the mesh — sorted ascending by (A, B). A closed mesh
// returns an empty slice.
//
// Complexity: O(M + E log E) time, O(E) memory.
func (m *Mesh) BoundaryEdges() []Edge {
	use := m.EdgeUse()
	edges := make([]Edge, 0)
	for e, n := range use {
		if n == 1 {
			edges = append(edges, e)
		}
	}
	sortEdges(edges)

	return edges
}

// sortEdges orders edges ascending by (A, B). Complexity: O(E log E).
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}

		return edges[i].B < edges[j].B
	})
}
