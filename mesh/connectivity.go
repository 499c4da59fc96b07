package mesh

import (
	"sort"

	"github.com/james-bowman/sparse"
)

// ConnectedTo returns the set of vertices reachable from v along a single
// block edge, across every block v belongs to. Each membership contributes
// the cube-graph neighbors of v's local corner, mapped through that block's
// corner assignment; the union is deduplicated, excludes v itself and is
// sorted by global index so repeated calls on an unmutated mesh return equal
// slices. A vertex belonging to no block yields an empty result.
func (m *Mesh) ConnectedTo(v *Vertex) []*Vertex {
	seen := make(map[*Vertex]bool)
	connected := make([]*Vertex, 0)
	for _, mb := range m.membership.BlocksOf(v) {
		corners := mb.Block.OrderedVertices()
		for _, li := range cornerAdjacency[mb.LocalIndex] {
			nb := corners[li]
			if nb != v && !seen[nb] {
				seen[nb] = true
				connected = append(connected, nb)
			}
		}
	}
	sort.Slice(connected, func(i, j int) bool {
		return m.globalIndex[connected[i]] < m.globalIndex[connected[j]]
	})
	return connected
}

// IsInnerVertex reports whether v has exactly 6 edge-connected neighbors.
// That count holds for a vertex interior to a single structured block, which
// is the only case this heuristic is reliable for: on shared faces or edges
// between blocks the neighbor count legitimately differs from 6 without the
// vertex being geometrically outer.
func (m *Mesh) IsInnerVertex(v *Vertex) bool {
	return len(m.ConnectedTo(v)) == 6
}

// Edges returns the unique undirected edges of the whole mesh as packed
// global-index pairs, ascending. Edges on faces shared between blocks appear
// once.
func (m *Mesh) Edges() []EdgeKey {
	unique := make(map[EdgeKey]bool)
	for _, b := range m.blocks {
		corners := b.OrderedVertices()
		for _, e := range EdgeMap {
			gi0 := m.globalIndex[corners[e[0]]]
			gi1 := m.globalIndex[corners[e[1]]]
			unique[NewEdgeKey([2]int{gi0, gi1})] = true
		}
	}
	edges := make([]EdgeKey, 0, len(unique))
	for ek := range unique {
		edges = append(edges, ek)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	return edges
}

// AdjacencyMatrix builds the symmetric 0/1 vertex adjacency matrix over
// global indices from the mesh edges.
func (m *Mesh) AdjacencyMatrix() (A *sparse.DOK) {
	n := len(m.vertices)
	A = sparse.NewDOK(n, n)
	for _, ek := range m.Edges() {
		verts := ek.Vertices()
		A.Set(verts[0], verts[1], 1)
		A.Set(verts[1], verts[0], 1)
	}
	return
}
