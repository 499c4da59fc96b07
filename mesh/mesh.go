package mesh

import "fmt"

/*
Mesh is the context object for one mesh-build session. It owns the vertex
registry (creation-ordered, defines the global index of every vertex), the
block list and the membership index relating the two.

The intended lifecycle is build-then-serialize: all vertices and blocks are
constructed first, then the mesh is queried and serialized. Construction
methods mutate the registry and membership index in place and are not safe
for concurrent use; read queries are safe once construction is finished.
*/
type Mesh struct {
	vertices    []*Vertex
	globalIndex map[*Vertex]int // position in vertices, keyed on identity
	blocks      []*Block
	membership  *MembershipIndex

	nextVertexID uint64
	nextBlockID  uint64
}

func NewMesh() *Mesh {
	return &Mesh{
		globalIndex: make(map[*Vertex]int),
		membership:  newMembershipIndex(),
	}
}

// NewVertex creates a vertex at (x, y, z) and appends it to the registry.
// The first vertex created has global index 0, the second 1, and so on;
// registry order never changes afterwards since vertices cannot be removed.
func (m *Mesh) NewVertex(x, y, z float64) (v *Vertex) {
	v = &Vertex{
		id: m.nextVertexID,
		X:  x,
		Y:  y,
		Z:  z,
	}
	m.nextVertexID++
	m.globalIndex[v] = len(m.vertices)
	m.vertices = append(m.vertices, v)
	return
}

// GlobalIndexOf returns the position of v in the registry's creation-order
// enumeration, the index the serializer reports for it. The lookup is keyed
// on vertex identity, not on id: ids restart at 0 in every mesh, so a
// vertex from another mesh is a miss even when a local vertex shares its id.
func (m *Mesh) GlobalIndexOf(v *Vertex) (int, error) {
	gi, ok := m.globalIndex[v]
	if !ok {
		return 0, &VertexNotFoundError{Vertex: v}
	}
	return gi, nil
}

// Vertices returns the registry in creation order. The returned slice is
// shared with the mesh and must not be modified.
func (m *Mesh) Vertices() []*Vertex {
	return m.vertices
}

// Blocks returns all blocks in creation order. The returned slice is shared
// with the mesh and must not be modified.
func (m *Mesh) Blocks() []*Block {
	return m.blocks
}

func (m *Mesh) NumVertices() int { return len(m.vertices) }

func (m *Mesh) NumBlocks() int { return len(m.blocks) }

// Membership exposes the vertex <-> block membership index.
func (m *Mesh) Membership() *MembershipIndex {
	return m.membership
}

// BlocksOf returns every (block, local index) membership of v, unordered,
// possibly empty for a vertex that appears in no block.
func (m *Mesh) BlocksOf(v *Vertex) []Membership {
	return m.membership.BlocksOf(v)
}

func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh with %d vertices, %d blocks", len(m.vertices), len(m.blocks))
}
