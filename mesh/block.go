package mesh

import "fmt"

// NumCorners is the corner count of a hexahedral block.
const NumCorners = 8

// DefaultCells is the subdivision a block starts with.
var DefaultCells = [3]int{10, 10, 10}

// Block is a hexahedral topology unit of 8 ordered corner vertices. The
// corners are shared references into the mesh registry; a block does not own
// its vertices and a vertex outlives any block referencing it. Name and
// Cells are the only mutable fields - identity and corners are fixed at
// construction.
type Block struct {
	id      uint64
	Name    string
	Cells   [3]int
	corners [NumCorners]*Vertex
}

// NewBlock creates a block from exactly 8 distinct, already-registered
// vertices given in canonical local order 0..7. A zero-length name defaults
// to Block-<id>. On failure no membership records are written - construction
// is atomic. Cells starts at DefaultCells and may be changed afterwards.
func (m *Mesh) NewBlock(name string, corners []*Vertex) (*Block, error) {
	if len(corners) != NumCorners {
		return nil, &InvalidBlockDefinitionError{Count: len(corners)}
	}
	seen := make(map[*Vertex]bool, NumCorners)
	for _, v := range corners {
		if _, ok := m.globalIndex[v]; !ok {
			return nil, &VertexNotFoundError{Vertex: v}
		}
		if seen[v] {
			return nil, &InvalidBlockDefinitionError{Count: len(corners), Duplicate: v}
		}
		seen[v] = true
	}

	b := &Block{
		id:    m.nextBlockID,
		Name:  name,
		Cells: DefaultCells,
	}
	m.nextBlockID++
	if b.Name == "" {
		b.Name = fmt.Sprintf("Block-%d", b.id)
	}
	copy(b.corners[:], corners)
	for i, v := range corners {
		m.membership.add(v, b, i)
	}
	m.blocks = append(m.blocks, b)
	return b, nil
}

func (b *Block) ID() uint64 {
	return b.id
}

// OrderedVertices returns the corners in canonical local order 0..7, the
// exact order given at construction.
func (b *Block) OrderedVertices() [NumCorners]*Vertex {
	return b.corners
}

// Face resolves a FaceMap entry against the block's corner assignment and
// returns the 4 vertices of the named face in outward-normal order.
func (b *Block) Face(name string) ([4]*Vertex, error) {
	var face [4]*Vertex
	locals, ok := FaceMap[name]
	if !ok {
		return face, &UnknownFaceError{Name: name}
	}
	for i, li := range locals {
		face[i] = b.corners[li]
	}
	return face, nil
}

func (b *Block) String() string {
	return fmt.Sprintf("Block %d %q (%d %d %d)", b.id, b.Name,
		b.Cells[0], b.Cells[1], b.Cells[2])
}
