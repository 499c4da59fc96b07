package mesh

import "fmt"

// Membership records that a vertex occupies local corner LocalIndex of Block.
type Membership struct {
	Block      *Block
	LocalIndex int
}

// CornerRecord is the block-side view: Vertex occupies local corner
// LocalIndex of the block being queried.
type CornerRecord struct {
	Vertex     *Vertex
	LocalIndex int
}

// MembershipIndex is the bidirectional vertex <-> block association. It is
// written exactly once per (vertex, block) corner during block construction,
// in the order corners were supplied, and never afterwards. For every block
// it holds exactly 8 records whose local indices cover {0..7} once each.
// Both directions key on identity, never on the per-mesh ids.
type MembershipIndex struct {
	byVertex map[*Vertex][]Membership  // memberships, insertion order
	byBlock  map[*Block][]CornerRecord // corner records, local order
}

func newMembershipIndex() *MembershipIndex {
	return &MembershipIndex{
		byVertex: make(map[*Vertex][]Membership),
		byBlock:  make(map[*Block][]CornerRecord),
	}
}

// add records one corner occupancy. Only block construction may call it; a
// local index outside 0..7 or one already occupied for the block is a
// programming error, not a recoverable condition, and panics.
func (mi *MembershipIndex) add(v *Vertex, b *Block, localIndex int) {
	if localIndex < 0 || localIndex >= NumCorners {
		panic(fmt.Errorf("local index %d out of range 0..%d for %s",
			localIndex, NumCorners-1, b))
	}
	for _, cr := range mi.byBlock[b] {
		if cr.LocalIndex == localIndex {
			panic(fmt.Errorf("local index %d of %s already occupied by %s",
				localIndex, b, cr.Vertex))
		}
	}
	mi.byVertex[v] = append(mi.byVertex[v], Membership{Block: b, LocalIndex: localIndex})
	mi.byBlock[b] = append(mi.byBlock[b], CornerRecord{Vertex: v, LocalIndex: localIndex})
}

// BlocksOf returns every membership of v. The result is empty, never an
// error, for a vertex appearing in no block.
func (mi *MembershipIndex) BlocksOf(v *Vertex) []Membership {
	return mi.byVertex[v]
}

// VerticesOf returns the corner records of b in local order.
func (mi *MembershipIndex) VerticesOf(b *Block) []CornerRecord {
	return mi.byBlock[b]
}
