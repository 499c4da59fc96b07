package mesh

import (
	"fmt"
	"math"
)

/*
EdgeKey packs the two global vertex indices of a block edge into a single
always-positive uint64 so that edges shared between blocks compare and hash
identically. The smaller index always occupies the low 32 bits, so an edge
between vertices 4 and 0 is stored the same way as one between 0 and 4.
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) (packed EdgeKey) {
	var (
		limit = math.MaxUint32
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] <= verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeKey(i1 + i2<<32)
	return
}

// Vertices unpacks the two global indices, smaller first.
func (ek EdgeKey) Vertices() (verts [2]int) {
	verts[0] = int(ek & (1<<32 - 1))
	verts[1] = int(ek >> 32)
	return
}
