package mesh

import "fmt"

// Vertex is an immutable 3D point with a stable identity. The id is assigned
// exactly once by Mesh.NewVertex and cannot be changed afterwards; X, Y, Z
// are set at construction and must be treated as read-only. A vertex carries
// no link back to the blocks referencing it - that relation lives in the
// membership index.
type Vertex struct {
	id      uint64
	X, Y, Z float64
}

func (v *Vertex) ID() uint64 {
	return v.id
}

// Coords returns the coordinates as a 3-array, x y z order.
func (v *Vertex) Coords() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func (v *Vertex) String() string {
	return fmt.Sprintf("Vertex %d (%g %g %g)", v.id, v.X, v.Y, v.Z)
}
