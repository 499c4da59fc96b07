package mesh

import "fmt"

// InvalidBlockDefinitionError is returned when block construction receives
// anything other than exactly 8 distinct corner vertices. Count is the
// number of corners actually received; Duplicate is non-nil when the count
// was right but a vertex appeared more than once.
type InvalidBlockDefinitionError struct {
	Count     int
	Duplicate *Vertex
}

func (e *InvalidBlockDefinitionError) Error() string {
	if e.Duplicate != nil {
		return fmt.Sprintf("invalid block definition: %d corner vertices supplied but %s repeats",
			e.Count, e.Duplicate)
	}
	return fmt.Sprintf("invalid block definition: need exactly 8 distinct corner vertices, got %d",
		e.Count)
}

// VertexNotFoundError is returned by registry lookups for a vertex that was
// never registered with the mesh being queried.
type VertexNotFoundError struct {
	Vertex *Vertex
}

func (e *VertexNotFoundError) Error() string {
	return fmt.Sprintf("%s is not registered with this mesh", e.Vertex)
}

// UnknownFaceError is returned by Block.Face for a name outside FaceMap.
type UnknownFaceError struct {
	Name string
}

func (e *UnknownFaceError) Error() string {
	return fmt.Sprintf("unknown face name %q, valid names are bottom, top, front, right, back, left",
		e.Name)
}
