/*
Package dict renders a mesh into the blockMeshDict text format. The core
artifacts are the vertices and blocks fragments, one formatted line per
vertex in registry order and one per block in creation order; Document wraps
them with the boilerplate sections of a complete dictionary file.
*/
package dict

import (
	"fmt"
	"strings"

	"github.com/notargets/blockmesh/mesh"
)

// FormatVertex renders one vertices-section line: the three coordinates at
// fixed width 12 with 6 decimals, parenthesized, followed by a line comment
// carrying the vertex's global index at width 6.
func FormatVertex(v *mesh.Vertex, globalIndex int) string {
	return fmt.Sprintf("( %12.6f %12.6f %12.6f ) // %6d", v.X, v.Y, v.Z, globalIndex)
}

// FormatBlock renders one blocks-section line: the 8 corner global indices
// in local order, the block name, the cell counts and the fixed grading
// placeholder. The indices are registry global indices, never vertex ids.
func FormatBlock(m *mesh.Mesh, b *mesh.Block) (string, error) {
	var sb strings.Builder
	sb.WriteString("hex (")
	for i, v := range b.OrderedVertices() {
		gi, err := m.GlobalIndexOf(v)
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d", gi)
	}
	fmt.Fprintf(&sb, ") %s (%d %d %d) simpleGrading (1 1 1)",
		b.Name, b.Cells[0], b.Cells[1], b.Cells[2])
	return sb.String(), nil
}

// VerticesSection returns the vertices fragment, one FormatVertex line per
// registered vertex in registry order.
func VerticesSection(m *mesh.Mesh) ([]string, error) {
	lines := make([]string, 0, m.NumVertices())
	for _, v := range m.Vertices() {
		gi, err := m.GlobalIndexOf(v)
		if err != nil {
			return nil, err
		}
		lines = append(lines, FormatVertex(v, gi))
	}
	return lines, nil
}

// BlocksSection returns the blocks fragment, one FormatBlock line per block
// in creation order.
func BlocksSection(m *mesh.Mesh) ([]string, error) {
	lines := make([]string, 0, m.NumBlocks())
	for _, b := range m.Blocks() {
		line, err := FormatBlock(m, b)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
