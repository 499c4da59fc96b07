package mesh

import (
	"fmt"
	"io"
)

// PrintStatistics prints mesh statistics
func (m *Mesh) PrintStatistics(w io.Writer) {
	fmt.Fprintf(w, "Mesh Statistics:\n")
	fmt.Fprintf(w, "  Vertices: %d\n", len(m.vertices))
	fmt.Fprintf(w, "  Blocks: %d\n", len(m.blocks))
	fmt.Fprintf(w, "  Unique edges: %d\n", len(m.Edges()))

	inner := 0
	for _, v := range m.vertices {
		if m.IsInnerVertex(v) {
			inner++
		}
	}
	fmt.Fprintf(w, "  Inner vertices: %d\n", inner)

	totalCells := 0
	fmt.Fprintf(w, "  Blocks by name:\n")
	for _, b := range m.blocks {
		cells := b.Cells[0] * b.Cells[1] * b.Cells[2]
		totalCells += cells
		fmt.Fprintf(w, "    %s: (%d %d %d) = %d cells\n", b.Name,
			b.Cells[0], b.Cells[1], b.Cells[2], cells)
	}
	fmt.Fprintf(w, "  Total cells: %d\n", totalCells)
}
