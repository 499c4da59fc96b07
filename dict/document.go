package dict

import (
	"fmt"
	"io"

	"github.com/notargets/blockmesh/mesh"
)

const header = `/*--------------------------------*- C++ -*----------------------------------*\
| =========                 |                                                 |
| \\      /  F ield         | OpenFOAM: The Open Source CFD Toolbox           |
|  \\    /   O peration     | Version:  v2012                                 |
|   \\  /    A nd           | Website:  www.openfoam.com                      |
|    \\/     M anipulation  |                                                 |
\*---------------------------------------------------------------------------*/
FoamFile
{
    version     2.0;
    format      ascii;
    class       dictionary;
    object      blockMeshDict;
}
// * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * //
`

const footer = `// ************************************************************************* //
`

// Document assembles a complete blockMeshDict around the two core fragments.
// The vertices and blocks sections come from the mesh; the remaining
// sections are caller-supplied raw entries written through verbatim, so any
// geometry, edge, boundary or merge specification the core does not model
// can still be carried into the output.
type Document struct {
	ConvertToMeters float64
	Geometry        []string // entries of the geometry sub-dictionary
	Edges           []string // entries of the edges section
	Boundary        []string // entries of the boundary section
	MergePatchPairs []string // entries of the mergePatchPairs section
}

func NewDocument() *Document {
	return &Document{ConvertToMeters: 1}
}

// Write assembles and writes the full dictionary. The vertices fragment
// appears in registry order, the blocks fragment in block-creation order,
// both concatenated verbatim, one line per entry. The first write failure
// stops the assembly and is returned, so a short write never passes as a
// complete document.
func (d *Document) Write(w io.Writer, m *mesh.Mesh) error {
	vertices, err := VerticesSection(m)
	if err != nil {
		return err
	}
	blocks, err := BlocksSection(m)
	if err != nil {
		return err
	}

	ew := &errWriter{w: w}
	ew.printf("%s", header)
	ew.printf("\nconvertToMeters %g;\n", d.ConvertToMeters)

	if len(d.Geometry) != 0 {
		ew.printf("\ngeometry\n{\n")
		ew.lines(d.Geometry)
		ew.printf("}\n")
	}

	ew.printf("\nvertices\n(\n")
	ew.lines(vertices)
	ew.printf(");\n")

	ew.printf("\nblocks\n(\n")
	ew.lines(blocks)
	ew.printf(");\n")

	ew.printf("\nedges\n(\n")
	ew.lines(d.Edges)
	ew.printf(");\n")

	ew.printf("\nboundary\n(\n")
	ew.lines(d.Boundary)
	ew.printf(");\n")

	ew.printf("\nmergePatchPairs\n(\n")
	ew.lines(d.MergePatchPairs)
	ew.printf(");\n")

	ew.printf("\n%s", footer)
	return ew.err
}

// errWriter sticks on the first write error so section writes can be
// chained without checking each one.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) lines(lines []string) {
	for _, line := range lines {
		ew.printf("%s\n", line)
	}
}
