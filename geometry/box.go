/*
Package geometry builds coordinate sets for block construction: canonical
8-corner boxes, corner-set translation for stacking neighbor blocks, and
bounding boxes over registered vertices.
*/
package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/blockmesh/mesh"
)

// BoxCorners returns the 8 corner coordinates of the axis-aligned box with
// the given origin and extents, in canonical local order: 0-3 run counter
// clockwise around the bottom quad starting at the origin, 4-7 sit directly
// above them.
func BoxCorners(origin, dims [3]float64) (corners [8][3]float64) {
	var (
		x0, y0, z0 = origin[0], origin[1], origin[2]
		x1         = x0 + dims[0]
		y1         = y0 + dims[1]
		z1         = z0 + dims[2]
	)
	corners = [8][3]float64{
		{x0, y0, z0}, {x1, y0, z0}, {x1, y1, z0}, {x0, y1, z0},
		{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1},
	}
	return
}

// Translate returns a copy of corners shifted by delta.
func Translate(corners [8][3]float64, delta [3]float64) (shifted [8][3]float64) {
	for i, c := range corners {
		shifted[i] = c
		floats.Add(shifted[i][:], delta[:])
	}
	return
}

// NewBoxVertices registers the 8 corners of a box with the mesh in canonical
// order, ready to hand to Mesh.NewBlock.
func NewBoxVertices(m *mesh.Mesh, origin, dims [3]float64) (verts []*mesh.Vertex) {
	for _, c := range BoxCorners(origin, dims) {
		verts = append(verts, m.NewVertex(c[0], c[1], c[2]))
	}
	return
}

// Bounds returns the axis-aligned bounding box of every registered vertex.
// An empty registry has no bounds.
func Bounds(m *mesh.Mesh) (lo, hi [3]float64, err error) {
	vertices := m.Vertices()
	if len(vertices) == 0 {
		err = fmt.Errorf("mesh has no vertices to bound")
		return
	}
	var xs, ys, zs []float64
	for _, v := range vertices {
		xs = append(xs, v.X)
		ys = append(ys, v.Y)
		zs = append(zs, v.Z)
	}
	lo = [3]float64{floats.Min(xs), floats.Min(ys), floats.Min(zs)}
	hi = [3]float64{floats.Max(xs), floats.Max(ys), floats.Max(zs)}
	return
}
