package plotting

import (
	"image/color"

	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/blockmesh/mesh"
)

// PlotMesh opens a chart window showing the X-Y projection of the block
// mesh: each block contributes its bottom and top quads split into
// triangles, with the registered vertices optionally overlaid as points.
// The chart renders on a background goroutine; the caller decides how long
// to keep the window alive.
func PlotMesh(m *mesh.Mesh, plotPoints bool) (chart *chart2d.Chart2D) {
	var (
		points  []graphics2D.Point
		trimesh graphics2D.TriMesh
		blocks  = m.Blocks()
	)
	points = make([]graphics2D.Point, m.NumVertices())
	for i, v := range m.Vertices() {
		points[i].X[0] = float32(v.X)
		points[i].X[1] = float32(v.Y)
	}
	// Four triangles per block: bottom and top quads, each split along a
	// diagonal.
	quads := [2][4]int{mesh.FaceMap["bottom"], mesh.FaceMap["top"]}
	trimesh.Triangles = make([]graphics2D.Triangle, 0, 4*len(blocks))
	trimesh.Attributes = make([][]float32, 0, 4*len(blocks))
	for _, b := range blocks {
		corners := b.OrderedVertices()
		for _, quad := range quads {
			for _, tri := range [2][3]int{{0, 1, 2}, {0, 2, 3}} {
				var gt graphics2D.Triangle
				for i, qi := range tri {
					gi, err := m.GlobalIndexOf(corners[quad[qi]])
					if err != nil {
						panic(err)
					}
					gt.Nodes[i] = int32(gi)
				}
				trimesh.Triangles = append(trimesh.Triangles, gt)
				trimesh.Attributes = append(trimesh.Attributes, []float32{0, 0, 0})
			}
		}
	}
	trimesh.Geometry = points
	box := graphics2D.NewBoundingBox(trimesh.GetGeometry())
	box = box.Scale(1.5)
	chart = chart2d.NewChart2D(1920, 1920, box.XMin[0], box.XMax[0], box.XMin[1], box.XMax[1])
	colorMap := utils2.NewColorMap(0, 1, 1)
	chart.AddColorMap(colorMap)
	go chart.Plot()
	white := color.RGBA{
		R: 255,
		G: 255,
		B: 255,
		A: 0,
	}
	black := color.RGBA{
		R: 0,
		G: 0,
		B: 0,
		A: 0,
	}
	if err := chart.AddTriMesh("BlockMesh", trimesh,
		chart2d.CrossGlyph, chart2d.Solid, white); err != nil {
		panic("unable to add graph series")
	}
	if plotPoints {
		var xs, ys []float64
		for _, v := range m.Vertices() {
			xs = append(xs, v.X)
			ys = append(ys, v.Y)
		}
		if err := chart.AddSeries("Vertices", xs, ys,
			chart2d.CircleGlyph, chart2d.NoLine, black); err != nil {
			panic(err)
		}
	}
	return
}
