package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/blockmesh/mesh"
)

// BlockParameters defines one hex block by positions into the deck's vertex
// list, in canonical local corner order 0..7. Vertices stays a slice so a
// deck listing the wrong number of corners is rejected by block
// construction instead of being silently truncated during unmarshalling.
type BlockParameters struct {
	Name     string  `yaml:"Name"`
	Vertices []int   `yaml:"Vertices"`
	Cells    *[3]int `yaml:"Cells"` // nil means the deck default
}

// Parameters obtained from the YAML input deck
type MeshParameters struct {
	Title           string            `yaml:"Title"`
	ConvertToMeters float64           `yaml:"ConvertToMeters"`
	DefaultCells    *[3]int           `yaml:"DefaultCells"`
	Vertices        [][3]float64      `yaml:"Vertices"`
	Blocks          []BlockParameters `yaml:"Blocks"`
	Geometry        []string          `yaml:"Geometry"`        // raw entries passed through
	Edges           []string          `yaml:"Edges"`           // raw entries passed through
	Boundary        []string          `yaml:"Boundary"`        // raw entries passed through
	MergePatchPairs []string          `yaml:"MergePatchPairs"` // raw entries passed through
}

func (mp *MeshParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, mp); err != nil {
		return err
	}
	if mp.ConvertToMeters == 0 {
		mp.ConvertToMeters = 1
	}
	return nil
}

func (mp *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("%8.5f\t\t= ConvertToMeters\n", mp.ConvertToMeters)
	fmt.Printf("[%d]\t\t\t= Vertices\n", len(mp.Vertices))
	fmt.Printf("[%d]\t\t\t= Blocks\n", len(mp.Blocks))
	for _, bp := range mp.Blocks {
		cells := "default"
		if bp.Cells != nil {
			cells = fmt.Sprintf("%v", *bp.Cells)
		}
		fmt.Printf("Block[%s] = verts %v, cells %s\n", bp.Name, bp.Vertices, cells)
	}
}

// BuildMesh constructs the mesh the deck describes. Deck vertices are
// registered in listed order, so deck positions and registry global indices
// coincide; each block then resolves its corner positions against that
// list. A corner reference outside the vertex list fails the build.
func (mp *MeshParameters) BuildMesh() (*mesh.Mesh, error) {
	m := mesh.NewMesh()
	verts := make([]*mesh.Vertex, 0, len(mp.Vertices))
	for _, c := range mp.Vertices {
		verts = append(verts, m.NewVertex(c[0], c[1], c[2]))
	}
	for i, bp := range mp.Blocks {
		corners := make([]*mesh.Vertex, 0, len(bp.Vertices))
		for _, vi := range bp.Vertices {
			if vi < 0 || vi >= len(verts) {
				return nil, fmt.Errorf("block %d (%s) references vertex %d, deck has %d vertices",
					i, bp.Name, vi, len(verts))
			}
			corners = append(corners, verts[vi])
		}
		b, err := m.NewBlock(bp.Name, corners)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		if bp.Cells != nil {
			b.Cells = *bp.Cells
		} else if mp.DefaultCells != nil {
			b.Cells = *mp.DefaultCells
		}
	}
	return m, nil
}
