package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDeck = `
Title: Two-block channel
ConvertToMeters: 0.1
DefaultCells: [20, 10, 10]
Vertices:
  - [0, 0, 0]
  - [1, 0, 0]
  - [1, 1, 0]
  - [0, 1, 0]
  - [0, 0, 1]
  - [1, 0, 1]
  - [1, 1, 1]
  - [0, 1, 1]
  - [2, 0, 0]
  - [2, 1, 0]
  - [2, 0, 1]
  - [2, 1, 1]
Blocks:
  - Name: inlet
    Vertices: [0, 1, 2, 3, 4, 5, 6, 7]
  - Name: outlet
    Vertices: [1, 8, 9, 2, 5, 10, 11, 6]
    Cells: [5, 5, 5]
Boundary:
  - "    walls { type wall; faces ((0 3 2 1)); }"
`

func TestParse(t *testing.T) {
	var mp MeshParameters
	require.NoError(t, mp.Parse([]byte(sampleDeck)))
	assert.Equal(t, "Two-block channel", mp.Title)
	assert.Equal(t, 0.1, mp.ConvertToMeters)
	require.NotNil(t, mp.DefaultCells)
	assert.Equal(t, [3]int{20, 10, 10}, *mp.DefaultCells)
	assert.Len(t, mp.Vertices, 12)
	require.Len(t, mp.Blocks, 2)
	assert.Equal(t, "inlet", mp.Blocks[0].Name)
	assert.Nil(t, mp.Blocks[0].Cells)
	require.NotNil(t, mp.Blocks[1].Cells)
	assert.Equal(t, [3]int{5, 5, 5}, *mp.Blocks[1].Cells)
	assert.Len(t, mp.Boundary, 1)
}

func TestParseKeepsOversizedCornerLists(t *testing.T) {
	// ghodss/yaml would drop elements past a fixed array size; the slice
	// keeps all 9 so the build can report the bad count
	deck := `
Blocks:
  - Name: bad
    Vertices: [0, 1, 2, 3, 4, 5, 6, 7, 8]
`
	var mp MeshParameters
	require.NoError(t, mp.Parse([]byte(deck)))
	require.Len(t, mp.Blocks, 1)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, mp.Blocks[0].Vertices)
}

func TestParseDefaultsConvertToMeters(t *testing.T) {
	var mp MeshParameters
	require.NoError(t, mp.Parse([]byte("Title: bare")))
	assert.Equal(t, 1.0, mp.ConvertToMeters)
}

func TestBuildMesh(t *testing.T) {
	{ // Deck positions equal registry global indices
		var mp MeshParameters
		require.NoError(t, mp.Parse([]byte(sampleDeck)))
		m, err := mp.BuildMesh()
		require.NoError(t, err)
		assert.Equal(t, 12, m.NumVertices())
		require.Equal(t, 2, m.NumBlocks())

		inlet := m.Blocks()[0]
		assert.Equal(t, "inlet", inlet.Name)
		assert.Equal(t, [3]int{20, 10, 10}, inlet.Cells) // deck default
		outlet := m.Blocks()[1]
		assert.Equal(t, [3]int{5, 5, 5}, outlet.Cells) // per-block override

		for i, v := range m.Vertices() {
			gi, err := m.GlobalIndexOf(v)
			require.NoError(t, err)
			assert.Equal(t, i, gi)
		}

		// The shared face makes deck vertex 1 a 4-neighbor vertex
		assert.Len(t, m.ConnectedTo(m.Vertices()[1]), 4)
	}
	{ // Out-of-range corner references fail before any block is built
		var mp MeshParameters
		require.NoError(t, mp.Parse([]byte(sampleDeck)))
		mp.Blocks[1].Vertices[3] = 99
		_, err := mp.BuildMesh()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "references vertex 99")
	}
	{ // Core block validation surfaces through the deck build
		var mp MeshParameters
		require.NoError(t, mp.Parse([]byte(sampleDeck)))
		mp.Blocks[0].Vertices[7] = 0 // duplicate corner
		_, err := mp.BuildMesh()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid block definition")
	}
	{ // An oversized corner list is rejected, not truncated
		var mp MeshParameters
		require.NoError(t, mp.Parse([]byte(sampleDeck)))
		mp.Blocks[0].Vertices = append(mp.Blocks[0].Vertices, 8)
		_, err := mp.BuildMesh()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "got 9")
	}
	{ // So is an undersized one
		var mp MeshParameters
		require.NoError(t, mp.Parse([]byte(sampleDeck)))
		mp.Blocks[0].Vertices = mp.Blocks[0].Vertices[:7]
		_, err := mp.BuildMesh()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "got 7")
	}
}
