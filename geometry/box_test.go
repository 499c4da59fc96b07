package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/blockmesh/mesh"
)

func TestBoxCorners(t *testing.T) {
	corners := BoxCorners([3]float64{0, 0, 0}, [3]float64{1, 1, 1})
	assert.Equal(t, [3]float64{0, 0, 0}, corners[0])
	assert.Equal(t, [3]float64{1, 0, 0}, corners[1])
	assert.Equal(t, [3]float64{1, 1, 0}, corners[2])
	assert.Equal(t, [3]float64{0, 1, 0}, corners[3])
	assert.Equal(t, [3]float64{0, 0, 1}, corners[4])
	assert.Equal(t, [3]float64{1, 1, 1}, corners[6])

	// Bottom quad at z0, top quad at z1, top directly above bottom
	for i := 0; i < 4; i++ {
		assert.Equal(t, corners[i][0], corners[i+4][0])
		assert.Equal(t, corners[i][1], corners[i+4][1])
		assert.Equal(t, corners[i][2]+1, corners[i+4][2])
	}
}

func TestTranslate(t *testing.T) {
	corners := BoxCorners([3]float64{0, 0, 0}, [3]float64{1, 2, 3})
	shifted := Translate(corners, [3]float64{10, -1, 0.5})
	for i := range corners {
		assert.Equal(t, corners[i][0]+10, shifted[i][0])
		assert.Equal(t, corners[i][1]-1, shifted[i][1])
		assert.Equal(t, corners[i][2]+0.5, shifted[i][2])
	}
	// Input untouched
	assert.Equal(t, [3]float64{0, 0, 0}, corners[0])
}

func TestNewBoxVertices(t *testing.T) {
	m := mesh.NewMesh()
	verts := NewBoxVertices(m, [3]float64{0, 0, 0}, [3]float64{1, 1, 1})
	require.Len(t, verts, 8)
	b, err := m.NewBlock("box", verts)
	require.NoError(t, err)

	// Registered in canonical order: the block's right face spans x = 1
	right, err := b.Face("right")
	require.NoError(t, err)
	for _, v := range right {
		assert.Equal(t, 1.0, v.X)
	}
}

func TestBounds(t *testing.T) {
	m := mesh.NewMesh()
	_, _, err := Bounds(m)
	assert.Error(t, err)

	NewBoxVertices(m, [3]float64{-1, 0, 2}, [3]float64{3, 1, 0.5})
	lo, hi, err := Bounds(m)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{-1, 0, 2}, lo)
	assert.Equal(t, [3]float64{2, 1, 2.5}, hi)
}
