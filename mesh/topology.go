package mesh

/*
Canonical hexahedron corner numbering, shared by every block:

	           7 o--------------------o 6
	            /|                   /|
	           / |                  / |
	          /  |                 /  |
	         /   |                /   |
	      4 o--------------------o 5  |
	        |    |               |    |
	        |  3 o---------------|----o 2
	        |   /                |   /
	        |  /                 |  /
	        | /                  | /
	        |/                   |/
	      0 o--------------------o 1

Corners 0-3 form the bottom quad, 4-7 the top quad directly above them.
The face and edge tables below are fixed for every block instance - the
hexahedron topology never varies.
*/

// FaceMap gives the ordered local corner indices of each named face, outward
// normals pointing away from the cell interior.
var FaceMap = map[string][4]int{
	"bottom": {0, 3, 2, 1},
	"top":    {4, 5, 6, 7},
	"front":  {0, 1, 5, 4},
	"right":  {1, 2, 6, 5},
	"back":   {2, 3, 7, 6},
	"left":   {3, 0, 4, 7},
}

// EdgeMap lists the 12 cube edges as unordered pairs of local corner indices.
var EdgeMap = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom ring
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top ring
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
}

// cornerAdjacency[i] holds the local indices sharing a cube edge with corner
// i. Computed once from EdgeMap - the table is identical for all blocks, so
// there is nothing to cache per instance.
var cornerAdjacency = buildCornerAdjacency()

func buildCornerAdjacency() (adj [8][]int) {
	for _, e := range EdgeMap {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	return
}
