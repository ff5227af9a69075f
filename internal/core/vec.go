package core

// Vec is an integer 3-vector. Lattice arithmetic on a Vec is always
// periodic with respect to some board size; Vec itself carries no size.
type Vec struct {
	X, Y, Z int
}

// Add returns the componentwise sum of v and d.
func (v Vec) Add(d Vec) Vec {
	return Vec{v.X + d.X, v.Y + d.Y, v.Z + d.Z}
}

// BoardCoord reduces val into the canonical range [0, size).
func BoardCoord(val, size int) int {
	m := val % size
	if m < 0 {
		m += size
	}
	return m
}

// Canonical reduces every component of v under the given sizes.
func (v Vec) Canonical(xSize, ySize, zSize int) Vec {
	return Vec{
		X: BoardCoord(v.X, xSize),
		Y: BoardCoord(v.Y, ySize),
		Z: BoardCoord(v.Z, zSize),
	}
}

// ShortestDistance returns the shortest periodic distance between two
// coordinates under the given axis size.
func ShortestDistance(c1, c2, size int) int {
	d := BoardCoord(c1-c2, size)
	if size-d < d {
		return size - d
	}
	return d
}

// CoordAdjacent reports whether two coordinates are within periodic
// distance 1 under the given axis size.
func CoordAdjacent(c1, c2, size int) bool {
	return ShortestDistance(c1, c2, size) <= 1
}

// NbrRange returns the per-axis neighborhood radius: 1 for axes longer
// than one cell, 0 for axes of length 1 (where a coordinate is only
// adjacent to itself).
func NbrRange(size int) int {
	if size > 1 {
		return 1
	}
	return 0
}

// Neighborhood enumerates every non-zero delta in the adjacency box for
// the given board dimensions, i.e. the Cartesian product
// [-Rx..Rx]x[-Ry..Ry]x[-Rz..Rz] minus the origin.
func Neighborhood(xSize, ySize, zSize int) []Vec {
	rx, ry, rz := NbrRange(xSize), NbrRange(ySize), NbrRange(zSize)
	var out []Vec
	for x := -rx; x <= rx; x++ {
		for y := -ry; y <= ry; y++ {
			for z := -rz; z <= rz; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				out = append(out, Vec{x, y, z})
			}
		}
	}
	return out
}
