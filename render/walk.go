package render

import (
	"sort"

	"github.com/lixenwraith/creasefold/prng"
	"github.com/lixenwraith/creasefold/trait"
)

// WalkOrder returns the cell emission order for a draw direction as a
// permutation of [0, cols*rows). Only midpoint-out consumes randomness —
// one draw on the walk stream for the starting cell.
func WalkOrder(d trait.DrawDirection, cols, rows int, normalized uint32) []int {
	n := cols * rows
	order := make([]int, 0, n)

	switch d {
	case trait.DirLeftToRight:
		for i := 0; i < n; i++ {
			order = append(order, i)
		}

	case trait.DirRightToLeft:
		for i := n - 1; i >= 0; i-- {
			order = append(order, i)
		}

	case trait.DirCenterOut:
		// Chebyshev distance from the grid center on doubled coordinates
		// (avoids halves), stable index tie-break.
		order = order[:n]
		for i := range order {
			order[i] = i
		}
		dist := func(i int) int {
			x, y := i%cols, i/cols
			dx := abs(2*x - (cols - 1))
			dy := abs(2*y - (rows - 1))
			if dx > dy {
				return dx
			}
			return dy
		}
		sort.SliceStable(order, func(a, b int) bool {
			da, db := dist(order[a]), dist(order[b])
			if da != db {
				return da < db
			}
			return order[a] < order[b]
		})

	case trait.DirSerpentine:
		for y := 0; y < rows; y++ {
			if y%2 == 0 {
				for x := 0; x < cols; x++ {
					order = append(order, y*cols+x)
				}
			} else {
				for x := cols - 1; x >= 0; x-- {
					order = append(order, y*cols+x)
				}
			}
		}

	case trait.DirDiagonalSweep:
		for d := 0; d <= cols+rows-2; d++ {
			for x := 0; x < cols; x++ {
				y := d - x
				if y >= 0 && y < rows {
					order = append(order, y*cols+x)
				}
			}
		}

	case trait.DirMidpointOut:
		s := prng.NewStream(normalized, trait.OffsetWalk)
		start := prng.Scaled(s.Draw(), n)
		order = append(order, start)
		for step := 1; len(order) < n; step++ {
			if hi := start + step; hi < n {
				order = append(order, hi)
			}
			if lo := start - step; lo >= 0 {
				order = append(order, lo)
			}
		}

	case trait.DirCheckerboard:
		for parity := 0; parity < 2; parity++ {
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					if (x+y)%2 == parity {
						order = append(order, y*cols+x)
					}
				}
			}
		}
	}

	return order
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
