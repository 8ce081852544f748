// Package fold simulates paper folding: it accumulates crease-intersection
// weight on a cell grid across N cycles and quantizes the result into
// density levels. The whole package is pure arithmetic over Q32.32 — given
// a trait set, grid size and normalized seed, the output is bit-identical
// on every platform.
package fold

import (
	"github.com/lixenwraith/creasefold/trait"
)

// CellSize is the raster footprint of one grid cell in pixels.
const CellSize = 16

// Grid holds accumulated crease weight and hit counts per cell. A grid is
// created fresh per render, owned solely by that call, and discarded after
// quantization.
type Grid struct {
	Cols, Rows int
	Weights    []int64 // Q32.32, row-major
	Hits       []int
}

func NewGrid(cols, rows int) *Grid {
	return &Grid{
		Cols:    cols,
		Rows:    rows,
		Weights: make([]int64, cols*rows),
		Hits:    make([]int, cols*rows),
	}
}

// Add accumulates weight on an in-bounds cell and reports whether the
// coordinates were inside the grid.
func (g *Grid) Add(x, y int, w int64) bool {
	if x < 0 || x >= g.Cols || y < 0 || y >= g.Rows {
		return false
	}
	i := y*g.Cols + x
	g.Weights[i] += w
	g.Hits[i]++
	return true
}

// At returns the accumulated weight of a cell, 0 out of bounds.
func (g *Grid) At(x, y int) int64 {
	if x < 0 || x >= g.Cols || y < 0 || y >= g.Rows {
		return 0
	}
	return g.Weights[y*g.Cols+x]
}

// HitsAt returns the crease hit count of a cell, 0 out of bounds.
func (g *Grid) HitsAt(x, y int) int {
	if x < 0 || x >= g.Cols || y < 0 || y >= g.Rows {
		return 0
	}
	return g.Hits[y*g.Cols+x]
}

// MaxWeight returns the largest accumulated cell weight.
func (g *Grid) MaxWeight() int64 {
	var max int64
	for _, w := range g.Weights {
		if w > max {
			max = w
		}
	}
	return max
}

// GridSize derives the cell grid dimensions from canvas pixels, caller
// padding and the margin trait. Both dimensions must come out >= 1; the
// engine validates canvas bounds so that holds for all accepted inputs.
func GridSize(width, height, padding int, margin trait.MarginClass) (cols, rows int) {
	inset := padding + margin.Pixels()
	cols = (width - 2*inset) / CellSize
	rows = (height - 2*inset) / CellSize
	return cols, rows
}
