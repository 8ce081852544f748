package fmath

import (
	"math"
)

// Traverse visits every grid cell intersected by a line from (x1, y1) to
// (x2, y2), coordinates are Q32.32 fixed point. Uses Supercover DDA so no
// intersected cell is skipped. The diagonal tie-break (tMaxX == tMaxY steps
// both axes) is the single rasterization rule every crease strategy shares;
// changing it changes every diagonal and radial artwork.
func Traverse(x1, y1, x2, y2 int64, callback func(x, y int) bool) {
	ix, iy := ToInt(x1), ToInt(y1)
	targetX, targetY := ToInt(x2), ToInt(y2)

	if ix == targetX && iy == targetY {
		callback(ix, iy)
		return
	}

	dx := x2 - x1
	dy := y2 - y1

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	var tMaxX, tMaxY, tDeltaX, tDeltaY int64
	if dx == 0 {
		tMaxX = math.MaxInt64
	} else {
		tDeltaX = Div(Scale, dx)
		if stepX > 0 {
			tMaxX = Mul(Scale-(x1&Mask), tDeltaX)
		} else {
			tMaxX = Mul(x1&Mask, tDeltaX)
		}
	}

	if dy == 0 {
		tMaxY = math.MaxInt64
	} else {
		tDeltaY = Div(Scale, dy)
		if stepY > 0 {
			tMaxY = Mul(Scale-(y1&Mask), tDeltaY)
		} else {
			tMaxY = Mul(y1&Mask, tDeltaY)
		}
	}

	if !callback(ix, iy) {
		return
	}

	for ix != targetX || iy != targetY {
		if tMaxX < tMaxY {
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				iy += stepY
				tMaxY += tDeltaY
			}
		} else if tMaxX > tMaxY {
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				ix += stepX
				tMaxX += tDeltaX
			}
		} else {
			// Diagonal step (tMaxX == tMaxY)
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			break
		}
	}
}
