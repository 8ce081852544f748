package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/lixenwraith/creasefold/fmath"
	"github.com/lixenwraith/creasefold/fold"
	"github.com/lixenwraith/creasefold/trait"
)

// Frame fixes where the cell grid sits on the canvas: the inset from the
// caller padding plus margin trait, re-centered so leftover pixels split
// evenly.
type Frame struct {
	Width, Height int
	OriginX       int
	OriginY       int
}

// NewFrame computes the raster frame for a canvas and grid.
func NewFrame(width, height, padding int, margin trait.MarginClass, cols, rows int) Frame {
	inset := padding + margin.Pixels()
	return Frame{
		Width:   width,
		Height:  height,
		OriginX: inset + (width-2*inset-cols*fold.CellSize)/2,
		OriginY: inset + (height-2*inset-rows*fold.CellSize)/2,
	}
}

// Rasterize draws ops, overlays and paper grain into a fresh RGBA image.
func Rasterize(ops []CellOp, p *fold.Pattern, set trait.Set, frame Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))

	colors := BuildColors(set.Palette)
	draw.Draw(img, img.Bounds(), &image.Uniform{C: colors.Bg}, image.Point{}, draw.Src)

	if set.Paper.Grain {
		drawGrain(img, set.Paper.GrainAngle)
	}

	for _, op := range ops {
		drawCell(img, op, frame)
	}

	if set.CreaseLines {
		for _, seg := range p.Creases {
			drawCrease(img, seg, frame, colors.Accent)
		}
	}

	return img
}

// EncodePNG rasterizes and writes PNG bytes. A nil writer is a
// rendering-unavailable failure, never a silent blank image.
func EncodePNG(w io.Writer, ops []CellOp, p *fold.Pattern, set trait.Set, frame Frame) error {
	if w == nil {
		return ErrSurfaceUnavailable
	}
	return png.Encode(w, Rasterize(ops, p, set, frame))
}

func drawCell(img *image.RGBA, op CellOp, frame Frame) {
	px := frame.OriginX + op.X*fold.CellSize
	py := frame.OriginY + op.Y*fold.CellSize

	bitmap, ok := glyphBitmaps[op.Glyph]
	if ok {
		// 8x8 bitmap scaled 2x into the 16px cell
		for by := 0; by < 8; by++ {
			rowBits := bitmap[by]
			for bx := 0; bx < 8; bx++ {
				if rowBits&(0x80>>bx) == 0 {
					continue
				}
				fillRect(img, px+bx*2, py+by*2, 2, 2, op.Fg)
			}
		}
	}

	if op.Hits > 0 {
		drawHitTicks(img, px, py, op.Hits, op.Fg)
	}
}

// drawHitTicks marks up to four cell corners, one per crease hit.
func drawHitTicks(img *image.RGBA, px, py, hits int, c color.RGBA) {
	corners := [4][2]int{
		{px + 1, py + 1},
		{px + fold.CellSize - 3, py + 1},
		{px + 1, py + fold.CellSize - 3},
		{px + fold.CellSize - 3, py + fold.CellSize - 3},
	}
	if hits > 4 {
		hits = 4
	}
	for i := 0; i < hits; i++ {
		fillRect(img, corners[i][0], corners[i][1], 2, 2, c)
	}
}

// drawCrease strokes a recorded segment, converting cell-space Q32.32
// coordinates to pixels and walking them with the same DDA the simulation
// used.
func drawCrease(img *image.RGBA, seg fold.Segment, frame Frame, c color.RGBA) {
	toPx := func(q int64, origin int) int64 {
		return fmath.FromInt(origin) + fmath.Mul(q, fmath.FromInt(fold.CellSize))
	}

	fmath.Traverse(
		toPx(seg.X1, frame.OriginX), toPx(seg.Y1, frame.OriginY),
		toPx(seg.X2, frame.OriginX), toPx(seg.Y2, frame.OriginY),
		func(x, y int) bool {
			if x < 0 || x >= frame.Width || y < 0 || y >= frame.Height {
				return false
			}
			img.SetRGBA(x, y, c)
			return true
		})
}

// drawGrain lays faint dotted lines across the canvas at the grain angle.
var grainColor = color.RGBA{0x28, 0x28, 0x28, 0xFF}

func drawGrain(img *image.RGBA, angleDeg int) {
	b := img.Bounds()
	const spacing = 24

	// Angle in turns, Q32.32
	ang := fmath.MulDiv(fmath.FromInt(angleDeg), fmath.Scale, fmath.FromInt(360))
	dx := fmath.Cos(ang)
	dy := fmath.Sin(ang)
	reach := fmath.FromInt(b.Dx() + b.Dy())

	for off := 0; off < b.Dx()+b.Dy(); off += spacing {
		// Anchor along the top and left edges
		var sx, sy int64
		if off < b.Dx() {
			sx, sy = fmath.FromInt(off), 0
		} else {
			sx, sy = 0, fmath.FromInt(off-b.Dx())
		}

		step := 0
		fmath.Traverse(sx, sy, sx+fmath.Mul(dx, reach), sy+fmath.Mul(dy, reach), func(x, y int) bool {
			if x < 0 || x >= b.Dx() || y < 0 || y >= b.Dy() {
				return false
			}
			step++
			if step%4 == 0 {
				img.SetRGBA(x, y, grainColor)
			}
			return true
		})
	}
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	b := img.Bounds()
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if xx >= b.Min.X && xx < b.Max.X && yy >= b.Min.Y && yy < b.Max.Y {
				img.SetRGBA(xx, yy, c)
			}
		}
	}
}
