package render

import (
	"image/color"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Paint writes ops onto a tcell screen at the given origin, one terminal
// cell per grid cell. The caller owns Show/Sync. A nil screen is a
// rendering-unavailable error.
func Paint(s tcell.Screen, ops []CellOp, originX, originY int) error {
	if s == nil {
		return ErrSurfaceUnavailable
	}

	for _, op := range ops {
		style := tcell.StyleDefault.
			Foreground(toTcell(op.Fg)).
			Background(toTcell(op.Bg))
		s.SetContent(originX+op.X, originY+op.Y, op.Glyph, nil, style)
	}
	return nil
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery when Fini() cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write([]byte("\x1b[?25h"))   // cursor show
	w.Write([]byte("\x1b[?1049l")) // alt screen exit
	w.Write([]byte("\x1b[0m"))     // SGR reset
	w.Write([]byte("\x1b[?7h"))    // auto wrap on

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
