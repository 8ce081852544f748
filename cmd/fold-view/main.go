// Usage examples:
//
// # Inspect a seed interactively
// ./fold-view -seed 0x8a1c3f09d2e4b567
//
// # With the audio motif on startup
// ./fold-view -seed 0xdeadbeef -sound
//
// Keys: arrows or hjkl move the cursor, any printable rune replaces the
// glyph under the cursor, 'u' restores the original glyph, 'U' restores
// all, 's' replays the motif, 'q' or Escape quits.

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/creasefold/audio"
	"github.com/lixenwraith/creasefold/engine"
	"github.com/lixenwraith/creasefold/render"
)

type viewer struct {
	screen  tcell.Screen
	art     *engine.Artwork
	ops     []render.CellOp
	edited  map[int]rune // cell index -> replacement glyph
	cursorX int
	cursorY int
	player  *audio.Player
	motif   []float64
}

func main() {
	var (
		seed  string
		folds int
		sound bool
	)

	flag.StringVar(&seed, "seed", "", "Hex seed, 1-64 digits, optional 0x prefix (required)")
	flag.IntVar(&folds, "folds", -1, "Explicit fold count 0-64 (-1 = derive from seed)")
	flag.BoolVar(&sound, "sound", false, "Play the seed's audio motif")
	flag.Parse()

	if seed == "" {
		fmt.Fprintln(os.Stderr, "Usage: fold-view -seed <hex> [options]")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var fc *int
	if folds >= 0 {
		fc = &folds
	}

	art, err := engine.Generate(engine.Params{
		Seed:      seed,
		FoldCount: fc,
		Width:     512,
		Height:    512,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			render.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "CRASH: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	v := &viewer{
		screen: screen,
		art:    art,
		ops:    art.Ops,
		edited: make(map[int]rune),
	}

	if sound {
		v.player = audio.NewPlayer()
		if err := v.player.Initialize(); err == nil {
			v.motif = audio.Motif(art.Traits, art.Normalized)
			v.player.Play(v.motif)
		}
		defer func() {
			if v.player != nil {
				v.player.Cleanup()
			}
		}()
	}

	v.run()
}

func (v *viewer) run() {
	for {
		v.draw()
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey returns true on quit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	cols := v.art.Pattern.Grid.Cols
	rows := v.art.Pattern.Grid.Rows

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.moveCursor(0, -1, cols, rows)
		return false
	case tcell.KeyDown:
		v.moveCursor(0, 1, cols, rows)
		return false
	case tcell.KeyLeft:
		v.moveCursor(-1, 0, cols, rows)
		return false
	case tcell.KeyRight:
		v.moveCursor(1, 0, cols, rows)
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch r := ev.Rune(); r {
	case 'q':
		return true
	case 'h':
		v.moveCursor(-1, 0, cols, rows)
	case 'j':
		v.moveCursor(0, 1, cols, rows)
	case 'k':
		v.moveCursor(0, -1, cols, rows)
	case 'l':
		v.moveCursor(1, 0, cols, rows)
	case 'u':
		delete(v.edited, v.cursorY*cols+v.cursorX)
	case 'U':
		v.edited = make(map[int]rune)
	case 's':
		if v.player != nil {
			v.player.Play(v.motif)
		}
	default:
		if r >= ' ' {
			v.edited[v.cursorY*cols+v.cursorX] = r
		}
	}
	return false
}

func (v *viewer) moveCursor(dx, dy, cols, rows int) {
	x := v.cursorX + dx
	y := v.cursorY + dy
	if x >= 0 && x < cols {
		v.cursorX = x
	}
	if y >= 0 && y < rows {
		v.cursorY = y
	}
}

func (v *viewer) draw() {
	v.screen.Clear()

	cols := v.art.Pattern.Grid.Cols
	ops := make([]render.CellOp, len(v.ops))
	copy(ops, v.ops)
	for i := range ops {
		if r, ok := v.edited[ops[i].Y*cols+ops[i].X]; ok {
			ops[i].Glyph = r
		}
	}
	render.Paint(v.screen, ops, 0, 1)

	// Cursor highlight
	for _, op := range ops {
		if op.X == v.cursorX && op.Y == v.cursorY {
			style := tcell.StyleDefault.Reverse(true)
			v.screen.SetContent(op.X, op.Y+1, op.Glyph, nil, style)
		}
	}

	v.drawStatus()
	v.screen.Show()
}

func (v *viewer) drawStatus() {
	g := v.art.Pattern.Grid
	idx := v.cursorY*g.Cols + v.cursorX
	weight := g.At(v.cursorX, v.cursorY)
	hits := g.HitsAt(v.cursorX, v.cursorY)
	level := v.art.Levels[idx]

	header := fmt.Sprintf("%s/%s  folds %d  cell (%d,%d)  level %s  weight %.3f  hits %d",
		v.art.Traits.Strategy, v.art.Traits.Mode, v.art.Traits.FoldCount,
		v.cursorX, v.cursorY, level, float64(weight)/(1<<32), hits)

	style := tcell.StyleDefault.Bold(true)
	for i, r := range header {
		v.screen.SetContent(i, 0, r, nil, style)
	}
}
