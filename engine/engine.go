// Package engine is the external interface to the fold-pattern generator:
// it validates input parameters, orchestrates seed normalization, trait
// derivation, fold simulation, quantization and emission, and hands the
// result to a drawing surface. The engine is a pure, stateless function of
// (seed, fold count, canvas dimensions) — no I/O, no shared state, safe to
// invoke concurrently as long as each call owns its surface.
package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/lixenwraith/creasefold/fold"
	"github.com/lixenwraith/creasefold/prng"
	"github.com/lixenwraith/creasefold/render"
	"github.com/lixenwraith/creasefold/trait"
)

// Validation errors. Out-of-range inputs are rejected, never silently
// clamped — clamping would change the deterministic output for an
// otherwise valid seed.
var (
	ErrDimensions = errors.New("canvas dimensions out of range")
	ErrFoldCount  = errors.New("fold count out of range")
)

// Canvas bounds. The lower bound guarantees a non-empty cell grid for
// every margin class the seed can select.
const (
	MinCanvas  = 160
	MaxCanvas  = 4096
	maxPadDivisor = 8
)

// Params is the input contract for one artwork.
type Params struct {
	Seed      string // 1-64 hex digits, optional 0x prefix
	FoldCount *int   // nil = derive from the seed
	Width     int    // pixels
	Height    int    // pixels
	Padding   int    // pixels, caller padding inside the canvas
}

// Validate rejects malformed input before any PRNG stream is created.
func (p Params) Validate() error {
	if _, err := prng.Normalize(p.Seed); err != nil {
		return err
	}
	if p.Width < MinCanvas || p.Width > MaxCanvas ||
		p.Height < MinCanvas || p.Height > MaxCanvas {
		return fmt.Errorf("%w: %dx%d, want %d..%d", ErrDimensions, p.Width, p.Height, MinCanvas, MaxCanvas)
	}
	min := p.Width
	if p.Height < min {
		min = p.Height
	}
	if p.Padding < 0 || p.Padding > min/maxPadDivisor {
		return fmt.Errorf("%w: padding %d, want 0..%d", ErrDimensions, p.Padding, min/maxPadDivisor)
	}
	if p.FoldCount != nil && (*p.FoldCount < 0 || *p.FoldCount > trait.MaxFoldCount) {
		return fmt.Errorf("%w: %d, want 0..%d", ErrFoldCount, *p.FoldCount, trait.MaxFoldCount)
	}
	return nil
}

// Artwork is the fully derived result: the trait record plus the quantized
// pattern and its draw operations. Immutable once returned.
type Artwork struct {
	Normalized uint32
	Traits     trait.Set
	Pattern    *fold.Pattern
	Levels     []fold.Level
	Ops        []render.CellOp
	Frame      render.Frame
}

// Derive computes the trait set alone. Traits depend only on the seed and
// an explicit fold count — dimensions and padding never reach them.
func Derive(seed string, foldCount *int) (trait.Set, error) {
	norm, err := prng.Normalize(seed)
	if err != nil {
		return trait.Set{}, err
	}
	fc := trait.DeriveCount
	if foldCount != nil {
		if *foldCount < 0 || *foldCount > trait.MaxFoldCount {
			return trait.Set{}, fmt.Errorf("%w: %d", ErrFoldCount, *foldCount)
		}
		fc = *foldCount
	}
	return trait.Derive(norm, fc), nil
}

// Generate runs the full pipeline. Identical params always yield an
// identical artwork; nothing here can fail once Validate passes.
func Generate(p Params) (*Artwork, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	norm, _ := prng.Normalize(p.Seed)

	fc := trait.DeriveCount
	if p.FoldCount != nil {
		fc = *p.FoldCount
	}
	set := trait.Derive(norm, fc)

	cols, rows := fold.GridSize(p.Width, p.Height, p.Padding, set.Margin)
	pattern := fold.Simulate(set, cols, rows, norm)
	levels := fold.Quantize(pattern.Grid, set.Mode)
	ops := render.Emit(pattern, levels, set, norm)

	return &Artwork{
		Normalized: norm,
		Traits:     set,
		Pattern:    pattern,
		Levels:     levels,
		Ops:        ops,
		Frame:      render.NewFrame(p.Width, p.Height, p.Padding, set.Margin, cols, rows),
	}, nil
}

// EncodePNG generates the artwork and writes PNG bytes to w.
func EncodePNG(w io.Writer, p Params) (*Artwork, error) {
	art, err := Generate(p)
	if err != nil {
		return nil, err
	}
	if err := render.EncodePNG(w, art.Ops, art.Pattern, art.Traits, art.Frame); err != nil {
		return nil, err
	}
	return art, nil
}
