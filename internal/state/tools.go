package state

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	ErrEmptyPalette = errors.New("palette needs at least one color and one size")
	ErrBadSize      = errors.New("stroke size must be positive")
	ErrNoSuchSwatch = errors.New("no such swatch")
)

// Mode is the tool selector state.
type Mode int

const (
	ModeColor Mode = iota
	ModeCustom
	ModeEraser
)

func (m Mode) String() string {
	switch m {
	case ModeColor:
		return "color"
	case ModeCustom:
		return "custom"
	case ModeEraser:
		return "eraser"
	default:
		return "unknown"
	}
}

// Tools tracks the active color, size and eraser for one drawing surface.
// At most one color swatch and exactly one size swatch are active at a time.
// Not safe for concurrent use; callers drive it from the UI goroutine.
type Tools struct {
	colors []color.NRGBA
	sizes  []float32

	mode   Mode
	color  int // active color swatch, -1 when none
	size   int
	active color.NRGBA
	custom color.NRGBA // value shown in the custom color input
}

// NewTools activates the first color and the first size.
func NewTools(colors []color.NRGBA, sizes []float32) (*Tools, error) {
	if len(colors) == 0 || len(sizes) == 0 {
		return nil, ErrEmptyPalette
	}
	for i, s := range sizes {
		if !(s > 0) {
			return nil, fmt.Errorf("size %d (%v): %w", i, s, ErrBadSize)
		}
	}
	t := &Tools{
		colors: append([]color.NRGBA(nil), colors...),
		sizes:  append([]float32(nil), sizes...),
		mode:   ModeColor,
		active: colors[0],
		custom: colors[0],
	}
	return t, nil
}

func (t *Tools) Colors() []color.NRGBA { return append([]color.NRGBA(nil), t.colors...) }
func (t *Tools) Sizes() []float32      { return append([]float32(nil), t.sizes...) }

// SelectColor activates color swatch i, leaves erase mode and syncs the
// custom color value to the swatch.
func (t *Tools) SelectColor(i int) error {
	if i < 0 || i >= len(t.colors) {
		return fmt.Errorf("color %d: %w", i, ErrNoSuchSwatch)
	}
	t.mode = ModeColor
	t.color = i
	t.active = t.colors[i]
	t.custom = t.colors[i]
	return nil
}

// SelectSize activates size swatch i.
func (t *Tools) SelectSize(i int) error {
	if i < 0 || i >= len(t.sizes) {
		return fmt.Errorf("size %d: %w", i, ErrNoSuchSwatch)
	}
	t.size = i
	return nil
}

// SelectEraser deactivates every color swatch and enters erase mode. The
// remembered color is kept.
func (t *Tools) SelectEraser() {
	t.mode = ModeEraser
	t.color = -1
}

// SetCustomColor deactivates every color swatch and paints with c.
func (t *Tools) SetCustomColor(c color.NRGBA) {
	t.mode = ModeCustom
	t.color = -1
	t.active = c
	t.custom = c
}

func (t *Tools) Mode() Mode { return t.mode }

// ActiveColor returns the remembered stroke color, even in erase mode.
func (t *Tools) ActiveColor() color.NRGBA { return t.active }

// CustomColor is the value the custom color input should display.
func (t *Tools) CustomColor() color.NRGBA { return t.custom }

func (t *Tools) ActiveWidth() float32 { return t.sizes[t.size] }

// ColorIndex returns the active color swatch, or -1.
func (t *Tools) ColorIndex() int { return t.color }

func (t *Tools) SizeIndex() int { return t.size }

func (t *Tools) ColorActive(i int) bool { return t.color == i && t.color >= 0 }

func (t *Tools) SizeActive(i int) bool { return t.size == i }

func (t *Tools) EraserActive() bool { return t.mode == ModeEraser }

// Style resolves the pen for the next segment.
func (t *Tools) Style() Style {
	if t.mode == ModeEraser {
		return Style{Color: eraseColor, Width: t.ActiveWidth(), Composite: DestinationOut}
	}
	return Style{Color: t.active, Width: t.ActiveWidth(), Composite: SourceOver}
}
