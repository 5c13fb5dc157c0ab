// Package board is the drawing surface without any widgets: tool state,
// pointer trail, bitmap and export, driven by pointer and toolbar events.
package board

import (
	"fmt"
	"image/color"
	"log/slog"

	"SketchPad/internal/export"
	"SketchPad/internal/logging"
	"SketchPad/internal/raster"
	"SketchPad/internal/state"

	"github.com/google/uuid"
)

type Options struct {
	Width, Height int
	Colors        []color.NRGBA
	Sizes         []float32
	// Encoder defaults to PNG.
	Encoder export.Encoder
	Logger  *slog.Logger
}

// Board owns one canvas and everything that mutates it. Every method is
// meant to be called from the UI event goroutine; none are safe for
// concurrent use.
type Board struct {
	ID     string
	Tools  *state.Tools
	trail  state.Trail
	bitmap *raster.Bitmap
	enc    export.Encoder
	log    *slog.Logger

	// OnSave receives the data URL produced by Save.
	OnSave func(url string)
	// OnPaint fires after pixels change. Tool selection alone never fires it.
	OnPaint func()
}

func New(opts Options) (*Board, error) {
	tools, err := state.NewTools(opts.Colors, opts.Sizes)
	if err != nil {
		return nil, fmt.Errorf("tools: %w", err)
	}
	bm, err := raster.NewBitmap(opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	enc := opts.Encoder
	if enc == nil {
		enc = export.PNG{}
	}
	id := uuid.NewString()
	b := &Board{
		ID:     id,
		Tools:  tools,
		bitmap: bm,
		enc:    enc,
		log:    logging.Component(opts.Logger, "board").With("board", id),
	}
	b.log.Info("board mounted", "width", opts.Width, "height", opts.Height, "format", enc.MIME())
	return b, nil
}

func (b *Board) Width() int  { return b.bitmap.Width() }
func (b *Board) Height() int { return b.bitmap.Height() }

// Bitmap exposes the live canvas for rendering. The board keeps ownership.
func (b *Board) Bitmap() *raster.Bitmap { return b.bitmap }

func (b *Board) Drawing() bool { return b.trail.Drawing() }

// PointerDown starts a stroke at p without drawing.
func (b *Board) PointerDown(p state.Point) {
	b.trail.Down(p)
	b.log.Debug("pointer down", "x", p.X, "y", p.Y)
}

// PointerMove draws one straight segment from the trail anchor to p while a
// stroke is in progress, and only re-anchors otherwise. Samples are not
// interpolated, so fast motion leaves straight-segment gaps.
func (b *Board) PointerMove(p state.Point) bool {
	seg, ok := b.trail.Move(p)
	if !ok {
		return false
	}
	style := b.Tools.Style()
	area := b.bitmap.StrokeSegment(seg, style)
	b.log.Debug("segment", "from", seg.From, "to", seg.To, "width", style.Width, "op", style.Composite)
	if !area.Empty() {
		b.painted()
	}
	return true
}

// PointerUp ends the stroke.
func (b *Board) PointerUp(p state.Point) {
	b.trail.Up()
	b.log.Debug("pointer up", "x", p.X, "y", p.Y)
}

func (b *Board) SelectColor(i int) error {
	if err := b.Tools.SelectColor(i); err != nil {
		return err
	}
	b.log.Debug("color selected", "index", i, "color", state.FormatColor(b.Tools.ActiveColor()))
	return nil
}

func (b *Board) SelectSize(i int) error {
	if err := b.Tools.SelectSize(i); err != nil {
		return err
	}
	b.log.Debug("size selected", "index", i, "width", b.Tools.ActiveWidth())
	return nil
}

func (b *Board) SelectEraser() {
	b.Tools.SelectEraser()
	b.log.Debug("eraser selected")
}

func (b *Board) SetCustomColor(c color.NRGBA) {
	b.Tools.SetCustomColor(c)
	b.log.Debug("custom color", "color", state.FormatColor(c))
}

// Clear wipes the canvas. Tool selection is kept.
func (b *Board) Clear() {
	b.bitmap.Clear()
	b.log.Info("canvas cleared")
	b.painted()
}

// Save encodes the canvas, hands the data URL to OnSave once and returns
// it. The canvas is not modified. OnSave is not called when encoding fails.
func (b *Board) Save() (string, error) {
	url, err := export.DataURL(b.enc, b.bitmap.Snapshot())
	if err != nil {
		b.log.Error("save failed", "err", err)
		return "", fmt.Errorf("save: %w", err)
	}
	b.log.Info("canvas saved", "mime", b.enc.MIME(), "bytes", len(url))
	if b.OnSave != nil {
		b.OnSave(url)
	}
	return url, nil
}

func (b *Board) painted() {
	if b.OnPaint != nil {
		b.OnPaint()
	}
}
