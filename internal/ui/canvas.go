package ui

import (
	"image"
	"image/color"

	"SketchPad/internal/board"
	"SketchPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// CanvasWidget shows a board's bitmap over a white sheet and feeds pointer
// events to it. One widget unit maps to one bitmap pixel; the size is fixed
// when the widget is created.
type CanvasWidget struct {
	widget.BaseWidget
	board  *board.Board
	raster *canvas.Raster
	last   state.Point
}

var _ fyne.Widget = (*CanvasWidget)(nil)
var _ fyne.Draggable = (*CanvasWidget)(nil)
var _ desktop.Mouseable = (*CanvasWidget)(nil)
var _ desktop.Hoverable = (*CanvasWidget)(nil)

func NewCanvasWidget(b *board.Board) *CanvasWidget {
	c := &CanvasWidget{board: b}
	c.raster = canvas.NewRaster(func(w, h int) image.Image {
		return c.board.Bitmap().Image()
	})
	c.ExtendBaseWidget(c)
	return c
}

func (c *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	sheet := canvas.NewRectangle(color.White)
	sheet.SetMinSize(fyne.NewSize(float32(c.board.Width()), float32(c.board.Height())))
	return widget.NewSimpleRenderer(container.NewStack(sheet, c.raster))
}

// Refresh regenerates the raster from the bitmap.
func (c *CanvasWidget) Refresh() {
	c.raster.Refresh()
	c.BaseWidget.Refresh()
}

func toPoint(p fyne.Position) state.Point { return state.Point{X: p.X, Y: p.Y} }

func (c *CanvasWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.last = toPoint(e.Position)
	c.board.PointerDown(c.last)
}

func (c *CanvasWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.last = toPoint(e.Position)
	c.board.PointerUp(c.last)
}

// Dragged carries pointer motion while the button is held.
func (c *CanvasWidget) Dragged(e *fyne.DragEvent) {
	c.last = toPoint(e.Position)
	c.board.PointerMove(c.last)
}

func (c *CanvasWidget) DragEnd() {
	if c.board.Drawing() {
		c.board.PointerUp(c.last)
	}
}

// MouseMoved keeps the trail anchored to the cursor between strokes.
func (c *CanvasWidget) MouseMoved(e *desktop.MouseEvent) {
	c.last = toPoint(e.Position)
	c.board.PointerMove(c.last)
}

func (c *CanvasWidget) MouseIn(*desktop.MouseEvent) {}
func (c *CanvasWidget) MouseOut() {}
