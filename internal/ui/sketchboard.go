package ui

import (
	"fmt"
	"image/color"
	"log/slog"

	"SketchPad/internal/board"
	"SketchPad/internal/logging"
	"SketchPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SketchBoard is the drawing surface: toolbar, canvas and status line
// around one board. Swatch highlighting is derived from the board's tool
// state on every change.
type SketchBoard struct {
	widget.BaseWidget
	Board *board.Board
	// OnSave receives every exported data URL.
	OnSave func(url string)

	canvas  *CanvasWidget
	colors  []*swatch
	sizes   []*swatch
	custom  *widget.Entry
	picker  *widget.Button
	eraser  *widget.Button
	clear   *widget.Button
	save    *widget.Button
	status  *widget.Label
	win     fyne.Window
	syncing bool
	log     *slog.Logger
}

// NewSketchBoard mounts a board. win parents the color picker dialog and
// may be nil, in which case the picker button is disabled.
func NewSketchBoard(opts board.Options, win fyne.Window) (*SketchBoard, error) {
	b, err := board.New(opts)
	if err != nil {
		return nil, err
	}
	sb := &SketchBoard{
		Board:  b,
		canvas: NewCanvasWidget(b),
		status: widget.NewLabel("Ready"),
		win:    win,
		log:    logging.Component(opts.Logger, "ui").With("board", b.ID),
	}

	for i, c := range b.Tools.Colors() {
		sb.colors = append(sb.colors, newColorSwatch(c, func() { sb.selectColor(i) }))
	}
	for i, w := range b.Tools.Sizes() {
		sb.sizes = append(sb.sizes, newSizeSwatch(w, func() { sb.selectSize(i) }))
	}

	sb.custom = widget.NewEntry()
	sb.custom.SetPlaceHolder("#rrggbb")
	sb.custom.OnChanged = sb.customColorChanged
	sb.picker = widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), sb.showPicker)
	if win == nil {
		sb.picker.Disable()
	}
	sb.eraser = widget.NewButton("Erase", sb.selectEraser)
	sb.clear = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), sb.clearCanvas)
	sb.save = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), sb.saveCanvas)
	sb.save.Importance = widget.HighImportance

	b.OnPaint = sb.canvas.Refresh
	b.OnSave = func(url string) {
		if sb.OnSave != nil {
			sb.OnSave(url)
		}
	}

	sb.ExtendBaseWidget(sb)
	sb.refreshTools()
	return sb, nil
}

func (sb *SketchBoard) CreateRenderer() fyne.WidgetRenderer {
	colorBox := container.NewHBox()
	for _, s := range sb.colors {
		colorBox.Add(s)
	}
	sizeBox := container.NewHBox()
	for _, s := range sb.sizes {
		sizeBox.Add(s)
	}
	customBox := container.NewHBox(
		widget.NewLabel("Custom Color:"),
		container.New(layout.NewGridWrapLayout(fyne.NewSize(110, 36)), sb.custom),
		sb.picker,
	)
	toolbar := container.NewHBox(
		colorBox,
		customBox,
		widget.NewSeparator(),
		sizeBox,
		widget.NewSeparator(),
		sb.eraser,
		sb.clear,
		sb.save,
		layout.NewSpacer(),
	)
	// Centering keeps the canvas at its bitmap size so pointer positions map
	// 1:1 onto pixels.
	return widget.NewSimpleRenderer(container.NewBorder(toolbar, sb.status, nil, nil, container.NewCenter(sb.canvas)))
}

// refreshTools re-derives every swatch, the eraser highlight and the custom
// color input from the tool state.
func (sb *SketchBoard) refreshTools() {
	tools := sb.Board.Tools
	for i, s := range sb.colors {
		s.setActive(tools.ColorActive(i))
	}
	for i, s := range sb.sizes {
		s.setActive(tools.SizeActive(i))
	}

	importance := widget.MediumImportance
	if tools.EraserActive() {
		importance = widget.HighImportance
	}
	if sb.eraser.Importance != importance {
		sb.eraser.Importance = importance
		sb.eraser.Refresh()
	}

	// Only swatch clicks push a value into the input; while the user types a
	// custom color the text is left alone.
	if tools.Mode() == state.ModeColor {
		sb.setCustomText(state.FormatColor(tools.CustomColor()))
	}
}

func (sb *SketchBoard) setCustomText(text string) {
	if sb.custom.Text == text {
		return
	}
	sb.syncing = true
	sb.custom.SetText(text)
	sb.syncing = false
}

func (sb *SketchBoard) selectColor(i int) {
	if err := sb.Board.SelectColor(i); err != nil {
		sb.log.Error("select color", "err", err)
		return
	}
	sb.refreshTools()
}

func (sb *SketchBoard) selectSize(i int) {
	if err := sb.Board.SelectSize(i); err != nil {
		sb.log.Error("select size", "err", err)
		return
	}
	sb.refreshTools()
}

func (sb *SketchBoard) selectEraser() {
	sb.Board.SelectEraser()
	sb.refreshTools()
}

// customColorChanged applies the input text once it parses; partial input
// is ignored.
func (sb *SketchBoard) customColorChanged(text string) {
	if sb.syncing {
		return
	}
	c, err := state.ParseColor(text)
	if err != nil {
		return
	}
	sb.setCustomColor(c)
}

func (sb *SketchBoard) setCustomColor(c color.NRGBA) {
	sb.Board.SetCustomColor(c)
	sb.refreshTools()
}

func (sb *SketchBoard) showPicker() {
	if sb.win == nil {
		return
	}
	picker := dialog.NewColorPicker("Custom Color", "Pick a stroke color", func(c color.Color) {
		nc := state.ToNRGBA(c)
		sb.setCustomText(state.FormatColor(nc))
		sb.setCustomColor(nc)
	}, sb.win)
	picker.Advanced = true
	picker.Show()
}

func (sb *SketchBoard) clearCanvas() {
	sb.Board.Clear()
	sb.SetStatus("Cleared")
}

func (sb *SketchBoard) saveCanvas() {
	url, err := sb.Board.Save()
	if err != nil {
		sb.SetStatus(fmt.Sprintf("Save failed: %v", err))
		return
	}
	sb.SetStatus(fmt.Sprintf("Saved %dx%d (%d bytes)", sb.Board.Width(), sb.Board.Height(), len(url)))
}

func (sb *SketchBoard) SetStatus(text string) {
	sb.status.SetText(text)
}
