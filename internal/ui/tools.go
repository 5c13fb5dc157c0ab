package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const swatchSize = 32

// swatch is one clickable tool preset. It holds no selection logic: the
// owner sets active from the board's tool state and refreshes it.
type swatch struct {
	widget.BaseWidget
	content  fyne.CanvasObject
	dot      float32 // when set, content is a centered dot of this diameter
	active   bool
	OnTapped func()
}

func newColorSwatch(c color.Color, tapped func()) *swatch {
	s := &swatch{content: canvas.NewRectangle(c), OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

// newSizeSwatch draws a dot as wide as the stroke, capped to fit the swatch.
func newSizeSwatch(width float32, tapped func()) *swatch {
	s := &swatch{
		content:  canvas.NewCircle(color.Black),
		dot:      min(max(width, 2), swatchSize-8),
		OnTapped: tapped,
	}
	s.ExtendBaseWidget(s)
	return s
}

func (s *swatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

func (s *swatch) setActive(active bool) {
	if s.active == active {
		return
	}
	s.active = active
	s.Refresh()
}

func (s *swatch) CreateRenderer() fyne.WidgetRenderer {
	border := canvas.NewRectangle(color.Transparent)
	r := &swatchRenderer{s: s, border: border}
	r.Refresh()
	return r
}

type swatchRenderer struct {
	s      *swatch
	border *canvas.Rectangle
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	r.border.Resize(size)
	const pad = 4
	if r.s.dot > 0 {
		r.s.content.Resize(fyne.NewSize(r.s.dot, r.s.dot))
		r.s.content.Move(fyne.NewPos((size.Width-r.s.dot)/2, (size.Height-r.s.dot)/2))
		return
	}
	r.s.content.Resize(fyne.NewSize(size.Width-2*pad, size.Height-2*pad))
	r.s.content.Move(fyne.NewPos(pad, pad))
}

func (r *swatchRenderer) MinSize() fyne.Size { return fyne.NewSize(swatchSize, swatchSize) }

func (r *swatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.s.content, r.border}
}

func (r *swatchRenderer) Refresh() {
	if r.s.active {
		r.border.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.border.StrokeWidth = 3
	} else {
		r.border.StrokeColor = color.Gray{Y: 150}
		r.border.StrokeWidth = 1
	}
	r.border.Refresh()
	r.s.content.Refresh()
}

func (r *swatchRenderer) Destroy() {}
