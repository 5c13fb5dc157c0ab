package ui

import (
	"fmt"
	"log/slog"

	"SketchPad/internal/export"
	"SketchPad/internal/logging"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// HostView holds the most recent export and shows it below the board. It
// renders nothing until the first save and keeps no history.
type HostView struct {
	widget.BaseWidget
	url   string
	image *canvas.Image
	info  *widget.Label
	log   *slog.Logger
}

func NewHostView(log *slog.Logger) *HostView {
	h := &HostView{
		image: &canvas.Image{FillMode: canvas.ImageFillContain},
		info:  widget.NewLabel(""),
		log:   logging.Component(log, "host"),
	}
	h.image.Hide()
	h.info.Hide()
	h.ExtendBaseWidget(h)
	return h
}

// URL returns the held export, or "" before the first save.
func (h *HostView) URL() string { return h.url }

// Show replaces the held export. PNG exports are displayed as an image,
// anything else as a one-line summary.
func (h *HostView) Show(url string) {
	h.url = url
	img, err := export.DecodeImage(url)
	if err == nil {
		b := img.Bounds()
		h.image.Image = img
		h.image.SetMinSize(fyne.NewSize(float32(b.Dx())/2, float32(b.Dy())/2))
		h.image.Show()
		h.image.Refresh()
		h.info.Hide()
		return
	}

	h.image.Hide()
	mime, data, derr := export.Decode(url)
	if derr != nil {
		h.log.Error("export not displayable", "err", derr)
		h.info.SetText("Export could not be read")
	} else {
		h.info.SetText(fmt.Sprintf("Exported %s, %d bytes", mime, len(data)))
	}
	h.info.Show()
}

func (h *HostView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(h.info, h.image))
}
