package ui

import (
	"fmt"
	"log/slog"

	"SketchPad/internal/board"
	"SketchPad/internal/config"
	"SketchPad/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

const appID = "io.sketchpad.app"

// Mount builds the window content: the sketch board with the host view
// below it, wired so every save lands in the host.
func Mount(cfg config.Config, win fyne.Window, log *slog.Logger) (*SketchBoard, *HostView, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, nil, err
	}
	enc, err := export.ForFormat(cfg.Export.Format)
	if err != nil {
		return nil, nil, err
	}
	sb, err := NewSketchBoard(board.Options{
		Width:   cfg.Canvas.Width,
		Height:  cfg.Canvas.Height,
		Colors:  palette,
		Sizes:   cfg.Tools.Sizes,
		Encoder: enc,
		Logger:  log,
	}, win)
	if err != nil {
		return nil, nil, fmt.Errorf("mount board: %w", err)
	}
	host := NewHostView(log)
	sb.OnSave = host.Show
	return sb, host, nil
}

// RunApp opens the main window and blocks until it is closed.
func RunApp(cfg config.Config, log *slog.Logger) error {
	a := app.NewWithID(appID)
	w := a.NewWindow(cfg.Title)

	sb, host, err := Mount(cfg, w, log)
	if err != nil {
		return err
	}
	w.SetContent(container.NewVScroll(container.NewVBox(sb, host)))
	w.Resize(fyne.NewSize(float32(cfg.Canvas.Width)+32, float32(cfg.Canvas.Height)+160))
	w.ShowAndRun()
	return nil
}
