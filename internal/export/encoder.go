package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	MIMEPNG = "image/png"
	MIMEPDF = "application/pdf"
)

// Encoder serializes a snapshot in one format.
type Encoder interface {
	MIME() string
	Encode(w io.Writer, img image.Image) error
}

// ForFormat returns the encoder registered under name ("png" or "pdf").
func ForFormat(name string) (Encoder, error) {
	switch name {
	case "", "png":
		return PNG{}, nil
	case "pdf":
		return PDF{}, nil
	default:
		return nil, fmt.Errorf("%w: format %q", ErrUnsupportedMIME, name)
	}
}

// PNG is the default encoder.
type PNG struct{}

func (PNG) MIME() string { return MIMEPNG }

func (PNG) Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}

// PDF places the PNG rendering of the snapshot on a single page sized to
// the canvas, one point per pixel.
type PDF struct{}

func (PDF) MIME() string { return MIMEPDF }

func (PDF) Encode(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := (PNG{}).Encode(&buf, img); err != nil {
		return err
	}

	b := img.Bounds()
	wd, ht := float64(b.Dx()), float64(b.Dy())
	orientation := "P"
	if wd > ht {
		orientation = "L"
	}
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: min(wd, ht), Ht: max(wd, ht)},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("sketch", opt, &buf)
	p.ImageOptions("sketch", 0, 0, wd, ht, false, opt, 0, "")
	if err := p.Error(); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return p.Output(w)
}
