// Package raster owns the pixel surface strokes are painted on.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"SketchPad/internal/state"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

var ErrBadSize = errors.New("canvas dimensions must be positive")

// Bitmap is a fixed-size premultiplied RGBA surface. A cleared bitmap is
// fully transparent. Not safe for concurrent use.
type Bitmap struct {
	img *image.RGBA
	ras *vector.Rasterizer
	// buf backs the coverage mask between segments.
	buf []uint8
}

func NewBitmap(width, height int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrBadSize)
	}
	return &Bitmap{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(1, 1),
	}, nil
}

func (b *Bitmap) Width() int  { return b.img.Rect.Dx() }
func (b *Bitmap) Height() int { return b.img.Rect.Dy() }

func (b *Bitmap) Bounds() image.Rectangle { return b.img.Rect }

// Image returns the live surface. Callers must not keep it across events;
// use Snapshot for that.
func (b *Bitmap) Image() *image.RGBA { return b.img }

// Snapshot copies the current pixels.
func (b *Bitmap) Snapshot() *image.RGBA {
	out := image.NewRGBA(b.img.Rect)
	copy(out.Pix, b.img.Pix)
	return out
}

// Clear wipes every pixel to transparent.
func (b *Bitmap) Clear() {
	clear(b.img.Pix)
}

// Empty reports whether no pixel carries any alpha.
func (b *Bitmap) Empty() bool {
	for i := 3; i < len(b.img.Pix); i += 4 {
		if b.img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// StrokeSegment draws seg as a round-capped line with the given style and
// returns the rectangle it touched.
func (b *Bitmap) StrokeSegment(seg state.Segment, style state.Style) image.Rectangle {
	if !(style.Width > 0) {
		return image.Rectangle{}
	}
	r := style.Width / 2
	area := segmentBounds(seg, r).Intersect(b.img.Rect)
	if area.Empty() {
		return image.Rectangle{}
	}

	mask := b.coverage(seg, r, area)
	switch style.Composite {
	case state.DestinationOut:
		destinationOut(b.img, area, mask)
	default:
		draw.DrawMask(b.img, area, image.NewUniform(style.Color), image.Point{}, mask, image.Point{}, draw.Over)
	}
	return area
}

// coverage rasterizes the capsule around seg into an alpha mask whose
// origin is area.Min.
func (b *Bitmap) coverage(seg state.Segment, r float32, area image.Rectangle) *image.Alpha {
	w, h := area.Dx(), area.Dy()
	if cap(b.buf) < w*h {
		b.buf = make([]uint8, w*h)
	}
	// The rasterizer writes rows packed at width w, so the mask stride must
	// be exactly w. draw.Src overwrites every pixel.
	mask := &image.Alpha{Pix: b.buf[:w*h], Stride: w, Rect: image.Rect(0, 0, w, h)}

	ox, oy := float32(area.Min.X), float32(area.Min.Y)
	pts := capsule(seg, r)
	b.ras.Reset(w, h)
	b.ras.DrawOp = draw.Src
	b.ras.MoveTo(pts[0].X-ox, pts[0].Y-oy)
	for _, p := range pts[1:] {
		b.ras.LineTo(p.X-ox, p.Y-oy)
	}
	b.ras.ClosePath()
	b.ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// destinationOut scales every pixel in area by the inverse of the mask
// coverage, so fully covered pixels become transparent.
func destinationOut(dst *image.RGBA, area image.Rectangle, mask *image.Alpha) {
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			m := uint32(mask.AlphaAt(x-area.Min.X, y-area.Min.Y).A)
			if m == 0 {
				continue
			}
			keep := 0xff - m
			i := dst.PixOffset(x, y)
			px := dst.Pix[i : i+4 : i+4]
			for c := range px {
				px[c] = uint8((uint32(px[c])*keep + 0x7f) / 0xff)
			}
		}
	}
}

func segmentBounds(seg state.Segment, r float32) image.Rectangle {
	minX := math32.Min(seg.From.X, seg.To.X) - r - 1
	minY := math32.Min(seg.From.Y, seg.To.Y) - r - 1
	maxX := math32.Max(seg.From.X, seg.To.X) + r + 1
	maxY := math32.Max(seg.From.Y, seg.To.Y) + r + 1
	return image.Rect(
		int(math32.Floor(minX)), int(math32.Floor(minY)),
		int(math32.Ceil(maxX)), int(math32.Ceil(maxY)),
	)
}

// capsule outlines a segment of radius r with round caps at both ends. A
// zero-length segment yields a dot.
func capsule(seg state.Segment, r float32) []state.Point {
	dx, dy := seg.To.X-seg.From.X, seg.To.Y-seg.From.Y
	angle := float32(0)
	if dx != 0 || dy != 0 {
		angle = math32.Atan2(dy, dx)
	}

	steps := int(math32.Ceil(r * math32.Pi / 2))
	steps = min(max(steps, 8), 64)

	pts := make([]state.Point, 0, 2*(steps+1))
	// Cap around To sweeps from the left normal to the right normal, then
	// the cap around From closes the loop.
	for i := 0; i <= steps; i++ {
		a := angle - math32.Pi/2 + math32.Pi*float32(i)/float32(steps)
		pts = append(pts, state.Point{X: seg.To.X + r*math32.Cos(a), Y: seg.To.Y + r*math32.Sin(a)})
	}
	for i := 0; i <= steps; i++ {
		a := angle + math32.Pi/2 + math32.Pi*float32(i)/float32(steps)
		pts = append(pts, state.Point{X: seg.From.X + r*math32.Cos(a), Y: seg.From.Y + r*math32.Sin(a)})
	}
	return pts
}

// At returns the premultiplied pixel at (x, y).
func (b *Bitmap) At(x, y int) color.RGBA { return b.img.RGBAAt(x, y) }
