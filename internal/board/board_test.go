package board

import (
	"errors"
	"image"
	"image/color"
	"io"
	"testing"

	"SketchPad/internal/export"
	"SketchPad/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var palette = []color.NRGBA{
	{A: 0xff},
	{R: 0xff, A: 0xff},
	{B: 0xff, A: 0xff},
}

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b, err := New(Options{Width: 120, Height: 80, Colors: palette, Sizes: []float32{4, 8, 12}})
	require.NoError(t, err)
	return b
}

func stroke(b *Board, pts ...state.Point) {
	b.PointerDown(pts[0])
	for _, p := range pts[1:] {
		b.PointerMove(p)
	}
	b.PointerUp(pts[len(pts)-1])
}

func TestNewRejectsBadInit(t *testing.T) {
	_, err := New(Options{Width: 10, Height: 10, Sizes: []float32{1}})
	assert.ErrorIs(t, err, state.ErrEmptyPalette)

	_, err = New(Options{Width: 0, Height: 10, Colors: palette, Sizes: []float32{1}})
	assert.Error(t, err)
}

func TestBoardsAreIndependent(t *testing.T) {
	a, b := newTestBoard(t), newTestBoard(t)
	assert.NotEqual(t, a.ID, b.ID)

	require.NoError(t, a.SelectColor(2))
	a.PointerDown(state.Point{X: 10, Y: 10})

	assert.True(t, b.Tools.ColorActive(0))
	assert.False(t, b.Drawing())
	assert.False(t, b.PointerMove(state.Point{X: 20, Y: 20}))
}

func TestMoveWithoutDownDrawsNothing(t *testing.T) {
	b := newTestBoard(t)

	assert.False(t, b.PointerMove(state.Point{X: 10, Y: 10}))
	assert.False(t, b.PointerMove(state.Point{X: 60, Y: 40}))
	assert.True(t, b.Bitmap().Empty())
}

func TestDownThenMoveDrawsSegment(t *testing.T) {
	b := newTestBoard(t)
	paints := 0
	b.OnPaint = func() { paints++ }

	b.PointerDown(state.Point{X: 10, Y: 40})
	assert.True(t, b.Bitmap().Empty(), "pointer down alone draws nothing")
	assert.True(t, b.PointerMove(state.Point{X: 100, Y: 40}))

	assert.Equal(t, color.RGBA{A: 0xff}, b.Bitmap().At(55, 40))
	assert.Equal(t, 1, paints)

	b.PointerUp(state.Point{X: 100, Y: 40})
	assert.False(t, b.PointerMove(state.Point{X: 100, Y: 70}))
	assert.Zero(t, b.Bitmap().At(100, 70).A)
}

func TestStrokeUsesSelectedColorAndSize(t *testing.T) {
	b := newTestBoard(t)
	require.NoError(t, b.SelectColor(1))
	require.NoError(t, b.SelectSize(2))

	stroke(b, state.Point{X: 20, Y: 40}, state.Point{X: 100, Y: 40})

	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, b.Bitmap().At(60, 44), "width 12 reaches 4px off the line")
	assert.Zero(t, b.Bitmap().At(60, 48).A)
}

func TestCustomColorStrokes(t *testing.T) {
	b := newTestBoard(t)
	b.SetCustomColor(color.NRGBA{G: 0xff, A: 0xff})

	stroke(b, state.Point{X: 20, Y: 20}, state.Point{X: 80, Y: 20})

	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, b.Bitmap().At(50, 20))
	assert.Equal(t, -1, b.Tools.ColorIndex())
}

func TestEraserRemovesThenColorResumes(t *testing.T) {
	b := newTestBoard(t)
	stroke(b, state.Point{X: 10, Y: 40}, state.Point{X: 110, Y: 40})

	b.SelectEraser()
	stroke(b, state.Point{X: 60, Y: 20}, state.Point{X: 60, Y: 60})
	assert.Zero(t, b.Bitmap().At(60, 40).A)
	assert.Equal(t, uint8(0xff), b.Bitmap().At(20, 40).A)

	require.NoError(t, b.SelectColor(0))
	assert.False(t, b.Tools.EraserActive())
	stroke(b, state.Point{X: 60, Y: 30}, state.Point{X: 60, Y: 50})
	assert.Equal(t, uint8(0xff), b.Bitmap().At(60, 40).A)
}

func TestVerticalAndDiagonalSegments(t *testing.T) {
	b := newTestBoard(t)
	require.NoError(t, b.SelectSize(1))

	stroke(b, state.Point{X: 60, Y: 10}, state.Point{X: 60, Y: 70})
	for y := 15; y <= 65; y += 10 {
		assert.Equal(t, color.RGBA{A: 0xff}, b.Bitmap().At(60, y), "vertical y=%d", y)
	}
	assert.Zero(t, b.Bitmap().At(70, 40).A)

	stroke(b, state.Point{X: 10, Y: 10}, state.Point{X: 50, Y: 50})
	for d := 15; d <= 45; d += 10 {
		assert.Equal(t, color.RGBA{A: 0xff}, b.Bitmap().At(d, d), "diagonal %d", d)
	}
	assert.Zero(t, b.Bitmap().At(40, 20).A)
}

func TestToolChangesDoNotRepaint(t *testing.T) {
	b := newTestBoard(t)
	paints := 0
	b.OnPaint = func() { paints++ }

	require.NoError(t, b.SelectColor(2))
	require.NoError(t, b.SelectSize(1))
	b.SelectEraser()
	b.SetCustomColor(color.NRGBA{G: 0x80, A: 0xff})
	assert.Zero(t, paints)

	stroke(b, state.Point{X: 10, Y: 10}, state.Point{X: 30, Y: 10})
	assert.Equal(t, 1, paints)
	b.Clear()
	assert.Equal(t, 2, paints)
}

func TestClearThenSaveMatchesFreshCanvas(t *testing.T) {
	fresh := newTestBoard(t)
	want, err := fresh.Save()
	require.NoError(t, err)

	b := newTestBoard(t)
	require.NoError(t, b.SelectSize(1))
	stroke(b, state.Point{X: 5, Y: 5}, state.Point{X: 90, Y: 70}, state.Point{X: 30, Y: 60})
	b.Clear()

	got, err := b.Save()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, b.Tools.SizeActive(1), "clear keeps tool selection")
}

func TestSaveEmitsOncePerCall(t *testing.T) {
	b := newTestBoard(t)
	var got []string
	b.OnSave = func(url string) { got = append(got, url) }
	stroke(b, state.Point{X: 5, Y: 5}, state.Point{X: 50, Y: 50})

	url, err := b.Save()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, url, got[0])

	img, err := export.DecodeImage(url)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 120, 80), img.Bounds())
	assert.False(t, b.Bitmap().Empty(), "save does not clear")

	_, err = b.Save()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

type failingEncoder struct{}

func (failingEncoder) MIME() string { return "image/x-broken" }
func (failingEncoder) Encode(io.Writer, image.Image) error { return errors.New("disk on fire") }

func TestSaveFailureSkipsCallback(t *testing.T) {
	b, err := New(Options{Width: 8, Height: 8, Colors: palette, Sizes: []float32{1}, Encoder: failingEncoder{}})
	require.NoError(t, err)
	called := false
	b.OnSave = func(string) { called = true }

	_, err = b.Save()
	assert.Error(t, err)
	assert.False(t, called)
}
