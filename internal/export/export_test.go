package export

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.SetRGBA(1, 1, color.RGBA{R: 0xff, A: 0xff})
	return img
}

func TestPNGDataURLRoundTrip(t *testing.T) {
	url, err := DataURL(PNG{}, testImage(40, 30))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	img, err := DecodeImage(url)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())

	r, _, _, a := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = img.At(5, 5).RGBA()
	assert.Zero(t, a, "transparent pixels stay transparent")
}

func TestPDFEncoder(t *testing.T) {
	for _, dims := range [][2]int{{200, 100}, {100, 200}} {
		url, err := DataURL(PDF{}, testImage(dims[0], dims[1]))
		require.NoError(t, err)

		mime, data, err := Decode(url)
		require.NoError(t, err)
		assert.Equal(t, MIMEPDF, mime)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

		_, err = DecodeImage(url)
		assert.ErrorIs(t, err, ErrUnsupportedMIME)
	}
}

func TestForFormat(t *testing.T) {
	enc, err := ForFormat("")
	require.NoError(t, err)
	assert.Equal(t, MIMEPNG, enc.MIME())

	enc, err = ForFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, MIMEPDF, enc.MIME())

	_, err = ForFormat("gif")
	assert.ErrorIs(t, err, ErrUnsupportedMIME)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, url := range []string{
		"",
		"image/png;base64,AAAA",
		"data:image/png;base64",
		"data:image/png,AAAA",
		"data:;base64,AAAA",
		"data:image/png;base64,***",
	} {
		_, _, err := Decode(url)
		assert.ErrorIs(t, err, ErrNotDataURL, url)
	}
}
