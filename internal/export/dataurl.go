// Package export turns canvas snapshots into data URLs.
package export

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
)

var (
	ErrNotDataURL      = errors.New("not a base64 data URL")
	ErrUnsupportedMIME = errors.New("unsupported MIME type")
)

// DataURL encodes img with enc and wraps it as data:<mime>;base64,<payload>.
func DataURL(enc Encoder, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode %s: %w", enc.MIME(), err)
	}
	var sb strings.Builder
	sb.Grow(len("data:;base64,") + len(enc.MIME()) + base64.StdEncoding.EncodedLen(buf.Len()))
	sb.WriteString("data:")
	sb.WriteString(enc.MIME())
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(buf.Bytes()))
	return sb.String(), nil
}

// Decode splits a base64 data URL into its MIME type and payload.
func Decode(url string) (mime string, data []byte, err error) {
	rest, ok := strings.CutPrefix(url, "data:")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	mime, ok = strings.CutSuffix(header, ";base64")
	if !ok || mime == "" {
		return "", nil, ErrNotDataURL
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrNotDataURL, err)
	}
	return mime, data, nil
}

// DecodeImage decodes an image/png data URL.
func DecodeImage(url string) (image.Image, error) {
	mime, data, err := Decode(url)
	if err != nil {
		return nil, err
	}
	if mime != MIMEPNG {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMIME, mime)
	}
	return png.Decode(bytes.NewReader(data))
}
