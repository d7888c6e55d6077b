package imgio

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	var buf bytes.Buffer
	img := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	img, err := Decode(pngBytes(t, 24, 16), "image/png")
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("definitely not an image"), "image/png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestDecodeCorruptPDF(t *testing.T) {
	_, err := Decode([]byte("%PDF-1.4 truncated"), "application/pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestDecodeEmptyInput(t *testing.T) {
	_, err := Decode(nil, "image/jpeg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}
