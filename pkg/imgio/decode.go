package imgio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ErrDecode marks input bytes that cannot be interpreted as a supported,
// well-formed image. Surfaced to callers as a client-input failure.
var ErrDecode = errors.New("cannot decode image")

// Decode turns uploaded bytes into a raster image. PDFs are rendered via
// MuPDF, first page only, since receipts are single-page documents; PNG and
// JPEG go through the stdlib decoders.
func Decode(data []byte, contentType string) (image.Image, error) {
	if strings.Contains(strings.ToLower(contentType), "pdf") {
		return decodePDF(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

func decodePDF(data []byte) (image.Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: open pdf: %v", ErrDecode, err)
	}
	defer doc.Close()
	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("%w: render pdf page: %v", ErrDecode, err)
	}
	return img, nil
}
