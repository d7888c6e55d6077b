package receipt

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Engine is the OCR capability consumed by the pipeline. Recognize returns
// the recognized text for one image variant; Version reports the underlying
// engine version for health checks without mutating any process state.
type Engine interface {
	Recognize(img image.Image) (string, error)
	Version() string
}

// Tesseract recognizes whole-page text assuming a single uniform block
// (psm 6), the layout mode that performs best on receipts' dense short
// lines. The engine mode stays at the Tesseract default.
type Tesseract struct {
	tessdataPrefix string
}

func NewTesseract(tessdataPrefix string) *Tesseract {
	return &Tesseract{tessdataPrefix: tessdataPrefix}
}

func (t *Tesseract) Recognize(img image.Image) (string, error) {
	tmpFile, err := os.CreateTemp("", "receipt-*.png")
	if err != nil {
		return "", fmt.Errorf("%w: temp file: %v", ErrEngine, err)
	}
	tmp := tmpFile.Name()
	_ = tmpFile.Close()
	defer os.Remove(tmp)
	if err := imaging.Save(img, tmp); err != nil {
		return "", fmt.Errorf("%w: save variant: %v", ErrEngine, err)
	}

	client := gosseract.NewClient()
	defer client.Close()
	if t.tessdataPrefix != "" {
		_ = client.SetTessdataPrefix(t.tessdataPrefix)
	}
	if err := client.SetLanguage("eng"); err != nil {
		return "", fmt.Errorf("%w: set language: %v", ErrEngine, err)
	}
	_ = client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK)
	if err := client.SetImage(tmp); err != nil {
		return "", fmt.Errorf("%w: set image: %v", ErrEngine, err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEngine, err)
	}
	return text, nil
}

func (t *Tesseract) Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}
