package receipt

import (
	"image"
)

// Payment mode values. The upstream expense tracker stores these verbatim.
const (
	ModeCash = "Cash"
	ModeUPI  = "UPI"
	ModeCard = "Card"
)

// Fields is the result of one receipt extraction. Optional fields are nil
// when no qualifying candidate was found in the recognized text; Mode is
// always populated.
type Fields struct {
	Place   *string  `json:"place"`
	Date    *string  `json:"date"`
	Price   *float64 `json:"price"`
	Mode    string   `json:"mode"`
	RawText string   `json:"rawText"`
}

// Extractor runs the receipt pipeline against a configured OCR engine.
// It is stateless across invocations and safe for concurrent use.
type Extractor struct {
	engine Engine
}

func NewExtractor(engine Engine) *Extractor {
	return &Extractor{engine: engine}
}

// ExtractFields performs preprocessing, two-pass recognition and the four
// field heuristics on a decoded receipt image. A field miss is a nil value,
// never an error; only engine-level failures abort.
func (e *Extractor) ExtractFields(img image.Image) (Fields, error) {
	raw, err := e.recognizeTwoPass(img)
	if err != nil {
		return Fields{}, err
	}
	return Fields{
		Place:   ExtractPlace(raw),
		Date:    ExtractDate(raw),
		Price:   ExtractPrice(raw),
		Mode:    ExtractMode(raw),
		RawText: raw,
	}, nil
}
