package receipt

import "errors"

// ErrEngine wraps any failure of the underlying OCR capability. It aborts
// the whole extraction; no partial text is synthesized.
var ErrEngine = errors.New("ocr engine failure")
