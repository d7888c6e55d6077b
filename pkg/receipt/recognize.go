package receipt

import (
	"image"
	"log"
	"strings"
	"sync"
)

// recognizeTwoPass OCRs the binarized and grayscale variants with identical
// parameters and joins binarized-pass text before grayscale-pass text. The
// concatenation is deliberately redundant rather than deduplicated: the
// extractors tolerate duplicate lines, and a total visible in only one
// variant must not be lost. The passes are independent and run concurrently;
// only the assembly order is fixed.
func (e *Extractor) recognizeTwoPass(img image.Image) (string, error) {
	binary, gray := preprocess(img)

	variants := []image.Image{binary, gray}
	texts := make([]string, len(variants))
	errs := make([]error, len(variants))
	var wg sync.WaitGroup
	for i, v := range variants {
		wg.Add(1)
		go func(i int, v image.Image) {
			defer wg.Done()
			texts[i], errs[i] = e.engine.Recognize(v)
		}(i, v)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return "", err
		}
	}

	combined := strings.TrimSpace(texts[0] + "\n" + texts[1])
	log.Printf("OCR two-pass binary=%d gray=%d combined snippet=%q", len(texts[0]), len(texts[1]), snippet(combined, 140))
	return combined, nil
}
