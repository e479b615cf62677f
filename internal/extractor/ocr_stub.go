//go:build !ocr

package extractor

import "errors"

// ErrOCRNotEnabled is returned by the OCR fallback when the binary was built
// without the ocr tag. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// OCRAvailable reports whether OCR support is compiled in.
func OCRAvailable() bool {
	return false
}

func readWithOCR(string) ([]string, error) {
	return nil, ErrOCRNotEnabled
}
