package extractor

import (
	"regexp"
	"strings"
)

// Tesseract tends to read the decimal point in amounts as a semicolon or a
// colon: "1,234; 56" or "1,234:56". Colons are only repaired in amounts with
// a thousands separator so times like "10:30" survive.
var (
	ocrSemicolonPoint = regexp.MustCompile(`(\d);\s*(\d{2})\b`)
	ocrColonPoint     = regexp.MustCompile(`(\d,\d{3}):(\d{2})\b`)
	ocrTrailingColon  = regexp.MustCompile(`(\.\d{2}):(\s|$)`)
)

// repairOCRText fixes misread decimal points line by line so OCR output
// matches the amount shape the transaction scanner expects.
func repairOCRText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = repairOCRLine(line)
	}
	return strings.Join(lines, "\n")
}

func repairOCRLine(line string) string {
	line = ocrSemicolonPoint.ReplaceAllString(line, "$1.$2")
	line = ocrColonPoint.ReplaceAllString(line, "$1.$2")
	line = ocrTrailingColon.ReplaceAllString(line, "$1$2")
	return line
}
