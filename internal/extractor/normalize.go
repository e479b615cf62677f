package extractor

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize applies NFKC so ligatures, full-width digits and no-break spaces
// reach the grammars as plain characters, and unifies line endings.
func Normalize(text string) string {
	return lineEndings.Replace(norm.NFKC.String(text))
}
