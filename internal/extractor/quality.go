package extractor

import (
	"strings"
	"unicode"
)

const (
	minTextLen     = 50
	minTextQuality = 0.6
)

// statementWords appear on virtually every card statement. Text containing
// none of them is almost certainly undecoded font garbage.
var statementWords = []string{
	"card", "statement", "payment", "due", "amount", "total", "credit",
	"transaction", "date", "balance", "limit", "minimum", "period",
	"account", "bank", "reward",
}

// quality returns the share of runes that are plain ASCII text, whitespace,
// common punctuation or a currency symbol. Identity-encoded fonts decode to
// accented letters and control runes, so unicode.IsLetter is too lenient.
func quality(pages []string) float64 {
	total, readable := 0, 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if isPlainRune(r) {
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

func isPlainRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case unicode.IsSpace(r):
		return true
	}
	return strings.ContainsRune(".,-/:;()'\"%&@#!?+=*_[]|<>", r) ||
		strings.ContainsRune("₹$£€", r)
}

func hasStatementWords(pages []string) bool {
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, w := range statementWords {
		if strings.Contains(combined, w) {
			return true
		}
	}
	return false
}

// IsReadable reports whether pages look like real statement text: long
// enough, mostly plain characters, and using statement vocabulary.
func IsReadable(pages []string) bool {
	if totalTextLen(pages) <= minTextLen {
		return false
	}
	if quality(pages) <= minTextQuality {
		return false
	}
	return hasStatementWords(pages)
}

func totalTextLen(pages []string) int {
	n := 0
	for _, p := range pages {
		n += len(strings.TrimSpace(p))
	}
	return n
}
