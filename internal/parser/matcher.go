package parser

import (
	"regexp"
)

// compile builds a case-insensitive, dot-matches-newline pattern. Every
// grammar pattern goes through here so the flags stay uniform.
func compile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)` + pattern)
}

// compileAnchor is compile for anchor phrases that may contain alternation.
func compileAnchor(pattern string) *regexp.Regexp {
	return compile(`(?:` + pattern + `)`)
}

// Find returns the given capture group of the first match of re in text,
// trimmed, or nil when there is no match or the capture is blank.
// Only the first match in document order is ever considered.
func Find(text string, re *regexp.Regexp, group int) *string {
	m := re.FindStringSubmatch(text)
	if m == nil || group >= len(m) {
		return nil
	}
	return trimmed(m[group])
}

// FindAfter is a two-stage lookup: locate anchor, then search for value in the
// text that follows it. Anchor occurrences are tried in document order and the
// first one whose tail yields a value wins. Value patterns that must sit
// directly after the anchor start with \A.
func FindAfter(text string, anchor, value *regexp.Regexp, group int) *string {
	for _, loc := range anchor.FindAllStringIndex(text, -1) {
		if v := Find(text[loc[1]:], value, group); v != nil {
			return v
		}
	}
	return nil
}
