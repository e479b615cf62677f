package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/insightdelivered/card-statement-parser/internal/models"
)

// ErrUnsupportedIssuer is matched by every UnsupportedIssuerError.
var ErrUnsupportedIssuer = errors.New("unsupported issuer")

// UnsupportedIssuerError is returned when a statement cannot be attributed to
// a supported issuer, or when an explicit issuer has no grammar.
type UnsupportedIssuerError struct {
	// Issuer is set when the caller asked for a specific issuer.
	Issuer models.Issuer
}

func (e *UnsupportedIssuerError) Error() string {
	if e.Issuer != "" {
		return fmt.Sprintf("No parser available for issuer %q. Supported issuers: %s", e.Issuer, supportedList())
	}
	return "Unable to detect credit card issuer. Supported issuers: " + supportedList()
}

func (e *UnsupportedIssuerError) Unwrap() error {
	return ErrUnsupportedIssuer
}

func supportedList() string {
	names := make([]string, len(models.SupportedIssuers))
	for i, iss := range models.SupportedIssuers {
		names[i] = iss.DisplayName()
	}
	return strings.Join(names, ", ")
}

// signature ties a bank-name phrase to the issuer it identifies.
// Phrases are upper case with single spaces between words.
type signature struct {
	phrase string
	issuer models.Issuer
}

// signatures are listed in detection priority order. A co-branded statement
// may carry several bank names; the earliest issuer in this list wins.
var signatures = []signature{
	{"HDFC BANK", models.IssuerHDFC},
	{"ICICI BANK", models.IssuerICICI},
	{"AXIS BANK", models.IssuerAxis},
	{"CHASE BANK", models.IssuerChase},
	{"JPMORGAN CHASE", models.IssuerChase},
	{"IDFC FIRST BANK", models.IssuerIDFC},
	{"IDFC BANK", models.IssuerIDFC},
}

var signaturePhrases = func() []string {
	out := make([]string, len(signatures))
	for i, s := range signatures {
		out[i] = s.phrase
	}
	return out
}()

// foldText upper-cases text and collapses every whitespace run to one space,
// so "HDFC\n  Bank" and "HDFC BANK" look the same to the signature matcher.
func foldText(text string) string {
	return strings.Join(strings.Fields(strings.ToUpper(text)), " ")
}

// Candidates returns every issuer whose signature appears in text, in
// detection priority order. It is empty when nothing matches.
func Candidates(text string) []models.Issuer {
	// The matcher keeps per-match state, so one is built per call.
	m := ahocorasick.NewStringMatcher(signaturePhrases)
	hits := make(map[models.Issuer]bool)
	for _, idx := range m.Match([]byte(foldText(text))) {
		hits[signatures[idx].issuer] = true
	}

	var out []models.Issuer
	for _, iss := range models.SupportedIssuers {
		if hits[iss] {
			out = append(out, iss)
		}
	}
	return out
}

// Detect classifies text into a single issuer using the fixed priority order.
func Detect(text string) (models.Issuer, error) {
	found := Candidates(text)
	if len(found) == 0 {
		return "", &UnsupportedIssuerError{}
	}
	return found[0], nil
}
