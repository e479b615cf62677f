package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/card-statement-parser/internal/models"
)

// Field names a statement field a grammar extracts. The values match the
// JSON keys of models.Statement.
type Field string

const (
	FieldCardLast4      Field = "card_last_4_digits"
	FieldBillingPeriod  Field = "billing_period"
	FieldPaymentDueDate Field = "payment_due_date"
	FieldTotalAmountDue Field = "total_amount_due"
	FieldTransactions   Field = "transactions"
)

// fieldOrder is the order the assembler runs extractors in.
var fieldOrder = []Field{FieldCardLast4, FieldBillingPeriod, FieldPaymentDueDate, FieldTotalAmountDue}

// Common tokens shared by several grammars.
const (
	dmyDate    = `\d{1,2}/\d{1,2}/\d{4}`
	dmyRange   = dmyDate + `\s*-\s*` + dmyDate
	txnAmount  = `-?\d{1,3}(?:,\d{3})*\.\d{2}`
	txnDesc    = `[a-z][a-z0-9 ,.&/-]*?`
	crDrMarker = `(?:[ \t]*(cr|dr)\b)?`
)

// Rule is one extraction step: find Anchor, then capture group Group of Value
// in the text after it, then post-process the capture. Several rules for the
// same field form a fallback chain tried in declaration order.
type Rule struct {
	Field  Field
	Anchor *regexp.Regexp
	Value  *regexp.Regexp
	Group  int
	Post   func(string) *string
}

func rule(field Field, anchor, value string, post func(string) *string) Rule {
	return Rule{
		Field:  field,
		Anchor: compileAnchor(anchor),
		Value:  compile(value),
		Group:  1,
		Post:   post,
	}
}

// apply runs the rule against text. A nil result is a miss.
func (r Rule) apply(text string) *string {
	raw := FindAfter(text, r.Anchor, r.Value, r.Group)
	if raw == nil {
		return nil
	}
	if r.Post == nil {
		return raw
	}
	return r.Post(*raw)
}

// TransactionRule scans a statement for transaction lines. Pattern must
// capture date, description and amount in groups 1-3 and, when HasMarker is
// set, a Cr/Dr marker in group 4.
type TransactionRule struct {
	Pattern      *regexp.Regexp
	HasMarker    bool
	NegateCredit bool
}

// txnPattern builds a transaction-line pattern around an issuer's date token.
// The description must start with a letter and stay on the date's line, which
// keeps numeric table rows such as "12/11/2024 83,794.00 4,240.00" from being
// read as purchases.
func txnPattern(date string, marker bool) *regexp.Regexp {
	p := `\b(` + date + `)[ \t]+(` + txnDesc + `)[ \t]+(` + txnAmount + `)`
	if marker {
		p += crDrMarker
	}
	return compile(p)
}

// Scan returns every transaction in text in document order.
func (t TransactionRule) Scan(text string) []models.Transaction {
	out := []models.Transaction{}
	for _, m := range t.Pattern.FindAllStringSubmatch(text, -1) {
		date := NormalizeDate(m[1])
		desc := trimmed(m[2])
		amount := CleanAmount(m[3])
		if date == nil || desc == nil || amount == nil {
			continue
		}
		amt := *amount
		if t.HasMarker && t.NegateCredit && len(m) > 4 && isCredit(m[4]) {
			amt = negate(amt)
		}
		out = append(out, models.Transaction{
			Date:        *date,
			Description: *desc,
			Amount:      amt,
		})
	}
	return out
}

func isCredit(marker string) bool {
	return strings.EqualFold(marker, "cr")
}

// Grammar is the complete rule set for one issuer's statement layout.
type Grammar struct {
	Issuer       models.Issuer
	Rules        []Rule
	Transactions TransactionRule
}

// Extract runs the fallback chain for field and returns the first value any
// rule yields, or nil.
func (g *Grammar) Extract(field Field, text string) *string {
	for _, r := range g.Rules {
		if r.Field != field {
			continue
		}
		if v := r.apply(text); v != nil {
			return v
		}
	}
	return nil
}

var grammars = map[models.Issuer]*Grammar{
	models.IssuerHDFC:  hdfcGrammar,
	models.IssuerICICI: iciciGrammar,
	models.IssuerAxis:  axisGrammar,
	models.IssuerChase: chaseGrammar,
	models.IssuerIDFC:  idfcGrammar,
}

// GrammarFor returns the grammar registered for issuer.
func GrammarFor(issuer models.Issuer) (*Grammar, error) {
	g, ok := grammars[issuer]
	if !ok {
		return nil, &UnsupportedIssuerError{Issuer: issuer}
	}
	return g, nil
}
