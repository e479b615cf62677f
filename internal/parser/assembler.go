package parser

import (
	"github.com/insightdelivered/card-statement-parser/internal/models"
)

// Assembler turns statement text into a models.Statement. It holds no state
// besides its reporter and is safe for concurrent use when the reporter is.
type Assembler struct {
	reporter Reporter
}

// NewAssembler returns an assembler that sends diagnostics to r.
// A nil reporter discards them.
func NewAssembler(r Reporter) *Assembler {
	if r == nil {
		r = NopReporter{}
	}
	return &Assembler{reporter: r}
}

// Assemble detects the issuer and extracts every field its grammar knows.
// The only error is an *UnsupportedIssuerError; missing fields are left nil
// and reported as misses. Callers must reject empty text beforehand.
func (a *Assembler) Assemble(text string) (*models.Statement, error) {
	issuer, err := Detect(text)
	if err != nil {
		return nil, err
	}
	a.reporter.Detected(issuer)
	return a.assemble(issuer, text)
}

// AssembleAs skips detection and parses text with the given issuer's grammar.
func (a *Assembler) AssembleAs(issuer models.Issuer, text string) (*models.Statement, error) {
	return a.assemble(issuer, text)
}

func (a *Assembler) assemble(issuer models.Issuer, text string) (*models.Statement, error) {
	g, err := GrammarFor(issuer)
	if err != nil {
		return nil, err
	}

	stmt := models.NewStatement(issuer)
	targets := map[Field]**string{
		FieldCardLast4:      &stmt.CardLast4,
		FieldBillingPeriod:  &stmt.BillingPeriod,
		FieldPaymentDueDate: &stmt.PaymentDueDate,
		FieldTotalAmountDue: &stmt.TotalAmountDue,
	}

	for _, field := range fieldOrder {
		v := g.Extract(field, text)
		if v == nil {
			a.reporter.Missed(issuer, field)
			continue
		}
		*targets[field] = v
		a.reporter.Extracted(issuer, field, *v)
	}

	stmt.Transactions = g.Transactions.Scan(text)
	a.reporter.Transactions(issuer, len(stmt.Transactions))

	return stmt, nil
}

// Assemble parses text with a reporter-less assembler.
func Assemble(text string) (*models.Statement, error) {
	return NewAssembler(nil).Assemble(text)
}
