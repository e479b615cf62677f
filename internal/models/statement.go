package models

// Issuer identifies the card issuer whose statement layout a document follows.
type Issuer string

const (
	IssuerHDFC  Issuer = "HDFC"
	IssuerICICI Issuer = "ICICI"
	IssuerAxis  Issuer = "AXIS"
	IssuerChase Issuer = "CHASE"
	IssuerIDFC  Issuer = "IDFC"
)

// SupportedIssuers lists every issuer in detection priority order.
var SupportedIssuers = []Issuer{IssuerHDFC, IssuerICICI, IssuerAxis, IssuerChase, IssuerIDFC}

// DisplayName returns the bank name shown to users.
func (i Issuer) DisplayName() string {
	switch i {
	case IssuerHDFC:
		return "HDFC Bank"
	case IssuerICICI:
		return "ICICI Bank"
	case IssuerAxis:
		return "Axis Bank"
	case IssuerChase:
		return "Chase"
	case IssuerIDFC:
		return "IDFC First Bank"
	default:
		return string(i)
	}
}

// Transaction is a single line item from the statement.
// Date and Amount are kept exactly as printed (after trimming).
type Transaction struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// Statement is the canonical record extracted from one statement's text.
// Optional fields are nil when the issuer grammar could not find them.
type Statement struct {
	Issuer         Issuer        `json:"issuer"`
	CardLast4      *string       `json:"card_last_4_digits"`
	BillingPeriod  *string       `json:"billing_period"`
	PaymentDueDate *string       `json:"payment_due_date"`
	TotalAmountDue *string       `json:"total_amount_due"`
	Transactions   []Transaction `json:"transactions"`
}

// NewStatement returns an empty statement for the issuer with a non-nil
// transaction list, so it always serialises as [].
func NewStatement(issuer Issuer) *Statement {
	return &Statement{
		Issuer:       issuer,
		Transactions: []Transaction{},
	}
}
