package parser

import "github.com/insightdelivered/card-statement-parser/internal/models"

// Axis Bank statements put the billing period and due date in one table row
// under a shared header, so the due date is the date that follows the
// "DD/MM/YYYY - DD/MM/YYYY" period:
//
//	Statement Period Payment Due Date Statement Generation Date
//	16/04/2021 - 15/05/2021 04/06/2021 15/05/2021
//
// The total sits under "Total Payment Due Minimum Payment Due" and is the
// first amount flagged "Dr". Card numbers are masked with asterisks.
var axisGrammar = &Grammar{
	Issuer: models.IssuerAxis,
	Rules: []Rule{
		rule(FieldCardLast4, `Credit\s+Card\s+Number|Card\s+No:`, `\A\s*\d+\*+(\d{4})`, nil),
		rule(FieldBillingPeriod, `Statement\s+Period`, `(`+dmyRange+`)`, NormalizeDate),
		rule(FieldPaymentDueDate, `Payment\s+Due\s+Date`, dmyRange+`\s+(`+dmyDate+`)`, NormalizeDate),
		rule(FieldTotalAmountDue, `Total\s+Payment\s+Due\s+Minimum\s+Payment\s+Due`, `\s([\d,]+\.?\d*)\s+Dr\b`, withRupee),
	},
	Transactions: TransactionRule{
		Pattern:      txnPattern(dmyDate, true),
		HasMarker:    true,
		NegateCredit: true,
	},
}
