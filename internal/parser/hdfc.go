package parser

import "github.com/insightdelivered/card-statement-parser/internal/models"

// HDFC Bank statements print the card as "Card No: 4341 55XX XXXX 3388" and
// keep the due date and totals in a small table:
//
//	Payment Due Date Total Dues Minimum Amount Due
//	12/11/2024 83,794.00 4,240.00
//
// Transaction lines are "DD/MM/YYYY MERCHANT 1,234.56 [Cr]".
const hdfcDueTable = `Payment\s+Due\s+Date\s+Total\s+Dues\s+Minimum\s+Amount\s+Due`

var hdfcGrammar = &Grammar{
	Issuer: models.IssuerHDFC,
	Rules: []Rule{
		rule(FieldCardLast4, `Card\s+No:`, `[x*]+\s*(\d{4})`, nil),

		rule(FieldBillingPeriod, `Statement\s+Date:`, `\A\s*(`+dmyDate+`)`, NormalizeDate),
		// Older layouts only print "Statement for <month> MM/YYYY".
		rule(FieldBillingPeriod, `Statement\s+for\s`, `(\d{2}/\d{4})`, NormalizeDate),

		rule(FieldPaymentDueDate, hdfcDueTable, `(`+dmyDate+`)`, NormalizeDate),

		rule(FieldTotalAmountDue, hdfcDueTable, dmyDate+`\s+([\d,]+\.?\d*)`, withRupee),
		// Account summary section.
		rule(FieldTotalAmountDue, `Total\s+Dues`, `\A[^\d]*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`, withRupee),
	},
	Transactions: TransactionRule{
		Pattern:      txnPattern(dmyDate, true),
		HasMarker:    true,
		NegateCredit: true,
	},
}
