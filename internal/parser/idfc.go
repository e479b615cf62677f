package parser

import "github.com/insightdelivered/card-statement-parser/internal/models"

// IDFC First Bank labels each value directly:
//
//	Card Number XXXX XXXX XXXX 1234
//	Statement Period 01/11/2024 - 30/11/2024
//	Payment Due Date 12/12/2024
//	Total Amount Due ₹ 12,345.67
//
// Transaction lines carry no Cr/Dr marker.
var idfcGrammar = &Grammar{
	Issuer: models.IssuerIDFC,
	Rules: []Rule{
		rule(FieldCardLast4, `Card\s+Number`, `(\d{4})`, nil),
		rule(FieldBillingPeriod, `Statement\s+Period`, `\A\s+(`+dmyRange+`)`, NormalizeDate),
		rule(FieldPaymentDueDate, `Payment\s+Due\s+Date`, `\A\s+(`+dmyDate+`)`, NormalizeDate),
		rule(FieldTotalAmountDue, `Total\s+Amount\s+Due`, `\A\s*(?:₹|Rs\.?)?\s*([\d,]+\.?\d*)`, withRupee),
	},
	Transactions: TransactionRule{
		Pattern: txnPattern(dmyDate, false),
	},
}
