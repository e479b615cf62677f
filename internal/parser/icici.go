package parser

import "github.com/insightdelivered/card-statement-parser/internal/models"

// ICICI Bank writes dates as "01-Nov-2025" and labels every summary value
// with a trailing colon:
//
//	Card Number: XXXX XXXX XXXX 1234
//	Statement Period: 01-Nov-2025 to 30-Nov-2025
//	Payment Due Date: 15-Dec-2025
//	Total Amount Due: Rs. 12,450.00
//
// The total keeps its currency prefix exactly as printed. Only month-name
// dates are recognised; a statement printing "01/11/2025" has no period,
// due date or transactions extracted.
const iciciDate = `\d{1,2}[-/][a-z]{3,9}[-/]\d{4}`

var iciciGrammar = &Grammar{
	Issuer: models.IssuerICICI,
	Rules: []Rule{
		rule(FieldCardLast4, `card\s+(?:number|no\.?):?`, `(\d{4})(?:\s|$|\.)`, nil),
		rule(FieldBillingPeriod, `statement\s+period:?`, `\A\s*(`+iciciDate+`\s+(?:to|-)\s+`+iciciDate+`)`, NormalizeDate),
		rule(FieldPaymentDueDate, `due\s+date:?`, `\A\s*(`+iciciDate+`)`, NormalizeDate),
		rule(FieldTotalAmountDue, `total\s+amount\s+due:?`, `\A\s*((?:₹|Rs\.?)\s*[\d,]+\.?\d*)`, CleanAmount),
	},
	Transactions: TransactionRule{
		Pattern: txnPattern(iciciDate, false),
	},
}
