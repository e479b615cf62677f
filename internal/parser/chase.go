package parser

import "github.com/insightdelivered/card-statement-parser/internal/models"

// Chase statements use US dates. Summary dates carry a two or four digit year
// ("Opening/Closing Date 11/01/24 - 11/30/24") while transaction lines only
// print month and day ("11/05 PURCHASE SOME MERCHANT 123.45"). Totals are
// returned as the bare number without the dollar sign.
const (
	chaseDate      = `\d{1,2}/\d{1,2}/\d{2,4}`
	chaseShortDate = `\d{1,2}/\d{1,2}`
)

var chaseGrammar = &Grammar{
	Issuer: models.IssuerChase,
	Rules: []Rule{
		rule(FieldCardLast4, `Account\s+Number`, `(\d{4})`, nil),
		rule(FieldBillingPeriod, `Opening/Closing\s+Date|Statement\s+Period`, `\A\s+(`+chaseDate+`\s*-\s*`+chaseDate+`)`, NormalizeDate),
		rule(FieldPaymentDueDate, `Payment\s+Due\s+Date`, `\A\s+(`+chaseDate+`)`, NormalizeDate),
		rule(FieldTotalAmountDue, `New\s+Balance|Total\s+Payment\s+Due`, `\A\s+\$?([\d,]+\.\d{2})`, CleanAmount),
	},
	Transactions: TransactionRule{
		Pattern: txnPattern(chaseShortDate, false),
	},
}
