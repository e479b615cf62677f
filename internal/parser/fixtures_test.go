package parser

const hdfcStatement = `HDFC BANK
Credit Card Statement
Name : A CARDHOLDER
Card No: 4341 55XX XXXX 3388
Statement Date:23/10/2024
Payment Due Date Total Dues Minimum Amount Due
12/11/2024 83,794.00 4,240.00
Domestic Transactions
Date Transaction Description Amount (in Rs.)
23/10/2024 SOME MERCHANT 1,234.56 Cr
`

const iciciStatement = `ICICI Bank Credit Card Statement
Card Number: XXXX XXXX XXXX 1234
Statement Period: 01-Nov-2025 to 30-Nov-2025
Payment Due Date: 15-Dec-2025
Total Amount Due: Rs. 12,450.00
01-Nov-2025 AMAZON PURCHASE 1,234.56
05-Nov-2025 SWIGGY BANGALORE 456.00
`

const axisStatement = `AXIS BANK
Credit Card Number 53346700****1060
Statement Period Payment Due Date Statement Generation Date
16/04/2021 - 15/05/2021 04/06/2021 15/05/2021
Total Payment Due Minimum Payment Due
1,289.00 Dr 100.00 Dr
Transaction Details
16/04/2021 POS PURCHASE SOME MERCHANT 1,289.00 Dr
20/04/2021 REFUND SOME MERCHANT 500.00 Cr
`

const chaseStatement = `JPMorgan Chase
Account Number: XXXX XXXX XXXX 4321
Opening/Closing Date 11/01/24 - 11/30/24
Payment Due Date 12/25/24
New Balance $1,234.56
11/05 PURCHASE SOME MERCHANT 123.45
11/12 PAYMENT THANK YOU -500.00
`

const idfcStatement = `IDFC FIRST Bank
Card Number XXXX XXXX XXXX 1234
Statement Period 01/11/2024 - 30/11/2024
Payment Due Date 12/12/2024
Total Amount Due ₹ 12,345.67
01/11/2024 POS PURCHASE SOME MERCHANT 1,234.56
15/11/2024 FUEL SURCHARGE WAIVER -25.00
`

func strPtr(s string) *string {
	return &s
}
