package writer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/insightdelivered/card-statement-parser/internal/models"
)

// csvRow is one transaction line; gocsv derives the header from the tags.
type csvRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
}

// CSVWriter writes transactions to CSV format.
type CSVWriter struct {
	// IncludeHeader prefixes the table with "# Field,value" metadata rows.
	IncludeHeader bool
}

// Write writes transactions in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, stmt *models.Statement) error {
	if w.IncludeHeader {
		meta := csv.NewWriter(out)
		for _, kv := range metadata(stmt) {
			if kv[1] == "" {
				continue
			}
			if err := meta.Write([]string{"# " + kv[0], kv[1]}); err != nil {
				return fmt.Errorf("failed to write CSV metadata: %w", err)
			}
		}
		meta.Flush()
		if err := meta.Error(); err != nil {
			return fmt.Errorf("failed to write CSV metadata: %w", err)
		}
	}

	rows := make([]*csvRow, 0, len(stmt.Transactions))
	for _, txn := range stmt.Transactions {
		rows = append(rows, &csvRow{
			Date:        txn.Date,
			Description: txn.Description,
			Amount:      txn.Amount,
		})
	}
	if err := gocsv.Marshal(&rows, out); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}
