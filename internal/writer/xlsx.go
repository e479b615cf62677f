package writer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/insightdelivered/card-statement-parser/internal/models"
)

const (
	summarySheet      = "Summary"
	transactionsSheet = "Transactions"
)

// XLSXWriter writes a workbook with a Summary sheet holding the statement
// fields and a Transactions sheet holding one row per transaction.
type XLSXWriter struct{}

func (w *XLSXWriter) Write(out io.Writer, stmt *models.Statement) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for i, kv := range metadata(stmt) {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &[]interface{}{kv[0], kv[1]}); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A5", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "A", "B", 24); err != nil {
		return err
	}

	if _, err := f.NewSheet(transactionsSheet); err != nil {
		return fmt.Errorf("failed to add transactions sheet: %w", err)
	}
	if err := f.SetSheetRow(transactionsSheet, "A1", &[]interface{}{"Date", "Description", "Amount"}); err != nil {
		return fmt.Errorf("failed to write transactions header: %w", err)
	}
	if err := f.SetCellStyle(transactionsSheet, "A1", "C1", bold); err != nil {
		return err
	}
	for i, txn := range stmt.Transactions {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(transactionsSheet, cell, &[]interface{}{txn.Date, txn.Description, txn.Amount}); err != nil {
			return fmt.Errorf("failed to write transaction row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(transactionsSheet, "B", "B", 40); err != nil {
		return err
	}

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
