// Package writer renders parsed statements as JSON, CSV or XLSX.
package writer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/insightdelivered/card-statement-parser/internal/models"
)

// Format is an output format name as accepted on the command line.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Writer renders a statement to out.
type Writer interface {
	Write(out io.Writer, stmt *models.Statement) error
}

// ParseFormat validates a format name, ignoring case.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected json, csv or xlsx)", name)
	}
}

// New returns the writer for format. includeHeader adds statement metadata
// rows to CSV output and is ignored by the other formats.
func New(format Format, includeHeader bool) (Writer, error) {
	switch format {
	case FormatJSON:
		return &JSONWriter{Indent: "  "}, nil
	case FormatCSV:
		return &CSVWriter{IncludeHeader: includeHeader}, nil
	case FormatXLSX:
		return &XLSXWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// WriteToFile renders stmt with w into a new file at path.
func WriteToFile(w Writer, path string, stmt *models.Statement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	if err := w.Write(f, stmt); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// metadata lists the statement-level fields in display order. Missing values
// render as empty strings.
func metadata(stmt *models.Statement) [][2]string {
	return [][2]string{
		{"Issuer", stmt.Issuer.DisplayName()},
		{"Card Last 4 Digits", deref(stmt.CardLast4)},
		{"Billing Period", deref(stmt.BillingPeriod)},
		{"Payment Due Date", deref(stmt.PaymentDueDate)},
		{"Total Amount Due", deref(stmt.TotalAmountDue)},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
