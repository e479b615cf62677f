package writer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/insightdelivered/card-statement-parser/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func sampleStatement() *models.Statement {
	stmt := models.NewStatement(models.IssuerHDFC)
	stmt.CardLast4 = strPtr("3388")
	stmt.BillingPeriod = strPtr("23/10/2024")
	stmt.PaymentDueDate = strPtr("12/11/2024")
	stmt.TotalAmountDue = strPtr("₹83,794.00")
	stmt.Transactions = []models.Transaction{
		{Date: "23/10/2024", Description: "SOME MERCHANT", Amount: "-1,234.56"},
		{Date: "24/10/2024", Description: "FUEL STATION", Amount: "500.00"},
	}
	return stmt
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"CSV", FormatCSV, false},
		{" xlsx ", FormatXLSX, false},
		{"pdf", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatCSV, FormatXLSX} {
		w, err := New(f, true)
		require.NoError(t, err)
		assert.NotNil(t, w)
	}
	_, err := New("yaml", false)
	assert.Error(t, err)
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONWriter{Indent: "  "}).Write(&buf, sampleStatement()))

	out := buf.String()
	assert.Contains(t, out, "\n  \"issuer\": \"HDFC\"")
	assert.Contains(t, out, `"total_amount_due": "₹83,794.00"`)
	assert.NotContains(t, out, `\u20b9`)

	var decoded models.Statement
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleStatement(), decoded)
}

func TestJSONWriterNullFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONWriter{}).Write(&buf, models.NewStatement(models.IssuerChase)))

	assert.JSONEq(t, `{
		"issuer": "CHASE",
		"card_last_4_digits": null,
		"billing_period": null,
		"payment_due_date": null,
		"total_amount_due": null,
		"transactions": []
	}`, buf.String())
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CSVWriter{IncludeHeader: true}).Write(&buf, sampleStatement()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// 5 metadata lines + 1 header + 2 transactions = 8
	require.Len(t, lines, 8)
	assert.Equal(t, "# Issuer,HDFC Bank", lines[0])
	assert.Equal(t, "# Card Last 4 Digits,3388", lines[1])
	assert.Equal(t, `# Total Amount Due,"₹83,794.00"`, lines[4])
	assert.Equal(t, "Date,Description,Amount", lines[5])
	assert.Equal(t, `23/10/2024,SOME MERCHANT,"-1,234.56"`, lines[6])
	assert.Equal(t, "24/10/2024,FUEL STATION,500.00", lines[7])
}

func TestCSVWriterNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CSVWriter{}).Write(&buf, sampleStatement()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Description,Amount", lines[0])
}

func TestCSVWriterSkipsMissingMetadata(t *testing.T) {
	stmt := models.NewStatement(models.IssuerAxis)
	stmt.CardLast4 = strPtr("1060")

	var buf bytes.Buffer
	require.NoError(t, (&CSVWriter{IncludeHeader: true}).Write(&buf, stmt))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"# Issuer,Axis Bank", "# Card Last 4 Digits,1060", "Date,Description,Amount"}, lines)
}

func TestXLSXWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&XLSXWriter{}).Write(&buf, sampleStatement()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Transactions"}, f.GetSheetList())

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, []string{"Issuer", "HDFC Bank"}, summary[0])
	assert.Equal(t, []string{"Total Amount Due", "₹83,794.00"}, summary[4])

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, rows[0])
	assert.Equal(t, []string{"23/10/2024", "SOME MERCHANT", "-1,234.56"}, rows[1])
}

func TestWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, WriteToFile(&CSVWriter{}, path, sampleStatement()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Date,Description,Amount\n"))

	err = WriteToFile(&CSVWriter{}, filepath.Join(t.TempDir(), "missing", "out.csv"), sampleStatement())
	assert.Error(t, err)
}
