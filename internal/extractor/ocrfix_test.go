package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairOCRLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"23/10/2024 SOME MERCHANT 1,234; 56 Cr", "23/10/2024 SOME MERCHANT 1,234.56 Cr"},
		{"Total Dues 19,720:15", "Total Dues 19,720.15"},
		{"12/11/2024 83,794.00: 4,240.00", "12/11/2024 83,794.00 4,240.00"},
		{"Statement Date:23/10/2024", "Statement Date:23/10/2024"},
		{"Transaction time 10:30", "Transaction time 10:30"},
		{"1,234.56", "1,234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, repairOCRLine(tt.input))
		})
	}
}

func TestRepairOCRText(t *testing.T) {
	in := "01/11/2024 FUEL 500; 00\n02/11/2024 GROCERY 1,200:50"
	assert.Equal(t, "01/11/2024 FUEL 500.00\n02/11/2024 GROCERY 1,200.50", repairOCRText(in))
}
