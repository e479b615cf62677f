package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ligature", "O\ufb03ce supplies", "Office supplies"},
		{"no-break space", "Total\u00a0Dues", "Total Dues"},
		{"full-width digits", "１２/１１/２０２４", "12/11/2024"},
		{"windows line endings", "HDFC BANK\r\nCard No:\r\n", "HDFC BANK\nCard No:\n"},
		{"old mac line endings", "a\rb", "a\nb"},
		{"rupee sign kept", "₹83,794.00", "₹83,794.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
