package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		isNil    bool
	}{
		{input: "25.99", expected: "25.99"},
		{input: " 1,234.56 ", expected: "1,234.56"},
		{input: "₹12,450.00", expected: "₹12,450.00"},
		{input: "Rs. 12,450.00\n", expected: "Rs. 12,450.00"},
		{input: "-25.99", expected: "-25.99"},
		{input: "", isNil: true},
		{input: "   \t\n", isNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := CleanAmount(tt.input)
			if tt.isNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, *got)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		isNil    bool
	}{
		{input: "23/10/2024", expected: "23/10/2024"},
		{input: "  01-Nov-2025 ", expected: "01-Nov-2025"},
		{input: "11/01/24 - 11/30/24", expected: "11/01/24 - 11/30/24"},
		{input: "", isNil: true},
		{input: " ", isNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeDate(tt.input)
			if tt.isNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, *got)
		})
	}
}

func TestNormalizersAreIdempotent(t *testing.T) {
	inputs := []string{"25.99", "  1,234.56  ", "\t23/10/2024\n", "₹ 5.00 ", "", "  "}
	normalizers := map[string]func(string) *string{
		"CleanAmount":   CleanAmount,
		"NormalizeDate": NormalizeDate,
	}

	for name, fn := range normalizers {
		for _, in := range inputs {
			once := fn(in)
			if once == nil {
				assert.Nil(t, fn(""), "%s: blank stays nil", name)
				continue
			}
			twice := fn(*once)
			require.NotNil(t, twice, "%s(%q)", name, in)
			assert.Equal(t, *once, *twice, "%s(%q)", name, in)
		}
	}
}

func TestWithRupee(t *testing.T) {
	got := withRupee(" 83,794.00 ")
	require.NotNil(t, got)
	assert.Equal(t, "₹83,794.00", *got)
	assert.Nil(t, withRupee(""))
}

func TestNegate(t *testing.T) {
	assert.Equal(t, "-1,234.56", negate("1,234.56"))
	assert.Equal(t, "1,234.56", negate("-1,234.56"))
}
