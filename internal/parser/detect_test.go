package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/card-statement-parser/internal/models"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected models.Issuer
	}{
		{"detects HDFC", "HDFC Bank Credit Card Statement", models.IssuerHDFC},
		{"detects ICICI", "ICICI BANK\nStatement Period: 01-Nov-2025", models.IssuerICICI},
		{"detects Axis", "Axis Bank Ltd", models.IssuerAxis},
		{"detects Chase Bank", "Chase Bank USA, N.A.", models.IssuerChase},
		{"detects JPMorgan Chase", "JPMorgan Chase & Co.", models.IssuerChase},
		{"detects IDFC First", "IDFC FIRST Bank Limited", models.IssuerIDFC},
		{"detects IDFC", "idfc bank", models.IssuerIDFC},
		{"whitespace between words", "HDFC\n   BANK", models.IssuerHDFC},
		{"tab between words", "Axis\tBank", models.IssuerAxis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectPriority(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected models.Issuer
	}{
		{
			name:     "all five signatures",
			text:     "IDFC FIRST Bank JPMorgan Chase Axis Bank ICICI Bank HDFC Bank",
			expected: models.IssuerHDFC,
		},
		{"ICICI over Axis", "Axis Bank partner offer from ICICI Bank", models.IssuerICICI},
		{"Axis over Chase", "Chase Bank ... Axis Bank", models.IssuerAxis},
		{"Chase over IDFC", "IDFC Bank ... Chase Bank", models.IssuerChase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectUnsupported(t *testing.T) {
	for _, text := range []string{
		"Barclays Bank UK PLC",
		"HDFCBANK without a space",
		"Chase Sapphire",
		"",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := Detect(text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedIssuer))

			var unsupported *UnsupportedIssuerError
			require.True(t, errors.As(err, &unsupported))
			for _, iss := range models.SupportedIssuers {
				assert.Contains(t, err.Error(), iss.DisplayName())
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	got := Candidates("co-branded: IDFC First Bank and HDFC Bank and JPMorgan Chase Bank")
	assert.Equal(t, []models.Issuer{models.IssuerHDFC, models.IssuerChase, models.IssuerIDFC}, got)

	assert.Empty(t, Candidates("no bank names"))
}
