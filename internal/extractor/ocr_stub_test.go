//go:build !ocr

package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOCRStub(t *testing.T) {
	assert.False(t, OCRAvailable())

	_, err := readWithOCR("statement.pdf")
	assert.ErrorIs(t, err, ErrOCRNotEnabled)
}

func TestExtractWithOCRDisabledAtBuild(t *testing.T) {
	path := writeTestPDF(t, nil)

	_, err := New(true, nil).Extract(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyText)
}
