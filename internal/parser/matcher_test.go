package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		pattern  string
		group    int
		expected string
		isNil    bool
	}{
		{
			name:     "first occurrence wins",
			text:     "Due 01/01/2024 then Due 02/02/2024",
			pattern:  `Due\s+(\S+)`,
			group:    1,
			expected: "01/01/2024",
		},
		{
			name:     "case insensitive",
			text:     "payment DUE date 12/11/2024",
			pattern:  `Payment\s+Due\s+Date\s+(\S+)`,
			group:    1,
			expected: "12/11/2024",
		},
		{
			name:     "dot matches newline",
			text:     "Card No:\n\n  page 2\n XXXX 3388",
			pattern:  `Card\s+No:.*?X+\s*(\d{4})`,
			group:    1,
			expected: "3388",
		},
		{
			name:     "capture is trimmed",
			text:     "Total:   5.00   \n",
			pattern:  `Total:([^\n]*)`,
			group:    1,
			expected: "5.00",
		},
		{
			name:    "no match is nil",
			text:    "nothing here",
			pattern: `Card\s+No:\s*(\d{4})`,
			group:   1,
			isNil:   true,
		},
		{
			name:    "blank capture is nil",
			text:    "Total:   \n",
			pattern: `Total:([^\n]*)`,
			group:   1,
			isNil:   true,
		},
		{
			name:    "group out of range is nil",
			text:    "abc",
			pattern: `(a)bc`,
			group:   3,
			isNil:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find(tt.text, compile(tt.pattern), tt.group)
			if tt.isNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, *got)
		})
	}
}

func TestFindAfter(t *testing.T) {
	anchor := compileAnchor(`Due\s+Date:`)
	adjacent := compile(`\A\s*(\d{2}/\d{2}/\d{4})`)

	t.Run("value directly after first anchor", func(t *testing.T) {
		got := FindAfter("Due Date: 12/11/2024", anchor, adjacent, 1)
		require.NotNil(t, got)
		assert.Equal(t, "12/11/2024", *got)
	})

	t.Run("later anchor used when first has no value", func(t *testing.T) {
		text := "Due Date: see below\nsummary\nDue Date: 05/06/2021"
		got := FindAfter(text, anchor, adjacent, 1)
		require.NotNil(t, got)
		assert.Equal(t, "05/06/2021", *got)
	})

	t.Run("value may sit far after the anchor", func(t *testing.T) {
		far := compile(`(\d{2}/\d{2}/\d{4})`)
		got := FindAfter("Due Date:\nTotal Dues Minimum\n12/11/2024 83,794.00", anchor, far, 1)
		require.NotNil(t, got)
		assert.Equal(t, "12/11/2024", *got)
	})

	t.Run("value before the anchor is ignored", func(t *testing.T) {
		got := FindAfter("01/01/2024 Due Date: pending", anchor, adjacent, 1)
		assert.Nil(t, got)
	})

	t.Run("missing anchor", func(t *testing.T) {
		assert.Nil(t, FindAfter("12/11/2024", anchor, adjacent, 1))
	})
}
