package writer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/insightdelivered/card-statement-parser/internal/models"
)

// JSONWriter writes the statement as a JSON object. Non-ASCII characters
// such as the rupee sign are written as-is.
type JSONWriter struct {
	Indent string
}

func (w *JSONWriter) Write(out io.Writer, stmt *models.Statement) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if w.Indent != "" {
		enc.SetIndent("", w.Indent)
	}
	if err := enc.Encode(stmt); err != nil {
		return fmt.Errorf("failed to encode statement: %w", err)
	}
	return nil
}
