package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/pizzeria/internal/application/dto"
)

// JSONFormatter formats results as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// FormatReceipt writes the receipt as JSON.
func (f *JSONFormatter) FormatReceipt(receipt *dto.Receipt) error {
	return f.write(receipt)
}

// FormatMenu writes the menu as JSON.
func (f *JSONFormatter) FormatMenu(menu *dto.MenuResponse) error {
	return f.write(menu)
}

func (f *JSONFormatter) write(v any) error {
	encoder := json.NewEncoder(f.writer)
	if f.indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}
