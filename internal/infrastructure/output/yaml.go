package output

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/pizzeria/internal/application/dto"
)

// YAMLFormatter formats results as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// FormatReceipt writes the receipt as YAML.
func (f *YAMLFormatter) FormatReceipt(receipt *dto.Receipt) error {
	return f.encode(receipt)
}

// FormatMenu writes the menu as YAML.
func (f *YAMLFormatter) FormatMenu(menu *dto.MenuResponse) error {
	return f.encode(menu)
}

func (f *YAMLFormatter) encode(v any) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
