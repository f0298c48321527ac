package values

import (
	"fmt"
	"strings"
)

// Dough is the base a pizza is prepared on.
type Dough string

const (
	// DoughThin is a thin, crispy base
	DoughThin Dough = "THIN"
	// DoughThick is a thick, soft base
	DoughThick Dough = "THICK"
)

// ParseDough creates a Dough from its name, ignoring case and surrounding space.
func ParseDough(s string) (Dough, error) {
	d := Dough(strings.ToUpper(strings.TrimSpace(s)))
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// String returns the dough name
func (d Dough) String() string {
	return string(d)
}

// IsZero returns true if no dough has been chosen
func (d Dough) IsZero() bool {
	return d == ""
}

// Validate returns an error if the dough value is invalid
func (d Dough) Validate() error {
	switch d {
	case DoughThin, DoughThick:
		return nil
	default:
		return fmt.Errorf("invalid dough: %q", string(d))
	}
}
