package values

import (
	"fmt"
	"strings"
)

// Sauce is spread over the dough before toppings go on.
type Sauce string

const (
	// SauceTomato is a plain tomato sauce
	SauceTomato Sauce = "TOMATO"
	// SauceCremeFraiche is a creme fraiche base
	SauceCremeFraiche Sauce = "CREME_FRAICHE"
)

// ParseSauce creates a Sauce from its name. Spaces and dashes are accepted
// in place of underscores, so "creme fraiche" parses as CREME_FRAICHE.
func ParseSauce(s string) (Sauce, error) {
	sauce := Sauce(normalizeName(s))
	if err := sauce.Validate(); err != nil {
		return "", err
	}
	return sauce, nil
}

// String returns the sauce name
func (s Sauce) String() string {
	return string(s)
}

// IsZero returns true if no sauce has been chosen
func (s Sauce) IsZero() bool {
	return s == ""
}

// Validate returns an error if the sauce value is invalid
func (s Sauce) Validate() error {
	switch s {
	case SauceTomato, SauceCremeFraiche:
		return nil
	default:
		return fmt.Errorf("invalid sauce: %q", string(s))
	}
}

// normalizeName upper-cases a user supplied name and maps separators to '_'.
func normalizeName(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
