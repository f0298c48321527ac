// Package values contains domain value objects: the closed vocabularies a
// pizza is described with and the identifiers orders are tracked by.
package values

import (
	"fmt"

	"github.com/google/uuid"
)

// OrderID uniquely identifies a placed order.
type OrderID struct {
	value uuid.UUID
}

// NewOrderID creates a new random order ID
func NewOrderID() OrderID {
	return OrderID{value: uuid.New()}
}

// ParseOrderID parses a string into an OrderID
func ParseOrderID(s string) (OrderID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OrderID{}, fmt.Errorf("invalid order ID: %w", err)
	}
	return OrderID{value: id}, nil
}

// MustParseOrderID parses a string or panics (for tests only)
func MustParseOrderID(s string) OrderID {
	id, err := ParseOrderID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the string representation
func (o OrderID) String() string {
	return o.value.String()
}

// Short returns the first eight hex digits, enough to tell orders apart on a receipt.
func (o OrderID) Short() string {
	return o.value.String()[:8]
}

// UUID returns the underlying uuid.UUID
func (o OrderID) UUID() uuid.UUID {
	return o.value
}

// IsZero returns true if this is the zero value
func (o OrderID) IsZero() bool {
	return o.value == uuid.Nil
}

// Equals checks if two OrderIDs are equal
func (o OrderID) Equals(other OrderID) bool {
	return o.value == other.value
}

// MarshalText implements encoding.TextMarshaler
func (o OrderID) MarshalText() ([]byte, error) {
	return []byte(o.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (o *OrderID) UnmarshalText(text []byte) error {
	id, err := ParseOrderID(string(text))
	if err != nil {
		return err
	}
	*o = id
	return nil
}
