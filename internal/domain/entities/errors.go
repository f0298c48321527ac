package entities

import (
	"errors"
	"fmt"

	"github.com/reglet-dev/pizzeria/internal/domain/values"
)

var (
	// ErrUnavailable is matched by UnavailableError.
	ErrUnavailable = errors.New("not available")
	// ErrNotImplemented is matched by NotImplementedError.
	ErrNotImplemented = errors.New("operation not implemented")
	// ErrNoActiveOrder is returned when a pizza is requested before any order was constructed.
	ErrNoActiveOrder = errors.New("invalid state: no active order")
	// ErrInvalidTransition is matched by TransitionError.
	ErrInvalidTransition = errors.New("invalid progress transition")
)

// UnavailableError indicates the menu has no recipe for the requested token.
type UnavailableError struct {
	Token string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%q is not on the menu: %s", e.Token, ErrUnavailable)
}

// Is reports whether target is ErrUnavailable.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

// NotImplementedError indicates a builder variant left an operation unimplemented.
type NotImplementedError struct {
	Operation string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, ErrNotImplemented)
}

// Is reports whether target is ErrNotImplemented.
func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

// TransitionError indicates an operation would move progress backwards.
type TransitionError struct {
	From values.Progress
	To   values.Progress
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

// Is reports whether target is ErrInvalidTransition.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
