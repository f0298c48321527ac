package values

import (
	"fmt"
	"strings"
)

// Progress marks how far the construction of a pizza has advanced.
// Values are ordered; a builder's progress only ever moves forward.
type Progress int

const (
	ProgressQueued Progress = iota
	ProgressPreparation
	ProgressBaking
	ProgressReady
)

var progressNames = [...]string{
	ProgressQueued:      "QUEUED",
	ProgressPreparation: "PREPARATION",
	ProgressBaking:      "BAKING",
	ProgressReady:       "READY",
}

// ParseProgress creates a Progress from its name
func ParseProgress(s string) (Progress, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for p, n := range progressNames {
		if n == name {
			return Progress(p), nil
		}
	}
	return 0, fmt.Errorf("invalid progress: %q", s)
}

// String returns the progress name
func (p Progress) String() string {
	if err := p.Validate(); err != nil {
		return fmt.Sprintf("Progress(%d)", int(p))
	}
	return progressNames[p]
}

// Validate returns an error if the progress value is outside the known stages
func (p Progress) Validate() error {
	if p < ProgressQueued || p > ProgressReady {
		return fmt.Errorf("invalid progress: %d", int(p))
	}
	return nil
}

// IsAfter returns true if p is a later stage than other
func (p Progress) IsAfter(other Progress) bool {
	return p > other
}

// CanAdvanceTo reports whether moving from p to next keeps progress monotonic.
// Staying on the same stage is allowed.
func (p Progress) CanAdvanceTo(next Progress) bool {
	return next.Validate() == nil && !p.IsAfter(next)
}

// IsReady returns true once the pizza has finished baking
func (p Progress) IsReady() bool {
	return p == ProgressReady
}

// MarshalText implements encoding.TextMarshaler
func (p Progress) MarshalText() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Progress) UnmarshalText(text []byte) error {
	parsed, err := ParseProgress(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
