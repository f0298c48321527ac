package entities

import (
	"fmt"
	"io"
	"time"
)

// DefaultStepDelay is how long every preparation step takes unless configured otherwise.
const DefaultStepDelay = 3 * time.Second

// Delay spends a simulated amount of preparation time.
type Delay func(time.Duration)

// NoDelay returns immediately. Tests use it to run orders instantly.
func NoDelay(time.Duration) {}

// ScaledDelay returns a Delay that sleeps for d multiplied by factor.
// A factor of zero or less disables waiting entirely.
func ScaledDelay(factor float64) Delay {
	if factor <= 0 {
		return NoDelay
	}
	return func(d time.Duration) {
		time.Sleep(time.Duration(float64(d) * factor))
	}
}

// Kitchen is the environment a preparation step runs in: where progress is
// announced, how time is spent, and how long an ordinary step takes.
// The zero value announces nothing and sleeps for real.
type Kitchen struct {
	Out       io.Writer
	Delay     Delay
	StepDelay time.Duration
}

// Announce writes one line of narration.
//
//nolint:errcheck // Narration is best-effort terminal output
func (k Kitchen) Announce(format string, args ...any) {
	if k.Out == nil {
		return
	}
	fmt.Fprintf(k.Out, format+"\n", args...)
}

// Wait spends d of kitchen time.
func (k Kitchen) Wait(d time.Duration) {
	if k.Delay == nil {
		time.Sleep(d)
		return
	}
	k.Delay(d)
}

// Step spends the time of one ordinary preparation step.
func (k Kitchen) Step() {
	k.Wait(k.StepDelay)
}
