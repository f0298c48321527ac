package output

import "github.com/charmbracelet/lipgloss"

// Ayu palette with adaptive light/dark variants.
var (
	colorReady = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	colorWarn  = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	colorMuted = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	colorBlue  = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
)

var (
	readyStyle   = lipgloss.NewStyle().Foreground(colorReady)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarn)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	pizzaStyle   = lipgloss.NewStyle().Foreground(colorBlue)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	tokenStyle   = lipgloss.NewStyle().Bold(true)
)

const (
	iconReady = "✓"
	iconWait  = "…"
	separator = "────────────────────────────────────────"
)
