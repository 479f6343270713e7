// Package styles provides shared lipgloss styles for CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorGray   = lipgloss.Color("#565f89")
	ColorWhite  = lipgloss.Color("#c0caf5")
)

// CallHeaderStyle styles the dispatch header line.
var CallHeaderStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// URLStyle styles the dial endpoint URL.
var URLStyle = lipgloss.NewStyle().
	Foreground(ColorWhite)

// DryRunStyle styles the dry-run marker.
var DryRunStyle = lipgloss.NewStyle().
	Foreground(ColorYellow).
	Bold(true)

// DetailStyle styles secondary detail text.
var DetailStyle = lipgloss.NewStyle().
	Foreground(ColorGray)
