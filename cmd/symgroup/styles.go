package main

import "github.com/charmbracelet/lipgloss"

// Color palette shared across all CLI output.
const (
	// ColorPrimary is purple - titles and primary emphasis.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - subtitles and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - passing checks.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - failing checks and violations.
	ColorError = lipgloss.Color("#EF4444")

	// ColorHighlight is blue - cycle-notation strings.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and table captions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// PassStyle marks passing checks.
	PassStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// FailStyle marks failing checks and mutex violations.
	FailStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// NotationStyle is for permutations rendered in cycle notation.
	NotationStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// mark renders a ✓/✗ verdict.
func mark(ok bool) string {
	if ok {
		return PassStyle.Render("✓")
	}

	return FailStyle.Render("✗")
}
