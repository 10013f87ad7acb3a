package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - enabled state
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleTitle for main headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleEnabled for enabled feature status.
	styleEnabled = lipgloss.NewStyle().Foreground(colorGreen)

	// styleDisabled for disabled feature status.
	styleDisabled = lipgloss.NewStyle().Foreground(colorDim)

	// styleError for fatal error output.
	styleError = lipgloss.NewStyle().Foreground(colorRed)
)
