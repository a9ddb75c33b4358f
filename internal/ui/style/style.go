// Package style holds the colors and icons shared by report lines and log output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	// Check prefixes successful pipeline reports.
	Check = "✓"
	// Cross prefixes failed pipeline reports and error logs.
	Cross = "✗"
	// Warning prefixes warning logs.
	Warning = "!"
)
