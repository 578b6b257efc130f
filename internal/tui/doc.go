// Package tui renders operator-facing terminal output for laptopctl.
//
// Every Render* function returns a string ready for stdout. Styling uses
// lipgloss and degrades to plain text when the output is not a terminal.
package tui
