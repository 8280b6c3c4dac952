// Package console formats user-facing CLI output: status messages, compiler
// error reports, and terminal handling. All styling goes through lipgloss so
// color degrades automatically when output is not a terminal.
package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	verboseStyle = lipgloss.NewStyle().Faint(true)
	commandStyle = lipgloss.NewStyle().Bold(true)

	positionStyle = lipgloss.NewStyle().Bold(true)
	lineNumStyle  = lipgloss.NewStyle().Faint(true)
)

// FormatInfoMessage formats an informational status line.
func FormatInfoMessage(msg string) string {
	return infoStyle.Render("ℹ") + " " + msg
}

// FormatSuccessMessage formats a success status line.
func FormatSuccessMessage(msg string) string {
	return successStyle.Render("✓") + " " + msg
}

// FormatWarningMessage formats a warning status line.
func FormatWarningMessage(msg string) string {
	return warningStyle.Render("⚠") + " " + msg
}

// FormatErrorMessage formats an error status line.
func FormatErrorMessage(msg string) string {
	return errorStyle.Render("✗") + " " + msg
}

// FormatVerboseMessage formats a line only shown in verbose mode.
func FormatVerboseMessage(msg string) string {
	return verboseStyle.Render(msg)
}

// FormatCommandMessage formats a command the tool is about to run.
func FormatCommandMessage(cmd string) string {
	return commandStyle.Render("$ " + cmd)
}

// ErrorPosition locates a compiler error within a source file.
type ErrorPosition struct {
	File   string
	Line   int
	Column int
}

// CompilerError is a positioned diagnostic produced while loading or
// validating a workflow configuration.
type CompilerError struct {
	Position ErrorPosition
	Type     string // "error" or "warning"
	Message  string
	Context  []string // source lines surrounding the position, if available
	Hint     string
}

// FormatError renders a diagnostic in the familiar compiler shape:
//
//	file.yml:3:5: error: missing colon
//	  2 | jobs:
//	  3 |   - id build
//	  4 |     name: Build
func FormatError(err CompilerError) string {
	var b strings.Builder

	b.WriteString(positionStyle.Render(fmt.Sprintf("%s:%d:%d:", err.Position.File, err.Position.Line, err.Position.Column)))
	b.WriteString(" ")
	style := errorStyle
	if err.Type == "warning" {
		style = warningStyle
	}
	b.WriteString(style.Render(err.Type + ":"))
	b.WriteString(" " + err.Message + "\n")

	if len(err.Context) > 0 {
		// Context windows center on the error line when possible.
		start := err.Position.Line - 1
		if start < 1 {
			start = 1
		}
		for i, line := range err.Context {
			b.WriteString(lineNumStyle.Render(fmt.Sprintf("  %d | ", start+i)))
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}
