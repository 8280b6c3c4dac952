//go:build !integration

package console

import (
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      CompilerError
		expected []string // Substrings that should be present in output
	}{
		{
			name: "basic error with position",
			err: CompilerError{
				Position: ErrorPosition{
					File:   "ci.yml",
					Line:   5,
					Column: 10,
				},
				Type:    "error",
				Message: "invalid syntax",
			},
			expected: []string{
				"ci.yml:5:10:",
				"error:",
				"invalid syntax",
			},
		},
		{
			name: "warning",
			err: CompilerError{
				Position: ErrorPosition{
					File:   "release.yml",
					Line:   2,
					Column: 1,
				},
				Type:    "warning",
				Message: "deprecated field",
			},
			expected: []string{
				"release.yml:2:1:",
				"warning:",
				"deprecated field",
			},
		},
		{
			name: "error with context",
			err: CompilerError{
				Position: ErrorPosition{
					File:   "ci.yml",
					Line:   3,
					Column: 5,
				},
				Type:    "error",
				Message: "missing colon",
				Context: []string{
					"jobs:",
					"  - id build",
					"    name: Build",
				},
			},
			expected: []string{
				"ci.yml:3:5:",
				"error:",
				"missing colon",
				"2 |",
				"3 |",
				"4 |",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := FormatError(tt.err)

			for _, expected := range tt.expected {
				if !strings.Contains(output, expected) {
					t.Errorf("Expected output to contain '%s', but got:\n%s", expected, output)
				}
			}
		})
	}
}

func TestFormatMessages(t *testing.T) {
	tests := []struct {
		name     string
		format   func(string) string
		message  string
		expected string // Substring that should be present
	}{
		{"info", FormatInfoMessage, "compiling 3 workflows", "compiling 3 workflows"},
		{"success", FormatSuccessMessage, "wrote ci.yml", "wrote ci.yml"},
		{"warning", FormatWarningMessage, "ci.yml is stale", "ci.yml is stale"},
		{"error", FormatErrorMessage, "config not found", "config not found"},
		{"verbose", FormatVerboseMessage, "skipping unchanged file", "skipping unchanged file"},
		{"command", FormatCommandMessage, "ghagen generate ci.yml", "ghagen generate ci.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.format(tt.message)
			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain '%s', but got:\n%s", tt.expected, output)
			}
		})
	}
}

func TestTerminalWidthFallsBackWhenNotATerminal(t *testing.T) {
	// Test processes never run with stdout attached to a terminal, so the
	// fallback path is the one exercised here.
	if IsTerminal() {
		t.Skip("stdout unexpectedly a terminal")
	}
	if width := TerminalWidth(); width != 80 {
		t.Errorf("expected fallback width 80, got %d", width)
	}
}
