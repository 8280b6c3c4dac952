package cli

import (
	"regexp"
	"strconv"

	"github.com/ghagen/ghagen/pkg/console"
)

// goccy/go-yaml prefixes its messages with the source position as "[line:col]".
var yamlPositionPattern = regexp.MustCompile(`\[(\d+):(\d+)\]\s*(.+)`)

// formatLoadError renders a configuration loading failure. When the
// underlying YAML error carries a position, it is promoted to a compiler
// style file:line:col diagnostic; anything else falls back to a plain error
// line.
func formatLoadError(configPath string, err error) string {
	if m := yamlPositionPattern.FindStringSubmatch(err.Error()); m != nil {
		line, _ := strconv.Atoi(m[1])
		column, _ := strconv.Atoi(m[2])
		return console.FormatError(console.CompilerError{
			Position: console.ErrorPosition{
				File:   configPath,
				Line:   line,
				Column: column,
			},
			Type:    "error",
			Message: m[3],
		})
	}
	return console.FormatErrorMessage(configPath + ": " + err.Error())
}
