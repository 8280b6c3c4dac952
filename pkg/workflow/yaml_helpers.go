// This file provides the low-level text assembly helpers shared by the step,
// job, and workflow compilers.
//
// The generated document is a byte-for-byte contract: regenerated output must
// diff cleanly against previously committed output. That rules out any YAML
// marshaller with its own ideas about quoting and ordering, so rendering is
// plain line assembly with explicit indentation and explicit key sorting.

package workflow

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// interiorBlank matches an indented line that holds only whitespace and sits
// between two other lines. indent collapses such lines back to fully empty so
// that blank separators never carry trailing spaces. A whitespace-only line at
// the very end of the string is left alone on purpose; the empty-jobs
// rendering of the workflow depends on it.
var interiorBlank = regexp.MustCompile(`\n[ \t]+\n`)

// indent prefixes every line of s with level*2 spaces.
func indent(s string, level int) string {
	pad := strings.Repeat("  ", level)
	out := pad + strings.ReplaceAll(s, "\n", "\n"+pad)
	return interiorBlank.ReplaceAllString(out, "\n\n")
}

// listItem turns a block of lines into a YAML sequence item: "- " on the
// first line, two spaces of continuation indent on the rest.
func listItem(body string) string {
	return "- " + indent(body, 1)[2:]
}

// compileList renders a flow sequence: [a, b, c]. Values render raw.
func compileList(values []string) string {
	return "[" + strings.Join(values, ", ") + "]"
}

// compileEnv renders a mapping block under the given section key, or ""
// when the mapping is empty. Keys are sorted so identical inputs always
// produce identical output regardless of map iteration order.
func compileEnv(env map[string]string, section string) string {
	if len(env) == 0 {
		return ""
	}
	lines := make([]string, 0, len(env))
	for _, k := range slices.Sorted(maps.Keys(env)) {
		lines = append(lines, k+": "+env[k])
	}
	return section + ":\n" + indent(strings.Join(lines, "\n"), 1)
}
