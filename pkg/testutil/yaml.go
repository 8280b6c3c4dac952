package testutil

import "strings"

// StripYAMLCommentHeader drops the leading comment block (and any blank lines
// within it) from a generated workflow document, returning the content from
// the first real YAML line onward. Input that contains nothing but comments
// is returned unchanged.
func StripYAMLCommentHeader(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return strings.Join(lines[i:], "\n")
	}
	return content
}
