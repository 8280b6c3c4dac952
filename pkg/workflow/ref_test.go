//go:build !integration

package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileBranchPredicate(t *testing.T) {
	tests := []struct {
		name     string
		variable string
		pred     RefPredicate
		expected string
	}{
		{
			name:     "equals branch",
			variable: "github.ref",
			pred:     RefEquals{Ref: BranchRef{Name: "main"}},
			expected: "github.ref == 'refs/heads/main'",
		},
		{
			name:     "equals tag",
			variable: "github.ref",
			pred:     RefEquals{Ref: TagRef{Name: "v1.0.0"}},
			expected: "github.ref == 'refs/tags/v1.0.0'",
		},
		{
			name:     "starts with branch",
			variable: "github.ref",
			pred:     RefStartsWith{Ref: BranchRef{Name: "series/"}},
			expected: "startsWith(github.ref, 'refs/heads/series/')",
		},
		{
			name:     "starts with tag",
			variable: "github.ref",
			pred:     RefStartsWith{Ref: TagRef{Name: "v"}},
			expected: "startsWith(github.ref, 'refs/tags/v')",
		},
		{
			name:     "ends with branch",
			variable: "github.ref",
			pred:     RefEndsWith{Ref: BranchRef{Name: "-backport"}},
			expected: "(startsWith(github.ref, 'refs/heads/') && endsWith(github.ref, '-backport'))",
		},
		{
			name:     "ends with tag",
			variable: "github.ref",
			pred:     RefEndsWith{Ref: TagRef{Name: "-RC1"}},
			expected: "(startsWith(github.ref, 'refs/tags/') && endsWith(github.ref, '-RC1'))",
		},
		{
			name:     "contains branch",
			variable: "github.ref",
			pred:     RefContains{Ref: BranchRef{Name: "feature"}},
			expected: "(startsWith(github.ref, 'refs/heads/') && contains(github.ref, 'feature'))",
		},
		{
			name:     "contains tag with custom variable",
			variable: "thingy",
			pred:     RefContains{Ref: TagRef{Name: "other"}},
			expected: "(startsWith(thingy, 'refs/tags/') && contains(thingy, 'other'))",
		},
		{
			name:     "glob pattern passes through",
			variable: "github.ref",
			pred:     RefEquals{Ref: TagRef{Name: "v*"}},
			expected: "github.ref == 'refs/tags/v*'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompileBranchPredicate(tt.variable, tt.pred))
		})
	}
}
