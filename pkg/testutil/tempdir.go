// Package testutil provides shared helpers for tests across the repository.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

var (
	testRunOnce sync.Once
	testRunDir  string
)

// GetTestRunDir returns a directory shared by every test in this process
// run. Grouping per-test temp dirs under one session directory makes stray
// artifacts from failed runs easy to find and to sweep.
func GetTestRunDir() string {
	testRunOnce.Do(func() {
		base := filepath.Join(os.TempDir(), "ghagen", "test-runs")
		if err := os.MkdirAll(base, 0755); err != nil {
			panic(fmt.Sprintf("testutil: failed to create test run base dir: %v", err))
		}
		dir, err := os.MkdirTemp(base, fmt.Sprintf("run-%d-", os.Getpid()))
		if err != nil {
			panic(fmt.Sprintf("testutil: failed to create test run dir: %v", err))
		}
		testRunDir = dir
	})
	return testRunDir
}

// TempDir creates a temporary directory under the test run directory using
// the given MkdirTemp pattern. The directory is removed when the test ends.
func TempDir(t *testing.T, pattern string) string {
	t.Helper()
	dir, err := os.MkdirTemp(GetTestRunDir(), pattern)
	if err != nil {
		t.Fatalf("failed to create temp directory: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}
