//go:build !integration

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghagen/ghagen/pkg/testutil"
)

const buildConfig = `name: CI
branches: [main]
jobs:
  - id: build
    name: Build and Test
    steps:
      - checkout: true
      - sbt: [test]
`

func TestWorkflowFileName(t *testing.T) {
	tests := []struct {
		configPath string
		expected   string
	}{
		{"ci.yml", "ci.yml"},
		{"release.yaml", "release.yml"},
		{"workflows/nightly.yml", "nightly.yml"},
		{"noext", "noext.yml"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, WorkflowFileName(tt.configPath))
	}
}

func TestGenerateFile(t *testing.T) {
	dir := testutil.TempDir(t, "generate-test-*")
	configPath := filepath.Join(dir, "ci.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(buildConfig), 0644))

	outputDir := filepath.Join(dir, "out")
	outPath, err := GenerateFile(configPath, outputDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "ci.yml"), outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "# This file was automatically generated by ghagen"))
	assert.True(t, strings.HasSuffix(content, "\n"), "written document ends with a newline")

	expected := `name: CI

on:
  pull_request:
    branches: [main]
  push:
    branches: [main]

jobs:
  build:
    name: Build and Test
    strategy:
      matrix:
        os: [ubuntu-latest]
        scala: [2.13.1]
        java: [adopt@1.8]
    runs-on: ${{ matrix.os }}
    steps:
      - name: Checkout current branch (fast)
        uses: actions/checkout@v2

      - run: sbt ++${{ matrix.scala }} test
`
	assert.Equal(t, expected, testutil.StripYAMLCommentHeader(content))
}

// Regenerating an unchanged configuration reproduces the file byte for byte.
func TestGenerateFile_Deterministic(t *testing.T) {
	dir := testutil.TempDir(t, "generate-test-*")
	configPath := filepath.Join(dir, "ci.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(buildConfig), 0644))

	outputDir := filepath.Join(dir, "out")
	outPath, err := GenerateFile(configPath, outputDir)
	require.NoError(t, err)
	first, err := os.ReadFile(outPath)
	require.NoError(t, err)

	_, err = GenerateFile(configPath, outputDir)
	require.NoError(t, err)
	second, err := os.ReadFile(outPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateAll_ExpandsDirectories(t *testing.T) {
	dir := testutil.TempDir(t, "generate-test-*")
	configDir := filepath.Join(dir, "configs")
	require.NoError(t, os.MkdirAll(configDir, 0755))

	for _, name := range []string{"release.yml", "ci.yml", "notes.txt"} {
		content := strings.Replace(buildConfig, "name: CI", "name: "+name, 1)
		require.NoError(t, os.WriteFile(filepath.Join(configDir, name), []byte(content), 0644))
	}

	outputDir := filepath.Join(dir, "out")
	written, err := GenerateAll([]string{configDir}, outputDir)
	require.NoError(t, err)

	// Sorted config order, non-YAML entries ignored.
	assert.Equal(t, []string{
		filepath.Join(outputDir, "ci.yml"),
		filepath.Join(outputDir, "release.yml"),
	}, written)
}

func TestGenerateAll_ReportsFailingConfig(t *testing.T) {
	dir := testutil.TempDir(t, "generate-test-*")
	configPath := filepath.Join(dir, "broken.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("name: CI\n"), 0644))

	_, err := GenerateAll([]string{configPath}, filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yml")
}

func TestExpandConfigPaths_MissingPath(t *testing.T) {
	_, err := expandConfigPaths([]string{"/nonexistent/configs"})
	require.Error(t, err)
}
