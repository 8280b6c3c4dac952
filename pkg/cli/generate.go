// This file turns configuration files into committed workflow files: the
// file-writing collaborator around the pure compiler in pkg/workflow.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/ghagen/ghagen/pkg/envutil"
	"github.com/ghagen/ghagen/pkg/logger"
	"github.com/ghagen/ghagen/pkg/workflow"
)

var generateLog = logger.New("cli:generate")

// maxConcurrentCompiles bounds the generation pool. Compilation is pure CPU
// plus one small file write, so a modest cap is plenty.
func maxConcurrentCompiles() int {
	return envutil.GetIntFromEnv("GHAGEN_MAX_CONCURRENT_COMPILES", 8, 1, 64, generateLog)
}

// WorkflowFileName maps a configuration path to the name of the workflow
// file it generates: the config base name with a .yml extension.
func WorkflowFileName(configPath string) string {
	base := filepath.Base(configPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".yml"
}

// CompileConfig loads one configuration file and compiles it to the exact
// document bytes that belong on disk, trailing newline included.
func CompileConfig(configPath string) ([]byte, error) {
	wf, err := LoadWorkflowConfig(configPath)
	if err != nil {
		return nil, err
	}
	return []byte(workflow.CompileWorkflow(*wf) + "\n"), nil
}

// GenerateFile compiles one configuration file and writes the workflow
// document into outputDir, creating the directory if needed. It returns the
// path of the written file.
func GenerateFile(configPath, outputDir string) (string, error) {
	doc, err := CompileConfig(configPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outPath := filepath.Join(outputDir, WorkflowFileName(configPath))
	if err := os.WriteFile(outPath, doc, 0644); err != nil {
		return "", fmt.Errorf("failed to write workflow file: %w", err)
	}

	generateLog.Printf("Wrote %d bytes to %s", len(doc), outPath)
	return outPath, nil
}

// GenerateAll compiles every configuration reachable from the given paths
// (directories expand to their *.yml/*.yaml entries) in parallel. Written
// paths come back in the same deterministic order as the expanded configs,
// regardless of which compilation finished first.
func GenerateAll(configPaths []string, outputDir string) ([]string, error) {
	paths, err := expandConfigPaths(configPaths)
	if err != nil {
		return nil, err
	}
	generateLog.Printf("Generating %d workflow(s)", len(paths))

	written := make([]string, len(paths))
	p := pool.New().WithErrors().WithMaxGoroutines(maxConcurrentCompiles())
	for i, configPath := range paths {
		p.Go(func() error {
			outPath, err := GenerateFile(configPath, outputDir)
			if err != nil {
				return fmt.Errorf("%s: %w", configPath, err)
			}
			written[i] = outPath
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return written, nil
}

// expandConfigPaths resolves the mixed file/directory arguments into a
// sorted list of configuration files. A directory contributes its immediate
// *.yml and *.yaml entries.
func expandConfigPaths(configPaths []string) ([]string, error) {
	var paths []string
	for _, path := range configPaths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.IsDir() {
			paths = append(paths, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch filepath.Ext(entry.Name()) {
			case ".yml", ".yaml":
				paths = append(paths, filepath.Join(path, entry.Name()))
			}
		}
	}
	slices.Sort(paths)
	return slices.Compact(paths), nil
}
