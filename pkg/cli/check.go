package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghagen/ghagen/pkg/logger"
)

var checkLog = logger.New("cli:check")

// CheckStatus classifies a committed workflow file against a fresh
// compilation of its configuration.
type CheckStatus int

const (
	// CheckClean means the committed file matches the compiled output
	// byte for byte.
	CheckClean CheckStatus = iota
	// CheckStale means the file exists but differs from the compiled output.
	CheckStale
	// CheckMissing means no workflow file exists for the configuration.
	CheckMissing
)

func (s CheckStatus) String() string {
	switch s {
	case CheckClean:
		return "clean"
	case CheckStale:
		return "stale"
	case CheckMissing:
		return "missing"
	}
	return fmt.Sprintf("CheckStatus(%d)", int(s))
}

// CheckResult is the outcome for one configuration file.
type CheckResult struct {
	ConfigPath   string
	WorkflowPath string
	Status       CheckStatus
}

// CheckFile recompiles one configuration and byte-compares the result
// against the committed workflow file in outputDir.
func CheckFile(configPath, outputDir string) (CheckResult, error) {
	result := CheckResult{
		ConfigPath:   configPath,
		WorkflowPath: filepath.Join(outputDir, WorkflowFileName(configPath)),
	}

	expected, err := CompileConfig(configPath)
	if err != nil {
		return result, err
	}

	actual, err := os.ReadFile(result.WorkflowPath)
	if os.IsNotExist(err) {
		result.Status = CheckMissing
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("failed to read workflow file: %w", err)
	}

	if !bytes.Equal(expected, actual) {
		result.Status = CheckStale
	}
	checkLog.Printf("%s is %s", result.WorkflowPath, result.Status)
	return result, nil
}

// CheckAll checks every configuration reachable from the given paths, in
// deterministic order. It reports all results even when some configurations
// fail to compile; the first compile error is returned after the loop.
func CheckAll(configPaths []string, outputDir string) ([]CheckResult, error) {
	paths, err := expandConfigPaths(configPaths)
	if err != nil {
		return nil, err
	}

	var results []CheckResult
	var firstErr error
	for _, configPath := range paths {
		result, err := CheckFile(configPath, outputDir)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", configPath, err)
			}
			continue
		}
		results = append(results, result)
	}
	return results, firstErr
}
