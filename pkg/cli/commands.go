// This file defines the cobra subcommands. Commands stay thin: argument and
// flag handling plus output formatting, with the work done by the functions
// in generate.go, check.go, and watch.go.

package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ghagen/ghagen/pkg/console"
)

const defaultOutputDir = ".github/workflows"

// NewGenerateCommand compiles configurations and writes workflow files.
func NewGenerateCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "generate [config]...",
		Short: "Compile workflow configurations into GitHub Actions YAML",
		Long: `Compile one or more workflow configuration files into GitHub Actions
workflow files. Directory arguments expand to the *.yml and *.yaml files
they contain. Generated files should be committed to the repository.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")

			written, err := GenerateAll(args, outputDir)
			if err != nil {
				fmt.Fprintln(os.Stderr, formatLoadError(args[0], err))
				return errors.New("generation failed")
			}
			for _, path := range written {
				if verbose {
					fmt.Println(console.FormatSuccessMessage("wrote " + path))
				}
			}
			fmt.Println(console.FormatInfoMessage(fmt.Sprintf("generated %d workflow file(s)", len(written))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", defaultOutputDir, "directory to write workflow files to")
	return cmd
}

// NewCheckCommand verifies that committed workflow files are up to date.
func NewCheckCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "check [config]...",
		Short: "Verify committed workflow files match their configurations",
		Long: `Recompile each configuration and compare the result byte for byte
against the committed workflow file. Exits non-zero when any file is
missing or stale, which makes this suitable as a CI guard.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")

			results, err := CheckAll(args, outputDir)
			if err != nil {
				fmt.Fprintln(os.Stderr, formatLoadError(args[0], err))
				return errors.New("check failed")
			}

			dirty := 0
			for _, result := range results {
				switch result.Status {
				case CheckClean:
					if verbose {
						fmt.Println(console.FormatSuccessMessage(result.WorkflowPath + " is up to date"))
					}
				case CheckStale:
					dirty++
					fmt.Println(console.FormatWarningMessage(result.WorkflowPath + " is stale"))
				case CheckMissing:
					dirty++
					fmt.Println(console.FormatErrorMessage(result.WorkflowPath + " is missing"))
				}
			}

			if dirty > 0 {
				hint := "run 'ghagen generate' and commit the result"
				if IsRunningInCI() {
					hint = "regenerate workflow files locally with 'ghagen generate' and push the result"
				}
				fmt.Println(console.FormatInfoMessage(hint))
				return fmt.Errorf("%d workflow file(s) out of date", dirty)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", defaultOutputDir, "directory containing committed workflow files")
	return cmd
}

// NewWatchCommand regenerates workflow files as configurations change.
func NewWatchCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "watch [config]...",
		Short: "Regenerate workflow files whenever configurations change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return Watch(ctx, args, outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", defaultOutputDir, "directory to write workflow files to")
	return cmd
}
