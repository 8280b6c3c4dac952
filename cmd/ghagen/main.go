// ghagen compiles workflow configurations into GitHub Actions YAML files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghagen/ghagen/pkg/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "ghagen",
	Short: "Generate GitHub Actions workflows from typed configuration",
	Long: `ghagen compiles declarative workflow configurations (jobs, steps,
build matrices, trigger filters) into exactly formatted GitHub Actions
workflow files. Generated files are deterministic: recompiling an
unchanged configuration reproduces the committed file byte for byte.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(cli.NewGenerateCommand())
	rootCmd.AddCommand(cli.NewCheckCommand())
	rootCmd.AddCommand(cli.NewWatchCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
