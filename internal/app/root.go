// Package app contains the Cobra command tree for passgate.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "passgate",
	Short: "Password strength analysis for account-creation flows",
	Long: `passgate evaluates candidate passwords against a battery of structural
and contextual checks: length, character classes, common-password lists,
sequential and keyboard patterns, dictionary words, and similarity to
user context. It reports a score, an entropy estimate, and a strength
label, and suggests a replacement when the candidate is weak.

Secrets are read from the terminal with echo disabled and are never
persisted; the optional history store records result summaries only.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("passgate", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  analyze   Evaluate a password and report its strength")
		fmt.Println("  batch     Evaluate candidates from a file, one per line")
		fmt.Println("  generate  Print suggested secure passwords")
		fmt.Println("  history   Show recorded analysis summaries")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/passgate/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
