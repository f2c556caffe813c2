package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quenby-systems/passgate/internal/config"
	"github.com/quenby-systems/passgate/internal/suggest"
)

var (
	generateCount int
	generateJSON  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print suggested secure passwords",
	Long: `Generate templated password suggestions (word pair, two digits, one
symbol) using a cryptographically secure random source. Word pools can be
overridden in the config file under generator.adjectives and
generator.nouns.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateCount, "count", 1, "Number of suggestions to generate")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if generateCount < 1 {
		generateCount = 1
	}

	gen := suggest.NewGenerator(cfg.Generator.Adjectives, cfg.Generator.Nouns, nil)
	passwords, err := gen.Passwords(generateCount)
	if err != nil {
		return fmt.Errorf("generating passwords: %w", err)
	}

	if generateJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string][]string{"passwords": passwords})
	}

	for _, p := range passwords {
		fmt.Println(p)
	}
	return nil
}
