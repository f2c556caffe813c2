package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quenby-systems/passgate/internal/config"
	"github.com/quenby-systems/passgate/internal/output"
	"github.com/quenby-systems/passgate/internal/store"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded analysis summaries",
	Long: `List recent analysis summaries from the history database, newest
first. Rows hold scores, entropy, and failed-check names only; the
analyzed passwords themselves are never stored.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyColorPreference(cfg)

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer func() { _ = db.Close() }()

	analyses, err := db.GetRecentAnalyses(historyLimit)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if historyJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"analyses": analyses})
	}

	if len(analyses) == 0 {
		fmt.Println(" No recorded analyses. Run 'passgate analyze' to create one.")
		return nil
	}

	fmt.Println(output.Section("Analysis History"))
	fmt.Println()

	tbl := output.NewTable("When", "Source", "Score", "Entropy", "Strength", "Failed Checks")
	for _, a := range analyses {
		failed := strings.Join(a.FailedChecks, ", ")
		if failed == "" {
			failed = "-"
		}
		tbl.AddRow(
			a.RecordedAt.Local().Format("2006-01-02 15:04"),
			a.Source,
			fmt.Sprintf("%d/%d", a.Score, a.TotalPossible),
			fmt.Sprintf("%.1f", a.Entropy),
			output.DisplayName(a.Strength),
			failed,
		)
	}
	tbl.Print()

	counts, err := db.CountByStrength()
	if err != nil {
		return fmt.Errorf("aggregating history: %w", err)
	}
	strong := counts["excellent"] + counts["very_strong"]
	fmt.Println()
	fmt.Printf(" %d recorded, %d rated very strong or better\n", len(analyses), strong)
	return nil
}
