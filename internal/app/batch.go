package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/quenby-systems/passgate/internal/analyzer"
	"github.com/quenby-systems/passgate/internal/config"
	"github.com/quenby-systems/passgate/internal/output"
)

var (
	batchFile        string
	batchJSON        bool
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate candidates from a file, one per line",
	Long: `Read candidate passwords from a file (one per line, blank lines
skipped), analyze them concurrently, and render a summary table. Batch
results are never recorded in the history database, and candidates are
shown only by line number and length.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchFile, "file", "", "File with one candidate per line (required)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Output as JSON")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 8, "Maximum concurrent analyses")
	_ = batchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(batchCmd)
}

// batchResult pairs a line number with its analysis.
type batchResult struct {
	Line   int             `json:"line"`
	Length int             `json:"length"`
	Result analyzer.Result `json:"result"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyColorPreference(cfg)

	candidates, err := readCandidates(batchFile)
	if err != nil {
		return fmt.Errorf("reading candidates: %w", err)
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no candidates found in %s", batchFile)
	}

	eng := newAnalyzer(cfg)

	// The engine is read-only after construction, so analyses for
	// different candidates run in parallel without coordination.
	results := make([]batchResult, len(candidates))
	var g errgroup.Group
	g.SetLimit(clampConcurrency(batchConcurrency))
	for i, candidate := range candidates {
		g.Go(func() error {
			results[i] = batchResult{
				Line:   i + 1,
				Length: len([]rune(candidate)),
				Result: eng.Analyze(candidate, analyzer.Context{}),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if batchJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	renderBatch(results)
	return nil
}

// clampConcurrency keeps the worker limit positive; zero or negative
// values would make every errgroup.Go call block.
func clampConcurrency(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// readCandidates loads non-empty lines from the given file.
func readCandidates(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func renderBatch(results []batchResult) {
	fmt.Println(output.Section("Batch Analysis"))
	fmt.Println()

	strong := 0
	tbl := output.NewTable("Line", "Length", "Score", "Entropy", "Strength", "Strong")
	for _, r := range results {
		verdict := output.StyleError.Render("no")
		if r.Result.IsStrong {
			verdict = output.StyleSuccess.Render("yes")
			strong++
		}
		tbl.AddRow(
			fmt.Sprintf("%d", r.Line),
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d/%d", r.Result.Score, r.Result.TotalPossible),
			fmt.Sprintf("%.1f", r.Result.Entropy),
			output.DisplayName(string(r.Result.Strength)),
			verdict,
		)
	}
	tbl.Print()

	fmt.Println()
	fmt.Printf(" %d of %d candidates are strong\n", strong, len(results))
}
