package app

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quenby-systems/passgate/internal/analyzer"
	"github.com/quenby-systems/passgate/internal/config"
	"github.com/quenby-systems/passgate/internal/output"
	"github.com/quenby-systems/passgate/internal/store"
	"github.com/quenby-systems/passgate/internal/suggest"
	"github.com/quenby-systems/passgate/internal/wordlist"
)

var (
	analyzeUsername    string
	analyzeEmail       string
	analyzeOldPassword string
	analyzeJSON        bool
	analyzeNoRecord    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Evaluate a password and report its strength",
	Long: `Prompt for a password (echo disabled on a terminal, or read from stdin
when piped), run the full check battery, and report score, entropy, and
strength label. Supplying --username, --email, or --old-password enables
the corresponding contextual checks.

A result summary (never the password itself) is recorded in the history
database unless --no-record is given.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeUsername, "username", "", "Username to check the password against")
	analyzeCmd.Flags().StringVar(&analyzeEmail, "email", "", "Email address to check the password against")
	analyzeCmd.Flags().StringVar(&analyzeOldPassword, "old-password", "", "Previous password to check similarity against")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeNoRecord, "no-record", false, "Do not record a summary in the history database")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyColorPreference(cfg)

	password, err := readSecret()
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	if password == "" {
		return errors.New("password cannot be empty")
	}

	eng := newAnalyzer(cfg)
	result := eng.Analyze(password, analyzer.Context{
		Username:    analyzeUsername,
		Email:       analyzeEmail,
		OldPassword: analyzeOldPassword,
	})

	var suggestion string
	if !result.IsStrong {
		gen := suggest.NewGenerator(cfg.Generator.Adjectives, cfg.Generator.Nouns, nil)
		suggestion, err = gen.Password()
		if err != nil {
			return fmt.Errorf("generating suggestion: %w", err)
		}
	}

	if cfg.History.Enabled && !analyzeNoRecord {
		if err := recordAnalysis(result, "analyze"); err != nil && flagVerbose {
			fmt.Fprintln(os.Stderr, "warning: recording history:", err)
		}
	}

	if analyzeJSON || flagJSON {
		return outputAnalyzeJSON(result, suggestion)
	}

	renderAnalysis(result, suggestion)
	return nil
}

// newAnalyzer builds the engine with the configured reference lists.
// List-load failures degrade to defaults or an absent list; they never
// block analysis.
func newAnalyzer(cfg *config.Config) *analyzer.Analyzer {
	common := wordlist.LoadCommon(cfg.Wordlists.CommonPath)
	dict := wordlist.LoadDictionary(cfg.Wordlists.DictionaryPath)
	if dict == nil {
		return analyzer.New(common, nil)
	}
	return analyzer.New(common, dict)
}

// readSecret collects the candidate: hidden terminal input when stdin is
// a TTY, otherwise one line from stdin.
func readSecret() (string, error) {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		fmt.Fprint(os.Stderr, "Enter password to analyze: ")
		b, err := term.ReadPassword(int(fd))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func recordAnalysis(result analyzer.Result, source string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	failed := make([]string, len(result.FailedChecks))
	for i, id := range result.FailedChecks {
		failed[i] = string(id)
	}

	_, err = db.InsertAnalysis(&store.AnalysisRow{
		Source:        source,
		Score:         result.Score,
		TotalPossible: result.TotalPossible,
		Strength:      string(result.Strength),
		Entropy:       result.Entropy,
		IsStrong:      result.IsStrong,
		FailedChecks:  failed,
	})
	return err
}

func outputAnalyzeJSON(result analyzer.Result, suggestion string) error {
	payload := map[string]any{
		"result": result,
	}
	if suggestion != "" {
		payload["suggestion"] = suggestion
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func renderAnalysis(result analyzer.Result, suggestion string) {
	fmt.Println(output.Section("Password Analysis"))
	fmt.Println()
	fmt.Printf(" Strength:  %s\n", output.StrengthLabel(result.Strength))
	fmt.Printf(" Score:     %s\n", output.ScoreBar(result.Score, result.TotalPossible, 24))
	fmt.Printf(" Entropy:   %.1f bits\n", result.Entropy)

	if len(result.FailedChecks) > 0 {
		fmt.Println()
		fmt.Println(" Failed checks:")
		for _, id := range result.FailedChecks {
			fmt.Printf("   %s %s\n", output.StyleError.Render("✗"), output.DisplayName(string(id)))
		}
	}

	if suggestion != "" {
		fmt.Println()
		fmt.Printf(" Suggested secure password: %s\n", output.StyleBold.Render(suggestion))
	}
}

func applyColorPreference(cfg *config.Config) {
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
		return
	}
	output.AutoDetect()
}
