// Package main provides the CLI entrypoint for flashcards.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/flashcards/internal/config"
	"github.com/verte-zerg/flashcards/internal/corpus"
	"github.com/verte-zerg/flashcards/internal/generator"
	"github.com/verte-zerg/flashcards/internal/lineui"
	"github.com/verte-zerg/flashcards/internal/logging"
	"github.com/verte-zerg/flashcards/internal/model"
	"github.com/verte-zerg/flashcards/internal/session"
	"github.com/verte-zerg/flashcards/internal/stats"
	"github.com/verte-zerg/flashcards/internal/translit"
	"github.com/verte-zerg/flashcards/internal/tui"
)

const (
	defaultDataset  = "countries.json"
	defaultLogLevel = "warn"
)

var (
	practiceBias    float64
	practiceHistory int
	practiceTable   string
	practicePlain   bool

	countriesRadius int
	countriesSize   int

	logFile  string
	logLevel string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "flashcards [corpus.json...]",
		Short:         "Terminal vocabulary and country drills",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runWordsCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.Float64Var(&practiceBias, "bias", generator.DefaultMissBias, "probability of drawing from recent misses (0-1)")
	flags.IntVar(&practiceHistory, "history", stats.DefaultHistorySize, "number of recent answers kept for stats and bias")
	flags.StringVar(&practiceTable, "table", "", "transliteration table (default: built-in katakana)")
	flags.BoolVar(&practicePlain, "plain", false, "use the line-oriented interface")
	flags.StringVar(&logFile, "log-file", "", "write logs to file instead of stderr")
	flags.StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newCountriesCmd())
	rootCmd.AddCommand(newKanaCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func loadSettings(cmd *cobra.Command) (config.FileConfig, *zap.SugaredLogger, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "bias", &practiceBias, fileCfg.Practice.MissBias)
	applyIntConfig(cmd, "history", &practiceHistory, fileCfg.Practice.History)
	applyStringConfig(cmd, "table", &practiceTable, fileCfg.Practice.TablePath)
	applyBoolConfig(cmd, "plain", &practicePlain, fileCfg.Practice.Plain)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)

	log, err := logging.New(logFile, logLevel)
	if err != nil {
		return config.FileConfig{}, nil, err
	}
	return fileCfg, log, nil
}

func runWordsCmd(cmd *cobra.Command, args []string) error {
	fileCfg, log, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	files := args
	if len(files) == 0 {
		files, err = config.FlattenFiles(fileCfg.Practice.Files)
		if err != nil {
			return fmt.Errorf("invalid practice.files: %w", err)
		}
	}
	cfg := model.Config{
		Mode:        model.ModeWords,
		Files:       resolvePaths(files),
		MissBias:    practiceBias,
		HistorySize: practiceHistory,
		TablePath:   config.ResolveDataPath(practiceTable),
		Plain:       practicePlain,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	c, err := corpus.LoadWords(cfg.Files)
	if err != nil {
		return err
	}
	table, err := loadTable(cfg.TablePath)
	if err != nil {
		return err
	}
	log.Infow("corpus loaded", "files", cfg.Files, "entries", c.Len())

	deck := session.NewWordDeck(c, table, generator.New(cfg.MissBias))
	return runSession(cmd, cfg, deck, log)
}

func newCountriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "countries [dataset.json]",
		Short: "Rank countries by population",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCountriesCmd,
	}
	cmd.Flags().IntVar(&countriesRadius, "radius", generator.DefaultRadius, "rank distance of sampled countries from the window center")
	cmd.Flags().IntVar(&countriesSize, "size", generator.DefaultRankSize, "countries per question")
	return cmd
}

func runCountriesCmd(cmd *cobra.Command, args []string) error {
	fileCfg, log, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	dataset := defaultDataset
	applyStringConfig(cmd, "dataset", &dataset, fileCfg.Countries.Dataset)
	if len(args) == 1 {
		dataset = args[0]
	}
	applyIntConfig(cmd, "radius", &countriesRadius, fileCfg.Countries.Radius)
	applyIntConfig(cmd, "size", &countriesSize, fileCfg.Countries.Size)

	cfg := model.Config{
		Mode:        model.ModeCountries,
		Dataset:     config.ResolveDataPath(dataset),
		MissBias:    practiceBias,
		HistorySize: practiceHistory,
		Radius:      countriesRadius,
		RankSize:    countriesSize,
		Plain:       practicePlain,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	countries, err := corpus.LoadCountries(cfg.Dataset, cfg.RankSize)
	if err != nil {
		return err
	}
	log.Infow("dataset loaded", "path", cfg.Dataset, "countries", len(countries))

	deck := session.NewCountryDeck(countries, generator.New(cfg.MissBias), cfg.RankSize, cfg.Radius)
	return runSession(cmd, cfg, deck, log)
}

func runSession(cmd *cobra.Command, cfg model.Config, deck session.Deck, log *zap.SugaredLogger) error {
	s := session.New(deck, stats.NewTracker(cfg.HistorySize), log)
	out := cmd.OutOrStdout()

	var summary model.Summary
	if cfg.Plain || !interactive() {
		var err error
		summary, err = lineui.Run(cmd.InOrStdin(), out, s)
		if err != nil {
			return fmt.Errorf("failed to run line interface: %w", err)
		}
	} else {
		m := tui.NewModel(s)
		program := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		var ok bool
		if summary, ok = m.Summary(); !ok {
			summary = s.Quit()
		}
	}

	if err := stats.RenderSummary(out, summary); err != nil {
		log.Warnw("failed to print summary", "error", err)
	}
	return nil
}

func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func loadTable(path string) (*translit.Table, error) {
	if path == "" {
		return translit.Default()
	}
	return translit.Load(path)
}

func newKanaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kana",
		Short: "Print the transliteration table",
		Args:  cobra.NoArgs,
		RunE:  runKanaCmd,
	}
}

func runKanaCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "table", &practiceTable, fileCfg.Practice.TablePath)
	table, err := loadTable(config.ResolveDataPath(practiceTable))
	if err != nil {
		return err
	}
	return writeKana(cmd.OutOrStdout(), table)
}

func writeKana(w io.Writer, table *translit.Table) error {
	entries := table.Entries()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Text, e.Reading})
	}
	return stats.WriteTable(w, []string{"Kana", "Reading"}, rows, nil)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func resolvePaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, config.ResolveDataPath(p))
	}
	return out
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# flashcards configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# files = ["words.json", ["verbs.json", "nouns.json"]]  # Corpora used when none are given
# bias = %.2f             # Probability of drawing from recent misses (0-1)
# history = %d            # Recent answers kept for stats and bias
# table = ""              # Transliteration table (empty: built-in katakana)
# plain = false           # Always use the line-oriented interface

[countries]
# dataset = %q   # Country dataset
# radius = %d             # Rank distance of sampled countries from the window center
# size = %d                # Countries per question

[log]
# file = ""               # Log file (empty: stderr)
# level = %q          # debug, info, warn, error
`,
		generator.DefaultMissBias,
		stats.DefaultHistorySize,
		defaultDataset,
		generator.DefaultRadius,
		generator.DefaultRankSize,
		defaultLogLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.MissBias < 0 || cfg.MissBias > 1 {
		return fmt.Errorf("--bias must be between 0 and 1")
	}
	if cfg.HistorySize < 1 {
		return fmt.Errorf("--history must be >= 1")
	}
	switch cfg.Mode {
	case model.ModeWords:
		if len(cfg.Files) == 0 {
			return fmt.Errorf("no corpus files given (pass paths or set practice.files in %s)", config.DefaultConfigPath())
		}
	case model.ModeCountries:
		if cfg.Dataset == "" {
			return fmt.Errorf("country dataset path is empty")
		}
		if cfg.Radius < 1 {
			return fmt.Errorf("--radius must be >= 1")
		}
		if cfg.RankSize < 2 {
			return fmt.Errorf("--size must be >= 2")
		}
	}
	return nil
}
