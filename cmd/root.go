package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"textsim/internal/config"
	"textsim/internal/freq"
	"textsim/internal/output"
	"textsim/internal/similarity"
	"textsim/internal/store"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "textsim <original-file> <copy-file> <output-file>",
	Short: "Score how similar two text files are by character distribution",
	Long: `Textsim reads two text files, builds a character frequency table for each,
computes the cosine similarity of the two count vectors, and writes the
score (two decimal places) to an output file, creating parent directories
as needed. Line endings are normalized so CRLF and LF text compare equal.`,
	Args:          compareArgs,
	RunE:          runCompare,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default %s)", defaultConfigPath()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// compareArgs validates the argument count before any I/O happens, so a bad
// invocation never touches the filesystem.
func compareArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(3)(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".textsim/config.yaml"
	}
	return home + "/.textsim/config.yaml"
}

func setupLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Log.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// loadConfig loads the config file. A missing file at the default path is
// fine (defaults apply); an explicitly passed --config that cannot be read
// is an error.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadDefault(defaultConfigPath())
}

func runCompare(cmd *cobra.Command, args []string) error {
	originalPath, copyPath, outputPath := args[0], args[1], args[2]

	cfg, err := loadConfig()
	if err != nil {
		return &ioError{err: err}
	}
	logger := setupLogger(cfg)

	original, err := freq.FromFile(originalPath)
	if err != nil {
		return &ioError{err: err}
	}
	copied, err := freq.FromFile(copyPath)
	if err != nil {
		return &ioError{err: err}
	}

	score := similarity.Cosine(original, copied)
	rendered := output.FormatScore(score)
	logger.Debug("similarity computed",
		"original", originalPath, "copy", copyPath, "score", rendered)

	if err := output.Write(outputPath, rendered); err != nil {
		return &ioError{err: err}
	}

	if cfg.History.Path != "" {
		if err := recordComparison(cfg.History.Path, originalPath, copyPath, score); err != nil {
			logger.Warn("failed to record comparison", "error", err)
		}
	}

	return nil
}

// recordComparison appends a successful run to the history database. History
// failures are reported by the caller as warnings and never affect the
// output file or the exit code.
func recordComparison(path, original, copied string, score float64) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.RecordComparison(original, copied, score)
}
