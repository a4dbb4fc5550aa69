package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"textsim/internal/output"
	"textsim/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent comparisons from the history database",
	Long: `History lists comparisons recorded by previous runs, newest first.
Recording is off unless history.path is set in the config file.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return &ioError{err: err}
	}
	if cfg.History.Path == "" {
		return fmt.Errorf("no history database configured (set history.path in %s)", defaultConfigPath())
	}

	db, err := store.Open(cfg.History.Path)
	if err != nil {
		return &ioError{err: err}
	}
	defer db.Close()

	comparisons, err := db.RecentComparisons(historyLimit)
	if err != nil {
		return err
	}
	if len(comparisons) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No comparisons recorded.")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderHistoryTable(comparisons))
	return nil
}

func renderHistoryTable(comparisons []store.Comparison) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"WHEN", "ORIGINAL", "COPY", "SCORE"})

	for _, c := range comparisons {
		tw.AppendRow(table.Row{
			c.CreatedAt.Format("2006-01-02 15:04"),
			c.Original,
			c.Copy,
			output.FormatScore(c.Score),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
