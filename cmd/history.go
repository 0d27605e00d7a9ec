package cmd

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/user/vidtrim/config"
	"github.com/user/vidtrim/db"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent trim runs",
	Long:  `Display the most recent trim runs with their job counts and merge outcome.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		database, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer database.Close()

		runs, err := db.SelectRecentRuns(database, limit)
		if err != nil {
			return fmt.Errorf("failed to query runs: %w", err)
		}

		out := cmd.OutOrStdout()
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDate\tVideo\tTrimmed\tMerge\tOutput")
		fmt.Fprintln(w, "--\t----\t-----\t-------\t-----\t------")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%s\t%s\n",
				shortID(r.ID),
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
				filepath.Base(r.SourcePath),
				r.Succeeded, r.Total,
				r.MergeStatus,
				r.OutputDir,
			)
		}
		w.Flush()

		if len(runs) == 0 {
			color.New(color.FgYellow).Fprintln(out, "\nNo runs recorded yet.")
		} else {
			fmt.Fprintf(out, "\n%d run(s) shown.\n", len(runs))
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the jobs of a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer database.Close()

		runID, err := resolveRunID(database, args[0])
		if err != nil {
			return err
		}

		jobs, err := db.SelectRunJobs(database, runID)
		if err != nil {
			return fmt.Errorf("failed to query jobs: %w", err)
		}

		out := cmd.OutOrStdout()
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tStart\tEnd\tResult\tOutput")
		fmt.Fprintln(w, "-\t-----\t---\t------\t------")
		for _, j := range jobs {
			result := "ok"
			if !j.Succeeded {
				result = "failed"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", j.Sequence, j.StartTime, j.EndTime, result, filepath.Base(j.OutputPath))
		}
		w.Flush()

		for _, j := range jobs {
			if j.Error != "" {
				color.New(color.FgRed).Fprintf(out, "\njob %d: %s\n", j.Sequence, j.Error)
			}
		}
		return nil
	},
}

func openHistory(cmd *cobra.Command) (*sql.DB, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	cfg, err := config.Load(verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.HistoryDisabled {
		return nil, fmt.Errorf("history is disabled (%s)", config.EnvNoHistory)
	}
	database, err := db.Open(cfg.HistoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return database, nil
}

// resolveRunID expands a unique ID prefix, as printed by the history list.
func resolveRunID(database *sql.DB, prefix string) (string, error) {
	runs, err := db.SelectRunsByIDPrefix(database, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to query runs: %w", err)
	}
	switch len(runs) {
	case 0:
		return "", fmt.Errorf("no run matches %q", prefix)
	case 1:
		return runs[0], nil
	}
	return "", fmt.Errorf("%q matches %d runs, use more characters", prefix, len(runs))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "Number of runs to show")
	historyCmd.AddCommand(historyShowCmd)
}
