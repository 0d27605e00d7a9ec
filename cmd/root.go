package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/vidtrim/config"
	"github.com/user/vidtrim/deps"
	"github.com/user/vidtrim/pkg/ffmpeg"
	"github.com/user/vidtrim/trim"
	"github.com/user/vidtrim/tui"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "vidtrim",
	Short: "Trim a video into segments and optionally merge them",
	Long: `vidtrim trims a video from the current directory into one file per
timestamp using ffmpeg stream copy, then optionally merges the trimmed
files back into a single video.

Timestamps use the "hh:mm:ss - hh:mm:ss" format.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vidtrim version %s\n", Version)
	},
}

func runRoot(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	cfg, err := config.Load(verbose)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := cfg.Logger(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	status := tui.NewPlainStatus(out)
	if tui.IsTerminal(out) {
		status = tui.NewStatus(out)
	}

	return startup{
		cfg:      cfg,
		logger:   logger,
		status:   status,
		locate:   deps.LocateFfmpeg,
		prompter: tui.NewShell(cfg.WorkDir, status, logger),
		newProcessor: func(path string) trim.Processor {
			return ffmpeg.New(path, logger)
		},
		recorder: newRecorder(cfg),
		summary:  renderSummary,
		out:      out,
	}.run(cmd.Context())
}

// startup checks dependencies and hands over to a session.
type startup struct {
	cfg          *config.Config
	logger       *slog.Logger
	status       Reporter
	locate       func(override string) (string, error)
	prompter     Prompter
	newProcessor func(ffmpegPath string) trim.Processor
	recorder     Recorder
	summary      func(trim.Summary) string
	out          io.Writer
}

// run reports a missing ffmpeg and returns before any prompt is shown.
func (st startup) run(ctx context.Context) error {
	st.status.Start("Preparing dependencies.")
	ffmpegPath, err := st.locate(st.cfg.FfmpegPath)
	if err != nil {
		st.status.Fail("FFMPEG is not found.")
		st.logger.Debug("locate ffmpeg", "err", err)
		return nil
	}
	st.status.Stop()
	st.logger.Debug("using ffmpeg", "path", ffmpegPath)

	s := &session{
		cfg:       st.cfg,
		logger:    st.logger,
		status:    st.status,
		prompter:  st.prompter,
		processor: st.newProcessor(ffmpegPath),
		recorder:  st.recorder,
		now:       time.Now,
		summary:   st.summary,
		out:       st.out,
	}
	return s.run(ctx)
}

func renderSummary(sum trim.Summary) string {
	return tui.RenderSummary(sum, tui.SummaryWidth)
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show verbose logs for debugging.")
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		c.PrintErrln(c.UsageString())
		return err
	})

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(historyCmd)
}

// Execute runs the root command. Errors are logged only in verbose mode;
// the exit code is 1 either way.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		reportFatal(os.Stderr, verbose, err)
		os.Exit(1)
	}
}

// reportFatal logs err through the verbose logger; it is silent otherwise.
func reportFatal(w io.Writer, verbose bool, err error) {
	cfg := &config.Config{Verbose: verbose}
	cfg.Logger(w).Error("vidtrim failed", "err", err)
}
