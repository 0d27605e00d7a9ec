package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/user/vidtrim/config"
	"github.com/user/vidtrim/db"
	"github.com/user/vidtrim/deps"
	"github.com/user/vidtrim/pkg/ffmpeg"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that ffmpeg is installed and the run history database can be opened.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		ok := color.New(color.FgGreen)
		bad := color.New(color.FgRed)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Checking dependencies...")
		fmt.Fprintln(out)

		cfg, err := config.Load(verbose)
		if err != nil {
			bad.Fprintf(out, "✗ config: %v\n", err)
			os.Exit(1)
		}

		allGood := true

		path, err := deps.LocateFfmpeg(cfg.FfmpegPath)
		if err != nil {
			bad.Fprintln(out, "✗ ffmpeg: NOT FOUND")
			fmt.Fprintf(out, "  Install from: %s\n", deps.FfmpegInstallURL)
			allGood = false
		} else {
			version, verr := ffmpeg.New(path, nil).Version(cmd.Context())
			if verr != nil {
				version = path
			}
			ok.Fprintf(out, "✓ ffmpeg: OK")
			fmt.Fprintf(out, " (%s)\n", version)
		}

		switch {
		case cfg.HistoryDisabled:
			fmt.Fprintln(out, "- history: disabled")
		default:
			database, err := db.Open(cfg.HistoryPath)
			if err != nil {
				bad.Fprintf(out, "✗ history: %v\n", err)
				allGood = false
			} else {
				database.Close()
				ok.Fprintf(out, "✓ history: OK")
				fmt.Fprintf(out, " (%s)\n", cfg.HistoryPath)
			}
		}

		fmt.Fprintln(out)
		if allGood {
			fmt.Fprintln(out, "All dependencies are installed!")
		} else {
			fmt.Fprintln(out, "Some dependencies are missing. Please install them to use all features.")
			os.Exit(1)
		}
	},
}
