// Package config builds the run configuration from flags, the environment and
// an optional .env file.
package config

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvFfmpeg    = "VIDTRIM_FFMPEG"
	EnvHistoryDB = "VIDTRIM_HISTORY_DB"
	EnvNoHistory = "VIDTRIM_NO_HISTORY"
)

// Config is passed explicitly to every component that needs it.
type Config struct {
	Verbose bool
	// FfmpegPath overrides the ffmpeg lookup on PATH.
	FfmpegPath string
	// HistoryPath is the SQLite run history file.
	HistoryPath     string
	HistoryDisabled bool
	// WorkDir is where videos are scanned and relative paths are shown from.
	WorkDir string
}

// Load reads .env from the working directory when present, then the environment.
func Load(verbose bool) (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadFrom(wd, verbose)
}

// LoadFrom is Load with an explicit working directory.
// Variables already set in the environment take precedence over .env.
func LoadFrom(workDir string, verbose bool) (*Config, error) {
	if err := godotenv.Load(filepath.Join(workDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{
		Verbose:    verbose,
		FfmpegPath: os.Getenv(EnvFfmpeg),
		WorkDir:    workDir,
	}

	cfg.HistoryPath = os.Getenv(EnvHistoryDB)
	if cfg.HistoryPath == "" {
		p, err := DefaultHistoryPath()
		if err != nil {
			cfg.HistoryDisabled = true
		}
		cfg.HistoryPath = p
	}

	if v := os.Getenv(EnvNoHistory); v != "" {
		disabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		cfg.HistoryDisabled = cfg.HistoryDisabled || disabled
	}

	return cfg, nil
}

// DefaultHistoryPath returns ~/.local/share/vidtrim/history.db.
func DefaultHistoryPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "vidtrim", "history.db"), nil
}

// Logger returns the diagnostics logger. Everything is discarded unless verbose.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	if !c.Verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
