// Package ffmpeg runs the ffmpeg binary.
package ffmpeg

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Command runs ffmpeg at Path. It satisfies trim.Processor.
type Command struct {
	Path   string
	Logger *slog.Logger
}

// New returns a Command for the binary at path.
func New(path string, logger *slog.Logger) *Command {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Command{Path: path, Logger: logger}
}

// Run executes ffmpeg with args and waits for it to exit.
// On failure the combined output is included in the error.
func (c *Command) Run(ctx context.Context, args []string) error {
	c.Logger.Debug("running ffmpeg", "path", c.Path, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, c.Path, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w\n%s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Version returns the first line of `ffmpeg -version`.
func (c *Command) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, c.Path, "-version").Output()
	if err != nil {
		return "", fmt.Errorf("ffmpeg -version: %w", err)
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line), nil
}
