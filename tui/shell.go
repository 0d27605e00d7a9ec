package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/user/vidtrim/pkg/timeutil"
	"github.com/user/vidtrim/trim"
	"github.com/user/vidtrim/tui/forms"
	"github.com/user/vidtrim/tui/styles"
)

// Shell collects the inputs of a trim session through interactive prompts.
type Shell struct {
	WorkDir string
	Status  *Status
	Logger  *slog.Logger
}

// NewShell returns a Shell scanning workDir.
func NewShell(workDir string, status *Status, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Shell{WorkDir: workDir, Status: status, Logger: logger}
}

// SelectVideo lists the videos in WorkDir and asks the user to pick one.
// It returns trim.ErrNoVideos when there is nothing to pick.
func (s *Shell) SelectVideo() (string, error) {
	dir := styles.Path.Render(s.WorkDir)
	s.Status.Start(fmt.Sprintf("Scanning videos in \"%s\" directory.", dir))

	names, err := trim.ScanVideos(s.WorkDir)
	if errors.Is(err, trim.ErrNoVideos) {
		s.Status.Fail(fmt.Sprintf("There's no video on \"%s\" directory.", dir))
		return "", err
	}
	if err != nil {
		s.Status.Fail(fmt.Sprintf("Could not read \"%s\" directory.", dir))
		return "", err
	}
	s.Status.Succeed(fmt.Sprintf("Found %d videos in \"%s\" directory.", len(names), dir))

	var choice string
	if err := forms.NewVideoForm(names, &choice).Run(); err != nil {
		return "", err
	}
	s.Logger.Debug("video selected", "name", choice)
	return filepath.Join(s.WorkDir, choice), nil
}

// AskTimestamps asks for ranges until the user declines to add another.
// Invalid input is rejected inside the prompt, so only accepted ranges are returned.
func (s *Shell) AskTimestamps() ([]timeutil.TimeRange, error) {
	var set timeutil.RangeSet
	for {
		var raw string
		var more bool
		form := forms.NewTimestampForm(&raw, &more, timestampValidator(&set))
		if err := form.Run(); err != nil {
			return nil, err
		}

		if strings.TrimSpace(raw) != "" {
			r, err := set.Add(raw)
			if err != nil {
				return nil, err
			}
			s.Logger.Debug("timestamp added", "range", r.String())
		}
		if !more {
			return set.Ranges(), nil
		}
	}
}

// timestampValidator accepts empty input and any range the set would accept.
func timestampValidator(set *timeutil.RangeSet) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return nil
		}
		_, err := set.Validate(v)
		return err
	}
}

// AskOutputDir asks for the output directory, creating it when absent.
// The returned path is absolute.
func (s *Shell) AskOutputDir(videoPath string) (string, error) {
	defaultDir := trim.DefaultOutputDir(videoPath)

	var value string
	form := forms.NewOutputDirForm(defaultDir, &value, func(v string) error {
		dir := s.resolveDir(v, defaultDir)
		return outputDirMessage(dir, trim.CheckOutputDir(dir))
	})
	if err := form.Run(); err != nil {
		return "", err
	}

	dir := s.resolveDir(value, defaultDir)
	if err := trim.PrepareOutputDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// resolveDir turns the typed value into an absolute path under WorkDir.
func (s *Shell) resolveDir(value, defaultDir string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		v = defaultDir
	}
	if !filepath.IsAbs(v) {
		v = filepath.Join(s.WorkDir, v)
	}
	return filepath.Clean(v)
}

// outputDirMessage rewords output directory errors for the prompt.
func outputDirMessage(dir string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, trim.ErrNotDirectory):
		return fmt.Errorf("The %q is not a directory.", dir)
	case errors.Is(err, trim.ErrDirNotEmpty):
		return fmt.Errorf("The %q is not empty. Please move the files inside before the process.", dir)
	}
	return err
}

// ConfirmMerge asks whether the trimmed videos should be merged.
func (s *Shell) ConfirmMerge() (bool, error) {
	var merge bool
	if err := forms.NewMergeForm(&merge).Run(); err != nil {
		return false, err
	}
	return merge, nil
}
