package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/user/vidtrim/config"
	"github.com/user/vidtrim/db"
	"github.com/user/vidtrim/pkg/timeutil"
	"github.com/user/vidtrim/trim"
)

// Prompter gathers the inputs of a session from the user.
type Prompter interface {
	SelectVideo() (string, error)
	AskTimestamps() ([]timeutil.TimeRange, error)
	AskOutputDir(videoPath string) (string, error)
	ConfirmMerge() (bool, error)
}

// Reporter is trim.Reporter plus clearing an unfinished step.
type Reporter interface {
	trim.Reporter
	Stop()
}

// Recorder stores a finished run.
type Recorder interface {
	Record(run db.Run, jobs []db.RunJob) error
}

// session runs one interactive trim from prompt to merge.
type session struct {
	cfg       *config.Config
	logger    *slog.Logger
	status    Reporter
	prompter  Prompter
	processor trim.Processor
	recorder  Recorder
	now       func() time.Time

	// summary, when set, renders the batch outcome written to out.
	summary func(trim.Summary) string
	out     io.Writer
}

// run returns an error only for failures that should end the process with
// a non-zero exit code.
func (s *session) run(ctx context.Context) error {
	videoPath, err := s.prompter.SelectVideo()
	if err != nil {
		return s.endOnPrompt(err)
	}

	ranges, err := s.prompter.AskTimestamps()
	if err != nil {
		return s.endOnPrompt(err)
	}
	if len(ranges) == 0 {
		s.status.Fail("No timestamps to trim.")
		return nil
	}

	outputDir, err := s.prompter.AskOutputDir(videoPath)
	if err != nil {
		return s.endOnPrompt(err)
	}

	merge := false
	if len(ranges) > 1 {
		merge, err = s.prompter.ConfirmMerge()
		if err != nil {
			return s.endOnPrompt(err)
		}
	}

	started := s.now()
	jobs := trim.BuildPlan(videoPath, ranges, outputDir)

	runner := &trim.Runner{
		Processor: s.processor,
		Reporter:  s.status,
		Logger:    s.logger,
		WorkDir:   s.cfg.WorkDir,
	}
	sum := runner.Run(ctx, jobs)
	s.logger.Debug("trim finished", "total", sum.Total, "succeeded", sum.Succeeded, "failed", sum.Failed)
	if s.summary != nil && sum.Total > 1 {
		fmt.Fprintln(s.out, s.summary(sum))
	}

	merger := &trim.Merger{
		Processor: s.processor,
		Reporter:  s.status,
		Logger:    s.logger,
		WorkDir:   s.cfg.WorkDir,
	}
	result, mergeErr := merger.Merge(ctx, jobs, merge, outputDir, videoPath)

	s.record(db.Run{
		ID:             uuid.NewString(),
		SourcePath:     videoPath,
		OutputDir:      outputDir,
		MergeRequested: merge,
		MergeStatus:    string(result.Status),
		MergedPath:     result.Path,
		DurationMS:     s.now().Sub(started).Milliseconds(),
		CreatedAt:      started,
	}, db.RunJobsFromTrim(jobs))

	return mergeErr
}

// endOnPrompt decides whether a prompt error ends the run quietly.
func (s *session) endOnPrompt(err error) error {
	s.status.Stop()
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, trim.ErrNoVideos) {
		s.logger.Debug("session ended", "reason", err)
		return nil
	}
	return err
}

// record stores the run; history problems never fail a run.
func (s *session) record(run db.Run, jobs []db.RunJob) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(run, jobs); err != nil {
		s.logger.Debug("record history", "err", err)
	}
}

// sqliteRecorder opens the history database for each run.
type sqliteRecorder struct {
	path string
}

func (r sqliteRecorder) Record(run db.Run, jobs []db.RunJob) error {
	database, err := db.Open(r.path)
	if err != nil {
		return err
	}
	defer database.Close()
	return db.InsertRun(database, run, jobs)
}

// newRecorder returns nil when history is disabled.
func newRecorder(cfg *config.Config) Recorder {
	if cfg.HistoryDisabled || cfg.HistoryPath == "" {
		return nil
	}
	return sqliteRecorder{path: cfg.HistoryPath}
}
