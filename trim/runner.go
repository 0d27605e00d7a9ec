package trim

import (
	"context"
	"fmt"
	"log/slog"
)

// Processor runs the external media tool with the given arguments.
type Processor interface {
	Run(ctx context.Context, args []string) error
}

// Reporter receives user-facing progress for each step.
type Reporter interface {
	Start(title string)
	Succeed(msg string)
	Fail(msg string)
}

// Summary counts the outcome of a batch.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// Runner executes trim jobs sequentially.
type Runner struct {
	Processor Processor
	Reporter  Reporter
	Logger    *slog.Logger
	// WorkDir is used to print output paths relative to where the user started.
	WorkDir string
}

// Run executes every job in order and records the outcome on each job.
// A failed job never stops the batch.
func (r *Runner) Run(ctx context.Context, jobs []*Job) Summary {
	sum := Summary{Total: len(jobs)}
	for _, job := range jobs {
		r.Reporter.Start(fmt.Sprintf("Trimming video %d.", job.ID))

		err := r.Processor.Run(ctx, job.Args)
		if err != nil {
			job.Succeeded = false
			job.Err = err
			sum.Failed++
			r.Reporter.Fail(fmt.Sprintf("Error when trimming video %d.", job.ID))
			r.logger().Debug("trim failed", "job", job.ID, "range", job.Range.String(), "err", err)
			continue
		}

		job.Succeeded = true
		sum.Succeeded++
		r.Reporter.Succeed(fmt.Sprintf("Timestamp %d has been trimmed to \"%s\".", job.ID, relPath(r.WorkDir, job.OutputPath)))
	}
	return sum
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}
