// Package trim turns validated time ranges into ffmpeg extraction jobs, runs them
// one after another and optionally concatenates the results.
package trim

import (
	"path/filepath"

	"github.com/user/vidtrim/pkg/timeutil"
)

// Job is one extraction of a time range into its own file.
type Job struct {
	ID         int
	Range      timeutil.TimeRange
	OutputPath string
	Args       []string

	// Set by Runner once the ffmpeg call for this job has returned.
	Succeeded bool
	Err       error
}

// TrimArgs returns the ffmpeg arguments for a stream-copy trim.
func TrimArgs(sourcePath string, r timeutil.TimeRange, outputPath string) []string {
	return []string{
		"-i", sourcePath,
		"-ss", r.Start,
		"-to", r.End,
		"-c:v", "copy",
		"-c:a", "copy",
		outputPath,
	}
}

// BuildPlan creates one job per range, numbered from 1 in input order.
// It performs no I/O.
func BuildPlan(sourcePath string, ranges []timeutil.TimeRange, outputDir string) []*Job {
	jobs := make([]*Job, 0, len(ranges))
	for i, r := range ranges {
		id := i + 1
		outputPath := filepath.Join(outputDir, OutputFilename(id, r))
		jobs = append(jobs, &Job{
			ID:         id,
			Range:      r,
			OutputPath: outputPath,
			Args:       TrimArgs(sourcePath, r, outputPath),
		})
	}
	return jobs
}

// Succeeded returns the jobs that were trimmed, preserving order.
func Succeeded(jobs []*Job) []*Job {
	var out []*Job
	for _, j := range jobs {
		if j.Succeeded {
			out = append(out, j)
		}
	}
	return out
}
