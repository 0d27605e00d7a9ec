package db

import "time"

// Run represents a row in the runs table.
type Run struct {
	ID             string
	SourcePath     string
	OutputDir      string
	MergeRequested bool
	MergeStatus    string
	MergedPath     string
	DurationMS     int64
	CreatedAt      time.Time
}

// RunJob represents a row in the run_jobs table.
type RunJob struct {
	ID         int64
	RunID      string
	Sequence   int
	StartTime  string
	EndTime    string
	OutputPath string
	Succeeded  bool
	Error      string
}

// RunSummary is a run with its job counts.
type RunSummary struct {
	Run
	Total     int
	Succeeded int
}
