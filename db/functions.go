package db

import (
	"database/sql"
	"fmt"

	"github.com/user/vidtrim/trim"
)

// InsertRun inserts a run and its jobs in a single transaction.
// Jobs have their RunID set to run.ID.
func InsertRun(database *sql.DB, run Run, jobs []RunJob) error {
	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("begin insert run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(InsertRunSQL,
		run.ID, run.SourcePath, run.OutputDir, run.MergeRequested,
		run.MergeStatus, run.MergedPath, run.DurationMS, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, j := range jobs {
		_, err := tx.Exec(InsertRunJobSQL, run.ID, j.Sequence, j.StartTime, j.EndTime, j.OutputPath, j.Succeeded, j.Error)
		if err != nil {
			return fmt.Errorf("insert run job %d: %w", j.Sequence, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert run: %w", err)
	}
	return nil
}

// SelectRecentRuns returns up to limit runs, newest first, with job counts.
func SelectRecentRuns(database *sql.DB, limit int) ([]RunSummary, error) {
	rows, err := database.Query(SelectRecentRunsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(
			&r.ID, &r.SourcePath, &r.OutputDir, &r.MergeRequested, &r.MergeStatus,
			&r.MergedPath, &r.DurationMS, &r.CreatedAt, &r.Total, &r.Succeeded,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// SelectRunJobs returns the jobs of a run in sequence order.
func SelectRunJobs(database *sql.DB, runID string) ([]RunJob, error) {
	rows, err := database.Query(SelectRunJobsSQL, runID)
	if err != nil {
		return nil, fmt.Errorf("select run jobs: %w", err)
	}
	defer rows.Close()

	var jobs []RunJob
	for rows.Next() {
		var j RunJob
		if err := rows.Scan(&j.ID, &j.RunID, &j.Sequence, &j.StartTime, &j.EndTime, &j.OutputPath, &j.Succeeded, &j.Error); err != nil {
			return nil, fmt.Errorf("scan run job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run jobs: %w", err)
	}
	return jobs, nil
}

// RunJobsFromTrim converts trim jobs to run_jobs rows.
func RunJobsFromTrim(jobs []*trim.Job) []RunJob {
	rows := make([]RunJob, 0, len(jobs))
	for _, j := range jobs {
		row := RunJob{
			Sequence:   j.ID,
			StartTime:  j.Range.Start,
			EndTime:    j.Range.End,
			OutputPath: j.OutputPath,
			Succeeded:  j.Succeeded,
		}
		if j.Err != nil {
			row.Error = j.Err.Error()
		}
		rows = append(rows, row)
	}
	return rows
}

// SelectRunsByIDPrefix returns the IDs of runs whose ID starts with prefix.
func SelectRunsByIDPrefix(database *sql.DB, prefix string) ([]string, error) {
	rows, err := database.Query(SelectRunsByIDPrefixSQL, prefix, prefix)
	if err != nil {
		return nil, fmt.Errorf("select runs by id prefix: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan run id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run ids: %w", err)
	}
	return ids, nil
}
