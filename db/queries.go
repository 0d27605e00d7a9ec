package db

import (
	_ "embed"
)

// Schema

//go:embed sql/create_tables.sql
var CreateTablesSQL string

// Run queries

//go:embed sql/insert_run.sql
var InsertRunSQL string

//go:embed sql/insert_run_job.sql
var InsertRunJobSQL string

//go:embed sql/select_recent_runs.sql
var SelectRecentRunsSQL string

//go:embed sql/select_run_jobs.sql
var SelectRunJobsSQL string

//go:embed sql/select_runs_by_id_prefix.sql
var SelectRunsByIDPrefixSQL string
