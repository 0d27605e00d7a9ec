package trim

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/vidtrim/pkg/timeutil"
)

func threeJobs(outDir string) []*Job {
	return BuildPlan("/videos/match.mp4", []timeutil.TimeRange{
		{Start: "00:00:01", End: "00:00:02"},
		{Start: "00:00:03", End: "00:00:04"},
		{Start: "00:00:05", End: "00:00:06"},
	}, outDir)
}

func TestRunnerContinuesAfterFailure(t *testing.T) {
	workDir := t.TempDir()
	outDir := filepath.Join(workDir, "match")
	jobs := threeJobs(outDir)

	proc := &fakeProcessor{failOn: map[int]bool{2: true}}
	rep := &fakeReporter{}
	r := &Runner{Processor: proc, Reporter: rep, WorkDir: workDir}

	sum := r.Run(context.Background(), jobs)

	assert.Equal(t, Summary{Total: 3, Succeeded: 2, Failed: 1}, sum)
	assert.Equal(t, []bool{true, false, true}, []bool{jobs[0].Succeeded, jobs[1].Succeeded, jobs[2].Succeeded})
	assert.NoError(t, jobs[0].Err)
	assert.Error(t, jobs[1].Err)
	assert.NoError(t, jobs[2].Err)

	require.Len(t, proc.calls, 3)
	for i, job := range jobs {
		assert.Equal(t, job.Args, proc.calls[i])
	}

	assert.Equal(t, []string{"start", "succeed", "start", "fail", "start", "succeed"}, rep.kinds())
	assert.Equal(t, "Trimming video 1.", rep.events[0].msg)
	assert.Equal(t, `Timestamp 1 has been trimmed to "`+filepath.Join("match", "1. 00-00-01 00-00-02.mp4")+`".`, rep.events[1].msg)
	assert.Equal(t, "Error when trimming video 2.", rep.events[3].msg)
}

func TestRunnerAllFail(t *testing.T) {
	jobs := threeJobs(t.TempDir())
	proc := &fakeProcessor{failOn: map[int]bool{1: true, 2: true, 3: true}}
	r := &Runner{Processor: proc, Reporter: &fakeReporter{}}

	sum := r.Run(context.Background(), jobs)

	assert.Equal(t, Summary{Total: 3, Failed: 3}, sum)
	assert.Empty(t, Succeeded(jobs))
}

func TestRunnerNoJobs(t *testing.T) {
	rep := &fakeReporter{}
	r := &Runner{Processor: &fakeProcessor{}, Reporter: rep}

	assert.Equal(t, Summary{}, r.Run(context.Background(), nil))
	assert.Empty(t, rep.events)
}
