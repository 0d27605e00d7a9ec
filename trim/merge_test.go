package trim

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestLine(t *testing.T) {
	assert.Equal(t, "file '/tmp/out/1. 00-00-01 00-00-02.mp4'", ManifestLine("/tmp/out/1. 00-00-01 00-00-02.mp4"))
	assert.Equal(t, `file '/tmp/it\'s here/a.mp4'`, ManifestLine("/tmp/it's here/a.mp4"))
}

func TestWriteManifest(t *testing.T) {
	jobs := []*Job{
		{ID: 1, OutputPath: "/out/1.mp4"},
		{ID: 3, OutputPath: "/out/3.mp4"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteManifest(&buf, jobs))
	assert.Equal(t, "file '/out/1.mp4'\nfile '/out/3.mp4'", buf.String())
}

func TestMergeDisabled(t *testing.T) {
	proc := &fakeProcessor{}
	rep := &fakeReporter{}
	m := &Merger{Processor: proc, Reporter: rep, TempDir: t.TempDir()}

	jobs := threeJobs("out")
	for _, j := range jobs {
		j.Succeeded = true
	}

	res, err := m.Merge(context.Background(), jobs, false, "out", "/videos/match.mp4")
	require.NoError(t, err)
	assert.Equal(t, MergeSkipped, res.Status)
	assert.Empty(t, proc.calls)
	assert.Empty(t, rep.events)
}

func TestMergeNothingToMerge(t *testing.T) {
	tmp := t.TempDir()
	proc := &fakeProcessor{}
	rep := &fakeReporter{}
	m := &Merger{Processor: proc, Reporter: rep, TempDir: tmp}

	res, err := m.Merge(context.Background(), threeJobs("out"), true, "out", "/videos/match.mp4")
	require.NoError(t, err)
	assert.Equal(t, MergeNothing, res.Status)
	assert.Empty(t, proc.calls)
	assert.Equal(t, []string{"start", "fail"}, rep.kinds())
	assert.Equal(t, "No videos to merge.", rep.events[1].msg)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries, "no manifest should be created")
}

func TestMergeOnlySucceededJobs(t *testing.T) {
	tmp := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "match")
	jobs := threeJobs(outDir)
	jobs[0].Succeeded = true
	jobs[2].Succeeded = true

	var manifestPath, manifest string
	proc := &fakeProcessor{onRun: func(args []string) {
		manifestPath = args[5]
		data, err := os.ReadFile(manifestPath)
		require.NoError(t, err)
		manifest = string(data)
	}}
	rep := &fakeReporter{}
	m := &Merger{Processor: proc, Reporter: rep, TempDir: tmp}

	res, err := m.Merge(context.Background(), jobs, true, outDir, "/videos/match.mp4")
	require.NoError(t, err)

	assert.Equal(t, MergeResult{Status: MergeDone, Path: filepath.Join(outDir, "match.mp4"), Count: 2}, res)
	require.Len(t, proc.calls, 1)
	assert.Equal(t, ConcatArgs(manifestPath, filepath.Join(outDir, "match.mp4")), proc.calls[0])
	assert.Equal(t, ManifestLine(jobs[0].OutputPath)+"\n"+ManifestLine(jobs[2].OutputPath), manifest)
	assert.Equal(t, []string{"start", "succeed"}, rep.kinds())
	assert.Equal(t, "Merging 2 videos.", rep.events[0].msg)
	assert.False(t, fileExists(manifestPath), "manifest should be removed")
}

func TestMergeFailureRemovesManifest(t *testing.T) {
	tmp := t.TempDir()
	jobs := threeJobs("out")
	jobs[0].Succeeded = true
	jobs[2].Succeeded = true

	var manifestPath string
	proc := &fakeProcessor{
		failOn: map[int]bool{1: true},
		onRun: func(args []string) {
			manifestPath = args[5]
			require.True(t, fileExists(manifestPath))
		},
	}
	rep := &fakeReporter{}
	m := &Merger{Processor: proc, Reporter: rep, TempDir: tmp}

	res, err := m.Merge(context.Background(), jobs, true, "out", "/videos/match.mp4")
	require.Error(t, err)

	var mergeErr *MergeError
	require.True(t, errors.As(err, &mergeErr))
	assert.Equal(t, 2, mergeErr.Count)
	assert.Equal(t, MergeFailed, res.Status)
	assert.Equal(t, []string{"start", "fail"}, rep.kinds())
	assert.Equal(t, "Failed to merge 2 videos.", rep.events[1].msg)
	assert.False(t, fileExists(manifestPath), "manifest should be removed")

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMergeAfterPartialFailure(t *testing.T) {
	tmp := t.TempDir()
	jobs := threeJobs("out")

	var manifest string
	proc := &fakeProcessor{
		failOn: map[int]bool{2: true},
		onRun: func(args []string) {
			if args[0] == "-f" {
				data, err := os.ReadFile(args[5])
				require.NoError(t, err)
				manifest = string(data)
			}
		},
	}
	rep := &fakeReporter{}

	runner := &Runner{Processor: proc, Reporter: rep}
	runner.Run(context.Background(), jobs)

	m := &Merger{Processor: proc, Reporter: rep, TempDir: tmp}
	res, err := m.Merge(context.Background(), jobs, true, "out", "/videos/match.mp4")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, ManifestLine(jobs[0].OutputPath)+"\n"+ManifestLine(jobs[2].OutputPath), manifest)
}
