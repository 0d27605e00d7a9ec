package trim

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/vidtrim/pkg/timeutil"
)

func TestOutputFilename(t *testing.T) {
	got := OutputFilename(3, timeutil.TimeRange{Start: "01:02:03", End: "04:05:06"})
	assert.Equal(t, "3. 01-02-03 04-05-06.mp4", got)
}

func TestDefaultOutputDir(t *testing.T) {
	assert.Equal(t, "match", DefaultOutputDir("/videos/match.mp4"))
	assert.Equal(t, "match.final", DefaultOutputDir("match.final.mp4"))
}

func TestMergedPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "match.mp4"), MergedPath("out", "/videos/match.mp4"))
}

func TestScanVideos(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp4", "a.mp4", "notes.txt", "clip.mkv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.mp4"), 0755))

	names, err := ScanVideos(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.mp4", "b.mp4"}, names)
}

func TestScanVideosNone(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	_, err := ScanVideos(dir)
	assert.True(t, errors.Is(err, ErrNoVideos))
}

func TestPrepareOutputDir(t *testing.T) {
	base := t.TempDir()

	t.Run("absent is created", func(t *testing.T) {
		dir := filepath.Join(base, "new")
		require.NoError(t, PrepareOutputDir(dir))
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("empty is accepted", func(t *testing.T) {
		dir := filepath.Join(base, "empty")
		require.NoError(t, os.Mkdir(dir, 0755))
		assert.NoError(t, PrepareOutputDir(dir))
	})

	t.Run("non-empty is rejected", func(t *testing.T) {
		dir := filepath.Join(base, "full")
		require.NoError(t, os.Mkdir(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "old.mp4"), nil, 0644))
		assert.True(t, errors.Is(PrepareOutputDir(dir), ErrDirNotEmpty))
	})

	t.Run("file is rejected", func(t *testing.T) {
		path := filepath.Join(base, "file")
		require.NoError(t, os.WriteFile(path, nil, 0644))
		assert.True(t, errors.Is(PrepareOutputDir(path), ErrNotDirectory))
	})
}

func TestCheckOutputDirDoesNotCreate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "later")

	require.NoError(t, CheckOutputDir(dir))
	assert.False(t, fileExists(dir))
}
