package trim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// MergeStatus describes what the merge step did.
type MergeStatus string

const (
	MergeSkipped MergeStatus = "skipped"
	MergeNothing MergeStatus = "nothing"
	MergeDone    MergeStatus = "merged"
	MergeFailed  MergeStatus = "failed"
)

// MergeResult is the outcome of Merger.Merge.
type MergeResult struct {
	Status MergeStatus
	Path   string
	Count  int
}

// MergeError is returned when the concat invocation fails.
type MergeError struct {
	Count int
	Err   error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merge %d videos: %v", e.Count, e.Err)
}

func (e *MergeError) Unwrap() error {
	return e.Err
}

// Merger concatenates trimmed jobs with the concat demuxer.
type Merger struct {
	Processor Processor
	Reporter  Reporter
	Logger    *slog.Logger
	WorkDir   string
	// TempDir holds the manifest; empty means os.TempDir().
	TempDir string
}

// ManifestLine formats one concat demuxer entry. Separators are converted to
// forward slashes and single quotes are escaped.
func ManifestLine(path string) string {
	p := strings.ReplaceAll(filepath.ToSlash(path), "'", `\'`)
	return fmt.Sprintf("file '%s'", p)
}

// WriteManifest writes one line per job, in order, separated by newlines.
func WriteManifest(w io.Writer, jobs []*Job) error {
	lines := make([]string, 0, len(jobs))
	for _, j := range jobs {
		lines = append(lines, ManifestLine(j.OutputPath))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// ConcatArgs returns the ffmpeg arguments for a stream-copy concat.
func ConcatArgs(manifestPath, outputPath string) []string {
	return []string{
		"-f", "concat",
		"-safe", "0",
		"-i", manifestPath,
		"-c", "copy",
		outputPath,
	}
}

// Merge concatenates the succeeded jobs into outputDir/basename(sourcePath).
// It does nothing when enabled is false, and reports without failing when no
// job succeeded. The manifest file is removed before Merge returns.
func (m *Merger) Merge(ctx context.Context, jobs []*Job, enabled bool, outputDir, sourcePath string) (MergeResult, error) {
	if !enabled {
		return MergeResult{Status: MergeSkipped}, nil
	}

	trimmed := Succeeded(jobs)
	count := len(trimmed)
	m.Reporter.Start(fmt.Sprintf("Merging %d videos.", count))
	if count == 0 {
		m.Reporter.Fail("No videos to merge.")
		return MergeResult{Status: MergeNothing}, nil
	}

	manifest, err := m.writeManifest(trimmed)
	if err != nil {
		m.Reporter.Fail(fmt.Sprintf("Failed to merge %d videos.", count))
		return MergeResult{Status: MergeFailed, Count: count}, &MergeError{Count: count, Err: err}
	}
	defer func() {
		if err := os.Remove(manifest); err != nil && !os.IsNotExist(err) {
			m.logger().Debug("remove manifest", "path", manifest, "err", err)
		}
	}()

	mergedPath := MergedPath(outputDir, sourcePath)
	if err := m.Processor.Run(ctx, ConcatArgs(manifest, mergedPath)); err != nil {
		m.Reporter.Fail(fmt.Sprintf("Failed to merge %d videos.", count))
		return MergeResult{Status: MergeFailed, Path: mergedPath, Count: count}, &MergeError{Count: count, Err: err}
	}

	m.Reporter.Succeed(fmt.Sprintf("Success merging %d videos to \"%s\".", count, relPath(m.WorkDir, mergedPath)))
	return MergeResult{Status: MergeDone, Path: mergedPath, Count: count}, nil
}

// writeManifest creates the temporary manifest and returns its path.
func (m *Merger) writeManifest(jobs []*Job) (string, error) {
	f, err := os.CreateTemp(m.TempDir, "vidtrim-concat-*.txt")
	if err != nil {
		return "", fmt.Errorf("create manifest: %w", err)
	}
	name := f.Name()

	if err := WriteManifest(f, jobs); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("write manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("close manifest: %w", err)
	}

	m.logger().Debug("wrote manifest", "path", name, "entries", len(jobs))
	return name, nil
}

func (m *Merger) logger() *slog.Logger {
	if m.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return m.Logger
}
