package trim

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/user/vidtrim/pkg/timeutil"
)

// VideoExt is the only extension offered for selection.
const VideoExt = ".mp4"

var (
	ErrNoVideos     = errors.New("no videos found")
	ErrNotDirectory = errors.New("not a directory")
	ErrDirNotEmpty  = errors.New("directory is not empty")
)

// OutputFilename returns the file name for a job.
// Format: "{id}. {start} {end}.mp4" with ':' replaced by '-' (colons are not allowed on Windows).
func OutputFilename(id int, r timeutil.TimeRange) string {
	name := fmt.Sprintf("%d. %s %s", id, r.Start, r.End)
	return strings.ReplaceAll(name, ":", "-") + VideoExt
}

// DefaultOutputDir returns the video's base name without the .mp4 suffix.
// For example, "/videos/match.mp4" returns "match".
func DefaultOutputDir(videoPath string) string {
	return strings.TrimSuffix(filepath.Base(videoPath), VideoExt)
}

// MergedPath returns where the concatenated video is written.
func MergedPath(outputDir, sourcePath string) string {
	return filepath.Join(outputDir, filepath.Base(sourcePath))
}

// ScanVideos lists the regular files in dir ending in .mp4, sorted by name.
func ScanVideos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), VideoExt) {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, ErrNoVideos
	}
	sort.Strings(names)
	return names, nil
}

// PrepareOutputDir makes sure dir can receive output: it is created when absent,
// and must otherwise be an empty directory.
func PrepareOutputDir(dir string) error {
	if err := CheckOutputDir(dir); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// CheckOutputDir reports whether dir is absent or an empty directory.
// It never modifies the filesystem.
func CheckOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read output directory: %w", err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%s: %w", dir, ErrDirNotEmpty)
	}
	return nil
}

// relPath returns p relative to base for display, falling back to p.
func relPath(base, p string) string {
	if base == "" {
		return p
	}
	rel, err := filepath.Rel(base, p)
	if err != nil {
		return p
	}
	return rel
}
