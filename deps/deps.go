package deps

import (
	"fmt"
	"os/exec"
)

const FfmpegInstallURL = "https://ffmpeg.org/download.html"

// DependencyError contains information about a missing dependency
type DependencyError struct {
	Name       string
	InstallURL string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// LocateFfmpeg returns the path of the ffmpeg binary.
// A non-empty override (a name or a path) is looked up instead of "ffmpeg".
func LocateFfmpeg(override string) (string, error) {
	name := "ffmpeg"
	if override != "" {
		name = override
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &DependencyError{
			Name:       name,
			InstallURL: FfmpegInstallURL,
			Err:        err,
		}
	}
	return path, nil
}
