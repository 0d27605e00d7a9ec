// Package forms provides the huh prompts of an interactive trim session.
package forms

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// NewVideoForm asks the user to pick one of names.
func NewVideoForm(names []string, choice *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a video to process:").
				Options(huh.NewOptions(names...)...).
				Value(choice),
		),
	).WithTheme(Theme())
}

// NewTimestampForm asks for one range and whether another one follows.
// An empty range is allowed and means nothing is added.
func NewTimestampForm(raw *string, more *bool, validate func(string) error) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(`Put the timestamp you want to trim using "hh:mm:ss - hh:mm:ss" format:`).
				Placeholder("00:01:30 - 00:02:45").
				Value(raw).
				Validate(validate),

			huh.NewConfirm().
				Title("Do you want to add another timestamp to trim?").
				Affirmative("Yes").
				Negative("No").
				Value(more),
		),
	).WithTheme(Theme())
}

// NewOutputDirForm asks where the trimmed videos go. Leaving it empty keeps defaultDir.
func NewOutputDirForm(defaultDir string, dir *string, validate func(string) error) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the output directory").
				Description(fmt.Sprintf("default: %s", defaultDir)).
				Placeholder(defaultDir).
				Value(dir).
				Validate(validate),
		),
	).WithTheme(Theme())
}

// NewMergeForm asks whether the trimmed videos should be concatenated.
func NewMergeForm(merge *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Do you want to merge all of the trimmed videos?").
				Affirmative("Yes, merge").
				Negative("No").
				Value(merge),
		),
	).WithTheme(Theme())
}
