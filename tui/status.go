package tui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/user/vidtrim/tui/styles"
)

// Status shows the current step as a spinner and finished steps as ✔/✖ lines.
// It implements trim.Reporter. A plain Status writes only the finished lines.
type Status struct {
	out     io.Writer
	animate bool

	prog *tea.Program
	done chan struct{}
}

// NewStatus writes to out with an animated spinner for the running step.
func NewStatus(out io.Writer) *Status {
	return &Status{out: out, animate: true}
}

// NewPlainStatus writes only the finished lines to out.
func NewPlainStatus(out io.Writer) *Status {
	return &Status{out: out}
}

// IsTerminal reports whether w is a terminal that can show a spinner.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Start shows title next to a spinner, replacing any running step.
func (s *Status) Start(title string) {
	s.Stop()
	if !s.animate {
		return
	}

	// SIGINT must keep terminating the process so Ctrl+C stops the whole batch.
	p := tea.NewProgram(newSpinnerModel(title),
		tea.WithOutput(s.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
	s.prog, s.done = p, done
}

// Stop clears the running spinner without printing anything.
func (s *Status) Stop() {
	if s.prog == nil {
		return
	}
	s.prog.Send(stopSpinnerMsg{})
	<-s.done
	s.prog, s.done = nil, nil
}

// Succeed ends the current step with a ✔ line.
func (s *Status) Succeed(msg string) {
	s.Stop()
	fmt.Fprintln(s.out, styles.SuccessMark.Render("✔")+" "+msg)
}

// Fail ends the current step with a ✖ line.
func (s *Status) Fail(msg string) {
	s.Stop()
	fmt.Fprintln(s.out, styles.FailMark.Render("✖")+" "+msg)
}
