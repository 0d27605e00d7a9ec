package trim

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// fakeProcessor records every call and fails the calls listed in failOn (1-based).
type fakeProcessor struct {
	mu     sync.Mutex
	calls  [][]string
	failOn map[int]bool
	// onRun, when set, is called with the arguments before the result is returned.
	onRun func(args []string)
}

func (p *fakeProcessor) Run(ctx context.Context, args []string) error {
	p.mu.Lock()
	p.calls = append(p.calls, args)
	n := len(p.calls)
	p.mu.Unlock()

	if p.onRun != nil {
		p.onRun(args)
	}
	if p.failOn[n] {
		return fmt.Errorf("exit status 1")
	}
	return nil
}

type event struct {
	kind string
	msg  string
}

type fakeReporter struct {
	events []event
}

func (r *fakeReporter) Start(title string) { r.events = append(r.events, event{"start", title}) }
func (r *fakeReporter) Succeed(msg string) { r.events = append(r.events, event{"succeed", msg}) }
func (r *fakeReporter) Fail(msg string)    { r.events = append(r.events, event{"fail", msg}) }

func (r *fakeReporter) kinds() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.kind)
	}
	return out
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
