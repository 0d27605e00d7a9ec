//go:build !windows

package tui

import (
	"bytes"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The spinner must not swallow Ctrl+C: the step keeps running and the
// signal reaches the process.
func TestStatusSpinnerLeavesInterruptToProcess(t *testing.T) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT)
	defer signal.Stop(sigs)

	var buf bytes.Buffer
	s := NewStatus(&buf)
	s.Start("Trimming video 1.")
	require.NotNil(t, s.done)
	done := s.done

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case <-sigs:
	case <-time.After(2 * time.Second):
		t.Fatal("SIGINT was not delivered to the process")
	}

	select {
	case <-done:
		t.Fatal("spinner program quit on SIGINT")
	case <-time.After(200 * time.Millisecond):
	}

	s.Stop()
	assert.Nil(t, s.prog)
}
