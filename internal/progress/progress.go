// Package progress shows transient status while a remote fetch is running.
package progress

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps the CLI loading spinner. A disabled spinner is silent, so
// call sites stay free of TTY checks.
type Spinner struct {
	enabled bool
	loader  *spinner.Spinner
}

// New creates a progress spinner writing to w, typically os.Stderr.
func New(enabled bool, w io.Writer) *Spinner {
	s := &Spinner{enabled: enabled}
	if enabled {
		s.loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
		_ = s.loader.Color("cyan")
	}
	return s
}

// Start begins animating with the given message.
func (s *Spinner) Start(message string) {
	if !s.enabled {
		return
	}
	s.loader.Suffix = " " + message
	s.loader.Start()
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	if s.enabled && s.loader != nil {
		s.loader.Stop()
	}
}
