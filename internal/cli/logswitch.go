package cli

import (
	"io"
	"sync"
)

// LogSwitch is an io.Writer that discards everything until enabled.
type LogSwitch struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
}

func NewLogSwitch(w io.Writer, enabled bool) *LogSwitch {
	return &LogSwitch{w: w, enabled: enabled}
}

func (s *LogSwitch) Enable() {
	s.mu.Lock()
	s.enabled = true
	s.mu.Unlock()
}

func (s *LogSwitch) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled || s.w == nil {
		return len(p), nil
	}
	return s.w.Write(p)
}
