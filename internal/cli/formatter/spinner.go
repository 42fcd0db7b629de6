package formatter

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Spinner cycles moon-phase frames beside a message on out until stopped.
// It is shown on stderr while a guidance request waits on the model.
type Spinner struct {
	out     io.Writer
	message string
	style   spinner.Spinner

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSpinner(out io.Writer, message string) *Spinner {
	return &Spinner{out: out, message: message, style: spinner.Moon}
}

// Start is a no-op while the spinner is already running.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	go s.run(ctx)
}

func (s *Spinner) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.style.FPS)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		fmt.Fprintf(s.out, "\r  %s %s", s.style.Frames[frame%len(s.style.Frames)], Dim(s.message))
		select {
		case <-ctx.Done():
			fmt.Fprint(s.out, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

// Stop clears the spinner line and waits for the animation to exit.
// Stopping a spinner that is not running does nothing.
func (s *Spinner) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
}

// StartSpinner starts a spinner and hands back its Stop.
func StartSpinner(out io.Writer, message string) func() {
	s := NewSpinner(out, message)
	s.Start()
	return s.Stop
}
