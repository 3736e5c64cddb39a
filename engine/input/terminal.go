package input

import (
	"bufio"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/hollowforge/inputbridge/engine/util"
)

// TerminalSource reads directional keys from a raw-mode terminal.
// Terminals only report presses (and auto-repeats), so a release is
// synthesized once a key has not been seen for the hold window.
type TerminalSource struct {
	events chan Event
	done   chan struct{}
	hold   time.Duration

	mu       sync.Mutex
	lastSeen map[Dir]time.Time

	restoreOnce sync.Once
	restore     func() error
}

// OpenTerminal switches stdin into raw mode and starts the reader. The
// hold window should be a bit longer than the terminal's key repeat
// interval, 150-250ms works for common setups.
func OpenTerminal(hold time.Duration) (*TerminalSource, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.Wrap(err, "switching terminal to raw mode")
	}
	src := &TerminalSource{
		events:   make(chan Event, 64),
		done:     make(chan struct{}),
		hold:     hold,
		lastSeen: make(map[Dir]time.Time),
		restore:  func() error { return term.Restore(fd, oldState) },
	}
	go src.readLoop()
	go src.releaseLoop()
	return src, nil
}

// Events delivers presses and synthesized releases.
func (s *TerminalSource) Events() <-chan Event {
	return s.events
}

// Done is closed when the user quits (q or ctrl-c), the terminal read
// fails or the source is closed.
func (s *TerminalSource) Done() <-chan struct{} {
	return s.done
}

// Close restores the terminal. The reader goroutine stays blocked on
// stdin until the process exits, there is no portable way to interrupt
// that read.
func (s *TerminalSource) Close() error {
	var err error
	s.restoreOnce.Do(func() {
		close(s.done)
		err = s.restore()
	})
	return err
}

func (s *TerminalSource) readLoop() {
	var parser escParser
	reader := bufio.NewReader(os.Stdin)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			util.LogInputDebug("terminal read ended: " + err.Error())
			s.Close()
			return
		}
		tok, ok := parser.feed(b)
		if !ok {
			continue
		}
		if tok.quit {
			s.Close()
			return
		}
		s.mu.Lock()
		s.lastSeen[tok.dir] = time.Now()
		s.mu.Unlock()
		select {
		case s.events <- Event{Dir: tok.dir, Pressed: true}:
		case <-s.done:
			return
		}
	}
}

func (s *TerminalSource) releaseLoop() {
	ticker := time.NewTicker(s.hold / 4)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			for _, dir := range s.expired(now) {
				select {
				case s.events <- Event{Dir: dir, Pressed: false}:
				case <-s.done:
					return
				}
			}
		}
	}
}

func (s *TerminalSource) expired(now time.Time) []Dir {
	s.mu.Lock()
	defer s.mu.Unlock()
	var dirs []Dir
	for dir, seen := range s.lastSeen {
		if now.Sub(seen) >= s.hold {
			delete(s.lastSeen, dir)
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
