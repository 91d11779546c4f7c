// Package ssh adapts a gliderlabs/ssh session into a tcell terminal so the
// demo UI can run over a remote connection.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty backed by an SSH session. Each connected client
// gets its own Tty → tcell.Screen pair.
type Tty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	resize func() // resize callback registered by tcell
}

// NewTty wraps an SSH session as a tcell Tty. pty holds the initial window
// size; winCh delivers subsequent resize events.
func NewTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	return &Tty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

// Read reads raw keyboard input from the session.
func (t *Tty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write writes rendered output to the session.
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the SSH channel.
func (t *Tty) Close() error { return t.session.Close() }

// Start is a no-op — the SSH channel is already open.
func (t *Tty) Start() error { return nil }

// Stop is a no-op — the channel is managed by the server handler.
func (t *Tty) Stop() error { return nil }

// Drain is a no-op — SSH flushes writes immediately.
func (t *Tty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers a callback invoked on every window resize and
// starts draining the window-change channel for the session's lifetime.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			cb := t.resize
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}()
}
