// Package term adapts a real TTY to the lc3.Terminal interface: raw
// mode acquisition/restoration, a non-blocking keyboard poll, and
// buffered byte I/O against stdin/stdout.
package term

import (
	"bufio"
	"io"
	"os"

	"github.com/eiannone/keyboard"
	xterm "golang.org/x/term"
)

// State is the terminal state captured by MakeRaw, to be handed back
// to Restore on every exit path.
type State struct {
	fd  int
	old *xterm.State
}

// MakeRaw puts stdin into non-canonical, no-echo mode so GETC/IN can
// deliver single unbuffered bytes.
func MakeRaw() (*State, error) {
	fd := int(os.Stdin.Fd())
	old, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &State{fd: fd, old: old}, nil
}

// Restore undoes MakeRaw. Safe to call with a nil State.
func Restore(s *State) error {
	if s == nil {
		return nil
	}
	return xterm.Restore(s.fd, s.old)
}

// Adapter implements lc3.Terminal against the real stdin/stdout,
// backed by github.com/eiannone/keyboard for key events and a buffered
// writer for output.
type Adapter struct {
	out     *bufio.Writer
	keys    <-chan keyboard.KeyEvent
	pending *keyboard.KeyEvent
}

// NewAdapter opens the keyboard event stream and returns a ready
// Adapter. Call Close when done.
func NewAdapter() (*Adapter, error) {
	keys, err := keyboard.GetKeys(64)
	if err != nil {
		return nil, err
	}
	return &Adapter{out: bufio.NewWriter(os.Stdout), keys: keys}, nil
}

// Close releases the underlying keyboard event stream.
func (a *Adapter) Close() error {
	return keyboard.Close()
}

// PollReady reports, without blocking, whether a key event is
// pending. A pending event is cached so a subsequent ReadByte does not
// have to re-poll.
func (a *Adapter) PollReady() bool {
	if a.pending != nil {
		return true
	}
	select {
	case ev, ok := <-a.keys:
		if !ok {
			return false
		}
		a.pending = &ev
		return true
	default:
		return false
	}
}

// ReadByte blocks until a key event is available and returns its byte
// value.
func (a *Adapter) ReadByte() (byte, error) {
	if a.pending != nil {
		ev := *a.pending
		a.pending = nil
		return keyEventByte(ev), ev.Err
	}
	ev, ok := <-a.keys
	if !ok {
		return 0, io.EOF
	}
	return keyEventByte(ev), ev.Err
}

func keyEventByte(ev keyboard.KeyEvent) byte {
	if ev.Key != 0 {
		switch ev.Key {
		case keyboard.KeyEnter:
			return '\n'
		case keyboard.KeySpace:
			return ' '
		case keyboard.KeyCtrlC:
			return 0x03
		default:
			return byte(ev.Key)
		}
	}
	return byte(ev.Rune)
}

// WriteByte buffers one output byte.
func (a *Adapter) WriteByte(b byte) error {
	return a.out.WriteByte(b)
}

// Flush pushes buffered output to stdout.
func (a *Adapter) Flush() error {
	return a.out.Flush()
}
