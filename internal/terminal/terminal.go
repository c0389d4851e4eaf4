// Package terminal switches the console's input terminal into raw mode and
// puts it back afterwards.
package terminal

import (
	"os"
	"sync"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Controller owns the terminal attributes captured at startup.
// A Controller for a non-terminal input is inert.
type Controller struct {
	fd       uintptr
	oldState *term.State
	once     sync.Once
	err      error
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Open captures the attributes of f and switches it to raw mode. If f is not
// a terminal nothing is captured and Restore does nothing.
func Open(f *os.File) (*Controller, error) {
	c := &Controller{fd: f.Fd()}
	if !IsTerminal(f) {
		return c, nil
	}

	old, err := term.MakeRaw(c.fd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enter raw mode")
	}
	c.oldState = old
	return c, nil
}

// Raw reports whether the terminal was switched to raw mode.
func (c *Controller) Raw() bool {
	return c.oldState != nil
}

// Restore puts back the captured attributes. Only the first call has effect;
// later calls return the first result.
func (c *Controller) Restore() error {
	c.once.Do(func() {
		if c.oldState == nil {
			return
		}
		if err := term.Restore(c.fd, c.oldState); err != nil {
			c.err = errors.Wrap(err, "failed to restore terminal")
		}
	})
	return c.err
}
