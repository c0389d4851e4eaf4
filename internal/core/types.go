package core

import (
	"io"
	"time"

	"fpgaconsole/internal/capture"
	"fpgaconsole/internal/shell"
)

// Transport is the connected datagram socket. Send is only called by the
// send loop and Receive only by the receive loop.
type Transport interface {
	Send(data []byte) error
	Receive(timeout time.Duration) ([]byte, error)
	Close() error
}

// Output is where console text goes; it is flushed after inbound silence.
type Output interface {
	io.Writer
	Flush() error
}

// Session bundles everything one console run needs.
type Session struct {
	Config  Config
	Conn    Transport
	Keys    shell.Reader
	Out     Output
	Capture *capture.Writer
}
