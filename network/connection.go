package network

import (
	"context"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const DefaultBufferSize = 2048

// Dial binds an ephemeral local port with SO_REUSEADDR and connects it to
// config.Host:config.Port, so later sends and receives only talk to that peer.
func Dial(ctx context.Context, config ConnectionConfig) (*Connection, error) {
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultBufferSize
	}

	target := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))

	dialer := net.Dialer{
		Timeout: config.DialTimeout,
		Control: reuseAddr,
	}
	c, err := dialer.DialContext(ctx, "udp", target)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", target)
	}

	udpConn, ok := c.(*net.UDPConn)
	if !ok {
		c.Close()
		return nil, errors.Errorf("unexpected connection type %T", c)
	}

	return &Connection{
		conn:       udpConn,
		config:     config,
		remoteAddr: udpConn.RemoteAddr().(*net.UDPAddr),
		localAddr:  udpConn.LocalAddr().(*net.UDPAddr),
		buffer:     make([]byte, config.BufferSize),
	}, nil
}

func (c *Connection) Send(data []byte) error {
	_, err := c.conn.Write(data)
	if err != nil {
		return errors.Wrapf(err, "send to %s", c.remoteAddr)
	}
	return nil
}

// Receive waits for one datagram. A timeout of zero blocks until data arrives
// or the connection is closed. The returned slice is owned by the caller.
func (c *Connection) Receive(timeout time.Duration) ([]byte, error) {
	deadline := time.Time{}
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}

	n, err := c.conn.Read(c.buffer)
	if err != nil {
		return nil, err
	}

	data := make([]byte, n)
	copy(data, c.buffer[:n])
	return data, nil
}

func (c *Connection) Close() error {
	return c.conn.Close()
}

func (c *Connection) RemoteAddr() *net.UDPAddr {
	return c.remoteAddr
}

func (c *Connection) LocalPort() int {
	if c.localAddr != nil {
		return c.localAddr.Port
	}
	return 0
}

// IsTimeout reports whether err came from an expired read deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsClosed reports whether err came from using a closed connection.
func IsClosed(err error) bool {
	return errors.Is(err, net.ErrClosed)
}
