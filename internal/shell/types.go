package shell

import (
	"bufio"
	"context"
	"time"
)

// pollInterval bounds how long a file read waits before rechecking ctx.
const pollInterval = 100 * time.Millisecond

// Reader delivers keystrokes one byte at a time.
type Reader interface {
	// ReadKey blocks until a byte is available, ctx is done, or input ends
	// (io.EOF).
	ReadKey(ctx context.Context) (byte, error)
}

type streamReader struct {
	r *bufio.Reader
}
