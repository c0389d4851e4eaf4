//go:build unix

package shell

import (
	"context"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

type fileReader struct {
	fd  int
	buf [1]byte
}

func newFileReader(f *os.File) (Reader, bool) {
	return &fileReader{fd: int(f.Fd())}, true
}

func (r *fileReader) ReadKey(ctx context.Context) (byte, error) {
	fds := []unix.PollFd{
		{Fd: int32(r.fd), Events: unix.POLLIN},
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		n, err := unix.Poll(fds, int(pollInterval.Milliseconds()))
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return 0, err
		}
		if n == 0 {
			continue // Timeout
		}

		rn, err := unix.Read(r.fd, r.buf[:])
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return 0, err
		}
		if rn == 0 {
			return 0, io.EOF
		}
		return r.buf[0], nil
	}
}
