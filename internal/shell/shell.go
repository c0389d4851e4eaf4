package shell

import (
	"bufio"
	"context"
	"io"
	"os"
)

// NewReader wraps in. Files (stdin) get a poll-based reader where the
// platform supports it so that a pending read ends when ctx is cancelled.
func NewReader(in io.Reader) Reader {
	if f, ok := in.(*os.File); ok {
		if r, ok := newFileReader(f); ok {
			return r
		}
	}
	return &streamReader{r: bufio.NewReaderSize(in, 16)}
}

// ReadKey on a plain stream only checks ctx between reads.
func (s *streamReader) ReadKey(ctx context.Context) (byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.r.ReadByte()
}
