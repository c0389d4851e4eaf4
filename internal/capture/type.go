package capture

import (
	"io"
	"os"
)

type Codec int

const (
	Plain Codec = iota
	Zstd
	Gzip
	Snappy
)

func (c Codec) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case Gzip:
		return "gzip"
	case Snappy:
		return "snappy"
	default:
		return "plain"
	}
}

type encoder interface {
	io.Writer
	Flush() error
	Close() error
}

// Writer appends received console text to a transcript file.
// A nil *Writer is valid and discards everything.
type Writer struct {
	Path  string
	Codec Codec

	file *os.File
	enc  encoder
}
