// Package capture writes a transcript of the console output to disk,
// optionally compressed, and reads it back.
package capture

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// CodecFor picks the codec from the file extension.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return Zstd
	case ".gz":
		return Gzip
	case ".sz", ".snappy":
		return Snappy
	default:
		return Plain
	}
}

// Open creates (or truncates) the transcript at path. An empty path disables
// capture and returns a nil Writer.
func Open(path string) (*Writer, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create transcript")
	}

	w := &Writer{Path: path, Codec: CodecFor(path), file: f}
	w.enc, err = newEncoder(f, w.Codec)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "failed to set up %s transcript", w.Codec)
	}
	return w, nil
}

func newEncoder(f io.Writer, codec Codec) (encoder, error) {
	switch codec {
	case Zstd:
		return zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case Gzip:
		return gzip.NewWriterLevel(f, gzip.BestSpeed)
	case Snappy:
		return snappy.NewBufferedWriter(f), nil
	default:
		return plainWriter{bufio.NewWriter(f)}, nil
	}
}

type plainWriter struct {
	*bufio.Writer
}

func (p plainWriter) Close() error {
	return p.Flush()
}

func (w *Writer) Write(p []byte) (int, error) {
	if w == nil {
		return len(p), nil
	}
	return w.enc.Write(p)
}

// Flush pushes buffered text through the codec to the file.
func (w *Writer) Flush() error {
	if w == nil {
		return nil
	}
	return w.enc.Flush()
}

func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	encErr := w.enc.Close()
	fileErr := w.file.Close()
	if encErr != nil {
		return errors.Wrap(encErr, "failed to finish transcript")
	}
	return fileErr
}

// ReadAll decodes a transcript written by Writer.
func ReadAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open transcript")
	}
	defer f.Close()

	switch CodecFor(path) {
	case Zstd:
		decoder, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer decoder.Close()
		return io.ReadAll(decoder)

	case Gzip:
		r, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)

	case Snappy:
		return io.ReadAll(snappy.NewReader(f))

	default:
		return io.ReadAll(f)
	}
}
