package core

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Handshake tells the console a client has attached. Nothing is expected back.
func (s *Session) Handshake() error {
	if err := s.Conn.Send([]byte{s.Config.Handshake}); err != nil {
		return errors.Wrap(err, "failed to send handshake")
	}
	return nil
}

// Run bridges keys to the console and console output to Out until the
// interrupt key, end of input, ctx cancellation, or a fatal error on either
// path. After end of input replies are still printed for one IdleFlush.
// Both paths have returned and Out is flushed when Run returns. The
// connection is closed on return. A panic in either path comes back as an
// error.
func (s *Session) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(recovered("receive loop", func() error {
		return s.receive(gctx)
	}))

	g.Go(recovered("send loop", func() error {
		// closing unblocks the receive loop
		defer s.Conn.Close()
		return s.send(gctx)
	}))

	err := g.Wait()

	if flushErr := s.flush(); err == nil {
		err = flushErr
	}
	if closeErr := s.Capture.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (s *Session) send(ctx context.Context) error {
	for {
		key, err := s.Keys.ReadKey(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.drain(ctx)
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "failed to read key")
		}

		if key == s.Config.Interrupt {
			return nil
		}

		payload, ok, err := EncodeKey(key, s.Config.Invalid)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		if err := s.Conn.Send(payload); err != nil {
			return errors.Wrap(err, "failed to send key")
		}
	}
}

// drain gives the console one idle interval to answer the last keys sent
// before the connection is closed.
func (s *Session) drain(ctx context.Context) {
	timer := time.NewTimer(s.Config.IdleFlush)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// recovered turns a panic in a worker into an error so that Run returns and
// the caller's deferred cleanup (terminal restore) still runs.
func recovered(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("%s panicked: %v", name, r)
			}
		}()
		return fn()
	}
}

func (s *Session) flush() error {
	if err := s.Out.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush output")
	}
	if err := s.Capture.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush transcript")
	}
	return nil
}
