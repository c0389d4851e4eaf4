package core

import (
	"context"

	"fpgaconsole/network"

	"github.com/pkg/errors"
)

// receive copies console datagrams to Out. Once data has arrived it waits at
// most IdleFlush for more; on that timeout Out is flushed and the wait goes
// back to unbounded until the next datagram.
func (s *Session) receive(ctx context.Context) error {
	armed := false

	for {
		if ctx.Err() != nil {
			return nil
		}

		timeout := s.Config.IdleFlush
		if !armed {
			timeout = 0
		}

		payload, err := s.Conn.Receive(timeout)
		if err != nil {
			if network.IsTimeout(err) {
				if err := s.flush(); err != nil {
					return err
				}
				armed = false
				continue
			}
			if network.IsClosed(err) || ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "failed to receive")
		}

		text, err := DecodeASCII(payload, s.Config.Invalid)
		if err != nil {
			return err
		}
		if len(text) == 0 {
			continue
		}

		if _, err := s.Out.Write(text); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
		if _, err := s.Capture.Write(text); err != nil {
			return errors.Wrap(err, "failed to write transcript")
		}
		armed = true
	}
}
