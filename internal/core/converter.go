package core

import (
	"fpgaconsole/internal/utils"

	"github.com/pkg/errors"
)

// DecodeASCII checks a received datagram. With InvalidDrop a datagram that
// contains any non-ASCII byte yields nil.
func DecodeASCII(payload []byte, policy InvalidPolicy) ([]byte, error) {
	bad := -1
	for i, b := range payload {
		if !utils.IsASCII(b) {
			bad = i
			break
		}
	}
	if bad < 0 {
		return payload, nil
	}

	switch policy {
	case InvalidDrop:
		return nil, nil
	case InvalidReplace:
		text := make([]byte, len(payload))
		for i, b := range payload {
			if utils.IsASCII(b) {
				text[i] = b
			} else {
				text[i] = ReplacementByte
			}
		}
		return text, nil
	default:
		return nil, errors.Wrapf(ErrNonASCII, "byte %#x at offset %d", payload[bad], bad)
	}
}

// EncodeKey maps a typed byte to the datagram payload. ok is false when the
// key should not be sent.
func EncodeKey(key byte, policy InvalidPolicy) (payload []byte, ok bool, err error) {
	if utils.IsASCII(key) {
		return []byte{key}, true, nil
	}

	switch policy {
	case InvalidDrop:
		return nil, false, nil
	case InvalidReplace:
		return []byte{ReplacementByte}, true, nil
	default:
		return nil, false, errors.Wrapf(ErrNonASCIIKey, "byte %#x", key)
	}
}
