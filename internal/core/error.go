package core

import "github.com/pkg/errors"

var (
	ErrMissingAddress = errors.New("target address is required")
	ErrNonASCII       = errors.New("received non-ASCII data")
	ErrNonASCIIKey    = errors.New("typed key is not ASCII")
)
