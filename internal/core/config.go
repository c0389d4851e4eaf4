package core

import (
	"strings"
	"time"

	"fpgaconsole/internal/utils"

	"github.com/pkg/errors"
)

// InvalidPolicy decides what happens to bytes outside 7-bit ASCII, both in
// received datagrams and in typed keys.
type InvalidPolicy int

const (
	InvalidFatal InvalidPolicy = iota
	InvalidReplace
	InvalidDrop
)

const ReplacementByte byte = '?'

func (p InvalidPolicy) String() string {
	switch p {
	case InvalidReplace:
		return "replace"
	case InvalidDrop:
		return "drop"
	default:
		return "fatal"
	}
}

// Set and Type make *InvalidPolicy usable as a command-line flag value.
func (p *InvalidPolicy) Set(s string) error {
	switch strings.ToLower(s) {
	case "fatal":
		*p = InvalidFatal
	case "replace":
		*p = InvalidReplace
	case "drop":
		*p = InvalidDrop
	default:
		return errors.Errorf("unknown policy %q (want fatal, replace or drop)", s)
	}
	return nil
}

func (p *InvalidPolicy) Type() string {
	return "policy"
}

type Config struct {
	Address    string
	Port       int
	BufferSize int
	IdleFlush  time.Duration
	Handshake  byte
	Interrupt  byte
	Invalid    InvalidPolicy
	Capture    string
}

func DefaultConfig() Config {
	return Config{
		Port:       utils.ConsolePort,
		BufferSize: utils.MaxDatagram,
		IdleFlush:  utils.IdleFlush,
		Handshake:  utils.Handshake,
		Interrupt:  utils.Interrupt,
		Invalid:    InvalidFatal,
	}
}

func (c Config) Validate() error {
	if c.Address == "" {
		return ErrMissingAddress
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("invalid port %d", c.Port)
	}
	if c.BufferSize <= 0 {
		return errors.Errorf("invalid buffer size %d", c.BufferSize)
	}
	if c.IdleFlush <= 0 {
		return errors.Errorf("invalid idle flush interval %s", c.IdleFlush)
	}
	return nil
}
