package utils

import "time"

const (
	ConsolePort int  = 55002
	MaxDatagram int  = 2048
	Handshake   byte = 0x01
	Interrupt   byte = 0x03 // ETX, Ctrl-C in raw mode
)

const IdleFlush = 500 * time.Millisecond
