//go:build !unix

package network

import "syscall"

// SO_REUSEADDR is only set on unix; elsewhere the default socket is used.
func reuseAddr(network, address string, c syscall.RawConn) error {
	return nil
}
