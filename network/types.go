package network

import (
	"net"
	"time"
)

type ConnectionConfig struct {
	Host        string
	Port        int
	BufferSize  int
	DialTimeout time.Duration
}

// Connection is a UDP socket connected to a single remote peer.
// Send and Receive may be used from different goroutines.
type Connection struct {
	conn       *net.UDPConn
	config     ConnectionConfig
	remoteAddr *net.UDPAddr
	localAddr  *net.UDPAddr
	buffer     []byte
}
