package core

import (
	"context"
	"time"

	"fpgaconsole/network"

	"github.com/sirupsen/logrus"
)

const dialTimeout = 5 * time.Second

// Dial opens the datagram socket to the console described by cfg.
func Dial(ctx context.Context, cfg Config) (*network.Connection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	conn, err := network.Dial(ctx, network.ConnectionConfig{
		Host:        cfg.Address,
		Port:        cfg.Port,
		BufferSize:  cfg.BufferSize,
		DialTimeout: dialTimeout,
	})
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Local port %d connected to %s", conn.LocalPort(), conn.RemoteAddr())
	return conn, nil
}
