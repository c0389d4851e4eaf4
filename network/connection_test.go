package network

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"
)

func listenLoopback(t *testing.T) *net.UDPConn {
	t.Helper()
	peer, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { peer.Close() })
	return peer
}

func dialPeer(t *testing.T, peer *net.UDPConn) *Connection {
	t.Helper()
	conn, err := Dial(context.Background(), ConnectionConfig{
		Host: "127.0.0.1",
		Port: peer.LocalAddr().(*net.UDPAddr).Port,
	})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSendReachesPeer(t *testing.T) {
	peer := listenLoopback(t)
	conn := dialPeer(t, peer)

	if conn.LocalPort() == 0 {
		t.Fatal("expected an ephemeral local port")
	}

	if err := conn.Send([]byte{0x01}); err != nil {
		t.Fatalf("send: %v", err)
	}

	buf := make([]byte, 16)
	peer.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, from, err := peer.ReadFromUDP(buf)
	if err != nil {
		t.Fatalf("peer read: %v", err)
	}
	if !bytes.Equal(buf[:n], []byte{0x01}) {
		t.Errorf("expected payload 0x01, got %x", buf[:n])
	}
	if from.Port != conn.LocalPort() {
		t.Errorf("expected datagram from port %d, got %d", conn.LocalPort(), from.Port)
	}
}

func TestReceiveFromPeer(t *testing.T) {
	peer := listenLoopback(t)
	conn := dialPeer(t, peer)

	local := &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: conn.LocalPort()}
	if _, err := peer.WriteToUDP([]byte("ready\n"), local); err != nil {
		t.Fatalf("peer write: %v", err)
	}

	data, err := conn.Receive(2 * time.Second)
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if string(data) != "ready\n" {
		t.Errorf("expected %q, got %q", "ready\n", data)
	}
}

func TestReceiveTimeout(t *testing.T) {
	peer := listenLoopback(t)
	conn := dialPeer(t, peer)

	start := time.Now()
	_, err := conn.Receive(50 * time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !IsTimeout(err) {
		t.Errorf("expected timeout, got %v", err)
	}
	if time.Since(start) < 40*time.Millisecond {
		t.Error("receive returned before the timeout elapsed")
	}
}

func TestReceiveAfterClose(t *testing.T) {
	peer := listenLoopback(t)
	conn := dialPeer(t, peer)

	done := make(chan error, 1)
	go func() {
		_, err := conn.Receive(0)
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	conn.Close()

	select {
	case err := <-done:
		if !IsClosed(err) {
			t.Errorf("expected closed error, got %v", err)
		}
		if IsTimeout(err) {
			t.Error("close must not look like a timeout")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("blocked receive did not return after close")
	}
}

func TestDialBadHost(t *testing.T) {
	_, err := Dial(context.Background(), ConnectionConfig{Host: "no such host.invalid", Port: 55002})
	if err == nil {
		t.Fatal("expected resolve error")
	}
}
