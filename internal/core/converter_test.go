package core

import (
	"errors"
	"testing"
)

func TestDecodeASCII(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		policy  InvalidPolicy
		want    string
		wantErr bool
	}{
		{"plain text", []byte("ready\n"), InvalidFatal, "ready\n", false},
		{"control bytes", []byte("\x1b[2J\r\n"), InvalidFatal, "\x1b[2J\r\n", false},
		{"empty", []byte{}, InvalidFatal, "", false},
		{"fatal", []byte{'o', 'k', 0x80}, InvalidFatal, "", true},
		{"replace", []byte{'o', 0xc3, 0xa9, 'k'}, InvalidReplace, "o??k", false},
		{"drop", []byte{'o', 0xff}, InvalidDrop, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeASCII(tt.payload, tt.policy)
			if tt.wantErr {
				if !errors.Is(err, ErrNonASCII) {
					t.Fatalf("expected ErrNonASCII, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeASCIIReplaceKeepsInput(t *testing.T) {
	payload := []byte{'a', 0xff}
	if _, err := DecodeASCII(payload, InvalidReplace); err != nil {
		t.Fatal(err)
	}
	if payload[1] != 0xff {
		t.Error("replace must not modify the received buffer")
	}
}

func TestEncodeKey(t *testing.T) {
	tests := []struct {
		name    string
		key     byte
		policy  InvalidPolicy
		want    string
		ok      bool
		wantErr bool
	}{
		{"letter", 'a', InvalidFatal, "a", true, false},
		{"carriage return", '\r', InvalidFatal, "\r", true, false},
		{"escape", 0x1b, InvalidFatal, "\x1b", true, false},
		{"fatal", 0xe9, InvalidFatal, "", false, true},
		{"replace", 0xe9, InvalidReplace, "?", true, false},
		{"drop", 0xe9, InvalidDrop, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := EncodeKey(tt.key, tt.policy)
			if tt.wantErr != errors.Is(err, ErrNonASCIIKey) {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if ok != tt.ok {
				t.Errorf("ok = %v, want %v", ok, tt.ok)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
