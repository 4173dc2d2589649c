package stego

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"testing"
)

func TestBuildPayloadRoundTrip(t *testing.T) {
	tests := []string{
		"a",
		"Hello, World! This is a test message.",
		"Hello 😀 🌍",
	}

	for _, msg := range tests {
		t.Run(msg, func(t *testing.T) {
			payload := BuildPayload([]byte(msg))

			gotLen := binary.LittleEndian.Uint32(payload[:4])
			if int(gotLen) != len(msg) {
				t.Fatalf("length prefix = %d, want %d", gotLen, len(msg))
			}

			gotMsg := payload[4 : 4+len(msg)]
			if string(gotMsg) != msg {
				t.Fatalf("embedded message = %q, want %q", gotMsg, msg)
			}

			wantHash := sha256.Sum256([]byte(msg))
			gotHash := payload[4+len(msg):]
			if !bytes.Equal(gotHash, wantHash[:]) {
				t.Fatalf("hash mismatch")
			}

			recovered, err := ParsePayload(payload)
			if err != nil {
				t.Fatalf("ParsePayload: %v", err)
			}
			if string(recovered) != msg {
				t.Fatalf("ParsePayload = %q, want %q", recovered, msg)
			}
		})
	}
}

func TestParsePayloadRejectsInvalidLength(t *testing.T) {
	tests := []int32{0, -1, maxMessageLength + 1}
	for _, l := range tests {
		payload := make([]byte, 4+32)
		binary.LittleEndian.PutUint32(payload[:4], uint32(l))
		_, err := ParsePayload(payload)
		if err == nil {
			t.Errorf("length %d: expected error", l)
			continue
		}
		var se *Error
		if !errors.As(err, &se) || se.Kind != KindInvalidLength {
			t.Errorf("length %d: expected InvalidLength, got %v", l, err)
		}
	}
}

func TestParsePayloadDetectsCorruption(t *testing.T) {
	payload := BuildPayload([]byte("Secret message"))
	payload[len(payload)-1] ^= 0xFF // flip a hash bit

	_, err := ParsePayload(payload)
	if err == nil {
		t.Fatal("expected hash mismatch error")
	}
	var se *Error
	if !errors.As(err, &se) || se.Kind != KindHashMismatch {
		t.Fatalf("expected HashMismatch, got %v", err)
	}
}
