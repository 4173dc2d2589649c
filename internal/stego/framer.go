package stego

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// maxMessageLength caps the length prefix accepted on extraction. Anything
// above this is treated as noise from a wrong key rather than a real
// message, per spec: 10,000,000 bytes.
const maxMessageLength = 10_000_000

const (
	lengthPrefixBytes = 4
	hashBytes         = 32
)

// BuildPayload frames message bytes for embedding:
// len_le32(|message|) ∥ message ∥ SHA256(message).
func BuildPayload(message []byte) []byte {
	payload := make([]byte, lengthPrefixBytes+len(message)+hashBytes)
	binary.LittleEndian.PutUint32(payload[:lengthPrefixBytes], uint32(len(message)))
	copy(payload[lengthPrefixBytes:], message)
	sum := sha256.Sum256(message)
	copy(payload[lengthPrefixBytes+len(message):], sum[:])
	return payload
}

// PayloadSize returns the total byte length a framed message of length n
// occupies on the wire: 4 + n + 32.
func PayloadSize(messageLen int) int {
	return lengthPrefixBytes + messageLen + hashBytes
}

// validateLength rejects length prefixes that cannot be a real message: at
// or below zero, or larger than the accepted ceiling.
func validateLength(l int32) (int, error) {
	if l <= 0 || l > maxMessageLength {
		return 0, &Error{
			Kind:   KindInvalidLength,
			Detail: fmt.Sprintf("invalid message length (%d); wrong key or no hidden message", l),
			Value:  int(l),
		}
	}
	return int(l), nil
}

// ParsePayload validates and unframes a complete payload buffer of the
// shape BuildPayload produces, returning the message bytes. HashMismatch is
// returned (rather than a plain error) so callers can distinguish
// corruption/wrong-key from other failures.
func ParsePayload(payload []byte) ([]byte, error) {
	if len(payload) < lengthPrefixBytes+hashBytes {
		return nil, newErr(KindInternal, "payload too short: %d bytes", len(payload))
	}

	length := int32(binary.LittleEndian.Uint32(payload[:lengthPrefixBytes]))
	l, err := validateLength(length)
	if err != nil {
		return nil, err
	}

	if len(payload) != PayloadSize(l) {
		return nil, newErr(KindInternal, "payload length %d does not match framed length %d", len(payload), PayloadSize(l))
	}

	message := payload[lengthPrefixBytes : lengthPrefixBytes+l]
	wantHash := payload[lengthPrefixBytes+l:]

	gotHash := sha256.Sum256(message)
	if !bytes.Equal(gotHash[:], wantHash) {
		return nil, newErr(KindHashMismatch, "SHA-256 mismatch: wrong key or corrupted data")
	}

	out := make([]byte, l)
	copy(out, message)
	return out, nil
}
