package stego

import (
	"encoding/binary"
	"strings"
)

// Result is what Extract hands back: the recovered message and whether its
// SHA-256 tag checked out. Message is cleared whenever an error is
// returned.
type Result struct {
	Message   string
	HashValid bool
}

// Extract recovers the message hidden in frames under key, and — as a side
// effect — restores frames (the caller's own slice, not a clone) to be
// bit-identical to the pre-embedding cover. Restoration is attempted even
// when the hash check fails, so a wrong-key attempt does not leave frames
// half-modified; but in that case the "restored" bits are themselves
// meaningless, since they came from an unrelated LSB pattern.
func Extract(frames []*Frame, key string, progress ProgressFunc) (*Result, error) {
	if len(frames) == 0 {
		return nil, newErr(KindEmptyFrames, "no frames supplied")
	}
	if strings.TrimSpace(key) == "" {
		return nil, newErr(KindEmptyKey, "key must not be empty")
	}

	clone := cloneFrames(frames)
	fs := &FrameSet{Frames: clone}
	width, height, err := fs.Dimensions()
	if err != nil {
		return nil, err
	}
	total, err := fs.TotalPixels()
	if err != nil {
		return nil, err
	}

	seq, err := NewChaoticSequence(key)
	if err != nil {
		return nil, err
	}

	// Pass 0: read just the 32-bit length prefix from the head of the
	// stream, to size the rest of the read without guessing.
	lengthBits := make([]byte, lengthPrefixBytes)
	cur := newFrameCursor(fs.Frames)
	for i := 0; i < lengthPrefixBytes*8; i++ {
		p := seq.NextIndex(total)
		frameIdx, x, y := fs.decompose(p, width, height)
		acc := cur.access(frameIdx)
		setBitAt(lengthBits, i, acc.GetBlueLSB(x, y))
	}
	cur.close()

	length := int32(binary.LittleEndian.Uint32(lengthBits))
	msgLen, err := validateLength(length)
	if err != nil {
		return &Result{}, err
	}

	// Reset and replay from the start: Pass 1 rereads the same 32 bits as
	// part of the full payload, then continues into the message and hash.
	seq.Reset()

	payloadSize := PayloadSize(msgLen)
	bitCount := payloadSize * 8
	if 2*bitCount > total {
		return &Result{}, newErr(KindCapacityExceeded, "declared payload needs %d bits (x2 for side-info); only %d pixels available", bitCount, total)
	}

	payload := make([]byte, payloadSize)
	cur = newFrameCursor(fs.Frames)
	for i := 0; i < bitCount; i++ {
		p := seq.NextIndex(total)
		frameIdx, x, y := fs.decompose(p, width, height)
		acc := cur.access(frameIdx)
		setBitAt(payload, i, acc.GetBlueLSB(x, y))
	}
	cur.close()
	reportPhase(progress, 0, len(fs.Frames))

	// Pass 2: continuing the same stream, read the side-information that
	// will let us undo Phase A of the embed.
	sideInfo := make([]int, bitCount)
	cur = newFrameCursor(fs.Frames)
	for i := 0; i < bitCount; i++ {
		p := seq.NextIndex(total)
		frameIdx, x, y := fs.decompose(p, width, height)
		acc := cur.access(frameIdx)
		sideInfo[i] = acc.GetBlueLSB(x, y)
	}
	cur.close()

	message, parseErr := ParsePayload(payload)

	// Restoration: a fresh sequence replays exactly the Phase A positions
	// of embed, written into the caller's own frames.
	restoreSeq, err := NewChaoticSequence(key)
	if err != nil {
		return &Result{}, err
	}
	restoreCur := newFrameCursor(frames)
	for i := 0; i < bitCount; i++ {
		p := restoreSeq.NextIndex(total)
		frameIdx, x, y := fs.decompose(p, width, height)
		acc := restoreCur.access(frameIdx)
		acc.SetBlueLSB(x, y, sideInfo[i])
	}
	restoreCur.close()
	reportPhase(progress, 50, len(fs.Frames))

	if parseErr != nil {
		return &Result{}, parseErr
	}

	return &Result{Message: string(message), HashValid: true}, nil
}
