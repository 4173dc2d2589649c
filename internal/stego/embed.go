package stego

import "strings"

// ProgressFunc is an optional, advisory progress sink. It is invoked with a
// percentage in [0, 100] and the index of the source frame most recently
// considered complete. Implementations must tolerate being called from a
// single goroutine synchronously and must not block indefinitely; the core
// codec makes no threading guarantees beyond "one call, one goroutine".
type ProgressFunc func(percent float64, frameIndex int)

// Embed hides message inside a clone of frames, driven by a chaotic
// traversal seeded from key, and returns the modified clones. The caller's
// original frames are left untouched.
//
// Embed runs in two phases over the same chaotic stream: Phase A writes the
// framed payload's bits, recording each overwritten bit as side-information;
// Phase B writes that side-information back over the next stretch of the
// same stream, without resetting it. Positions are not deduplicated, so the
// same pixel can be selected more than once, within a phase or across both;
// such a pixel keeps only the last bit written to it.
func Embed(frames []*Frame, message string, key string, progress ProgressFunc) ([]*Frame, error) {
	if len(frames) == 0 {
		return nil, newErr(KindEmptyFrames, "no frames supplied")
	}
	if strings.TrimSpace(key) == "" {
		return nil, newErr(KindEmptyKey, "key must not be empty")
	}
	if message == "" {
		return nil, newErr(KindEmptyMessage, "message must not be empty")
	}

	fs := &FrameSet{Frames: cloneFrames(frames)}
	width, height, err := fs.Dimensions()
	if err != nil {
		return nil, err
	}
	total, err := fs.TotalPixels()
	if err != nil {
		return nil, err
	}

	payload := BuildPayload([]byte(message))
	bitCount := len(payload) * 8
	if 2*bitCount > total {
		return nil, newErr(KindCapacityExceeded, "payload needs %d bits (x2 for side-info); only %d pixels available", bitCount, total)
	}

	seq, err := NewChaoticSequence(key)
	if err != nil {
		return nil, err
	}

	sideInfo := make([]int, bitCount)

	cur := newFrameCursor(fs.Frames)
	for i := 0; i < bitCount; i++ {
		p := seq.NextIndex(total)
		frameIdx, x, y := fs.decompose(p, width, height)
		acc := cur.access(frameIdx)

		sideInfo[i] = acc.GetBlueLSB(x, y)
		acc.SetBlueLSB(x, y, bitAt(payload, i))
	}
	cur.close()
	reportPhase(progress, 0, len(fs.Frames))

	// Phase B continues the same stream — no Reset — so extraction can
	// replay these exact positions once it has consumed the payload.
	cur = newFrameCursor(fs.Frames)
	for i := 0; i < bitCount; i++ {
		p := seq.NextIndex(total)
		frameIdx, x, y := fs.decompose(p, width, height)
		acc := cur.access(frameIdx)
		acc.SetBlueLSB(x, y, sideInfo[i])
	}
	cur.close()
	reportPhase(progress, 50, len(fs.Frames))

	return fs.Frames, nil
}
