package stego

// frameCursor keeps at most one PixelAccessor open at a time across a
// sequence of frames, matching the shared-resource policy in the design:
// each accessor borrows exactly one frame for the duration of its scope, so
// switching frames releases the old accessor (flushing its buffered
// writes) before acquiring the new one.
type frameCursor struct {
	frames   []*Frame
	acc      *PixelAccessor
	frameIdx int
	open     bool
}

func newFrameCursor(frames []*Frame) *frameCursor {
	return &frameCursor{frames: frames, frameIdx: -1}
}

func (c *frameCursor) access(frameIdx int) *PixelAccessor {
	if c.open && c.frameIdx == frameIdx {
		return c.acc
	}
	if c.open {
		c.acc.Release()
	}
	c.acc = AcquireAccessor(c.frames[frameIdx])
	c.frameIdx = frameIdx
	c.open = true
	return c.acc
}

func (c *frameCursor) close() {
	if c.open {
		c.acc.Release()
		c.open = false
	}
}

// reportPhase drives the advisory progress sink once per source frame,
// spanning [base, base+50] percent. Per spec this is decoupled from which
// pixels the chaotic traversal actually touched during the phase.
func reportPhase(progress ProgressFunc, base float64, totalFrames int) {
	if progress == nil || totalFrames == 0 {
		return
	}
	for i := 0; i < totalFrames; i++ {
		pct := base + 50.0*float64(i+1)/float64(totalFrames)
		progress(pct, i)
	}
}
