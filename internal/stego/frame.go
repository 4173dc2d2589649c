package stego

// Frame is a 24-bit-per-pixel raster: three bytes per pixel, stored in
// blue-green-red order (the layout OpenCV's Mat and this codec's video
// collaborator in internal/videoio both use natively). Stride is the
// number of bytes between the start of one row and the next; a negative
// Stride marks a bottom-up buffer (row 0 of the logical image is the last
// row physically stored).
type Frame struct {
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// NewFrame allocates a zeroed top-down frame of the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Stride: width * 3,
		Pix:    make([]byte, width*height*3),
	}
}

// Clone returns a deep copy sharing no memory with f.
func (f *Frame) Clone() *Frame {
	cp := *f
	cp.Pix = make([]byte, len(f.Pix))
	copy(cp.Pix, f.Pix)
	return &cp
}

// offset returns the byte offset of pixel (x, y)'s first channel (blue),
// honoring both stride sign conventions. It does not bounds-check; callers
// go through PixelAccessor, which does.
func (f *Frame) offset(x, y int) int {
	stride := f.Stride
	row := y
	if stride < 0 {
		row = f.Height - 1 - y
		stride = -stride
	}
	return row*stride + x*3
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// FrameSet is an ordered sequence of frames sharing identical dimensions,
// the unit the embedder and extractor operate on.
type FrameSet struct {
	Frames []*Frame
}

// Dimensions returns the shared width and height of every frame, failing if
// the set is empty or the frames disagree.
func (fs *FrameSet) Dimensions() (width, height int, err error) {
	if len(fs.Frames) == 0 {
		return 0, 0, newErr(KindEmptyFrames, "no frames supplied")
	}
	width, height = fs.Frames[0].Width, fs.Frames[0].Height
	for i, f := range fs.Frames {
		if f.Width != width || f.Height != height {
			return 0, 0, newErr(KindInternal, "frame %d has dimensions %dx%d, want %dx%d", i, f.Width, f.Height, width, height)
		}
	}
	return width, height, nil
}

// TotalPixels returns F*W*H, the size of the global pixel-index space the
// chaotic sequence traverses.
func (fs *FrameSet) TotalPixels() (int, error) {
	w, h, err := fs.Dimensions()
	if err != nil {
		return 0, err
	}
	return len(fs.Frames) * w * h, nil
}

// decompose maps a global pixel index in [0, F*W*H) to a (frame, x, y)
// triple: frames are visited in order, and within a frame pixels are
// addressed row-major.
func (fs *FrameSet) decompose(p int, width, height int) (frameIdx, x, y int) {
	perFrame := width * height
	frameIdx = p / perFrame
	rem := p % perFrame
	y = rem / width
	x = rem % width
	return
}

func cloneFrames(frames []*Frame) []*Frame {
	out := make([]*Frame, len(frames))
	for i, f := range frames {
		out[i] = f.Clone()
	}
	return out
}
