// Package codec defines the external collaborator contracts the reversible
// steganographic core delegates to: turning a video file into an ordered
// sequence of 24-bit RGB frames, and back. The core codec (internal/stego)
// never imports this package or any concrete implementation of it — video
// decoding and encoding are explicitly out of scope for the core, per the
// design. Two implementations are provided: internal/frameio (a
// dependency-free PNG-sequence codec used for tests and simple workflows)
// and internal/videoio (an OpenCV-backed codec for real video containers).
package codec

import "github.com/rmontoya/vstego/internal/stego"

// Source produces an ordered list of 24-bit RGB frames of identical
// dimensions from some underlying container. Implementations must preserve
// every bit of every pixel — a lossy decode invalidates the whole scheme.
type Source interface {
	Frames() ([]*stego.Frame, error)
	Close() error
}

// Sink encodes an ordered list of frames back into a container,
// preserving LSBs exactly. Implementations that reorder, downsample,
// chroma-subsample, or re-quantise pixels are incompatible with this
// system.
type Sink interface {
	WriteFrames(frames []*stego.Frame) error
	Close() error
}
