// Package videoio implements the codec.Source/codec.Sink contract against
// real video containers via OpenCV's Go bindings, grounded on
// wqim-centi/stegano/video's use of gocv.VideoCapture/VideoWriter for
// frame-level access. OpenCV's Mat type stores 8-bit-per-channel colour
// frames in blue-green-red order already, which is exactly the storage
// convention internal/stego.Frame uses — no channel shuffling is needed at
// this boundary, only stride bookkeeping.
//
// Callers are responsible for choosing a codec fourcc that is actually
// lossless (e.g. "FFV1"); this package does not second-guess the fourcc it
// is handed, since spec explicitly leaves that operational choice external.
package videoio

import (
	"fmt"

	"github.com/rmontoya/vstego/internal/stego"
	"gocv.io/x/gocv"
)

// Source decodes a video file into a sequence of 24-bit BGR frames via
// OpenCV's VideoCapture.
type Source struct {
	path string
}

// NewSource returns a Source that will read frames from the video at path
// when Frames is called.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Frames decodes every frame of the underlying video into stego.Frame
// values, in presentation order.
func (s *Source) Frames() ([]*stego.Frame, error) {
	cap, err := gocv.VideoCaptureFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("videoio: opening %s: %w", s.path, err)
	}
	defer cap.Close()

	var frames []*stego.Frame
	mat := gocv.NewMat()
	defer mat.Close()

	for {
		if ok := cap.Read(&mat); !ok || mat.Empty() {
			break
		}
		frames = append(frames, matToFrame(mat))
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("videoio: %s decoded to zero frames", s.path)
	}
	return frames, nil
}

// Close is a no-op; the underlying VideoCapture is scoped to Frames.
func (s *Source) Close() error { return nil }

func matToFrame(mat gocv.Mat) *stego.Frame {
	data := mat.ToBytes()
	pix := make([]byte, len(data))
	copy(pix, data)
	return &stego.Frame{
		Width:  mat.Cols(),
		Height: mat.Rows(),
		Stride: mat.Step(),
		Pix:    pix,
	}
}

// Sink encodes a frame sequence to a video file via OpenCV's VideoWriter.
// Codec is an OpenCV fourcc string (e.g. "FFV1" for a lossless container);
// FPS is the playback rate to stamp into the container.
type Sink struct {
	path  string
	codec string
	fps   float64
}

// NewSink returns a Sink that will write frames to path using the given
// fourcc codec at fps frames per second when WriteFrames is called.
func NewSink(path, codec string, fps float64) *Sink {
	return &Sink{path: path, codec: codec, fps: fps}
}

// WriteFrames muxes frames into the target container in order. All frames
// must share the same dimensions.
func (s *Sink) WriteFrames(frames []*stego.Frame) error {
	if len(frames) == 0 {
		return fmt.Errorf("videoio: no frames to write")
	}
	width, height := frames[0].Width, frames[0].Height

	writer, err := gocv.VideoWriterFile(s.path, s.codec, s.fps, width, height, true)
	if err != nil {
		return fmt.Errorf("videoio: opening writer for %s: %w", s.path, err)
	}
	defer writer.Close()

	for i, f := range frames {
		if f.Width != width || f.Height != height {
			return fmt.Errorf("videoio: frame %d is %dx%d, want %dx%d", i, f.Width, f.Height, width, height)
		}
		mat, err := frameToMat(f)
		if err != nil {
			return fmt.Errorf("videoio: frame %d: %w", i, err)
		}
		err = writer.Write(mat)
		mat.Close()
		if err != nil {
			return fmt.Errorf("videoio: writing frame %d: %w", i, err)
		}
	}
	return nil
}

// Close is a no-op; the underlying VideoWriter is scoped to WriteFrames.
func (s *Sink) Close() error { return nil }

// frameToMat builds a tightly-packed (stride == width*3) copy of f's pixel
// data, since gocv.NewMatFromBytes requires a contiguous row layout, and
// frames sourced elsewhere (e.g. a bottom-up decoder) may not already be
// tightly packed.
func frameToMat(f *stego.Frame) (gocv.Mat, error) {
	packed := repackTight(f)
	return gocv.NewMatFromBytes(f.Height, f.Width, gocv.MatTypeCV8UC3, packed)
}

func repackTight(f *stego.Frame) []byte {
	rowBytes := f.Width * 3
	if f.Stride == rowBytes {
		out := make([]byte, len(f.Pix))
		copy(out, f.Pix)
		return out
	}

	out := make([]byte, rowBytes*f.Height)
	absStride := f.Stride
	if absStride < 0 {
		absStride = -absStride
	}
	for y := 0; y < f.Height; y++ {
		srcRow := y
		if f.Stride < 0 {
			srcRow = f.Height - 1 - y
		}
		srcOff := srcRow * absStride
		copy(out[y*rowBytes:(y+1)*rowBytes], f.Pix[srcOff:srcOff+rowBytes])
	}
	return out
}
