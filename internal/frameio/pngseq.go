// Package frameio implements the codec.Source/codec.Sink contract against
// the simplest lossless container available from the standard library: a
// directory of numbered PNG frames. This mirrors the teacher's own reliance
// on image/png as its one true lossless format, generalized from a single
// image to an ordered frame sequence, and gives the reversible codec a
// dependency-free collaborator for tests and small workflows where pulling
// in an OpenCV-backed video pipeline (internal/videoio) is overkill.
package frameio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/rmontoya/vstego/internal/stego"
)

// Source reads an ordered PNG frame sequence from a directory. Files are
// visited in lexical filename order, so frames should be named with a
// fixed-width numeric prefix (frame_00000.png, frame_00001.png, ...).
type Source struct {
	dir string
}

// NewSource returns a Source rooted at dir.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Frames decodes every *.png file in the directory, in lexical order, into
// 24-bit RGB frames. The alpha channel, if present, is discarded.
func (s *Source) Frames() ([]*stego.Frame, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("frameio: reading %s: %w", s.dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".png" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("frameio: no PNG frames found in %s", s.dir)
	}

	frames := make([]*stego.Frame, 0, len(names))
	for _, name := range names {
		f, err := decodeFrame(filepath.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("frameio: decoding %s: %w", name, err)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Close is a no-op; Source holds no live resources between calls.
func (s *Source) Close() error { return nil }

func decodeFrame(path string) (*stego.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	frame := stego.NewFrame(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			off := y*frame.Stride + x*3
			frame.Pix[off+0] = c.B
			frame.Pix[off+1] = c.G
			frame.Pix[off+2] = c.R
		}
	}
	return frame, nil
}

// Sink writes an ordered frame sequence to a directory as numbered PNG
// files, creating the directory if necessary.
type Sink struct {
	dir string
}

// NewSink prepares dir (creating it if absent) to receive a frame sequence.
func NewSink(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("frameio: creating %s: %w", dir, err)
	}
	return &Sink{dir: dir}, nil
}

// WriteFrames encodes each frame as frame_NNNNN.png, in the order given.
func (s *Sink) WriteFrames(frames []*stego.Frame) error {
	width := len(fmt.Sprintf("%d", len(frames)-1))
	if width < 5 {
		width = 5
	}
	for i, f := range frames {
		name := fmt.Sprintf("frame_%0*d.png", width, i)
		if err := encodeFrame(filepath.Join(s.dir, name), f); err != nil {
			return fmt.Errorf("frameio: encoding frame %d: %w", i, err)
		}
	}
	return nil
}

// Close is a no-op; Sink holds no live resources between calls.
func (s *Sink) Close() error { return nil }

func encodeFrame(path string, f *stego.Frame) error {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			off := y*f.Stride + x*3
			img.SetNRGBA(x, y, color.NRGBA{
				R: f.Pix[off+2],
				G: f.Pix[off+1],
				B: f.Pix[off+0],
				A: 255,
			})
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
