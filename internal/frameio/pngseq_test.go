package frameio

import (
	"math/rand"
	"testing"

	"github.com/rmontoya/vstego/internal/stego"
)

func TestPNGSequenceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	r := rand.New(rand.NewSource(1))
	want := make([]*stego.Frame, 3)
	for i := range want {
		f := stego.NewFrame(16, 12)
		r.Read(f.Pix)
		want[i] = f
	}

	sink, err := NewSink(dir)
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	if err := sink.WriteFrames(want); err != nil {
		t.Fatalf("WriteFrames: %v", err)
	}

	got, err := NewSource(dir).Frames()
	if err != nil {
		t.Fatalf("Frames: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		if string(got[i].Pix) != string(want[i].Pix) {
			t.Fatalf("frame %d not bit-identical after PNG round trip", i)
		}
	}
}

func TestSourceRejectsEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewSource(dir).Frames(); err == nil {
		t.Fatal("expected error for a directory with no PNG frames")
	}
}
