package stego

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func makeFrames(t *testing.T, count, width, height int, seed int64) []*Frame {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	frames := make([]*Frame, count)
	for i := range frames {
		f := NewFrame(width, height)
		r.Read(f.Pix)
		frames[i] = f
	}
	return frames
}

func cloneFrameBytes(frames []*Frame) [][]byte {
	out := make([][]byte, len(frames))
	for i, f := range frames {
		cp := make([]byte, len(f.Pix))
		copy(cp, f.Pix)
		out[i] = cp
	}
	return out
}

func assertFramesEqual(t *testing.T, frames []*Frame, snapshot [][]byte) {
	t.Helper()
	if len(frames) != len(snapshot) {
		t.Fatalf("frame count changed: %d vs %d", len(frames), len(snapshot))
	}
	for i, f := range frames {
		if string(f.Pix) != string(snapshot[i]) {
			t.Fatalf("frame %d not bit-identical to snapshot after extract", i)
		}
	}
}

// S1
func TestEndToEndSmallMessage(t *testing.T) {
	frames := makeFrames(t, 10, 320, 240, 1)
	before := cloneFrameBytes(frames)

	message := "Hello, World! This is a test message."
	key := "SecretKey123"

	stego, err := Embed(frames, message, key, nil)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	result, err := Extract(stego, key, nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !result.HashValid {
		t.Fatal("expected HashValid = true")
	}
	if result.Message != message {
		t.Fatalf("recovered message = %q, want %q", result.Message, message)
	}

	assertFramesEqual(t, stego, before)
}

// S2
func TestEndToEndLargeMessage(t *testing.T) {
	frames := makeFrames(t, 50, 640, 480, 2)
	message := strings.Repeat("A", 1024)
	key := "LargeTestKey"

	stego, err := Embed(frames, message, key, nil)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	result, err := Extract(stego, key, nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if result.Message != message {
		t.Fatalf("recovered message length %d, want %d", len(result.Message), len(message))
	}
}

// S3
func TestWrongKeyRejected(t *testing.T) {
	frames := makeFrames(t, 10, 320, 240, 3)

	stego, err := Embed(frames, "Secret message", "CorrectKey", nil)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	result, err := Extract(stego, "WrongKey", nil)
	if err == nil {
		t.Fatal("expected an error extracting with the wrong key")
	}
	if result.HashValid {
		t.Fatal("HashValid should be false on wrong-key extraction")
	}

	var se *Error
	if !errors.As(err, &se) || (se.Kind != KindHashMismatch && se.Kind != KindInvalidLength) {
		t.Fatalf("expected HashMismatch or InvalidLength, got %v", err)
	}
}

// S4
func TestCapacityExceeded(t *testing.T) {
	frames := makeFrames(t, 2, 100, 100, 4)
	// capacity is (2*100*100)/2 = 10000 bits (1250 bytes) of payload
	// budget; a message well beyond that should fail before any pixel is
	// touched.
	message := strings.Repeat("x", 20000)

	_, err := Embed(frames, message, "CapKey", nil)
	if err == nil {
		t.Fatal("expected CapacityExceeded")
	}
	var se *Error
	if !errors.As(err, &se) || se.Kind != KindCapacityExceeded {
		t.Fatalf("expected CapacityExceeded, got %v", err)
	}
}

// S5
func TestEndToEndUnicodeMessage(t *testing.T) {
	frames := makeFrames(t, 10, 320, 240, 5)
	message := "Hello 😀 🌍"
	key := "Key"

	stego, err := Embed(frames, message, key, nil)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	result, err := Extract(stego, key, nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if result.Message != message {
		t.Fatalf("recovered = %q, want %q", result.Message, message)
	}
}

// S6 / reversibility as its own explicit check across boundary sizes.
func TestReversibilityAcrossSizes(t *testing.T) {
	cases := []struct {
		name    string
		frames  int
		w, h    int
		message string
	}{
		{"single-char", 5, 64, 64, "x"},
		{"single-frame", 1, 200, 200, "one frame is enough"},
		{"all-identical-pixels", 5, 50, 50, "flat cover image"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var frames []*Frame
			if tc.name == "all-identical-pixels" {
				frames = make([]*Frame, tc.frames)
				for i := range frames {
					f := NewFrame(tc.w, tc.h)
					for j := range f.Pix {
						f.Pix[j] = 128
					}
					frames[i] = f
				}
			} else {
				frames = makeFrames(t, tc.frames, tc.w, tc.h, int64(len(tc.name)))
			}

			before := cloneFrameBytes(frames)
			key := "reversibility-key"

			stego, err := Embed(frames, tc.message, key, nil)
			if err != nil {
				t.Fatalf("Embed: %v", err)
			}

			result, err := Extract(stego, key, nil)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if result.Message != tc.message {
				t.Fatalf("recovered = %q, want %q", result.Message, tc.message)
			}

			assertFramesEqual(t, stego, before)
		})
	}
}

func TestMessageOneByteOverCapacityFails(t *testing.T) {
	// 2 frames of 40x40: total pixels = 3200. Usable payload bits budget is
	// total/2 = 1600 bits = 200 bytes; framing overhead is 36 bytes, so the
	// largest message that fits is 164 bytes and 165 bytes must fail.
	frames := makeFrames(t, 2, 40, 40, 6)
	total := 2 * 40 * 40

	// Find the largest message that exactly fits, then add one byte.
	fits := func(n int) bool {
		return 2*PayloadSize(n)*8 <= total
	}

	max := 0
	for n := 0; n < total; n++ {
		if fits(n) {
			max = n
		} else {
			break
		}
	}

	okMsg := strings.Repeat("a", max)
	if max > 0 {
		if _, err := Embed(frames, okMsg, "CapKey", nil); err != nil {
			t.Fatalf("expected message of exactly max capacity to succeed, got %v", err)
		}
	}

	overMsg := strings.Repeat("a", max+1)
	_, err := Embed(frames, overMsg, "CapKey", nil)
	if err == nil {
		t.Fatal("expected message one byte over capacity to fail")
	}
	var se *Error
	if !errors.As(err, &se) || se.Kind != KindCapacityExceeded {
		t.Fatalf("expected CapacityExceeded, got %v", err)
	}
}

func TestEmptyInputsRejected(t *testing.T) {
	frames := makeFrames(t, 1, 10, 10, 7)

	if _, err := Embed(nil, "msg", "key", nil); err == nil {
		t.Error("expected EmptyFrames error")
	}
	if _, err := Embed(frames, "msg", "", nil); err == nil {
		t.Error("expected EmptyKey error")
	}
	if _, err := Embed(frames, "", "key", nil); err == nil {
		t.Error("expected EmptyMessage error")
	}
	if _, err := Extract(nil, "key", nil); err == nil {
		t.Error("expected EmptyFrames error from Extract")
	}
	if _, err := Extract(frames, "", nil); err == nil {
		t.Error("expected EmptyKey error from Extract")
	}
}

func TestProgressCallbackInvoked(t *testing.T) {
	frames := makeFrames(t, 4, 100, 100, 8)
	var calls []float64
	progress := func(percent float64, frameIndex int) {
		calls = append(calls, percent)
	}

	stego, err := Embed(frames, "progress check", "progresskey", progress)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(calls) == 0 {
		t.Fatal("expected progress callback to be invoked during Embed")
	}
	if calls[len(calls)-1] != 100 {
		t.Fatalf("last progress call = %f, want 100", calls[len(calls)-1])
	}

	calls = nil
	if _, err := Extract(stego, "progresskey", progress); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(calls) == 0 {
		t.Fatal("expected progress callback to be invoked during Extract")
	}
}
