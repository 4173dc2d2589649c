package main

import (
	"fmt"
	"os"

	"github.com/rmontoya/vstego/internal/codec"
	"github.com/rmontoya/vstego/internal/frameio"
	"github.com/rmontoya/vstego/internal/videoio"
)

// openSource picks the frame collaborator appropriate to path: a directory
// is treated as a lossless PNG frame sequence, anything else is handed to
// the OpenCV-backed video codec.
func openSource(path string) (codec.Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return frameio.NewSource(path), nil
	}
	return videoio.NewSource(path), nil
}

// openSink picks the output collaborator from isDir rather than from the
// path: when isDir is set, path is created if needed and receives a PNG
// frame sequence; otherwise the frames are muxed through the video codec
// with the given fourcc/fps.
func openSink(path string, isDir bool, fourcc string, fps float64) (codec.Sink, error) {
	if isDir {
		return frameio.NewSink(path)
	}
	return videoio.NewSink(path, fourcc, fps), nil
}
