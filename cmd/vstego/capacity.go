package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rmontoya/vstego/internal/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var capacityFlags struct {
	Input string
}

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Report how large a message a frame sequence can carry",
	Run: func(cmd *cobra.Command, args []string) {
		source, err := openSource(capacityFlags.Input)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open input frames")
		}
		frames, err := source.Frames()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to decode input frames")
		}
		source.Close()

		fs := &stego.FrameSet{Frames: frames}
		width, height, err := fs.Dimensions()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to inspect frames")
		}
		total, err := fs.TotalPixels()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to inspect frames")
		}

		// Every payload bit costs two pixels: one for the bit itself, one for
		// the side-information that makes the write reversible.
		usableBits := total / 2
		usableBytes := usableBits / 8
		maxMessage := usableBytes - stego.PayloadSize(0)
		if maxMessage < 0 {
			maxMessage = 0
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "frames:\t%d\n", len(frames))
		fmt.Fprintf(w, "dimensions:\t%dx%d\n", width, height)
		fmt.Fprintf(w, "total pixels:\t%d\n", total)
		fmt.Fprintf(w, "usable payload bytes:\t%d\n", usableBytes)
		fmt.Fprintf(w, "max message bytes:\t%d\n", maxMessage)
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)

	capacityCmd.Flags().StringVarP(&capacityFlags.Input, "input", "i", "", "Path to cover frames: a directory of PNG frames, or a video file (required)")
	capacityCmd.MarkFlagRequired("input")
}
