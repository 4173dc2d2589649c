package main

import (
	"os"
	"time"

	"github.com/rmontoya/vstego/internal/stego"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	embedFlags struct {
		Input     string
		Output    string
		OutputDir bool
		Message   string
		File      string
		Key       string
		Codec     string
		FPS       float64
	}
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Conceal a message in a frame sequence",
	Run: func(cmd *cobra.Command, args []string) {
		if embedFlags.Message != "" && embedFlags.File != "" {
			log.Fatal().Msg("message and file flags cannot both be provided")
		}

		key, err := resolveKey(embedFlags.Key)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to obtain key")
		}

		message := embedFlags.Message
		if embedFlags.File != "" {
			data, err := os.ReadFile(embedFlags.File)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to read message file")
			}
			message = string(data)
		}

		source, err := openSource(embedFlags.Input)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open input frames")
		}
		frames, err := source.Frames()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to decode input frames")
		}
		source.Close()

		bar := progressbar.NewOptions(100,
			progressbar.OptionSetDescription("embedding"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowCount(),
			progressbar.OptionSetRenderBlankState(true),
		)
		progress := func(percent float64, frameIndex int) {
			bar.Set(int(percent))
			if verbose {
				log.Debug().Float64("percent", percent).Int("frame", frameIndex).Msg("embed progress")
			}
		}

		stegoFrames, err := stego.Embed(frames, message, key, progress)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to embed message")
		}

		sink, err := openSink(embedFlags.Output, embedFlags.OutputDir, embedFlags.Codec, embedFlags.FPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open output")
		}
		if err := sink.WriteFrames(stegoFrames); err != nil {
			log.Fatal().Err(err).Msg("failed to write stego frames")
		}
		sink.Close()

		log.Info().Str("output", embedFlags.Output).Msg("message embedded")
	},
}

func init() {
	rootCmd.AddCommand(embedCmd)

	embedCmd.Flags().StringVarP(&embedFlags.Input, "input", "i", "", "Path to cover frames: a directory of PNG frames, or a lossless video file (required)")
	embedCmd.MarkFlagRequired("input")
	embedCmd.Flags().StringVarP(&embedFlags.Output, "output", "o", "", "Output path for the stego frames (required)")
	embedCmd.MarkFlagRequired("output")
	embedCmd.Flags().BoolVar(&embedFlags.OutputDir, "output-dir", false, "Treat --output as a PNG frame directory instead of a video file")
	embedCmd.Flags().StringVarP(&embedFlags.Message, "message", "m", "", "Message to conceal")
	embedCmd.Flags().StringVarP(&embedFlags.File, "file", "f", "", "Path to a file whose contents should be concealed (cannot be combined with --message)")
	embedCmd.Flags().StringVarP(&embedFlags.Key, "key", "k", "", "Shared key (prompted interactively if omitted)")
	embedCmd.Flags().StringVar(&embedFlags.Codec, "codec", "FFV1", "OpenCV fourcc to use when writing a video output; must be lossless")
	embedCmd.Flags().Float64Var(&embedFlags.FPS, "fps", 25, "Frame rate to stamp into a video output")
}
