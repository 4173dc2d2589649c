package main

import (
	"fmt"

	"github.com/rmontoya/vstego/internal/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var keygenFlags struct {
	Key   string
	Count int
	Space int
}

// keygenCmd replaces the asymmetric key-pair commands a general-purpose
// steganography tool would carry: this codec has no public/private key
// concept, only a shared passphrase, so the useful diagnostic is previewing
// the chaotic traversal a key produces rather than generating one.
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Preview the chaotic pixel-index sequence a key derives",
	Run: func(cmd *cobra.Command, args []string) {
		key, err := resolveKey(keygenFlags.Key)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to obtain key")
		}

		seq, err := stego.NewChaoticSequence(key)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to derive sequence")
		}

		fmt.Printf("indices (first %d, space %d):\n", keygenFlags.Count, keygenFlags.Space)
		for i := 0; i < keygenFlags.Count; i++ {
			fmt.Println(seq.NextIndex(keygenFlags.Space))
		}
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)

	keygenCmd.Flags().StringVarP(&keygenFlags.Key, "key", "k", "", "Shared key (prompted interactively if omitted)")
	keygenCmd.Flags().IntVarP(&keygenFlags.Count, "count", "n", 16, "Number of indices to print")
	keygenCmd.Flags().IntVar(&keygenFlags.Space, "space", 1_000_000, "Index space (F*W*H) to project into")
}
