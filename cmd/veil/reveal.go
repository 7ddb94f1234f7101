package main

import (
	"fmt"
	"os"

	"github.com/andresmejia3/veil/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	revealFlags struct {
		Image     string
		Out       string
		Threshold int
		Channels  string
		FEC       bool
		Progress  bool
	}
)

var revealCmd = &cobra.Command{
	Use:   "reveal",
	Short: "Reveal a message hidden in an image",
	Run: func(cmd *cobra.Command, args []string) {
		overlayThreshold(cmd, "threshold", &revealFlags.Threshold)
		overlayChannels(cmd, "channels", &revealFlags.Channels)
		overlayProgress(cmd, "progress", &revealFlags.Progress)

		channels, err := stego.ParseChannels(revealFlags.Channels)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid channels flag")
		}

		result, err := stego.Reveal(stego.RevealArgs{
			ImagePath: revealFlags.Image,
			Threshold: revealFlags.Threshold,
			Channels:  channels,
			FEC:       revealFlags.FEC,
			Progress:  revealFlags.Progress,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to reveal message")
		}

		logEvents(result.Events)
		if result.Strategy == stego.StrategyNone {
			log.Warn().Msg("No message found by any strategy")
		} else {
			log.Debug().Str("strategy", string(result.Strategy)).Msg("Recovered message")
		}

		if revealFlags.Out != "" {
			if err := os.WriteFile(revealFlags.Out, []byte(result.Message), 0644); err != nil {
				log.Fatal().Err(err).Msg("Failed to write output file")
			}
			return
		}
		fmt.Println(result.Message)
	},
}

func init() {
	rootCmd.AddCommand(revealCmd)

	revealCmd.Flags().StringVarP(&revealFlags.Image, "image-path", "i", "", "Path to stego image (required)")
	revealCmd.MarkFlagRequired("image-path")
	revealCmd.Flags().StringVarP(&revealFlags.Out, "output", "o", "", "Output path for the revealed message (optional)")
	revealCmd.Flags().IntVarP(&revealFlags.Threshold, "threshold", "t", 100, "Importance threshold used at conceal time")
	revealCmd.Flags().StringVarP(&revealFlags.Channels, "channels", "c", "r", "Channel subset the smart strategy reads")
	revealCmd.Flags().BoolVar(&revealFlags.FEC, "fec", false, "Unwrap Reed-Solomon parity from the payload")
	revealCmd.Flags().BoolVar(&revealFlags.Progress, "progress", false, "Render a progress bar on stderr")
}
