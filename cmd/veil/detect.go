package main

import (
	"fmt"

	"github.com/andresmejia3/veil/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var detectThreshold int

var detectCmd = &cobra.Command{
	Use:   "detect [image-path]",
	Short: "Detect which embedding convention produced an image",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		overlayThreshold(cmd, "threshold", &detectThreshold)

		strategy, err := stego.DetectFormat(args[0], detectThreshold)
		if err != nil {
			log.Fatal().Err(err).Msg("Detection failed")
		}
		fmt.Println(strategy)
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().IntVarP(&detectThreshold, "threshold", "t", 100, "Importance threshold for the smart probe")
}
