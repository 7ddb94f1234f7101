package main

import (
	"fmt"

	"github.com/andresmejia3/veil/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	analyzeFlags struct {
		Original string
		Stego    string
		Heatmap  string
		Progress bool
	}
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the difference between an original and a stego image",
	Long:  `Calculates MSE and PSNR between the original carrier and its stego counterpart and generates a heatmap image highlighting modified pixels.`,
	Run: func(cmd *cobra.Command, args []string) {
		overlayProgress(cmd, "progress", &analyzeFlags.Progress)

		result, err := stego.Analyze(stego.AnalyzeArgs{
			OriginalPath: analyzeFlags.Original,
			StegoPath:    analyzeFlags.Stego,
			HeatmapPath:  analyzeFlags.Heatmap,
			Progress:     analyzeFlags.Progress,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Analysis failed")
		}

		fmt.Printf("Analysis Complete:\n")
		fmt.Printf("------------------\n")
		fmt.Printf("MSE (Mean Squared Error):    %.4f\n", result.MSE)
		fmt.Printf("PSNR (Peak Signal-to-Noise): %.2f dB\n", result.PSNR)
		fmt.Printf("Modified pixels:             %d\n", result.ModifiedPixels)
		if analyzeFlags.Heatmap != "" {
			fmt.Printf("Heatmap saved to:            %s\n", analyzeFlags.Heatmap)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFlags.Original, "original", "o", "", "Path to original image (required)")
	analyzeCmd.MarkFlagRequired("original")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.Stego, "stego", "s", "", "Path to stego image (required)")
	analyzeCmd.MarkFlagRequired("stego")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.Heatmap, "heatmap", "d", "heatmap.png", "Output path for the difference heatmap image")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.Progress, "progress", true, "Render a progress bar on stderr")
}
