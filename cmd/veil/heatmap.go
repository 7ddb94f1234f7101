package main

import (
	"image"

	"github.com/andresmejia3/veil/pkg/stego"
	"github.com/nfnt/resize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	heatmapFlags struct {
		Out          string
		PreviewWidth int
	}
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap [image-path]",
	Short: "Export the importance map as a grayscale image",
	Long:  `Renders the per-pixel importance scores used for smart pixel selection as a grayscale PNG. Bright areas are where payload bits go first.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := stego.BuildImportanceMap(args[0])
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to build importance map")
		}

		var out image.Image = m.Gray()
		if heatmapFlags.PreviewWidth > 0 && heatmapFlags.PreviewWidth < m.Width {
			out = resize.Resize(uint(heatmapFlags.PreviewWidth), 0, out, resize.Bicubic)
		}

		if err := stego.WritePNG(out, heatmapFlags.Out); err != nil {
			log.Fatal().Err(err).Msg("Failed to write heatmap")
		}
		log.Info().Str("output", heatmapFlags.Out).Msg("Importance map written")
	},
}

func init() {
	rootCmd.AddCommand(heatmapCmd)

	heatmapCmd.Flags().StringVarP(&heatmapFlags.Out, "output", "o", "importance.png", "Output path for the map image")
	heatmapCmd.Flags().IntVar(&heatmapFlags.PreviewWidth, "preview-width", 0, "Downscale the map to this width (0 = full size)")
}
