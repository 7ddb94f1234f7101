package main

import (
	"github.com/andresmejia3/veil/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var convertOut string

var convertCmd = &cobra.Command{
	Use:   "convert [image-path]",
	Short: "Re-encode a supported image as PNG",
	Long:  `Converts a .png, .jpg, .jpeg or .bmp image to PNG, the only format the encoders write. Lossy formats would destroy LSB payloads on save.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, err := stego.ConvertToPNG(args[0], convertOut)
		if err != nil {
			log.Fatal().Err(err).Msg("Conversion failed")
		}
		log.Info().Str("output", output).Msg("Converted to PNG")
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertOut, "output", "o", "", "Output path (default: input with .png extension)")
}
