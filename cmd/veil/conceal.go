package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/andresmejia3/veil/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	concealFlags struct {
		Image     string
		Msg       string
		File      string
		Out       string
		OutputDir string
		Threshold int
		Channels  string
		Strategy  string
		FEC       bool
		Progress  bool
	}
)

var concealCmd = &cobra.Command{
	Use:   "conceal",
	Short: "Conceal a message in an image",
	Run: func(cmd *cobra.Command, args []string) {
		overlayThreshold(cmd, "threshold", &concealFlags.Threshold)
		overlayChannels(cmd, "channels", &concealFlags.Channels)
		overlayStrategy(cmd, "strategy", &concealFlags.Strategy)
		overlayOutputDir(cmd, "output-dir", &concealFlags.OutputDir)
		overlayProgress(cmd, "progress", &concealFlags.Progress)

		if concealFlags.Msg != "" && concealFlags.File != "" {
			log.Fatal().Msg("message and file flags cannot both be provided")
		}
		if concealFlags.Threshold < 0 || concealFlags.Threshold > 255 {
			log.Fatal().Msg("threshold must be between 0 and 255")
		}

		message := concealFlags.Msg
		if concealFlags.File != "" {
			var data []byte
			var err error
			if concealFlags.File == "-" {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(concealFlags.File)
			}
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to read message file")
			}
			message = string(data)
		}

		channels, err := stego.ParseChannels(concealFlags.Channels)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid channels flag")
		}

		strategy := stego.Strategy(concealFlags.Strategy)
		if strategy == stego.StrategyUniform && len(channels) > 1 {
			strategy = stego.StrategyUniformMulti
		}

		// Default output handling
		if concealFlags.Out == "" {
			outputDir := concealFlags.OutputDir
			if outputDir == "" {
				outputDir = "output"
			}
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				log.Fatal().Err(err).Msg("Failed to create default output directory")
			}
			concealFlags.Out = filepath.Join(outputDir, "veiled.png")
		} else if dir := filepath.Dir(concealFlags.Out); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				log.Fatal().Err(err).Msg("Failed to create output directory")
			}
		}

		result, err := stego.Conceal(stego.ConcealArgs{
			ImagePath: concealFlags.Image,
			Message:   message,
			Output:    concealFlags.Out,
			Threshold: concealFlags.Threshold,
			Channels:  channels,
			Strategy:  strategy,
			FEC:       concealFlags.FEC,
			Progress:  concealFlags.Progress,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to conceal message")
		}

		logEvents(result.Events)
		log.Info().
			Str("output", result.Output).
			Int("bits", result.BitsWritten).
			Int("capacity", result.Capacity).
			Msg("Concealed message")
	},
}

func init() {
	rootCmd.AddCommand(concealCmd)

	concealCmd.Flags().StringVarP(&concealFlags.Image, "image-path", "i", "", "Path to carrier image (required)")
	concealCmd.MarkFlagRequired("image-path")
	concealCmd.Flags().StringVarP(&concealFlags.Msg, "message", "m", "", "Message you want to conceal")
	concealCmd.Flags().StringVarP(&concealFlags.File, "file", "f", "", "Path to file holding the message. Use '-' for stdin.")
	concealCmd.Flags().StringVarP(&concealFlags.Out, "output", "o", "", "Output path for the stego image (always written as .png)")
	concealCmd.Flags().StringVar(&concealFlags.OutputDir, "output-dir", "", "Directory for the default output path")
	concealCmd.Flags().IntVarP(&concealFlags.Threshold, "threshold", "t", 100, "Importance threshold (0-255)")
	concealCmd.Flags().StringVarP(&concealFlags.Channels, "channels", "c", "r", "Channel subset to write, e.g. r, rg, rgb")
	concealCmd.Flags().StringVarP(&concealFlags.Strategy, "strategy", "s", "smart", "Embedding strategy: smart, uniform")
	concealCmd.Flags().BoolVar(&concealFlags.FEC, "fec", false, "Wrap the payload in Reed-Solomon parity")
	concealCmd.Flags().BoolVar(&concealFlags.Progress, "progress", true, "Render a progress bar on stderr")
}
