package main

import (
	"os"

	"github.com/andresmejia3/veil/pkg/stego"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Global flags
var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "veil",
	Short: "Hide messages in the busiest pixels of an image",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		loadConfig()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// logEvents relays the structured events a library call returned to the
// console logger.
func logEvents(events []stego.Event) {
	for _, e := range events {
		var entry *zerolog.Event
		switch e.Level {
		case stego.LevelWarn:
			entry = log.Warn()
		case stego.LevelInfo:
			entry = log.Info()
		default:
			entry = log.Debug()
		}
		entry.Str("code", e.Code).Msg(e.Message)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to veil.toml (default: $VEIL_CONFIG or ./veil.toml)")
}
