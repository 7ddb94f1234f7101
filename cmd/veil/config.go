package main

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// veil.toml key mapping. Every key is optional; defined keys fill in
// defaults for flags the user did not set explicitly. An explicit flag
// always wins over the file.
type fileConfig struct {
	Threshold int    `toml:"threshold"`
	Channels  string `toml:"channels"`
	Strategy  string `toml:"strategy"`
	OutputDir string `toml:"output_dir"`
	Progress  bool   `toml:"progress"`
}

var (
	cfg     fileConfig
	cfgMeta toml.MetaData
	cfgOK   bool
)

// loadConfig resolves the config path (--config, then $VEIL_CONFIG, then
// ./veil.toml if present) and decodes it. A missing file is not an error;
// a broken one is fatal since the user asked for it.
func loadConfig() {
	path := configPath
	explicit := path != ""
	if path == "" {
		path = os.Getenv("VEIL_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = "veil.toml"
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			log.Fatal().Err(err).Str("config", path).Msg("Config file not found")
		}
		return
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		log.Fatal().Err(err).Str("config", path).Msg("Failed to parse config")
	}
	cfgMeta = meta
	cfgOK = true
	log.Debug().Str("config", path).Msg("Loaded config defaults")
}

// configDefined reports whether the file may override the given flag:
// the file was loaded, defines the key, and the user left the flag alone.
func configDefined(cmd *cobra.Command, flag, key string) bool {
	return cfgOK && !cmd.Flags().Changed(flag) && cfgMeta.IsDefined(key)
}

func overlayThreshold(cmd *cobra.Command, flag string, dst *int) {
	if configDefined(cmd, flag, "threshold") {
		*dst = cfg.Threshold
	}
}

func overlayChannels(cmd *cobra.Command, flag string, dst *string) {
	if configDefined(cmd, flag, "channels") {
		*dst = strings.TrimSpace(cfg.Channels)
	}
}

func overlayStrategy(cmd *cobra.Command, flag string, dst *string) {
	if configDefined(cmd, flag, "strategy") {
		*dst = strings.TrimSpace(cfg.Strategy)
	}
}

func overlayOutputDir(cmd *cobra.Command, flag string, dst *string) {
	if configDefined(cmd, flag, "output_dir") {
		*dst = strings.TrimSpace(cfg.OutputDir)
	}
}

func overlayProgress(cmd *cobra.Command, flag string, dst *bool) {
	if configDefined(cmd, flag, "progress") {
		*dst = cfg.Progress
	}
}
