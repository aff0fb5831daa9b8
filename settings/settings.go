package settings

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds everything the executable can be told from its config file
type Config struct {
	Listen     string // address the decode service listens on
	Source     string // directory holding the .AMOS programs
	LogLevel   string // trace, debug, info, warn, error or off
	Extensions string // TOML file naming extension instructions, optional
}

type fileConfig struct {
	Listen     string `toml:"listen"`
	Source     string `toml:"source"`
	LogLevel   string `toml:"log_level"`
	Extensions string `toml:"extensions"`
}

// Default is used for anything the file leaves out
func Default() Config {
	return Config{
		Listen:   ":8080",
		Source:   "./source",
		LogLevel: "info",
	}
}

// Load reads the config file at path on top of the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("listen") {
		cfg.Listen = strings.TrimSpace(raw.Listen)
	}

	if meta.IsDefined("source") {
		cfg.Source = strings.TrimSpace(raw.Source)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if meta.IsDefined("extensions") {
		cfg.Extensions = strings.TrimSpace(raw.Extensions)
	}

	if undec := meta.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undec[0].String())
	}

	if len(cfg.Source) == 0 {
		return Config{}, fmt.Errorf("load config: source directory can't be empty")
	}

	return cfg, nil
}
