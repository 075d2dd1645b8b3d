// Package config loads remindwindows settings from ~/.config/remindwindows.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/mkells/remindwindows/internal/core/slug"
)

// DefaultTitleTemplate renders each displayed window's title.
const DefaultTitleTemplate = "{{name}}"

type Config struct {
	Dir           string // Reminder directory
	Editor        string // Editor command for the edit subcommand
	MaxBaseLen    int    // Max derived basename length, excluding extension
	TitleTemplate string // Mustache template for window titles ({{name}}, {{text}})
}

type tomlConfig struct {
	Dir           string `toml:"dir"`
	Editor        string `toml:"editor"`
	MaxBaseLen    int    `toml:"max_base_len"`
	TitleTemplate string `toml:"title_template"`
}

// Load reads config from ~/.config/remindwindows/. A missing config file is
// not an error (defaults apply); a malformed one is. Environment variables
// REMINDWINDOWS_DIR and REMINDWINDOWS_EDITOR, optionally supplied via an
// `env` file next to the config, override the file.
func Load() (*Config, error) {
	cfg := &Config{
		MaxBaseLen:    slug.DefaultMaxBase,
		TitleTemplate: DefaultTitleTemplate,
	}

	home, err := os.UserHomeDir()
	if err == nil {
		cfg.Dir = filepath.Join(home, ".remindwindows")

		configDir := filepath.Join(home, ".config", "remindwindows")
		tomlPath := filepath.Join(configDir, "config.toml")
		envPath := filepath.Join(configDir, "env")

		if _, err := os.Stat(tomlPath); err == nil {
			var tc tomlConfig
			if _, err := toml.DecodeFile(tomlPath, &tc); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", tomlPath, err)
			}
			if tc.Dir != "" {
				cfg.Dir = expandHome(tc.Dir, home)
			}
			if tc.Editor != "" {
				cfg.Editor = tc.Editor
			}
			if tc.MaxBaseLen > 0 {
				cfg.MaxBaseLen = tc.MaxBaseLen
			}
			if tc.TitleTemplate != "" {
				cfg.TitleTemplate = tc.TitleTemplate
			}
		}

		// Optional env file, loaded before the overrides below.
		_ = godotenv.Load(envPath)
	}

	if dir := os.Getenv("REMINDWINDOWS_DIR"); dir != "" {
		cfg.Dir = dir
	}
	if editor := os.Getenv("REMINDWINDOWS_EDITOR"); editor != "" {
		cfg.Editor = editor
	}

	return cfg, nil
}

// EditorCommand picks the editor to spawn: config, then $VISUAL, then
// $EDITOR, then vim.
func (c *Config) EditorCommand() string {
	if c.Editor != "" {
		return c.Editor
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vim"
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
