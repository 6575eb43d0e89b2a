package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

type Config struct {
	GridWidth     int    `yaml:"grid_width"`
	GridHeight    int    `yaml:"grid_height"`
	DrawStyle     string `yaml:"draw_style"`
	SaveDirectory string `yaml:"save_directory"`
	StartMenu     bool   `yaml:"start_menu"`
	Debug         bool   `yaml:"debug"`
}

func defaultConfig() *Config {
	return &Config{
		GridWidth:  32,
		GridHeight: 20,
		DrawStyle:  StyleSingle.String(),
		StartMenu:  true,
	}
}

// loadConfig reads ~/.pigmentrc.yaml, falling back to defaults when
// the file is absent or unreadable.
func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	data, err := os.ReadFile(filepath.Join(homeDir, ".pigmentrc.yaml"))
	if err != nil {
		return config
	}

	return parseConfig(data, homeDir)
}

func parseConfig(data []byte, homeDir string) *Config {
	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaultConfig()
	}

	if config.GridWidth < 1 {
		config.GridWidth = defaultConfig().GridWidth
	}
	if config.GridHeight < 1 {
		config.GridHeight = defaultConfig().GridHeight
	}
	if _, ok := drawStyleFromName(config.DrawStyle); !ok {
		config.DrawStyle = StyleSingle.String()
	}

	if config.SaveDirectory != "" {
		dir := config.SaveDirectory
		if strings.HasPrefix(dir, "~") {
			dir = filepath.Join(homeDir, strings.TrimPrefix(dir, "~"))
		}
		if !filepath.IsAbs(dir) {
			if absPath, err := filepath.Abs(dir); err == nil {
				dir = absPath
			}
		}
		config.SaveDirectory = dir
	}

	return config
}

func drawStyleFromName(name string) (DrawStyle, bool) {
	switch name {
	case StyleSingle.String():
		return StyleSingle, true
	case StyleAdditive.String():
		return StyleAdditive, true
	case StyleSequential.String():
		return StyleSequential, true
	}
	return StyleSingle, false
}

func (c *Config) gridStyle() DrawStyle {
	style, _ := drawStyleFromName(c.DrawStyle)
	return style
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
