package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mzen17/PDF-Page-Editor/pkg/models"
	"github.com/mzen17/PDF-Page-Editor/pkg/utils"
)

type Config struct {
	ThumbnailSize struct {
		MaxWidth  int `yaml:"max_width"`
		MaxHeight int `yaml:"max_height"`
	} `yaml:"thumbnail_size"`
	Window struct {
		Width  float32 `yaml:"width"`
		Height float32 `yaml:"height"`
	} `yaml:"window"`
	Verbose bool `yaml:"verbose"`
}

func Default() *Config {
	var cfg Config
	cfg.ThumbnailSize.MaxWidth = utils.DEFAULT_THUMBNAIL_MAX_WIDTH
	cfg.ThumbnailSize.MaxHeight = utils.DEFAULT_THUMBNAIL_MAX_HEIGHT
	cfg.Window.Width = utils.DEFAULT_WINDOW_WIDTH
	cfg.Window.Height = utils.DEFAULT_WINDOW_HEIGHT
	return &cfg
}

// DefaultPath returns the per-user config file location. The file is
// optional; Load falls back to defaults when it does not exist.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pdf-page-editor", "config.yaml"), nil
}

// Load reads a config file and fills anything missing or out of range with
// defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.ThumbnailSize.MaxWidth <= 0 {
		cfg.ThumbnailSize.MaxWidth = utils.DEFAULT_THUMBNAIL_MAX_WIDTH
	}
	if cfg.ThumbnailSize.MaxHeight <= 0 {
		cfg.ThumbnailSize.MaxHeight = utils.DEFAULT_THUMBNAIL_MAX_HEIGHT
	}
	if cfg.Window.Width <= 0 {
		cfg.Window.Width = utils.DEFAULT_WINDOW_WIDTH
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = utils.DEFAULT_WINDOW_HEIGHT
	}

	return cfg, nil
}

// ThumbnailBox adapts the configured bounds to the renderer's box type.
func (c *Config) ThumbnailBox() models.ThumbnailSize {
	return models.ThumbnailSize{
		MaxWidth:  c.ThumbnailSize.MaxWidth,
		MaxHeight: c.ThumbnailSize.MaxHeight,
	}
}
