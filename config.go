package assetgen

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// MaxConfigSize limits the size of a config file (1 MiB).
const MaxConfigSize = 1 << 20

// fileConfig is the on-disk form of Config.
type fileConfig struct {
	Source     string `yaml:"source"`
	OutputDir  string `yaml:"output_dir"`
	Background string `yaml:"background"`
	Filter     string `yaml:"filter"`
}

// LoadConfig reads a YAML config file and applies it on top of DefaultConfig.
// Unknown keys are rejected. Relative source and output_dir paths are
// resolved against the directory holding the config file.
//
// Example:
//
//	source: branding/original-icon.png
//	output_dir: assets
//	background: "#C49A3D"
//	filter: lanczos
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	var fc fileConfig
	if err := yaml.UnmarshalWithOptions(data, &fc, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}

	base := filepath.Dir(path)
	if fc.Source != "" {
		cfg.SourcePath = resolvePath(base, fc.Source)
	}
	if fc.OutputDir != "" {
		cfg.OutputDir = resolvePath(base, fc.OutputDir)
	}
	if fc.Background != "" {
		bg, err := ParseHexColor(fc.Background)
		if err != nil {
			return nil, fmt.Errorf("config %s: background: %w", path, err)
		}
		cfg.Background = bg
	}
	if fc.Filter != "" {
		f, err := ParseFilter(fc.Filter)
		if err != nil {
			return nil, fmt.Errorf("config %s: filter: %w", path, err)
		}
		cfg.Filter = f
	}
	return cfg, nil
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// ParseHexColor parses an opaque "#RRGGBB" or "RRGGBB" color.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: 255}, nil
}
