// Package assetgen generates the image assets of a mobile app from a single
// source icon: the app store icon, the Android adaptive icon, a favicon and a
// splash screen with the icon centered on a solid background.
package assetgen

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register the WebP decoder for source images
)

// Default locations, relative to the working directory.
const (
	DefaultSourcePath = "original-icon.png"
	DefaultOutputDir  = "assets"
)

// MinSourceSize is the recommended minimum width and height of the source
// image. Smaller sources are upscaled, with a loss of quality.
const MinSourceSize = 1024

// Asset file names.
const (
	IconFile         = "icon.png"
	AdaptiveIconFile = "adaptive-icon.png"
	FaviconFile      = "favicon.png"
	SplashFile       = "splash.png"
)

const (
	iconSize    = 1024
	faviconSize = 48
)

// Asset describes one generated file.
type Asset struct {
	File   string
	Width  int
	Height int
}

// Assets returns the files written by Generate, in the order they are written.
func Assets() []Asset {
	return []Asset{
		{File: IconFile, Width: iconSize, Height: iconSize},
		{File: AdaptiveIconFile, Width: iconSize, Height: iconSize},
		{File: FaviconFile, Width: faviconSize, Height: faviconSize},
		{File: SplashFile, Width: SplashWidth, Height: SplashHeight},
	}
}

// Logf is a printf-like logging function. Like log.Printf, the format need
// not end in a newline.
type Logf func(format string, args ...any)

// Config holds asset generation configuration
type Config struct {
	SourcePath string      // path of the source icon
	OutputDir  string      // directory receiving the assets, created if missing
	Background color.NRGBA // splash background; the zero value selects DefaultBackground
	Filter     Filter      // resampling filter; empty selects FilterLanczos
	Logf       Logf        // progress messages; nil prints to stdout
}

// DefaultConfig returns the configuration used when the command is run with
// no arguments.
func DefaultConfig() *Config {
	return &Config{
		SourcePath: DefaultSourcePath,
		OutputDir:  DefaultOutputDir,
		Background: DefaultBackground,
		Filter:     FilterLanczos,
		Logf:       stdoutLogf,
	}
}

func stdoutLogf(format string, args ...any) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Printf(format, args...)
}

func (cfg *Config) applyDefaults() {
	if cfg.SourcePath == "" {
		cfg.SourcePath = DefaultSourcePath
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Background == (color.NRGBA{}) {
		cfg.Background = DefaultBackground
	}
	if cfg.Filter == "" {
		cfg.Filter = FilterLanczos
	}
	if cfg.Logf == nil {
		cfg.Logf = stdoutLogf
	}
}

// Generate writes the icon, adaptive icon, favicon and splash assets.
//
// It accepts a Config struct pointer; zero fields take their defaults.
//
// If the source image does not exist, Generate logs where it is expected and
// returns an error wrapping ErrSourceNotFound without creating anything.
//
// The config.OutputDir will be created if it doesn't exist. Existing assets
// are overwritten; for the same source the output is byte-for-byte the same.
//
// Any other failure aborts the remaining steps and is returned as is; assets
// written before the failure are left in place.
func Generate(cfg *Config) error {
	if cfg == nil {
		return ErrNilConfig
	}
	cfg.applyDefaults()
	logf := cfg.Logf

	if _, err := os.Stat(cfg.SourcePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logf("❌ Please place your icon at: %s", cfg.SourcePath)
			logf("   Your icon should be at least %dx%d pixels", MinSourceSize, MinSourceSize)
			return fmt.Errorf("%w: %s", ErrSourceNotFound, cfg.SourcePath)
		}
		return fmt.Errorf("failed to stat source image %s: %w", cfg.SourcePath, err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	src, err := loadSource(cfg.SourcePath)
	if err != nil {
		return err
	}
	size := src.Bounds().Size()
	logf("✅ Loaded icon: %dx%d", size.X, size.Y)
	if size.X < MinSourceSize || size.Y < MinSourceSize {
		logf("⚠️  Icon is smaller than %dx%d; assets will be upscaled", MinSourceSize, MinSourceSize)
	}

	icon, err := encodePNG(Resize(iconSize, iconSize, src, cfg.Filter))
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", IconFile, err)
	}
	// The adaptive icon is the app icon as is, so both files share one encoding.
	for _, name := range []string{IconFile, AdaptiveIconFile} {
		if err := writeAsset(cfg, name, icon, iconSize, iconSize); err != nil {
			return err
		}
	}

	favicon, err := encodePNG(Resize(faviconSize, faviconSize, src, cfg.Filter))
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", FaviconFile, err)
	}
	if err := writeAsset(cfg, FaviconFile, favicon, faviconSize, faviconSize); err != nil {
		return err
	}

	splash, err := encodePNG(Splash(src, cfg.Background, cfg.Filter))
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", SplashFile, err)
	}
	if err := writeAsset(cfg, SplashFile, splash, SplashWidth, SplashHeight); err != nil {
		return err
	}

	logf("")
	logf("🎉 All assets created successfully!")
	logf("")
	logf("Next steps:")
	logf("1. Copy the '%s' folder to your Expo project", filepath.Base(cfg.OutputDir))
	logf("2. Run: npx expo start")
	logf("3. To build for iOS: eas build --platform ios")
	return nil
}

// loadSource decodes the source image and normalizes it to NRGBA.
func loadSource(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return normalize(img), nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeAsset saves encoded PNG data to the output directory.
func writeAsset(cfg *Config, name string, data []byte, width, height int) error {
	dest := filepath.Join(cfg.OutputDir, name)
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	cfg.Logf("✅ Created %s (%dx%d)", dest, width, height)
	return nil
}
