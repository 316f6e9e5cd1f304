package assetgen

import "errors"

// Sentinel errors for asset generation.
var (
	ErrSourceNotFound = errors.New("source image not found")
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrInvalidFilter  = errors.New("invalid resampling filter")
	ErrInvalidColor   = errors.New("invalid color")

	// Config file errors.
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrConfigTooLarge = errors.New("config file too large")
)
