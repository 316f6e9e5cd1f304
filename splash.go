package assetgen

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Splash screen geometry.
const (
	SplashWidth  = 1284
	SplashHeight = 2778

	// splashLift moves the icon up from the true vertical center.
	splashLift = 100
)

// DefaultBackground is the gold splash background, #C49A3D.
var DefaultBackground = color.NRGBA{R: 196, G: 154, B: 61, A: 255}

// SplashOffset returns the top-left position of an icon of the given size on
// a canvas: centered horizontally, and centered vertically less splashLift.
func SplashOffset(canvas, icon image.Point) image.Point {
	return image.Pt(
		(canvas.X-icon.X)/2,
		(canvas.Y-icon.Y)/2-splashLift,
	)
}

// Splash renders the splash screen: a SplashWidth x SplashHeight canvas
// filled with bg, with src resized to half the canvas width and composited
// over it using its own alpha channel.
func Splash(src image.Image, bg color.NRGBA, f Filter) *image.NRGBA {
	canvas := imaging.New(SplashWidth, SplashHeight, bg)

	size := SplashWidth / 2
	icon := Resize(size, size, src, f)

	pos := SplashOffset(canvas.Bounds().Size(), icon.Bounds().Size())
	return imaging.Overlay(canvas, icon, pos, 1.0)
}
