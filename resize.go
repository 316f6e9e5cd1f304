package assetgen

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// Filter names the resampling kernel used when an asset is resized.
type Filter string

const (
	FilterLanczos    Filter = "lanczos"
	FilterCatmullRom Filter = "catmullrom"
	FilterMitchell   Filter = "mitchell"
	FilterLinear     Filter = "linear"
	FilterBox        Filter = "box"
	FilterNearest    Filter = "nearest"
)

var resampleFilters = map[Filter]imaging.ResampleFilter{
	FilterLanczos:    imaging.Lanczos,
	FilterCatmullRom: imaging.CatmullRom,
	FilterMitchell:   imaging.MitchellNetravali,
	FilterLinear:     imaging.Linear,
	FilterBox:        imaging.Box,
	FilterNearest:    imaging.NearestNeighbor,
}

// ParseFilter returns the Filter with the given name. Matching is case
// insensitive and an empty name selects FilterLanczos.
func ParseFilter(name string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return FilterLanczos, nil
	}
	if _, ok := resampleFilters[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, name)
	}
	return f, nil
}

func (f Filter) resample() imaging.ResampleFilter {
	if rf, ok := resampleFilters[f]; ok {
		return rf
	}
	return imaging.Lanczos
}

// Resize scales src to exactly width x height pixels using the given filter.
//
// The aspect ratio of src is not preserved: a non-square source is stretched
// to fill the target. Unknown filters fall back to Lanczos. A non-positive
// width or height yields an empty image.
//
// Parameters:
//   - width: The width of the output image
//   - height: The height of the output image
//   - src: The source image to resize
//   - f: The resampling filter
//
// Returns:
//   - *image.NRGBA: The resized image
func Resize(width, height int, src image.Image, f Filter) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	return imaging.Resize(src, width, height, f.resample())
}

// normalize converts src to non-premultiplied RGBA so every asset carries an
// alpha channel, whatever the color model of the decoded file.
func normalize(src image.Image) *image.NRGBA {
	if img, ok := src.(*image.NRGBA); ok && img.Rect.Min == (image.Point{}) {
		return img
	}
	return imaging.Clone(src)
}
