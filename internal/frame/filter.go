package frame

import (
	"fmt"
	"strings"

	"github.com/nfnt/resize"
)

// DefaultFilter is the resampling filter used when none is configured.
const DefaultFilter = "bilinear"

var filters = map[string]resize.InterpolationFunction{
	"nearest":  resize.NearestNeighbor,
	"bilinear": resize.Bilinear,
	"bicubic":  resize.Bicubic,
	"mitchell": resize.MitchellNetravali,
	"lanczos2": resize.Lanczos2,
	"lanczos3": resize.Lanczos3,
}

// ParseFilter resolves a filter name (case-insensitive). An empty name
// selects DefaultFilter.
func ParseFilter(name string) (resize.InterpolationFunction, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultFilter
	}
	f, ok := filters[name]
	if !ok {
		return 0, fmt.Errorf("unknown resampling filter %q", name)
	}
	return f, nil
}
