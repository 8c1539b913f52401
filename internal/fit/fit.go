// Package fit computes how many terminal cells an image occupies when scaled
// to fill the terminal without distorting it.
package fit

import "math"

// DefaultCompression is the vertical compression applied to images because a
// terminal cell is about twice as tall as it is wide.
const DefaultCompression = 0.5

// Size is a width/height pair. Depending on context it is measured in
// pixels or in character cells.
type Size struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Fit returns the largest cell grid that holds img inside term while keeping
// its aspect ratio once rows are compressed by compression.
// Exactly one axis touches its terminal bound unless both aspects match.
// Non-positive inputs return the zero Size.
func Fit(term, img Size, compression float64) Size {
	if !term.Valid() || !img.Valid() || compression <= 0 {
		return Size{}
	}

	imageAspect := float64(img.Width) / (float64(img.Height) / compression)
	termAspect := float64(term.Width) / float64(term.Height)

	if imageAspect > termAspect {
		h := int(math.Round(float64(term.Width) / imageAspect))
		return Size{Width: term.Width, Height: clamp(h, term.Height)}
	}
	w := int(math.Round(float64(term.Height) * imageAspect))
	return Size{Width: clamp(w, term.Width), Height: term.Height}
}

func clamp(v, bound int) int {
	return max(1, min(v, bound))
}
