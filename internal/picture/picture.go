// Package picture loads still images from disk.
package picture

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder (first frame only)
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/llehouerou/imprev/internal/fit"
)

// ErrEmptyImage is returned for an image that decodes to zero pixels.
var ErrEmptyImage = errors.New("image is empty")

// DecodeError reports a file that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Picture is a decoded image. It is never modified after Load returns.
type Picture struct {
	Image  image.Image
	Format string
	Path   string
	Bytes  int64
}

// Size returns the image dimensions in pixels.
func (p *Picture) Size() fit.Size {
	b := p.Image.Bounds()
	return fit.Size{Width: b.Dx(), Height: b.Dy()}
}

// Load opens and decodes the image at path.
func Load(path string) (*Picture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	pic, err := decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	pic.Path = path
	if info, err := f.Stat(); err == nil {
		pic.Bytes = info.Size()
	}
	return pic, nil
}

func decode(r io.Reader) (*Picture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return &Picture{Image: img, Format: format}, nil
}
