package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ErrInvalidSize is returned when an icon is requested at a non-positive size.
var ErrInvalidSize = errors.New("icon: size must be positive")

// Spec is a single render request: one size written to one path.
type Spec struct {
	Size int
	Path string
}

// withAlpha reports itself as never opaque, so the PNG encoder always keeps
// the alpha channel (colour type 6) even when every pixel is opaque.
type withAlpha struct {
	image.Image
}

func (withAlpha) Opaque() bool { return false }

// Encode writes img as an 8-bit RGBA PNG. The encoder embeds no timestamps,
// so the same image always produces the same bytes.
func Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, withAlpha{img}, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression))
}

// Bytes draws the icon at size and returns the encoded PNG.
func Bytes(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidSize, size)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, Draw(size)); err != nil {
		return nil, fmt.Errorf("encoding %dx%d icon: %w", size, size, err)
	}
	return buf.Bytes(), nil
}

// Render draws the icon described by spec and writes it to spec.Path,
// creating parent directories as needed and replacing any existing file.
func Render(spec Spec) error {
	data, err := Bytes(spec.Size)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(spec.Path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", spec.Path, err)
	}
	if err := os.WriteFile(spec.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", spec.Path, err)
	}
	return nil
}

// Write is shorthand for Render(Spec{Size: size, Path: path}).
func Write(path string, size int) error {
	return Render(Spec{Size: size, Path: path})
}
