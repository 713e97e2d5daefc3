// Package images derives the site icons from a square logo.
package images

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
	"github.com/hyperion-dev/hyperion-site/config"
	"github.com/hyperion-dev/hyperion-site/res"
)

// Icon is one square rendition of the logo.
type Icon struct {
	Name string
	Size int
}

func DefaultIcons() []Icon {
	return []Icon{
		{Name: "favicon-32.png", Size: config.DefaultFaviconSize()},
		{Name: "apple-touch-icon.png", Size: config.DefaultTouchIconSize()},
	}
}

// Decode reads a PNG or JPEG image, applying the EXIF orientation of photos.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	return img, nil
}

// OpenLogo decodes the logo at path in fsys.
func OpenLogo(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open logo: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// DefaultLogo is the logo embedded in the binary.
func DefaultLogo() (image.Image, error) {
	return OpenLogo(res.Static, res.LogoFile)
}

// LoadLogo decodes the logo file at path, or the embedded logo when path is
// empty.
func LoadLogo(path string) (image.Image, error) {
	if path == "" {
		return DefaultLogo()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open logo: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Square crops img to its centre square and scales it to size.
func Square(img image.Image, size int) image.Image {
	return imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)
}

func WritePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("saving icon failed: %w", err)
	}

	return nil
}

// RenderIcons renders every icon of icons from logo as PNG, keyed by name.
func RenderIcons(logo image.Image, icons []Icon) (map[string][]byte, error) {
	result := make(map[string][]byte, len(icons))

	for _, icon := range icons {
		var buf bytes.Buffer
		if err := WritePNG(&buf, Square(logo, icon.Size)); err != nil {
			return nil, fmt.Errorf("icon %s: %w", icon.Name, err)
		}
		result[icon.Name] = buf.Bytes()
	}

	return result, nil
}
