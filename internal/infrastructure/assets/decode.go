// Package assets loads images from a filesystem and reloads them when the
// files change on disk.
package assets

import (
	"fmt"
	"image"
	"io/fs"

	// Register decoders for every format a sheet may be saved in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decode reads and decodes the image stored under name.
func Decode(fsys fs.FS, name string) (image.Image, string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return img, format, nil
}
