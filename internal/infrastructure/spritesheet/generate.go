package spritesheet

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/stagehand/internal/domain/sprite"
)

// Generate draws a horizontal strip of n frames of size for use when no
// sheet image is configured. Each frame is filled with the next palette
// color and carries a marker that walks across the frame.
func Generate(size sprite.Size, n int, palette []color.Color) (*ebiten.Image, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = 1
	}
	if len(palette) == 0 {
		palette = []color.Color{color.White}
	}

	strip := ebiten.NewImage(size.Width*n, size.Height)
	marker := max(size.Width/4, 1)
	for i := 0; i < n; i++ {
		x0 := i * size.Width
		frame := strip.SubImage(image.Rect(x0, 0, x0+size.Width, size.Height)).(*ebiten.Image)
		frame.Fill(palette[i%len(palette)])

		mx := x0 + (size.Width-marker)*i/max(n-1, 1)
		my := (size.Height - marker) / 2
		dot := strip.SubImage(image.Rect(mx, my, mx+marker, my+marker)).(*ebiten.Image)
		dot.Fill(color.Black)
	}
	return strip, nil
}
