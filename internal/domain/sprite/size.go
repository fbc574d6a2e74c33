package sprite

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a width or height is not positive.
var ErrInvalidSize = errors.New("invalid size")

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width" yaml:"width" toml:"width"`
	Height int `json:"height" yaml:"height" toml:"height"`
}

// NewSize returns a validated Size.
func NewSize(width, height int) (Size, error) {
	s := Size{Width: width, Height: height}
	if err := s.Validate(); err != nil {
		return Size{}, err
	}
	return s, nil
}

// Validate reports ErrInvalidSize unless both dimensions are positive.
func (s Size) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	return nil
}

// Scale returns the dimensions multiplied by f.
func (s Size) Scale(f float64) (w, h float64) {
	return float64(s.Width) * f, float64(s.Height) * f
}

// String formats the size as WxH.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
