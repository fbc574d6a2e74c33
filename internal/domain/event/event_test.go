package event

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNone, "None"},
		{KindWindowClose, "WindowClose"},
		{KindKeyDown, "KeyDown"},
		{Kind(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestEvent_IsQuit(t *testing.T) {
	assert.True(t, WindowClose().IsQuit())
	assert.True(t, KeyDown(ebiten.KeyEscape).IsQuit())
	assert.False(t, KeyDown(ebiten.KeyEnter).IsQuit())
	assert.False(t, Event{}.IsQuit())
	// A non key-down event carrying the escape code is not a quit.
	assert.False(t, Event{Kind: KindNone, Key: ebiten.KeyEscape}.IsQuit())
}
