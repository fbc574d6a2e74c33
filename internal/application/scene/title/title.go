// Package title provides the title screen scene.
package title

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/stagehand/internal/application/input"
	"github.com/younwookim/stagehand/internal/application/scene"
	"github.com/younwookim/stagehand/internal/domain/sprite"
	"golang.org/x/image/colornames"
)

// Factory builds the scene that follows the title screen.
type Factory func() (scene.Scene, error)

// Title waits for the player to start or quit.
type Title struct {
	*scene.Base
	start  Factory
	frames int
}

var _ scene.Scene = (*Title)(nil)

// New creates a title scene. Enter or Space switches to the scene built by
// start; Q finishes the title scene, which ends the game.
func New(target sprite.Canvas, ctx *scene.Context, start Factory) *Title {
	return &Title{
		Base:  scene.NewBase(target, ctx),
		start: start,
	}
}

// Name identifies the scene in logs and recordings.
func (t *Title) Name() string {
	return "title"
}

// Update handles the start and quit keys.
func (t *Title) Update(in input.Reader) error {
	t.frames++

	if in.IsKeyJustPressed(ebiten.KeyQ) {
		t.Finish()
		return nil
	}
	if in.IsKeyJustPressed(ebiten.KeyEnter) || in.IsKeyJustPressed(ebiten.KeySpace) {
		next, err := t.start()
		if err != nil {
			return err
		}
		t.Context().Scenes.TransitionTo(next)
	}
	return nil
}

// Draw renders the title text. Only real images get text.
func (t *Title) Draw() {
	screen, ok := t.Target().(*ebiten.Image)
	if !ok {
		return
	}
	screen.Fill(colornames.Midnightblue)

	size := t.Context().Screen
	ebitenutil.DebugPrintAt(screen, "STAGEHAND", size.Width/2-27, size.Height/2-30)
	// Blink at ~2Hz on a 60 TPS loop.
	if (t.frames/30)%2 == 0 {
		ebitenutil.DebugPrintAt(screen, "ENTER: start   Q: quit", size.Width/2-66, size.Height/2)
	}
}
