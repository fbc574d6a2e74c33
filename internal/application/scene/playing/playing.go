// Package playing provides the sprite demo scene.
package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/stagehand/internal/application/input"
	"github.com/younwookim/stagehand/internal/application/scene"
	"github.com/younwookim/stagehand/internal/domain/sprite"
	"golang.org/x/image/colornames"
)

// Speed is the sprite's movement in pixels per frame.
const Speed = 2.0

// Syncer applies pending asset changes. *assets.Library implements it.
type Syncer interface {
	Sync() int
}

// Playing moves an animated sprite around the screen with the arrow keys.
type Playing struct {
	*scene.Base
	sprite  *sprite.Animated
	pos     sprite.Vec
	assets  Syncer
	drawErr error
}

var _ scene.Scene = (*Playing)(nil)

// New creates the scene with the sprite centred on screen.
func New(target sprite.Canvas, ctx *scene.Context, sp *sprite.Animated) *Playing {
	w, h := sp.DestSize()
	return &Playing{
		Base:   scene.NewBase(target, ctx),
		sprite: sp,
		pos: sprite.Vec{
			X: (float64(ctx.Screen.Width) - w) / 2,
			Y: (float64(ctx.Screen.Height) - h) / 2,
		},
	}
}

// Name identifies the scene in logs and recordings.
func (p *Playing) Name() string {
	return "playing"
}

// SetAssets makes Update pick up changed asset files once per frame.
func (p *Playing) SetAssets(s Syncer) {
	p.assets = s
}

// Position returns the sprite's top-left corner.
func (p *Playing) Position() sprite.Vec {
	return p.pos
}

// Update animates and moves the sprite. Q finishes the scene.
// A draw failure from the previous frame is reported here.
func (p *Playing) Update(in input.Reader) error {
	if p.drawErr != nil {
		return p.drawErr
	}
	if in.IsKeyJustPressed(ebiten.KeyQ) {
		p.Finish()
		return nil
	}

	if p.assets != nil {
		if n := p.assets.Sync(); n > 0 {
			p.Context().Logger.Debug("assets reloaded", "count", n)
		}
	}
	p.sprite.Update()

	p.pos.X += float64(input.Axis(in, ebiten.KeyArrowLeft, ebiten.KeyArrowRight)) * Speed
	p.pos.Y += float64(input.Axis(in, ebiten.KeyArrowUp, ebiten.KeyArrowDown)) * Speed
	p.clamp()
	return nil
}

func (p *Playing) clamp() {
	w, h := p.sprite.DestSize()
	maxX := float64(p.Context().Screen.Width) - w
	maxY := float64(p.Context().Screen.Height) - h
	p.pos.X = max(0, min(p.pos.X, maxX))
	p.pos.Y = max(0, min(p.pos.Y, maxY))
}

// Draw renders the sprite and the controls line.
func (p *Playing) Draw() {
	screen, isImage := p.Target().(*ebiten.Image)
	if isImage {
		screen.Fill(colornames.Darkslategray)
	}

	if err := p.sprite.Draw(p.Target(), p.pos); err != nil {
		p.drawErr = err
		p.Context().Logger.Error("sprite draw failed", "err", err)
	}

	if isImage {
		ebitenutil.DebugPrint(screen, "ARROWS: move | Q: finish | ESC: quit")
	}
}
