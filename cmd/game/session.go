package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/stagehand/internal/application/scene"
	"github.com/younwookim/stagehand/internal/application/scene/playing"
	"github.com/younwookim/stagehand/internal/application/scene/title"
	"github.com/younwookim/stagehand/internal/domain/sprite"
	"github.com/younwookim/stagehand/internal/infrastructure/assets"
	"github.com/younwookim/stagehand/internal/infrastructure/config"
	"github.com/younwookim/stagehand/internal/infrastructure/spritesheet"
	"golang.org/x/image/colornames"
)

// Generated sprite frames cycle through these.
var spritePalette = []color.Color{
	colornames.Gold,
	colornames.Orange,
	colornames.Tomato,
	colornames.Orchid,
	colornames.Mediumslateblue,
	colornames.Lightseagreen,
}

// session wires the demo scenes to one render target and clock.
type session struct {
	cfg    *config.GameConfig
	logger *log.Logger
	canvas sprite.Canvas
	clock  sprite.Ticker

	scenes *scene.Manager
	ctx    *scene.Context
	lib    *assets.Library
}

func newSession(cfg *config.GameConfig, logger *log.Logger, canvas sprite.Canvas, clock sprite.Ticker) (*session, error) {
	s := &session{
		cfg:    cfg,
		logger: logger,
		canvas: canvas,
		clock:  clock,
		scenes: scene.NewManager(logger),
	}
	screen := sprite.Size{Width: cfg.Display.ScreenWidth, Height: cfg.Display.ScreenHeight}
	s.ctx = scene.NewContext(logger, screen, s.scenes)

	if dir := cfg.Assets.Dir; dir != "" {
		s.lib = assets.NewLibrary(os.DirFS(dir), logger)
		if cfg.Assets.Watch {
			if err := s.lib.Watch(dir); err != nil {
				return nil, fmt.Errorf("watch assets: %w", err)
			}
		}
	}

	s.scenes.SetInitialScene(title.New(canvas, s.ctx, s.newPlaying))
	return s, nil
}

// newPlaying builds the sprite scene. The sheet comes from the asset
// library when configured and is generated otherwise.
func (s *session) newPlaying() (scene.Scene, error) {
	sc := s.cfg.Sprite
	size := sprite.Size{Width: sc.FrameWidth, Height: sc.FrameHeight}

	src, err := s.sheetImage(size)
	if err != nil {
		return nil, err
	}
	sheet, err := spritesheet.New(src, time.Duration(sc.FrameDurationMS)*time.Millisecond, sc.Loop)
	if err != nil {
		return nil, err
	}
	if sc.Sheet != "" {
		s.lib.OnReload(sc.Sheet, sheet.Replace)
	}

	sp, err := sprite.NewAnimated(sheet, size, s.clock, sprite.WithUpscale(sc.Upscale))
	if err != nil {
		return nil, fmt.Errorf("create sprite: %w", err)
	}

	p := playing.New(s.canvas, s.ctx, sp)
	if s.lib != nil {
		p.SetAssets(s.lib)
	}
	s.logger.Debug("playing scene ready", "frames", sheet.Len(), "frame", size, "upscale", sc.Upscale)
	return p, nil
}

func (s *session) sheetImage(size sprite.Size) (*ebiten.Image, error) {
	name := s.cfg.Sprite.Sheet
	if name == "" {
		return spritesheet.Generate(size, s.cfg.Sprite.Frames, spritePalette)
	}
	if s.lib == nil {
		return nil, errors.New("sprite sheet configured without an assets dir")
	}
	return s.lib.Image(name)
}

func (s *session) Close() error {
	if s.lib == nil {
		return nil
	}
	return s.lib.Close()
}
