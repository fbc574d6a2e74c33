// Package config loads game configuration from JSON, TOML or YAML files
// with environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. STAGEHAND_DISPLAY_FPS.
const EnvPrefix = "STAGEHAND_"

// DefaultNames are tried in order by LoadDefault.
var DefaultNames = []string{"game.json", "game.toml", "game.yaml", "game.yml"}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load decodes name by its extension, applies environment overrides and validates.
func (l *Loader) Load(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg := Default()
	if err := decode(name, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path.Join(l.basePath, name), err)
	}
	return cfg, nil
}

// LoadDefault loads the first of DefaultNames present in the filesystem.
func (l *Loader) LoadDefault() (*GameConfig, error) {
	for _, name := range DefaultNames {
		if _, err := fs.Stat(l.fsys, name); err == nil {
			return l.Load(name)
		}
	}
	return nil, fmt.Errorf("no config found in %s: %w", l.basePath, fs.ErrNotExist)
}

func decode(name string, data []byte, cfg *GameConfig) error {
	switch ext := path.Ext(name); ext {
	case ".json":
		return json.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// ApplyEnv overrides cfg fields from STAGEHAND_* environment variables.
func ApplyEnv(cfg *GameConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			Title:        "stagehand",
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        2,
			Framerate:    60,
		},
		Sprite: SpriteConfig{
			FrameWidth:      16,
			FrameHeight:     16,
			Frames:          4,
			Upscale:         2,
			FrameDurationMS: 120,
			Loop:            true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Validate checks every field the game depends on before the loop starts.
func (c *GameConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, d.ScreenWidth, d.ScreenHeight)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("%w: scale %d", ErrInvalid, d.Scale)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalid, d.Framerate)
	}

	s := c.Sprite
	if s.FrameWidth <= 0 || s.FrameHeight <= 0 {
		return fmt.Errorf("%w: sprite frame %dx%d", ErrInvalid, s.FrameWidth, s.FrameHeight)
	}
	if s.Upscale <= 0 {
		return fmt.Errorf("%w: sprite upscale %v", ErrInvalid, s.Upscale)
	}
	if s.FrameDurationMS <= 0 {
		return fmt.Errorf("%w: frame duration %dms", ErrInvalid, s.FrameDurationMS)
	}
	if s.Sheet == "" && s.Frames <= 0 {
		return fmt.Errorf("%w: generated sprite needs frames > 0", ErrInvalid)
	}
	return nil
}
