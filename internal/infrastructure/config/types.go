package config

// GameConfig is the root config for game.{json,toml,yaml}
type GameConfig struct {
	Display DisplayConfig `json:"display" yaml:"display" toml:"display" envPrefix:"DISPLAY_"`
	Sprite  SpriteConfig  `json:"sprite" yaml:"sprite" toml:"sprite" envPrefix:"SPRITE_"`
	Assets  AssetsConfig  `json:"assets" yaml:"assets" toml:"assets" envPrefix:"ASSETS_"`
	Log     LogConfig     `json:"log" yaml:"log" toml:"log" envPrefix:"LOG_"`
}

// DisplayConfig sizes the logical screen and the window
type DisplayConfig struct {
	Title        string `json:"title" yaml:"title" toml:"title" env:"TITLE"`
	ScreenWidth  int    `json:"screenWidth" yaml:"screenWidth" toml:"screenWidth" env:"SCREEN_WIDTH"`
	ScreenHeight int    `json:"screenHeight" yaml:"screenHeight" toml:"screenHeight" env:"SCREEN_HEIGHT"`
	Scale        int    `json:"scale" yaml:"scale" toml:"scale" env:"SCALE"`
	Framerate    int    `json:"framerate" yaml:"framerate" toml:"framerate" env:"FPS"`
}

// SpriteConfig describes the demo's animated sprite
type SpriteConfig struct {
	Sheet           string  `json:"sheet" yaml:"sheet" toml:"sheet" env:"SHEET"` // Asset name; empty = generated strip
	FrameWidth      int     `json:"frameWidth" yaml:"frameWidth" toml:"frameWidth" env:"FRAME_WIDTH"`
	FrameHeight     int     `json:"frameHeight" yaml:"frameHeight" toml:"frameHeight" env:"FRAME_HEIGHT"`
	Frames          int     `json:"frames" yaml:"frames" toml:"frames" env:"FRAMES"` // Generated strip length
	Upscale         float64 `json:"upscale" yaml:"upscale" toml:"upscale" env:"UPSCALE"`
	FrameDurationMS int     `json:"frameDurationMs" yaml:"frameDurationMs" toml:"frameDurationMs" env:"FRAME_DURATION_MS"`
	Loop            bool    `json:"loop" yaml:"loop" toml:"loop" env:"LOOP"`
}

// AssetsConfig points at the image directory; Watch enables hot reload
type AssetsConfig struct {
	Dir   string `json:"dir" yaml:"dir" toml:"dir" env:"DIR"`
	Watch bool   `json:"watch" yaml:"watch" toml:"watch" env:"WATCH"`
}

// LogConfig sets the log level (debug, info, warn, error)
type LogConfig struct {
	Level string `json:"level" yaml:"level" toml:"level" env:"LEVEL"`
}
