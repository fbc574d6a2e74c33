// game is the stagehand sprite demo.
//
// Usage:
//
//	game run                 - Open the window and play
//	game replay <file>       - Play back a recorded session
//
// Global flags:
//
//	--config <path>     - Config file (json, toml or yaml); defaults to the embedded game.json
//	--log-level <level> - debug, info, warn or error
//
// Exit status is 0 when the player quits or the last scene finishes and
// 1 when the game stops on an error.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/younwookim/stagehand/internal/application/game"
	"github.com/younwookim/stagehand/internal/infrastructure/config"
	"github.com/younwookim/stagehand/internal/infrastructure/logging"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Stagehand - a fixed-timestep sprite demo",
	Long: `Stagehand runs a title scene and an animated sprite scene on a
fixed-timestep loop.

Controls:
  Enter/Space - Start (title)
  Arrows      - Move the sprite
  Q           - Finish the current scene
  Esc         - Quit

Examples:
  game run
  game run --fps 30 --record
  game run --record-file run1.json
  game run --config ./game.toml
  game replay replay_20260101_120000.json --headless`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a game config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig reads --config, or the embedded configs when it is empty.
func loadConfig() (*config.GameConfig, error) {
	if flagConfig != "" {
		loader := config.NewLoader(filepath.Dir(flagConfig))
		return loader.Load(filepath.Base(flagConfig))
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadDefault()
}

func newLogger(cfg *config.GameConfig) (*log.Logger, error) {
	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	return logging.New(logging.Options{Level: level, Prefix: "stagehand"})
}

// finish logs the outcome and turns a fault into the command's error.
func finish(logger *log.Logger, reason game.Termination, err error) error {
	if err != nil {
		logger.Error("game stopped", "reason", reason, "err", err)
		return err
	}
	logger.Info("game stopped", "reason", reason)
	return nil
}
