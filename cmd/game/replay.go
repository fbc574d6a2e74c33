package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/younwookim/stagehand/internal/application/game"
	"github.com/younwookim/stagehand/internal/application/replay"
	"github.com/younwookim/stagehand/internal/domain/sprite"
	"github.com/younwookim/stagehand/internal/infrastructure/clock"
	"github.com/younwookim/stagehand/internal/infrastructure/config"
	"github.com/younwookim/stagehand/internal/infrastructure/platform"
)

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play back a recorded session",
	Long: `Feed a recorded session's input back through the game loop.

The replay ends with a window close once its frames run out. Closing
the window or pressing Esc stops it early. With
--headless nothing is drawn and frames run as fast as possible on a
fixed clock.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a window")
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if data.FPS > 0 {
		cfg.Display.Framerate = data.FPS
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger.Info("replaying", "file", args[0], "session", data.Session, "frames", len(data.Frames), "fps", cfg.Display.Framerate)

	r := replay.NewReplayer(*data)
	var reason game.Termination
	if flagHeadless {
		reason, err = replayHeadless(cfg, logger, r)
	} else {
		reason, err = replayWindowed(cfg, logger, r)
	}
	logger.Info("replay finished", "played", r.CurrentFrame(), "total", r.TotalFrames())
	return finish(logger, reason, err)
}

// replayHeadless runs the replay on game.Run with nothing drawn.
func replayHeadless(cfg *config.GameConfig, logger *log.Logger, r *replay.Replayer) (game.Termination, error) {
	clk := clock.NewFixed()
	g, err := game.New(game.Options{
		Display: &platform.Headless{},
		Source:  r,
		Events:  r.Events(),
		Clock:   clk,
		FPS:     cfg.Display.Framerate,
		Logger:  logger,
	})
	if err != nil {
		return game.TerminationFault, err
	}
	sess, err := newSession(cfg, logger, platform.Discard{}, clk)
	if err != nil {
		return game.TerminationFault, err
	}
	defer func() { _ = sess.Close() }()

	return g.Run(sess.scenes)
}

func replayWindowed(cfg *config.GameConfig, logger *log.Logger, r *replay.Replayer) (game.Termination, error) {
	screen, err := platform.NewScreen(sprite.Size{Width: cfg.Display.ScreenWidth, Height: cfg.Display.ScreenHeight})
	if err != nil {
		return game.TerminationFault, err
	}
	clk := clock.NewWall()
	g, err := game.New(game.Options{
		Display: screen,
		Source:  r,
		Events:  replay.WithLiveQuit(platform.NewEvents(), r.Events()),
		Clock:   clk,
		FPS:     cfg.Display.Framerate,
		Logger:  logger,
	})
	if err != nil {
		return game.TerminationFault, err
	}
	sess, err := newSession(cfg, logger, screen.Canvas(), clk)
	if err != nil {
		return game.TerminationFault, err
	}
	defer func() { _ = sess.Close() }()

	return platform.Run(platform.NewRunner(g, sess.scenes, screen), platform.Window{
		Title: cfg.Display.Title + " (replay)",
		Scale: cfg.Display.Scale,
		FPS:   cfg.Display.Framerate,
	})
}

// saveRecording writes rec to filename.
func saveRecording(rec *replay.Recorder, filename string, logger *log.Logger) {
	rec.Stop()
	if err := rec.Save(filename); err != nil {
		logger.Warn("failed to save recording", "file", filename, "err", err)
		return
	}
	logger.Info("recording saved", "file", filename, "frames", rec.FrameCount())
}
