package main

import (
	"github.com/spf13/cobra"
	"github.com/younwookim/stagehand/internal/application/game"
	"github.com/younwookim/stagehand/internal/application/replay"
	"github.com/younwookim/stagehand/internal/domain/sprite"
	"github.com/younwookim/stagehand/internal/infrastructure/clock"
	"github.com/younwookim/stagehand/internal/infrastructure/platform"
)

var (
	flagFPS        int
	flagRecord     bool
	flagRecordFile string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the game window",
	Long: `Open the window and start at the title scene.

With --record, every frame's input is saved as a replay when the game
stops, under a timestamped filename. --record-file names the file and
implies --record.

Examples:
  game run --record
  game run --record-file run1.json`,
	Args: cobra.NoArgs,
	RunE: runGame,
}

func init() {
	runCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = config)")
	runCmd.Flags().BoolVar(&flagRecord, "record", false, "Record input to a timestamped replay file")
	runCmd.Flags().StringVar(&flagRecordFile, "record-file", "", "Record input to this file")
}

// recordTarget returns the replay file to write, or "" when not recording.
func recordTarget() string {
	switch {
	case flagRecordFile != "":
		return flagRecordFile
	case flagRecord:
		return replay.GenerateFilename()
	default:
		return ""
	}
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Display.Framerate = flagFPS
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	screen, err := platform.NewScreen(sprite.Size{Width: cfg.Display.ScreenWidth, Height: cfg.Display.ScreenHeight})
	if err != nil {
		return err
	}

	var (
		src    = platform.NewSource()
		events = platform.NewEvents()
		opts   = game.Options{Display: screen, Source: src, Events: events, Clock: clock.NewWall(), FPS: cfg.Display.Framerate, Logger: logger}
		rec    *replay.Recorder
	)
	recordFile := recordTarget()
	if recordFile != "" {
		rec = replay.NewRecorder("title", cfg.Display.Framerate)
		opts.Source = rec.Source(src)
		opts.Events = rec.Events(events)
		logger.Info("recording enabled", "file", recordFile, "session", rec.Data().Session)
	}

	g, err := game.New(opts)
	if err != nil {
		return err
	}
	sess, err := newSession(cfg, logger, screen.Canvas(), opts.Clock)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	reason, runErr := platform.Run(platform.NewRunner(g, sess.scenes, screen), platform.Window{
		Title: cfg.Display.Title,
		Scale: cfg.Display.Scale,
		FPS:   cfg.Display.Framerate,
	})

	if rec != nil {
		saveRecording(rec, recordFile, logger)
	}
	return finish(logger, reason, runErr)
}
