package platform

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/stagehand/internal/application/game"
	"github.com/younwookim/stagehand/internal/application/scene"
)

// Window describes the OS window.
type Window struct {
	Title string
	Scale int
	FPS   int
}

// Runner implements ebiten.Game by driving a game.Game one tick at a time.
// ebiten owns the loop here: it throttles to TPS and presents the screen.
type Runner struct {
	game   *game.Game
	scenes *scene.Manager
	screen *Screen

	reason game.Termination
	err    error
}

var _ ebiten.Game = (*Runner)(nil)

// NewRunner creates a runner for g drawing through screen.
func NewRunner(g *game.Game, scenes *scene.Manager, screen *Screen) *Runner {
	return &Runner{game: g, scenes: scenes, screen: screen}
}

// Update runs the update half of a tick. Once the game has stopped, the
// following tick returns ebiten.Termination so the stopping frame is drawn.
func (r *Runner) Update() error {
	if r.reason != game.TerminationNone {
		return ebiten.Termination
	}
	if err := r.game.Update(r.scenes); err != nil {
		r.reason, r.err = game.TerminationFault, err
		return ebiten.Termination
	}
	r.reason = r.game.Termination(r.scenes)
	return nil
}

// Draw renders the active scene and presents it onto screen.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.screen.SetTarget(screen)
	if err := r.game.Draw(r.scenes); err != nil && r.err == nil {
		r.reason, r.err = game.TerminationFault, err
	}
}

// Layout returns the logical screen size; ebiten scales it to the window.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := r.screen.Size()
	return s.Width, s.Height
}

// Result returns why the runner stopped.
func (r *Runner) Result() (game.Termination, error) {
	return r.reason, r.err
}

// Run opens the window and blocks until the game stops. The screen is
// released before returning.
func Run(r *Runner, w Window) (game.Termination, error) {
	size := r.screen.Size()
	scale := max(w.Scale, 1)
	ebiten.SetWindowSize(size.Width*scale, size.Height*scale)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetTPS(w.FPS)
	ebiten.SetWindowClosingHandled(true)

	runErr := ebiten.RunGame(r)
	_ = r.screen.Close()

	reason, err := r.Result()
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return game.TerminationFault, errors.Join(err, runErr)
	}
	return reason, err
}
