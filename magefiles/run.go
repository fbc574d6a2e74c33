//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Run mg.Namespace

// Builds and opens the game window.
func (Run) Game() error {
	mg.Deps(Build.Game)
	return sh.RunV(gameBin(), "run")
}

// Plays back a recorded session without a window.
func (Run) Replay(file string) error {
	mg.Deps(Build.Game)
	return sh.RunV(gameBin(), "replay", file, "--headless")
}
