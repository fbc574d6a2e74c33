//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the game binary into bin/.
func (Build) Game() error {
	return goCmd("build", "-o", gameBin(), "./cmd/game")
}

// Runs go mod tidy and go vet.
func (Build) Tidy() error {
	if err := goQuiet("mod", "tidy"); err != nil {
		return err
	}
	return goCmd("vet", "./...")
}
