//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every package's tests.
func (Test) Unit() error {
	return goCmd("test", "./...")
}

// Runs the tests with the race detector.
func (Test) Race() error {
	return goCmd("test", "-race", "./...")
}
