//go:build mage

package main

import (
	"path/filepath"
	"runtime"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// ebiten needs cgo on Linux and macOS.
var goEnv = map[string]string{"CGO_ENABLED": "1"}

// gameBin is where Build.Game writes the binary.
func gameBin() string {
	name := "game"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join("bin", name)
}

// goCmd runs the go tool with args and streams its output.
func goCmd(args ...string) error {
	return sh.RunWithV(goEnv, mg.GoCmd(), args...)
}

// goQuiet runs the go tool, printing output only with mage -v.
func goQuiet(args ...string) error {
	if mg.Verbose() {
		return goCmd(args...)
	}
	return sh.RunWith(goEnv, mg.GoCmd(), args...)
}
