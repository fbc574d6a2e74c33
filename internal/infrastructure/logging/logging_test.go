package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	assert.Equal(t, log.WarnLevel, l.GetLevel())
	l.Info("hidden")
	l.Warn("shown", "frame", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "frame=3")
}

func TestNew_DefaultLevel(t *testing.T) {
	l, err := New(Options{Output: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, l.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
