package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ongvang00/HealthManagementSystem/internal/logger"
)

func TestConsoleFiltersBelowLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := logger.NewConsole(&buf, logger.LevelWarn, logger.ColorNever)

	log.Debugf("debug %d", 1)
	log.Infof("info %d", 2)
	log.Warnf("skipped line %d", 3)
	log.Errorf("append failed: %s", "disk full")

	assert.Equal(t, "[WARN] skipped line 3\n[ERROR] append failed: disk full\n", buf.String())
}

func TestConsoleColorAlwaysWrapsTag(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := logger.NewConsole(&buf, logger.LevelDebug, logger.ColorAlways)

	log.Warnf("careful")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "careful")
}

func TestConsoleAutoColorIsOffForBuffers(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := logger.NewConsole(&buf, logger.LevelDebug, logger.ColorAuto)

	log.Infof("plain")

	assert.Equal(t, "[INFO] plain\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	cases := map[string]struct {
		level logger.Level
		ok    bool
	}{
		"debug":   {logger.LevelDebug, true},
		" INFO ":  {logger.LevelInfo, true},
		"warning": {logger.LevelWarn, true},
		"error":   {logger.LevelError, true},
		"":        {logger.LevelInfo, false},
		"verbose": {logger.LevelInfo, false},
	}
	for in, want := range cases {
		got, ok := logger.ParseLevel(in)
		assert.Equal(t, want.level, got, in)
		assert.Equal(t, want.ok, ok, in)
	}
}

func TestNilWriterDiscards(t *testing.T) {
	t.Parallel()
	log := logger.NewConsole(nil, logger.LevelDebug, logger.ColorNever)
	assert.NotPanics(t, func() { log.Errorf("nothing") })
}
