// Package logger provides the levelled console logger used for diagnostics.
//
// Diagnostics (skipped records, recovered failures) go to stderr so that
// report output on stdout stays clean for piping.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level name to a Level. Empty or unknown names yield
// LevelInfo and false.
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

// ColorMode controls whether level tags are colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Logger is the subset of Console used by the store and services.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Console writes levelled messages to a writer.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	colors map[Level]*color.Color
}

// NewConsole creates a Console writing to w. A nil writer discards output.
func NewConsole(w io.Writer, level Level, mode ColorMode) *Console {
	if w == nil {
		w = io.Discard
	}
	c := &Console{w: w, level: level}
	if useColor(w, mode) {
		c.colors = map[Level]*color.Color{
			LevelDebug: color.New(color.FgCyan),
			LevelInfo:  color.New(color.FgGreen),
			LevelWarn:  color.New(color.FgYellow),
			LevelError: color.New(color.FgRed, color.Bold),
		}
		for _, col := range c.colors {
			col.EnableColor()
		}
	}
	return c
}

// Discard returns a Console that drops every message.
func Discard() *Console {
	return NewConsole(io.Discard, LevelError, ColorNever)
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Level returns the minimum level written.
func (c *Console) Level() Level {
	return c.level
}

func (c *Console) Debugf(format string, args ...any) { c.logf(LevelDebug, format, args...) }
func (c *Console) Infof(format string, args ...any)  { c.logf(LevelInfo, format, args...) }
func (c *Console) Warnf(format string, args ...any)  { c.logf(LevelWarn, format, args...) }
func (c *Console) Errorf(format string, args ...any) { c.logf(LevelError, format, args...) }

func (c *Console) logf(level Level, format string, args ...any) {
	if level < c.level {
		return
	}
	tag := strings.ToUpper(level.String())
	if col, ok := c.colors[level]; ok {
		tag = col.Sprint(tag)
	}
	msg := fmt.Sprintf(format, args...)

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "[%s] %s\n", tag, strings.TrimRight(msg, "\n"))
}
