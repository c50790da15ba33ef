// Package logger configures the logrus logger shared by the host and engine
// A terminal game owns stdout, so output goes to a file under Dir or is discarded
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultDir  = "logs"
	DefaultFile = "gaia-snake.log"

	// MaxSize triggers rotation of an existing log file on startup
	MaxSize = 10 << 20
)

// Options selects destination, level and format
type Options struct {
	Enabled bool
	Dir     string
	File    string
	Level   string // Falls back to LOG_LEVEL, then info
	Format  string // "json" or "text"; falls back to LOG_FORMAT
}

// New builds a logger per opts
// The returned closer is nil when logging is disabled
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	level := opts.Level
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	format := opts.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.EqualFold(format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if !opts.Enabled {
		log.SetOutput(io.Discard)
		return log, nil, nil
	}

	f, err := openFile(opts.Dir, opts.File)
	if err != nil {
		log.SetOutput(io.Discard)
		return log, nil, err
	}
	log.SetOutput(f)
	return log, f, nil
}

// openFile creates dir, rotates an oversized file and opens for append
func openFile(dir, name string) (*os.File, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if name == "" {
		name = DefaultFile
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxSize {
		ext := filepath.Ext(name)
		rotated := filepath.Join(dir, fmt.Sprintf("%s-%s%s",
			strings.TrimSuffix(name, ext), time.Now().Format("20060102-150405"), ext))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}
