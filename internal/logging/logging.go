// Package logging provides the leveled logger used across mdsite.
package logging

import (
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Logger is the leveled logging contract used by the site builder and
// server. Arguments after msg are key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Named(name string) Logger
}

// Config selects the level and output format of the logger.
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// New returns a Logger backed by go-logger.
func New(cfg Config) (Logger, error) {
	options := []glog.Option{}

	if cfg.Level != "" {
		level, err := parseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	root := glog.NewLogger(options...)
	return &adapter{root: root, inner: root}, nil
}

type adapter struct {
	root  *glog.BaseLogger
	name  string
	inner glog.Logger
}

func (l *adapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *adapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *adapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *adapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// Named returns a child logger. Names nest with a dot: "site" then "write"
// gives "site.write".
func (l *adapter) Named(name string) Logger {
	name = strings.TrimSpace(name)
	if name == "" {
		return l
	}
	if l.name != "" {
		name = l.name + "." + name
	}
	return &adapter{root: l.root, name: name, inner: l.root.GetLogger(name)}
}

func parseLevel(level string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace, nil
	case "debug":
		return glog.Debug, nil
	case "info":
		return glog.Info, nil
	case "warn", "warning":
		return glog.Warn, nil
	case "error":
		return glog.Error, nil
	default:
		return "", fmt.Errorf("unsupported log level %q", level)
	}
}

// NoOp returns a Logger that discards everything.
func NoOp() Logger { return noop{} }

type noop struct{}

func (noop) Debug(string, ...any) {}
func (noop) Info(string, ...any)  {}
func (noop) Warn(string, ...any)  {}
func (noop) Error(string, ...any) {}
func (noop) Named(string) Logger  { return noop{} }
