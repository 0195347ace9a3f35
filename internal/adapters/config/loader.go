// Package config provides the configuration loader for vigil.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the nearest config file at or above cwd and resolves it against the defaults.
// No config file is not an error: the defaults are returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path, found := findConfiguration(cwd)
	if !found {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return domain.DefaultConfig(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from cwd
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Vigilfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg, err := l.resolve(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	cfg.Path = path

	l.Logger.Debug("loaded config from " + path)
	return cfg, nil
}

// findConfiguration walks from cwd up to the filesystem root.
func findConfiguration(cwd string) (string, bool) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		currentDir = filepath.Clean(cwd)
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) resolve(file *Vigilfile) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if file.Debounce != "" {
		d, err := time.ParseDuration(file.Debounce)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "field", "debounce")
		}
		if d < domain.MinDebounceDelay {
			return nil, zerr.With(
				zerr.With(domain.ErrInvalidConfig, "field", "debounce"),
				"minimum", domain.MinDebounceDelay.String(),
			)
		}
		cfg.Debounce = d
	}

	if file.AutoRefactor.Visible != nil {
		cfg.RefactorVisible = *file.AutoRefactor.Visible
	}

	if file.Log.Level != "" {
		cfg.LogLevel = domain.ParseLogLevel(file.Log.Level)
		if !knownLevel(file.Log.Level) {
			l.Logger.Warn(fmt.Sprintf("unknown log level %q, using %s", file.Log.Level, strings.ToLower(cfg.LogLevel.String())))
		}
	}

	if file.Log.Format != "" {
		format := domain.LogFormat(strings.ToLower(strings.TrimSpace(file.Log.Format)))
		switch format {
		case domain.LogFormatAuto, domain.LogFormatPretty, domain.LogFormatJSON:
			cfg.LogFormat = format
		default:
			return nil, zerr.With(
				zerr.With(domain.ErrInvalidConfig, "field", "log.format"),
				"value", file.Log.Format,
			)
		}
	}

	if file.Watch.Skip != nil {
		cfg.WatchSkip = canonicalizeStrings(file.Watch.Skip)
	}

	return cfg, nil
}

func knownLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}

// canonicalizeStrings returns a sorted, deduplicated copy without empty entries.
func canonicalizeStrings(strs []string) []string {
	res := make([]string, 0, len(strs))
	for _, s := range strs {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}
