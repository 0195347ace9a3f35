// Package app implements the application layer for vigil.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/vigil/internal/adapters/detector"
	"go.trai.ch/vigil/internal/adapters/fs"
	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports"
	"go.trai.ch/vigil/internal/engine/availability"
	"go.trai.ch/vigil/internal/engine/cache"
	"go.trai.ch/vigil/internal/engine/jobs"
	"go.trai.ch/vigil/internal/engine/stale"
	"go.trai.ch/zerr"
)

// Deps are the components an App is built from.
type Deps struct {
	ConfigLoader ports.ConfigLoader
	Logger       ports.Logger
	Hasher       ports.ContentHasher
	Engine       ports.Engine
	Credentials  ports.CredentialProvider
	Watcher      ports.Watcher
	Tracer       ports.Tracer
	Reviews      *cache.ReviewCache
	Deltas       *cache.DeltaCache
	Candidates   *cache.CandidateCache
	Jobs         *jobs.Tracker
	Availability *availability.Tracker
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	hasher       ports.ContentHasher
	engine       ports.Engine
	credentials  ports.CredentialProvider
	watcher      ports.Watcher
	tracer       ports.Tracer
	reviews      *cache.ReviewCache
	deltas       *cache.DeltaCache
	candidates   *cache.CandidateCache
	jobs         *jobs.Tracker
	availability *availability.Tracker

	detectFormat func() domain.LogFormat
}

// New creates a new App instance.
func New(d Deps) *App {
	return &App{
		configLoader: d.ConfigLoader,
		logger:       d.Logger,
		hasher:       d.Hasher,
		engine:       d.Engine,
		credentials:  d.Credentials,
		watcher:      d.Watcher,
		tracer:       d.Tracer,
		reviews:      d.Reviews,
		deltas:       d.Deltas,
		candidates:   d.Candidates,
		jobs:         d.Jobs,
		availability: d.Availability,
		detectFormat: detector.DetectEnvironment,
	}
}

// WithFormatDetector replaces terminal detection for the auto log format.
// This is primarily used for testing.
func (a *App) WithFormatDetector(detect func() domain.LogFormat) *App {
	a.detectFormat = detect
	return a
}

// configurableLogger is implemented by loggers whose level and encoding can change at runtime.
type configurableLogger interface {
	SetLevel(level domain.LogLevel)
	SetJSON(enable bool)
}

// setup loads the configuration for the working directory and applies its log settings.
func (a *App) setup(verbose bool) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if l, ok := a.logger.(configurableLogger); ok {
		level := cfg.LogLevel
		if verbose {
			level = domain.LogLevelDebug
		}
		l.SetLevel(level)
		l.SetJSON(detector.ResolveFormat(a.detectFormat(), cfg.LogFormat) == domain.LogFormatJSON)
	}
	return cfg, nil
}

// DigestOptions configuration for the Digest method.
type DigestOptions struct {
	Verbose bool
	Out     io.Writer
}

// Digest prints the content digest of every file below paths, one "digest  path" line each.
// Directories listed in the configured skip list are not descended into.
func (a *App) Digest(_ context.Context, paths []string, opts DigestOptions) error {
	if len(paths) == 0 {
		return domain.ErrNoPathsSpecified
	}

	cfg, err := a.setup(opts.Verbose)
	if err != nil {
		return err
	}

	out := writerOr(opts.Out)
	walker := fs.NewWalker(cfg.WatchSkip...)

	var errs error
	for _, root := range paths {
		if _, statErr := os.Stat(root); statErr != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(statErr, domain.ErrReadDocumentFailed.Error()), "path", root))
			continue
		}
		for path := range walker.WalkFiles(root, nil) {
			content, readErr := fs.ReadDocument(path)
			if readErr != nil {
				errs = errors.Join(errs, readErr)
				continue
			}
			_, _ = fmt.Fprintf(out, "%s  %s\n", a.hasher.Digest(content), path)
		}
	}
	return errs
}

// StaleOptions configuration for the Stale method.
type StaleOptions struct {
	Verbose bool
	Out     io.Writer
}

// Stale checks every candidate in candidatesPath against the document at docPath
// and prints one "name: status" line per candidate.
func (a *App) Stale(_ context.Context, docPath, candidatesPath string, opts StaleOptions) error {
	if _, err := a.setup(opts.Verbose); err != nil {
		return err
	}

	doc, err := fs.ReadDocument(docPath)
	if err != nil {
		return err
	}
	found, err := fs.ReadCandidates(candidatesPath)
	if err != nil {
		return err
	}

	out := writerOr(opts.Out)
	for _, c := range found {
		res := stale.Check(doc, c)
		switch res.Status {
		case stale.Moved:
			_, _ = fmt.Fprintf(out, "%s: %s %s -> %s\n", c.Name, res.Status, c.Range, res.Range)
		case stale.Unchanged:
			_, _ = fmt.Fprintf(out, "%s: %s %s\n", c.Name, res.Status, res.Range)
		default:
			_, _ = fmt.Fprintf(out, "%s: %s\n", c.Name, res.Status)
		}
	}
	a.logger.Debug(fmt.Sprintf("checked %d candidates against %s (%s)", len(found), docPath, a.hasher.Digest(doc).Short()))
	return nil
}

func writerOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
