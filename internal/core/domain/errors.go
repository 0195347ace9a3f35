package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidRange is returned when a text range violates its line or column invariants.
	ErrInvalidRange = zerr.New("invalid text range")

	// ErrEngineUnavailable is returned when the analysis engine cannot be reached.
	ErrEngineUnavailable = zerr.New("analysis engine unavailable")

	// ErrUnsupportedLanguage is returned when a file type is not supported by the analysis engine.
	ErrUnsupportedLanguage = zerr.New("unsupported language")

	// ErrRefactorUnavailable is returned when auto-refactoring is requested while the feature is not enabled.
	ErrRefactorUnavailable = zerr.New("auto-refactor is not available")

	// ErrCandidateStale is returned when a refactor candidate no longer exists in the document.
	ErrCandidateStale = zerr.New("refactor candidate is stale")

	// ErrReviewFailed is returned when the analysis engine fails to review a file.
	ErrReviewFailed = zerr.New("failed to review file")

	// ErrDeltaFailed is returned when the analysis engine fails to compute a delta.
	ErrDeltaFailed = zerr.New("failed to compute delta analysis")

	// ErrCandidatesFailed is returned when the analysis engine fails to list refactor candidates.
	ErrCandidatesFailed = zerr.New("failed to list refactor candidates")

	// ErrRefactorFailed is returned when the analysis engine fails to refactor a function.
	ErrRefactorFailed = zerr.New("failed to refactor function")

	// ErrPreflightFailed is returned when the preflight probe fails.
	ErrPreflightFailed = zerr.New("preflight probe failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration value")

	// ErrReadDocumentFailed is returned when a document cannot be read from disk.
	ErrReadDocumentFailed = zerr.New("failed to read document")

	// ErrCandidateParseFailed is returned when a refactor candidate file cannot be parsed.
	ErrCandidateParseFailed = zerr.New("failed to parse refactor candidate")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrNoPathsSpecified is returned when a command requires at least one path.
	ErrNoPathsSpecified = zerr.New("no paths specified")
)
