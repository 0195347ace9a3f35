// Package detector picks the log format from the environment.
package detector

import (
	"os"

	"go.trai.ch/vigil/internal/core/domain"
	"golang.org/x/term"
)

// DetectEnvironment returns the log format that suits the current process.
// Pretty output is only used when stderr is a terminal and CI is not set.
func DetectEnvironment() domain.LogFormat {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return domain.LogFormatJSON
	}
	return domain.LogFormatPretty
}

// ResolveFormat applies the configured format to the detected one.
// Anything other than pretty or json defers to detection.
func ResolveFormat(detected, configured domain.LogFormat) domain.LogFormat {
	switch configured {
	case domain.LogFormatPretty, domain.LogFormatJSON:
		return configured
	default:
		return detected
	}
}
