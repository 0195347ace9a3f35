package domain

import "strings"

// PreflightResponse is what the engine reports about the languages and limits it supports.
type PreflightResponse struct {
	Version       string   `json:"version" yaml:"version"`
	FileTypes     []string `json:"fileTypes" yaml:"fileTypes"`
	MaxInputLines int      `json:"maxInputLines" yaml:"maxInputLines"`
}

// SupportsFileType reports whether ext is one of the supported file types.
// Both sides are compared lower-cased with any leading dot stripped.
func (p *PreflightResponse) SupportsFileType(ext string) bool {
	if p == nil {
		return false
	}
	want := NormalizeFileType(ext)
	if want == "" {
		return false
	}
	for _, ft := range p.FileTypes {
		if NormalizeFileType(ft) == want {
			return true
		}
	}
	return false
}

// NormalizeFileType lower-cases a file extension and strips its leading dot.
func NormalizeFileType(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// AutoRefactorConfig is the derived view of whether auto-refactoring should be offered.
type AutoRefactorConfig struct {
	// Activated is true when the engine is online and a credential is present.
	Activated bool
	// Visible mirrors the user setting controlling whether refactoring is shown at all.
	Visible bool
	// Disabled is true when the engine is online but no credential is present.
	Disabled bool
	// Status is the availability state at the time the config was built.
	Status AvailabilityState
}
