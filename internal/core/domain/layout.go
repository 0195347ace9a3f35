package domain

import "time"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = ".vigil.yaml"

	// CredentialEnvVar is the environment variable holding the engine access token.
	CredentialEnvVar = "VIGIL_ACCESS_TOKEN"

	// DefaultDebounceDelay is the default quiet period before a changed document is reviewed.
	DefaultDebounceDelay = 300 * time.Millisecond

	// MinDebounceDelay is the smallest accepted debounce delay.
	MinDebounceDelay = 10 * time.Millisecond
)

const (
	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
