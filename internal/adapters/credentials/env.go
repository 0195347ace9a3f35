// Package credentials reports whether an engine access token is configured.
package credentials

import (
	"os"
	"strings"

	"go.trai.ch/vigil/internal/core/domain"
)

// EnvProvider implements ports.CredentialProvider by reading an environment variable.
// The variable is read on every call so a token added mid-session is picked up
// by the next forced preflight.
type EnvProvider struct {
	lookup func(string) (string, bool)
	name   string
}

// NewEnvProvider creates a provider for domain.CredentialEnvVar.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{lookup: os.LookupEnv, name: domain.CredentialEnvVar}
}

// HasCredential reports whether the variable is set to a non-blank value.
func (p *EnvProvider) HasCredential() bool {
	v, ok := p.lookup(p.name)
	return ok && strings.TrimSpace(v) != ""
}
