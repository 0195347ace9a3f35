package ports

// CredentialProvider reports whether the user has a credential for AI-assisted refactoring.
//
//go:generate mockgen -source=credentials.go -destination=mocks/mock_credentials.go -package=mocks
type CredentialProvider interface {
	HasCredential() bool
}
