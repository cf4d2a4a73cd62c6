package ports

// TokenIssuer signs bearer tokens for an authenticated identity.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// TokenVerifier checks a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
