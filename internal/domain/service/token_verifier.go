package service

// OperatorClaims identifies the caller of an authenticated API request.
type OperatorClaims struct {
	Subject string
	Roles   []string
}

// TokenVerifier validates bearer tokens issued by the platform's identity service.
type TokenVerifier interface {
	Verify(token string) (*OperatorClaims, error)
}
