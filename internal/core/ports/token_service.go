package ports

// TokenClaims is the identity decoded from a verified token.
type TokenClaims struct {
	UserID string
	Role   string
}

// TokenService issues and verifies the signed bearer tokens used on
// protected routes. Verify fails with domain.ErrTokenExpired past expiry and
// domain.ErrTokenInvalid for anything else that is wrong with the token.
type TokenService interface {
	Issue(userID, role string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
