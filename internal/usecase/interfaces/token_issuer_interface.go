package interfaces

import "elo_drinks/internal/domain/entities"

// TokenClaims is the verified identity carried by an access token.
type TokenClaims struct {
	UserID string
	Role   entities.UserRole
}

// ITokenIssuer abstracts access-token signing and verification.
type ITokenIssuer interface {
	Issue(user entities.User) (token string, expiresIn int64, err error)
	Verify(token string) (TokenClaims, error)
}
