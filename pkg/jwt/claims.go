package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered set with the account fields middleware needs
// for authorization. TokenType distinguishes access from refresh tokens so a
// refresh token can never authenticate a request.
type Claims struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}
