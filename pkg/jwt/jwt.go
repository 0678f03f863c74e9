// Package jwt issues and validates the HS512 access and refresh tokens used
// by the API. Initialize must run once at startup before any token call.
package jwt

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	instance *JWT
	once     sync.Once

	ErrJWTNotInitialized = errors.New("jwt: instance not initialized")
	ErrInvalidToken      = errors.New("jwt: invalid token")
)

type JWT struct {
	appName            string
	secretKey          string
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
}

func Initialize(appName string, secretKey string, accessExpiry, refreshExpiry time.Duration) {
	once.Do(func() {
		instance = &JWT{
			appName:            appName,
			secretKey:          secretKey,
			accessTokenExpiry:  accessExpiry,
			refreshTokenExpiry: refreshExpiry,
		}
	})
}

func GetInstance() *JWT {
	if instance == nil {
		_ = ErrJWTNotInitialized
	}

	return instance
}

func GenerateAccessToken(userID, email, role string) (string, error) {
	return GetInstance().generateToken(userID, email, role, GetInstance().accessTokenExpiry, "access_token")
}

func GenerateRefreshToken(userID, email, role string) (string, error) {
	return GetInstance().generateToken(userID, email, role, GetInstance().refreshTokenExpiry, "refresh_token")
}

// ValidateToken parses and verifies a token, rejecting anything not signed
// with the HMAC family this service issues.
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("jwt: unexpected signing method %v", t.Header["alg"])
		}

		return []byte(GetInstance().secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

func (j *JWT) generateToken(userID, email, role string, expiry time.Duration, tokenType string) (string, error) {
	claims := &Claims{
		ID:        userID,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    j.appName,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signedString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}

	return signedString, nil
}
