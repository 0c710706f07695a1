package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrWrongPassword is returned for a failed login. There is no lockout or
// retry limit; the gate is a shared secret, not a per-user credential.
var ErrWrongPassword = errors.New("wrong password, try again")

type service struct {
	adminPassword string
	jwtKey        []byte
	tokenTTL      time.Duration
}

// NewService creates a new auth service around the configured shared
// secret. Nothing about a login survives a restart except the token the
// client holds.
func NewService(adminPassword, jwtSecret string, tokenTTL time.Duration) Service {
	return &service{
		adminPassword: adminPassword,
		jwtKey:        []byte(jwtSecret),
		tokenTTL:      tokenTTL,
	}
}

func (s *service) Login(ctx context.Context, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", ErrWrongPassword
	}

	expirationTime := time.Now().Add(s.tokenTTL)
	claims := &jwt.StandardClaims{
		Subject:   "admin",
		ExpiresAt: expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func (s *service) Verify(tokenString string) error {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid || claims.Subject != "admin" {
		return errors.New("invalid token")
	}
	return nil
}
