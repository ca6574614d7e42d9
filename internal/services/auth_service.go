package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"time"

	intconfig "backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService checks the admin credential pair injected via configuration.
// There is no user table behind this; the admin panel has exactly one
// account.
type AuthService struct {
	Env intconfig.Env
}

// Login reports whether the credentials match and, when they do, issues a
// 24h HS256 token for the admin panel. A missing password configuration
// always fails closed.
func (s AuthService) Login(username, password string) (string, bool, error) {
	if !constantTimeEqual(username, s.Env.AdminUser) {
		return "", false, nil
	}

	if s.Env.AdminPassHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(s.Env.AdminPassHash), []byte(password)) != nil {
			return "", false, nil
		}
	} else {
		if s.Env.AdminPass == "" || !constantTimeEqual(password, s.Env.AdminPass) {
			return "", false, nil
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(s.Env.JWTSecret))
	if err != nil {
		return "", false, err
	}
	return signed, true, nil
}

// constantTimeEqual hashes both sides first so the comparison does not
// leak length information.
func constantTimeEqual(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}
