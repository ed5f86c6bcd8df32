// Package auth knows how to validate the JWT tokens issued at sign-in and
// which roles they carry.
package auth

import (
	"crypto/rsa"
	"os"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

type ctxKey int

// Key is how request claims are stored and retrieved from a context.Context.
const Key ctxKey = 1

const (
	RoleAdmin     = "ADMIN"
	RoleMechanic  = "MECHANIC"
	RoleDashboard = "DASHBOARD"
)

// Claims is the payload of every token the service issues.
type Claims struct {
	jwt.StandardClaims
	UserId int    `json:"user_id"`
	Role   string `json:"role"`
}

// Authorized reports whether the claims carry one of the given roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// Auth validates tokens against the service signing key.
type Auth struct {
	publicKey *rsa.PublicKey
}

// New loads the RSA private key and keeps the public half for validation.
func New(privatePEMPath string) (*Auth, error) {
	pem, err := os.ReadFile(privatePEMPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading private pem")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, errors.Wrap(err, "parsing private pem")
	}

	return &Auth{publicKey: &privateKey.PublicKey}, nil
}

// ValidateToken checks the token signature and expiry and returns its claims.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.publicKey, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	return claims, nil
}
