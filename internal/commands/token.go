package commands

import (
	"os"
	"time"

	"garage/backend/internal/auth"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// TokenClaims is what sign-in puts into a token pair.
type TokenClaims struct {
	ID   int
	Role string
}

const (
	accessTokenTTL  = 12 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// GenToken issues an access/refresh token pair signed with the service RSA
// key.
func GenToken(claims TokenClaims, privatePEMPath string) (string, string, error) {
	pem, err := os.ReadFile(privatePEMPath)
	if err != nil {
		return "", "", errors.Wrap(err, "reading private pem")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return "", "", errors.Wrap(err, "parsing private pem")
	}

	now := time.Now()

	accessToken := jwt.NewWithClaims(jwt.SigningMethodRS256, auth.Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(accessTokenTTL).Unix(),
		},
		UserId: claims.ID,
		Role:   claims.Role,
	})
	access, err := accessToken.SignedString(privateKey)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodRS256, auth.Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(refreshTokenTTL).Unix(),
		},
		UserId: claims.ID,
		Role:   claims.Role,
	})
	refresh, err := refreshToken.SignedString(privateKey)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return access, refresh, nil
}

// VerifyTokens checks a token pair and returns both claim sets. The access
// token may be expired (that is why the caller is refreshing); the refresh
// token must still be valid.
func VerifyTokens(accessToken, refreshToken, privatePEMPath string) (auth.Claims, auth.Claims, error) {
	pem, err := os.ReadFile(privatePEMPath)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "reading private pem")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "parsing private pem")
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return &privateKey.PublicKey, nil
	}

	var accessClaims auth.Claims
	if _, err = jwt.ParseWithClaims(accessToken, &accessClaims, keyFunc); err != nil {
		validationErr, ok := err.(*jwt.ValidationError)
		if !ok || validationErr.Errors != jwt.ValidationErrorExpired {
			return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "parsing access token")
		}
	}

	var refreshClaims auth.Claims
	token, err := jwt.ParseWithClaims(refreshToken, &refreshClaims, keyFunc)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "parsing refresh token")
	}
	if !token.Valid {
		return auth.Claims{}, auth.Claims{}, errors.New("invalid refresh token")
	}

	if accessClaims.UserId != refreshClaims.UserId {
		return auth.Claims{}, auth.Claims{}, errors.New("token pair mismatch")
	}

	return accessClaims, refreshClaims, nil
}
