package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single failure result for token verification.
// Bad signature, malformed input, wrong token class and expiry all collapse
// into it so callers can never tell which check failed.
var ErrInvalidToken = errors.New("invalid or expired token")

const (
	issuer          = "planora"
	accessAudience  = "planora-api"
	refreshAudience = "planora-refresh"

	// AccessTokenTTL is how long an access token stays valid.
	AccessTokenTTL = 15 * time.Minute
	// RefreshTokenTTL is how long a refresh token stays valid. There is no
	// revocation list; a refresh token lives until natural expiry.
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims carries the authenticated user identity inside a signed token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// IssueAccessToken creates a short-lived access token for the given user.
func IssueAccessToken(userID, secret string) (string, error) {
	return issueToken(userID, secret, accessAudience, AccessTokenTTL)
}

// IssueRefreshToken creates a long-lived refresh token for the given user.
// The secret must differ from the access secret; the config layer enforces this.
func IssueRefreshToken(userID, secret string) (string, error) {
	return issueToken(userID, secret, refreshAudience, RefreshTokenTTL)
}

// VerifyAccessToken validates an access token and returns the user ID it
// was issued for, or ErrInvalidToken.
func VerifyAccessToken(token, secret string) (string, error) {
	return verifyToken(token, secret, accessAudience)
}

// VerifyRefreshToken validates a refresh token and returns the user ID it
// was issued for, or ErrInvalidToken.
func VerifyRefreshToken(token, secret string) (string, error) {
	return verifyToken(token, secret, refreshAudience)
}

func issueToken(userID, secret, audience string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func verifyToken(tokenString, secret, audience string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience), jwt.WithExpirationRequired())
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
