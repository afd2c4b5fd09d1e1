package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	internal_errors "github.com/ashchan-dev/ashchan/internal/errors"
	"github.com/ashchan-dev/ashchan/internal/logger"
)

type JwtService interface {
	NewToken(userId string) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

// New builds the token service. The secret key is loaded once at
// startup and never rotated at runtime.
func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

// NewToken issues a signed claim for userId: issued now, expires after
// the configured ttl, fresh random token id.
func (j *Jwt) NewToken(userId string) (string, error) {
	if j.secretKey == "" {
		return "", errors.New("jwt signing key is not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"uid": userId,
		"iat": now.Unix(),
		"exp": now.Add(j.ttl).Unix(),
		"jti": uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("can't create token")
	}

	return tokenString, nil
}

// DecodeToken verifies the signature and expiration. All failures come
// back as 401-coded errors; the caller must still re-check the user's
// live status before trusting the uid claim.
func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal_errors.Unauthorized("Token expired")
		}
		return nil, internal_errors.Unauthorized("Invalid token signature")
	}

	if !token.Valid {
		return nil, internal_errors.Unauthorized("Invalid access token")
	}

	return token, nil
}

// UserId extracts the uid claim from a decoded token.
func UserId(token *jwt.Token) (string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", internal_errors.Unauthorized("Malformed token claims")
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", internal_errors.Unauthorized("Malformed token claims")
	}
	return uid, nil
}
