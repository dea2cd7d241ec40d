package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenExpiry is the duration for which identity tokens are valid. There is
// no refresh or revocation flow; a token stays valid for this window even if
// the underlying account changes.
const TokenExpiry = 24 * time.Hour

var (
	// ErrMissingSecret is returned when no signing secret is configured.
	// This is a deployment precondition, not a per-request condition.
	ErrMissingSecret = errors.New("jwt secret not configured")
	// ErrTokenMalformed is returned for tokens with the wrong structural shape.
	ErrTokenMalformed = errors.New("malformed token")
	// ErrTokenExpired is returned for tokens past their expiry timestamp.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for signature mismatches and any other
	// verification failure.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the identity payload embedded in a token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed identity tokens.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// Generate issues a signed token embedding the identity, valid for TokenExpiry.
func (s *JWTService) Generate(userID uuid.UUID, email, role string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID.String(),
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the embedded identity.
// Failures are classified as ErrTokenMalformed, ErrTokenExpired, or
// ErrTokenInvalid so callers can distinguish them.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
