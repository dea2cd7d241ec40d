package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret")
	id := uuid.New()

	token, err := svc.Generate(id, "faculty.cs@test.com", "faculty")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "faculty.cs@test.com", claims.Email)
	assert.Equal(t, "faculty", claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_MissingSecret(t *testing.T) {
	svc := NewJWTService("")

	_, err := svc.Generate(uuid.New(), "a@test.com", "student")
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = svc.Verify("anything")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestJWTService_VerifyClassification(t *testing.T) {
	svc := NewJWTService("test-secret")

	t.Run("malformed", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrTokenMalformed)
	})

	t.Run("tampered signature", func(t *testing.T) {
		other := NewJWTService("other-secret")
		token, err := other.Generate(uuid.New(), "a@test.com", "student")
		assert.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.NotErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &Claims{
			UserID: uuid.New().String(),
			Email:  "a@test.com",
			Role:   "student",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
				NotBefore: jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
		assert.NotErrorIs(t, err, ErrTokenInvalid)
	})
}
