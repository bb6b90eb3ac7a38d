package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina_lms_backend/internal/model"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{ID: "u1", Email: "alex@lumina.edu", Role: model.Student}

	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, model.Student, claims.Role)
	assert.Equal(t, "alex@lumina.edu", claims.Email)
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &model.User{ID: "u1", Role: model.Student}
	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTPinsSigningMethod(t *testing.T) {
	// A token signed with any other method must fail even when the
	// HMAC secret matches.
	claims := &Claims{
		UserID: "u1",
		Role:   model.Student,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	user := &model.User{ID: "u1", Role: model.Student}
	token, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
