package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACService_RoundTrip(t *testing.T) {
	s := NewHMACService("secret", time.Hour)

	tok, err := s.GenerateAccessToken("user-1", "a@example.com")
	require.NoError(t, err)

	c, err := s.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.Subject)
	assert.Equal(t, "a@example.com", c.Email)
	assert.Equal(t, TokenTypeAccess, c.TokenType)
}

func TestHMACService_Expired(t *testing.T) {
	s := NewHMACService("secret", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := s.GenerateAccessToken("user-1", "")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_Invalid(t *testing.T) {
	s := NewHMACService("secret", time.Hour)
	other := NewHMACService("other", time.Hour)

	foreign, err := other.GenerateAccessToken("user-1", "")
	require.NoError(t, err)

	noExp := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{
		TokenType:        TokenTypeAccess,
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: "user-1"},
	})
	noExpTok, err := noExp.SignedString([]byte("secret"))
	require.NoError(t, err)

	wrongType := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{
		TokenType: "refresh",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	wrongTypeTok, err := wrongType.SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"garbage":    "not-a-token",
		"foreign":    foreign,
		"no expiry":  noExpTok,
		"wrong type": wrongTypeTok,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.ValidateToken(tok)
			require.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestHMACService_Unconfigured(t *testing.T) {
	s := NewHMACService("", time.Hour)

	_, err := s.GenerateAccessToken("user-1", "")
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, err = s.ValidateToken("x.y.z")
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewHMACService("secret", time.Hour).GenerateAccessToken(" ", "")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
