package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, accountID int64, scope string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		AccountID: accountID,
		Scope:     scope,
	})

	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err, "test token should sign without errors")
	return signed
}

func Test_DecodeClaims(t *testing.T) {
	t.Parallel()

	t.Run("well formed token", func(t *testing.T) {
		token := mintToken(t, 42, "ADMIN", time.Now().Add(time.Hour))

		claims := DecodeClaims(token)

		require.NotNil(t, claims, "claims should decode")
		assert.Equal(t, int64(42), claims.AccountID)
		assert.Equal(t, "ADMIN", claims.Scope)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Second)
	})

	t.Run("signature is not verified", func(t *testing.T) {
		// The console reads claims, it does not validate them. A token
		// signed with an unknown key must still decode.
		token := mintToken(t, 7, "COACH", time.Now().Add(time.Hour))

		claims := DecodeClaims(token)

		require.NotNil(t, claims)
		assert.Equal(t, int64(7), claims.AccountID)
	})

	t.Run("malformed tokens decode to nil", func(t *testing.T) {
		tests := []struct {
			name  string
			token string
		}{
			{name: "empty", token: ""},
			{name: "no segments", token: "notatoken"},
			{name: "one dot", token: "header.payload"},
			{name: "invalid base64", token: "!!!.@@@.###"},
			{name: "payload not base64", token: "eyJhbGciOiJIUzI1NiJ9.%%%%.c2ln"},
			{name: "payload not json", token: "eyJhbGciOiJIUzI1NiJ9.bm90anNvbg.c2ln"},
			{name: "too many segments", token: "a.b.c.d"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Nil(t, DecodeClaims(tt.token), "malformed token must decode to nil, never raise")
			})
		}
	})
}

func Test_ClaimsExpiresAfter(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name      string
		expiresAt *jwt.NumericDate
		want      bool
	}{
		{name: "future expiry", expiresAt: jwt.NewNumericDate(now.Add(time.Minute)), want: true},
		{name: "past expiry", expiresAt: jwt.NewNumericDate(now.Add(-time.Minute)), want: false},
		{name: "no expiry claim", expiresAt: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: tt.expiresAt}}

			assert.Equal(t, tt.want, claims.ExpiresAfter(now))
		})
	}
}
