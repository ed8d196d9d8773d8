package httpadapter

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var adminSecret = []byte("admin-secret")

func signToken(t *testing.T, method jwt.SigningMethod, key []byte, role string, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, adminClaims{
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	}).SignedString(key)
	require.NoError(t, err)
	return tok
}

func bearer(tok string) http.Header {
	return http.Header{"Authorization": {"Bearer " + tok}}
}

func TestRequireAdmin(t *testing.T) {
	future := time.Now().Add(time.Hour)

	cases := []struct {
		name     string
		header   http.Header
		wantCode int
	}{
		{"no header", nil, http.StatusUnauthorized},
		{"not bearer", http.Header{"Authorization": {"Basic YWRtaW46YWRtaW4="}}, http.StatusUnauthorized},
		{"wrong key", bearer(signToken(t, jwt.SigningMethodHS256, []byte("other"), "admin", future)), http.StatusUnauthorized},
		{"wrong alg", bearer(signToken(t, jwt.SigningMethodHS384, adminSecret, "admin", future)), http.StatusUnauthorized},
		{"expired", bearer(signToken(t, jwt.SigningMethodHS256, adminSecret, "admin", time.Now().Add(-time.Minute))), http.StatusUnauthorized},
		{"not admin", bearer(signToken(t, jwt.SigningMethodHS256, adminSecret, "company", future)), http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, Options{AdminSecret: adminSecret})
			rec := f.do(http.MethodPost, "/api/admin/campaigns/sweep", "", tc.header)
			require.Equal(t, tc.wantCode, rec.Code)
			assert.False(t, decodeEnvelope(t, rec).Success)
		})
	}

	t.Run("admin", func(t *testing.T) {
		f := newFixture(t, Options{AdminSecret: adminSecret})
		f.campaigns.EXPECT().EnforceBudgets(mock.Anything).Return(nil, nil)

		rec := f.do(http.MethodPost, "/api/admin/campaigns/sweep", "",
			bearer(signToken(t, jwt.SigningMethodHS256, adminSecret, "admin", future)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("check disabled without secret", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.campaigns.EXPECT().EnforceBudgets(mock.Anything).Return(nil, nil)

		rec := f.do(http.MethodPost, "/api/admin/campaigns/sweep", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPublicRoutesSkipAdminCheck(t *testing.T) {
	f := newFixture(t, Options{AdminSecret: adminSecret})
	f.listings.EXPECT().ListProducts(mock.Anything, mock.Anything).Return(nil, assert.AnError)

	rec := f.do(http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
