package httpadapter

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const roleAdmin = "admin"

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// requireAdmin accepts HS256 bearer tokens carrying role=admin.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(h.opts.AdminSecret) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			h.fail(w, http.StatusUnauthorized, "missing bearer token", "")
			return
		}
		claims, err := h.parseAdminToken(token)
		if err != nil {
			h.fail(w, http.StatusUnauthorized, "invalid or expired token", "")
			return
		}
		if claims.Role != roleAdmin {
			h.fail(w, http.StatusForbidden, "admin role required", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) parseAdminToken(raw string) (*adminClaims, error) {
	var claims adminClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return h.opts.AdminSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token not valid")
	}
	return &claims, nil
}
