package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// RoleAdmin is the role claim required by the admin API.
const RoleAdmin = "admin"

// Claims are the JWT claims accepted by the admin API.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// requireAdmin accepts HS256 bearer tokens signed with the configured
// secret and carrying the admin role.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	secret := []byte(h.opts.JWTSecret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme, tokenString, ok := strings.Cut(r.Header.Get("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims := &Claims{}
		token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if claims.Role != RoleAdmin {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
