package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// AuthMiddleware valida o token estático de serviço enviado no header
// Authorization. Com AUTH_TOKEN vazio a autenticação fica desabilitada.
func AuthMiddleware(token string) func(http.Handler) http.Handler {
	if token == "" {
		logrus.Warn("AUTH_TOKEN não configurado, API sem autenticação")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" || r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(tokenString), []byte(token)) != 1 {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
