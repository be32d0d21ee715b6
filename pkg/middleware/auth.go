package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"hotel-booking/pkg/utils"
)

// TokenParser verifies a raw JWT of the given type.
type TokenParser interface {
	Parse(raw, wantType string) (*utils.TokenClaims, error)
}

// AuthJWT requires a valid bearer access token and puts the user id and
// email into the request context.
func AuthJWT(tokens TokenParser, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}
			token = strings.TrimSpace(token)

			claims, err := tokens.Parse(token, utils.TokenTypeAccess)
			if err != nil {
				logger.Warn("Rejected access token", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, claims.Email)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
