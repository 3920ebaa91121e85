package middleware

import (
	"errors"
	"net/http"
	"strings"

	"restaurant-reservation/internal/access"
	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate requires a valid bearer token and stores its user id and
// role in the request context.
func Authenticate(tokens *utils.TokenIssuer, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				logger.Warn("Token rejected",
					zap.Error(err),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseUnauthorized(w, messageOf(err))
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Role)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermission rejects callers whose role is not allowed p. It runs
// before the handler reads the body. Mount it after Authenticate.
func RequirePermission(p access.Permission, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			role, _ := utils.GetRoleFromContext(r.Context())
			if err := access.Authorize(entity.Role(role), p); err != nil {
				logger.Warn("Permission denied",
					zap.Int64("user_id", userID),
					zap.String("role", role),
					zap.String("permission", string(p)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, messageOf(err))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func messageOf(err error) string {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
