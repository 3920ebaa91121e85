package wire

import (
	"net/http"

	"restaurant-reservation/internal/access"
	"restaurant-reservation/internal/adaptor"
	"restaurant-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	authenticate func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// Every route acts on the caller's own profile
	r.Route("/users/me", func(r chi.Router) {
		r.Use(authenticate)

		r.With(middleware.RequirePermission(access.ProfileRead, log)).Get("/", userHandler.GetMe)
		r.With(middleware.RequirePermission(access.ProfileRead, log)).Get("/reservations", userHandler.GetMyReservations)
		r.With(middleware.RequirePermission(access.ProfileUpdate, log)).Put("/update", userHandler.UpdateMe)
		r.With(middleware.RequirePermission(access.ProfileDelete, log)).Delete("/delete", userHandler.DeleteMe)
	})
}
