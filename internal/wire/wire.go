package wire

import (
	"context"
	"net/http"
	"time"

	"restaurant-reservation/internal/adaptor"
	"restaurant-reservation/internal/data/cachekey"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/pkg/cache"
	"restaurant-reservation/pkg/middleware"
	"restaurant-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Pinger is anything the health check can ping
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of the given stores
func Wiring(db Pinger, repo *repository.Repository, store cache.Store, config *utils.Config, logger *zap.Logger) *App {
	tokens := utils.NewTokenIssuer(config.JWT)
	keys := cachekey.New(config.Cache.Prefix)

	service := usecase.NewService(repo, store, keys, config.Cache.TTL, tokens, logger)
	handler := adaptor.NewHandler(service, config.App.Debug, logger)

	router := setupRouter(handler, tokens, db, store, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	tokens *utils.TokenIssuer,
	db Pinger,
	store cache.Store,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(chimw.StripSlashes)

	authenticate := middleware.Authenticate(tokens, logger)

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, authenticate, logger)
	wireRestaurant(r, handler.Restaurant, authenticate, logger)
	wireDish(r, handler.Dish, authenticate, logger)
	wireReservation(r, handler.Reservation, authenticate, logger)

	r.Get("/health", health(db, store, logger))

	return r
}

// health answers 200 only when both the database and the cache respond
func health(db Pinger, store cache.Store, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{"database": "ok", "cache": "ok"}
		healthy := true

		if err := db.Ping(ctx); err != nil {
			logger.Error("Health check: database unreachable", zap.Error(err))
			status["database"] = "unavailable"
			healthy = false
		}
		if err := store.Ping(ctx); err != nil {
			logger.Error("Health check: cache unreachable", zap.Error(err))
			status["cache"] = "unavailable"
			healthy = false
		}

		if !healthy {
			utils.ResponseJSON(w, http.StatusServiceUnavailable, status)
			return
		}
		utils.ResponseSuccess(w, status)
	}
}
