package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/pkg/utils"

	"go.uber.org/zap"
)

// responder is the one place service errors become HTTP responses
type responder struct {
	log   *zap.Logger
	debug bool
}

func newResponder(log *zap.Logger, handler string, debug bool) responder {
	return responder{
		log:   log.With(zap.String("handler", handler)),
		debug: debug,
	}
}

// respond maps the error kind to a status code. Anything unclassified is a 500.
func (rs responder) respond(w http.ResponseWriter, r *http.Request, err error, operation string) {
	message := err.Error()
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	fields := []zap.Field{
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("request_id", utils.GetRequestIDFromContext(r.Context())),
	}

	switch {
	case errors.Is(err, utils.ErrNotFound):
		rs.log.Debug(operation+" failed - not found", fields...)
		utils.ResponseNotFound(w, message)

	case errors.Is(err, utils.ErrInvalid):
		rs.log.Warn("Invalid input for "+operation, fields...)
		utils.ResponseBadRequest(w, message)

	case errors.Is(err, utils.ErrUnauthorized):
		rs.log.Warn(operation+" failed - unauthorized", fields...)
		utils.ResponseUnauthorized(w, message)

	case errors.Is(err, utils.ErrForbidden):
		rs.log.Warn(operation+" failed - forbidden", fields...)
		utils.ResponseForbidden(w, message)

	case errors.Is(err, utils.ErrConflict):
		rs.log.Warn(operation+" failed - conflict", fields...)
		utils.ResponseConflict(w, message)

	default:
		rs.log.Error("Failed to "+operation, fields...)
		if rs.debug {
			utils.ResponseInternalError(w, err.Error())
			return
		}
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decode reads and validates a JSON body, writing the 400 itself on failure
func (rs responder) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		rs.log.Warn("Invalid request body", zap.Error(err), zap.String("path", r.URL.Path))
		utils.ResponseBadRequest(w, "Invalid request body: "+err.Error())
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		rs.log.Warn("Validation failed",
			zap.String("path", r.URL.Path),
			zap.String("errors", utils.FormatValidationErrors(validationErrors)),
		)
		utils.ResponseBadRequest(w, validationErrors)
		return false
	}

	return true
}

// caller returns the identity set by the auth middleware
func caller(r *http.Request) (usecase.Caller, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Caller{}, utils.Unauthorized("Authentication required")
	}
	role, _ := utils.GetRoleFromContext(r.Context())
	parsed, err := entity.ParseRole(role)
	if err != nil {
		return usecase.Caller{}, utils.Unauthorized("Invalid token")
	}
	return usecase.Caller{UserID: userID, Role: parsed}, nil
}

// categoryParam reads the optional ?category= filter
func categoryParam(r *http.Request) (*entity.DishCategory, error) {
	value := r.URL.Query().Get("category")
	if value == "" {
		return nil, nil
	}
	category, err := entity.ParseDishCategory(value)
	if err != nil {
		return nil, utils.Invalid(err.Error(), nil)
	}
	return &category, nil
}
