package adaptor

import (
	"net/http"

	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/pkg/utils"
)

type AuthHandler struct {
	service usecase.AuthService
	responder
}

func NewAuthHandler(service usecase.AuthService, rs responder) *AuthHandler {
	return &AuthHandler{
		service:   service,
		responder: rs,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		h.respond(w, r, err, "signup")
		return
	}

	utils.ResponseCreated(w, user)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.respond(w, r, err, "login")
		return
	}

	utils.ResponseSuccess(w, token)
}
