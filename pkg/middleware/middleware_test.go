package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-reservation/internal/access"
	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/pkg/utils"

	"go.uber.org/zap"
)

func TestAuthenticate(t *testing.T) {
	tokens := utils.NewTokenIssuer(utils.JWTConfig{Secret: "secret", ExpiryHours: 1})
	valid, err := tokens.Issue(7, string(entity.RoleStaff))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var gotID int64
	var gotRole string
	handler := Authenticate(tokens, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		gotRole, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing", header: "", want: http.StatusUnauthorized},
		{name: "no scheme", header: valid, want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, want: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer abc", want: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + valid, want: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + valid, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusUnauthorized && rec.Header().Get("WWW-Authenticate") != "Bearer" {
				t.Error("missing WWW-Authenticate")
			}
		})
	}

	if gotID != 7 || gotRole != string(entity.RoleStaff) {
		t.Errorf("context = %d %q", gotID, gotRole)
	}
}

func TestRequirePermission(t *testing.T) {
	called := false
	handler := RequirePermission(access.DishUpdate, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	for _, tt := range []struct {
		role entity.Role
		want int
	}{
		{entity.RoleUser, http.StatusForbidden},
		{entity.RoleStaff, http.StatusOK},
		{entity.RoleAdmin, http.StatusOK},
	} {
		called = false
		req := httptest.NewRequest(http.MethodPut, "/dishes/1", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), 1, string(tt.role)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.role, rec.Code, tt.want)
		}
		if called != (tt.want == http.StatusOK) {
			t.Errorf("%s: handler called = %v", tt.role, called)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/dishes/1", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d", rec.Code)
	}
}

func TestLoggerKeepsRequestID(t *testing.T) {
	var seen string
	handler := Logger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != "abc-123" || rec.Header().Get("X-Request-ID") != "abc-123" {
		t.Errorf("request id = %q, header %q", seen, rec.Header().Get("X-Request-ID"))
	}
}

func TestRecover(t *testing.T) {
	handler := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight reached the handler")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/dishes", nil))
	if rec.Code != http.StatusNoContent || rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("status = %d, headers %v", rec.Code, rec.Header())
	}
}
