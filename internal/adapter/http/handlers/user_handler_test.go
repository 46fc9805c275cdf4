package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"elo_drinks/internal/adapter/http/handlers/mocks"
	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUserHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("anonymous admin request is downgraded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", h.Register)

		uc.EXPECT().Register(gomock.Any(), "Ana", "ana@example.com", "", "s3nh4forte", entities.RoleCliente).
			Return(entities.User{ID: "user-1", Name: "Ana", Email: "ana@example.com", Role: entities.RoleCliente, Active: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"name":"Ana","email":"ana@example.com","password":"s3nh4forte","role":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", h.Register)

		uc.EXPECT().Register(gomock.Any(), "Ana", "ana@example.com", "", "s3nh4forte", entities.RoleCliente).
			Return(entities.User{}, usecase.ErrEmailAlreadyTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"name":"Ana","email":"ana@example.com","password":"s3nh4forte"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success omits password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", h.Register)

		uc.EXPECT().Register(gomock.Any(), "Ana", "ana@example.com", "11988887777", "s3nh4forte", entities.RoleCliente).
			Return(entities.User{ID: "user-1", Name: "Ana", Email: "ana@example.com", Phone: "11988887777", Role: entities.RoleCliente, Active: true, PasswordHash: "$2a$10$x"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"name":"Ana","email":"ana@example.com","phone":"11988887777","password":"s3nh4forte"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "$2a$") {
			t.Fatalf("password hash leaked into response: %s", w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "user-1" || body["role"] != "cliente" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestUserHandler_Token(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/token", h.Token)

		w := post(r, url.Values{"username": {"ana@example.com"}})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/token", h.Token)

		uc.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "errada").
			Return("", int64(0), entities.User{}, usecase.ErrInvalidCredentials)

		w := post(r, url.Values{"username": {"ana@example.com"}, "password": {"errada"}})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("inactive user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/token", h.Token)

		uc.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "s3nh4forte").
			Return("", int64(0), entities.User{}, usecase.ErrUserInactive)

		w := post(r, url.Values{"username": {"ana@example.com"}, "password": {"s3nh4forte"}})
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/token", h.Token)

		uc.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "s3nh4forte").
			Return("jwt-token", int64(3600), entities.User{ID: "user-1", Email: "ana@example.com", Role: entities.RoleCliente}, nil)

		w := post(r, url.Values{"username": {"ana@example.com"}, "password": {"s3nh4forte"}})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["access_token"] != "jwt-token" || body["token_type"] != "Bearer" || body["expires_in"] != float64(3600) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapUserError(t *testing.T) {
	if got := mapUserError(usecase.ErrInvalidUserInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapUserError(usecase.ErrEmailAlreadyTaken); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapUserError(usecase.ErrInvalidCredentials); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapUserError(usecase.ErrUserInactive); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapUserError(usecase.ErrUserNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapUserError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
