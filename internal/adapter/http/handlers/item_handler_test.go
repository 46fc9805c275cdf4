package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elo_drinks/internal/adapter/http/handlers/mocks"
	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestItemHandler_CreateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewItemHandler(uc)

		r := gin.New()
		r.POST("/v1/items", h.CreateItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewItemHandler(uc)

		r := gin.New()
		r.POST("/v1/items", h.CreateItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/items", bytes.NewBufferString(`{"description":"Gin Tonica","price":1800,"category":"sobremesas"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewItemHandler(uc)

		r := gin.New()
		r.POST("/v1/items", h.CreateItem)

		uc.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(entities.Item{}, usecase.ErrInvalidItemInput)

		req := httptest.NewRequest(http.MethodPost, "/v1/items", bytes.NewBufferString(`{"description":"Gin Tonica","price":1800,"category":"alcoolicos"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewItemHandler(uc)

		r := gin.New()
		r.POST("/v1/items", h.CreateItem)

		now := time.Now().UTC()
		uc.EXPECT().CreateItem(gomock.Any(), entities.Item{
			Description: "Gin Tonica",
			Price:       1800,
			Category:    entities.CategoryAlcoolicos,
		}).Return(entities.Item{ID: "item-1", Description: "Gin Tonica", Price: 1800, Category: entities.CategoryAlcoolicos, Available: true, CreatedAt: now, UpdatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/items", bytes.NewBufferString(`{"description":"Gin Tonica","price":1800,"category":"alcoolicos"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "item-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestItemHandler_GetItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewItemHandler(uc)

		r := gin.New()
		r.GET("/v1/items/:id", h.GetItem)

		uc.EXPECT().GetItem(gomock.Any(), "missing").Return(entities.Item{}, usecase.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewItemHandler(uc)

		r := gin.New()
		r.GET("/v1/items/:id", h.GetItem)

		uc.EXPECT().GetItem(gomock.Any(), "item-1").Return(entities.Item{ID: "item-1", Description: "Caipirinha", Price: 1500, Category: entities.CategoryAlcoolicos}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/item-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["description"] != "Caipirinha" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestItemHandler_SetItemAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewItemHandler(uc)

		r := gin.New()
		r.PATCH("/v1/items/:id/availability", h.SetItemAvailability)

		req := httptest.NewRequest(http.MethodPatch, "/v1/items/item-1/availability", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("disable success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewItemHandler(uc)

		r := gin.New()
		r.PATCH("/v1/items/:id/availability", h.SetItemAvailability)

		uc.EXPECT().SetItemAvailability(gomock.Any(), "item-1", false).Return(entities.Item{ID: "item-1", Available: false}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/items/item-1/availability", bytes.NewBufferString(`{"available":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapItemError(t *testing.T) {
	if got := mapItemError(usecase.ErrInvalidItemID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapItemError(usecase.ErrInvalidItemInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapItemError(usecase.ErrItemNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapItemError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
