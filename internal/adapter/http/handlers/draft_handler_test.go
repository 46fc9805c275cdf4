package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"elo_drinks/internal/adapter/http/handlers/mocks"
	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func emptyDraftView(sessionID string) usecase.DraftView {
	return usecase.DraftView{
		SessionID:    sessionID,
		Draft:        entities.NewEventDraft(),
		BackendPrice: math.NaN(),
	}
}

func TestDraftHandler_GetDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unconfirmed price serializes as null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.GET("/v1/drafts/:session_id", h.GetDraft)

		uc.EXPECT().Snapshot(gomock.Any(), "sess-1").Return(emptyDraftView("sess-1"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/drafts/sess-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not valid json: %v", err)
		}
		if price, ok := body["backend_price"]; !ok || price != nil {
			t.Fatalf("expected backend_price to be null, got %v", price)
		}
		if body["session_id"] != "sess-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.GET("/v1/drafts/:session_id", h.GetDraft)

		uc.EXPECT().Snapshot(gomock.Any(), "bad").Return(usecase.DraftView{}, usecase.ErrInvalidSessionID)

		req := httptest.NewRequest(http.MethodGet, "/v1/drafts/bad", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDraftHandler_Toggle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.POST("/v1/drafts/:session_id/alcoholic-drinks/toggle", h.ToggleAlcoholicDrink)

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts/sess-1/alcoholic-drinks/toggle", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("toggle on", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.POST("/v1/drafts/:session_id/alcoholic-drinks/toggle", h.ToggleAlcoholicDrink)

		view := emptyDraftView("sess-1")
		view.Draft.AlcoholicDrinkIDs = []string{"item-1"}
		uc.EXPECT().ToggleAlcoholicDrink(gomock.Any(), "sess-1", "item-1").Return(view, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts/sess-1/alcoholic-drinks/toggle", bytes.NewBufferString(`{"item_id":"item-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		ids, _ := body["alcoholic_drink_ids"].([]any)
		if len(ids) != 1 || ids[0] != "item-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("quantity requires value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.POST("/v1/drafts/:session_id/shots/quantity", h.SetShotQuantity)

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts/sess-1/shots/quantity", bytes.NewBufferString(`{"item_id":"item-4"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDraftHandler_Navigate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.POST("/v1/drafts/:session_id/navigate", h.Navigate)

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts/sess-1/navigate", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("step not reachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.POST("/v1/drafts/:session_id/navigate", h.Navigate)

		uc.EXPECT().Navigate(gomock.Any(), "sess-1", 8).Return(usecase.DraftView{}, usecase.ErrStepNotReachable)

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts/sess-1/navigate", bytes.NewBufferString(`{"target":8}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.POST("/v1/drafts/:session_id/navigate", h.Navigate)

		view := emptyDraftView("sess-1")
		view.Draft.CurrentStep = 1
		view.Draft.Direction = 1
		uc.EXPECT().Navigate(gomock.Any(), "sess-1", 1).Return(view, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts/sess-1/navigate", bytes.NewBufferString(`{"target":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["current_step"] != float64(1) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestDraftHandler_SubmitDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.POST("/v1/drafts/:session_id/submit", h.SubmitDraft)

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts/sess-1/submit?status=enviado", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.POST("/v1/drafts/:session_id/submit", h.SubmitDraft)

		uc.EXPECT().Submit(gomock.Any(), "sess-1", "", entities.OrderStatusOrcado).Return(entities.Order{}, usecase.ErrEmptyOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts/sess-1/submit?status=Orcado", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success with buyer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewDraftHandler(uc)

		r := gin.New()
		r.POST("/v1/drafts/:session_id/submit", h.SubmitDraft)

		uc.EXPECT().Submit(gomock.Any(), "sess-1", "user-1", entities.OrderStatusPendente).
			Return(entities.Order{ID: "order-1", BuyerID: "user-1", Status: entities.OrderStatusPendente, Total: 332700}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts/sess-1/submit?status=Pendente", bytes.NewBufferString(`{"buyer_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "order-1" || body["buyer_id"] != "user-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestDraftHandler_DiscardDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDraftUseCase(ctrl)
	h := NewDraftHandler(uc)

	r := gin.New()
	r.DELETE("/v1/drafts/:session_id", h.DiscardDraft)

	uc.EXPECT().Discard(gomock.Any(), "sess-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/drafts/sess-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestMapDraftError(t *testing.T) {
	if got := mapDraftError(usecase.ErrInvalidSessionID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapDraftError(usecase.ErrInvalidStep); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapDraftError(usecase.ErrStepNotReachable); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapDraftError(usecase.ErrEmptyOrder); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapDraftError(usecase.ErrInvalidEventDetails); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapDraftError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
