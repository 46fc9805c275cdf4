package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"elo_drinks/internal/domain/entities"
	mock_interfaces "elo_drinks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo)

	t.Run("blank id rejected", func(t *testing.T) {
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("empty record means not found", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)
		if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: entities.OrderStatusOrcado}, nil)
		order, err := uc.GetByID(context.Background(), "o-1")
		if err != nil || order.ID != "o-1" {
			t.Fatalf("unexpected result: %+v %v", order, err)
		}
	})
}

func TestOrderUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo.EXPECT().List(gomock.Any()).Return([]entities.Order{
		{ID: "o-old", CreatedAt: base},
		{ID: "o-new", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "o-mid", CreatedAt: base.Add(24 * time.Hour)},
	}, nil)

	orders, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{orders[0].ID, orders[1].ID, orders[2].ID}
	want := []string{"o-new", "o-mid", "o-old"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected newest-first %v, got %v", want, got)
		}
	}
}

func TestOrderUseCase_ListByBuyerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo)

	t.Run("blank buyer rejected", func(t *testing.T) {
		if _, err := uc.ListByBuyerID(context.Background(), ""); !errors.Is(err, ErrInvalidBuyerID) {
			t.Fatalf("expected ErrInvalidBuyerID, got %v", err)
		}
	})

	t.Run("scoped to buyer", func(t *testing.T) {
		repo.EXPECT().ListByBuyerID(gomock.Any(), "buyer-1").Return([]entities.Order{{ID: "o-1", BuyerID: "buyer-1"}}, nil)
		orders, err := uc.ListByBuyerID(context.Background(), "buyer-1")
		if err != nil || len(orders) != 1 {
			t.Fatalf("unexpected result: %+v %v", orders, err)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo)

	t.Run("unknown status rejected", func(t *testing.T) {
		if _, err := uc.UpdateStatus(context.Background(), "o-1", "enviado"); !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		repo.EXPECT().UpdateStatus(gomock.Any(), "missing", entities.OrderStatusCancelado).Return(entities.Order{}, nil)
		if _, err := uc.UpdateStatus(context.Background(), "missing", entities.OrderStatusCancelado); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("updated", func(t *testing.T) {
		repo.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCompletado).
			Return(entities.Order{ID: "o-1", Status: entities.OrderStatusCompletado}, nil)
		order, err := uc.UpdateStatus(context.Background(), "o-1", entities.OrderStatusCompletado)
		if err != nil || order.Status != entities.OrderStatusCompletado {
			t.Fatalf("unexpected result: %+v %v", order, err)
		}
	})
}
