package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/usecase/interfaces"
	mock_interfaces "elo_drinks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newPaymentFixture(t *testing.T) (*PaymentUseCase, *mock_interfaces.MockIPaymentRepository, *mock_interfaces.MockIOrderRepository, *mock_interfaces.MockIPaymentGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	return NewPaymentUseCase(repo, orders, gateway), repo, orders, gateway
}

func TestPaymentUseCase_CheckoutByOrderID(t *testing.T) {
	firmOrder := entities.Order{
		ID:        "o-1",
		Status:    entities.OrderStatusPendente,
		EventName: "Casamento Ana e Léo",
		EventDate: "2026-11-21",
		Total:     332700,
	}

	t.Run("blank order id rejected", func(t *testing.T) {
		uc, _, _, _ := newPaymentFixture(t)
		if _, err := uc.CheckoutByOrderID(context.Background(), " "); !errors.Is(err, ErrInvalidPaymentOrderID) {
			t.Fatalf("expected ErrInvalidPaymentOrderID, got %v", err)
		}
	})

	t.Run("missing gateway rejected", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		if _, err := uc.CheckoutByOrderID(context.Background(), "o-1"); !errors.Is(err, ErrPaymentGatewayMissing) {
			t.Fatalf("expected ErrPaymentGatewayMissing, got %v", err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		uc, _, orders, _ := newPaymentFixture(t)
		orders.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)
		if _, err := uc.CheckoutByOrderID(context.Background(), "missing"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("quote is not payable", func(t *testing.T) {
		uc, _, orders, _ := newPaymentFixture(t)
		quote := firmOrder
		quote.Status = entities.OrderStatusOrcado
		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(quote, nil)
		if _, err := uc.CheckoutByOrderID(context.Background(), "o-1"); !errors.Is(err, ErrOrderNotPayable) {
			t.Fatalf("expected ErrOrderNotPayable, got %v", err)
		}
	})

	t.Run("gateway failure wrapped", func(t *testing.T) {
		uc, _, orders, gateway := newPaymentFixture(t)
		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(firmOrder, nil)
		gateway.EXPECT().CreateCheckout(gomock.Any(), "o-1", gomock.Any(), 332700.0).
			Return(interfaces.Checkout{}, errors.New("provider 500"))
		if _, err := uc.CheckoutByOrderID(context.Background(), "o-1"); !errors.Is(err, ErrPaymentGatewayFailure) {
			t.Fatalf("expected ErrPaymentGatewayFailure, got %v", err)
		}
	})

	t.Run("success records a pending payment", func(t *testing.T) {
		uc, repo, orders, gateway := newPaymentFixture(t)
		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(firmOrder, nil)
		gateway.EXPECT().CreateCheckout(gomock.Any(), "o-1", "Evento Casamento Ana e Léo (2026-11-21)", 332700.0).
			Return(interfaces.Checkout{PreferenceID: "pref-1", URL: "https://mp.example/init"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID == "" || p.OrderID != "o-1" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusPendente || p.CheckoutURL != "https://mp.example/init" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.MPPayload["preference_id"] != "pref-1" {
					t.Fatalf("provider payload must be kept: %+v", p.MPPayload)
				}
				return p, nil
			},
		)

		payment, err := uc.CheckoutByOrderID(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.CheckoutURL == "" {
			t.Fatalf("expected checkout url, got %+v", payment)
		}
	})
}

func TestPaymentUseCase_GetLatestByOrderID(t *testing.T) {
	t.Run("no attempts", func(t *testing.T) {
		uc, repo, _, _ := newPaymentFixture(t)
		repo.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return(nil, nil)
		if _, err := uc.GetLatestByOrderID(context.Background(), "o-1"); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("picks the most recent attempt", func(t *testing.T) {
		uc, repo, _, _ := newPaymentFixture(t)
		base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		repo.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.Payment{
			{ID: "p-1", Date: base},
			{ID: "p-3", Date: base.Add(2 * time.Hour)},
			{ID: "p-2", Date: base.Add(time.Hour)},
		}, nil)

		latest, err := uc.GetLatestByOrderID(context.Background(), "o-1")
		if err != nil || latest.ID != "p-3" {
			t.Fatalf("unexpected result: %+v %v", latest, err)
		}
	})
}

func TestPaymentUseCase_ApproveByOrderID(t *testing.T) {
	t.Run("already approved", func(t *testing.T) {
		uc, repo, _, _ := newPaymentFixture(t)
		repo.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.Payment{
			{ID: "p-1", Status: entities.PaymentStatusAprovado},
		}, nil)
		if _, err := uc.ApproveByOrderID(context.Background(), "o-1"); !errors.Is(err, ErrPaymentAlreadyApproved) {
			t.Fatalf("expected ErrPaymentAlreadyApproved, got %v", err)
		}
	})

	t.Run("approves and completes the order", func(t *testing.T) {
		uc, repo, orders, _ := newPaymentFixture(t)
		repo.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.Payment{
			{ID: "p-1", OrderID: "o-1", Status: entities.PaymentStatusPendente},
		}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p-1", entities.PaymentStatusAprovado).
			Return(entities.Payment{ID: "p-1", OrderID: "o-1", Status: entities.PaymentStatusAprovado}, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCompletado).
			Return(entities.Order{ID: "o-1", Status: entities.OrderStatusCompletado}, nil)

		approved, err := uc.ApproveByOrderID(context.Background(), "o-1")
		if err != nil || approved.Status != entities.PaymentStatusAprovado {
			t.Fatalf("unexpected result: %+v %v", approved, err)
		}
	})
}
