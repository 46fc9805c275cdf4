package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrInvalidPaymentOrderID  = errors.New("invalid order id for payment")
	ErrOrderNotPayable        = errors.New("order is not payable")
	ErrPaymentGatewayFailure  = errors.New("payment gateway failure")
	ErrPaymentGatewayMissing  = errors.New("payment gateway not configured")
	ErrPaymentAlreadyApproved = errors.New("payment already approved")
)

// IPaymentUseCase creates Mercado Pago checkouts for firm orders and tracks
// their outcome. The storefront opens the checkout URL in a pop-up and polls
// the order afterwards.

type IPaymentUseCase interface {
	CheckoutByOrderID(ctx context.Context, orderID string) (entities.Payment, error)
	GetLatestByOrderID(ctx context.Context, orderID string) (entities.Payment, error)
	ApproveByOrderID(ctx context.Context, orderID string) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	orderRepo interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orderRepo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway}
}

// CheckoutByOrderID builds a provider checkout for a firm (Pendente) order
// and records a pending payment pointed at its redirect URL.
func (u *PaymentUseCase) CheckoutByOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Payment{}, ErrInvalidPaymentOrderID
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayMissing
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if order.ID == "" {
		return entities.Payment{}, ErrOrderNotFound
	}
	if order.Status != entities.OrderStatusPendente {
		log.Printf("[payment][usecase] order not payable order_id=%s status=%s", orderID, order.Status)
		return entities.Payment{}, ErrOrderNotPayable
	}

	description := fmt.Sprintf("Evento %s (%s)", order.EventName, order.EventDate)
	checkout, err := u.gateway.CreateCheckout(ctx, order.ID, description, order.Total)
	if err != nil {
		log.Printf("[payment][usecase] checkout failed order_id=%s err=%v", orderID, err)
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailure, err)
	}

	p := entities.Payment{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		Date:        time.Now().UTC(),
		Status:      entities.PaymentStatusPendente,
		CheckoutURL: checkout.URL,
		MPPayload: map[string]interface{}{
			"preference_id": checkout.PreferenceID,
			"init_point":    checkout.URL,
		},
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] checkout created order_id=%s payment_id=%s", orderID, created.ID)
	return created, nil
}

// GetLatestByOrderID returns the most recent payment attempt for an order.
func (u *PaymentUseCase) GetLatestByOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Payment{}, ErrInvalidPaymentOrderID
	}

	payments, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(payments) == 0 {
		return entities.Payment{}, ErrPaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

// ApproveByOrderID marks the latest payment approved and completes the order.
// Called by the status re-check once the provider reports success.
func (u *PaymentUseCase) ApproveByOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	latest, err := u.GetLatestByOrderID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if latest.Status == entities.PaymentStatusAprovado {
		return entities.Payment{}, ErrPaymentAlreadyApproved
	}

	approved, err := u.repo.UpdateStatus(ctx, latest.ID, entities.PaymentStatusAprovado)
	if err != nil {
		return entities.Payment{}, err
	}
	if approved.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	if _, err := u.orderRepo.UpdateStatus(ctx, orderID, entities.OrderStatusCompletado); err != nil {
		log.Printf("[payment][usecase] order completion failed order_id=%s err=%v", orderID, err)
	}
	log.Printf("[payment][usecase] payment approved order_id=%s payment_id=%s", orderID, approved.ID)
	return approved, nil
}
