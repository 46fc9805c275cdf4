package handlers

import (
	"errors"
	"log"
	"net/http"

	response "elo_drinks/internal/adapter/http/dto/response"
	"elo_drinks/internal/usecase"
	"elo_drinks/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the Mercado Pago checkout redirect for firm orders.
// The storefront opens the returned URL in a pop-up and polls the order
// status once the window closes.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateCheckout builds a provider checkout for the order in the id query
// parameter and returns the redirect URL.
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	orderID := c.Query("id")
	log.Printf("[payment][handler] checkout start order_id=%s", orderID)

	payment, err := h.usecase.CheckoutByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] checkout failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] checkout success order_id=%s payment_id=%s", orderID, payment.ID)

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// GetLatestPayment returns the most recent payment attempt for an order.
func (h *PaymentHandler) GetLatestPayment(c *gin.Context) {
	payment, err := h.usecase.GetLatestByOrderID(c.Request.Context(), c.Query("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// ApprovePayment marks the latest attempt approved and completes the order.
func (h *PaymentHandler) ApprovePayment(c *gin.Context) {
	orderID := c.Query("id")

	payment, err := h.usecase.ApproveByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] approve failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotPayable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAYABLE", "Order is not awaiting payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentAlreadyApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_APPROVED", "Payment already approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayMissing):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayFailure):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_FAILURE", "Payment provider rejected the request", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
