package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "elo_drinks/internal/adapter/http/dto/request"
	response "elo_drinks/internal/adapter/http/dto/response"
	"elo_drinks/internal/usecase"
	"elo_drinks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)

// DraftHandler is the REST projection of the customization wizard: one draft
// per session key, mutation endpoints per selection category, validated
// navigation and final submission.

type DraftHandler struct {
	usecase usecase.IDraftUseCase
}

func NewDraftHandler(uc usecase.IDraftUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

// GetDraft returns the current wizard snapshot with per-step validity, the
// derived line items and both price figures.
func (h *DraftHandler) GetDraft(c *gin.Context) {
	view, err := h.usecase.Snapshot(c.Request.Context(), c.Param("session_id"))
	h.respond(c, view, err)
}

func (h *DraftHandler) SetEventType(c *gin.Context) {
	var payload request.EventTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	view, err := h.usecase.SetEventType(c.Request.Context(), c.Param("session_id"), payload.EventType)
	h.respond(c, view, err)
}

func (h *DraftHandler) SetEventInfoField(c *gin.Context) {
	var payload request.EventInfoFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	view, err := h.usecase.SetEventInfoField(c.Request.Context(), c.Param("session_id"), payload.Field, payload.Value)
	h.respond(c, view, err)
}

func (h *DraftHandler) ToggleAlcoholicDrink(c *gin.Context) {
	h.toggle(c, h.usecase.ToggleAlcoholicDrink)
}

func (h *DraftHandler) ToggleNonAlcoholicDrink(c *gin.Context) {
	h.toggle(c, h.usecase.ToggleNonAlcoholicDrink)
}

func (h *DraftHandler) SetOtherBeverageQuantity(c *gin.Context) {
	h.setQuantity(c, h.usecase.SetOtherBeverageQuantity)
}

func (h *DraftHandler) SetShotQuantity(c *gin.Context) {
	h.setQuantity(c, h.usecase.SetShotQuantity)
}

func (h *DraftHandler) SetStaffQuantity(c *gin.Context) {
	h.setQuantity(c, h.usecase.SetStaffQuantity)
}

func (h *DraftHandler) SelectStructure(c *gin.Context) {
	var payload request.StructureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	view, err := h.usecase.SelectStructure(c.Request.Context(), c.Param("session_id"), payload.ItemID)
	h.respond(c, view, err)
}

// Navigate starts a step transition. Forward jumps past an incomplete step
// come back as 422 with the first offending step in the message.
func (h *DraftHandler) Navigate(c *gin.Context) {
	var payload request.NavigateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	view, err := h.usecase.Navigate(c.Request.Context(), c.Param("session_id"), *payload.Target)
	h.respond(c, view, err)
}

// SubmitDraft finalizes the draft. The status query parameter picks between
// "Orcado" (quote) and "Pendente" (firm order).
func (h *DraftHandler) SubmitDraft(c *gin.Context) {
	sessionID := c.Param("session_id")

	status, err := request.ResolveOrderStatus(c.Query("status"))
	if err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	var payload request.SubmitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
			return
		}
	}

	order, err := h.usecase.Submit(c.Request.Context(), sessionID, payload.BuyerID, status)
	if err != nil {
		log.Printf("[draft][handler] submit failed session_id=%s err=%v", sessionID, err)
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("session_id")); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) toggle(c *gin.Context, fn func(ctx context.Context, sessionID, itemID string) (usecase.DraftView, error)) {
	var payload request.ToggleItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	view, err := fn(c.Request.Context(), c.Param("session_id"), payload.ItemID)
	h.respond(c, view, err)
}

func (h *DraftHandler) setQuantity(c *gin.Context, fn func(ctx context.Context, sessionID, itemID string, quantity int) (usecase.DraftView, error)) {
	var payload request.QuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	view, err := fn(c.Request.Context(), c.Param("session_id"), payload.ItemID, *payload.Quantity)
	h.respond(c, view, err)
}

func (h *DraftHandler) respond(c *gin.Context, view usecase.DraftView, err error) {
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraftView(view))
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidStep),
		errors.Is(err, usecase.ErrInvalidEventField),
		errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStepNotReachable):
		return pkg.NewDomainErrorSimple("STEP_NOT_REACHABLE", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEmptyOrder):
		return pkg.NewDomainErrorSimple("EMPTY_ORDER", "Draft has no resolvable line items", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidEventDetails):
		return pkg.NewDomainErrorSimple("INVALID_EVENT_DETAILS", "Event details are incomplete or malformed", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
