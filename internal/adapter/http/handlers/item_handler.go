package handlers

import (
	"errors"
	"log"
	"net/http"

	request "elo_drinks/internal/adapter/http/dto/request"
	response "elo_drinks/internal/adapter/http/dto/response"
	"elo_drinks/internal/usecase"
	"elo_drinks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid item payload", http.StatusBadRequest)

// ItemHandler exposes the sellable catalog: public reads for the storefront
// and admin writes for the back-office.

type ItemHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewItemHandler(uc usecase.ICatalogUseCase) *ItemHandler {
	return &ItemHandler{usecase: uc}
}

// ListItems returns the full catalog (served from the cached loader).
func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.usecase.ListCatalog(c.Request.Context())
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromItems(items))
}

// ListGroupedItems returns the catalog partitioned into the six fixed
// categories the customization flow renders.
func (h *ItemHandler) ListGroupedItems(c *gin.Context) {
	grouped, err := h.usecase.GroupedCatalog(c.Request.Context())
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGroupedItems(grouped))
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromItem(item))
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := payload.Resolve()
	if err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateItem(c.Request.Context(), item)
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[item][handler] created item_id=%s category=%s", created.ID, created.Category)

	c.JSON(http.StatusCreated, response.FromItem(created))
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := payload.Resolve()
	if err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}
	item.ID = c.Param("id")

	updated, err := h.usecase.UpdateItem(c.Request.Context(), item)
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItem(updated))
}

func (h *ItemHandler) SetItemAvailability(c *gin.Context) {
	var payload request.AvailabilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetItemAvailability(c.Request.Context(), c.Param("id"), *payload.Available)
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItem(updated))
}

func mapItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidItemInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
