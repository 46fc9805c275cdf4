package handlers

import (
	"net/http"

	response "elo_drinks/internal/adapter/http/dto/response"
	"elo_drinks/internal/usecase"
	"elo_drinks/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregates behind the back-office charts.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Revenue(c *gin.Context) {
	total, err := h.usecase.Revenue(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RevenueResponse{Total: total})
}

func (h *DashboardHandler) ActiveOrders(c *gin.Context) {
	count, err := h.usecase.ActiveOrders(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: count})
}

func (h *DashboardHandler) PendingOrders(c *gin.Context) {
	count, err := h.usecase.PendingOrders(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: count})
}

func (h *DashboardHandler) OrdersThisMonth(c *gin.Context) {
	count, err := h.usecase.OrdersThisMonth(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: count})
}

func (h *DashboardHandler) EventsPerMonth(c *gin.Context) {
	counts, err := h.usecase.EventsPerMonth(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMonthCounts(counts))
}

func (h *DashboardHandler) CompletedVsPending(c *gin.Context) {
	result, err := h.usecase.CompletedVsPending(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompletedVsPending(result))
}

func (h *DashboardHandler) fail(c *gin.Context, err error) {
	appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
