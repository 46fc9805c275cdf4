package routes

import (
	"elo_drinks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathDash     = "/dash"
	PathPayments = "/payment"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, authed, admin gin.HandlerFunc) {
	orders := rg.Group(PathOrders, authed)
	{
		orders.GET("", admin, orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/buyer/:buyer_id", orderHandler.ListOrdersByBuyer)
		orders.PATCH("/:id/status", admin, orderHandler.UpdateOrderStatus)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler, authed, admin gin.HandlerFunc) {
	dash := rg.Group(PathDash+"/get", authed, admin)
	{
		dash.GET("/receita", dashboardHandler.Revenue)
		dash.GET("/ativos", dashboardHandler.ActiveOrders)
		dash.GET("/pendentes", dashboardHandler.PendingOrders)
		dash.GET("/thisMonth", dashboardHandler.OrdersThisMonth)
		dash.GET("/eventosPorMes", dashboardHandler.EventsPerMonth)
		dash.GET("/completados_vs_pendentes", dashboardHandler.CompletedVsPending)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, authed, admin gin.HandlerFunc) {
	payment := rg.Group(PathPayments, authed)
	{
		payment.POST("/checkout", paymentHandler.CreateCheckout)
		payment.GET("/getPayment", paymentHandler.GetLatestPayment)
		payment.PATCH("/approve", admin, paymentHandler.ApprovePayment)
	}
}
