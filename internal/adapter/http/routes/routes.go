package routes

import (
	_ "elo_drinks/docs" // This will be auto-generated
	"elo_drinks/internal/adapter/http/handlers"
	"elo_drinks/internal/adapter/http/middleware"
	repository2 "elo_drinks/internal/adapter/persistence/repository"
	"elo_drinks/internal/infrastructure/auth"
	"elo_drinks/internal/infrastructure/database"
	"elo_drinks/internal/infrastructure/payments"
	"elo_drinks/internal/usecase"
	"elo_drinks/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	itemRepo := repository2.NewItemDynamoRepository(ddb)
	draftRepo := repository2.NewDraftDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	tokenIssuer, err := auth.NewJWTTokenIssuerFromEnv()
	if err != nil {
		log.Fatalf("Failed to configure token issuer: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	catalogUseCase := usecase.NewCatalogUseCase(itemRepo)
	draftUseCase := usecase.NewDraftUseCase(draftRepo, orderRepo, itemRepo, catalogUseCase)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, tokenIssuer)
	dashboardUseCase := usecase.NewDashboardUseCase(orderRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, paymentGateway)

	itemHandler := handlers.NewItemHandler(catalogUseCase)
	draftHandler := handlers.NewDraftHandler(draftUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	authed := middleware.RequireAuth(tokenIssuer)
	admin := middleware.RequireAdmin()

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addUserRoutes(v1, userHandler, authed, admin)
	addCatalogRoutes(v1, itemHandler, authed, admin)
	addDraftRoutes(v1, draftHandler)
	addOrderRoutes(v1, orderHandler, authed, admin)
	addDashboardRoutes(v1, dashboardHandler, authed, admin)
	addPaymentRoutes(v1, paymentHandler, authed, admin)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
