package routes

import (
	"log"
	"os"
	"strconv"

	_ "hvacworks/docs"
	"hvacworks/internal/adapter/http/handlers"
	"hvacworks/internal/adapter/persistence/repository"
	"hvacworks/internal/domain/entities"
	"hvacworks/internal/infrastructure/database"
	"hvacworks/internal/infrastructure/payments"
	"hvacworks/internal/usecase"
	"hvacworks/internal/usecase/interfaces"

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

	draftRepo := repository.NewQuoteDraftDynamoRepository(ddb)
	snapshotRepo := repository.NewQuoteSnapshotDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)

	catalog := entities.DefaultCatalog()
	multipliers := entities.DefaultMultipliers()

	builderUseCase := usecase.NewQuoteBuilderUseCase(draftRepo, catalog, multipliers)
	snapshotUseCase := usecase.NewQuoteSnapshotUseCase(snapshotRepo, draftRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, snapshotRepo, paymentGateway)

	catalogHandler := handlers.NewCatalogHandler(catalog, multipliers)
	quoteHandler := handlers.NewQuoteHandler(builderUseCase)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, catalogHandler, quoteHandler, snapshotHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
