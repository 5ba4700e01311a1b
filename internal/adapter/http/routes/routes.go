package routes

import (
	"log"
	"strconv"

	_ "hrx_backoffice/docs" // This will be auto-generated
	"hrx_backoffice/internal/adapter/http/handlers"
	repository2 "hrx_backoffice/internal/adapter/persistence/repository"
	"hrx_backoffice/internal/infrastructure/database"
	"hrx_backoffice/internal/infrastructure/logging"
	"hrx_backoffice/internal/infrastructure/notifications"
	"hrx_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	logging.Setup()
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

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	lineItemRepo := repository2.NewLineItemDynamoRepository(ddb)
	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	professionalRepo := repository2.NewProfessionalDynamoRepository(ddb)

	notifier := notifications.NewUrgencyWebhookNotifierFromEnv()

	projectUseCase := usecase.NewProjectUseCase(projectRepo, lineItemRepo, professionalRepo, notifier)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, lineItemRepo, projectUseCase)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProjectRoutes(v1, projectHandler, quotationHandler)
	addQuotationRoutes(v1, quotationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
