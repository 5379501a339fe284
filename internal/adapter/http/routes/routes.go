package routes

import (
	"log"
	"strconv"

	_ "odonto_core/docs" // This will be auto-generated
	"odonto_core/internal/adapter/http/handlers"
	repository2 "odonto_core/internal/adapter/persistence/repository"
	"odonto_core/internal/infrastructure/database"
	"odonto_core/internal/infrastructure/metrics"
	"odonto_core/internal/usecase"

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
	router.GET("/metrics", metrics.Handler())

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	planRepo := repository2.NewTreatmentPlanDynamoRepository(ddb)
	annotationRepo := repository2.NewAnnotationDynamoRepository(ddb)

	planUseCase := usecase.NewTreatmentPlanUseCase(planRepo, annotationRepo)
	planHandler := handlers.NewTreatmentPlanHandler(planUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTreatmentRoutes(v1, planHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
