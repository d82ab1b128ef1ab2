package routes

import (
	"log"
	"time"

	_ "debt_reconciler/docs" // This will be auto-generated
	"debt_reconciler/internal/adapter/http/handlers"
	repository2 "debt_reconciler/internal/adapter/persistence/repository"
	"debt_reconciler/internal/config"
	"debt_reconciler/internal/infrastructure/collections"
	"debt_reconciler/internal/infrastructure/database"
	"debt_reconciler/internal/scheduler"
	"debt_reconciler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	sched := getRoutes(cfg)
	sched.Start()

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) *scheduler.Scheduler {
	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	source := collections.NewClient(collections.ClientParams{
		DebtsURL:        cfg.DebtsEndpoint,
		PaymentPlansURL: cfg.PaymentPlansEndpoint,
		PaymentsURL:     cfg.PaymentsEndpoint,
		Timeout:         time.Duration(cfg.FetchTimeoutSeconds) * time.Second,
		Logger:          logger,
	})

	ddb := database.ConnectDynamoDB()
	reconciliationRepo := repository2.NewReconciliationDynamoRepository(ddb)

	reconcileUseCase := usecase.NewReconcileUseCase(source, reconciliationRepo, logger, cfg.MaxScheduleSteps)

	debtHandler := handlers.NewDebtHandler(reconcileUseCase)
	reconciliationHandler := handlers.NewReconciliationHandler(reconcileUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReconciliationRoutes(v1, debtHandler, reconciliationHandler)

	return scheduler.New(reconcileUseCase, logger, cfg.ReconcileJobSchedule)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
