package routes

import (
	"log"
	"os"
	"strconv"

	_ "ssx_solar/docs" // This will be auto-generated
	"ssx_solar/internal/adapter/http/handlers"
	repository2 "ssx_solar/internal/adapter/persistence/repository"
	"ssx_solar/internal/infrastructure/database"
	"ssx_solar/internal/infrastructure/logger"
	"ssx_solar/internal/infrastructure/storage"
	"ssx_solar/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	zlog, err := logger.NewFromEnv("ssx-solar-api")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	setMiddlewares(zlog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(zlog)

	err = router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(zlog *zap.Logger) {
	mode := database.SelectMode()
	zlog.Info("persistence backend selected", zap.String("mode", string(mode)))

	session := repository2.NewMemorySessionStore()
	mockRequests := repository2.NewServiceRequestMemoryRepository(session)

	mockSet := &backendSet{
		requests: mockRequests,
		users:    repository2.NewUserMemoryRepository(session),
		products: repository2.NewProductMemoryRepository(session),
		images:   storage.NewMemoryImageStore(),
	}

	var remoteSet *backendSet
	if mode == database.ModeRemote {
		ddb := database.ConnectDynamoDB()

		imageStore := mockSet.images
		if baseURL := os.Getenv("STORAGE_BASE_URL"); baseURL != "" {
			restyStore, err := storage.NewRestyImageStore(baseURL, zlog)
			if err != nil {
				zlog.Warn("blob storage not configured, using in-memory image store", zap.Error(err))
			} else {
				imageStore = restyStore
			}
		}

		remoteSet = &backendSet{
			requests: repository2.NewServiceRequestFallbackRepository(
				repository2.NewServiceRequestDynamoRepository(ddb), mockRequests, zlog),
			users:    repository2.NewUserDynamoRepository(ddb),
			products: repository2.NewProductDynamoRepository(ddb),
			images:   imageStore,
		}
	}

	backend := newBackendSwitch(mode, remoteSet, mockSet, session, zlog)

	requestUseCase := usecase.NewServiceRequestUseCase(switchedRequests{backend})
	lifecycleUseCase := usecase.NewLifecycleUseCase(switchedRequests{backend}, switchedUsers{backend}, switchedImages{backend}, zlog)
	userUseCase := usecase.NewUserUseCase(switchedUsers{backend})
	productUseCase := usecase.NewProductUseCase(switchedProducts{backend})
	reportUseCase := usecase.NewReportUseCase(switchedRequests{backend})

	requestHandler := handlers.NewServiceRequestHandler(requestUseCase)
	lifecycleHandler := handlers.NewLifecycleHandler(lifecycleUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRequestRoutes(v1, requestHandler, lifecycleHandler)
	addCatalogRoutes(v1, userHandler, productHandler)
	addReportRoutes(v1, reportHandler)

	if gin.Mode() != gin.ReleaseMode {
		addDevRoutes(v1, backend)
	}
}

func setMiddlewares(zlog *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zlog.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
