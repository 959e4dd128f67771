package routes

import (
	"context"
	"os"
	"strconv"

	_ "studio_pricing/docs" // This will be auto-generated
	"studio_pricing/internal/adapter/http/handlers"
	"studio_pricing/internal/adapter/http/middleware"
	"studio_pricing/internal/adapter/persistence/repository"
	"studio_pricing/internal/infrastructure/database"
	"studio_pricing/internal/infrastructure/email"
	"studio_pricing/internal/infrastructure/logging"
	"studio_pricing/internal/infrastructure/pdfrender"
	"studio_pricing/internal/usecase"
	"studio_pricing/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
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
		logging.L("http.routes").Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes() {
	log := logging.L("http.routes")

	ddb := database.ConnectDynamoDB()

	inquiryRepo := repository.NewInquiryDynamoRepository(ddb)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb)
	rateCardRepo := repository.NewRateCardDynamoRepository(ddb)

	// First boot on an empty table installs the default module catalog.
	if err := catalogRepo.Seed(context.Background()); err != nil {
		log.Warnw("catalog seed failed", "error", err)
	}

	var mailer interfaces.IMailer
	resendMailer, err := email.NewResendMailer(os.Getenv("RESEND_API_KEY"), os.Getenv("MAIL_FROM"))
	if err != nil {
		log.Warnw("resend mailer not configured, email features disabled", "error", err)
	} else {
		mailer = resendMailer
	}

	renderer := pdfrender.NewChromiumRenderer()

	operatorEmail := os.Getenv("OPERATOR_EMAIL")
	publicURL := os.Getenv("PUBLIC_URL")

	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo, mailer, operatorEmail)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, catalogRepo, rateCardRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, estimateRepo, mailer, renderer, publicURL)
	contactUseCase := usecase.NewContactUseCase(mailer, operatorEmail)
	dashboardUseCase := usecase.NewDashboardUseCase(inquiryRepo, quoteRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, rateCardRepo)

	inquiryHandler := handlers.NewInquiryHandler(inquiryUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	contactHandler := handlers.NewContactHandler(contactUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatorRoutes(v1, inquiryHandler, estimateHandler, contactHandler)
	addShareRoutes(v1.Group(PathShare), quoteHandler)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminGate(os.Getenv("JWT_SECRET"), middleware.AllowedAdminEmails()))
	addBackofficeRoutes(admin, inquiryHandler, quoteHandler, dashboardHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.L("http.routes").Errorw("Recovered from panic", "panic", recovered)
		c.AbortWithStatus(500)
	}))

	// The estimator widget and the admin SPA live on other origins.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))
}
